package classes

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
	"github.com/jhoicas/memberflow-console/pkg/validation"
)

const (
	MsgMembershipCreated  = "Membresía creada correctamente"
	MsgMembershipUpdated  = "Membresía actualizada correctamente"
	MsgMembershipAssigned = "Membresía asignada correctamente"
	MsgMembershipFailed   = "Error al crear la membresía"
	MsgMembershipUpdFail  = "Error al actualizar la membresía"
	MsgMembershipsFailed  = "Error al cargar las membresías"
	MsgMembershipDates    = "La fecha de fin no puede ser anterior a la de inicio."
)

// MembershipUseCase membresías y su asignación a estudiantes.
type MembershipUseCase struct {
	backend Backend
}

// NewMembershipUseCase construye el caso de uso.
func NewMembershipUseCase(backend Backend) *MembershipUseCase {
	return &MembershipUseCase{backend: backend}
}

func toMembership(in dto.MembershipRequest) (entity.Membership, error) {
	if err := validation.Struct(in); err != nil {
		return entity.Membership{}, err
	}
	start, _ := time.Parse(time.DateOnly, in.StartDate)
	end, _ := time.Parse(time.DateOnly, in.EndDate)
	if end.Before(start) {
		return entity.Membership{}, domain.NewValidationError(MsgMembershipDates).With("endDate", "anterior al inicio")
	}
	return entity.Membership{
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Type:      entity.MembershipType(in.Type),
		Status:    entity.Status(in.Status),
	}, nil
}

// Create alta de membresía.
func (uc *MembershipUseCase) Create(ctx context.Context, token string, in dto.MembershipRequest) error {
	m, err := toMembership(in)
	if err != nil {
		return err
	}
	if err := uc.backend.CreateMembership(ctx, token, m); err != nil {
		return fmt.Errorf("crear membresía: %w", err)
	}
	return nil
}

// Update edición de membresía.
func (uc *MembershipUseCase) Update(ctx context.Context, token string, id int, in dto.MembershipRequest) error {
	m, err := toMembership(in)
	if err != nil {
		return err
	}
	m.ID = id
	if err := uc.backend.UpdateMembership(ctx, token, id, m); err != nil {
		return fmt.Errorf("actualizar membresía %d: %w", id, err)
	}
	return nil
}

// List todas las membresías.
func (uc *MembershipUseCase) List(ctx context.Context, token string) ([]entity.Membership, error) {
	m, err := uc.backend.ListMemberships(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("listar membresías: %w", err)
	}
	return m, nil
}

// Assign asigna una membresía a un estudiante.
func (uc *MembershipUseCase) Assign(ctx context.Context, token string, in dto.AssignMembershipRequest) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	if err := uc.backend.UpdateStudentMembership(ctx, token, in.StudentID, in.MembershipID); err != nil {
		return fmt.Errorf("asignar membresía %d a %d: %w", in.MembershipID, in.StudentID, err)
	}
	return nil
}
