package people

import (
	"context"
	"fmt"

	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
	"github.com/jhoicas/memberflow-console/pkg/validation"
)

const (
	MsgHistoryCreated = "Evento creado correctamente"
	MsgHistoryDeleted = "Evento eliminado correctamente"
	MsgHistoryFailed  = "Error al crear el evento"
	MsgHistoryLoad    = "Error al cargar el historial."
)

// HistoryUseCase historial de eventos de estudiantes.
type HistoryUseCase struct {
	backend Backend
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(backend Backend) *HistoryUseCase {
	return &HistoryUseCase{backend: backend}
}

// Form estudiantes para el selector.
func (uc *HistoryUseCase) Form(ctx context.Context, token string) (*dto.StudentHistoryFormResponse, error) {
	s, err := uc.backend.ListStudents(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("formulario historial: %w", err)
	}
	return &dto.StudentHistoryFormResponse{Students: s}, nil
}

// Create alta de evento.
func (uc *HistoryUseCase) Create(ctx context.Context, token string, in dto.StudentHistoryRequest) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	h := entity.StudentHistory{
		StudentID:   in.StudentID,
		EventDate:   in.EventDate,
		EventType:   in.EventType,
		Description: in.Description,
	}
	if err := uc.backend.CreateStudentHistory(ctx, token, h); err != nil {
		return fmt.Errorf("crear evento: %w", err)
	}
	return nil
}

// List todo el historial.
func (uc *HistoryUseCase) List(ctx context.Context, token string) ([]entity.StudentHistory, error) {
	h, err := uc.backend.ListStudentHistory(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("listar historial: %w", err)
	}
	return h, nil
}

// Delete elimina un evento.
func (uc *HistoryUseCase) Delete(ctx context.Context, token string, id int) error {
	if err := uc.backend.DeleteStudentHistory(ctx, token, id); err != nil {
		return fmt.Errorf("eliminar evento %d: %w", id, err)
	}
	return nil
}

// Mine historial del estudiante autenticado. Un usuario sin ficha de estudiante no tiene eventos.
func (uc *HistoryUseCase) Mine(ctx context.Context, token string) ([]entity.StudentHistory, error) {
	me, err := uc.backend.Me(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("mi historial: %w", err)
	}
	out := []entity.StudentHistory{}
	if me == nil || me.Student == nil {
		return out, nil
	}
	all, err := uc.List(ctx, token)
	if err != nil {
		return nil, err
	}
	for _, h := range all {
		if h.StudentID == me.Student.ID {
			out = append(out, h)
		}
	}
	return out, nil
}
