// Package people casos de uso de usuarios, notificaciones e historial de estudiantes.
package people

import (
	"context"
	"fmt"

	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
	"github.com/jhoicas/memberflow-console/pkg/validation"
)

const (
	MsgUserCreated   = "Usuario creado correctamente"
	MsgUserUpdated   = "Usuario actualizado correctamente"
	MsgUserDeleted   = "Usuario eliminado correctamente"
	MsgUserFailed    = "Error al crear usuario. Verifica los datos."
	MsgUsersFailed   = "Error al cargar los usuarios."
	MsgStudentFailed = "Error al cargar los estudiantes."
)

// UserUseCase alta, edición y baja de usuarios.
type UserUseCase struct {
	backend Backend
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(backend Backend) *UserUseCase {
	return &UserUseCase{backend: backend}
}

// Form roles y membresías para el alta.
func (uc *UserUseCase) Form(ctx context.Context, token string) (*dto.UserFormResponse, error) {
	roles, err := uc.backend.ListRoles(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("formulario usuario: roles: %w", err)
	}
	memberships, err := uc.backend.ListMemberships(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("formulario usuario: membresías: %w", err)
	}
	return &dto.UserFormResponse{Roles: roles, Memberships: memberships}, nil
}

// Create da de alta el usuario en el endpoint que corresponde a su rol.
func (uc *UserUseCase) Create(ctx context.Context, token string, in dto.CreateUserRequest) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	user := entity.User{
		Name:        in.Name,
		Surname:     in.Surname,
		Email:       in.Email,
		Password:    in.Password,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		Status:      entity.Status(in.Status),
		RoleName:    in.RoleName,
	}

	var err error
	switch in.RoleName {
	case entity.RoleNameStudent:
		err = uc.backend.RegisterStudent(ctx, token, entity.StudentRegistration{
			Name:          user.Name,
			Surname:       user.Surname,
			Email:         user.Email,
			Password:      user.Password,
			PhoneNumber:   user.PhoneNumber,
			Address:       user.Address,
			RoleName:      user.RoleName,
			Status:        user.Status,
			DNI:           in.DNI,
			Birthdate:     in.Birthdate,
			Belt:          in.Belt,
			Progress:      in.Progress,
			MedicalReport: in.MedicalReport,
			ParentName:    in.ParentName,
			MembershipID:  in.MembershipID,
		})
	case entity.RoleNameTeacher:
		err = uc.backend.CreateTeacher(ctx, token, entity.Teacher{User: user, Discipline: in.Discipline})
	case entity.RoleNameAdmin:
		err = uc.backend.CreateAdmin(ctx, token, entity.Admin{User: user})
	default:
		return domain.NewValidationError(validation.MsgInvalidForm).With("roleName", "rol no válido")
	}
	if err != nil {
		return fmt.Errorf("crear usuario %s: %w", in.RoleName, err)
	}
	return nil
}

// List todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context, token string) ([]entity.User, error) {
	u, err := uc.backend.ListUsers(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	return u, nil
}

// Update edita los datos básicos de un usuario.
func (uc *UserUseCase) Update(ctx context.Context, token string, id int, in dto.UpdateUserRequest) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	u := entity.User{
		ID:          id,
		Name:        in.Name,
		Surname:     in.Surname,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		Status:      entity.Status(in.Status),
	}
	if err := uc.backend.UpdateUser(ctx, token, id, u); err != nil {
		return fmt.Errorf("actualizar usuario %d: %w", id, err)
	}
	return nil
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(ctx context.Context, token string, id int) error {
	if err := uc.backend.DeleteUser(ctx, token, id); err != nil {
		return fmt.Errorf("eliminar usuario %d: %w", id, err)
	}
	return nil
}

// Students fichas de estudiante (vista "mis estudiantes" del profesor).
func (uc *UserUseCase) Students(ctx context.Context, token string) ([]entity.Student, error) {
	s, err := uc.backend.ListStudents(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("listar estudiantes: %w", err)
	}
	return s, nil
}
