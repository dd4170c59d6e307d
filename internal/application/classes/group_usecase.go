package classes

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
	"github.com/jhoicas/memberflow-console/pkg/validation"
)

const (
	MsgGroupCreated    = "Grupo de entrenamiento creado correctamente."
	MsgGroupUpdated    = "Grupo de entrenamiento actualizado correctamente."
	MsgGroupDeleted    = "Grupo de entrenamiento eliminado correctamente."
	MsgGroupFailed     = "Error al crear el grupo de entrenamiento."
	MsgGroupsFailed    = "Error al cargar los grupos."
	MsgGroupStudents   = "Error al cargar alumnos del grupo."
	MsgStudentAssigned = "Alumno asignado correctamente."
	MsgStudentRemoved  = "Alumno eliminado del grupo."
	MsgAssignFailed    = "No se pudo asignar el alumno."
	MsgRemoveFailed    = "No se pudo eliminar el alumno del grupo."
	MsgTimetableFailed = "Error al cargar el horario."
	MsgTeachersFailed  = "Error al cargar los profesores."
)

// GroupUseCase grupos de entrenamiento y sus alumnos.
type GroupUseCase struct {
	backend Backend
}

// NewGroupUseCase construye el caso de uso.
func NewGroupUseCase(backend Backend) *GroupUseCase {
	return &GroupUseCase{backend: backend}
}

// Form profesores para el selector.
func (uc *GroupUseCase) Form(ctx context.Context, token string) (*dto.TrainingGroupFormResponse, error) {
	t, err := uc.backend.ListTeachers(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("formulario grupo: %w", err)
	}
	return &dto.TrainingGroupFormResponse{Teachers: t}, nil
}

func toGroup(in dto.TrainingGroupRequest) entity.TrainingGroup {
	ids := in.StudentIDs
	if ids == nil {
		ids = []int{}
	}
	return entity.TrainingGroup{
		Name:       in.Name,
		Level:      in.Level,
		Schedule:   in.Schedule,
		TeacherID:  in.TeacherID,
		StudentIDs: ids,
	}
}

// Create alta de grupo.
func (uc *GroupUseCase) Create(ctx context.Context, token string, in dto.TrainingGroupRequest) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	if err := uc.backend.CreateTrainingGroup(ctx, token, toGroup(in)); err != nil {
		return fmt.Errorf("crear grupo: %w", err)
	}
	return nil
}

// Update edición de grupo.
func (uc *GroupUseCase) Update(ctx context.Context, token string, id int, in dto.TrainingGroupRequest) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	g := toGroup(in)
	g.ID = id
	if err := uc.backend.UpdateTrainingGroup(ctx, token, id, g); err != nil {
		return fmt.Errorf("actualizar grupo %d: %w", id, err)
	}
	return nil
}

// List todos los grupos.
func (uc *GroupUseCase) List(ctx context.Context, token string) ([]entity.TrainingGroup, error) {
	g, err := uc.backend.ListTrainingGroups(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("listar grupos: %w", err)
	}
	return g, nil
}

// Delete elimina un grupo.
func (uc *GroupUseCase) Delete(ctx context.Context, token string, id int) error {
	if err := uc.backend.DeleteTrainingGroup(ctx, token, id); err != nil {
		return fmt.Errorf("eliminar grupo %d: %w", id, err)
	}
	return nil
}

// Students miembros del grupo y estudiantes asignables, ordenados por nombre.
func (uc *GroupUseCase) Students(ctx context.Context, token string, groupID int) (*dto.GroupStudentsResponse, error) {
	g, err := uc.backend.GetTrainingGroup(ctx, token, groupID)
	if err != nil {
		return nil, fmt.Errorf("grupo %d: %w", groupID, err)
	}
	students, err := uc.backend.ListStudents(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("grupo %d: estudiantes: %w", groupID, err)
	}
	out := &dto.GroupStudentsResponse{Group: *g, Members: []entity.Student{}, Available: []entity.Student{}}
	for _, s := range students {
		if g.HasStudent(s.ID) {
			out.Members = append(out.Members, s)
		} else {
			out.Available = append(out.Available, s)
		}
	}
	byName := func(list []entity.Student) {
		sort.SliceStable(list, func(i, j int) bool { return list[i].User.FullName() < list[j].User.FullName() })
	}
	byName(out.Members)
	byName(out.Available)
	return out, nil
}

// Assign añade el estudiante al grupo.
func (uc *GroupUseCase) Assign(ctx context.Context, token string, groupID, studentID int) error {
	if err := uc.backend.AssignStudent(ctx, token, groupID, studentID); err != nil {
		return fmt.Errorf("asignar %d al grupo %d: %w", studentID, groupID, err)
	}
	return nil
}

// Remove quita el estudiante del grupo.
func (uc *GroupUseCase) Remove(ctx context.Context, token string, groupID, studentID int) error {
	if err := uc.backend.RemoveStudent(ctx, token, groupID, studentID); err != nil {
		return fmt.Errorf("quitar %d del grupo %d: %w", studentID, groupID, err)
	}
	return nil
}

// Timetable horario semanal. Con onlyMine solo aparecen los grupos del estudiante autenticado.
func (uc *GroupUseCase) Timetable(ctx context.Context, token string, onlyMine bool) (*dto.TimetableResponse, error) {
	groups, err := uc.List(ctx, token)
	if err != nil {
		return nil, err
	}
	if onlyMine {
		studentID, err := myStudentID(ctx, uc.backend, token)
		if err != nil {
			return nil, fmt.Errorf("horario: %w", err)
		}
		mine := make([]entity.TrainingGroup, 0, len(groups))
		for _, g := range groups {
			if studentID != 0 && g.HasStudent(studentID) {
				mine = append(mine, g)
			}
		}
		groups = mine
	}
	return BuildTimetable(groups), nil
}
