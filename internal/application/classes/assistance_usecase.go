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
	MsgAssistanceCreated = "Asistencia registrada correctamente."
	MsgAssistanceFailed  = "Error al registrar asistencia."
	MsgAssistancesLoad   = "Error al cargar las asistencias."
	MsgSessionNotInGroup = "La sesión no pertenece a ningún grupo del alumno."
)

// AssistanceUseCase registro y consulta de asistencias.
type AssistanceUseCase struct {
	backend Backend
	now     func() time.Time
}

// NewAssistanceUseCase construye el caso de uso.
func NewAssistanceUseCase(backend Backend) *AssistanceUseCase {
	return &AssistanceUseCase{backend: backend, now: time.Now}
}

// Form estudiantes y sesiones.
func (uc *AssistanceUseCase) Form(ctx context.Context, token string) (*dto.AssistanceFormResponse, error) {
	students, err := uc.backend.ListStudents(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("formulario asistencia: estudiantes: %w", err)
	}
	sessions, err := uc.backend.ListTrainingSessions(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("formulario asistencia: sesiones: %w", err)
	}
	return &dto.AssistanceFormResponse{Students: students, Sessions: sessions}, nil
}

// SessionsForStudent sesiones de los grupos a los que pertenece el estudiante.
func (uc *AssistanceUseCase) SessionsForStudent(ctx context.Context, token string, studentID int) ([]entity.TrainingSession, error) {
	students, err := uc.backend.ListStudents(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("sesiones del alumno: %w", err)
	}
	sessions, err := uc.backend.ListTrainingSessions(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("sesiones del alumno: %w", err)
	}
	return FilterSessions(students, sessions, studentID), nil
}

// FilterSessions sesiones cuyo grupo incluye al estudiante. Estudiante desconocido → ninguna.
func FilterSessions(students []entity.Student, sessions []entity.TrainingSession, studentID int) []entity.TrainingSession {
	groups := map[int]struct{}{}
	for _, s := range students {
		if s.ID != studentID {
			continue
		}
		for _, g := range s.TrainingGroups {
			groups[g.ID] = struct{}{}
		}
	}
	out := []entity.TrainingSession{}
	for _, s := range sessions {
		if _, ok := groups[s.TrainingGroupID]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Create registra la asistencia con la fecha actual. La sesión debe ser de un grupo del estudiante.
func (uc *AssistanceUseCase) Create(ctx context.Context, token string, in dto.AssistanceRequest) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	sessions, err := uc.SessionsForStudent(ctx, token, in.StudentID)
	if err != nil {
		return err
	}
	found := false
	for _, s := range sessions {
		if s.ID == in.SessionID {
			found = true
			break
		}
	}
	if !found {
		return domain.NewValidationError(MsgSessionNotInGroup).With("sessionId", "sesión no disponible")
	}
	a := entity.Assistance{
		StudentID: in.StudentID,
		SessionID: in.SessionID,
		Date:      uc.now().UTC().Format(time.RFC3339),
	}
	if err := uc.backend.CreateAssistance(ctx, token, a); err != nil {
		return fmt.Errorf("registrar asistencia: %w", err)
	}
	return nil
}

// List todas las asistencias.
func (uc *AssistanceUseCase) List(ctx context.Context, token string) ([]entity.Assistance, error) {
	a, err := uc.backend.ListAssistances(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("listar asistencias: %w", err)
	}
	return a, nil
}

// Mine asistencias del estudiante autenticado.
func (uc *AssistanceUseCase) Mine(ctx context.Context, token string) ([]entity.Assistance, error) {
	studentID, err := myStudentID(ctx, uc.backend, token)
	if err != nil {
		return nil, fmt.Errorf("mis asistencias: %w", err)
	}
	out := []entity.Assistance{}
	if studentID == 0 {
		return out, nil
	}
	all, err := uc.List(ctx, token)
	if err != nil {
		return nil, err
	}
	for _, a := range all {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	return out, nil
}
