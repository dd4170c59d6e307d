// Package classes casos de uso de grupos, horario, sesiones, asistencia y membresías.
package classes

import (
	"context"

	"github.com/jhoicas/memberflow-console/internal/domain/entity"
)

// Backend operaciones del backend para la gestión de clases.
type Backend interface {
	Me(ctx context.Context, token string) (*entity.User, error)
	ListStudents(ctx context.Context, token string) ([]entity.Student, error)
	ListTeachers(ctx context.Context, token string) ([]entity.Teacher, error)
	UpdateStudentMembership(ctx context.Context, token string, studentID, membershipID int) error

	ListTrainingGroups(ctx context.Context, token string) ([]entity.TrainingGroup, error)
	GetTrainingGroup(ctx context.Context, token string, id int) (*entity.TrainingGroup, error)
	CreateTrainingGroup(ctx context.Context, token string, g entity.TrainingGroup) error
	UpdateTrainingGroup(ctx context.Context, token string, id int, g entity.TrainingGroup) error
	DeleteTrainingGroup(ctx context.Context, token string, id int) error
	AssignStudent(ctx context.Context, token string, groupID, studentID int) error
	RemoveStudent(ctx context.Context, token string, groupID, studentID int) error

	ListTrainingSessions(ctx context.Context, token string) ([]entity.TrainingSession, error)
	DeleteTrainingSession(ctx context.Context, token string, id int) error

	ListAssistances(ctx context.Context, token string) ([]entity.Assistance, error)
	CreateAssistance(ctx context.Context, token string, a entity.Assistance) error

	ListMemberships(ctx context.Context, token string) ([]entity.Membership, error)
	CreateMembership(ctx context.Context, token string, m entity.Membership) error
	UpdateMembership(ctx context.Context, token string, id int, m entity.Membership) error
}

// myStudentID id de la ficha de estudiante del usuario autenticado; 0 si no tiene.
func myStudentID(ctx context.Context, backend Backend, token string) (int, error) {
	me, err := backend.Me(ctx, token)
	if err != nil {
		return 0, err
	}
	if me == nil || me.Student == nil {
		return 0, nil
	}
	return me.Student.ID, nil
}
