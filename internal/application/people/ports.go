package people

import (
	"context"

	"github.com/jhoicas/memberflow-console/internal/domain/entity"
)

// Backend operaciones del backend para usuarios, notificaciones e historial.
type Backend interface {
	Me(ctx context.Context, token string) (*entity.User, error)

	ListUsers(ctx context.Context, token string) ([]entity.User, error)
	UpdateUser(ctx context.Context, token string, id int, u entity.User) error
	DeleteUser(ctx context.Context, token string, id int) error
	ListRoles(ctx context.Context, token string) ([]entity.Role, error)
	ListMemberships(ctx context.Context, token string) ([]entity.Membership, error)

	ListStudents(ctx context.Context, token string) ([]entity.Student, error)
	RegisterStudent(ctx context.Context, token string, in entity.StudentRegistration) error
	ListTeachers(ctx context.Context, token string) ([]entity.Teacher, error)
	CreateTeacher(ctx context.Context, token string, t entity.Teacher) error
	CreateAdmin(ctx context.Context, token string, a entity.Admin) error

	ListNotifications(ctx context.Context, token string) ([]entity.Notification, error)
	CreateNotification(ctx context.Context, token string, n entity.Notification) error

	ListStudentHistory(ctx context.Context, token string) ([]entity.StudentHistory, error)
	CreateStudentHistory(ctx context.Context, token string, h entity.StudentHistory) error
	DeleteStudentHistory(ctx context.Context, token string, id int) error
}
