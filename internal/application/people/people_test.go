package people_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/application/people"
	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
)

type fakeBackend struct {
	me            *entity.User
	users         []entity.User
	notifications []entity.Notification
	history       []entity.StudentHistory

	calls        []string
	registration *entity.StudentRegistration
	teacher      *entity.Teacher
	admin        *entity.Admin
	notification *entity.Notification
}

func (f *fakeBackend) Me(context.Context, string) (*entity.User, error) { return f.me, nil }
func (f *fakeBackend) ListUsers(context.Context, string) ([]entity.User, error) {
	return f.users, nil
}
func (f *fakeBackend) UpdateUser(context.Context, string, int, entity.User) error {
	f.calls = append(f.calls, "users.update")
	return nil
}
func (f *fakeBackend) DeleteUser(context.Context, string, int) error { return nil }
func (f *fakeBackend) ListRoles(context.Context, string) ([]entity.Role, error) {
	return []entity.Role{{ID: 1, Name: entity.RoleNameAdmin}}, nil
}
func (f *fakeBackend) ListMemberships(context.Context, string) ([]entity.Membership, error) {
	return nil, nil
}
func (f *fakeBackend) ListStudents(context.Context, string) ([]entity.Student, error) { return nil, nil }
func (f *fakeBackend) RegisterStudent(_ context.Context, _ string, in entity.StudentRegistration) error {
	f.calls = append(f.calls, "students.register")
	f.registration = &in
	return nil
}
func (f *fakeBackend) ListTeachers(context.Context, string) ([]entity.Teacher, error) { return nil, nil }
func (f *fakeBackend) CreateTeacher(_ context.Context, _ string, t entity.Teacher) error {
	f.calls = append(f.calls, "teachers.create")
	f.teacher = &t
	return nil
}
func (f *fakeBackend) CreateAdmin(_ context.Context, _ string, a entity.Admin) error {
	f.calls = append(f.calls, "admins.create")
	f.admin = &a
	return nil
}
func (f *fakeBackend) ListNotifications(context.Context, string) ([]entity.Notification, error) {
	return f.notifications, nil
}
func (f *fakeBackend) CreateNotification(_ context.Context, _ string, n entity.Notification) error {
	f.notification = &n
	return nil
}
func (f *fakeBackend) ListStudentHistory(context.Context, string) ([]entity.StudentHistory, error) {
	return f.history, nil
}
func (f *fakeBackend) CreateStudentHistory(context.Context, string, entity.StudentHistory) error {
	return nil
}
func (f *fakeBackend) DeleteStudentHistory(context.Context, string, int) error { return nil }

func baseUser(role string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Name: "Ana", Surname: "Gil", Email: "ana@mf.es", Password: "secreto",
		Status: "ACTIVE", RoleName: role,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateUser_EndpointSegunRol(t *testing.T) {
	cases := map[string]string{
		entity.RoleNameAdmin:   "admins.create",
		entity.RoleNameTeacher: "teachers.create",
		entity.RoleNameStudent: "students.register",
	}
	for role, want := range cases {
		t.Run(role, func(t *testing.T) {
			be := &fakeBackend{}
			in := baseUser(role)
			in.DNI = "12345678Z"
			in.Discipline = "Judo"
			require.NoError(t, people.NewUserUseCase(be).Create(context.Background(), "tok", in))
			assert.Equal(t, []string{want}, be.calls)
		})
	}
}

func TestCreateUser_EstudianteSinDNI(t *testing.T) {
	be := &fakeBackend{}
	err := people.NewUserUseCase(be).Create(context.Background(), "tok", baseUser(entity.RoleNameStudent))
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "dni")
	assert.Empty(t, be.calls)
}

func TestCreateUser_RolDesconocido(t *testing.T) {
	be := &fakeBackend{}
	err := people.NewUserUseCase(be).Create(context.Background(), "tok", baseUser("ROLE_ROOT"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, be.calls)
}

func TestCreateUser_ProfesorLlevaDisciplina(t *testing.T) {
	be := &fakeBackend{}
	in := baseUser(entity.RoleNameTeacher)
	in.Discipline = "Karate"
	require.NoError(t, people.NewUserUseCase(be).Create(context.Background(), "tok", in))
	require.NotNil(t, be.teacher)
	assert.Equal(t, "Karate", be.teacher.Discipline)
	assert.Equal(t, "ana@mf.es", be.teacher.User.Email)
}

// ──────────────────────────────────────────────────────────────────────────────
// Notificaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestRenderMarkdown_EscapaHTML(t *testing.T) {
	out := people.RenderMarkdown("**Hola**\n<script>alert(1)</script>")
	assert.Contains(t, out, "<strong>Hola</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestCreateNotification_SinDestinatarios(t *testing.T) {
	be := &fakeBackend{}
	err := people.NewNotificationUseCase(be).Create(context.Background(), "tok", dto.NotificationRequest{
		Title: "Aviso", Message: "Mañana no hay clase", Type: "INFO",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "userIds")
	assert.Nil(t, be.notification)
}

func TestCreateNotification_OK(t *testing.T) {
	be := &fakeBackend{}
	require.NoError(t, people.NewNotificationUseCase(be).Create(context.Background(), "tok", dto.NotificationRequest{
		Title: "Aviso", Message: "Mañana no hay clase", Type: "INFO", ShippingDate: "2025-03-01T09:00", UserIDs: []int{1, 2},
	}))
	require.NotNil(t, be.notification)
	assert.Equal(t, entity.StatusActive, be.notification.Status)
	assert.Equal(t, "2025-03-01T09:00:00Z", be.notification.ShippingDate)
}

func TestListNotifications_ConHTML(t *testing.T) {
	be := &fakeBackend{notifications: []entity.Notification{{ID: 1, Message: "_cursiva_"}}}
	got, err := people.NewNotificationUseCase(be).List(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, strings.Contains(got[0].MessageHTML, "<em>cursiva</em>"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Historial
// ──────────────────────────────────────────────────────────────────────────────

func TestMyHistory_SoloPropio(t *testing.T) {
	be := &fakeBackend{
		me: &entity.User{ID: 7, Student: &entity.StudentMini{ID: 3}},
		history: []entity.StudentHistory{
			{ID: 1, StudentID: 3}, {ID: 2, StudentID: 4}, {ID: 3, StudentID: 3},
		},
	}
	got, err := people.NewHistoryUseCase(be).Mine(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestMyHistory_SinFichaDeEstudiante(t *testing.T) {
	be := &fakeBackend{me: &entity.User{ID: 1}, history: []entity.StudentHistory{{ID: 1, StudentID: 3}}}
	got, err := people.NewHistoryUseCase(be).Mine(context.Background(), "tok")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCreateHistory_FechaInvalida(t *testing.T) {
	err := people.NewHistoryUseCase(&fakeBackend{}).Create(context.Background(), "tok", dto.StudentHistoryRequest{
		StudentID: 3, EventDate: "01/03/2025", EventType: "BELT", Description: "Cinturón amarillo",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "eventDate")
}
