package classes_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/memberflow-console/internal/application/classes"
	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
)

type fakeBackend struct {
	me          *entity.User
	students    []entity.Student
	groups      []entity.TrainingGroup
	sessions    []entity.TrainingSession
	assistances []entity.Assistance

	assistance *entity.Assistance
	membership *entity.Membership
	assigned   [2]int
}

func (f *fakeBackend) Me(context.Context, string) (*entity.User, error) { return f.me, nil }
func (f *fakeBackend) ListStudents(context.Context, string) ([]entity.Student, error) {
	return f.students, nil
}
func (f *fakeBackend) ListTeachers(context.Context, string) ([]entity.Teacher, error) { return nil, nil }
func (f *fakeBackend) UpdateStudentMembership(_ context.Context, _ string, studentID, membershipID int) error {
	f.assigned = [2]int{studentID, membershipID}
	return nil
}
func (f *fakeBackend) ListTrainingGroups(context.Context, string) ([]entity.TrainingGroup, error) {
	return f.groups, nil
}
func (f *fakeBackend) GetTrainingGroup(_ context.Context, _ string, id int) (*entity.TrainingGroup, error) {
	for _, g := range f.groups {
		if g.ID == id {
			return &g, nil
		}
	}
	return nil, &domain.RemoteError{Op: "training-groups.findById", Status: 404}
}
func (f *fakeBackend) CreateTrainingGroup(context.Context, string, entity.TrainingGroup) error {
	return nil
}
func (f *fakeBackend) UpdateTrainingGroup(context.Context, string, int, entity.TrainingGroup) error {
	return nil
}
func (f *fakeBackend) DeleteTrainingGroup(context.Context, string, int) error { return nil }
func (f *fakeBackend) AssignStudent(context.Context, string, int, int) error { return nil }
func (f *fakeBackend) RemoveStudent(context.Context, string, int, int) error { return nil }
func (f *fakeBackend) DeleteTrainingSession(context.Context, string, int) error { return nil }
func (f *fakeBackend) ListTrainingSessions(context.Context, string) ([]entity.TrainingSession, error) {
	return f.sessions, nil
}
func (f *fakeBackend) ListAssistances(context.Context, string) ([]entity.Assistance, error) {
	return f.assistances, nil
}
func (f *fakeBackend) CreateAssistance(_ context.Context, _ string, a entity.Assistance) error {
	f.assistance = &a
	return nil
}
func (f *fakeBackend) ListMemberships(context.Context, string) ([]entity.Membership, error) {
	return nil, nil
}
func (f *fakeBackend) CreateMembership(_ context.Context, _ string, m entity.Membership) error {
	f.membership = &m
	return nil
}
func (f *fakeBackend) UpdateMembership(context.Context, string, int, entity.Membership) error {
	return nil
}

func academy() *fakeBackend {
	return &fakeBackend{
		students: []entity.Student{
			{ID: 3, User: entity.User{Name: "Lucía"}, TrainingGroups: []entity.TrainingGroup{{ID: 10}}},
			{ID: 4, User: entity.User{Name: "Bruno"}, TrainingGroups: []entity.TrainingGroup{{ID: 11}}},
			{ID: 5, User: entity.User{Name: "Alba"}},
		},
		groups: []entity.TrainingGroup{
			// 2025-03-03 es lunes.
			{ID: 10, Name: "Judo infantil", Level: "Inicial", Schedule: "2025-03-03T18:00:00", StudentIDs: []int{3}},
			{ID: 11, Name: "Karate adultos", Level: "Medio", Schedule: "2025-03-05T20:00", StudentIDs: []int{4}},
			{ID: 12, Name: "Madrugadores", Schedule: "2025-03-05T06:00:00"},
			{ID: 13, Name: "Sin horario", Schedule: "los martes"},
		},
		sessions: []entity.TrainingSession{
			{ID: 100, TrainingGroupID: 10}, {ID: 101, TrainingGroupID: 11}, {ID: 102, TrainingGroupID: 10},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Horario
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildTimetable(t *testing.T) {
	tt := classes.BuildTimetable(academy().groups)
	assert.Len(t, tt.Days, 7)
	assert.Equal(t, 7, tt.Hours[0])
	assert.Equal(t, 21, tt.Hours[len(tt.Hours)-1])

	require.Len(t, tt.Slots, 2, "fuera de rango e ilegibles no aparecen")
	assert.Equal(t, 1, tt.Slots[0].Day)
	assert.Equal(t, 18, tt.Slots[0].Hour)
	assert.Equal(t, "Judo infantil", tt.Slots[0].Groups[0].Name)
	assert.Equal(t, 3, tt.Slots[1].Day)
	assert.Equal(t, 20, tt.Slots[1].Hour)
}

func TestTimetable_EstudianteSoloSusGrupos(t *testing.T) {
	be := academy()
	be.me = &entity.User{ID: 9, Student: &entity.StudentMini{ID: 4}}
	tt, err := classes.NewGroupUseCase(be).Timetable(context.Background(), "tok", true)
	require.NoError(t, err)
	require.Len(t, tt.Slots, 1)
	assert.Equal(t, "Karate adultos", tt.Slots[0].Groups[0].Name)
}

func TestGroupStudents_MiembrosYDisponibles(t *testing.T) {
	got, err := classes.NewGroupUseCase(academy()).Students(context.Background(), "tok", 10)
	require.NoError(t, err)
	require.Len(t, got.Members, 1)
	assert.Equal(t, 3, got.Members[0].ID)
	require.Len(t, got.Available, 2)
	assert.Equal(t, "Alba", got.Available[0].User.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Asistencia
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterSessions_PorGruposDelAlumno(t *testing.T) {
	be := academy()
	got := classes.FilterSessions(be.students, be.sessions, 3)
	require.Len(t, got, 2)
	assert.Equal(t, 100, got[0].ID)
	assert.Equal(t, 102, got[1].ID)

	assert.Empty(t, classes.FilterSessions(be.students, be.sessions, 5))
	assert.Empty(t, classes.FilterSessions(be.students, be.sessions, 999))
}

func TestCreateAssistance_SesionDeOtroGrupo(t *testing.T) {
	be := academy()
	err := classes.NewAssistanceUseCase(be).Create(context.Background(), "tok", dto.AssistanceRequest{StudentID: 3, SessionID: 101})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, classes.MsgSessionNotInGroup, verr.Message)
	assert.Nil(t, be.assistance)
}

func TestCreateAssistance_OK(t *testing.T) {
	be := academy()
	require.NoError(t, classes.NewAssistanceUseCase(be).Create(context.Background(), "tok", dto.AssistanceRequest{StudentID: 3, SessionID: 102}))
	require.NotNil(t, be.assistance)
	assert.NotEmpty(t, be.assistance.Date)
}

func TestMyAssistance(t *testing.T) {
	be := academy()
	be.me = &entity.User{Student: &entity.StudentMini{ID: 3}}
	be.assistances = []entity.Assistance{{ID: 1, StudentID: 3}, {ID: 2, StudentID: 4}}
	got, err := classes.NewAssistanceUseCase(be).Mine(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Membresías
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateMembership_FechasInvertidas(t *testing.T) {
	be := &fakeBackend{}
	err := classes.NewMembershipUseCase(be).Create(context.Background(), "tok", dto.MembershipRequest{
		StartDate: "2025-06-01", EndDate: "2025-05-01", Type: "BASIC", Status: "ACTIVE",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, classes.MsgMembershipDates, verr.Message)
	assert.Nil(t, be.membership)
}

func TestCreateMembership_TipoNoPermitido(t *testing.T) {
	err := classes.NewMembershipUseCase(&fakeBackend{}).Create(context.Background(), "tok", dto.MembershipRequest{
		StartDate: "2025-05-01", EndDate: "2025-06-01", Type: "GOLD", Status: "ACTIVE",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssignMembership(t *testing.T) {
	be := &fakeBackend{}
	require.NoError(t, classes.NewMembershipUseCase(be).Assign(context.Background(), "tok",
		dto.AssignMembershipRequest{StudentID: 5, MembershipID: 2}))
	assert.Equal(t, [2]int{5, 2}, be.assigned)
}
