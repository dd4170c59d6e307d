package dto

import "github.com/jhoicas/memberflow-console/internal/domain/entity"

// TrainingGroupFormResponse profesores para el selector.
type TrainingGroupFormResponse struct {
	Teachers []entity.Teacher `json:"teachers"`
}

// TrainingGroupRequest alta/edición de grupo. Schedule es la fecha-hora de referencia del horario semanal.
type TrainingGroupRequest struct {
	Name       string `json:"name" validate:"required"`
	Level      string `json:"level" validate:"required"`
	Schedule   string `json:"schedule" validate:"required"`
	TeacherID  int    `json:"teacherId" validate:"required,gt=0"`
	StudentIDs []int  `json:"studentIds" validate:"dive,gt=0"`
}

// GroupStudentsResponse miembros del grupo y estudiantes que se pueden asignar.
type GroupStudentsResponse struct {
	Group     entity.TrainingGroup `json:"group"`
	Members   []entity.Student     `json:"members"`
	Available []entity.Student     `json:"available"`
}

// TimetableEntry grupo colocado en el horario semanal.
type TimetableEntry struct {
	GroupID int    `json:"groupId"`
	Name    string `json:"name"`
	Level   string `json:"level"`
}

// TimetableSlot celda día/hora. Day 0 = domingo.
type TimetableSlot struct {
	Day    int              `json:"day"`
	Hour   int              `json:"hour"`
	Groups []TimetableEntry `json:"groups"`
}

// TimetableResponse horario semanal (07:00-21:00) con solo las celdas ocupadas.
type TimetableResponse struct {
	Days  []string        `json:"days"`
	Hours []int           `json:"hours"`
	Slots []TimetableSlot `json:"slots"`
}

// AssistanceFormResponse estudiantes y sesiones para el registro de asistencia.
type AssistanceFormResponse struct {
	Students []entity.Student         `json:"students"`
	Sessions []entity.TrainingSession `json:"sessions"`
}

// AssistanceRequest alta de asistencia; la fecha la fija el servidor.
type AssistanceRequest struct {
	StudentID int `json:"studentId" validate:"required,gt=0"`
	SessionID int `json:"sessionId" validate:"required,gt=0"`
}

// MembershipRequest alta/edición de membresía. Fechas en formato 2006-01-02.
type MembershipRequest struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Type      string `json:"type" validate:"required,oneof=BASIC ADVANCED PREMIUM NO_LIMIT TRIAL"`
	Status    string `json:"status" validate:"required,oneof=ACTIVE INACTIVE SUSPENDED"`
}

// AssignMembershipRequest asigna una membresía a un estudiante.
type AssignMembershipRequest struct {
	StudentID    int `json:"studentId" validate:"required,gt=0"`
	MembershipID int `json:"membershipId" validate:"required,gt=0"`
}
