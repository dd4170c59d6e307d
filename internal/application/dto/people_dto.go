package dto

import "github.com/jhoicas/memberflow-console/internal/domain/entity"

// UserFormResponse datos de referencia del alta de usuario.
type UserFormResponse struct {
	Roles       []entity.Role       `json:"roles"`
	Memberships []entity.Membership `json:"memberships"`
}

// CreateUserRequest alta de usuario. Los campos de estudiante o profesor solo aplican a ese rol.
type CreateUserRequest struct {
	Name        string `json:"name" validate:"required"`
	Surname     string `json:"surname" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Status      string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
	RoleName    string `json:"roleName" validate:"required,oneof=ROLE_ADMIN ROLE_TEACHER ROLE_STUDENT"`

	DNI           string `json:"dni" validate:"required_if=RoleName ROLE_STUDENT"`
	Birthdate     string `json:"birthdate"`
	Belt          string `json:"belt"`
	Progress      string `json:"progress"`
	MedicalReport string `json:"medicalReport"`
	ParentName    string `json:"parentName"`
	MembershipID  *int   `json:"membershipId"`

	Discipline string `json:"discipline" validate:"required_if=RoleName ROLE_TEACHER"`
}

// UpdateUserRequest edición de datos básicos de usuario.
type UpdateUserRequest struct {
	Name        string `json:"name" validate:"required"`
	Surname     string `json:"surname"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Status      string `json:"status" validate:"required,oneof=ACTIVE INACTIVE SUSPENDED"`
}

// NotificationFormResponse destinatarios posibles.
type NotificationFormResponse struct {
	Users []entity.User `json:"users"`
}

// NotificationRequest alta de notificación. Message admite Markdown; ShippingDate vacío = ahora.
type NotificationRequest struct {
	Title        string `json:"title" validate:"required"`
	Message      string `json:"message" validate:"required"`
	Type         string `json:"type" validate:"required"`
	ShippingDate string `json:"shippingDate"`
	UserIDs      []int  `json:"userIds" validate:"required,min=1,dive,gt=0"`
}

// NotificationView notificación con el mensaje ya convertido a HTML seguro.
type NotificationView struct {
	entity.Notification
	MessageHTML string `json:"messageHtml"`
}

// StudentHistoryFormResponse estudiantes para el selector.
type StudentHistoryFormResponse struct {
	Students []entity.Student `json:"students"`
}

// StudentHistoryRequest alta de evento de historial.
type StudentHistoryRequest struct {
	StudentID   int    `json:"studentId" validate:"required,gt=0"`
	EventDate   string `json:"eventDate" validate:"required,datetime=2006-01-02"`
	EventType   string `json:"eventType" validate:"required"`
	Description string `json:"description" validate:"required"`
}
