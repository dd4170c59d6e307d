package entity

// Status valores de estado compartidos por todas las entidades del backend.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusInactive  Status = "INACTIVE"
	StatusSuspended Status = "SUSPENDED"
	StatusDeleted   Status = "DELETED"
	StatusPaid      Status = "PAID"
	StatusNotPaid   Status = "NOT_PAID"
	StatusSent      Status = "SENT"
	StatusNotSent   Status = "NOT_SENT"
	StatusPending   Status = "PENDING"
)

// PaymentMethod medios de pago aceptados.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "CASH"
	PaymentCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// MembershipType tipos de membresía.
type MembershipType string

const (
	MembershipBasic    MembershipType = "BASIC"
	MembershipAdvanced MembershipType = "ADVANCED"
	MembershipPremium  MembershipType = "PREMIUM"
	MembershipNoLimit  MembershipType = "NO_LIMIT"
	MembershipTrial    MembershipType = "TRIAL"
)

// ProductType categoría de un producto/servicio.
type ProductType string

const (
	ProductTypeProduct ProductType = "PRODUCT"
	ProductTypeService ProductType = "SERVICE"
)

// Nombres de rol tal como los expone /roles/getAll.
const (
	RoleNameAdmin   = "ROLE_ADMIN"
	RoleNameTeacher = "ROLE_TEACHER"
	RoleNameStudent = "ROLE_STUDENT"
)
