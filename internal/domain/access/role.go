// Package access resuelve el rol del token y decide qué secciones puede ver cada rol.
package access

import (
	"strings"
	"time"

	pkgjwt "github.com/jhoicas/memberflow-console/pkg/jwt"
)

// Role conjunto cerrado de roles de la consola. El valor cero es "sin resolver".
type Role int

const (
	RoleNone Role = iota
	RoleAdmin
	RoleTeacher
	RoleStudent
)

// String devuelve la etiqueta de permiso del backend.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "FULL_ACCESS"
	case RoleTeacher:
		return "MANAGE_STUDENTS"
	case RoleStudent:
		return "VIEW_OWN_DATA"
	default:
		return ""
	}
}

// Slug nombre corto usado en rutas de la interfaz.
func (r Role) Slug() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleTeacher:
		return "teacher"
	case RoleStudent:
		return "student"
	default:
		return ""
	}
}

// ParseRole traduce el claim "role". Acepta las etiquetas de permiso y los nombres de rol
// ROLE_ADMIN, ROLE_TEACHER, ROLE_STUDENT. Cualquier otro valor no resuelve.
func ParseRole(claim string) (Role, bool) {
	switch strings.ToUpper(strings.TrimSpace(claim)) {
	case "FULL_ACCESS", "ROLE_ADMIN":
		return RoleAdmin, true
	case "MANAGE_STUDENTS", "ROLE_TEACHER":
		return RoleTeacher, true
	case "VIEW_OWN_DATA", "ROLE_STUDENT":
		return RoleStudent, true
	default:
		return RoleNone, false
	}
}

// Resolver decodifica el rol de un token. Con Secret vacío no verifica la firma.
type Resolver struct {
	Secret string
	Now    func() time.Time
}

// NewResolver construye el resolver con el reloj del sistema.
func NewResolver(secret string) *Resolver {
	return &Resolver{Secret: secret, Now: time.Now}
}

// ResolveRole devuelve el rol del token o (RoleNone, false) si el token falta, no se puede
// decodificar, expiró o no trae un rol conocido. Nunca devuelve error.
func (r *Resolver) ResolveRole(token string) (Role, bool) {
	if r == nil || token == "" {
		return RoleNone, false
	}
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	claims, err := pkgjwt.Parse(r.Secret, token, now())
	if err != nil || claims == nil {
		return RoleNone, false
	}
	return ParseRole(claims.Role)
}
