package dto

import (
	"time"

	"github.com/jhoicas/memberflow-console/internal/domain/access"
)

// LoginRequest body de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse resultado del login. SessionID viaja solo en la cookie.
type LoginResponse struct {
	SessionID string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	Role      string    `json:"role"`
	Landing   string    `json:"landing"`
}

// NavigationResponse rol resuelto, destino inicial y menú lateral.
type NavigationResponse struct {
	Role    string             `json:"role"`
	Slug    string             `json:"slug"`
	Landing string             `json:"landing"`
	Menu    []access.MenuGroup `json:"menu"`
}
