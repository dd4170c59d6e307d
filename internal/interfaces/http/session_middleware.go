package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/internal/domain/access"
	"github.com/jhoicas/memberflow-console/internal/domain/entity"
)

// Locals keys de la sesión en Fiber.
const (
	LocalToken = "token"
	LocalRole  = "role"
	LocalEmail = "email"
)

// sessionLookup es el contrato mínimo que necesita el middleware. Lo implementa *auth.AuthUseCase.
type sessionLookup interface {
	Session(ctx context.Context, rawID string) (*entity.Session, error)
}

// SessionMiddleware carga la sesión de la cookie y resuelve el rol del token una sola vez por petición.
// Sin sesión o con sesión vencida responde 401. Un token sin rol reconocido deja RoleNone en locals:
// la sesión sigue abierta pero ninguna sección está permitida.
func SessionMiddleware(sessions sessionLookup, resolver *access.Resolver, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(cookieName)
		if raw == "" {
			return loginRequired(c)
		}
		s, err := sessions.Session(c.Context(), raw)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrSessionExpired) {
				return loginRequired(c)
			}
			c.Locals(LocalError, err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "SESSION_STORE",
				Message: "no se pudo verificar la sesión, intente más tarde",
			})
		}
		role, _ := resolver.ResolveRole(s.Token)
		c.Locals(LocalToken, s.Token)
		c.Locals(LocalRole, role)
		c.Locals(LocalEmail, s.Email)
		return c.Next()
	}
}

// RequireSection permite el paso solo si el rol de la petición tiene la sección en la tabla de permisos.
// Debe usarse DESPUÉS de SessionMiddleware.
func RequireSection(section access.Section) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := access.Authorize(GetRole(c), section); err != nil {
			return respondError(c, err, "")
		}
		return c.Next()
	}
}

// GetToken devuelve el token de la sesión (después de SessionMiddleware).
func GetToken(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalToken).(string)
	return s
}

// GetRole devuelve el rol resuelto; RoleNone si no hay.
func GetRole(c *fiber.Ctx) access.Role {
	r, _ := c.Locals(LocalRole).(access.Role)
	return r
}

// GetEmail devuelve el email de la sesión.
func GetEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}
