package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/memberflow-console/internal/application/auth"
	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/domain"
)

const (
	msgLoggedIn      = "Sesión iniciada."
	msgLoggedOut     = "Sesión cerrada."
	msgLoginFailed   = "No se pudo iniciar sesión."
	msgProfileFailed = "Error al cargar el perfil."
)

// CookieConfig atributos de la cookie de sesión.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler maneja login, logout, navegación y perfil.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie CookieConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Valida credenciales contra el backend y abre la sesión de la consola (cookie HttpOnly).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.MessageResponse{data=dto.LoginResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			c.Locals(LocalError, err)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: auth.MsgBadCredentials})
		}
		return respondError(c, err, msgLoginFailed)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    out.SessionID,
		Path:     "/",
		Expires:  out.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return ok(c, fiber.StatusOK, msgLoggedIn, out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.Context(), c.Cookies(h.cookie.Name)); err != nil {
		return respondError(c, err, msgInternal)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return ok(c, fiber.StatusOK, msgLoggedOut, nil)
}

// Navigation godoc
// @Summary      Menú y destino del rol de la sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.NavigationResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/navigation [get]
func (h *AuthHandler) Navigation(c *fiber.Ctx) error {
	return c.JSON(auth.Navigation(GetRole(c)))
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Produce      json
// @Success      200  {object}  entity.User
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	u, err := h.uc.Profile(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, msgProfileFailed)
	}
	return c.JSON(u)
}
