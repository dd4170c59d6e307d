package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/domain"
	"github.com/jhoicas/memberflow-console/pkg/validation"
)

const (
	msgInvalidBody   = "Cuerpo de la petición no válido."
	msgInvalidID     = "Identificador no válido."
	msgLoginRequired = "Inicia sesión para continuar."
	msgAccessDenied  = "No tienes permiso para acceder a esta sección."
	msgInternal      = "Se produjo un error inesperado."
)

// LocalError guarda el error del handler para que el logger de peticiones lo registre.
const LocalError = "handler_error"

// ok responde {message, data}.
func ok(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.MessageResponse{Message: message, Data: data})
}

// respondError traduce el error de un caso de uso a la respuesta HTTP.
// fallback es el texto del formulario para fallos del backend.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	c.Locals(LocalError, err)
	var verr *domain.ValidationError
	var rerr *domain.RemoteError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: verr.Message, Fields: verr.Fields})
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrSessionExpired):
		return loginRequired(c)
	case errors.Is(err, domain.ErrForbidden):
		return accessDenied(c)
	case errors.As(err, &rerr):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "REMOTE", Message: remoteMessage(rerr, fallback)})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msgInternal})
	}
}

// remoteMessage usa el mensaje del backend en errores 4xx; en el resto, solo el texto del formulario.
func remoteMessage(rerr *domain.RemoteError, fallback string) string {
	if rerr.Status >= http.StatusBadRequest && rerr.Status < http.StatusInternalServerError && rerr.Message != "" {
		return strings.TrimSuffix(fallback, ".") + ": " + rerr.Message
	}
	return fallback
}

func loginRequired(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "LOGIN_REQUIRED", Message: msgLoginRequired, Redirect: "/"})
}

func accessDenied(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCESS_DENIED", Message: msgAccessDenied})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: msgInvalidBody})
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msgInvalidID})
}

// intParam lee un parámetro de ruta entero positivo.
func intParam(c *fiber.Ctx, name string) (int, bool) {
	id, err := strconv.Atoi(c.Params(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// intQuery lee un parámetro de consulta entero positivo.
func intQuery(c *fiber.Ctx, name string) (int, bool) {
	id, err := strconv.Atoi(c.Query(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// pageOf lee limit/offset de la consulta.
func pageOf(c *fiber.Ctx) (dto.PageRequest, error) {
	var p dto.PageRequest
	if err := c.QueryParser(&p); err != nil {
		return p, domain.NewValidationError(msgInvalidBody).With("limit", "valor no válido")
	}
	if err := validation.Struct(p); err != nil {
		return p, err
	}
	return p, nil
}

// list responde una página del listado completo.
func list[T any](c *fiber.Ctx, items []T) error {
	p, err := pageOf(c)
	if err != nil {
		return respondError(c, err, msgInvalidBody)
	}
	return c.JSON(dto.Paginate(items, p))
}
