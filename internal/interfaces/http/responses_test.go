package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/domain"
)

func errorApp(err error, fallback string) *fiber.App {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return respondError(c, err, fallback) })
	return app
}

func TestRespondError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		code     string
		message  string
		hasField string
	}{
		{
			name:     "validación con campos",
			err:      domain.NewValidationError("Completa todos los campos.").With("amount", "es obligatorio"),
			status:   fiber.StatusBadRequest,
			code:     "VALIDATION",
			message:  "Completa todos los campos.",
			hasField: "amount",
		},
		{
			name:    "backend 4xx con mensaje",
			err:     &domain.RemoteError{Op: "POST /invoices", Status: 400, Message: "Usuario sin estudiante"},
			status:  fiber.StatusBadGateway,
			code:    "REMOTE",
			message: "Error al crear la factura: Usuario sin estudiante",
		},
		{
			name:    "backend 5xx usa el texto del formulario",
			err:     &domain.RemoteError{Op: "GET /invoices", Status: 500, Message: "NullPointerException"},
			status:  fiber.StatusBadGateway,
			code:    "REMOTE",
			message: "Error al crear la factura",
		},
		{
			name:    "error de red",
			err:     &domain.RemoteError{Op: "GET /invoices", Err: errors.New("connection refused")},
			status:  fiber.StatusBadGateway,
			code:    "REMOTE",
			message: "Error al crear la factura",
		},
		{
			name:   "sesión vencida",
			err:    domain.ErrSessionExpired,
			status: fiber.StatusUnauthorized,
			code:   "LOGIN_REQUIRED",
		},
		{
			name:    "sección no permitida",
			err:     fmt.Errorf("%w: student sin acceso a invoices", domain.ErrForbidden),
			status:  fiber.StatusForbidden,
			code:    "ACCESS_DENIED",
			message: msgAccessDenied,
		},
		{
			name:    "403 del backend sigue siendo REMOTE",
			err:     &domain.RemoteError{Op: "DELETE /users", Status: 403},
			status:  fiber.StatusBadGateway,
			code:    "REMOTE",
			message: "Error al crear la factura",
		},
		{
			name:    "error inesperado no expone el detalle",
			err:     errors.New("boom"),
			status:  fiber.StatusInternalServerError,
			code:    "INTERNAL",
			message: msgInternal,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := errorApp(tc.err, "Error al crear la factura").Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.code, body.Code)
			if tc.message != "" {
				assert.Equal(t, tc.message, body.Message)
			}
			if tc.hasField != "" {
				assert.Contains(t, body.Fields, tc.hasField)
			}
		})
	}
}

func TestList_Pagina(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return list(c, []int{1, 2, 3, 4, 5}) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/?limit=2&offset=2", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.ListResponse[int]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []int{3, 4}, body.Items)
	assert.Equal(t, 5, body.Page.Total)
}

func TestList_LimiteFueraDeRango(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return list(c, []int{1}) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/?limit=500", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
