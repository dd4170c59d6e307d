package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/memberflow-console/internal/application/analytics"
)

// DashboardHandler pantalla de inicio.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen de inicio según el rol
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummary
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context(), GetToken(c), GetRole(c), GetEmail(c))
	if err != nil {
		return respondError(c, err, analytics.MsgDashboardFailed)
	}
	return c.JSON(out)
}
