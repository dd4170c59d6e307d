package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/memberflow-console/internal/application/billing"
	"github.com/jhoicas/memberflow-console/internal/application/dto"
)

const msgPaymentDelFailed = "No se pudo eliminar el pago."

// PaymentHandler registro y listado de pagos.
type PaymentHandler struct {
	uc *billing.PaymentUseCase
}

// NewPaymentHandler construye el handler de pagos.
func NewPaymentHandler(uc *billing.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

func (h *PaymentHandler) Form(c *fiber.Ctx) error {
	out, err := h.uc.Form(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, billing.MsgInvoiceFormData)
	}
	return c.JSON(out)
}

// Pending facturas NOT_PAID del usuario para el desplegable del formulario.
func (h *PaymentHandler) Pending(c *fiber.Ctx) error {
	userID, valid := intParam(c, "userId")
	if !valid {
		return invalidID(c)
	}
	items, err := h.uc.PendingInvoices(c.Context(), GetToken(c), userID)
	if err != nil {
		return respondError(c, err, billing.MsgInvoicesFailed)
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Registrar el pago de una factura pendiente
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "userId, invoiceId, amount, paymentMethod"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Register(c.Context(), GetToken(c), in); err != nil {
		return respondError(c, err, billing.MsgPaymentFailed)
	}
	return ok(c, fiber.StatusCreated, billing.MsgPaymentRegistered, nil)
}

// List pagos de ?userId=.
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	userID, valid := intQuery(c, "userId")
	if !valid {
		return invalidID(c)
	}
	items, err := h.uc.ListByUser(c.Context(), GetToken(c), userID)
	if err != nil {
		return respondError(c, err, billing.MsgPaymentsFailed)
	}
	return list(c, items)
}

func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	id, valid := intParam(c, "id")
	if !valid {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.Context(), GetToken(c), id); err != nil {
		return respondError(c, err, msgPaymentDelFailed)
	}
	return ok(c, fiber.StatusOK, billing.MsgPaymentDeleted, nil)
}
