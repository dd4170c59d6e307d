package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/memberflow-console/internal/application/billing"
	"github.com/jhoicas/memberflow-console/internal/application/dto"
)

const msgInvoiceDelFailed = "No se pudo eliminar la factura."

// InvoiceHandler formulario de factura, proforma y listado.
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler construye el handler de facturas.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Form godoc
// @Summary      Datos del formulario de factura
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  dto.InvoiceFormResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/invoices/form [get]
func (h *InvoiceHandler) Form(c *fiber.Ctx) error {
	out, err := h.uc.LoadForm(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, billing.MsgInvoiceFormData)
	}
	return c.JSON(out)
}

// Preview godoc
// @Summary      Calcula líneas y totales de la factura en edición
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InvoiceDraftRequest  true  "líneas"
// @Success      200   {object}  dto.InvoicePreviewResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/invoices/preview [post]
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	var in dto.InvoiceDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Preview(c.Context(), GetToken(c), in)
	if err != nil {
		return respondError(c, err, billing.MsgInvoiceFormData)
	}
	return c.JSON(out)
}

// PreviewPDF proforma en PDF de la factura en edición.
func (h *InvoiceHandler) PreviewPDF(c *fiber.Ctx) error {
	var in dto.InvoiceDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	pdf, err := h.uc.PreviewPDF(c.Context(), GetToken(c), in)
	if err != nil {
		return respondError(c, err, billing.MsgPDFFailed)
	}
	return sendPDF(c, pdf, "proforma.pdf")
}

// Create godoc
// @Summary      Crear factura con sus líneas
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InvoiceDraftRequest  true  "userId, date, lines"
// @Success      201   {object}  dto.MessageResponse{data=entity.Invoice}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	inv, err := h.uc.Submit(c.Context(), GetToken(c), in)
	if err != nil {
		return respondError(c, err, billing.MsgInvoiceFailed)
	}
	return ok(c, fiber.StatusCreated, billing.MsgInvoiceCreated, inv)
}

// List facturas; con ?userId= solo las de ese usuario.
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	if c.Query("userId") != "" {
		userID, valid := intQuery(c, "userId")
		if !valid {
			return invalidID(c)
		}
		items, err := h.uc.ListByUser(c.Context(), GetToken(c), userID)
		if err != nil {
			return respondError(c, err, billing.MsgInvoicesFailed)
		}
		return list(c, items)
	}
	items, err := h.uc.List(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, billing.MsgInvoicesFailed)
	}
	return list(c, items)
}

// PDF descarga el PDF de una factura guardada, tal como lo devuelve el backend.
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	id, valid := intParam(c, "id")
	if !valid {
		return invalidID(c)
	}
	pdf, err := h.uc.DownloadPDF(c.Context(), GetToken(c), id)
	if err != nil {
		return respondError(c, err, billing.MsgPDFFailed)
	}
	return sendPDF(c, pdf, fmt.Sprintf("factura-%d.pdf", id))
}

func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, valid := intParam(c, "id")
	if !valid {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.Context(), GetToken(c), id); err != nil {
		return respondError(c, err, msgInvoiceDelFailed)
	}
	return ok(c, fiber.StatusOK, billing.MsgInvoiceDeleted, nil)
}

func sendPDF(c *fiber.Ctx, pdf []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
