package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/memberflow-console/internal/application/billing"
	"github.com/jhoicas/memberflow-console/internal/application/dto"
)

const msgProductDelFailed = "No se pudo eliminar el producto/servicio."

// CatalogHandler productos/servicios y tipos de IVA.
type CatalogHandler struct {
	uc *billing.CatalogUseCase
}

// NewCatalogHandler construye el handler del catálogo.
func NewCatalogHandler(uc *billing.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) ProductForm(c *fiber.Ctx) error {
	out, err := h.uc.ProductForm(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, billing.MsgIVATypesFailed)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	items, err := h.uc.ListProducts(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, billing.MsgProductsFailed)
	}
	return list(c, items)
}

// CreateProduct godoc
// @Summary      Crear producto/servicio
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "name, price, ivaTypeId"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.CreateProduct(c.Context(), GetToken(c), in); err != nil {
		return respondError(c, err, billing.MsgProductFailed)
	}
	return ok(c, fiber.StatusCreated, billing.MsgProductCreated, nil)
}

func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id, valid := intParam(c, "id")
	if !valid {
		return invalidID(c)
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.UpdateProduct(c.Context(), GetToken(c), id, in); err != nil {
		return respondError(c, err, billing.MsgProductFailed)
	}
	return ok(c, fiber.StatusOK, billing.MsgProductUpdated, nil)
}

func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	id, valid := intParam(c, "id")
	if !valid {
		return invalidID(c)
	}
	if err := h.uc.DeleteProduct(c.Context(), GetToken(c), id); err != nil {
		return respondError(c, err, msgProductDelFailed)
	}
	return ok(c, fiber.StatusOK, billing.MsgProductDeleted, nil)
}

func (h *CatalogHandler) ListIVATypes(c *fiber.Ctx) error {
	items, err := h.uc.ListIVATypes(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, billing.MsgIVATypesFailed)
	}
	return list(c, items)
}

func (h *CatalogHandler) CreateIVAType(c *fiber.Ctx) error {
	var in dto.IVATypeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.CreateIVAType(c.Context(), GetToken(c), in); err != nil {
		return respondError(c, err, billing.MsgIVATypeFailed)
	}
	return ok(c, fiber.StatusCreated, billing.MsgIVATypeCreated, nil)
}

func (h *CatalogHandler) DeleteIVAType(c *fiber.Ctx) error {
	id, valid := intParam(c, "id")
	if !valid {
		return invalidID(c)
	}
	if err := h.uc.DeleteIVAType(c.Context(), GetToken(c), id); err != nil {
		return respondError(c, err, billing.MsgIVATypeDelFailed)
	}
	return ok(c, fiber.StatusOK, billing.MsgIVATypeDeleted, nil)
}
