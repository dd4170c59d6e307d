package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/application/people"
)

const (
	msgUserDelFailed    = "No se pudo eliminar el usuario."
	msgUserUpdFailed    = "Error al actualizar el usuario."
	msgHistoryDelFailed = "No se pudo eliminar el evento."
)

// UserHandler alta de usuarios por rol, edición y listado.
type UserHandler struct {
	uc *people.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *people.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) Form(c *fiber.Ctx) error {
	out, err := h.uc.Form(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, people.MsgUsersFailed)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear usuario (estudiante, profesor o administrador)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "datos del usuario y roleName"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Create(c.Context(), GetToken(c), in); err != nil {
		return respondError(c, err, people.MsgUserFailed)
	}
	return ok(c, fiber.StatusCreated, people.MsgUserCreated, nil)
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, people.MsgUsersFailed)
	}
	return list(c, items)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, valid := intParam(c, "id")
	if !valid {
		return invalidID(c)
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Update(c.Context(), GetToken(c), id, in); err != nil {
		return respondError(c, err, msgUserUpdFailed)
	}
	return ok(c, fiber.StatusOK, people.MsgUserUpdated, nil)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, valid := intParam(c, "id")
	if !valid {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.Context(), GetToken(c), id); err != nil {
		return respondError(c, err, msgUserDelFailed)
	}
	return ok(c, fiber.StatusOK, people.MsgUserDeleted, nil)
}

// Students listado de estudiantes.
func (h *UserHandler) Students(c *fiber.Ctx) error {
	items, err := h.uc.Students(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, people.MsgStudentFailed)
	}
	return list(c, items)
}

// NotificationHandler notificaciones con mensaje en Markdown.
type NotificationHandler struct {
	uc *people.NotificationUseCase
}

// NewNotificationHandler construye el handler de notificaciones.
func NewNotificationHandler(uc *people.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) Form(c *fiber.Ctx) error {
	out, err := h.uc.Form(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, people.MsgUsersFailed)
	}
	return c.JSON(out)
}

func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var in dto.NotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Create(c.Context(), GetToken(c), in); err != nil {
		return respondError(c, err, people.MsgNotificationFailed)
	}
	return ok(c, fiber.StatusCreated, people.MsgNotificationCreated, nil)
}

// List notificaciones con el mensaje ya convertido a HTML.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, people.MsgNotificationsFailed)
	}
	return list(c, items)
}

// HistoryHandler historial de estudiantes y "mi historial".
type HistoryHandler struct {
	uc *people.HistoryUseCase
}

// NewHistoryHandler construye el handler del historial.
func NewHistoryHandler(uc *people.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

func (h *HistoryHandler) Form(c *fiber.Ctx) error {
	out, err := h.uc.Form(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, people.MsgStudentFailed)
	}
	return c.JSON(out)
}

func (h *HistoryHandler) Create(c *fiber.Ctx) error {
	var in dto.StudentHistoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Create(c.Context(), GetToken(c), in); err != nil {
		return respondError(c, err, people.MsgHistoryFailed)
	}
	return ok(c, fiber.StatusCreated, people.MsgHistoryCreated, nil)
}

func (h *HistoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, people.MsgHistoryLoad)
	}
	return list(c, items)
}

func (h *HistoryHandler) Delete(c *fiber.Ctx) error {
	id, valid := intParam(c, "id")
	if !valid {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.Context(), GetToken(c), id); err != nil {
		return respondError(c, err, msgHistoryDelFailed)
	}
	return ok(c, fiber.StatusOK, people.MsgHistoryDeleted, nil)
}

// Mine historial del estudiante de la sesión.
func (h *HistoryHandler) Mine(c *fiber.Ctx) error {
	items, err := h.uc.Mine(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, people.MsgHistoryLoad)
	}
	return list(c, items)
}
