package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/memberflow-console/internal/application/classes"
	"github.com/jhoicas/memberflow-console/internal/application/dto"
	"github.com/jhoicas/memberflow-console/internal/domain/access"
)

const (
	msgGroupUpdFailed = "Error al actualizar el grupo de entrenamiento."
	msgGroupDelFailed = "No se pudo eliminar el grupo de entrenamiento."
)

// GroupHandler grupos de entrenamiento, sus alumnos y el horario.
type GroupHandler struct {
	uc *classes.GroupUseCase
}

// NewGroupHandler construye el handler de grupos.
func NewGroupHandler(uc *classes.GroupUseCase) *GroupHandler {
	return &GroupHandler{uc: uc}
}

func (h *GroupHandler) Form(c *fiber.Ctx) error {
	out, err := h.uc.Form(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, classes.MsgTeachersFailed)
	}
	return c.JSON(out)
}

func (h *GroupHandler) Create(c *fiber.Ctx) error {
	var in dto.TrainingGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Create(c.Context(), GetToken(c), in); err != nil {
		return respondError(c, err, classes.MsgGroupFailed)
	}
	return ok(c, fiber.StatusCreated, classes.MsgGroupCreated, nil)
}

func (h *GroupHandler) Update(c *fiber.Ctx) error {
	id, valid := intParam(c, "id")
	if !valid {
		return invalidID(c)
	}
	var in dto.TrainingGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Update(c.Context(), GetToken(c), id, in); err != nil {
		return respondError(c, err, msgGroupUpdFailed)
	}
	return ok(c, fiber.StatusOK, classes.MsgGroupUpdated, nil)
}

func (h *GroupHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, classes.MsgGroupsFailed)
	}
	return list(c, items)
}

func (h *GroupHandler) Delete(c *fiber.Ctx) error {
	id, valid := intParam(c, "id")
	if !valid {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.Context(), GetToken(c), id); err != nil {
		return respondError(c, err, msgGroupDelFailed)
	}
	return ok(c, fiber.StatusOK, classes.MsgGroupDeleted, nil)
}

// Students miembros y estudiantes disponibles del grupo.
func (h *GroupHandler) Students(c *fiber.Ctx) error {
	id, valid := intParam(c, "id")
	if !valid {
		return invalidID(c)
	}
	out, err := h.uc.Students(c.Context(), GetToken(c), id)
	if err != nil {
		return respondError(c, err, classes.MsgGroupStudents)
	}
	return c.JSON(out)
}

func (h *GroupHandler) Assign(c *fiber.Ctx) error {
	groupID, okGroup := intParam(c, "id")
	studentID, okStudent := intParam(c, "studentId")
	if !okGroup || !okStudent {
		return invalidID(c)
	}
	if err := h.uc.Assign(c.Context(), GetToken(c), groupID, studentID); err != nil {
		return respondError(c, err, classes.MsgAssignFailed)
	}
	return ok(c, fiber.StatusOK, classes.MsgStudentAssigned, nil)
}

func (h *GroupHandler) Remove(c *fiber.Ctx) error {
	groupID, okGroup := intParam(c, "id")
	studentID, okStudent := intParam(c, "studentId")
	if !okGroup || !okStudent {
		return invalidID(c)
	}
	if err := h.uc.Remove(c.Context(), GetToken(c), groupID, studentID); err != nil {
		return respondError(c, err, classes.MsgRemoveFailed)
	}
	return ok(c, fiber.StatusOK, classes.MsgStudentRemoved, nil)
}

// Timetable godoc
// @Summary      Horario semanal de grupos
// @Description  Un estudiante solo ve los grupos en los que está inscrito.
// @Tags         classes
// @Produce      json
// @Success      200  {object}  dto.TimetableResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/timetable [get]
func (h *GroupHandler) Timetable(c *fiber.Ctx) error {
	out, err := h.uc.Timetable(c.Context(), GetToken(c), GetRole(c) == access.RoleStudent)
	if err != nil {
		return respondError(c, err, classes.MsgTimetableFailed)
	}
	return c.JSON(out)
}

// TrainingSessionHandler sesiones de entrenamiento.
type TrainingSessionHandler struct {
	uc *classes.SessionUseCase
}

// NewTrainingSessionHandler construye el handler de sesiones.
func NewTrainingSessionHandler(uc *classes.SessionUseCase) *TrainingSessionHandler {
	return &TrainingSessionHandler{uc: uc}
}

func (h *TrainingSessionHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, classes.MsgSessionsFailed)
	}
	return list(c, items)
}

func (h *TrainingSessionHandler) Delete(c *fiber.Ctx) error {
	id, valid := intParam(c, "id")
	if !valid {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.Context(), GetToken(c), id); err != nil {
		return respondError(c, err, classes.MsgSessionDelFail)
	}
	return ok(c, fiber.StatusOK, classes.MsgSessionDeleted, nil)
}

// AssistanceHandler registro de asistencia y "mi asistencia".
type AssistanceHandler struct {
	uc *classes.AssistanceUseCase
}

// NewAssistanceHandler construye el handler de asistencia.
func NewAssistanceHandler(uc *classes.AssistanceUseCase) *AssistanceHandler {
	return &AssistanceHandler{uc: uc}
}

func (h *AssistanceHandler) Form(c *fiber.Ctx) error {
	out, err := h.uc.Form(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, classes.MsgAssistancesLoad)
	}
	return c.JSON(out)
}

// Sessions sesiones de los grupos de ?studentId=.
func (h *AssistanceHandler) Sessions(c *fiber.Ctx) error {
	studentID, valid := intQuery(c, "studentId")
	if !valid {
		return invalidID(c)
	}
	items, err := h.uc.SessionsForStudent(c.Context(), GetToken(c), studentID)
	if err != nil {
		return respondError(c, err, classes.MsgSessionsFailed)
	}
	return c.JSON(items)
}

func (h *AssistanceHandler) Create(c *fiber.Ctx) error {
	var in dto.AssistanceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Create(c.Context(), GetToken(c), in); err != nil {
		return respondError(c, err, classes.MsgAssistanceFailed)
	}
	return ok(c, fiber.StatusCreated, classes.MsgAssistanceCreated, nil)
}

func (h *AssistanceHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, classes.MsgAssistancesLoad)
	}
	return list(c, items)
}

// Mine asistencias del estudiante de la sesión.
func (h *AssistanceHandler) Mine(c *fiber.Ctx) error {
	items, err := h.uc.Mine(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, classes.MsgAssistancesLoad)
	}
	return list(c, items)
}

// MembershipHandler membresías y su asignación a estudiantes.
type MembershipHandler struct {
	uc *classes.MembershipUseCase
}

// NewMembershipHandler construye el handler de membresías.
func NewMembershipHandler(uc *classes.MembershipUseCase) *MembershipHandler {
	return &MembershipHandler{uc: uc}
}

func (h *MembershipHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), GetToken(c))
	if err != nil {
		return respondError(c, err, classes.MsgMembershipsFailed)
	}
	return list(c, items)
}

func (h *MembershipHandler) Create(c *fiber.Ctx) error {
	var in dto.MembershipRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Create(c.Context(), GetToken(c), in); err != nil {
		return respondError(c, err, classes.MsgMembershipFailed)
	}
	return ok(c, fiber.StatusCreated, classes.MsgMembershipCreated, nil)
}

func (h *MembershipHandler) Update(c *fiber.Ctx) error {
	id, valid := intParam(c, "id")
	if !valid {
		return invalidID(c)
	}
	var in dto.MembershipRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Update(c.Context(), GetToken(c), id, in); err != nil {
		return respondError(c, err, classes.MsgMembershipUpdFail)
	}
	return ok(c, fiber.StatusOK, classes.MsgMembershipUpdated, nil)
}

// Assign asigna una membresía a un estudiante.
func (h *MembershipHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignMembershipRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Assign(c.Context(), GetToken(c), in); err != nil {
		return respondError(c, err, classes.MsgMembershipUpdFail)
	}
	return ok(c, fiber.StatusOK, classes.MsgMembershipAssigned, nil)
}
