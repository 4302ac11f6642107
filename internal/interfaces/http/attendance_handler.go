package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/invorya/asistencia-api/internal/application/attendance"
	"github.com/invorya/asistencia-api/internal/application/dto"
)

// AttendanceHandler maneja el check-in y las consultas de asistencia (protegido).
type AttendanceHandler struct {
	uc *attendance.CheckInUseCase
}

// NewAttendanceHandler construye el handler.
func NewAttendanceHandler(uc *attendance.CheckInUseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// CheckIn godoc
// @Summary      Registrar asistencia por QR
// @Tags         attendance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckInRequest  true  "qr_code escaneado"
// @Success      201   {object}  dto.AttendanceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /attendance/check_in [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	var in dto.CheckInRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.CheckIn(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByStudent lista la asistencia de un estudiante por matrícula.
func (h *AttendanceHandler) ListByStudent(c *fiber.Ctx) error {
	studentID := c.Query("student_id")
	if studentID == "" {
		return badRequest(c, "student_id es requerido")
	}
	page := pageFromQuery(c)
	out, err := h.uc.ListByStudent(studentID, page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListByChange lista la asistencia de un turno.
func (h *AttendanceHandler) ListByChange(c *fiber.Ctx) error {
	changeID, err := c.ParamsInt("change_id")
	if err != nil {
		return badRequest(c, "change_id inválido")
	}
	page := pageFromQuery(c)
	out, err := h.uc.ListByChange(changeID, page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
