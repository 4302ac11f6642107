package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/invorya/asistencia-api/internal/application/dto"
	"github.com/invorya/asistencia-api/internal/application/usecase"
)

// StudentHandler maneja las peticiones HTTP para estudiantes (protegido).
type StudentHandler struct {
	uc *usecase.StudentUseCase
}

// NewStudentHandler construye el handler.
func NewStudentHandler(uc *usecase.StudentUseCase) *StudentHandler {
	return &StudentHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar estudiante
// @Tags         student
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStudentRequest  true  "Datos del estudiante"
// @Success      201   {object}  dto.StudentResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /student/ [post]
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStudentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un estudiante por UUID.
func (h *StudentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return notFound(c, "estudiante no encontrado")
	}
	return c.JSON(out)
}

// GetByStudentID godoc
// @Summary      Obtener estudiante por matrícula
// @Tags         student
// @Security     Bearer
// @Produce      json
// @Param        student_id  path  string  true  "Matrícula visible del estudiante"
// @Success      200  {object}  dto.StudentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /student/matricula/{student_id} [get]
func (h *StudentHandler) GetByStudentID(c *fiber.Ctx) error {
	out, err := h.uc.GetByStudentID(c.Params("student_id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return notFound(c, "estudiante no encontrado")
	}
	return c.JSON(out)
}

// List lista estudiantes.
func (h *StudentHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Credential godoc
// @Summary      Credencial PDF del estudiante (con QR)
// @Tags         student
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "UUID del estudiante"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /student/{id}/credential [get]
func (h *StudentHandler) Credential(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.CredentialPDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if pdfBytes == nil {
		return notFound(c, "estudiante no encontrado")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="credential.pdf"`)
	return c.Send(pdfBytes)
}
