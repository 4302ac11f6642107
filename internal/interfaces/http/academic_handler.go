package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/invorya/asistencia-api/internal/application/dto"
	"github.com/invorya/asistencia-api/internal/application/usecase"
)

// Handlers de las dimensiones académicas (protegidos). Todos siguen el mismo
// contrato: POST crea, GET /:id obtiene, GET lista con limit/offset.

// ── Faculty ───────────────────────────────────────────────────────────────────

// FacultyHandler maneja las peticiones HTTP para Faculty.
type FacultyHandler struct {
	uc *usecase.FacultyUseCase
}

// NewFacultyHandler construye el handler.
func NewFacultyHandler(uc *usecase.FacultyUseCase) *FacultyHandler {
	return &FacultyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear facultad
// @Tags         faculty
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFacultyRequest  true  "Datos de la facultad"
// @Success      201   {object}  dto.FacultyResponse
// @Router       /faculty/ [post]
func (h *FacultyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFacultyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una facultad por ID.
func (h *FacultyHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return notFound(c, "facultad no encontrada")
	}
	return c.JSON(out)
}

// List lista facultades.
func (h *FacultyHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ── StudyYear ─────────────────────────────────────────────────────────────────

// StudyYearHandler maneja las peticiones HTTP para StudyYear.
type StudyYearHandler struct {
	uc *usecase.StudyYearUseCase
}

// NewStudyYearHandler construye el handler.
func NewStudyYearHandler(uc *usecase.StudyYearUseCase) *StudyYearHandler {
	return &StudyYearHandler{uc: uc}
}

// Create crea un año lectivo.
func (h *StudyYearHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStudyYearRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un año lectivo por ID.
func (h *StudyYearHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return notFound(c, "año lectivo no encontrado")
	}
	return c.JSON(out)
}

// List lista años lectivos.
func (h *StudyYearHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ── Change ────────────────────────────────────────────────────────────────────

// ChangeHandler maneja las peticiones HTTP para Change (turno).
type ChangeHandler struct {
	uc *usecase.ChangeUseCase
}

// NewChangeHandler construye el handler.
func NewChangeHandler(uc *usecase.ChangeUseCase) *ChangeHandler {
	return &ChangeHandler{uc: uc}
}

// Create crea un turno.
func (h *ChangeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un turno por ID.
func (h *ChangeHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return notFound(c, "turno no encontrado")
	}
	return c.JSON(out)
}

// List lista turnos.
func (h *ChangeHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ── Profession ────────────────────────────────────────────────────────────────

// ProfessionHandler maneja las peticiones HTTP para Profession.
type ProfessionHandler struct {
	uc *usecase.ProfessionUseCase
}

// NewProfessionHandler construye el handler.
func NewProfessionHandler(uc *usecase.ProfessionUseCase) *ProfessionHandler {
	return &ProfessionHandler{uc: uc}
}

// Create crea una carrera.
func (h *ProfessionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProfessionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una carrera por ID.
func (h *ProfessionHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return notFound(c, "carrera no encontrada")
	}
	return c.JSON(out)
}

// List lista carreras.
func (h *ProfessionHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ── Group ─────────────────────────────────────────────────────────────────────

// GroupHandler maneja las peticiones HTTP para Group.
type GroupHandler struct {
	uc *usecase.GroupUseCase
}

// NewGroupHandler construye el handler.
func NewGroupHandler(uc *usecase.GroupUseCase) *GroupHandler {
	return &GroupHandler{uc: uc}
}

// Create crea un grupo.
func (h *GroupHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un grupo por ID.
func (h *GroupHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return notFound(c, "grupo no encontrado")
	}
	return c.JSON(out)
}

// List lista grupos.
func (h *GroupHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// pageFromQuery lee limit/offset con defaults y topes.
func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	return page
}
