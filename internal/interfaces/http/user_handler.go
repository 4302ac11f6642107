package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/invorya/asistencia-api/internal/application/dto"
	"github.com/invorya/asistencia-api/internal/application/usecase"
)

// UserHandler maneja las peticiones HTTP para cuentas de usuario.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar usuario
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "fullname, password"
// @Success      201   {object}  dto.ShowUser
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /user/ [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         user
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "UUID del usuario"
// @Success      200  {object}  dto.ShowUser
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /user/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return notFound(c, "usuario no encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario (parcial)
// @Tags         user
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "UUID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.UpdatedUserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /user/{id} [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	actor := CurrentUser(c)
	if actor == nil {
		return unauthorized(c)
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(actor, c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return notFound(c, "usuario no encontrado o inactivo")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar usuario (soft delete)
// @Tags         user
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "UUID del usuario"
// @Success      200  {object}  dto.DeleteUserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      406  {object}  dto.ErrorResponse
// @Router       /user/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	actor := CurrentUser(c)
	if actor == nil {
		return unauthorized(c)
	}
	out, err := h.uc.Delete(actor, c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		// Segundo borrado de una cuenta inactiva: not-found, no éxito.
		return notFound(c, "usuario no encontrado o ya inactivo")
	}
	return c.JSON(out)
}

// GrantAdmin godoc
// @Summary      Otorgar privilegio admin
// @Tags         user
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "UUID del usuario"
// @Success      200  {object}  dto.UpdatedUserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /user/{id}/admin_privilege [patch]
func (h *UserHandler) GrantAdmin(c *fiber.Ctx) error {
	actor := CurrentUser(c)
	if actor == nil {
		return unauthorized(c)
	}
	out, err := h.uc.GrantAdmin(actor, c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return notFound(c, "usuario no encontrado o inactivo")
	}
	return c.JSON(out)
}

// RevokeAdmin godoc
// @Summary      Revocar privilegio admin
// @Tags         user
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "UUID del usuario"
// @Success      200  {object}  dto.UpdatedUserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      406  {object}  dto.ErrorResponse
// @Router       /user/{id}/admin_privilege [delete]
func (h *UserHandler) RevokeAdmin(c *fiber.Ctx) error {
	actor := CurrentUser(c)
	if actor == nil {
		return unauthorized(c)
	}
	out, err := h.uc.RevokeAdmin(actor, c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return notFound(c, "usuario no encontrado o inactivo")
	}
	return c.JSON(out)
}
