package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/invorya/asistencia-api/internal/application/auth"
	"github.com/invorya/asistencia-api/internal/application/dto"
	"github.com/invorya/asistencia-api/internal/domain"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         login
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "fullname del usuario"
// @Param        password  formData  string  true  "password"
// @Success      200  {object}  dto.TokenResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /login/token [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	// Form-encoded, compatible con el flujo OAuth2 password de los clientes.
	username := c.FormValue("username")
	pass := c.FormValue("password")
	if username == "" || pass == "" {
		return unauthorized(c)
	}
	out, err := h.uc.Login(username, pass)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			// 401 uniforme: usuario inexistente y password incorrecto son indistinguibles.
			return unauthorized(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
