package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/invorya/asistencia-api/internal/application/auth"
	"github.com/invorya/asistencia-api/internal/application/dto"
	"github.com/invorya/asistencia-api/internal/domain/entity"
)

// Locals key para el usuario actual en Fiber.
const localCurrentUser = "current_user"

// AuthMiddleware valida el Bearer Token y resuelve el usuario VIVO desde la
// base (nunca una copia del token): cambios de rol o desactivación aplican en
// la petición siguiente. Toda falla responde 401 sin distinguir la causa.
func AuthMiddleware(authUC *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c)
		}
		user, err := authUC.CurrentUser(tokenString)
		if err != nil {
			return unauthorized(c)
		}
		c.Locals(localCurrentUser, user)
		return c.Next()
	}
}

// CurrentUser devuelve el usuario del contexto (después del middleware de auth).
func CurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(localCurrentUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Code:    "UNAUTHORIZED",
		Message: "no se pudieron validar las credenciales",
	})
}
