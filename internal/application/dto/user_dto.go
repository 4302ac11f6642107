package dto

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// Patrón de nombre válido: letras latinas o cirílicas y guion, sin espacios
// ni dígitos. Heredado del esquema original de la base de usuarios.
var letterMatchPattern = regexp.MustCompile(`^[а-яА-Яa-zA-Z\-]+$`)

// ValidFullname normaliza a NFC (los nombres llegan a veces con diacríticos
// descompuestos desde clientes móviles) y valida contra el patrón de letras.
// Devuelve el nombre normalizado y si es válido.
func ValidFullname(fullname string) (string, bool) {
	n := norm.NFC.String(fullname)
	return n, letterMatchPattern.MatchString(n)
}

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Fullname string `json:"fullname"`
	Password string `json:"password"`
}

// ShowUser salida de un usuario (sin password).
// El campo se llama user_id y no id: drift heredado de revisiones anteriores
// del contrato, se conserva a propósito para no romper clientes.
type ShowUser struct {
	UserID   string   `json:"user_id"`
	Fullname string   `json:"fullname"`
	IsActive bool     `json:"is_active"`
	Roles    []string `json:"roles"`
}

// UpdateUserRequest entrada para actualización parcial de un usuario.
type UpdateUserRequest struct {
	Fullname *string `json:"fullname"`
}

// UpdatedUserResponse salida de una actualización.
type UpdatedUserResponse struct {
	UpdatedUserID string `json:"updated_user_id"`
}

// DeleteUserResponse salida de un soft delete.
type DeleteUserResponse struct {
	DeletedUserID string `json:"deleted_user_id"`
}

// TokenResponse salida del login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // siempre "bearer"
}
