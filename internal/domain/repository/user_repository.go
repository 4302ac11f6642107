package repository

import "github.com/invorya/asistencia-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los getters devuelven (nil, nil) cuando el registro no existe; las
// mutaciones devuelven el ID afectado o "" si la precondición
// (registro existente y activo) no se cumple; nunca un no-op silencioso.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByFullname(fullname string) (*entity.User, error)
	// UpdateFullname aplica el cambio solo si el usuario existe y está activo.
	UpdateFullname(id, fullname string) (string, error)
	// UpdateRoles reemplaza el conjunto de roles solo si el usuario está activo.
	UpdateRoles(id string, roles entity.RoleSet) (string, error)
	// SoftDelete marca is_active=false. Un segundo borrado devuelve "".
	SoftDelete(id string) (string, error)
}
