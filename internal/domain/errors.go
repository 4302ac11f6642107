package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrValidation   = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// ErrSuperadminImmutable: guarda absoluta, no un resultado de permisos.
	// La única cuenta superadmin nunca puede auto-bloquearse por esta vía (HTTP 406).
	ErrSuperadminImmutable = errors.New("el superadmin no puede modificarse vía API")

	// ErrReference: violación de integridad referencial (FK) en el store.
	ErrReference = errors.New("referencia inválida")
)
