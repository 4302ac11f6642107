// Package policy contiene la política de autorización para mutaciones sobre
// cuentas de usuario. Es una función pura de dos conjuntos de roles más una
// comparación de identidad; no consulta estado.
package policy

import (
	"github.com/invorya/asistencia-api/internal/domain"
	"github.com/invorya/asistencia-api/internal/domain/entity"
)

// CanModify decide si actor puede mutar la cuenta target. destructive marca
// operaciones que pueden dejar la cuenta inutilizable (soft delete, revocar
// privilegios). Reglas, en orden:
//
//  1. superadmin actuando destructivamente sobre sí mismo → ErrSuperadminImmutable.
//     Guarda absoluta: la única cuenta superadmin no puede auto-bloquearse.
//  2. actor == target → permitido (autoservicio).
//  3. actor sin admin ni superadmin → ErrForbidden.
//  4. target superadmin y actor solo admin → ErrForbidden.
//  5. target admin y actor solo admin → ErrForbidden (sin acciones entre pares).
//  6. en otro caso → permitido.
func CanModify(actor, target *entity.User, destructive bool) error {
	if actor.IsSuperadmin() && actor.ID == target.ID && destructive {
		return domain.ErrSuperadminImmutable
	}
	if actor.ID == target.ID {
		return nil
	}
	if !actor.Roles.HasAny(entity.RoleAdmin, entity.RoleSuperadmin) {
		return domain.ErrForbidden
	}
	onlyAdmin := actor.IsAdmin() && !actor.IsSuperadmin()
	if target.IsSuperadmin() && onlyAdmin {
		return domain.ErrForbidden
	}
	if target.IsAdmin() && onlyAdmin {
		return domain.ErrForbidden
	}
	return nil
}
