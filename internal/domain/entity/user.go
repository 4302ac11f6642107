package entity

// User representa una cuenta del sistema. Se borra siempre en modo soft
// (is_active=false) para preservar la historia de asistencia.
type User struct {
	ID             string // UUID
	Fullname       string
	HashedPassword string // bcrypt hash, nunca plano en dominio después de persistir
	IsActive       bool
	Roles          RoleSet
}

// IsSuperadmin indica si la cuenta tiene el rol superadmin.
func (u *User) IsSuperadmin() bool { return u.Roles.Has(RoleSuperadmin) }

// IsAdmin indica si la cuenta tiene el rol admin.
func (u *User) IsAdmin() bool { return u.Roles.Has(RoleAdmin) }
