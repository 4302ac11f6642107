package entity

// Role es un flag de privilegio. El conjunto de roles de un usuario se modela
// como bitflags cerrados en vez de etiquetas de texto sueltas: membresía y
// comparaciones de superconjunto son O(1). En la columna roles (text[]) se
// persisten las etiquetas originales client/admin/superadmin.
type Role uint8

const (
	RoleClient Role = 1 << iota
	RoleAdmin
	RoleSuperadmin
)

// Etiquetas persistidas en la columna roles.
const (
	roleClientLabel     = "client"
	roleAdminLabel      = "admin"
	roleSuperadminLabel = "superadmin"
)

// RoleSet conjunto de roles de un usuario.
type RoleSet uint8

// Has indica si el conjunto contiene el rol.
func (s RoleSet) Has(r Role) bool { return s&RoleSet(r) != 0 }

// HasAny indica si el conjunto contiene alguno de los roles dados.
func (s RoleSet) HasAny(roles ...Role) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// With devuelve el conjunto con el rol añadido.
func (s RoleSet) With(r Role) RoleSet { return s | RoleSet(r) }

// Without devuelve el conjunto sin el rol.
func (s RoleSet) Without(r Role) RoleSet { return s &^ RoleSet(r) }

// IsEmpty indica si el conjunto no tiene roles. Invariante: nunca vacío
// para una cuenta autenticable.
func (s RoleSet) IsEmpty() bool { return s == 0 }

// Labels devuelve las etiquetas para persistir en la columna text[].
// Orden fijo client < admin < superadmin para que el valor sea determinista.
func (s RoleSet) Labels() []string {
	labels := make([]string, 0, 3)
	if s.Has(RoleClient) {
		labels = append(labels, roleClientLabel)
	}
	if s.Has(RoleAdmin) {
		labels = append(labels, roleAdminLabel)
	}
	if s.Has(RoleSuperadmin) {
		labels = append(labels, roleSuperadminLabel)
	}
	return labels
}

// ParseRoles convierte las etiquetas de la columna roles al conjunto de bits.
// Etiquetas desconocidas se ignoran: la columna puede arrastrar valores de
// revisiones anteriores del esquema.
func ParseRoles(labels []string) RoleSet {
	var s RoleSet
	for _, l := range labels {
		switch l {
		case roleClientLabel:
			s = s.With(RoleClient)
		case roleAdminLabel:
			s = s.With(RoleAdmin)
		case roleSuperadminLabel:
			s = s.With(RoleSuperadmin)
		}
	}
	return s
}
