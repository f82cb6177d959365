package entity

import "strings"

// Role rol de un usuario dentro de un tenant, ordenado por privilegio.
type Role string

// Roles válidos (de mayor a menor privilegio).
const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleManager    Role = "MANAGER"
	RoleCashier    Role = "CASHIER"
	RoleWaiter     Role = "WAITER"
)

// privilege orden numérico para comparaciones (mayor = más privilegio).
var privilege = map[Role]int{
	RoleSuperAdmin: 5,
	RoleAdmin:      4,
	RoleManager:    3,
	RoleCashier:    2,
	RoleWaiter:     1,
}

// ParseRole normaliza un rol recibido del backend (case-insensitive).
// Devuelve "" si el valor no pertenece al conjunto cerrado de roles.
func ParseRole(s string) Role {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := privilege[r]; ok {
		return r
	}
	return ""
}

// Valid indica si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	_, ok := privilege[r]
	return ok
}

// IsAdminLike indica si el rol puede operar sobre todas las sucursales del tenant
// (solo los dos niveles superiores).
func (r Role) IsAdminLike() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// AtLeast indica si el rol tiene al menos el privilegio de min.
func (r Role) AtLeast(min Role) bool {
	return privilege[r] >= privilege[min]
}
