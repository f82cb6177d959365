package entity

// AuthUser snapshot desnormalizado de la identidad que opera la sesión.
// Puede quedar desactualizado respecto de los campos de primer nivel de Session;
// las decisiones de autorización usan siempre el rol efectivo derivado, nunca ambos.
type AuthUser struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name,omitempty"`
	Role     Role      `json:"role,omitempty"`
	TenantID string    `json:"tenantId,omitempty"`
	Branch   BranchRef `json:"branchId"`
}

// AuthFlags feature toggles abiertos de la sesión (extensión hacia adelante).
type AuthFlags map[string]bool

// Session unidad de verdad de "quién opera, para qué tenant y desde qué sucursal".
// Es propiedad exclusiva del contenedor de sesión; nadie más guarda una copia maestra.
type Session struct {
	Token    string    `json:"token,omitempty"`
	TenantID string    `json:"tenantId,omitempty"`
	Branch   BranchRef `json:"branchId"`
	Role     Role      `json:"role,omitempty"`
	User     *AuthUser `json:"user,omitempty"`
	Flags    AuthFlags `json:"flags,omitempty"`
}

// NewSession devuelve una sesión vacía (anónima).
func NewSession() Session {
	return Session{Flags: AuthFlags{}}
}

// Anonymous indica si no hay credencial; el resto de los campos no debe usarse.
func (s Session) Anonymous() bool { return s.Token == "" }
