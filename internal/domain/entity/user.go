package entity

import "time"

// User usuario administrado de un tenant (vista de administración, no snapshot de sesión).
type User struct {
	ID        string     `json:"id"`
	TenantID  string     `json:"tenantId,omitempty"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	IsActive  bool       `json:"isActive"`
	BranchID  *string    `json:"branchId"` // nil = sin sucursal asignada
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
