package dto

import (
	"github.com/gourmetify/admin-api/internal/domain/entity"
)

// LoginRequest credenciales de login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest cambio de password del usuario vigente.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// SelectBranchRequest cambio de sucursal activa. Acepta un id concreto o el
// literal ALL (solo roles administrativos).
type SelectBranchRequest struct {
	BranchID string `json:"branchId" validate:"required"`
}

// RoleOverrideRequest override temporal de rol para pruebas locales.
// Un rol vacío quita el override.
type RoleOverrideRequest struct {
	Role string `json:"role"`
}

// AuthUserResponse snapshot de usuario en respuestas de sesión.
type AuthUserResponse struct {
	ID       string           `json:"id"`
	Email    string           `json:"email"`
	Name     string           `json:"name,omitempty"`
	Role     entity.Role      `json:"role,omitempty"`
	TenantID string           `json:"tenantId,omitempty"`
	BranchID entity.BranchRef `json:"branchId"`
}

// SessionResponse vista de la sesión vigente. BranchID serializa null (sin
// definir), "ALL" (todas) o el id concreto.
type SessionResponse struct {
	Authenticated   bool              `json:"authenticated"`
	Loading         bool              `json:"loading"`
	TenantID        string            `json:"tenantId,omitempty"`
	BranchID        entity.BranchRef  `json:"branchId"`
	Role            entity.Role       `json:"role,omitempty"`
	EffectiveRole   entity.Role       `json:"effectiveRole,omitempty"`
	DevRoleOverride entity.Role       `json:"devRoleOverride,omitempty"`
	User            *AuthUserResponse `json:"user,omitempty"`
	Flags           entity.AuthFlags  `json:"flags,omitempty"`
}

// ToSessionResponse arma la vista de sesión a partir del estado vigente.
func ToSessionResponse(s entity.Session, loading bool, override, effective entity.Role) SessionResponse {
	out := SessionResponse{
		Authenticated:   !s.Anonymous(),
		Loading:         loading,
		TenantID:        s.TenantID,
		BranchID:        s.Branch,
		Role:            s.Role,
		EffectiveRole:   effective,
		DevRoleOverride: override,
		Flags:           s.Flags,
	}
	if s.User != nil {
		out.User = &AuthUserResponse{
			ID:       s.User.ID,
			Email:    s.User.Email,
			Name:     s.User.Name,
			Role:     s.User.Role,
			TenantID: s.User.TenantID,
			BranchID: s.User.Branch,
		}
	}
	return out
}
