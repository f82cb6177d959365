package repository

import (
	"context"

	"github.com/gourmetify/admin-api/internal/domain/entity"
)

// CreateUserInput datos para crear un usuario del tenant.
type CreateUserInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role"`
	BranchID *string     `json:"branchId,omitempty"` // debe pertenecer al tenant
	IsActive *bool       `json:"isActive,omitempty"`
}

// UpdateUserInput campos opcionales para actualizar un usuario.
type UpdateUserInput struct {
	Name     *string      `json:"name,omitempty"`
	Email    *string      `json:"email,omitempty"`
	Password *string      `json:"password,omitempty"`
	Role     *entity.Role `json:"role,omitempty"`
	BranchID *string      `json:"branchId,omitempty"`
	IsActive *bool        `json:"isActive,omitempty"`
}

// UserRepository puerto hacia el recurso /users del backend.
// tenantID distinto de "" escopea la llamada a otro tenant (override puntual
// del header x-tenant-id, solo tiene sentido para roles administrativos).
type UserRepository interface {
	List(ctx context.Context, page Page, tenantID string) ([]entity.User, error)
	// ListAdmin usa /users/admin y pasa el tenant por query string (pantallas SUPER_ADMIN).
	ListAdmin(ctx context.Context, page Page, tenantID string) ([]entity.User, error)
	GetByID(ctx context.Context, id, tenantID string) (*entity.User, error)
	Create(ctx context.Context, in CreateUserInput, tenantID string) (*entity.User, error)
	CreateAdmin(ctx context.Context, in CreateUserInput, tenantID string) (*entity.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput, tenantID string) (*entity.User, error)
	Delete(ctx context.Context, id, tenantID string) error
}
