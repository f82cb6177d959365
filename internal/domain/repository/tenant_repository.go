package repository

import (
	"context"

	"github.com/gourmetify/admin-api/internal/domain/entity"
)

// CreateTenantInput datos para crear un tenant.
type CreateTenantInput struct {
	Name   string `json:"name"`
	Plan   string `json:"plan"`
	Status string `json:"status"`
}

// UpdateTenantInput campos opcionales para actualizar un tenant.
type UpdateTenantInput struct {
	Name   *string `json:"name,omitempty"`
	Plan   *string `json:"plan,omitempty"`
	Status *string `json:"status,omitempty"`
}

// TenantRepository puerto hacia el recurso /tenants del backend (solo SUPER_ADMIN).
type TenantRepository interface {
	List(ctx context.Context) ([]entity.Tenant, error)
	GetByID(ctx context.Context, id string) (*entity.Tenant, error)
	Create(ctx context.Context, in CreateTenantInput) (*entity.Tenant, error)
	Update(ctx context.Context, id string, in UpdateTenantInput) (*entity.Tenant, error)
	Delete(ctx context.Context, id string) error
}
