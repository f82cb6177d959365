package repository

import (
	"context"

	"github.com/gourmetify/admin-api/internal/domain/entity"
)

// CreateBranchInput datos para crear una sucursal.
type CreateBranchInput struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// UpdateBranchInput campos opcionales para actualizar una sucursal.
type UpdateBranchInput struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// BranchRepository puerto hacia el recurso /branches del backend.
type BranchRepository interface {
	List(ctx context.Context) ([]entity.Branch, error)
	GetByID(ctx context.Context, id string) (*entity.Branch, error)
	Create(ctx context.Context, in CreateBranchInput) (*entity.Branch, error)
	Update(ctx context.Context, id string, in UpdateBranchInput) (*entity.Branch, error)
	Delete(ctx context.Context, id string) error
}
