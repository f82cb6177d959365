package usecase

import (
	"context"
	"fmt"

	"github.com/gourmetify/admin-api/internal/domain"
	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

// BranchUseCase CRUD de sucursales del tenant activo.
type BranchUseCase struct {
	repo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo}
}

// List lista las sucursales del tenant activo.
func (uc *BranchUseCase) List(ctx context.Context) ([]entity.Branch, error) {
	return uc.repo.List(ctx)
}

// GetByID obtiene una sucursal por ID.
func (uc *BranchUseCase) GetByID(ctx context.Context, id string) (*entity.Branch, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	return uc.repo.GetByID(ctx, id)
}

// Create crea una sucursal.
func (uc *BranchUseCase) Create(ctx context.Context, in repository.CreateBranchInput) (*entity.Branch, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name requerido", domain.ErrInvalidInput)
	}
	return uc.repo.Create(ctx, in)
}

// Update actualiza los campos presentes de una sucursal.
func (uc *BranchUseCase) Update(ctx context.Context, id string, in repository.UpdateBranchInput) (*entity.Branch, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	if in.Name != nil && *in.Name == "" {
		return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
	}
	return uc.repo.Update(ctx, id, in)
}

// Delete elimina una sucursal.
func (uc *BranchUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	return uc.repo.Delete(ctx, id)
}
