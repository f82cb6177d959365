package usecase

import (
	"context"
	"fmt"

	"github.com/gourmetify/admin-api/internal/domain"
	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

// InventoryUseCase niveles de stock y movimientos de la sucursal activa.
type InventoryUseCase struct {
	repo  repository.InventoryRepository
	scope *Scope
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, scope *Scope) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, scope: scope}
}

// Levels lista los niveles de stock de la sucursal activa.
func (uc *InventoryUseCase) Levels(ctx context.Context, page repository.Page, branchID string) ([]entity.InventoryLevel, error) {
	b, err := uc.scope.Branch(branchID)
	if err != nil {
		return nil, err
	}
	return uc.repo.Levels(ctx, page, b)
}

// Adjust aplica un ajuste puntual de stock. El delta no puede ser cero.
func (uc *InventoryUseCase) Adjust(ctx context.Context, in repository.AdjustInventoryInput, branchID string) (*entity.InventoryLevel, error) {
	if in.IngredientID == "" {
		return nil, fmt.Errorf("%w: ingredientId requerido", domain.ErrInvalidInput)
	}
	if in.Quantity.IsZero() {
		return nil, fmt.Errorf("%w: el ajuste no puede ser cero", domain.ErrInvalidInput)
	}
	b, err := uc.scope.ConcreteBranch(branchID)
	if err != nil {
		return nil, err
	}
	return uc.repo.Adjust(ctx, in, b)
}

// Movements lista movimientos con filtros.
func (uc *InventoryUseCase) Movements(ctx context.Context, f repository.MovementFilter, branchID string) ([]entity.StockMovement, error) {
	if f.Type != "" && !validMovementType(f.Type) {
		return nil, fmt.Errorf("%w: tipo de movimiento desconocido %q", domain.ErrInvalidInput, f.Type)
	}
	b, err := uc.scope.Branch(branchID)
	if err != nil {
		return nil, err
	}
	return uc.repo.Movements(ctx, f, b)
}

// CreateMovement registra un movimiento manual de stock.
func (uc *InventoryUseCase) CreateMovement(ctx context.Context, in repository.CreateMovementInput, branchID string) (*entity.StockMovement, error) {
	if in.IngredientID == "" {
		return nil, fmt.Errorf("%w: ingredientId requerido", domain.ErrInvalidInput)
	}
	if !validMovementType(in.Type) {
		return nil, fmt.Errorf("%w: tipo de movimiento desconocido %q", domain.ErrInvalidInput, in.Type)
	}
	if !in.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor a cero", domain.ErrInvalidInput)
	}
	b, err := uc.scope.ConcreteBranch(branchID)
	if err != nil {
		return nil, err
	}
	return uc.repo.CreateMovement(ctx, in, b)
}

func validMovementType(t string) bool {
	switch t {
	case entity.MovementIn, entity.MovementOut, entity.MovementAdjust, entity.MovementWaste:
		return true
	}
	return false
}
