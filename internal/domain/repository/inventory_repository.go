package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gourmetify/admin-api/internal/domain/entity"
)

// AdjustInventoryInput ajuste puntual de stock de un insumo.
type AdjustInventoryInput struct {
	IngredientID string          `json:"ingredientId"`
	Quantity     decimal.Decimal `json:"quantity"` // delta, puede ser negativo
	Reason       *string         `json:"reason,omitempty"`
}

// CreateMovementInput registro manual de un movimiento de stock.
type CreateMovementInput struct {
	IngredientID string          `json:"ingredientId"`
	Type         string          `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"`
	Reason       *string         `json:"reason,omitempty"`
}

// MovementFilter filtros de listado de movimientos.
type MovementFilter struct {
	IngredientID string
	Type         string
	Limit        int
	Offset       int
}

// InventoryRepository puerto hacia /inventory y /movements del backend.
type InventoryRepository interface {
	Levels(ctx context.Context, page Page, branchID string) ([]entity.InventoryLevel, error)
	Adjust(ctx context.Context, in AdjustInventoryInput, branchID string) (*entity.InventoryLevel, error)
	Movements(ctx context.Context, f MovementFilter, branchID string) ([]entity.StockMovement, error)
	CreateMovement(ctx context.Context, in CreateMovementInput, branchID string) (*entity.StockMovement, error)
}
