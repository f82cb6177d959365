package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementIn     = "IN"
	MovementOut    = "OUT"
	MovementAdjust = "ADJUST"
	MovementWaste  = "WASTE"
)

// InventoryLevel stock actual de un insumo en una sucursal.
type InventoryLevel struct {
	ID           string          `json:"id"`
	BranchID     string          `json:"branchId"`
	IngredientID string          `json:"ingredientId"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	MinQuantity  decimal.Decimal `json:"minQuantity"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// StockMovement movimiento de inventario (entrada, salida, ajuste o merma).
type StockMovement struct {
	ID           string          `json:"id"`
	BranchID     string          `json:"branchId"`
	IngredientID string          `json:"ingredientId"`
	Type         string          `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"` // positiva para IN/ADJUST+, negativa para OUT/WASTE
	Reason       *string         `json:"reason"`
	CreatedBy    string          `json:"createdBy"`
	CreatedAt    time.Time       `json:"createdAt"`
}
