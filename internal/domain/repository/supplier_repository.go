package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gourmetify/admin-api/internal/domain/entity"
)

// CreateSupplierInput datos para registrar un proveedor.
type CreateSupplierInput struct {
	Name               string  `json:"name"`
	Email              *string `json:"email,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	Notes              *string `json:"notes,omitempty"`
	DefaultPaymentTerm *string `json:"defaultPaymentTerm,omitempty"`
}

// UpdateSupplierInput campos opcionales para actualizar un proveedor.
type UpdateSupplierInput struct {
	Name               *string `json:"name,omitempty"`
	Email              *string `json:"email,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	Notes              *string `json:"notes,omitempty"`
	DefaultPaymentTerm *string `json:"defaultPaymentTerm,omitempty"`
}

// UpsertSupplierPriceInput último precio de un insumo con un proveedor.
type UpsertSupplierPriceInput struct {
	SupplierID   string          `json:"supplierId"`
	IngredientID string          `json:"ingredientId"`
	Price        decimal.Decimal `json:"price"` // > 0
}

// SupplierRepository puerto hacia el recurso /suppliers del backend.
type SupplierRepository interface {
	List(ctx context.Context, page Page, branchID string) ([]entity.Supplier, error)
	Create(ctx context.Context, in CreateSupplierInput, branchID string) (*entity.Supplier, error)
	Update(ctx context.Context, id string, in UpdateSupplierInput, branchID string) (*entity.Supplier, error)
	UpsertPrice(ctx context.Context, in UpsertSupplierPriceInput, branchID string) (*entity.SupplierIngredientPrice, error)
}
