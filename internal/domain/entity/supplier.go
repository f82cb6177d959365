package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Términos de pago de un proveedor.
const (
	PaymentTermCash  = "CASH"
	PaymentTermNet7  = "NET_7"
	PaymentTermNet15 = "NET_15"
	PaymentTermNet30 = "NET_30"
	PaymentTermNet60 = "NET_60"
)

// Supplier proveedor de insumos, escopeado a sucursal.
type Supplier struct {
	ID                 string    `json:"id"`
	BranchID           string    `json:"branchId"`
	Name               string    `json:"name"`
	Email              *string   `json:"email"`
	Phone              *string   `json:"phone"`
	Notes              *string   `json:"notes"`
	DefaultPaymentTerm *string   `json:"defaultPaymentTerm"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// SupplierIngredientPrice último precio acordado de un insumo con un proveedor.
type SupplierIngredientPrice struct {
	ID           string          `json:"id"`
	SupplierID   string          `json:"supplierId"`
	IngredientID string          `json:"ingredientId"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    time.Time       `json:"createdAt"`
}
