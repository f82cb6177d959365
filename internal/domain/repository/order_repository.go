package repository

import (
	"context"

	"github.com/gourmetify/admin-api/internal/domain/entity"
)

// CreateOrderInput datos para abrir una orden.
type CreateOrderInput struct {
	CashierID     string  `json:"cashierId"`
	CustomerID    *string `json:"customerId,omitempty"`
	Channel       string  `json:"channel"`
	AddressID     *string `json:"addressId,omitempty"` // obligatorio si Channel es DELIVERY
	CustomerName  *string `json:"customerName,omitempty"`
	DeliveryNotes *string `json:"deliveryNotes,omitempty"`
}

// OrderRepository puerto hacia el recurso /orders del backend.
// branchID distinto de "" fuerza el header x-branch-id de esa llamada puntual
// (ej. una pantalla admin consultando órdenes de otra sucursal).
type OrderRepository interface {
	List(ctx context.Context, page Page, branchID string) ([]entity.Order, error)
	GetByID(ctx context.Context, id, branchID string) (*entity.Order, error)
	Create(ctx context.Context, in CreateOrderInput, branchID string) (*entity.Order, error)
	SetStatus(ctx context.Context, id, status, branchID string) (*entity.Order, error)
}
