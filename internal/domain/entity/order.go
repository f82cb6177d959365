package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Canales de venta de una orden.
const (
	ChannelTakeaway = "TAKEAWAY"
	ChannelDelivery = "DELIVERY"
	ChannelDineIn   = "DINE_IN"
)

// Estados de una orden.
const (
	OrderOpen      = "OPEN"
	OrderPreparing = "PREPARING"
	OrderReady     = "READY"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
)

// Estados de pago.
const (
	PaymentUnpaid  = "UNPAID"
	PaymentPartial = "PARTIAL"
	PaymentPaid    = "PAID"
)

// OrderItem línea de una orden.
type OrderItem struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"orderId"`
	ProductID string          `json:"productId"`
	Qty       decimal.Decimal `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// OrderPayment pago aplicado a una orden contra una cuenta.
type OrderPayment struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"orderId"`
	AccountID string          `json:"accountId"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Customer cliente embebido en listados y detalle de órdenes.
type Customer struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// Order orden de venta escopeada a una sucursal.
type Order struct {
	ID            string          `json:"id"`
	BranchID      string          `json:"branchId"`
	CashierID     string          `json:"cashierId"`
	CustomerID    *string         `json:"customerId"`
	Channel       string          `json:"channel"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	CustomerName  *string         `json:"customerName"`
	DeliveryNotes *string         `json:"deliveryNotes"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountTotal decimal.Decimal `json:"discountTotal"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	Items         []OrderItem     `json:"items,omitempty"`
	Payments      []OrderPayment  `json:"payments,omitempty"`
	Customer      *Customer       `json:"customer,omitempty"`
}
