package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee empleado de una sucursal (nómina).
type Employee struct {
	ID         string          `json:"id"`
	BranchID   string          `json:"branchId"`
	UserID     *string         `json:"userId"` // nil si no tiene acceso al sistema
	Name       string          `json:"name"`
	Position   string          `json:"position"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
	IsActive   bool            `json:"isActive"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// EmployeeShift turno trabajado por un empleado.
type EmployeeShift struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	BranchID   string     `json:"branchId"`
	StartedAt  time.Time  `json:"startedAt"`
	EndedAt    *time.Time `json:"endedAt"` // nil = turno abierto
	Notes      *string    `json:"notes"`
}

// Payslip liquidación de sueldo de un período.
type Payslip struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employeeId"`
	BranchID    string          `json:"branchId"`
	PeriodStart time.Time       `json:"periodStart"`
	PeriodEnd   time.Time       `json:"periodEnd"`
	GrossPay    decimal.Decimal `json:"grossPay"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetPay      decimal.Decimal `json:"netPay"`
	Status      string          `json:"status"` // DRAFT, APPROVED, PAID
	CreatedAt   time.Time       `json:"createdAt"`
}
