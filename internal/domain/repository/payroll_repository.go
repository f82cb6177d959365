package repository

import (
	"context"
	"time"

	"github.com/gourmetify/admin-api/internal/domain/entity"
)

// ShiftFilter filtros de listado de turnos.
type ShiftFilter struct {
	EmployeeID string
	From       *time.Time
	To         *time.Time
}

// PayrollRepository puerto hacia los recursos de nómina del backend
// (/employees, /employee-shifts, /payslips).
type PayrollRepository interface {
	Employees(ctx context.Context, branchID string) ([]entity.Employee, error)
	Shifts(ctx context.Context, f ShiftFilter, branchID string) ([]entity.EmployeeShift, error)
	Payslips(ctx context.Context, employeeID, branchID string) ([]entity.Payslip, error)
}
