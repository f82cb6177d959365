package usecase

import (
	"context"
	"fmt"

	"github.com/gourmetify/admin-api/internal/domain"
	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

// PayrollUseCase consultas de nómina de la sucursal activa.
type PayrollUseCase struct {
	repo  repository.PayrollRepository
	scope *Scope
}

// NewPayrollUseCase construye el caso de uso.
func NewPayrollUseCase(repo repository.PayrollRepository, scope *Scope) *PayrollUseCase {
	return &PayrollUseCase{repo: repo, scope: scope}
}

// Employees lista los empleados de la sucursal activa.
func (uc *PayrollUseCase) Employees(ctx context.Context, branchID string) ([]entity.Employee, error) {
	b, err := uc.scope.Branch(branchID)
	if err != nil {
		return nil, err
	}
	return uc.repo.Employees(ctx, b)
}

// Shifts lista turnos con filtros de empleado y rango. El rango, si viene
// completo, debe estar bien ordenado.
func (uc *PayrollUseCase) Shifts(ctx context.Context, f repository.ShiftFilter, branchID string) ([]entity.EmployeeShift, error) {
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, fmt.Errorf("%w: rango de fechas invertido", domain.ErrInvalidInput)
	}
	b, err := uc.scope.Branch(branchID)
	if err != nil {
		return nil, err
	}
	return uc.repo.Shifts(ctx, f, b)
}

// Payslips lista liquidaciones, opcionalmente de un empleado puntual.
func (uc *PayrollUseCase) Payslips(ctx context.Context, employeeID, branchID string) ([]entity.Payslip, error) {
	b, err := uc.scope.Branch(branchID)
	if err != nil {
		return nil, err
	}
	return uc.repo.Payslips(ctx, employeeID, b)
}
