package gourmetapi

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/gourmetify/admin-api/internal/domain/entity"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

var _ repository.PayrollRepository = (*PayrollService)(nil)

// PayrollService adaptador del puerto PayrollRepository sobre los recursos de nómina.
type PayrollService struct {
	c *Client
}

// NewPayrollService construye el adaptador de nómina.
func NewPayrollService(c *Client) *PayrollService {
	return &PayrollService{c: c}
}

// Employees lista los empleados de la sucursal activa (u otra vía override).
func (s *PayrollService) Employees(ctx context.Context, branchID string) ([]entity.Employee, error) {
	var out []entity.Employee
	err := s.c.do(ctx, http.MethodGet, "/employees", nil, &out, callOpts{branchID: branchID})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Shifts lista turnos con filtros de empleado y rango de fechas.
func (s *PayrollService) Shifts(ctx context.Context, f repository.ShiftFilter, branchID string) ([]entity.EmployeeShift, error) {
	q := url.Values{}
	if f.EmployeeID != "" {
		q.Set("employeeId", f.EmployeeID)
	}
	if f.From != nil {
		q.Set("from", f.From.Format(time.RFC3339))
	}
	if f.To != nil {
		q.Set("to", f.To.Format(time.RFC3339))
	}
	var out []entity.EmployeeShift
	err := s.c.do(ctx, http.MethodGet, "/employee-shifts", nil, &out, callOpts{branchID: branchID, query: q})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Payslips lista liquidaciones, opcionalmente de un empleado puntual.
func (s *PayrollService) Payslips(ctx context.Context, employeeID, branchID string) ([]entity.Payslip, error) {
	q := url.Values{}
	if employeeID != "" {
		q.Set("employeeId", employeeID)
	}
	var out []entity.Payslip
	err := s.c.do(ctx, http.MethodGet, "/payslips", nil, &out, callOpts{branchID: branchID, query: q})
	if err != nil {
		return nil, err
	}
	return out, nil
}
