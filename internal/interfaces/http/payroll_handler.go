package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gourmetify/admin-api/internal/application/dto"
	"github.com/gourmetify/admin-api/internal/application/usecase"
	"github.com/gourmetify/admin-api/internal/domain/repository"
)

// PayrollHandler consultas de nómina de la sucursal activa.
type PayrollHandler struct {
	uc *usecase.PayrollUseCase
}

// NewPayrollHandler construye el handler.
func NewPayrollHandler(uc *usecase.PayrollUseCase) *PayrollHandler {
	return &PayrollHandler{uc: uc}
}

// Employees godoc
// @Summary      Listar empleados de la sucursal activa
// @Tags         payroll
// @Security     Bearer
// @Produce      json
// @Param        branchId  query  string  false  "Sucursal a consultar (solo roles administrativos)"
// @Success      200  {array}  entity.Employee
// @Router       /api/employees [get]
func (h *PayrollHandler) Employees(c *fiber.Ctx) error {
	out, err := h.uc.Employees(c.Context(), c.Query("branchId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Shifts godoc
// @Summary      Listar turnos trabajados
// @Tags         payroll
// @Security     Bearer
// @Produce      json
// @Param        employeeId  query  string  false  "Empleado"
// @Param        from        query  string  false  "Desde (RFC3339)"
// @Param        to          query  string  false  "Hasta (RFC3339)"
// @Success      200  {array}   entity.EmployeeShift
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/employee-shifts [get]
func (h *PayrollHandler) Shifts(c *fiber.Ctx) error {
	f := repository.ShiftFilter{EmployeeID: c.Query("employeeId")}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC3339"})
		}
		f.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC3339"})
		}
		f.To = &t
	}
	out, err := h.uc.Shifts(c.Context(), f, c.Query("branchId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Payslips godoc
// @Summary      Listar liquidaciones de sueldo
// @Tags         payroll
// @Security     Bearer
// @Produce      json
// @Param        employeeId  query  string  false  "Empleado"
// @Success      200  {array}  entity.Payslip
// @Router       /api/payslips [get]
func (h *PayrollHandler) Payslips(c *fiber.Ctx) error {
	out, err := h.uc.Payslips(c.Context(), c.Query("employeeId"), c.Query("branchId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
