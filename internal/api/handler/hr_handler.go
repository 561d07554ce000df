package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mocklab/corpmock/internal/core/ports"
)

// HRHandler handles the key-gated /hr endpoints.
type HRHandler struct {
	service ports.HRService
}

func NewHRHandler(service ports.HRService) *HRHandler {
	return &HRHandler{service: service}
}

// Employees handles GET /hr/employees.
//
// @Summary      List employees, optionally filtered
// @Tags         hr
// @Produce      json
// @Security     APIKeyAuth
// @Param        employee_id  query     string  false  "Filter by employee ID"
// @Param        name         query     string  false  "Filter by name (substring)"
// @Param        department   query     string  false  "Filter by department"
// @Param        status       query     string  false  "Filter by employment status"
// @Success      200  {object}  ports.EmployeeReport
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /hr/employees [get]
func (h *HRHandler) Employees(c echo.Context) error {
	report := h.service.Employees(c.Request().Context(), ports.EmployeeFilter{
		EmployeeID: c.QueryParam("employee_id"),
		Name:       c.QueryParam("name"),
		Department: c.QueryParam("department"),
		Status:     c.QueryParam("status"),
	})
	return c.JSON(http.StatusOK, report)
}

// EmployeeByID handles GET /hr/employees/:employee_id.
func (h *HRHandler) EmployeeByID(c echo.Context) error {
	employee, err := h.service.EmployeeByID(c.Request().Context(), c.Param("employee_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Policies handles GET /hr/policies.
func (h *HRHandler) Policies(c echo.Context) error {
	report := h.service.Policies(c.Request().Context(), ports.PolicyFilter{
		PolicyType: c.QueryParam("policy_type"),
		Category:   c.QueryParam("category"),
	})
	return c.JSON(http.StatusOK, report)
}

// Payroll handles GET /hr/payroll. Routed behind the payroll level.
func (h *HRHandler) Payroll(c echo.Context) error {
	report := h.service.Payroll(c.Request().Context(), ports.PayrollFilter{
		EmployeeID: c.QueryParam("employee_id"),
		Period:     c.QueryParam("period"),
		Department: c.QueryParam("department"),
	})
	return c.JSON(http.StatusOK, report)
}

// Summary handles GET /hr/summary.
func (h *HRHandler) Summary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Summary(c.Request().Context()))
}
