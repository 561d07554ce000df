package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mocklab/corpmock/internal/core/ports"
)

// FinanceHandler handles the key-gated /financial endpoints. Access
// control happens in the APIKey middleware; handlers only translate
// query parameters into service filters.
type FinanceHandler struct {
	service ports.FinanceService
}

func NewFinanceHandler(service ports.FinanceService) *FinanceHandler {
	return &FinanceHandler{service: service}
}

// Budgets handles GET /financial/budgets.
//
// @Summary      List budgets, optionally filtered
// @Tags         financial
// @Produce      json
// @Security     APIKeyAuth
// @Param        department   query     string  false  "Filter by department"
// @Param        project_id   query     string  false  "Filter by project ID"
// @Param        fiscal_year  query     int     false  "Filter by fiscal year"
// @Success      200  {object}  ports.BudgetReport
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /financial/budgets [get]
func (h *FinanceHandler) Budgets(c echo.Context) error {
	filter := ports.BudgetFilter{
		Department: c.QueryParam("department"),
		ProjectID:  c.QueryParam("project_id"),
	}
	if v := c.QueryParam("fiscal_year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "fiscal_year must be an integer")
		}
		filter.FiscalYear = year
	}
	return c.JSON(http.StatusOK, h.service.Budgets(c.Request().Context(), filter))
}

// Expenses handles GET /financial/expenses.
func (h *FinanceHandler) Expenses(c echo.Context) error {
	report, err := h.service.Expenses(c.Request().Context(), ports.ExpenseFilter{
		Department: c.QueryParam("department"),
		DateFrom:   c.QueryParam("date_from"),
		DateTo:     c.QueryParam("date_to"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// Revenues handles GET /financial/revenues.
func (h *FinanceHandler) Revenues(c echo.Context) error {
	report := h.service.Revenues(c.Request().Context(), ports.RevenueFilter{
		Department: c.QueryParam("department"),
		ProjectID:  c.QueryParam("project_id"),
		Period:     c.QueryParam("period"),
	})
	return c.JSON(http.StatusOK, report)
}

// Summary handles GET /financial/summary.
func (h *FinanceHandler) Summary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Summary(c.Request().Context()))
}
