package ports

import (
	"context"

	"github.com/mocklab/corpmock/internal/core/domain"
)

// BudgetFilter narrows the budgets collection. Zero values mean "any".
type BudgetFilter struct {
	Department string
	ProjectID  string
	FiscalYear int
}

// ExpenseFilter narrows the expenses collection. DateFrom/DateTo are
// inclusive YYYY-MM-DD bounds.
type ExpenseFilter struct {
	Department string
	DateFrom   string
	DateTo     string
}

// RevenueFilter narrows the revenues collection.
type RevenueFilter struct {
	Department string
	ProjectID  string
	Period     string
}

// BudgetReport is the filtered budgets view.
type BudgetReport struct {
	Count   int             `json:"count"`
	Results []domain.Budget `json:"results"`
}

// ExpenseReport is the filtered expenses view plus rollups.
type ExpenseReport struct {
	Count        int                `json:"count"`
	TotalAmount  float64            `json:"total_amount"`
	ByCategory   map[string]float64 `json:"summary_by_category"`
	ByDepartment map[string]float64 `json:"summary_by_department"`
	Expenses     []domain.Expense   `json:"expenses"`
}

// RevenueReport is the filtered revenues view plus rollups.
type RevenueReport struct {
	Count        int                `json:"count"`
	TotalRevenue float64            `json:"total_revenue"`
	ByPeriod     map[string]float64 `json:"summary_by_period"`
	ByDepartment map[string]float64 `json:"summary_by_department"`
	Revenues     []domain.Revenue   `json:"revenues"`
}

// FinanceSummary is the company-wide rollup for GET /financial/summary.
type FinanceSummary struct {
	TotalBudget       int     `json:"total_budget"`
	TotalExpenses     float64 `json:"total_expenses"`
	TotalRevenue      float64 `json:"total_revenue"`
	NetIncome         float64 `json:"net_income"`
	BudgetUtilization float64 `json:"budget_utilization"`
}

// FinanceService defines the financial read operations.
type FinanceService interface {
	Budgets(ctx context.Context, f BudgetFilter) BudgetReport
	// Expenses returns domain.ErrInvalidDateRange when a date bound is
	// not a valid YYYY-MM-DD value.
	Expenses(ctx context.Context, f ExpenseFilter) (ExpenseReport, error)
	Revenues(ctx context.Context, f RevenueFilter) RevenueReport
	Summary(ctx context.Context) FinanceSummary
}
