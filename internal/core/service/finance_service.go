package service

import (
	"context"
	"strings"
	"time"

	"github.com/mocklab/corpmock/internal/core/domain"
	"github.com/mocklab/corpmock/internal/core/ports"
)

const dateLayout = "2006-01-02"

// FinanceService serves the key-gated financial endpoints.
type FinanceService struct {
	repo ports.FinanceRepository
}

func NewFinanceService(repo ports.FinanceRepository) *FinanceService {
	return &FinanceService{repo: repo}
}

func (s *FinanceService) Budgets(_ context.Context, f ports.BudgetFilter) ports.BudgetReport {
	results := Keep(s.repo.Budgets(), func(b domain.Budget) bool {
		if f.Department != "" && !strings.EqualFold(b.Department, f.Department) {
			return false
		}
		if f.ProjectID != "" && b.ProjectID != f.ProjectID {
			return false
		}
		if f.FiscalYear != 0 && b.FiscalYear != f.FiscalYear {
			return false
		}
		return true
	})
	return ports.BudgetReport{Count: len(results), Results: results}
}

func (s *FinanceService) Expenses(_ context.Context, f ports.ExpenseFilter) (ports.ExpenseReport, error) {
	var from, to time.Time
	var err error
	if f.DateFrom != "" {
		if from, err = time.Parse(dateLayout, f.DateFrom); err != nil {
			return ports.ExpenseReport{}, domain.ErrInvalidDateRange
		}
	}
	if f.DateTo != "" {
		if to, err = time.Parse(dateLayout, f.DateTo); err != nil {
			return ports.ExpenseReport{}, domain.ErrInvalidDateRange
		}
	}

	expenses := Keep(s.repo.Expenses(), func(e domain.Expense) bool {
		if f.Department != "" && !strings.EqualFold(e.Department, f.Department) {
			return false
		}
		if f.DateFrom == "" && f.DateTo == "" {
			return true
		}
		// Seeded dates are always well-formed; records with a bad date
		// simply fall outside any range.
		d, err := time.Parse(dateLayout, e.Date)
		if err != nil {
			return false
		}
		if f.DateFrom != "" && d.Before(from) {
			return false
		}
		if f.DateTo != "" && d.After(to) {
			return false
		}
		return true
	})

	report := ports.ExpenseReport{
		Count:        len(expenses),
		ByCategory:   make(map[string]float64),
		ByDepartment: make(map[string]float64),
		Expenses:     expenses,
	}
	for _, e := range expenses {
		report.TotalAmount += e.Amount
		report.ByCategory[e.Category] += e.Amount
		report.ByDepartment[e.Department] += e.Amount
	}
	return report, nil
}

func (s *FinanceService) Revenues(_ context.Context, f ports.RevenueFilter) ports.RevenueReport {
	revenues := Keep(s.repo.Revenues(), func(r domain.Revenue) bool {
		if f.Department != "" && !strings.EqualFold(r.Department, f.Department) {
			return false
		}
		if f.ProjectID != "" && r.ProjectID != f.ProjectID {
			return false
		}
		if f.Period != "" && !strings.EqualFold(r.Period, f.Period) {
			return false
		}
		return true
	})

	report := ports.RevenueReport{
		Count:        len(revenues),
		ByPeriod:     make(map[string]float64),
		ByDepartment: make(map[string]float64),
		Revenues:     revenues,
	}
	for _, r := range revenues {
		report.TotalRevenue += r.RevenueAmount
		report.ByPeriod[r.Period] += r.RevenueAmount
		report.ByDepartment[r.Department] += r.RevenueAmount
	}
	return report
}

func (s *FinanceService) Summary(_ context.Context) ports.FinanceSummary {
	var sum ports.FinanceSummary
	for _, b := range s.repo.Budgets() {
		sum.TotalBudget += b.AllocatedBudget
	}
	for _, e := range s.repo.Expenses() {
		sum.TotalExpenses += e.Amount
	}
	for _, r := range s.repo.Revenues() {
		sum.TotalRevenue += r.RevenueAmount
	}
	sum.NetIncome = sum.TotalRevenue - sum.TotalExpenses
	if sum.TotalBudget > 0 {
		sum.BudgetUtilization = sum.TotalExpenses / float64(sum.TotalBudget) * 100
	}
	return sum
}
