package service

import (
	"context"
	"math"
	"strings"

	"github.com/mocklab/corpmock/internal/core/domain"
	"github.com/mocklab/corpmock/internal/core/ports"
)

// HRService serves the key-gated HR endpoints.
type HRService struct {
	repo ports.HRRepository
}

func NewHRService(repo ports.HRRepository) *HRService {
	return &HRService{repo: repo}
}

func (s *HRService) Employees(_ context.Context, f ports.EmployeeFilter) ports.EmployeeReport {
	name := strings.ToLower(f.Name)
	employees := Keep(s.repo.Employees(), func(e domain.Employee) bool {
		if f.EmployeeID != "" && e.EmployeeID != f.EmployeeID {
			return false
		}
		if name != "" &&
			!strings.Contains(strings.ToLower(e.FullName), name) &&
			!strings.Contains(strings.ToLower(e.FirstName), name) &&
			!strings.Contains(strings.ToLower(e.LastName), name) {
			return false
		}
		if f.Department != "" && !strings.EqualFold(e.Department, f.Department) {
			return false
		}
		if f.Status != "" && !strings.EqualFold(e.Status, f.Status) {
			return false
		}
		return true
	})
	return ports.EmployeeReport{Count: len(employees), Employees: employees}
}

func (s *HRService) EmployeeByID(_ context.Context, employeeID string) (domain.Employee, error) {
	for _, e := range s.repo.Employees() {
		if e.EmployeeID == employeeID {
			return e, nil
		}
	}
	return domain.Employee{}, domain.ErrEmployeeNotFound
}

func (s *HRService) Policies(_ context.Context, f ports.PolicyFilter) ports.PolicyReport {
	policies := Keep(s.repo.Policies(), func(p domain.Policy) bool {
		if f.PolicyType != "" && !strings.EqualFold(p.PolicyType, f.PolicyType) {
			return false
		}
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			return false
		}
		return true
	})

	byType := make(map[string][]domain.Policy)
	for _, p := range policies {
		byType[p.PolicyType] = append(byType[p.PolicyType], p)
	}
	return ports.PolicyReport{Count: len(policies), ByType: byType, Policies: policies}
}

func (s *HRService) Payroll(_ context.Context, f ports.PayrollFilter) ports.PayrollReport {
	entries := Keep(s.repo.Payroll(), func(p domain.PayrollEntry) bool {
		if f.EmployeeID != "" && p.EmployeeID != f.EmployeeID {
			return false
		}
		if f.Period != "" && p.Period != f.Period {
			return false
		}
		if f.Department != "" && !strings.EqualFold(p.Department, f.Department) {
			return false
		}
		return true
	})

	report := ports.PayrollReport{
		Count:        len(entries),
		ByDepartment: make(map[string]int),
		ByPeriod:     make(map[string]int),
		Entries:      entries,
	}
	for _, p := range entries {
		report.TotalNetPay += p.NetPay
		report.TotalBaseSalary += p.BaseSalary
		report.TotalBonus += p.Bonus
		report.ByDepartment[p.Department] += p.NetPay
		report.ByPeriod[p.Period] += p.NetPay
	}
	return report
}

func (s *HRService) Summary(_ context.Context) ports.HRSummary {
	employees := s.repo.Employees()
	payroll := s.repo.Payroll()

	sum := ports.HRSummary{
		TotalEmployees: len(employees),
		ByDepartment:   make(map[string]int),
		ByStatus:       make(map[string]int),
		ByLocation:     make(map[string]int),
		PayrollRecords: len(payroll),
	}
	for _, e := range employees {
		sum.ByDepartment[e.Department]++
		sum.ByStatus[e.Status]++
		sum.ByLocation[e.Location]++
	}
	for _, p := range payroll {
		sum.TotalPayroll += p.NetPay
	}
	if len(payroll) > 0 {
		avg := float64(sum.TotalPayroll) / float64(len(payroll))
		sum.AverageNetPay = math.Round(avg*100) / 100
	}
	return sum
}
