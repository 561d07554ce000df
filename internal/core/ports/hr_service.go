package ports

import (
	"context"

	"github.com/mocklab/corpmock/internal/core/domain"
)

// EmployeeFilter narrows the employees collection. Name matches as a
// case-insensitive substring of first, last or full name; the other
// fields match exactly (department and status case-insensitively).
type EmployeeFilter struct {
	EmployeeID string
	Name       string
	Department string
	Status     string
}

// PolicyFilter narrows the policies collection.
type PolicyFilter struct {
	PolicyType string
	Category   string
}

// PayrollFilter narrows the payroll collection.
type PayrollFilter struct {
	EmployeeID string
	Period     string
	Department string
}

// EmployeeReport is the filtered employees view.
type EmployeeReport struct {
	Count     int               `json:"count"`
	Employees []domain.Employee `json:"employees"`
}

// PolicyReport is the filtered policies view, also grouped by type.
type PolicyReport struct {
	Count    int                        `json:"count"`
	ByType   map[string][]domain.Policy `json:"policies_by_type"`
	Policies []domain.Policy            `json:"all_policies"`
}

// PayrollReport is the filtered payroll view plus pay rollups.
type PayrollReport struct {
	Count           int                   `json:"count"`
	TotalNetPay     int                   `json:"total_net_pay"`
	TotalBaseSalary int                   `json:"total_base_salary"`
	TotalBonus      int                   `json:"total_bonus"`
	ByDepartment    map[string]int        `json:"summary_by_department"`
	ByPeriod        map[string]int        `json:"summary_by_period"`
	Entries         []domain.PayrollEntry `json:"payroll_entries"`
}

// HRSummary is the company-wide rollup for GET /hr/summary.
type HRSummary struct {
	TotalEmployees int            `json:"total_employees"`
	ByDepartment   map[string]int `json:"departments_summary"`
	ByStatus       map[string]int `json:"employment_status"`
	ByLocation     map[string]int `json:"locations_summary"`
	TotalPayroll   int            `json:"total_payroll_processed"`
	AverageNetPay  float64        `json:"average_salary"`
	PayrollRecords int            `json:"total_payroll_records"`
}

// HRService defines the HR read operations.
type HRService interface {
	Employees(ctx context.Context, f EmployeeFilter) EmployeeReport
	EmployeeByID(ctx context.Context, employeeID string) (domain.Employee, error)
	Policies(ctx context.Context, f PolicyFilter) PolicyReport
	Payroll(ctx context.Context, f PayrollFilter) PayrollReport
	Summary(ctx context.Context) HRSummary
}
