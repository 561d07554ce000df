package ports

import "github.com/mocklab/corpmock/internal/core/domain"

// The repositories expose the in-memory collections loaded at startup.
// Returned slices are read-only after startup and must not be mutated
// by callers; the accessors therefore take no context and cannot fail.

// CatalogRepository backs the open users/products/orders endpoints.
type CatalogRepository interface {
	Users() []domain.User
	Products() []domain.Product
	Orders() []domain.Order
}

// FinanceRepository backs the key-gated financial endpoints.
type FinanceRepository interface {
	Budgets() []domain.Budget
	Expenses() []domain.Expense
	Revenues() []domain.Revenue
}

// HRRepository backs the key-gated HR endpoints.
type HRRepository interface {
	Employees() []domain.Employee
	Policies() []domain.Policy
	Payroll() []domain.PayrollEntry
}

// ITRepository backs the key-gated IT endpoints. The two Append methods
// are the only mutation points in the system; implementations guard
// them with a lock and persist best-effort.
type ITRepository interface {
	SystemStatus() []domain.ServiceStatus
	Tickets() []domain.SupportTicket
	AppendTicket(t domain.SupportTicket) error
	PasswordResets() []domain.PasswordReset
	AppendPasswordReset(r domain.PasswordReset) error
}
