package ports

import (
	"context"
	"time"

	"github.com/mocklab/corpmock/internal/core/domain"
)

// StatusReport is the system status view with the derived overall state.
type StatusReport struct {
	OverallStatus       string                 `json:"overall_status"`
	OperationalServices int                    `json:"operational_services"`
	TotalServices       int                    `json:"total_services"`
	Services            []domain.ServiceStatus `json:"services"`
	LastUpdated         time.Time              `json:"last_updated"`
}

// StatusOverview is the aggregate-only status view.
type StatusOverview struct {
	StatusSummary       map[string]int `json:"status_summary"`
	AverageResponseTime float64        `json:"average_response_time"`
	AverageUptime       float64        `json:"average_uptime"`
	TotalServices       int            `json:"total_services"`
}

// CreateTicketInput carries a validated support ticket request.
type CreateTicketInput struct {
	Title        string
	Description  string
	Priority     string
	Category     string
	ContactEmail string
}

// TicketFilter narrows the tickets collection.
type TicketFilter struct {
	Status   string
	Priority string
}

// TicketReport lists tickets newest-first.
type TicketReport struct {
	Count   int                    `json:"count"`
	Tickets []domain.SupportTicket `json:"tickets"`
}

// ResetInput carries a password reset request; at least one of the two
// fields is set (the handler validates this).
type ResetInput struct {
	Username string
	Email    string
}

// ResetResult is returned after a reset request is recorded.
type ResetResult struct {
	RequestID   string    `json:"request_id"`
	ResetToken  string    `json:"reset_token"`
	EmailSentTo string    `json:"email_sent_to"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ResetFilter narrows the password reset history.
type ResetFilter struct {
	Username string
	Status   string
}

// ResetReport lists reset records newest-first.
type ResetReport struct {
	Count  int                    `json:"count"`
	Resets []domain.PasswordReset `json:"password_resets"`
}

// TicketStats summarises the ticket backlog for the dashboard.
type TicketStats struct {
	TotalTickets      int            `json:"total_tickets"`
	OpenTickets       int            `json:"open_tickets"`
	StatusBreakdown   map[string]int `json:"status_breakdown"`
	PriorityBreakdown map[string]int `json:"priority_breakdown"`
}

// SystemHealth summarises service availability for the dashboard.
type SystemHealth struct {
	TotalServices   int            `json:"total_services"`
	StatusBreakdown map[string]int `json:"status_breakdown"`
	OperationalRate float64        `json:"operational_rate"`
}

// ResetStats summarises password reset activity for the dashboard.
type ResetStats struct {
	TotalRequests   int `json:"total_requests"`
	RecentRequests  int `json:"recent_requests"`
	PendingRequests int `json:"pending_requests"`
}

// Dashboard is the combined IT view for GET /it/dashboard.
type Dashboard struct {
	SystemHealth   SystemHealth `json:"system_health"`
	SupportTickets TicketStats  `json:"support_tickets"`
	PasswordResets ResetStats   `json:"password_resets"`
	LastUpdated    time.Time    `json:"last_updated"`
}

// ITService defines the IT operations, including the only two mutating
// endpoints in the system.
type ITService interface {
	Status(ctx context.Context, serviceName string) StatusReport
	Overview(ctx context.Context) StatusOverview
	CreateTicket(ctx context.Context, in CreateTicketInput) (domain.SupportTicket, error)
	Tickets(ctx context.Context, f TicketFilter) TicketReport
	RequestPasswordReset(ctx context.Context, in ResetInput) (ResetResult, error)
	PasswordResets(ctx context.Context, f ResetFilter) ResetReport
	Dashboard(ctx context.Context) Dashboard
}
