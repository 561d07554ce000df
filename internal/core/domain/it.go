package domain

import "time"

// ServiceStatus values reported per monitored service.
const (
	StatusOperational = "operational"
	StatusDegraded    = "degraded"
	StatusOutage      = "outage"
	StatusMaintenance = "maintenance"
)

// Ticket priorities accepted on creation.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// ServiceStatus is a health snapshot for one monitored service.
type ServiceStatus struct {
	ServiceName     string    `json:"service_name"`
	Status          string    `json:"status"`
	ResponseTime    float64   `json:"response_time"`
	Uptime          float64   `json:"uptime"`
	LastUpdated     time.Time `json:"last_updated"`
	IncidentsLast24 int       `json:"incidents_last_24h"`
}

// SupportTicket is created via POST /it/support/ticket. Tickets live in
// memory for the process lifetime; the backing file is best-effort.
type SupportTicket struct {
	TicketID     string    `json:"ticket_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Priority     string    `json:"priority"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ContactEmail string    `json:"contact_email,omitempty"`
	AssignedTo   string    `json:"assigned_to,omitempty"`
	Resolution   string    `json:"resolution,omitempty"`
}

// PasswordReset records a reset request and its signed token.
type PasswordReset struct {
	RequestID   string    `json:"request_id"`
	Username    string    `json:"username,omitempty"`
	Email       string    `json:"email,omitempty"`
	ResetToken  string    `json:"reset_token"`
	RequestedAt time.Time `json:"requested_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Status      string    `json:"status"`
}
