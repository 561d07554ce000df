package handler

import (
	"github.com/mocklab/corpmock/internal/core/domain"
)

// Request types for the two mutating IT endpoints. Validation tags are
// enforced by the echoValidator assigned to the Echo instance.

type createTicketRequest struct {
	Title        string `json:"title"        validate:"required"`
	Description  string `json:"description"  validate:"required"`
	Priority     string `json:"priority"     validate:"omitempty,oneof=low medium high critical"`
	Category     string `json:"category"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
}

type createTicketResponse struct {
	Message  string               `json:"message"`
	TicketID string               `json:"ticket_id"`
	Ticket   domain.SupportTicket `json:"ticket"`
}

type passwordResetRequest struct {
	Username string `json:"username" validate:"required_without=Email"`
	Email    string `json:"email"    validate:"omitempty,email,required_without=Username"`
}

type passwordResetResponse struct {
	Message     string `json:"message"`
	RequestID   string `json:"request_id"`
	ResetToken  string `json:"reset_token"`
	EmailSentTo string `json:"email_sent_to"`
	ExpiresAt   string `json:"expires_at"`
}
