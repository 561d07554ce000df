package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mocklab/corpmock/internal/api/metrics"
	"github.com/mocklab/corpmock/internal/core/ports"
)

// ITHandler handles the key-gated /it endpoints, including the only two
// mutating routes of the server.
type ITHandler struct {
	service ports.ITService
}

func NewITHandler(service ports.ITService) *ITHandler {
	return &ITHandler{service: service}
}

// Status handles GET /it/status.
func (h *ITHandler) Status(c echo.Context) error {
	report := h.service.Status(c.Request().Context(), c.QueryParam("service_name"))
	return c.JSON(http.StatusOK, report)
}

// Overview handles GET /it/status/overview.
func (h *ITHandler) Overview(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Overview(c.Request().Context()))
}

// CreateTicket handles POST /it/support/ticket.
//
// @Summary      Create a support ticket
// @Tags         it
// @Accept       json
// @Produce      json
// @Security     APIKeyAuth
// @Param        body  body      createTicketRequest  true  "Ticket details"
// @Success      201   {object}  createTicketResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /it/support/ticket [post]
func (h *ITHandler) CreateTicket(c echo.Context) error {
	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ticket, err := h.service.CreateTicket(c.Request().Context(), ports.CreateTicketInput{
		Title:        req.Title,
		Description:  req.Description,
		Priority:     req.Priority,
		Category:     req.Category,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		return err
	}

	metrics.TicketsCreatedTotal.WithLabelValues(ticket.Priority).Inc()
	return c.JSON(http.StatusCreated, createTicketResponse{
		Message:  "Support ticket created successfully",
		TicketID: ticket.TicketID,
		Ticket:   ticket,
	})
}

// Tickets handles GET /it/support/tickets.
func (h *ITHandler) Tickets(c echo.Context) error {
	report := h.service.Tickets(c.Request().Context(), ports.TicketFilter{
		Status:   c.QueryParam("status"),
		Priority: c.QueryParam("priority"),
	})
	return c.JSON(http.StatusOK, report)
}

// RequestPasswordReset handles POST /it/auth/password/reset.
func (h *ITHandler) RequestPasswordReset(c echo.Context) error {
	var req passwordResetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.RequestPasswordReset(c.Request().Context(), ports.ResetInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}

	metrics.PasswordResetsTotal.Inc()
	return c.JSON(http.StatusOK, passwordResetResponse{
		Message:     "Password reset initiated successfully",
		RequestID:   result.RequestID,
		ResetToken:  result.ResetToken,
		EmailSentTo: result.EmailSentTo,
		ExpiresAt:   result.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// PasswordResets handles GET /it/auth/password/resets.
func (h *ITHandler) PasswordResets(c echo.Context) error {
	report := h.service.PasswordResets(c.Request().Context(), ports.ResetFilter{
		Username: c.QueryParam("username"),
		Status:   c.QueryParam("status"),
	})
	return c.JSON(http.StatusOK, report)
}

// Dashboard handles GET /it/dashboard.
func (h *ITHandler) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Dashboard(c.Request().Context()))
}
