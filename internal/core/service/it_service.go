package service

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mocklab/corpmock/internal/core/domain"
	"github.com/mocklab/corpmock/internal/core/ports"
)

// ITService serves the key-gated IT endpoints. Ticket creation and
// password resets are the only writes in the system; persistence of
// those writes is best-effort and failures are logged, never surfaced.
type ITService struct {
	repo        ports.ITRepository
	resetSecret string
	resetTTL    time.Duration
	logger      zerolog.Logger
}

func NewITService(repo ports.ITRepository, resetSecret string, resetTTL time.Duration, logger zerolog.Logger) *ITService {
	if resetTTL <= 0 {
		resetTTL = time.Hour
	}
	return &ITService{repo: repo, resetSecret: resetSecret, resetTTL: resetTTL, logger: logger}
}

func (s *ITService) Status(_ context.Context, serviceName string) ports.StatusReport {
	services := s.repo.SystemStatus()
	if serviceName != "" {
		needle := strings.ToLower(serviceName)
		services = Keep(services, func(st domain.ServiceStatus) bool {
			return strings.Contains(strings.ToLower(st.ServiceName), needle)
		})
	}

	operational := 0
	for _, st := range services {
		if st.Status == domain.StatusOperational {
			operational++
		}
	}

	return ports.StatusReport{
		OverallStatus:       overallStatus(operational, len(services)),
		OperationalServices: operational,
		TotalServices:       len(services),
		Services:            services,
		LastUpdated:         time.Now().UTC(),
	}
}

// overallStatus derives the fleet state: everything up is operational,
// more than 70% up is degraded, anything less is an outage.
func overallStatus(operational, total int) string {
	switch {
	case total == 0:
		return domain.StatusOperational
	case operational == total:
		return domain.StatusOperational
	case float64(operational) > float64(total)*0.7:
		return domain.StatusDegraded
	default:
		return domain.StatusOutage
	}
}

func (s *ITService) Overview(_ context.Context) ports.StatusOverview {
	services := s.repo.SystemStatus()
	overview := ports.StatusOverview{
		StatusSummary: make(map[string]int),
		TotalServices: len(services),
	}
	if len(services) == 0 {
		return overview
	}

	var totalResponse, totalUptime float64
	for _, st := range services {
		overview.StatusSummary[st.Status]++
		totalResponse += st.ResponseTime
		totalUptime += st.Uptime
	}
	overview.AverageResponseTime = round2(totalResponse / float64(len(services)))
	overview.AverageUptime = round2(totalUptime / float64(len(services)))
	return overview
}

func (s *ITService) CreateTicket(_ context.Context, in ports.CreateTicketInput) (domain.SupportTicket, error) {
	now := time.Now().UTC()
	ticket := domain.SupportTicket{
		TicketID:     newTicketID(),
		Title:        in.Title,
		Description:  in.Description,
		Priority:     strings.ToLower(in.Priority),
		Category:     in.Category,
		Status:       "open",
		CreatedAt:    now,
		UpdatedAt:    now,
		ContactEmail: in.ContactEmail,
	}
	if ticket.Priority == "" {
		ticket.Priority = domain.PriorityMedium
	}
	if ticket.Category == "" {
		ticket.Category = "general"
	}

	if err := s.repo.AppendTicket(ticket); err != nil {
		s.logger.Error().Err(err).Str("ticket_id", ticket.TicketID).Msg("failed to persist support ticket")
	}
	s.logger.Info().Str("ticket_id", ticket.TicketID).Str("priority", ticket.Priority).Msg("support ticket created")
	return ticket, nil
}

func (s *ITService) Tickets(_ context.Context, f ports.TicketFilter) ports.TicketReport {
	tickets := Keep(s.repo.Tickets(), func(t domain.SupportTicket) bool {
		if f.Status != "" && t.Status != strings.ToLower(f.Status) {
			return false
		}
		if f.Priority != "" && t.Priority != strings.ToLower(f.Priority) {
			return false
		}
		return true
	})
	sort.SliceStable(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})
	return ports.TicketReport{Count: len(tickets), Tickets: tickets}
}

func (s *ITService) RequestPasswordReset(_ context.Context, in ports.ResetInput) (ports.ResetResult, error) {
	now := time.Now().UTC()
	expires := now.Add(s.resetTTL)

	subject := in.Username
	if subject == "" {
		subject = in.Email
	}
	token, err := s.signResetToken(subject, now, expires)
	if err != nil {
		return ports.ResetResult{}, err
	}

	record := domain.PasswordReset{
		RequestID:   "REQ-" + strings.ToUpper(uuid.NewString()[:8]),
		Username:    in.Username,
		Email:       in.Email,
		ResetToken:  token,
		RequestedAt: now,
		ExpiresAt:   expires,
		Status:      "pending",
	}
	if err := s.repo.AppendPasswordReset(record); err != nil {
		s.logger.Error().Err(err).Str("request_id", record.RequestID).Msg("failed to persist password reset")
	}

	emailTo := in.Email
	if emailTo == "" {
		emailTo = in.Username + "@company.com"
	}
	s.logger.Info().Str("request_id", record.RequestID).Str("email", emailTo).Msg("password reset requested")

	return ports.ResetResult{
		RequestID:   record.RequestID,
		ResetToken:  token,
		EmailSentTo: emailTo,
		ExpiresAt:   expires,
	}, nil
}

// signResetToken mints an HS256 JWT carrying the reset subject and
// expiry, so the token itself encodes its validity window.
func (s *ITService) signResetToken(subject string, issued, expires time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"typ": "password_reset",
		"iat": issued.Unix(),
		"exp": expires.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.resetSecret))
}

func (s *ITService) PasswordResets(_ context.Context, f ports.ResetFilter) ports.ResetReport {
	resets := Keep(s.repo.PasswordResets(), func(r domain.PasswordReset) bool {
		if f.Username != "" && r.Username != f.Username {
			return false
		}
		if f.Status != "" && r.Status != strings.ToLower(f.Status) {
			return false
		}
		return true
	})
	sort.SliceStable(resets, func(i, j int) bool {
		return resets[i].RequestedAt.After(resets[j].RequestedAt)
	})
	return ports.ResetReport{Count: len(resets), Resets: resets}
}

func (s *ITService) Dashboard(_ context.Context) ports.Dashboard {
	services := s.repo.SystemStatus()
	health := ports.SystemHealth{
		TotalServices:   len(services),
		StatusBreakdown: make(map[string]int),
	}
	for _, st := range services {
		health.StatusBreakdown[st.Status]++
	}
	if len(services) > 0 {
		rate := float64(health.StatusBreakdown[domain.StatusOperational]) / float64(len(services)) * 100
		health.OperationalRate = math.Round(rate*10) / 10
	}

	tickets := s.repo.Tickets()
	ticketStats := ports.TicketStats{
		TotalTickets:      len(tickets),
		StatusBreakdown:   make(map[string]int),
		PriorityBreakdown: make(map[string]int),
	}
	for _, t := range tickets {
		ticketStats.StatusBreakdown[t.Status]++
		ticketStats.PriorityBreakdown[t.Priority]++
	}
	ticketStats.OpenTickets = ticketStats.StatusBreakdown["open"]

	resets := s.repo.PasswordResets()
	resetStats := ports.ResetStats{TotalRequests: len(resets)}
	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	for _, r := range resets {
		if r.RequestedAt.After(weekAgo) {
			resetStats.RecentRequests++
		}
		if r.Status == "pending" {
			resetStats.PendingRequests++
		}
	}

	return ports.Dashboard{
		SystemHealth:   health,
		SupportTickets: ticketStats,
		PasswordResets: resetStats,
		LastUpdated:    time.Now().UTC(),
	}
}

func newTicketID() string {
	return "TICKET-" + strings.ToUpper(uuid.NewString()[:8])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
