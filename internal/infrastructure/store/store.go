// Package store implements the flat-file data store behind all record
// collections. Each category is loaded once at startup: from its JSON
// file under the data directory when present, otherwise from seeded
// defaults that are then persisted. A file that exists but cannot be
// parsed is logged and replaced in memory by regenerated defaults; the
// broken file on disk is left untouched.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mocklab/corpmock/internal/api/metrics"
	"github.com/mocklab/corpmock/internal/core/domain"
)

type financeData struct {
	Budgets  []domain.Budget  `json:"budgets"`
	Expenses []domain.Expense `json:"expenses"`
	Revenues []domain.Revenue `json:"revenues"`
}

type hrData struct {
	Employees []domain.Employee     `json:"employees"`
	Policies  []domain.Policy       `json:"policies"`
	Payroll   []domain.PayrollEntry `json:"payroll"`
}

type itData struct {
	SystemStatus   []domain.ServiceStatus `json:"system_status"`
	SupportTickets []domain.SupportTicket `json:"support_tickets"`
	PasswordResets []domain.PasswordReset `json:"password_resets"`
}

// Store holds every collection in memory for the process lifetime. All
// collections are read-only after New returns except the IT tickets and
// password resets, which the two Append methods grow under mu.
type Store struct {
	log zerolog.Logger
	dir string

	users    []domain.User
	products []domain.Product
	orders   []domain.Order
	finance  financeData
	hr       hrData

	mu sync.Mutex
	it itData
}

// New loads (or seeds) every category eagerly so a bad data directory
// surfaces in the logs at startup, not on the first request.
func New(dir string, log zerolog.Logger) *Store {
	s := &Store{log: log, dir: dir}
	s.users = loadCollection(s, "users.json", seedUsers)
	s.products = loadCollection(s, "products.json", seedProducts)
	s.orders = loadCollection(s, "orders.json", seedOrders)
	s.finance = loadCollection(s, "financial.json", seedFinance)
	s.hr = loadCollection(s, "hr.json", seedHR)
	s.it = loadCollection(s, "it.json", seedIT)
	return s
}

// loadCollection reads one category file, seeding and persisting it
// when absent. IO and parse failures fall back to seeded defaults and
// never propagate.
func loadCollection[T any](s *Store, name string, seed func() T) T {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Error().Err(err).Str("file", path).Msg("data file unreadable, using generated defaults")
			metrics.DatastoreSeedsTotal.WithLabelValues(name, "read_error").Inc()
			return seed()
		}
		v := seed()
		if werr := s.writeJSON(name, v); werr != nil {
			s.log.Warn().Err(werr).Str("file", path).Msg("could not persist seeded data file")
		}
		metrics.DatastoreSeedsTotal.WithLabelValues(name, "missing").Inc()
		s.log.Info().Str("file", path).Msg("seeded data file")
		return v
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		s.log.Error().Err(err).Str("file", path).Msg("data file unparseable, using generated defaults")
		metrics.DatastoreSeedsTotal.WithLabelValues(name, "parse_error").Inc()
		return seed()
	}
	return v
}

func (s *Store) writeJSON(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, 0o644)
}

// --- ports.CatalogRepository ---

func (s *Store) Users() []domain.User       { return s.users }
func (s *Store) Products() []domain.Product { return s.products }
func (s *Store) Orders() []domain.Order     { return s.orders }

// --- ports.FinanceRepository ---

func (s *Store) Budgets() []domain.Budget   { return s.finance.Budgets }
func (s *Store) Expenses() []domain.Expense { return s.finance.Expenses }
func (s *Store) Revenues() []domain.Revenue { return s.finance.Revenues }

// --- ports.HRRepository ---

func (s *Store) Employees() []domain.Employee   { return s.hr.Employees }
func (s *Store) Policies() []domain.Policy      { return s.hr.Policies }
func (s *Store) Payroll() []domain.PayrollEntry { return s.hr.Payroll }

// --- ports.ITRepository ---

func (s *Store) SystemStatus() []domain.ServiceStatus { return s.it.SystemStatus }

// Tickets returns a snapshot copy: the underlying slice may grow under
// mu while the caller is still iterating.
func (s *Store) Tickets() []domain.SupportTicket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.SupportTicket, len(s.it.SupportTickets))
	copy(out, s.it.SupportTickets)
	return out
}

// AppendTicket records a ticket in memory and persists the IT bundle
// best-effort. The in-memory append always succeeds; the returned error
// only reports the persistence attempt.
func (s *Store) AppendTicket(t domain.SupportTicket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.it.SupportTickets = append(s.it.SupportTickets, t)
	return s.writeJSON("it.json", s.it)
}

func (s *Store) PasswordResets() []domain.PasswordReset {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.PasswordReset, len(s.it.PasswordResets))
	copy(out, s.it.PasswordResets)
	return out
}

func (s *Store) AppendPasswordReset(r domain.PasswordReset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.it.PasswordResets = append(s.it.PasswordResets, r)
	return s.writeJSON("it.json", s.it)
}
