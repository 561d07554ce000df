package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mocklab/corpmock/internal/api/middleware"
	"github.com/mocklab/corpmock/internal/core/domain"
	"github.com/mocklab/corpmock/internal/core/service"
	"github.com/mocklab/corpmock/internal/infrastructure/store"
)

var (
	routerOnce sync.Once
	testRouter *echo.Echo
)

// testServer builds the full stack once: the prometheus middleware
// registers collectors in the default registry, so the router cannot be
// constructed per test.
func testServer(t *testing.T) *echo.Echo {
	t.Helper()
	routerOnce.Do(func() {
		log := zerolog.Nop()
		s := store.New(t.TempDir(), log)
		testRouter = NewRouter(Deps{
			Logger:  log,
			Keyring: service.NewKeyring(domain.DefaultAPIKeys()),
			Catalog: service.NewCatalogService(s, service.SystemRand()),
			Finance: service.NewFinanceService(s),
			HR:      service.NewHRService(s),
			IT:      service.NewITService(s, "router-test-secret", time.Hour, log),
		})
	})
	return testRouter
}

func doJSON(t *testing.T, e *echo.Echo, method, target, key, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if key != "" {
		req.Header.Set(middleware.HeaderAPIKey, key)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_RandomUserIsMember(t *testing.T) {
	e := testServer(t)

	rec := doJSON(t, e, http.MethodGet, "/users/random", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /users/random = %d, body %s", rec.Code, rec.Body.String())
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if user.ID < 1 || user.ID > 5 {
		t.Fatalf("picked user %d is not in the seeded collection", user.ID)
	}
}

func TestRouter_UserNotFoundEnvelope(t *testing.T) {
	e := testServer(t)

	rec := doJSON(t, e, http.MethodGet, "/users/999", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body["detail"] == "" {
		t.Fatalf("expected detail envelope, got %s", rec.Body.String())
	}
}

func TestRouter_ProductsUnknownCategoryIsEmptyArray(t *testing.T) {
	e := testServer(t)

	rec := doJSON(t, e, http.MethodGet, "/products/category/furniture", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected empty JSON array, got %s", got)
	}
}

func TestRouter_FinancialRequiresKey(t *testing.T) {
	e := testServer(t)

	// No key at all.
	rec := doJSON(t, e, http.MethodGet, "/financial/budgets", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no key: expected 401, got %d", rec.Code)
	}

	// A valid key for the wrong service.
	rec = doJSON(t, e, http.MethodGet, "/financial/budgets", "hr_12345abcde", "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("hr key: expected 403, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body["detail"] != "API key not valid for this resource" {
		t.Fatalf("unexpected detail %q", body["detail"])
	}
}

func TestRouter_FinancialBudgetsFiltered(t *testing.T) {
	e := testServer(t)

	rec := doJSON(t, e, http.MethodGet, "/financial/budgets?department=Engineering", "fin_12345abcde", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Count   int             `json:"count"`
		Results []domain.Budget `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Count == 0 {
		t.Fatal("expected Engineering budgets in the seeded data")
	}
	for _, b := range body.Results {
		if b.Department != "Engineering" {
			t.Fatalf("unexpected department %q in filtered results", b.Department)
		}
	}
}

func TestRouter_HRPayrollTier(t *testing.T) {
	e := testServer(t)

	// The base read key cannot reach payroll.
	rec := doJSON(t, e, http.MethodGet, "/hr/payroll", "hr_12345abcde", "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("read key: expected 403, got %d", rec.Code)
	}

	// The payroll key can.
	rec = doJSON(t, e, http.MethodGet, "/hr/payroll", "payroll_24680mnop", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("payroll key: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// So can the admin key.
	rec = doJSON(t, e, http.MethodGet, "/hr/payroll", "hr_admin_67890xyz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("admin key: expected 200, got %d", rec.Code)
	}
}

func TestRouter_CreateTicket(t *testing.T) {
	e := testServer(t)

	payload := `{"title":"VPN down","description":"cannot connect since 9am","priority":"high"}`
	rec := doJSON(t, e, http.MethodPost, "/it/support/ticket", "it_support_24680mnop", payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Message  string               `json:"message"`
		TicketID string               `json:"ticket_id"`
		Ticket   domain.SupportTicket `json:"ticket"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !strings.HasPrefix(body.TicketID, "TICKET-") {
		t.Fatalf("unexpected ticket id %q", body.TicketID)
	}
	if body.Ticket.Status != "open" || body.Ticket.Priority != "high" {
		t.Fatalf("unexpected ticket %+v", body.Ticket)
	}

	// The new ticket is visible on the list endpoint with a read key.
	rec = doJSON(t, e, http.MethodGet, "/it/support/tickets", "it_12345abcde", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list tickets: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), body.TicketID) {
		t.Fatal("created ticket not listed")
	}
}

func TestRouter_CreateTicket_Validation(t *testing.T) {
	e := testServer(t)

	// Missing required fields.
	rec := doJSON(t, e, http.MethodPost, "/it/support/ticket", "it_support_24680mnop", `{"title":"x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing description: expected 400, got %d", rec.Code)
	}

	// Priority outside the accepted set.
	payload := `{"title":"x","description":"y","priority":"urgent"}`
	rec = doJSON(t, e, http.MethodPost, "/it/support/ticket", "it_support_24680mnop", payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad priority: expected 400, got %d", rec.Code)
	}

	// A read key cannot create tickets.
	payload = `{"title":"x","description":"y"}`
	rec = doJSON(t, e, http.MethodPost, "/it/support/ticket", "it_12345abcde", payload)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("read key: expected 403, got %d", rec.Code)
	}
}

func TestRouter_PasswordReset(t *testing.T) {
	e := testServer(t)

	rec := doJSON(t, e, http.MethodPost, "/it/auth/password/reset", "it_support_24680mnop", `{"username":"jdoe"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !strings.HasPrefix(body["request_id"], "REQ-") {
		t.Fatalf("unexpected request id %q", body["request_id"])
	}
	if body["email_sent_to"] != "jdoe@company.com" {
		t.Fatalf("unexpected email %q", body["email_sent_to"])
	}
	if _, err := time.Parse(time.RFC3339, body["expires_at"]); err != nil {
		t.Fatalf("expires_at not RFC3339: %v", err)
	}

	// Neither username nor email is a validation error.
	rec = doJSON(t, e, http.MethodPost, "/it/auth/password/reset", "it_support_24680mnop", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty payload: expected 400, got %d", rec.Code)
	}
}

func TestRouter_OpenEndpoints(t *testing.T) {
	e := testServer(t)

	rec := doJSON(t, e, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodGet, "/api-keys", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("api-keys: expected 200, got %d", rec.Code)
	}
	var body struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Count != 8 {
		t.Fatalf("expected 8 published keys, got %d", body.Count)
	}

	rec = doJSON(t, e, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
}
