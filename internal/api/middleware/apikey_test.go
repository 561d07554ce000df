package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mocklab/corpmock/internal/core/domain"
)

type stubGate struct {
	err     error
	gotKey  string
	gotSvc  domain.Service
	gotMin  domain.Level
	decided bool
}

func (g *stubGate) Authorize(key string, svc domain.Service, min domain.Level) error {
	g.gotKey, g.gotSvc, g.gotMin = key, svc, min
	g.decided = true
	return g.err
}

func invoke(t *testing.T, gate *stubGate, key string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/financial/budgets", nil)
	if key != "" {
		req.Header.Set(HeaderAPIKey, key)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := APIKey(gate, domain.ServiceFinancial, domain.LevelRead)
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return c, mw(next)(c)
}

func TestAPIKey_Allow(t *testing.T) {
	gate := &stubGate{}
	c, err := invoke(t, gate, "fin_12345abcde")
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if !gate.decided || gate.gotKey != "fin_12345abcde" || gate.gotSvc != domain.ServiceFinancial || gate.gotMin != domain.LevelRead {
		t.Fatalf("gate saw %q/%s/%s", gate.gotKey, gate.gotSvc, gate.gotMin)
	}
	if got, _ := c.Get("api_key").(string); got != "fin_12345abcde" {
		t.Fatalf("expected api_key in context, got %q", got)
	}
}

func TestAPIKey_UnknownKey(t *testing.T) {
	gate := &stubGate{err: domain.ErrUnauthorized}
	_, err := invoke(t, gate, "bogus")

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if he.Message != "invalid API key" {
		t.Fatalf("unexpected message %v", he.Message)
	}
}

func TestAPIKey_MissingHeader(t *testing.T) {
	gate := &stubGate{err: domain.ErrUnauthorized}
	_, err := invoke(t, gate, "")

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for missing header, got %v", err)
	}
	if gate.gotKey != "" {
		t.Fatalf("expected empty key passed to gate, got %q", gate.gotKey)
	}
}

func TestAPIKey_WrongScope(t *testing.T) {
	gate := &stubGate{err: domain.ErrForbidden}
	_, err := invoke(t, gate, "hr_12345abcde")

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
	if he.Message != "API key not valid for this resource" {
		t.Fatalf("unexpected message %v", he.Message)
	}
}
