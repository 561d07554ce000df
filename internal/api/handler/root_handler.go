package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mocklab/corpmock/internal/core/domain"
)

// KeyLister exposes the registered demo keys. *service.Keyring satisfies it.
type KeyLister interface {
	All() []domain.APIKey
}

// RootHandler serves the banner and the demo key listing.
type RootHandler struct {
	keys KeyLister
}

func NewRootHandler(keys KeyLister) *RootHandler {
	return &RootHandler{keys: keys}
}

type rootResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

// Index handles GET /.
func (h *RootHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{
		Message: "corpmock server is running",
		Endpoints: []string{
			"/users/random",
			"/products/random",
			"/orders/random",
			"/financial/budgets",
			"/hr/employees",
			"/it/status",
		},
	})
}

type apiKeysResponse struct {
	Count int             `json:"count"`
	Keys  []domain.APIKey `json:"keys"`
}

// APIKeys handles GET /api-keys. The keys are published deliberately:
// this server only ever serves generated mock data.
func (h *RootHandler) APIKeys(c echo.Context) error {
	keys := h.keys.All()
	return c.JSON(http.StatusOK, apiKeysResponse{Count: len(keys), Keys: keys})
}

// Health handles GET /health — liveness probe.
func (h *RootHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
