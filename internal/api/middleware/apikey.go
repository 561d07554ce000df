package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mocklab/corpmock/internal/api/metrics"
	"github.com/mocklab/corpmock/internal/core/domain"
)

// HeaderAPIKey is the header carrying the caller's API key.
const HeaderAPIKey = "X-API-Key"

// Authorizer decides whether a key may access a service at a level.
// *service.Keyring satisfies it.
type Authorizer interface {
	Authorize(providedKey string, service domain.Service, minLevel domain.Level) error
}

// APIKey gates a route group on the X-API-Key header. The key must be
// known, scoped to the given service, and satisfy minLevel. On allow it
// stores the key string under "api_key" for downstream handlers.
func APIKey(gate Authorizer, service domain.Service, minLevel domain.Level) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(HeaderAPIKey)
			if err := gate.Authorize(key, service, minLevel); err != nil {
				if errors.Is(err, domain.ErrForbidden) {
					metrics.AuthDecisionsTotal.WithLabelValues(string(service), "forbidden").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "API key not valid for this resource")
				}
				metrics.AuthDecisionsTotal.WithLabelValues(string(service), "unauthorized").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid API key")
			}

			metrics.AuthDecisionsTotal.WithLabelValues(string(service), "allowed").Inc()
			c.Set("api_key", key)
			return next(c)
		}
	}
}
