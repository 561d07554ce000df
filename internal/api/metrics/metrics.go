// Package metrics defines the custom Prometheus metrics for the
// corpmock server. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry
// at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "corpmock"

// AuthDecisionsTotal counts every request-gate decision.
// Labels:
//   - service: the service the route is scoped to (financial/hr/it)
//   - result: "allowed", "unauthorized" or "forbidden"
var AuthDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_decisions_total",
		Help:      "Total API key authorization decisions, by service and result.",
	},
	[]string{"service", "result"},
)

// RecordsServedTotal counts records returned by random-pick endpoints.
// Label:
//   - category: "users", "products" or "orders"
var RecordsServedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_served_total",
		Help:      "Total records served by the random selection endpoints.",
	},
	[]string{"category"},
)

// TicketsCreatedTotal counts support tickets created.
// Label:
//   - priority: "low", "medium", "high" or "critical"
var TicketsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tickets_created_total",
		Help:      "Total support tickets created, by priority.",
	},
	[]string{"priority"},
)

// PasswordResetsTotal counts password reset requests recorded.
var PasswordResetsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_total",
		Help:      "Total password reset requests recorded.",
	},
)

// DatastoreSeedsTotal counts category datasets regenerated from seeded
// defaults instead of being read from disk.
// Labels:
//   - file: the category file name (e.g. "users.json")
//   - reason: "missing", "read_error" or "parse_error"
var DatastoreSeedsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "datastore_seeds_total",
		Help:      "Total category datasets regenerated from defaults, by reason.",
	},
	[]string{"file", "reason"},
)
