// Package metrics defines and registers all custom Prometheus metrics for the
// commodities admin API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors are registered with the default Prometheus registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commodities"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// LoginDuration measures login latency including the simulated provider delay.
var LoginDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "login_duration_seconds",
		Help:      "Duration of login requests.",
		Buckets:   []float64{.1, .25, .5, .75, 1, 1.5, 2, 5},
	},
)

// GateDenialsTotal counts requests stopped by the authorization gate.
// Labels:
//   - route: the echo route path (e.g. "/v1/orders")
//   - reason: "unauthenticated" or "forbidden"
var GateDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_denials_total",
		Help:      "Total number of requests denied by the authorization gate.",
	},
	[]string{"route", "reason"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogMutationsTotal counts product writes.
// Labels:
//   - op: "create", "update" or "delete"
//   - result: "ok" or "not_found"
var CatalogMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_mutations_total",
		Help:      "Total number of catalog mutations, by operation and result.",
	},
	[]string{"op", "result"},
)
