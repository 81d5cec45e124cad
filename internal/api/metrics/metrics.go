// Package metrics defines and registers the custom Prometheus metrics for
// the AnyList API. It is the single source of truth for metric names,
// labels, and help strings; registration happens at import time through
// promauto and the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "anylist"

// GraphQLRequestsTotal counts executed GraphQL documents.
// Label:
//   - status: "ok" or "error" (the response carried at least one error)
var GraphQLRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "graphql_requests_total",
		Help:      "Total number of GraphQL documents executed.",
	},
	[]string{"status"},
)

// GraphQLRequestDuration measures end-to-end execution time of a document.
var GraphQLRequestDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "graphql_request_duration_seconds",
		Help:      "Duration of GraphQL document execution.",
		Buckets:   prometheus.DefBuckets,
	},
)

// AuthDenialsTotal counts denied identity checks.
// Labels:
//   - operation: the guarded operation or field identifier (e.g. "users", "User.itemCount")
//   - reason: "unauthenticated" or "forbidden"
var AuthDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denials_total",
		Help:      "Total number of denied authentication/authorization checks.",
	},
	[]string{"operation", "reason"},
)

// LoginAttemptsTotal counts login outcomes.
// Label:
//   - result: "success", "invalid_credentials", "throttled" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// SeedRunsTotal counts executed database seeds.
var SeedRunsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seed_runs_total",
		Help:      "Total number of successful seed executions.",
	},
)
