// Package metrics holds the Prometheus collectors of the back office. All
// collectors are registered on the default registry at package init and
// served from /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ecodive"

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "missing_fields" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ActivityLogFailuresTotal counts activity entries that could not be written
// after the mutation they describe had already succeeded.
var ActivityLogFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_log_failures_total",
		Help:      "Total number of activity log writes that failed, by action.",
	},
	[]string{"action"},
)

// RateLimitedTotal counts requests rejected by a rate limiter.
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by rate limiting, by scope.",
	},
	[]string{"scope"},
)

// AccessDeniedTotal counts requests stopped by the role gate.
// Label:
//   - reason: "unauthenticated", "forbidden", or "view" for SPA redirects
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests denied by the role gate.",
	},
	[]string{"reason"},
)

// HTTPRequestsTotal counts served requests. route is the chi route pattern,
// never the raw path.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests, by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests, by method and route.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// Inventory gauges, refreshed by the stats job from the dashboard tallies.
var (
	UsersTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "users",
		Help:      "Number of registered diving customers.",
	})

	TeamMembersTotal = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "team_members",
		Help:      "Number of team members, by role.",
	}, []string{"role"})

	DiveClubsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "dive_clubs",
		Help:      "Number of partner dive clubs.",
	})

	EventsThisMonth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_this_month",
		Help:      "Number of calendar events starting in the current month.",
	})
)
