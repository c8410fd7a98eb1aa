// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	leadsMoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_leads_moved_total",
			Help: "Total number of lead stage moves",
		},
		[]string{"closing"},
	)

	salesSettled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_sales_settled_total",
			Help: "Total number of leads marked as sold",
		},
	)

	salesRevenue = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_sales_revenue_cents_total",
			Help: "Revenue recorded at settlement, in cents",
		},
	)

	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_login_attempts_total",
			Help: "Login attempts by result",
		},
		[]string{"result"},
	)

	auditDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_audit_events_dropped_total",
			Help: "Audit events dropped because the queue was full",
		},
	)
)

func RecordRequest(method, path string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func RecordLeadMoved(closing bool) {
	leadsMoved.WithLabelValues(strconv.FormatBool(closing)).Inc()
}

func RecordSale(amountCents int64) {
	salesSettled.Inc()
	if amountCents > 0 {
		salesRevenue.Add(float64(amountCents))
	}
}

// Login results.
const (
	LoginOK       = "ok"
	LoginInvalid  = "invalid"
	LoginInactive = "inactive"
	LoginLimited  = "rate_limited"
)

func RecordLogin(result string) {
	loginAttempts.WithLabelValues(result).Inc()
}

func RecordAuditDropped() {
	auditDropped.Inc()
}
