package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the registry service.
// All observer methods are nil-safe so wiring stays optional in tests.
type Metrics struct {
	// Entities created, by entity type.
	EntitiesCreated *prometheus.CounterVec

	// Swap request decisions, by outcome (completed, rejected).
	SwapDecisions *prometheus.CounterVec

	// HTTP request latency by route and status.
	RequestLatency *prometheus.HistogramVec
}

// New creates and registers all registry metrics.
func New() *Metrics {
	return &Metrics{
		EntitiesCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bookswap_entities_created_total",
			Help: "Total entities created, by entity type",
		}, []string{"entity"}), // entity: "user", "book", "swap_request", "feedback"

		SwapDecisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bookswap_swap_decisions_total",
			Help: "Total swap request decisions, by outcome",
		}, []string{"outcome"}),

		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bookswap_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "status"}),
	}
}

// IncrementEntityCreated records a successful create for an entity type.
func (m *Metrics) IncrementEntityCreated(entity string) {
	if m != nil {
		m.EntitiesCreated.WithLabelValues(entity).Inc()
	}
}

// IncrementSwapDecision records an accept or reject outcome.
func (m *Metrics) IncrementSwapDecision(outcome string) {
	if m != nil {
		m.SwapDecisions.WithLabelValues(outcome).Inc()
	}
}

// ObserveRequestLatency records the duration of one HTTP request.
func (m *Metrics) ObserveRequestLatency(route, status string, d time.Duration) {
	if m != nil {
		m.RequestLatency.WithLabelValues(route, status).Observe(d.Seconds())
	}
}
