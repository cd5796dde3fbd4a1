package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the demand service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// HTTP request latency by method, route pattern and status
	RequestDuration *prometheus.HistogramVec

	// Lifecycle operations by name and outcome ("ok", "error")
	DemandOps *prometheus.CounterVec

	// Optimistic-concurrency retries on demand writes
	WriteConflicts prometheus.Counter

	// Statistics query latency by dimension
	StatsDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "demands_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method, route and status",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route", "status"}),

		DemandOps: f.NewCounterVec(prometheus.CounterOpts{
			Name: "demands_operations_total",
			Help: "Total demand lifecycle operations by operation and outcome",
		}, []string{"op", "outcome"}),

		WriteConflicts: f.NewCounter(prometheus.CounterOpts{
			Name: "demands_write_conflicts_total",
			Help: "Demand writes retried after losing a version race",
		}),

		StatsDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "demands_stats_duration_seconds",
			Help:    "Duration of statistics reports by dimension",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"dimension"}),
	}
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, d time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
	}
}

// IncrementOp records the outcome of a lifecycle operation.
func (m *Metrics) IncrementOp(op string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.DemandOps.WithLabelValues(op, outcome).Inc()
}

// IncrementConflict records a version race on a demand write.
func (m *Metrics) IncrementConflict() {
	if m != nil {
		m.WriteConflicts.Inc()
	}
}

// ObserveStats records how long a statistics report took.
func (m *Metrics) ObserveStats(dimension string, d time.Duration) {
	if m != nil {
		m.StatsDuration.WithLabelValues(dimension).Observe(d.Seconds())
	}
}
