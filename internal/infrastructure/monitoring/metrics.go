// Package monitoring exposes Prometheus metrics for the HTTP surface and
// the solver: request counts and latency, solves by method and outcome,
// and how many iterations converged solves needed.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Solve outcomes used as metric label values.
const (
	OutcomeConverged = "converged"
	OutcomeExhausted = "exhausted"
	OutcomeFailed    = "failed"
	OutcomeRejected  = "rejected"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Solver metrics
	SolvesTotal     *prometheus.CounterVec
	SolveDuration   *prometheus.HistogramVec
	SolveIterations *prometheus.HistogramVec

	startTime time.Time
	uptime    prometheus.GaugeFunc
}

// New creates a metrics collector registered on the default registry.
func New() *Metrics {
	m := &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zof_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "zof_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method", "path"},
		),

		SolvesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zof_solves_total",
				Help: "Root-finding requests by method and outcome",
			},
			[]string{"method", "outcome"},
		),
		SolveDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "zof_solve_duration_seconds",
				Help:    "Root-finding duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		SolveIterations: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "zof_solve_iterations",
				Help:    "Iterations taken per solve",
				Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000},
			},
			[]string{"method"},
		),
	}

	m.uptime = promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "zof_uptime_seconds",
			Help: "Seconds since process start",
		},
		func() float64 { return time.Since(m.startTime).Seconds() },
	)

	return m
}

// RecordHTTPRequest records one handled HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordSolve records one solve attempt.
func (m *Metrics) RecordSolve(method, outcome string, duration time.Duration, iterations int) {
	m.SolvesTotal.WithLabelValues(method, outcome).Inc()
	m.SolveDuration.WithLabelValues(method).Observe(duration.Seconds())
	if iterations >= 0 {
		m.SolveIterations.WithLabelValues(method).Observe(float64(iterations))
	}
}
