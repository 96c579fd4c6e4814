// Package metrics holds the Prometheus collectors for registry lookups and
// the HTTP gateway.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for registry lookups.
type Metrics struct {
	// Facade calls by operation and outcome
	Lookups *prometheus.CounterVec

	// Facade call latency by operation, including the upstream round-trip
	LookupLatency *prometheus.HistogramVec

	// Upstream failures by operation and fetch error category
	UpstreamErrors *prometheus.CounterVec

	// Gateway requests by route, method and status
	HTTPRequests *prometheus.CounterVec
}

// New creates a Metrics instance registered with reg. Passing nil registers
// with the default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cadastre_lookups_total",
			Help: "Total registry lookups by operation and outcome",
		}, []string{"operation", "outcome"}), // outcome: ok, empty, invalid_input, transport_error, malformed

		LookupLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cadastre_lookup_duration_seconds",
			Help:    "Duration of registry lookups by operation",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"operation"}),

		UpstreamErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cadastre_upstream_errors_total",
			Help: "Total failed registry requests by operation and category",
		}, []string{"operation", "category"}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cadastre_http_requests_total",
			Help: "Total gateway requests by route, method and status",
		}, []string{"route", "method", "status"}),
	}
}

// ObserveLookup records the outcome and duration of one facade call.
func (m *Metrics) ObserveLookup(operation, outcome string, d time.Duration) {
	if m != nil {
		m.Lookups.WithLabelValues(operation, outcome).Inc()
		m.LookupLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// IncrementUpstreamError records a failed registry request.
func (m *Metrics) IncrementUpstreamError(operation, category string) {
	if m != nil {
		m.UpstreamErrors.WithLabelValues(operation, category).Inc()
	}
}

// IncrementHTTPRequest records a handled gateway request.
func (m *Metrics) IncrementHTTPRequest(route, method, status string) {
	if m != nil {
		m.HTTPRequests.WithLabelValues(route, method, status).Inc()
	}
}
