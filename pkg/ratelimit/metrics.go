package ratelimit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NoopMetrics discards all observations.
type NoopMetrics struct{}

func (NoopMetrics) RecordAllowed(string)    {}
func (NoopMetrics) RecordDenied(string)     {}
func (NoopMetrics) RecordStoreError(string) {}

// PrometheusMetrics exports limiter outcomes as counters labeled by
// rule name.
type PrometheusMetrics struct {
	allowed     *prometheus.CounterVec
	denied      *prometheus.CounterVec
	storeErrors *prometheus.CounterVec
}

// NewPrometheusMetrics registers the limiter counters on reg. A nil
// reg uses the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		allowed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ratelimit_allowed_total",
			Help: "Requests admitted by the rate limiter.",
		}, []string{"rule"}),
		denied: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ratelimit_denied_total",
			Help: "Requests rejected by the rate limiter.",
		}, []string{"rule"}),
		storeErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ratelimit_store_errors_total",
			Help: "Rate limit store failures, requests pass through on failure.",
		}, []string{"rule"}),
	}
}

func (m *PrometheusMetrics) RecordAllowed(rule string)    { m.allowed.WithLabelValues(rule).Inc() }
func (m *PrometheusMetrics) RecordDenied(rule string)     { m.denied.WithLabelValues(rule).Inc() }
func (m *PrometheusMetrics) RecordStoreError(rule string) { m.storeErrors.WithLabelValues(rule).Inc() }
