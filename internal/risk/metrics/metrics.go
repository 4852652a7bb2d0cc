package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the risk module.
type Metrics struct {
	// Assessments by resulting level
	Level *prometheus.CounterVec

	// Collaborator failures by source, counting degradations to defaults
	SourceFailures *prometheus.CounterVec

	// Overall assessment latency including factor collection
	AssessLatency prometheus.Histogram
}

// New creates a Metrics instance with all risk module metrics registered.
func New() *Metrics {
	return &Metrics{
		Level: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tessera_risk_assessments_total",
			Help: "Total risk assessments by resulting level",
		}, []string{"level"}),

		SourceFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tessera_risk_source_failures_total",
			Help: "Collaborator failures that degraded to documented defaults",
		}, []string{"source"}), // source: "market", "weather"

		AssessLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tessera_risk_assess_duration_seconds",
			Help:    "Duration of full risk assessment including factor collection",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// IncrementLevel records an assessment outcome.
func (m *Metrics) IncrementLevel(level string) {
	if m != nil {
		m.Level.WithLabelValues(level).Inc()
	}
}

// IncrementSourceFailure records a collaborator degradation.
func (m *Metrics) IncrementSourceFailure(source string) {
	if m != nil {
		m.SourceFailures.WithLabelValues(source).Inc()
	}
}

// ObserveAssessLatency records the total assessment duration.
func (m *Metrics) ObserveAssessLatency(d time.Duration) {
	if m != nil {
		m.AssessLatency.Observe(d.Seconds())
	}
}
