package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the verification module.
type Metrics struct {
	// Verification outcomes by tier and status
	Outcome *prometheus.CounterVec

	// Confidence score distribution
	Confidence prometheus.Histogram

	// Overall verification latency including persistence
	VerifyLatency prometheus.Histogram
}

// New creates a Metrics instance with all verification metrics registered.
func New() *Metrics {
	return &Metrics{
		Outcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tessera_verification_outcomes_total",
			Help: "Total verification outcomes by tier and status",
		}, []string{"tier", "status"}),

		Confidence: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tessera_verification_confidence",
			Help:    "Distribution of computed confidence scores",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		}),

		VerifyLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tessera_verification_duration_seconds",
			Help:    "Duration of full verification including persistence",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// IncrementOutcome records a verification outcome.
func (m *Metrics) IncrementOutcome(tier, status string) {
	if m != nil {
		m.Outcome.WithLabelValues(tier, status).Inc()
	}
}

// ObserveConfidence records a computed confidence score.
func (m *Metrics) ObserveConfidence(score float64) {
	if m != nil {
		m.Confidence.Observe(score)
	}
}

// ObserveVerifyLatency records the total verification duration.
func (m *Metrics) ObserveVerifyLatency(d time.Duration) {
	if m != nil {
		m.VerifyLatency.Observe(d.Seconds())
	}
}
