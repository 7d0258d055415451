package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus counters for the complaint intake path.
type Metrics struct {
	ReportsSubmitted    prometheus.Counter
	ClassifierFallbacks prometheus.Counter
	ClassifierErrors    prometheus.Counter
	TrafficEvaluations  prometheus.Counter
}

// NewMetrics creates and registers all counters with the default registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ReportsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ansimtalk",
			Name:      "reports_submitted_total",
			Help:      "Total complaint reports accepted and stored.",
		}),
		ClassifierFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ansimtalk",
			Name:      "classifier_fallbacks_total",
			Help:      "Total classifications replaced by the UNKNOWN fallback result.",
		}),
		ClassifierErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ansimtalk",
			Name:      "classifier_errors_total",
			Help:      "Total classification calls that failed outright.",
		}),
		TrafficEvaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ansimtalk",
			Name:      "traffic_evaluations_total",
			Help:      "Total congestion overlay recomputations served.",
		}),
	}
	prometheus.MustRegister(
		m.ReportsSubmitted,
		m.ClassifierFallbacks,
		m.ClassifierErrors,
		m.TrafficEvaluations,
	)
	return m
}
