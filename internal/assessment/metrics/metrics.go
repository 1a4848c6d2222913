package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the assessment module.
type Metrics struct {
	// Evaluations by final risk level ("none" when no score was computable)
	Evaluations *prometheus.CounterVec

	// Crisis overrides by tier
	CrisisOverrides *prometheus.CounterVec

	// Free-text scans that raised the emergency flag
	EmergencyFlags prometheus.Counter

	// Full pipeline latency
	EvaluateLatency prometheus.Histogram
}

// New creates a new Metrics instance with all assessment module metrics registered.
func New() *Metrics {
	return &Metrics{
		Evaluations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "serenity_assessments_total",
			Help: "Total assessments evaluated, by final risk level",
		}, []string{"risk"}),

		CrisisOverrides: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "serenity_crisis_overrides_total",
			Help: "Total assessments where the safety override fired, by tier",
		}, []string{"tier"}),

		EmergencyFlags: promauto.NewCounter(prometheus.CounterOpts{
			Name: "serenity_emergency_keyword_flags_total",
			Help: "Total free-text scans that raised the emergency flag",
		}),

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "serenity_assessment_duration_seconds",
			Help:    "Duration of the full assessment pipeline",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		}),
	}
}

// IncrementEvaluation records a completed assessment.
func (m *Metrics) IncrementEvaluation(risk string) {
	if m != nil {
		m.Evaluations.WithLabelValues(risk).Inc()
	}
}

// IncrementCrisisOverride records a fired safety override.
func (m *Metrics) IncrementCrisisOverride(tier string) {
	if m != nil {
		m.CrisisOverrides.WithLabelValues(tier).Inc()
	}
}

// IncrementEmergencyFlag records an emergency keyword hit.
func (m *Metrics) IncrementEmergencyFlag() {
	if m != nil {
		m.EmergencyFlags.Inc()
	}
}

// ObserveEvaluateLatency records the total pipeline duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
