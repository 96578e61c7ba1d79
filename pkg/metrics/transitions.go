package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// TransitionMetrics records metadata for community snapshot transitions.
type TransitionMetrics struct {
	duration *prometheus.HistogramVec
	applied  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewTransitionMetrics registers the transition metrics on the provided registerer.
func NewTransitionMetrics(reg prometheus.Registerer) *TransitionMetrics {
	if reg == nil {
		return &TransitionMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "transition_duration_seconds",
		Help:    "Duration of snapshot transitions in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"transition"})
	applied := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "transition_applied",
		Help: "Snapshot transitions applied and persisted.",
	}, []string{"transition"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "transition_failure",
		Help: "Snapshot transitions that failed to persist.",
	}, []string{"transition"})
	reg.MustRegister(duration, applied, failure)
	return &TransitionMetrics{
		duration: duration,
		applied:  applied,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named transition.
func (t *TransitionMetrics) ObserveDuration(transition string, duration time.Duration) {
	if t == nil || t.duration == nil {
		return
	}
	t.duration.WithLabelValues(normalizeLabel(transition)).Observe(duration.Seconds())
}

// IncApplied increments the applied counter for the named transition.
func (t *TransitionMetrics) IncApplied(transition string) {
	if t == nil || t.applied == nil {
		return
	}
	t.applied.WithLabelValues(normalizeLabel(transition)).Inc()
}

// IncFailure increments the failure counter for the named transition.
func (t *TransitionMetrics) IncFailure(transition string) {
	if t == nil || t.failure == nil {
		return
	}
	t.failure.WithLabelValues(normalizeLabel(transition)).Inc()
}

func normalizeLabel(transition string) string {
	if transition == "" {
		return "unknown"
	}
	return transition
}
