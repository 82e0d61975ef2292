// Package metrics exposes Prometheus collectors for engine activity. The
// engine observes component latencies and decision outcomes; exposition (HTTP
// handler, push, none at all) is the caller's concern.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Component labels for latency observations.
const (
	ComponentPersona = "persona"
	ComponentDevice  = "device"
	ComponentIntent  = "intent"
	ComponentAdapt   = "adapt"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	componentLatency *prometheus.HistogramVec
	decisions        prometheus.Counter
	personaDecisions *prometheus.CounterVec
	adaptBranches    *prometheus.CounterVec
	trackedSessions  prometheus.Gauge
}

// MustNew constructs and registers the collectors against the given
// registerer. A nil registerer means the default registry. Registration
// errors panic, surfacing duplicate-registration bugs early; tests should
// pass a fresh prometheus.NewRegistry().
func MustNew(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "uxengine"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		componentLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "component_latency_seconds",
				Help:      "Per-call latency of each engine component.",
				Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5},
			},
			[]string{"component"},
		),
		decisions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "decisions_total",
				Help:      "Total decision bundles produced.",
			},
		),
		personaDecisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "persona_decisions_total",
				Help:      "Decisions per winning persona archetype.",
			},
			[]string{"persona"},
		),
		adaptBranches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "adaptation_branches_total",
				Help:      "Adaptation branches fired per decision.",
			},
			[]string{"branch"},
		),
		trackedSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "tracked_sessions",
				Help:      "Sessions currently held in the persona store.",
			},
		),
	}

	reg.MustRegister(m.componentLatency, m.decisions, m.personaDecisions, m.adaptBranches, m.trackedSessions)
	return m
}

// ObserveComponent records one component call duration.
func (m *Metrics) ObserveComponent(component string, d time.Duration) {
	if m == nil {
		return
	}
	m.componentLatency.WithLabelValues(component).Observe(d.Seconds())
}

// CountDecision records a completed decision bundle.
func (m *Metrics) CountDecision(persona string) {
	if m == nil {
		return
	}
	m.decisions.Inc()
	m.personaDecisions.WithLabelValues(persona).Inc()
}

// CountAdaptBranch records one fired adaptation branch.
func (m *Metrics) CountAdaptBranch(branch string) {
	if m == nil {
		return
	}
	m.adaptBranches.WithLabelValues(branch).Inc()
}

// SetTrackedSessions updates the session-store gauge.
func (m *Metrics) SetTrackedSessions(n int) {
	if m == nil {
		return
	}
	m.trackedSessions.Set(float64(n))
}
