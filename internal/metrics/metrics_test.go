package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMustNewRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := MustNew("test_ns", reg)

	m.ObserveComponent(ComponentPersona, 50*time.Microsecond)
	m.CountDecision("TechEarlyAdopter")
	m.CountAdaptBranch("performance")
	m.SetTrackedSessions(7)

	require.Equal(t, 1.0, testutil.ToFloat64(m.decisions))
	require.Equal(t, 1.0, testutil.ToFloat64(m.personaDecisions.WithLabelValues("TechEarlyAdopter")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.adaptBranches.WithLabelValues("performance")))
	require.Equal(t, 7.0, testutil.ToFloat64(m.trackedSessions))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveComponent(ComponentAdapt, time.Millisecond)
	m.CountDecision("RemoteDad")
	m.CountAdaptBranch("conversion")
	m.SetTrackedSessions(0)
}

func TestMustNewPanicsOnDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	MustNew("dup", reg)
	require.Panics(t, func() { MustNew("dup", reg) })
}

func TestMustNewDefaultsNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := MustNew("", reg)
	m.CountDecision("BusinessOwner")

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.Contains(t, names, "uxengine_decisions_total")
}
