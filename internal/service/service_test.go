package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquaguard/water-monitor/internal/domain"
	"github.com/aquaguard/water-monitor/internal/risk"
)

func newTestServices() *Services {
	return New(nil, Options{})
}

func f(v float64) *float64 { return &v }

// noon on a Tuesday, so the temporal modifier is neutral
var noon = time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

func neutralReading(zone string) domain.Reading {
	return domain.ReadingInput{Zone: zone}.Reading(noon)
}

func TestNewDefaults(t *testing.T) {
	svcs := newTestServices()

	assert.Nil(t, svcs.Repos)
	require.NotNil(t, svcs.Monitor)
	assert.Equal(t, 24, svcs.Monitor.History().Capacity())
	assert.IsType(t, risk.Engine{}, svcs.Monitor.scorer)
}

func TestAssessNeutralReading(t *testing.T) {
	svcs := newTestServices()

	a := svcs.Monitor.Assess(neutralReading("Zone A"))

	require.NotNil(t, a)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "Zone A", a.Zone)
	assert.Equal(t, domain.LabelSafe, a.Label)
	assert.Equal(t, domain.CauseNormal, a.RootCause)
	assert.Equal(t, domain.StatusNormal, a.Status)
	assert.NotEmpty(t, a.Interpretation)

	latest := svcs.Monitor.Latest()
	require.Contains(t, latest, "Zone A")
	assert.Equal(t, a.ID, latest["Zone A"].ID)
}

// fixedScorer replaces the numeric index while the breakdown stays with the
// formula engine.
type fixedScorer struct{ score float64 }

func (s fixedScorer) Score(domain.Reading) float64 { return s.score }

func TestAssessWithAlternateScorer(t *testing.T) {
	svcs := New(nil, Options{Scorer: fixedScorer{score: 72.0}})

	a := svcs.Monitor.Assess(neutralReading("Zone A"))

	assert.Equal(t, 72.0, a.Risk)
	assert.Equal(t, domain.LabelCritical, a.Label)
	// Breakdown still reflects the neutral formula score, not the override.
	assert.Less(t, a.Breakdown.Total, 30.0)
}

func TestPredictFlagsDecayingChlorine(t *testing.T) {
	svcs := newTestServices()

	for i, cl := range []float64{1.0, 0.9, 0.8, 0.7, 0.6} {
		in := domain.ReadingInput{Zone: "Zone B", Chlorine: f(cl)}
		svcs.Monitor.Record(in.Reading(noon.Add(time.Duration(i) * time.Hour)))
	}

	p := svcs.Monitor.Predict("Zone B")

	require.NotNil(t, p)
	assert.Equal(t, "Zone B", p.Zone)
	require.Contains(t, p.Forecasts, "chlorine")

	fc := p.Forecasts["chlorine"]
	assert.Equal(t, domain.TrendDecreasing, fc.Trend.Direction)
	require.NotNil(t, fc.HoursUntil)
	assert.InDelta(t, 2.0, *fc.HoursUntil, 1e-6)

	// Only chlorine moved; every other metric is flat and produces no warning.
	require.Len(t, p.Warnings, 1)
	w := p.Warnings[0]
	assert.Equal(t, domain.SeverityDanger, w.Severity)
	assert.Equal(t, "chlorine", w.Sensor)
	assert.InDelta(t, 2.0, w.HoursUntil, 1e-6)
	assert.Contains(t, w.Message, "chlorine")
}

func TestPredictWithoutHistory(t *testing.T) {
	svcs := newTestServices()

	p := svcs.Monitor.Predict("Zone X")

	require.NotNil(t, p)
	assert.Empty(t, p.Forecasts)
	assert.Empty(t, p.Warnings)
}

func TestFromMQTT(t *testing.T) {
	svcs := newTestServices()

	err := svcs.Monitor.FromMQTT("water/readings", []byte(`{"zone":"Zone C","chlorine":0.3,"turbidity":2.5}`))
	require.NoError(t, err)

	latest := svcs.Monitor.Latest()
	require.Contains(t, latest, "Zone C")
	assert.Equal(t, domain.StatusContamination, latest["Zone C"].Status)
}

func TestFromMQTTRejectsBadPayloads(t *testing.T) {
	svcs := newTestServices()

	assert.Error(t, svcs.Monitor.FromMQTT("water/readings", []byte(`not json`)))
	assert.Error(t, svcs.Monitor.FromMQTT("water/readings", []byte(`{"chlorine":0.5}`)))
	assert.Empty(t, svcs.Monitor.Latest())
}

func TestStats(t *testing.T) {
	svcs := newTestServices()

	assert.Equal(t, domain.FleetStats{}, svcs.Monitor.Stats())

	svcs.Monitor.Assess(neutralReading("Zone A"))

	critical := domain.ReadingInput{
		Zone:      "Zone B",
		Chlorine:  f(0.1),
		Turbidity: f(4.0),
		Pressure:  f(2.2),
	}
	svcs.Monitor.Assess(critical.Reading(noon))

	stats := svcs.Monitor.Stats()
	assert.Equal(t, 2, stats.Zones)
	assert.Equal(t, 1, stats.Safe)
	assert.Equal(t, 1, stats.Critical)
	assert.Equal(t, 0, stats.Warning)
	assert.Greater(t, stats.AvgRisk, 0.0)
}
