package thresholds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeightsSumTo100(t *testing.T) {
	sum := WeightTemporal
	for _, w := range RiskWeights {
		sum += w
	}
	assert.Equal(t, 100.0, sum)
}

func TestTemporalBandsCoverDay(t *testing.T) {
	covered := make([]bool, 24)
	for _, b := range TemporalBands {
		for h := b.From; h < b.To; h++ {
			assert.False(t, covered[h], "hour %d covered twice", h)
			covered[h] = true
		}
	}
	for h, ok := range covered {
		assert.True(t, ok, "hour %d uncovered", h)
	}
}

func TestTemporalAt(t *testing.T) {
	// 2026-03-03 is a Tuesday, 2026-03-07 a Saturday.
	weekday := func(hour int) time.Time {
		return time.Date(2026, 3, 3, hour, 30, 0, 0, time.UTC)
	}
	saturday := func(hour int) time.Time {
		return time.Date(2026, 3, 7, hour, 30, 0, 0, time.UTC)
	}

	cases := []struct {
		name     string
		ts       time.Time
		period   string
		modifier float64
	}{
		{"weekday night", weekday(3), "night", 1.15},
		{"weekday morning peak", weekday(7), "morning_peak", 1.10},
		{"weekday day", weekday(12), "day", 1.00},
		{"weekday evening peak", weekday(18), "evening_peak", 1.08},
		{"weekday late evening", weekday(22), "late_evening", 1.05},
		{"weekend softens morning peak", saturday(7), "morning_peak", 0.99},
		{"weekend lengthens night stagnation", saturday(3), "night", 1.2075},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TemporalAt(tc.ts)
			assert.Equal(t, tc.period, got.Period)
			assert.InDelta(t, tc.modifier, got.Modifier, 1e-9)
			assert.Equal(t, tc.ts.Hour(), got.Hour)
		})
	}
}

func TestForecastSpecsHaveNoiseFloors(t *testing.T) {
	for metric := range ForecastSpecs {
		assert.Contains(t, NoiseFloors, metric)
		assert.Contains(t, SensorRanges, metric)
	}
}
