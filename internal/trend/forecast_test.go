package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquaguard/water-monitor/internal/domain"
	"github.com/aquaguard/water-monitor/internal/thresholds"
)

func estimateOf(direction domain.TrendDirection, rate, current float64) domain.TrendEstimate {
	return domain.TrendEstimate{Direction: direction, Rate: rate, CurrentValue: current, SampleCount: 5}
}

func TestForecastFallingTowardMinimum(t *testing.T) {
	// Chlorine at 0.8 falling 0.05/h reaches the 0.4 threshold in 8h.
	fc := Forecast(thresholds.Chlorine, estimateOf(domain.TrendDecreasing, -0.05, 0.8))

	require.NotNil(t, fc.HoursUntil)
	assert.InDelta(t, 8.0, *fc.HoursUntil, 1e-9)
}

func TestForecastRisingTowardMaximum(t *testing.T) {
	// Turbidity at 1.0 rising 0.25/h reaches the 2.0 threshold in 4h.
	fc := Forecast(thresholds.Turbidity, estimateOf(domain.TrendIncreasing, 0.25, 1.0))

	require.NotNil(t, fc.HoursUntil)
	assert.InDelta(t, 4.0, *fc.HoursUntil, 1e-9)
}

func TestForecastNilBelowNoiseFloor(t *testing.T) {
	fc := Forecast(thresholds.Chlorine, estimateOf(domain.TrendDecreasing, -0.001, 0.8))
	assert.Nil(t, fc.HoursUntil)

	fc = Forecast(thresholds.Pressure, estimateOf(domain.TrendStable, 0, 4.0))
	assert.Nil(t, fc.HoursUntil)
}

func TestForecastNilWhenTrendingAway(t *testing.T) {
	// Chlorine recovering upward never breaches its minimum.
	fc := Forecast(thresholds.Chlorine, estimateOf(domain.TrendIncreasing, 0.05, 0.8))
	assert.Nil(t, fc.HoursUntil)

	// Turbidity falling away from its maximum.
	fc = Forecast(thresholds.Turbidity, estimateOf(domain.TrendDecreasing, -0.25, 1.0))
	assert.Nil(t, fc.HoursUntil)
}

func TestForecastNilWhenAlreadyBeyondThreshold(t *testing.T) {
	fc := Forecast(thresholds.Chlorine, estimateOf(domain.TrendDecreasing, -0.05, 0.35))
	assert.Nil(t, fc.HoursUntil)

	fc = Forecast(thresholds.Turbidity, estimateOf(domain.TrendIncreasing, 0.25, 2.5))
	assert.Nil(t, fc.HoursUntil)
}

func TestForecastNilForUnknownTrend(t *testing.T) {
	fc := Forecast(thresholds.Chlorine, domain.TrendEstimate{Direction: domain.TrendUnknown, SampleCount: 2})
	assert.Nil(t, fc.HoursUntil)
}
