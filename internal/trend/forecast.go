package trend

import (
	"math"

	"github.com/aquaguard/water-monitor/internal/domain"
	"github.com/aquaguard/water-monitor/internal/thresholds"
)

// Forecast extrapolates a fitted trend to its configured breach threshold.
// HoursUntil stays nil when the rate is under the noise floor, the value is
// trending away from the threshold, or the threshold is already behind the
// current value on the unsafe side. The rate is per sampling interval, so
// the projection is in hours.
func Forecast(metric thresholds.Metric, estimate domain.TrendEstimate) domain.Forecast {
	out := domain.Forecast{Trend: estimate}

	spec, ok := thresholds.ForecastSpecs[metric]
	if !ok || estimate.Direction == domain.TrendUnknown {
		return out
	}
	if math.Abs(estimate.Rate) < thresholds.NoiseFloors[metric] {
		return out
	}

	switch spec.Approach {
	case thresholds.FromAbove:
		// Falling toward a safety minimum.
		if estimate.Rate >= 0 || estimate.CurrentValue <= spec.Threshold {
			return out
		}
	case thresholds.FromBelow:
		// Rising toward a safety maximum.
		if estimate.Rate <= 0 || estimate.CurrentValue >= spec.Threshold {
			return out
		}
	}

	hours := (spec.Threshold - estimate.CurrentValue) / estimate.Rate
	if hours <= 0 {
		return out
	}
	out.HoursUntil = &hours
	return out
}
