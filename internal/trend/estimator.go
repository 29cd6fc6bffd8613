// Package trend fits per-metric trends over buffered history, forecasts
// time-to-threshold breaches and grades early warnings from them.
package trend

import (
	"errors"
	"fmt"
	"math"

	"github.com/aquaguard/water-monitor/internal/domain"
	"github.com/aquaguard/water-monitor/internal/history"
	"github.com/aquaguard/water-monitor/internal/thresholds"
)

// MinSamples is the smallest history a trend can be fitted on.
const MinSamples = 3

// ErrInsufficientData is returned when a metric has fewer than MinSamples
// buffered samples. Callers must skip such metrics, not fabricate a trend.
var ErrInsufficientData = errors.New("insufficient history for trend estimate")

// Estimate fits a least-squares line of value against sample index and
// classifies its direction. Rates below the metric's noise floor are
// reported as stable. Samples are assumed equally spaced at the history
// sampling interval (one hour).
func Estimate(metric thresholds.Metric, samples []history.Sample) (domain.TrendEstimate, error) {
	n := len(samples)
	if n < MinSamples {
		return domain.TrendEstimate{Direction: domain.TrendUnknown, SampleCount: n}, ErrInsufficientData
	}

	// Least squares over x = 0..n-1.
	var sumX, sumY, sumXY, sumXX float64
	for i, s := range samples {
		x := float64(i)
		sumX += x
		sumY += s.Value
		sumXY += x * s.Value
		sumXX += x * x
	}
	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	rate := 0.0
	if denom != 0 {
		rate = (fn*sumXY - sumX*sumY) / denom
	}

	floor := thresholds.NoiseFloors[metric]
	direction := domain.TrendStable
	if math.Abs(rate) >= floor {
		if rate > 0 {
			direction = domain.TrendIncreasing
		} else {
			direction = domain.TrendDecreasing
		}
	}

	return domain.TrendEstimate{
		Direction:    direction,
		Rate:         rate,
		RateStr:      formatRate(metric, rate),
		CurrentValue: samples[n-1].Value,
		SampleCount:  n,
	}, nil
}

// formatRate renders a display rate: sign, magnitude, unit per hour.
func formatRate(metric thresholds.Metric, rate float64) string {
	unit := thresholds.SensorRanges[metric].Unit
	if unit != "" {
		unit = " " + unit
	}
	if metric == thresholds.Conductivity {
		return fmt.Sprintf("%+.0f%s/h", rate, unit)
	}
	return fmt.Sprintf("%+.2f%s/h", rate, unit)
}
