package trend

import (
	"fmt"
	"sort"

	"github.com/aquaguard/water-monitor/internal/domain"
	"github.com/aquaguard/water-monitor/internal/thresholds"
)

// GenerateWarnings grades every forecast with a projected breach time:
// danger inside the danger window, warning inside the warning window,
// omitted beyond that. Output is sorted most urgent first and never
// truncated; display collaborators pick their own top-K.
func GenerateWarnings(forecasts map[string]domain.Forecast, dangerWindow, warningWindow float64) []domain.EarlyWarning {
	var warnings []domain.EarlyWarning

	for sensor, fc := range forecasts {
		if fc.HoursUntil == nil {
			continue
		}
		hours := *fc.HoursUntil

		var severity domain.Severity
		switch {
		case hours <= dangerWindow:
			severity = domain.SeverityDanger
		case hours <= warningWindow:
			severity = domain.SeverityWarning
		default:
			continue
		}

		warnings = append(warnings, domain.EarlyWarning{
			Severity:   severity,
			Sensor:     sensor,
			Message:    warningMessage(sensor, fc),
			HoursUntil: hours,
		})
	}

	sort.Slice(warnings, func(i, j int) bool {
		return warnings[i].HoursUntil < warnings[j].HoursUntil
	})
	return warnings
}

func warningMessage(sensor string, fc domain.Forecast) string {
	metric := thresholds.Metric(sensor)
	spec := thresholds.ForecastSpecs[metric]
	unit := thresholds.SensorRanges[metric].Unit
	if unit != "" {
		unit = " " + unit
	}
	return fmt.Sprintf("%s %s toward %.2f%s, projected breach in ~%.1fh (%s)",
		sensor, fc.Trend.Direction, spec.Threshold, unit, *fc.HoursUntil, fc.Trend.RateStr)
}

// Summarize projects forecasts into the compact per-metric read model.
func Summarize(forecasts map[string]domain.Forecast) map[string]domain.TrendSummary {
	out := make(map[string]domain.TrendSummary, len(forecasts))
	for sensor, fc := range forecasts {
		out[sensor] = domain.TrendSummary{
			Direction: fc.Trend.Direction,
			RateStr:   fc.Trend.RateStr,
		}
	}
	return out
}
