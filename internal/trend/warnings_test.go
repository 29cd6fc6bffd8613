package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquaguard/water-monitor/internal/domain"
)

func forecastWithHours(direction domain.TrendDirection, hours float64) domain.Forecast {
	return domain.Forecast{
		Trend:      domain.TrendEstimate{Direction: direction, RateStr: "-0.05 mg/L/h", SampleCount: 5},
		HoursUntil: &hours,
	}
}

func TestGenerateWarningsGradingAndOrder(t *testing.T) {
	forecasts := map[string]domain.Forecast{
		"chlorine":  forecastWithHours(domain.TrendDecreasing, 12.0),
		"turbidity": forecastWithHours(domain.TrendIncreasing, 3.0),
		"pressure":  forecastWithHours(domain.TrendDecreasing, 40.0),                // beyond both windows
		"flow":      {Trend: domain.TrendEstimate{Direction: domain.TrendStable}}, // no forecast
	}

	warnings := GenerateWarnings(forecasts, 6, 24)

	require.Len(t, warnings, 2)
	assert.Equal(t, "turbidity", warnings[0].Sensor)
	assert.Equal(t, domain.SeverityDanger, warnings[0].Severity)
	assert.Equal(t, "chlorine", warnings[1].Sensor)
	assert.Equal(t, domain.SeverityWarning, warnings[1].Severity)
	assert.True(t, warnings[0].HoursUntil <= warnings[1].HoursUntil)
}

func TestGenerateWarningsSkipsNilForecasts(t *testing.T) {
	forecasts := map[string]domain.Forecast{
		"flow": {Trend: domain.TrendEstimate{Direction: domain.TrendStable}},
	}
	assert.Empty(t, GenerateWarnings(forecasts, 6, 24))
}

func TestGenerateWarningsBoundaryWindows(t *testing.T) {
	forecasts := map[string]domain.Forecast{
		"chlorine":  forecastWithHours(domain.TrendDecreasing, 6.0),
		"turbidity": forecastWithHours(domain.TrendIncreasing, 24.0),
	}
	warnings := GenerateWarnings(forecasts, 6, 24)

	require.Len(t, warnings, 2)
	assert.Equal(t, domain.SeverityDanger, warnings[0].Severity)
	assert.Equal(t, domain.SeverityWarning, warnings[1].Severity)
}

func TestWarningMessageNamesSensorAndBreach(t *testing.T) {
	fc := forecastWithHours(domain.TrendDecreasing, 3.2)
	warnings := GenerateWarnings(map[string]domain.Forecast{"chlorine": fc}, 6, 24)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "chlorine")
	assert.Contains(t, warnings[0].Message, "decreasing")
	assert.Contains(t, warnings[0].Message, "3.2h")
}

func TestSummarize(t *testing.T) {
	forecasts := map[string]domain.Forecast{
		"chlorine": forecastWithHours(domain.TrendDecreasing, 5),
		"flow":     {Trend: domain.TrendEstimate{Direction: domain.TrendStable, RateStr: "+0.00 m³/h/h"}},
	}
	summary := Summarize(forecasts)

	require.Len(t, summary, 2)
	assert.Equal(t, domain.TrendDecreasing, summary["chlorine"].Direction)
	assert.Equal(t, "+0.00 m³/h/h", summary["flow"].RateStr)
}
