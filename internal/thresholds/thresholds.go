// Package thresholds holds the static domain tables for drinking-water
// quality scoring: sensor ranges, ideal bands, risk weights, temporal risk
// bands, trend noise floors and breach-forecast thresholds.
package thresholds

import "time"

type Metric string

const (
	Temperature  Metric = "temperature"
	Flow         Metric = "flow"
	Pressure     Metric = "pressure"
	Chlorine     Metric = "chlorine"
	PH           Metric = "pH"
	Turbidity    Metric = "turbidity"
	Conductivity Metric = "conductivity"
)

// TrendMetrics lists the metrics tracked by the history/trend pipeline, in
// display order.
var TrendMetrics = []Metric{Chlorine, PH, Turbidity, Pressure, Flow, Conductivity}

// SensorRange documents the physical range a sensor can report. Values
// outside it are a sender error; the engine records them as-is.
type SensorRange struct {
	Min  float64
	Max  float64
	Unit string
}

var SensorRanges = map[Metric]SensorRange{
	Temperature:  {10, 30, "°C"},
	Flow:         {0.5, 5.0, "m³/h"},
	Pressure:     {2.0, 6.0, "bar"},
	Chlorine:     {0.1, 2.5, "mg/L"},
	PH:           {6.0, 9.0, ""},
	Turbidity:    {0.1, 8.0, "NTU"},
	Conductivity: {150, 1000, "µS/cm"},
}

// Band is the ideal operating point of a metric and the safe range around
// it used for normalized deviation.
type Band struct {
	Ideal   float64
	SafeMin float64
	SafeMax float64
}

var IdealValues = map[Metric]Band{
	Chlorine:     {1.0, 0.5, 2.0},
	PH:           {7.2, 6.5, 8.5},
	Turbidity:    {0.3, 0.0, 1.0},
	Pressure:     {4.0, 3.0, 6.0},
	Flow:         {2.0, 1.0, 5.0},
	Conductivity: {400, 200, 600},
}

// Risk weights per parameter. The metric weights plus WeightTemporal sum to
// 100; interaction points are added on top of that budget.
var RiskWeights = map[Metric]float64{
	Chlorine:     25, // most critical for disinfection
	Turbidity:    20, // contamination indicator
	PH:           12,
	Pressure:     13, // leak/intrusion indicator
	Flow:         12, // stagnation indicator
	Conductivity: 8,  // dissolved solids
}

const WeightTemporal = 10.0

// Defaults are the neutral substitutes for metrics absent from a reading.
var Defaults = map[Metric]float64{
	Temperature:  20.0,
	Flow:         2.0,
	Pressure:     4.0,
	Chlorine:     1.0,
	PH:           7.2,
	Turbidity:    0.5,
	Conductivity: 400,
}

// TemporalBand maps an hour-of-day range [From, To) to a usage-pattern risk
// modifier.
type TemporalBand struct {
	Name     string
	From, To int
	Modifier float64
	Reason   string
}

var TemporalBands = []TemporalBand{
	{"night", 0, 6, 1.15, "Low usage - stagnation risk"},
	{"morning_peak", 6, 9, 1.10, "Morning peak - pressure stress"},
	{"day", 9, 17, 1.00, "Normal operation"},
	{"evening_peak", 17, 21, 1.08, "Evening peak - high demand"},
	{"late_evening", 21, 24, 1.05, "Declining usage"},
}

// Temporal carries the time-derived features of a reading.
type Temporal struct {
	Hour      int
	IsWeekend bool
	Period    string
	Modifier  float64
	Reason    string
}

// TemporalAt derives the temporal risk features for a timestamp. Weekends
// soften the morning peak and lengthen overnight stagnation.
func TemporalAt(t time.Time) Temporal {
	hour := t.Hour()
	wd := t.Weekday()
	weekend := wd == time.Saturday || wd == time.Sunday

	out := Temporal{Hour: hour, IsWeekend: weekend, Period: "day", Modifier: 1.0, Reason: "Normal operation"}
	for _, b := range TemporalBands {
		if hour >= b.From && hour < b.To {
			out.Period = b.Name
			out.Modifier = b.Modifier
			out.Reason = b.Reason
			break
		}
	}
	if weekend {
		switch out.Period {
		case "morning_peak":
			out.Modifier *= 0.9
		case "night":
			out.Modifier *= 1.05
		}
	}
	return out
}

// Approach says from which side a trending value closes in on its forecast
// threshold.
type Approach int

const (
	// FromAbove: the value is falling toward a safety minimum.
	FromAbove Approach = iota
	// FromBelow: the value is rising toward a safety maximum.
	FromBelow
)

// ForecastSpec is the breach threshold a metric's trend is extrapolated
// against. The thresholds mirror the status cascade triggers so a forecast
// predicts the same breach the classifier would flag.
type ForecastSpec struct {
	Threshold float64
	Approach  Approach
}

var ForecastSpecs = map[Metric]ForecastSpec{
	Chlorine:     {0.4, FromAbove},
	PH:           {6.5, FromAbove},
	Turbidity:    {2.0, FromBelow},
	Pressure:     {2.5, FromAbove},
	Flow:         {1.0, FromAbove},
	Conductivity: {600, FromBelow},
}

// NoiseFloors: per-sample-interval rates below these magnitudes are treated
// as a stable trend, never forecast against.
var NoiseFloors = map[Metric]float64{
	Chlorine:     0.005,
	PH:           0.01,
	Turbidity:    0.01,
	Pressure:     0.01,
	Flow:         0.01,
	Conductivity: 1.0,
}

// Default prediction parameters; runtime overrides come from the config
// layer.
const (
	DefaultHistoryCapacity    = 24
	DefaultDangerWindowHours  = 6.0
	DefaultWarningWindowHours = 24.0
)
