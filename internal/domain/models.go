package domain

import (
	"time"

	"github.com/aquaguard/water-monitor/internal/thresholds"
)

type Zone struct {
	ID   int64  `db:"id" json:"id"`
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`
}

// Reading is one multi-sensor snapshot for a zone. It is built once at the
// ingestion boundary and never mutated by the scoring pipeline.
type Reading struct {
	Zone      string    `json:"zone"`
	Timestamp time.Time `json:"timestamp"`

	Temperature  float64 `json:"temperature"`  // °C
	Flow         float64 `json:"flow"`         // m³/h
	Pressure     float64 `json:"pressure"`     // bar
	Chlorine     float64 `json:"chlorine"`     // mg/L
	PH           float64 `json:"ph"`           // unitless
	Turbidity    float64 `json:"turbidity"`    // NTU
	Conductivity float64 `json:"conductivity"` // µS/cm

	Hour             int     `json:"hour"`
	IsWeekend        bool    `json:"is_weekend"`
	TimePeriod       string  `json:"time_period"`
	TemporalModifier float64 `json:"temporal_risk_modifier"`
}

// ReadingInput is the wire shape of a reading. Optional metrics arrive as
// nil pointers and are substituted with the documented neutral defaults;
// out-of-range values are kept as-is (sanitizing is the sender's job).
type ReadingInput struct {
	Zone      string     `json:"zone"`
	Timestamp *time.Time `json:"timestamp"`

	Temperature  *float64 `json:"temperature"`
	Flow         *float64 `json:"flow"`
	Pressure     *float64 `json:"pressure"`
	Chlorine     *float64 `json:"chlorine"`
	PH           *float64 `json:"ph"`
	Turbidity    *float64 `json:"turbidity"`
	Conductivity *float64 `json:"conductivity"`
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// Reading resolves the input against the neutral defaults and stamps the
// temporal features for the reading's timestamp.
func (in ReadingInput) Reading(now time.Time) Reading {
	ts := now
	if in.Timestamp != nil {
		ts = *in.Timestamp
	}
	temporal := thresholds.TemporalAt(ts)
	return Reading{
		Zone:             in.Zone,
		Timestamp:        ts,
		Temperature:      orDefault(in.Temperature, thresholds.Defaults[thresholds.Temperature]),
		Flow:             orDefault(in.Flow, thresholds.Defaults[thresholds.Flow]),
		Pressure:         orDefault(in.Pressure, thresholds.Defaults[thresholds.Pressure]),
		Chlorine:         orDefault(in.Chlorine, thresholds.Defaults[thresholds.Chlorine]),
		PH:               orDefault(in.PH, thresholds.Defaults[thresholds.PH]),
		Turbidity:        orDefault(in.Turbidity, thresholds.Defaults[thresholds.Turbidity]),
		Conductivity:     orDefault(in.Conductivity, thresholds.Defaults[thresholds.Conductivity]),
		Hour:             temporal.Hour,
		IsWeekend:        temporal.IsWeekend,
		TimePeriod:       temporal.Period,
		TemporalModifier: temporal.Modifier,
	}
}

// RiskBreakdown explains how a risk index was assembled. Total is clamped to
// [0,100]; the individual components are not re-clamped after interaction
// points are added.
type RiskBreakdown struct {
	Components         map[string]float64 `json:"components"`
	InteractionReasons []string           `json:"interaction_reasons"`
	Total              float64            `json:"total"`
}

type RootCause string

const (
	CauseDisinfectantDecay RootCause = "Disinfectant Decay"
	CausePipeLeak          RootCause = "Pipe Leak / Intrusion"
	CauseStagnation        RootCause = "Stagnation Risk"
	CauseContamination     RootCause = "External Contamination"
	CauseNormal            RootCause = "Normal Operation"
)

type PipeStatus string

const (
	StatusNormal        PipeStatus = "normal"
	StatusLeak          PipeStatus = "leak"
	StatusContamination PipeStatus = "contamination"
	StatusDecay         PipeStatus = "decay"
	StatusStagnation    PipeStatus = "stagnation"
)

type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
	TrendUnknown    TrendDirection = "unknown"
)

type TrendEstimate struct {
	Direction    TrendDirection `json:"direction"`
	Rate         float64        `json:"rate"` // units per sample interval
	RateStr      string         `json:"rate_str"`
	CurrentValue float64        `json:"current_value"`
	SampleCount  int            `json:"sample_count"`
}

// Forecast projects a trend toward its configured safety threshold.
// HoursUntil is nil when the metric is flat or trending away.
type Forecast struct {
	Trend      TrendEstimate `json:"trend"`
	HoursUntil *float64      `json:"hours_until"`
}

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

type EarlyWarning struct {
	Severity   Severity `json:"severity"`
	Sensor     string   `json:"sensor"`
	Message    string   `json:"message"`
	HoursUntil float64  `json:"hours_until"`
}

// TrendSummary is a compact per-metric read model for display collaborators.
type TrendSummary struct {
	Direction TrendDirection `json:"direction"`
	RateStr   string         `json:"rate_str"`
}

type RiskLabel string

const (
	LabelSafe     RiskLabel = "SAFE"
	LabelWarning  RiskLabel = "WARNING"
	LabelCritical RiskLabel = "CRITICAL"
)

// LabelFor buckets a risk index into the display severity bands.
func LabelFor(risk float64) RiskLabel {
	switch {
	case risk < 30:
		return LabelSafe
	case risk < 60:
		return LabelWarning
	default:
		return LabelCritical
	}
}

// Assessment is the output of one scoring call for one zone.
type Assessment struct {
	ID             string        `db:"id" json:"id"`
	Zone           string        `db:"zone" json:"zone"`
	Timestamp      time.Time     `db:"timestamp" json:"timestamp"`
	Risk           float64       `db:"risk" json:"risk"`
	Label          RiskLabel     `db:"label" json:"label"`
	Breakdown      RiskBreakdown `db:"-" json:"breakdown"`
	RootCause      RootCause     `db:"root_cause" json:"root_cause"`
	Status         PipeStatus    `db:"status" json:"status"`
	Interpretation []string      `db:"-" json:"interpretation"`
}

// Prediction is the output of one early-warning cycle for one zone.
type Prediction struct {
	Zone      string                  `json:"zone"`
	Summary   map[string]TrendSummary `json:"trend_summary"`
	Forecasts map[string]Forecast     `json:"forecasts"`
	Warnings  []EarlyWarning          `json:"warnings"`
}

type FleetStats struct {
	Zones    int     `json:"zones"`
	AvgRisk  float64 `json:"avg_risk"`
	Safe     int     `json:"safe"`
	Warning  int     `json:"warning"`
	Critical int     `json:"critical"`
}
