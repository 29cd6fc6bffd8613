// Package risk scores water-quality readings: a 0-100 risk index with an
// explainable breakdown, a root-cause label and a coarse pipe status.
package risk

import (
	"math"

	"github.com/aquaguard/water-monitor/internal/domain"
	"github.com/aquaguard/water-monitor/internal/thresholds"
)

// Scorer is the contract an alternate risk model (e.g. a trained regressor)
// must satisfy to replace the formula engine. Downstream classifiers depend
// only on the reading and the numeric score, not on how it was computed.
type Scorer interface {
	Score(r domain.Reading) float64
}

// Engine is the deterministic normalized-deviation scorer.
type Engine struct{}

func (Engine) Score(r domain.Reading) float64 {
	total, _ := Score(r)
	return total
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// deviation is the normalized two-sided distance of value from the band's
// ideal, clipped to [0, 2]. Degenerate bands (ideal on a boundary) yield 0.
func deviation(value float64, b thresholds.Band) float64 {
	var span, dev float64
	if value < b.Ideal {
		span = b.Ideal - b.SafeMin
		if span == 0 {
			return 0
		}
		dev = (b.Ideal - value) / span
	} else {
		span = b.SafeMax - b.Ideal
		if span == 0 {
			return 0
		}
		dev = (value - b.Ideal) / span
	}
	return clamp(dev, 0, 2)
}

// deviationAbove accrues only above the ideal (turbidity, conductivity:
// lower is always fine).
func deviationAbove(value float64, b thresholds.Band) float64 {
	if value <= b.Ideal {
		return 0
	}
	span := b.SafeMax - b.Ideal
	if span == 0 {
		return 0
	}
	return clamp((value-b.Ideal)/span, 0, 2)
}

// deviationBelow accrues only below the ideal (pressure, flow: higher is
// always fine).
func deviationBelow(value float64, b thresholds.Band) float64 {
	if value >= b.Ideal {
		return 0
	}
	span := b.Ideal - b.SafeMin
	if span == 0 {
		return 0
	}
	return clamp((b.Ideal-value)/span, 0, 2)
}

type interactionRule struct {
	points float64
	reason string
	match  func(r domain.Reading) bool
}

// Dangerous metric combinations. Points are additive on top of the
// 100-point base budget; only the final total is clamped.
var interactionRules = []interactionRule{
	{18, "Low chlorine + high turbidity", func(r domain.Reading) bool { return r.Chlorine < 0.4 && r.Turbidity > 2.0 }},
	{14, "Low pressure + high turbidity", func(r domain.Reading) bool { return r.Pressure < 2.5 && r.Turbidity > 2.0 }},
	{10, "Low flow + low chlorine", func(r domain.Reading) bool { return r.Flow < 1.0 && r.Chlorine < 0.5 }},
	{8, "Acidic pH + low chlorine", func(r domain.Reading) bool { return r.PH < 6.5 && r.Chlorine < 0.5 }},
	{10, "Very low pressure + low flow", func(r domain.Reading) bool { return r.Pressure < 2.0 && r.Flow < 1.0 }},
	{12, "High conductivity + turbidity", func(r domain.Reading) bool { return r.Conductivity > 600 && r.Turbidity > 1.5 }},
}

// Score computes the water quality risk index for a reading: weighted
// normalized deviations per metric, temporal usage-pattern points, and
// interaction points for dangerous combinations. The returned total is
// min(100, sum of components) rounded to one decimal; the breakdown keeps
// each component (rounded for display, summed unrounded).
func Score(r domain.Reading) (float64, domain.RiskBreakdown) {
	ideals := thresholds.IdealValues
	weights := thresholds.RiskWeights

	chlorineRisk := deviation(r.Chlorine, ideals[thresholds.Chlorine]) * weights[thresholds.Chlorine]
	turbidityRisk := deviationAbove(r.Turbidity, ideals[thresholds.Turbidity]) * weights[thresholds.Turbidity]
	phRisk := deviation(r.PH, ideals[thresholds.PH]) * weights[thresholds.PH]
	pressureRisk := deviationBelow(r.Pressure, ideals[thresholds.Pressure]) * weights[thresholds.Pressure]
	flowRisk := deviationBelow(r.Flow, ideals[thresholds.Flow]) * weights[thresholds.Flow]
	conductivityRisk := deviationAbove(r.Conductivity, ideals[thresholds.Conductivity]) * weights[thresholds.Conductivity]

	// Temporal modifier ~[0.85, 1.2] maps to [0, WeightTemporal] points.
	temporalRisk := clamp((r.TemporalModifier-1.0)*100*thresholds.WeightTemporal/10, 0, thresholds.WeightTemporal)

	interactionRisk := 0.0
	reasons := []string{}
	for _, rule := range interactionRules {
		if rule.match(r) {
			interactionRisk += rule.points
			reasons = append(reasons, rule.reason)
		}
	}

	total := chlorineRisk + turbidityRisk + phRisk + pressureRisk + flowRisk +
		conductivityRisk + temporalRisk + interactionRisk
	total = round1(math.Min(100, total))

	breakdown := domain.RiskBreakdown{
		Components: map[string]float64{
			"chlorine_risk":     round1(chlorineRisk),
			"turbidity_risk":    round1(turbidityRisk),
			"pH_risk":           round1(phRisk),
			"pressure_risk":     round1(pressureRisk),
			"flow_risk":         round1(flowRisk),
			"conductivity_risk": round1(conductivityRisk),
			"temporal_risk":     round1(temporalRisk),
			"interaction_risk":  round1(interactionRisk),
		},
		InteractionReasons: reasons,
		Total:              total,
	}
	return total, breakdown
}
