package risk

import "github.com/aquaguard/water-monitor/internal/domain"

type causeRule struct {
	points float64
	match  func(r domain.Reading) bool
}

// Per-category rule tables. Rules within a category are independent and
// additive; categories are scored in declared order, which also breaks ties.
var causeTables = []struct {
	cause domain.RootCause
	rules []causeRule
}{
	{domain.CauseDisinfectantDecay, []causeRule{
		{35, func(r domain.Reading) bool { return r.Chlorine < 0.5 }},
		{25, func(r domain.Reading) bool { return r.Chlorine < 0.3 }},
		{20, func(r domain.Reading) bool { return r.Temperature > 25 && r.Chlorine < 0.6 }},
		{15, func(r domain.Reading) bool { return r.Turbidity < 1.0 && r.Pressure > 3.0 && r.Chlorine < 0.5 }},
	}},
	{domain.CausePipeLeak, []causeRule{
		{40, func(r domain.Reading) bool { return r.Pressure < 2.5 }},
		{30, func(r domain.Reading) bool { return r.Pressure < 3.0 && r.Turbidity > 1.5 }},
		{20, func(r domain.Reading) bool { return r.Pressure < 2.0 }},
	}},
	{domain.CauseStagnation, []causeRule{
		{45, func(r domain.Reading) bool { return r.Flow < 1.0 }},
		{25, func(r domain.Reading) bool { return r.Flow < 1.5 && r.Chlorine < 0.6 }},
		{15, func(r domain.Reading) bool { return r.Flow < 1.2 && r.Turbidity > 0.8 }},
	}},
	{domain.CauseContamination, []causeRule{
		{70, func(r domain.Reading) bool { return abnormalCount(r) >= 3 }},
		{45, func(r domain.Reading) bool { return abnormalCount(r) == 2 && r.Turbidity > 2.0 }},
		{35, func(r domain.Reading) bool { return abnormalCount(r) < 2 && r.Turbidity > 3.0 && r.Chlorine < 0.4 }},
	}},
}

// abnormalCount counts independently abnormal signals used by the external
// contamination pattern.
func abnormalCount(r domain.Reading) int {
	n := 0
	for _, abnormal := range []bool{
		r.Chlorine < 0.3,
		r.Turbidity > 2.5,
		r.PH < 6.3 || r.PH > 8.7,
		r.Pressure < 2.0,
	} {
		if abnormal {
			n++
		}
	}
	return n
}

// normalPoints scores the Normal Operation category from the risk index;
// only the single matching band applies.
func normalPoints(riskScore float64) float64 {
	switch {
	case riskScore < 15:
		return 90
	case riskScore < 25:
		return 60
	case riskScore < 35:
		return 30
	default:
		return 0
	}
}

// Classify picks the most probable causal category for a reading and its
// risk index. The category with the highest accumulated score wins, earlier
// declarations win ties, and a winner under 15 points falls back to Normal
// Operation.
func Classify(r domain.Reading, riskScore float64) domain.RootCause {
	best := domain.CauseDisinfectantDecay
	bestScore := -1.0

	for _, table := range causeTables {
		score := 0.0
		for _, rule := range table.rules {
			if rule.match(r) {
				score += rule.points
			}
		}
		if score > bestScore {
			best = table.cause
			bestScore = score
		}
	}
	if np := normalPoints(riskScore); np > bestScore {
		best = domain.CauseNormal
		bestScore = np
	}

	if bestScore < 15 {
		return domain.CauseNormal
	}
	return best
}
