package risk

import "github.com/aquaguard/water-monitor/internal/domain"

// statusCascade is evaluated first-match in declared order. The priority
// (leak > contamination > decay > stagnation) is a contract: a low-pressure
// zone reports leak even when chlorine is depleted too. The root-cause
// classifier may disagree; both outputs are kept.
var statusCascade = []struct {
	status domain.PipeStatus
	match  func(r domain.Reading) bool
}{
	{domain.StatusLeak, func(r domain.Reading) bool { return r.Pressure < 2.5 }},
	{domain.StatusContamination, func(r domain.Reading) bool { return r.Turbidity > 2.0 }},
	{domain.StatusDecay, func(r domain.Reading) bool { return r.Chlorine < 0.4 }},
	{domain.StatusStagnation, func(r domain.Reading) bool { return r.Flow < 1.0 }},
}

// Status tags a reading with its coarse operational state.
func Status(r domain.Reading) domain.PipeStatus {
	for _, entry := range statusCascade {
		if entry.match(r) {
			return entry.status
		}
	}
	return domain.StatusNormal
}
