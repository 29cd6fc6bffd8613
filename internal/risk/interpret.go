package risk

import (
	"fmt"

	"github.com/aquaguard/water-monitor/internal/domain"
)

// Consequences of the known dangerous combinations, keyed by the reason tag
// the engine emits.
var interactionConsequences = map[string]string{
	"Low chlorine + high turbidity": "pathogens can multiply rapidly without disinfection",
	"Low pressure + high turbidity": "contaminants may be drawn into pipes through cracks",
	"Low flow + low chlorine":       "bacterial biofilm growth in stagnant water",
	"Acidic pH + low chlorine":      "pipe corrosion releasing metals into water",
	"Very low pressure + low flow":  "system failure risk, backflow contamination possible",
	"High conductivity + turbidity": "chemical spill or industrial contamination likely",
}

// Interpret renders a reading's assessment as ordered human-readable
// findings: overall status first, then per-metric findings with their likely
// cause, then interaction consequences.
func Interpret(r domain.Reading, riskScore float64, cause domain.RootCause, breakdown domain.RiskBreakdown) []string {
	var main string
	switch {
	case riskScore < 20:
		main = "Water quality is within optimal parameters"
	case riskScore < 40:
		main = "Minor deviations detected from ideal conditions"
	case riskScore < 60:
		main = "Moderate risk detected requiring attention"
	default:
		main = "Critical risk level - immediate investigation recommended"
	}

	var findings []string
	if r.Chlorine < 0.4 {
		findings = append(findings, fmt.Sprintf("Chlorine critically low: %.2f mg/L; cause: disinfectant system failure or high demand", r.Chlorine))
	} else if r.Chlorine < 0.6 {
		findings = append(findings, fmt.Sprintf("Chlorine below optimal: %.2f mg/L; cause: gradual decay or distance from treatment", r.Chlorine))
	}
	if r.Pressure < 2.5 {
		findings = append(findings, fmt.Sprintf("Low pressure: %.2f bar; cause: pipe leak, main break, or valve issue", r.Pressure))
	}
	if r.Turbidity > 2.0 {
		findings = append(findings, fmt.Sprintf("High turbidity: %.2f NTU; cause: contamination, sediment disturbance, or intrusion", r.Turbidity))
	} else if r.Turbidity > 1.0 {
		findings = append(findings, fmt.Sprintf("Elevated turbidity: %.2f NTU; cause: minor sediment or pipe scaling", r.Turbidity))
	}
	if r.Flow < 1.0 {
		findings = append(findings, fmt.Sprintf("Low flow: %.2f m³/h; cause: dead-end pipe, low demand, or blockage", r.Flow))
	}
	if r.Conductivity > 700 {
		findings = append(findings, fmt.Sprintf("High conductivity: %.0f µS/cm; cause: chemical contamination or mineral intrusion", r.Conductivity))
	}

	for _, reason := range breakdown.InteractionReasons {
		if consequence, ok := interactionConsequences[reason]; ok {
			findings = append(findings, fmt.Sprintf("Dangerous combination: %s; consequence: %s", reason, consequence))
		} else {
			findings = append(findings, fmt.Sprintf("Dangerous combination: %s; consequence: elevated health risk", reason))
		}
	}

	if cause != domain.CauseNormal && len(findings) == 0 {
		findings = append(findings, fmt.Sprintf("System assessment: %s", cause))
	}

	return append([]string{main}, findings...)
}
