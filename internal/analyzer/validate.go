package analyzer

import "github.com/blackwell-systems/stackprobe/internal/registry"

// Confidence levels for the validation report. This is a coarser, separate
// scale from the detection threshold: a result can be Matched at 0.7 and
// still only rate "medium" here.
const (
	highConfidence   = 0.8
	mediumConfidence = 0.6
	validConfidence  = 0.5
)

// Validate audits a detection result and reports warnings with paired
// recommendations. Pure function over the result.
//
// IsValid is a separate gate from the detection threshold: a result is
// invalid below 0.5 confidence even though the decision policy already
// accepted or rejected it against the catalog threshold.
func Validate(result *DetectionResult) ValidationReport {
	report := ValidationReport{
		IsValid:         true,
		ConfidenceLevel: classifyConfidence(result.Confidence),
	}

	if result.Confidence < validConfidence {
		report.IsValid = false
		report.warn(
			"Low confidence in technology detection",
			"Consider manually specifying the technology stack",
		)
	}

	if result.FallbackUsed {
		report.warn(
			"Using generic fallback configuration",
			"Technology-specific patterns may not be optimal",
		)
	}

	if !anyConfigFileMatch(result.MethodScores) {
		report.warn(
			"No configuration files detected",
			"Consider adding configuration files for better detection",
		)
	}

	return report
}

func classifyConfidence(confidence float64) string {
	switch {
	case confidence >= highConfidence:
		return "high"
	case confidence >= mediumConfidence:
		return "medium"
	default:
		return "low"
	}
}

// anyConfigFileMatch reports whether the configuration-file signal scored
// above zero for at least one technology.
func anyConfigFileMatch(methodScores map[string]SignalScores) bool {
	for _, score := range methodScores[registry.MethodConfigurationFiles] {
		if score > 0 {
			return true
		}
	}
	return false
}

func (r *ValidationReport) warn(warning, recommendation string) {
	r.Warnings = append(r.Warnings, warning)
	r.Recommendations = append(r.Recommendations, recommendation)
}
