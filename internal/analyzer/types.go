package analyzer

import "github.com/blackwell-systems/stackprobe/internal/registry"

// SignalScores maps a technology id to one method's raw score in [0,1].
type SignalScores map[string]float64

// CandidateScore is one technology's weighted confidence with its
// per-method breakdown.
type CandidateScore struct {
	Technology   string             `json:"technology"`
	Confidence   float64            `json:"confidence"`
	MethodScores map[string]float64 `json:"method_scores"`
}

// DetectionResult is the outcome of one detection pass over a codebase.
//
// Confidence is the raw weighted sum of method scores. Weights are taken
// from the catalog as configured and are not required to sum to 1, so
// confidence is not a probability; it only has to be comparable against
// the catalog's threshold, which shares the same scale.
type DetectionResult struct {
	Root               string                     `json:"root"`
	DetectedTechnology string                     `json:"detected_technology"`
	Confidence         float64                    `json:"confidence"`
	MethodScores       map[string]SignalScores    `json:"detection_methods"`
	Candidates         []CandidateScore           `json:"candidates"`
	Profile            registry.TechnologyProfile `json:"configuration"`
	FallbackUsed       bool                       `json:"fallback_used"`
	TemplateMissing    bool                       `json:"template_missing,omitempty"`
	FileCount          int                        `json:"file_count"`
}

// AnalysisConfig is the pattern bundle derived from a detection result for
// downstream analysis.
type AnalysisConfig struct {
	FilePatterns      map[string]registry.FilePatternGroup `json:"file_patterns"`
	RegexPatterns     map[string][]string                  `json:"regex_patterns"`
	IntegrationPoints map[string][]string                  `json:"integration_points"`
	Sections          map[string]AnalysisSection           `json:"analysis_config"`
}

// AnalysisSection is one analysis type derived from a profile's file
// pattern groups.
type AnalysisSection struct {
	Enabled      bool     `json:"enabled"`
	FilePatterns []string `json:"file_patterns"`
	Directories  []string `json:"directories"`
	Description  string   `json:"description"`
}

// ValidationReport audits a detection result.
type ValidationReport struct {
	IsValid         bool     `json:"is_valid"`
	ConfidenceLevel string   `json:"confidence_level"` // "high", "medium", "low"
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}
