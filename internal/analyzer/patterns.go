package analyzer

import "github.com/blackwell-systems/stackprobe/internal/registry"

const defaultAnalysisType = "generic_analysis"

// ConfiguredPatterns derives the downstream analysis configuration from a
// detection result's chosen profile. Pure derivation: the result is not
// modified and no filesystem or catalog access happens here.
func ConfiguredPatterns(result *DetectionResult) AnalysisConfig {
	profile := result.Profile

	cfg := AnalysisConfig{
		FilePatterns:      profile.FilePatterns,
		RegexPatterns:     profile.RegexPatterns,
		IntegrationPoints: profile.IntegrationPoints,
		Sections:          make(map[string]AnalysisSection, len(profile.FilePatterns)),
	}
	if cfg.FilePatterns == nil {
		cfg.FilePatterns = map[string]registry.FilePatternGroup{}
	}
	if cfg.RegexPatterns == nil {
		cfg.RegexPatterns = map[string][]string{}
	}
	if cfg.IntegrationPoints == nil {
		cfg.IntegrationPoints = map[string][]string{}
	}

	for _, group := range profile.FilePatterns {
		analysisType := group.AnalysisType
		if analysisType == "" {
			analysisType = defaultAnalysisType
		}
		cfg.Sections[analysisType] = AnalysisSection{
			Enabled:      true,
			FilePatterns: group.Patterns,
			Directories:  group.Directories,
			Description:  group.Description,
		}
	}

	return cfg
}
