package analyzer

import (
	"testing"

	"github.com/blackwell-systems/stackprobe/internal/registry"
)

func TestConfiguredPatternsDerivesSections(t *testing.T) {
	result := &DetectionResult{
		Profile: registry.TechnologyProfile{
			Name: "Java",
			FilePatterns: map[string]registry.FilePatternGroup{
				"business_logic": {
					Patterns:     []string{"*.java"},
					Directories:  []string{"src/main/java"},
					AnalysisType: "code_analysis",
					Description:  "Java business logic",
				},
				"screens": {
					Patterns: []string{"*.jsp"},
					// No analysis type configured.
				},
			},
			RegexPatterns:     map[string][]string{"endpoints": {`@RequestMapping\(.*\)`}},
			IntegrationPoints: map[string][]string{"databases": {"DB2", "PostgreSQL"}},
		},
	}

	cfg := ConfiguredPatterns(result)

	section, ok := cfg.Sections["code_analysis"]
	if !ok {
		t.Fatal("expected code_analysis section")
	}
	if !section.Enabled {
		t.Error("expected section enabled")
	}
	if len(section.FilePatterns) != 1 || section.FilePatterns[0] != "*.java" {
		t.Errorf("unexpected file patterns: %v", section.FilePatterns)
	}
	if len(section.Directories) != 1 || section.Directories[0] != "src/main/java" {
		t.Errorf("unexpected directories: %v", section.Directories)
	}

	// A group without an analysis type lands in the generic section.
	if _, ok := cfg.Sections["generic_analysis"]; !ok {
		t.Error("expected generic_analysis section for untyped group")
	}

	if len(cfg.RegexPatterns["endpoints"]) != 1 {
		t.Errorf("expected regex patterns carried over, got %v", cfg.RegexPatterns)
	}
	if len(cfg.IntegrationPoints["databases"]) != 2 {
		t.Errorf("expected integration points carried over, got %v", cfg.IntegrationPoints)
	}
}

func TestConfiguredPatternsEmptyProfile(t *testing.T) {
	cfg := ConfiguredPatterns(&DetectionResult{})

	if cfg.FilePatterns == nil || cfg.RegexPatterns == nil || cfg.IntegrationPoints == nil {
		t.Error("expected non-nil maps for an empty profile")
	}
	if len(cfg.Sections) != 0 {
		t.Errorf("expected no sections, got %v", cfg.Sections)
	}
}

func TestConfiguredPatternsPure(t *testing.T) {
	result := &DetectionResult{
		Profile: registry.TechnologyProfile{
			Name: "Go",
			FilePatterns: map[string]registry.FilePatternGroup{
				"source": {Patterns: []string{"*.go"}, AnalysisType: "source_analysis"},
			},
		},
	}

	before := len(result.Profile.FilePatterns)
	_ = ConfiguredPatterns(result)
	_ = ConfiguredPatterns(result)

	if len(result.Profile.FilePatterns) != before {
		t.Error("ConfiguredPatterns must not modify the result")
	}
}
