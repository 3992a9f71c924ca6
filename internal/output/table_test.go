package output

import (
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/stackprobe/internal/analyzer"
	"github.com/blackwell-systems/stackprobe/internal/registry"
	"github.com/blackwell-systems/stackprobe/internal/store"
)

func TestRenderDecision(t *testing.T) {
	result := &analyzer.DetectionResult{
		DetectedTechnology: "go",
		Confidence:         0.94,
		FileCount:          120,
	}

	out := RenderDecision(result)

	for _, want := range []string{"go", "0.94", "120"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestRenderDecisionTemplateMissing(t *testing.T) {
	result := &analyzer.DetectionResult{
		DetectedTechnology: "cobol",
		Confidence:         0.8,
		TemplateMissing:    true,
	}

	out := RenderDecision(result)
	if !strings.Contains(out, "generic profile substituted") {
		t.Errorf("expected template-missing note:\n%s", out)
	}
}

func TestRenderCandidateTable(t *testing.T) {
	candidates := []analyzer.CandidateScore{
		{
			Technology: "go",
			Confidence: 0.94,
			MethodScores: map[string]float64{
				registry.MethodFileExtensions:     0.8,
				registry.MethodConfigurationFiles: 1.0,
				registry.MethodDirectoryStructure: 1.0,
			},
		},
		{
			Technology:   "node",
			Confidence:   0.12,
			MethodScores: map[string]float64{registry.MethodFileExtensions: 0.4},
		},
	}

	out := RenderCandidateTable(candidates)

	if !strings.Contains(out, "Technology") {
		t.Errorf("expected header row:\n%s", out)
	}
	for _, want := range []string{"go", "0.94", "node", "0.12"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
	// node has no directory score recorded; the cell shows a dash.
	if !strings.Contains(out, "—") {
		t.Errorf("expected dash for missing method score:\n%s", out)
	}
}

func TestRenderCandidateTableEmpty(t *testing.T) {
	out := RenderCandidateTable(nil)
	if !strings.Contains(out, "No candidates") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestRenderValidationReport(t *testing.T) {
	report := analyzer.ValidationReport{
		IsValid:         false,
		ConfidenceLevel: "low",
		Warnings:        []string{"Low confidence in technology detection"},
		Recommendations: []string{"Consider manually specifying the technology stack"},
	}

	out := RenderValidationReport(report)

	for _, want := range []string{"no", "low", "Low confidence", "manually specifying"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestRenderValidationReportClean(t *testing.T) {
	report := analyzer.ValidationReport{IsValid: true, ConfidenceLevel: "high"}

	out := RenderValidationReport(report)
	if !strings.Contains(out, "No warnings") {
		t.Errorf("expected no-warnings line:\n%s", out)
	}
}

func TestRenderAnalysisSections(t *testing.T) {
	cfg := analyzer.AnalysisConfig{
		Sections: map[string]analyzer.AnalysisSection{
			"code_analysis": {
				Enabled:      true,
				FilePatterns: []string{"*.go"},
				Directories:  []string{"internal"},
				Description:  "Go source files",
			},
			"api_analysis": {Enabled: true, FilePatterns: []string{"*.proto"}},
		},
	}

	out := RenderAnalysisSections(cfg)

	// Sections render sorted by analysis type.
	apiIdx := strings.Index(out, "api_analysis")
	codeIdx := strings.Index(out, "code_analysis")
	if apiIdx < 0 || codeIdx < 0 {
		t.Fatalf("expected both sections:\n%s", out)
	}
	if apiIdx > codeIdx {
		t.Errorf("expected sections sorted by type:\n%s", out)
	}
	if !strings.Contains(out, "*.go") {
		t.Errorf("expected file patterns listed:\n%s", out)
	}
}

func TestRenderRunTable(t *testing.T) {
	runs := []*store.DetectionRun{
		{
			Root:               "/src/app",
			DetectedTechnology: "go",
			Confidence:         0.94,
			FileCount:          120,
			CreatedAt:          time.Now().Add(-2 * time.Hour),
		},
		{
			Root:               "/src/legacy",
			DetectedTechnology: "generic",
			Confidence:         0.2,
			FallbackUsed:       true,
			FileCount:          8,
			CreatedAt:          time.Now().Add(-48 * time.Hour),
		},
	}

	out := RenderRunTable(runs)

	for _, want := range []string{"/src/app", "go", "0.94", "generic*"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"much-too-long-name", 10, "much-too-…"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestFormatRelativeTime(t *testing.T) {
	if got := formatRelativeTime(time.Time{}); got != "never" {
		t.Errorf("expected never for zero time, got %q", got)
	}
	if got := formatRelativeTime(time.Now().Add(-30 * time.Second)); got != "just now" {
		t.Errorf("expected just now, got %q", got)
	}
	if got := formatRelativeTime(time.Now().Add(-3 * time.Hour)); got != "3h ago" {
		t.Errorf("expected 3h ago, got %q", got)
	}
}
