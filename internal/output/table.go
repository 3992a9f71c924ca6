// Package output provides terminal output utilities for stackprobe.
//
// This package renders ASCII tables for detection candidates, analysis
// sections, validation reports, and run history. ANSI color codes are
// emitted only when stdout is a TTY and NO_COLOR is unset.
package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/stackprobe/internal/analyzer"
	"github.com/blackwell-systems/stackprobe/internal/registry"
	"github.com/blackwell-systems/stackprobe/internal/store"
)

// ANSI color codes for confidence display
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// RenderDecision renders the one-line detection outcome.
func RenderDecision(result *analyzer.DetectionResult) string {
	var sb strings.Builder

	label := result.DetectedTechnology
	if result.FallbackUsed {
		label = colorize(colorGray, label+" (fallback)")
	} else {
		label = colorize(confidenceColor(result.Confidence), label)
	}

	sb.WriteString(fmt.Sprintf("Detected technology: %s\n", label))
	sb.WriteString(fmt.Sprintf("Confidence:          %.2f\n", result.Confidence))
	sb.WriteString(fmt.Sprintf("Files scanned:       %d\n", result.FileCount))
	if result.TemplateMissing {
		sb.WriteString(colorize(colorYellow,
			fmt.Sprintf("Note: no template for %q, generic profile substituted\n", result.DetectedTechnology)))
	}
	return sb.String()
}

// RenderCandidateTable renders ranked candidates with their per-method
// breakdown. Does not sort: candidates arrive ranked from the analyzer.
func RenderCandidateTable(candidates []analyzer.CandidateScore) string {
	if len(candidates) == 0 {
		return "No candidates scored.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-16s %-12s %-12s %-12s %s\n",
		"Technology", "Confidence", "Extensions", "Config Files", "Directories"))
	sb.WriteString(strings.Repeat("─", 68))
	sb.WriteString("\n")

	for _, c := range candidates {
		confStr := fmt.Sprintf("%.2f", c.Confidence)
		sb.WriteString(fmt.Sprintf("%s %-12s %-12s %-12s %s\n",
			colorize(confidenceColor(c.Confidence), fmt.Sprintf("%-16s", truncate(c.Technology, 16))),
			confStr,
			formatMethodScore(c.MethodScores, registry.MethodFileExtensions),
			formatMethodScore(c.MethodScores, registry.MethodConfigurationFiles),
			formatMethodScore(c.MethodScores, registry.MethodDirectoryStructure)))
	}

	return sb.String()
}

// RenderValidationReport renders a validation report with its warnings and
// paired recommendations.
func RenderValidationReport(report analyzer.ValidationReport) string {
	var sb strings.Builder

	if report.IsValid {
		sb.WriteString(fmt.Sprintf("Valid: %s\n", colorize(colorGreen, "yes")))
	} else {
		sb.WriteString(fmt.Sprintf("Valid: %s\n", colorize(colorRed, "no")))
	}
	sb.WriteString(fmt.Sprintf("Confidence level: %s\n", colorize(levelColor(report.ConfidenceLevel), report.ConfidenceLevel)))

	if len(report.Warnings) == 0 {
		sb.WriteString("No warnings.\n")
		return sb.String()
	}

	sb.WriteString("\nWarnings:\n")
	for i, w := range report.Warnings {
		sb.WriteString(fmt.Sprintf("  %s %s\n", colorize(colorYellow, "⚠"), w))
		if i < len(report.Recommendations) {
			sb.WriteString(fmt.Sprintf("    → %s\n", report.Recommendations[i]))
		}
	}

	return sb.String()
}

// RenderAnalysisSections renders the derived analysis configuration,
// sections sorted by analysis type for stable output.
func RenderAnalysisSections(cfg analyzer.AnalysisConfig) string {
	if len(cfg.Sections) == 0 {
		return "No analysis sections configured.\n"
	}

	types := make([]string, 0, len(cfg.Sections))
	for t := range cfg.Sections {
		types = append(types, t)
	}
	sort.Strings(types)

	var sb strings.Builder
	for _, t := range types {
		section := cfg.Sections[t]
		sb.WriteString(fmt.Sprintf("%s\n", colorize(colorGreen, t)))
		if section.Description != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", section.Description))
		}
		if len(section.FilePatterns) > 0 {
			sb.WriteString(fmt.Sprintf("  patterns:    %s\n", strings.Join(section.FilePatterns, ", ")))
		}
		if len(section.Directories) > 0 {
			sb.WriteString(fmt.Sprintf("  directories: %s\n", strings.Join(section.Directories, ", ")))
		}
	}
	return sb.String()
}

// RenderRunTable renders detection-run history, newest first as stored.
func RenderRunTable(runs []*store.DetectionRun) string {
	if len(runs) == 0 {
		return "No detection runs recorded.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-20s %-14s %-11s %-9s %s\n",
		"When", "Technology", "Confidence", "Files", "Root"))
	sb.WriteString(strings.Repeat("─", 80))
	sb.WriteString("\n")

	for _, run := range runs {
		tech := run.DetectedTechnology
		if run.FallbackUsed {
			tech += "*"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-14s %-11s %-9d %s\n",
			formatRelativeTime(run.CreatedAt),
			truncate(tech, 14),
			fmt.Sprintf("%.2f", run.Confidence),
			run.FileCount,
			run.Root))
	}
	sb.WriteString(colorize(colorGray, "* fallback profile used\n"))

	return sb.String()
}

func formatMethodScore(scores map[string]float64, method string) string {
	score, ok := scores[method]
	if !ok {
		return "—"
	}
	return fmt.Sprintf("%.2f", score)
}

// confidenceColor maps a confidence to the validation report's color scale:
// green at high (>=0.8), yellow at medium (>=0.6), red below.
func confidenceColor(confidence float64) string {
	switch {
	case confidence >= 0.8:
		return colorGreen
	case confidence >= 0.6:
		return colorYellow
	default:
		return colorRed
	}
}

func levelColor(level string) string {
	switch level {
	case "high":
		return colorGreen
	case "medium":
		return colorYellow
	default:
		return colorRed
	}
}

// truncate shortens a string to maxLen, appending "…" when truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return s[:maxLen-1] + "…"
}

// formatRelativeTime formats a timestamp as a relative duration for tables.
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}
