// Package analyzer runs technology detection over a codebase: it extracts
// three independent filesystem signals, combines them into weighted
// confidence scores, and applies the catalog's threshold to pick a
// technology profile or fall back to the generic one.
package analyzer

import (
	"log/slog"

	"github.com/blackwell-systems/stackprobe/internal/registry"
	"github.com/blackwell-systems/stackprobe/internal/scanner"
)

// Analyzer detects the technology stack of codebases against one loaded
// catalog. It holds no per-detection state; every Detect call builds fresh
// score maps, so one Analyzer can be reused across codebases.
type Analyzer struct {
	registry *registry.Registry
	log      *slog.Logger
}

// New creates an Analyzer for the given catalog. A nil logger falls back
// to slog.Default().
func New(reg *registry.Registry, log *slog.Logger) *Analyzer {
	if log == nil {
		log = slog.Default()
	}
	return &Analyzer{registry: reg, log: log}
}

// Detect scans root, scores every technology known to the catalog, and
// returns the decision. The only error cases are a failed traversal
// (*scanner.ScanError); every other edge input degrades to valid zero
// scores and, if nothing clears the threshold, the fallback profile.
func (a *Analyzer) Detect(root string) (*DetectionResult, error) {
	if !a.registry.Enabled() {
		a.log.Warn("auto-detection disabled in catalog, using fallback profile")
		return a.fallbackResult(root, nil, 0), nil
	}

	snap, err := scanner.Scan(root)
	if err != nil {
		return nil, err
	}
	a.log.Debug("scanned codebase", "root", root, "files", snap.FileCount())

	methodScores := make(map[string]SignalScores)
	for _, m := range a.registry.Methods() {
		if !m.Enabled {
			continue
		}
		switch m.Name {
		case registry.MethodFileExtensions:
			methodScores[m.Name] = extensionScores(m.Patterns, snap)
		case registry.MethodConfigurationFiles:
			methodScores[m.Name] = configFileScores(m.Patterns, snap)
		case registry.MethodDirectoryStructure:
			methodScores[m.Name] = directoryScores(m.Patterns, snap)
		}
	}

	candidates := a.rankCandidates(methodScores)
	result := a.decide(root, methodScores, candidates)
	result.FileCount = snap.FileCount()

	a.log.Info("technology detection complete",
		"technology", result.DetectedTechnology,
		"confidence", result.Confidence,
		"fallback", result.FallbackUsed)
	return result, nil
}

func (a *Analyzer) fallbackResult(root string, methodScores map[string]SignalScores, topConfidence float64) *DetectionResult {
	if methodScores == nil {
		methodScores = make(map[string]SignalScores)
	}
	return &DetectionResult{
		Root:               root,
		DetectedTechnology: "generic",
		Confidence:         topConfidence,
		MethodScores:       methodScores,
		Profile:            a.registry.Fallback(),
		FallbackUsed:       true,
	}
}
