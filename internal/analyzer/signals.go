package analyzer

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/blackwell-systems/stackprobe/internal/scanner"
)

// The three signal extractors. Each is pure over the snapshot and the
// method's configured patterns, and each keeps every score in [0,1]:
// divisions are guarded so that empty trees and empty pattern lists score
// 0.0 instead of erroring.

// extensionScores scores each technology by the share of files carrying one
// of its configured extensions.
func extensionScores(patterns map[string][]string, snap *scanner.Snapshot) SignalScores {
	scores := make(SignalScores, len(patterns))
	total := snap.FileCount()

	for tech, exts := range patterns {
		if total == 0 {
			scores[tech] = 0.0
			continue
		}
		matched := 0
		for _, ext := range exts {
			matched += snap.Extensions[strings.ToLower(ext)]
		}
		scores[tech] = float64(matched) / float64(total)
	}
	return scores
}

// configFileScores scores each technology by the fraction of its marker
// files present anywhere under the root. Existence is what counts, not
// count: one package.json satisfies the marker no matter how many exist.
func configFileScores(patterns map[string][]string, snap *scanner.Snapshot) SignalScores {
	scores := make(SignalScores, len(patterns))

	for tech, markers := range patterns {
		if len(markers) == 0 {
			scores[tech] = 0.0
			continue
		}
		matched := 0
		for _, marker := range markers {
			if hasMarkerFile(marker, snap.Files) {
				matched++
			}
		}
		scores[tech] = float64(matched) / float64(len(markers))
	}
	return scores
}

// hasMarkerFile reports whether any file matches the marker, either by
// exact base name or as a glob against the base name or full relative path.
func hasMarkerFile(marker string, files []string) bool {
	for _, f := range files {
		base := path.Base(f)
		if base == marker {
			return true
		}
		if ok, _ := doublestar.Match(marker, base); ok {
			return true
		}
		if ok, _ := doublestar.Match(marker, f); ok {
			return true
		}
	}
	return false
}

// directoryScores scores each technology by the fraction of its directory
// globs that match at least one directory in the snapshot. Each glob is
// tested for an actual match; a glob contributes once regardless of how
// many directories it matches.
func directoryScores(patterns map[string][]string, snap *scanner.Snapshot) SignalScores {
	scores := make(SignalScores, len(patterns))

	for tech, globs := range patterns {
		if len(globs) == 0 {
			scores[tech] = 0.0
			continue
		}
		matched := 0
		for _, glob := range globs {
			if hasMatchingDir(glob, snap.Dirs) {
				matched++
			}
		}
		scores[tech] = float64(matched) / float64(len(globs))
	}
	return scores
}

func hasMatchingDir(glob string, dirs []string) bool {
	for _, d := range dirs {
		if ok, _ := doublestar.Match(glob, d); ok {
			return true
		}
	}
	return false
}
