package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blackwell-systems/stackprobe/internal/registry"
)

func f64(v float64) *float64 { return &v }

func boolp(v bool) *bool { return &v }

// testDoc returns a small catalog covering go, node, and java with the
// stock weights (0.3 extensions, 0.4 config files, 0.3 directories) and
// the default 0.7 threshold.
func testDoc() registry.Document {
	return registry.Document{
		AutoDetection: registry.AutoDetection{
			Methods: map[string]registry.MethodConfig{
				registry.MethodFileExtensions: {
					Patterns: map[string][]string{
						"go":   {".go"},
						"node": {".js", ".ts"},
						"java": {".java"},
					},
				},
				registry.MethodConfigurationFiles: {
					Patterns: map[string][]string{
						"go":   {"go.mod"},
						"node": {"package.json", "tsconfig.json"},
						"java": {"pom.xml", "build.gradle"},
					},
				},
				registry.MethodDirectoryStructure: {
					Patterns: map[string][]string{
						"go":   {"internal"},
						"node": {"node_modules"},
						"java": {"src/main/java"},
					},
				},
			},
		},
		Templates: map[string]registry.TechnologyProfile{
			"go": {
				Name: "Go",
				FilePatterns: map[string]registry.FilePatternGroup{
					"source": {
						Patterns:     []string{"*.go"},
						AnalysisType: "source_analysis",
						Description:  "Go source files",
					},
				},
			},
			"node": {Name: "Node.js"},
			"java": {Name: "Java"},
		},
		Fallback: registry.TechnologyProfile{Name: "Generic"},
	}
}

func testRegistry(t *testing.T, doc registry.Document) *registry.Registry {
	t.Helper()
	reg, err := registry.FromDocument(doc)
	if err != nil {
		t.Fatalf("failed to build registry: %v", err)
	}
	return reg
}

func testAnalyzer(t *testing.T, doc registry.Document) *Analyzer {
	t.Helper()
	return New(testRegistry(t, doc), nil)
}

// writeTree creates the named files under a fresh temp root.
func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", f, err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", f, err)
		}
	}
	return root
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	diff := a - b
	return diff < eps && diff > -eps
}
