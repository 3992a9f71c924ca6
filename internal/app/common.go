package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/blackwell-systems/stackprobe/internal/analyzer"
	"github.com/blackwell-systems/stackprobe/internal/logging"
	"github.com/blackwell-systems/stackprobe/internal/output"
	"github.com/blackwell-systems/stackprobe/internal/registry"
)

// defaultTemplatesFile is looked up in the working directory when no
// --templates flag is given.
const defaultTemplatesFile = "technology_templates.json"

// newAnalyzer loads the template catalog and builds an analyzer around it.
func newAnalyzer() (*analyzer.Analyzer, *registry.Registry, error) {
	path := templatesPath
	if path == "" {
		path = defaultTemplatesFile
	}

	reg, err := registry.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return analyzer.New(reg, newLogger()), reg, nil
}

// newLogger builds the CLI logger; --verbose lowers the level to debug.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return logging.NewLogger(os.Stderr, level, output.IsColorEnabled())
}

// codebaseRoot resolves the positional codebase argument, defaulting to
// the current directory. The returned path is absolute so that history
// entries for the same codebase compare equal across invocations.
func codebaseRoot(args []string) (string, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve codebase root: %w", err)
	}
	return abs, nil
}

// getDBPath returns the history database path, using the flag value or
// default ~/.stackprobe/stackprobe.db.
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	dir := filepath.Join(home, ".stackprobe")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create stackprobe directory: %w", err)
	}

	return filepath.Join(dir, "stackprobe.db"), nil
}
