package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandlerWritesMessage(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelInfo, false)

	log.Info("technology detection complete", "technology", "go", "confidence", 0.94)

	out := buf.String()
	if !strings.Contains(out, "technology detection complete") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "technology=go") {
		t.Errorf("expected flattened attr, got %q", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("expected no ANSI codes with color disabled, got %q", out)
	}
}

func TestHandlerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelInfo, false)

	log.Debug("scanned codebase", "files", 12)

	if buf.Len() != 0 {
		t.Errorf("expected debug suppressed at info level, got %q", buf.String())
	}
}

func TestHandlerColorsWarnings(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelInfo, true)

	log.Warn("technology not found in templates")

	if !strings.Contains(buf.String(), colorYellow) {
		t.Errorf("expected yellow warning, got %q", buf.String())
	}
}

func TestHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelInfo, false).With("root", "/src/app")

	log.Info("detection started")

	if !strings.Contains(buf.String(), "root=/src/app") {
		t.Errorf("expected inherited attr, got %q", buf.String())
	}
}
