package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeTree creates the named files (slash-separated, relative) under a
// fresh temp root and returns the root.
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

func TestScanCountsFilesAndExtensions(t *testing.T) {
	root := writeTree(t,
		"main.go",
		"util.go",
		"README.md",
		"src/app.GO", // extension matching is case-insensitive
		"Makefile",
	)

	snap, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if snap.FileCount() != 5 {
		t.Errorf("expected 5 files, got %d", snap.FileCount())
	}
	if snap.Extensions[".go"] != 3 {
		t.Errorf("expected 3 .go files, got %d", snap.Extensions[".go"])
	}
	if snap.Extensions[".md"] != 1 {
		t.Errorf("expected 1 .md file, got %d", snap.Extensions[".md"])
	}
	if snap.Extensions[""] != 1 {
		t.Errorf("expected 1 extensionless file, got %d", snap.Extensions[""])
	}
}

func TestScanListsDirsRelative(t *testing.T) {
	root := writeTree(t, "src/main/java/App.java", "docs/guide.md")

	snap, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	dirs := make(map[string]bool)
	for _, d := range snap.Dirs {
		dirs[d] = true
	}
	for _, want := range []string{"src", "src/main", "src/main/java", "docs"} {
		if !dirs[want] {
			t.Errorf("expected dir %q in snapshot, got %v", want, snap.Dirs)
		}
	}

	for _, f := range snap.Files {
		if filepath.IsAbs(f) {
			t.Errorf("expected relative path, got %q", f)
		}
	}
}

func TestScanEmptyRoot(t *testing.T) {
	snap, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if snap.FileCount() != 0 {
		t.Errorf("expected 0 files, got %d", snap.FileCount())
	}
	if len(snap.Dirs) != 0 {
		t.Errorf("expected no dirs, got %v", snap.Dirs)
	}
}

func TestScanUnreadableRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for missing root")
	}

	var scanErr *ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("expected *ScanError, got %T", err)
	}
}
