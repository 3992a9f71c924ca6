// Package scanner takes a one-shot recursive snapshot of a codebase tree.
// The snapshot is the only filesystem input the detection signals see; all
// scoring afterwards is pure in-memory computation.
package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ScanError reports a codebase root that could not be traversed. It is
// fatal: detection never produces a partial result from a failed walk.
type ScanError struct {
	Root string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan codebase %s: %v", e.Root, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Snapshot is a read-only view of one codebase tree at scan time.
// Paths are slash-separated and relative to Root.
type Snapshot struct {
	Root string

	// Files lists every regular file under Root.
	Files []string

	// Dirs lists every directory under Root, excluding Root itself.
	Dirs []string

	// Extensions counts files per lowercased extension (".go", ".java").
	// Files without an extension are counted under "".
	Extensions map[string]int
}

// FileCount returns the total number of files in the snapshot.
func (s *Snapshot) FileCount() int {
	return len(s.Files)
}

// Scan walks root and returns a snapshot of its files and directories.
// Symlinks are not followed. Any traversal error aborts the scan and is
// wrapped in a *ScanError.
func Scan(root string) (*Snapshot, error) {
	snap := &Snapshot{
		Root:       root,
		Extensions: make(map[string]int),
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			snap.Dirs = append(snap.Dirs, rel)
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		snap.Files = append(snap.Files, rel)
		ext := strings.ToLower(filepath.Ext(d.Name()))
		snap.Extensions[ext]++
		return nil
	})
	if err != nil {
		return nil, &ScanError{Root: root, Err: err}
	}

	return snap, nil
}
