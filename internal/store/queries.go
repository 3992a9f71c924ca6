package store

import (
	"database/sql"
	"fmt"
	"time"
)

// InsertRun records a detection run and returns its assigned id.
func (s *Store) InsertRun(run *DetectionRun) (int64, error) {
	query := `
		INSERT INTO detection_runs
		(root, detected_technology, confidence, fallback_used, template_missing, file_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.Exec(query,
		run.Root,
		run.DetectedTechnology,
		run.Confidence,
		run.FallbackUsed,
		run.TemplateMissing,
		run.FileCount,
		run.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert detection run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}
	return id, nil
}

// ListRuns returns the most recent detection runs, newest first. A root
// filter narrows the listing to one codebase; pass "" for all roots.
// limit <= 0 means no limit.
func (s *Store) ListRuns(root string, limit int) ([]*DetectionRun, error) {
	query := `
		SELECT id, root, detected_technology, confidence, fallback_used, template_missing, file_count, created_at
		FROM detection_runs
	`
	var args []any
	if root != "" {
		query += " WHERE root = ?"
		args = append(args, root)
	}
	query += " ORDER BY created_at DESC, id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list detection runs: %w", err)
	}
	defer rows.Close()

	var runs []*DetectionRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate detection runs: %w", err)
	}
	return runs, nil
}

// LatestRun returns the most recent run for a root, or nil if none exists.
func (s *Store) LatestRun(root string) (*DetectionRun, error) {
	runs, err := s.ListRuns(root, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return runs[0], nil
}

func scanRun(rows *sql.Rows) (*DetectionRun, error) {
	var run DetectionRun
	var createdAt string

	err := rows.Scan(
		&run.ID,
		&run.Root,
		&run.DetectedTechnology,
		&run.Confidence,
		&run.FallbackUsed,
		&run.TemplateMissing,
		&run.FileCount,
		&createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan detection run: %w", err)
	}

	run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return &run, nil
}
