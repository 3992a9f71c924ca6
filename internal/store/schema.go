package store

const schema = `
CREATE TABLE IF NOT EXISTS detection_runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    root TEXT NOT NULL,
    detected_technology TEXT NOT NULL,
    confidence REAL NOT NULL,
    fallback_used BOOLEAN NOT NULL,
    template_missing BOOLEAN NOT NULL,
    file_count INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_root ON detection_runs(root);
CREATE INDEX IF NOT EXISTS idx_runs_created ON detection_runs(created_at);
`
