package store

import (
	"context"
	"database/sql"
	"time"

	"dayforge/internal/domain"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// Compile-time interface check.
var _ RunStore = (*SQLiteStore)(nil)

// SQLiteStore implements RunStore backed by a SQLite database. It is the
// run ledger: one row per pipeline run, recording day, artifact path, row
// count, status, and timing.
type SQLiteStore struct {
	db *sql.DB
}

const runsSchema = `
CREATE TABLE IF NOT EXISTS runs (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	day           INTEGER NOT NULL,
	artifact_path TEXT    NOT NULL,
	rows          INTEGER NOT NULL,
	status        TEXT    NOT NULL,
	error         TEXT    NOT NULL DEFAULT '',
	started_at    INTEGER NOT NULL,
	finished_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_day ON runs(day);
`

// NewSQLiteStore opens (or creates) a SQLite database at dbPath, ensures
// the runs table exists, and returns a ready-to-use SQLiteStore.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(runsSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// RecordRun inserts a run record and fills in its assigned ID.
func (s *SQLiteStore) RecordRun(ctx context.Context, rec *domain.RunRecord) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (day, artifact_path, rows, status, error, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Day,
		rec.ArtifactPath,
		rec.Rows,
		string(rec.Status),
		rec.Error,
		rec.StartedAt.UnixMilli(),
		rec.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = id
	return nil
}

// ListRuns returns the most recent run records, newest first, up to limit
// (0 means no limit).
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	query := `SELECT id, day, artifact_path, rows, status, error, started_at, finished_at
		  FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []domain.RunRecord
	for rows.Next() {
		var rec domain.RunRecord
		var status string
		var startedAt, finishedAt int64
		if err := rows.Scan(&rec.ID, &rec.Day, &rec.ArtifactPath, &rec.Rows,
			&status, &rec.Error, &startedAt, &finishedAt); err != nil {
			return nil, err
		}
		rec.Status = domain.RunStatus(status)
		rec.StartedAt = time.UnixMilli(startedAt).UTC()
		rec.FinishedAt = time.UnixMilli(finishedAt).UTC()
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
