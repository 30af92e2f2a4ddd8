// Package store defines storage interfaces and implementations for the
// pipeline's two persistence concerns: the columnar output artifact and the
// optional run ledger.
package store

import (
	"context"

	"dayforge/internal/domain"
)

// ArtifactStore persists and retrieves the columnar dataset artifact for a
// run. The artifact path is a pure function of the day parameter.
type ArtifactStore interface {
	// ArtifactPath returns the path the artifact for the given day is (or
	// would be) written to.
	ArtifactPath(day int) string

	// WriteReadings persists the dataset for the given day and returns the
	// resolved artifact path. The write is atomic: readers never observe a
	// partially written artifact.
	WriteReadings(ctx context.Context, day int, rows []domain.Reading) (string, error)

	// ReadReadings reads the artifact for the given day back into rows.
	ReadReadings(ctx context.Context, day int) ([]domain.Reading, error)
}

// RunStore records run outcomes for audit. Implementations live outside the
// artifact output directory.
type RunStore interface {
	// RecordRun inserts a run record and fills in its assigned ID.
	RecordRun(ctx context.Context, rec *domain.RunRecord) error

	// ListRuns returns the most recent run records, newest first, up to
	// limit (0 means no limit).
	ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error)

	// Close releases the underlying storage handle.
	Close() error
}
