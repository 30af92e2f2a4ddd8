package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"dayforge/internal/domain"
)

// Compile-time interface check.
var _ ArtifactStore = (*ParquetStore)(nil)

// ParquetStore implements ArtifactStore using Parquet files on disk.
type ParquetStore struct {
	// OutputDir is the directory artifacts are written to.
	OutputDir string
	// Overwrite controls whether an existing artifact for the same day is
	// replaced. When false, WriteReadings refuses with ErrArtifactExists.
	Overwrite bool
}

// NewParquetStore creates a ParquetStore rooted at the given output
// directory with the given overwrite policy.
func NewParquetStore(outputDir string, overwrite bool) *ParquetStore {
	return &ParquetStore{OutputDir: outputDir, Overwrite: overwrite}
}

// ---------------------------------------------------------------------------
// Parquet record type (on-disk schema)
// ---------------------------------------------------------------------------

// ReadingRecord is the Parquet schema for dataset rows.
type ReadingRecord struct {
	ID         int64   `parquet:"id"`
	Day        int32   `parquet:"day"`
	Sensor     string  `parquet:"sensor"`
	Value      float64 `parquet:"value"`
	RecordedAt int64   `parquet:"recorded_at,timestamp(millisecond)"` // Unix ms
}

// ---------------------------------------------------------------------------
// ArtifactStore implementation
// ---------------------------------------------------------------------------

// ArtifactPath returns the artifact path for the given day.
// Layout: <OutputDir>/output_day_<N>.parquet
func (s *ParquetStore) ArtifactPath(day int) string {
	return filepath.Join(s.OutputDir, fmt.Sprintf("output_day_%d.parquet", day))
}

// WriteReadings writes the dataset for the given day to its artifact path.
// The rows are written to a temp file in the output directory, synced, and
// renamed into place, so the artifact is either fully present or absent.
func (s *ParquetStore) WriteReadings(_ context.Context, day int, rows []domain.Reading) (string, error) {
	path := s.ArtifactPath(day)

	if !s.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", &WriteError{Op: "write", Path: path, Err: domain.ErrArtifactExists}
		}
	}

	records := make([]ReadingRecord, len(rows))
	for i, r := range rows {
		records[i] = ReadingRecord{
			ID:         r.ID,
			Day:        r.Day,
			Sensor:     r.Sensor,
			Value:      r.Value,
			RecordedAt: r.RecordedAt,
		}
	}

	if err := writeParquetAtomic(path, records); err != nil {
		return "", err
	}
	return path, nil
}

// ReadReadings reads the artifact for the given day back into rows.
func (s *ParquetStore) ReadReadings(_ context.Context, day int) ([]domain.Reading, error) {
	records, err := parquet.ReadFile[ReadingRecord](s.ArtifactPath(day))
	if err != nil {
		return nil, err
	}

	rows := make([]domain.Reading, len(records))
	for i, r := range records {
		rows[i] = domain.Reading{
			ID:         r.ID,
			Day:        r.Day,
			Sensor:     r.Sensor,
			Value:      r.Value,
			RecordedAt: r.RecordedAt,
		}
	}
	return rows, nil
}

// ---------------------------------------------------------------------------
// Parquet file helpers
// ---------------------------------------------------------------------------

// writeParquetAtomic publishes records at path via write-to-temp + rename.
// The temp file lives in the destination directory so the rename stays on
// one filesystem. Concurrent writers for different days use distinct temp
// names and distinct destinations.
func writeParquetAtomic[T any](path string, records []T) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Op: "mkdir", Path: dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &WriteError{Op: "write", Path: dir, Err: err}
	}
	tmpPath := tmp.Name()

	w := parquet.NewGenericWriter[T](tmp)
	if _, err := w.Write(records); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &WriteError{Op: "write", Path: tmpPath, Err: err}
	}
	if err := w.Close(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &WriteError{Op: "write", Path: tmpPath, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &WriteError{Op: "write", Path: tmpPath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &WriteError{Op: "write", Path: tmpPath, Err: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &WriteError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
