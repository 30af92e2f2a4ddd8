// Package domain defines the core data types for the dayforge pipeline:
// dataset rows, run records, and the error taxonomy shared by the run
// layer and the stores.
package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ---------------------------------------------------------------------------
// Error taxonomy
// ---------------------------------------------------------------------------

// Sentinel errors for run failure classification. Use errors.Is for typed
// assertions; all of them are terminal for the run.
var (
	// ErrInvalidArgument indicates the day parameter is missing, malformed,
	// or outside the accepted range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSchemaViolation indicates the constructed dataset does not conform
	// to the fixed schema.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrArtifactExists indicates the artifact for this day already exists
	// and the overwrite policy refuses to replace it.
	ErrArtifactExists = errors.New("artifact already exists")
)

// ---------------------------------------------------------------------------
// Dataset rows
// ---------------------------------------------------------------------------

// Reading is one row of the generated dataset: a synthetic sensor sample
// for one hour of the given day.
type Reading struct {
	ID         int64   // unique within the dataset, dense from 0
	Day        int32   // the run parameter this row belongs to
	Sensor     string  // sensor identifier, non-empty
	Value      float64 // sampled value, finite
	RecordedAt int64   // sample time, Unix milliseconds UTC
}

// Validate checks that the reading conforms to the fixed schema for a run
// with the given day parameter. Any failure is reported as a schema
// violation.
func (r Reading) Validate(day int) error {
	switch {
	case r.ID < 0:
		return fmt.Errorf("%w: negative id %d", ErrSchemaViolation, r.ID)
	case int(r.Day) != day:
		return fmt.Errorf("%w: row day %d does not match run day %d", ErrSchemaViolation, r.Day, day)
	case r.Sensor == "":
		return fmt.Errorf("%w: empty sensor (id %d)", ErrSchemaViolation, r.ID)
	case math.IsNaN(r.Value) || math.IsInf(r.Value, 0):
		return fmt.Errorf("%w: non-finite value for %s (id %d)", ErrSchemaViolation, r.Sensor, r.ID)
	case r.RecordedAt < 0:
		return fmt.Errorf("%w: negative timestamp for %s (id %d)", ErrSchemaViolation, r.Sensor, r.ID)
	}
	return nil
}

// ValidateReadings validates a whole dataset against the run day. The
// dataset must be non-empty.
func ValidateReadings(day int, rows []Reading) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: empty dataset for day %d", ErrSchemaViolation, day)
	}
	for _, r := range rows {
		if err := r.Validate(day); err != nil {
			return err
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Run records
// ---------------------------------------------------------------------------

// RunStatus is the lifecycle state of a run.
type RunStatus string

const (
	RunPending RunStatus = "pending"
	RunDone    RunStatus = "done"
	RunFailed  RunStatus = "failed"
)

// RunRecord captures the outcome of a single pipeline run for the ledger.
type RunRecord struct {
	ID           int64
	Day          int
	ArtifactPath string
	Rows         int
	Status       RunStatus
	Error        string
	StartedAt    time.Time
	FinishedAt   time.Time
}
