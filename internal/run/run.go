// Package run implements the day-parameterized extractor/writer: one run
// takes a day number, derives the dataset, and publishes the columnar
// artifact. Runs are single-threaded and run-to-completion; every error is
// terminal, nothing is retried.
package run

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"dayforge/internal/config"
	"dayforge/internal/dataset"
	"dayforge/internal/domain"
	"dayforge/internal/store"
)

// Runner executes pipeline runs against an artifact store, optionally
// recording outcomes to a run ledger.
type Runner struct {
	artifacts store.ArtifactStore
	ledger    store.RunStore // nil when the ledger is disabled
	cfg       config.DatasetConfig
	logger    *slog.Logger
}

// New creates a Runner. ledger may be nil to disable run recording.
func New(artifacts store.ArtifactStore, ledger store.RunStore, cfg config.DatasetConfig, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		artifacts: artifacts,
		ledger:    ledger,
		cfg:       cfg,
		logger:    logger,
	}
}

// ParseDay parses the day argument from its command-line form. Missing,
// non-numeric, and negative values are invalid arguments.
func ParseDay(arg string) (int, error) {
	if arg == "" {
		return 0, fmt.Errorf("%w: day parameter is required", domain.ErrInvalidArgument)
	}
	day, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: day %q is not an integer", domain.ErrInvalidArgument, arg)
	}
	if day < 0 {
		return 0, fmt.Errorf("%w: day %d is negative", domain.ErrInvalidArgument, day)
	}
	return day, nil
}

// Run executes one pipeline run for the given day and returns the resolved
// artifact path. On failure nothing is left behind at the artifact path.
func (r *Runner) Run(ctx context.Context, day int) (string, error) {
	started := time.Now().UTC()

	path, rows, err := r.execute(ctx, day)
	r.record(ctx, day, path, rows, started, err)
	if err != nil {
		r.logger.Error("run failed", "day", day, "error", err)
		return "", err
	}

	r.logger.Info("run complete",
		"day", day,
		"artifact", path,
		"rows", rows,
		"elapsed", time.Since(started).String(),
	)
	return path, nil
}

func (r *Runner) execute(ctx context.Context, day int) (string, int, error) {
	if day < 0 {
		return "", 0, fmt.Errorf("%w: day %d is negative", domain.ErrInvalidArgument, day)
	}

	rows := dataset.Generate(day, r.cfg.Sensors, r.cfg.SamplesPerSensor)

	// Defensive schema check before anything touches the filesystem.
	if err := domain.ValidateReadings(day, rows); err != nil {
		return "", 0, err
	}

	path, err := r.artifacts.WriteReadings(ctx, day, rows)
	if err != nil {
		return "", 0, err
	}
	return path, len(rows), nil
}

// record writes the run outcome to the ledger when one is configured. The
// artifact is the product of the run; a ledger failure is logged, not
// escalated.
func (r *Runner) record(ctx context.Context, day int, path string, rows int, started time.Time, runErr error) {
	if r.ledger == nil {
		return
	}

	rec := domain.RunRecord{
		Day:          day,
		ArtifactPath: path,
		Rows:         rows,
		Status:       domain.RunDone,
		StartedAt:    started,
		FinishedAt:   time.Now().UTC(),
	}
	if runErr != nil {
		rec.Status = domain.RunFailed
		rec.Error = runErr.Error()
	}

	if err := r.ledger.RecordRun(ctx, &rec); err != nil {
		r.logger.Warn("failed to record run in ledger", "day", day, "error", err)
	}
}
