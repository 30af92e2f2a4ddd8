// dayforge generates the dataset for one day and writes it as a Parquet
// artifact.
//
// Usage:
//
//	dayforge [--config path] <day>
//
// Exit codes: 0 success, 2 invalid argument, 3 schema violation,
// 4 write failure, 1 anything else.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"dayforge/internal/config"
	"dayforge/internal/domain"
	"dayforge/internal/run"
	"dayforge/internal/store"
	"dayforge/internal/util"
)

const (
	exitInvalidArgument = 2
	exitSchemaViolation = 3
	exitWriteFailure    = 4
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "dayforge: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "dayforge",
		Usage:     "generate the dataset for one day and write it as a Parquet artifact",
		ArgsUsage: "<day>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to the YAML configuration file",
				Value:   "config/dayforge.yaml",
				EnvVars: []string{"DAYFORGE_CONFIG"},
			},
		},
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("%w: expected exactly one day argument, got %d", domain.ErrInvalidArgument, c.NArg())
	}
	day, err := run.ParseDay(c.Args().First())
	if err != nil {
		return err
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := util.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	util.SetDefault(logger)

	artifacts := store.NewParquetStore(cfg.Storage.OutputDir, cfg.Storage.Overwrite)

	var ledger store.RunStore
	if cfg.Storage.LedgerPath != "" {
		sqlStore, err := store.NewSQLiteStore(cfg.Storage.LedgerPath)
		if err != nil {
			return fmt.Errorf("opening run ledger: %w", err)
		}
		defer sqlStore.Close()
		ledger = sqlStore
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runner := run.New(artifacts, ledger, cfg.Dataset, logger)
	path, err := runner.Run(ctx, day)
	if err != nil {
		return err
	}

	fmt.Println(path)
	return nil
}

// exitCode maps the run error taxonomy onto process exit codes.
func exitCode(err error) int {
	var werr *store.WriteError
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return exitInvalidArgument
	case errors.Is(err, domain.ErrSchemaViolation):
		return exitSchemaViolation
	case errors.As(err, &werr):
		return exitWriteFailure
	default:
		return 1
	}
}
