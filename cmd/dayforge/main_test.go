package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"dayforge/internal/domain"
	"dayforge/internal/store"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid argument", domain.ErrInvalidArgument, exitInvalidArgument},
		{"wrapped invalid argument", fmt.Errorf("ctx: %w", domain.ErrInvalidArgument), exitInvalidArgument},
		{"schema violation", domain.ErrSchemaViolation, exitSchemaViolation},
		{"write failure", &store.WriteError{Op: "write", Path: "/x", Err: errors.New("disk full")}, exitWriteFailure},
		{"artifact exists", &store.WriteError{Op: "write", Path: "/x", Err: domain.ErrArtifactExists}, exitWriteFailure},
		{"other", errors.New("boom"), 1},
	}
	for _, tc := range cases {
		if got := exitCode(tc.err); got != tc.want {
			t.Errorf("%s: exitCode = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func writeTestConfig(t *testing.T, outputDir string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "dayforge.yaml")
	content := fmt.Sprintf("storage:\n  output_dir: %q\n", outputDir)
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return cfgPath
}

func TestAppRun(t *testing.T) {
	outDir := t.TempDir()
	cfgPath := writeTestConfig(t, outDir)

	app := newApp()
	if err := app.Run([]string{"dayforge", "--config", cfgPath, "15"}); err != nil {
		t.Fatalf("app.Run: %v", err)
	}

	want := filepath.Join(outDir, "output_day_15.parquet")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("artifact %s missing: %v", want, err)
	}
}

func TestAppRunInvalidDay(t *testing.T) {
	outDir := t.TempDir()
	cfgPath := writeTestConfig(t, outDir)

	for _, args := range [][]string{
		{"dayforge", "--config", cfgPath, "abc"},
		{"dayforge", "--config", cfgPath, "1.5"},
		{"dayforge", "--config", cfgPath},
		{"dayforge", "--config", cfgPath, "1", "2"},
	} {
		app := newApp()
		err := app.Run(args)
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("args %v: got %v, want ErrInvalidArgument", args[2:], err)
		}
	}

	// No artifact was written for any invalid invocation.
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("invalid invocations left files behind: %v", entries)
	}
}
