package domain

import (
	"errors"
	"math"
	"testing"
)

func validReading() Reading {
	return Reading{
		ID:         0,
		Day:        7,
		Sensor:     "temp-ambient",
		Value:      21.5,
		RecordedAt: 1704672000000,
	}
}

func TestReadingValidate(t *testing.T) {
	if err := validReading().Validate(7); err != nil {
		t.Fatalf("valid reading rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Reading)
	}{
		{"negative id", func(r *Reading) { r.ID = -1 }},
		{"day mismatch", func(r *Reading) { r.Day = 8 }},
		{"empty sensor", func(r *Reading) { r.Sensor = "" }},
		{"nan value", func(r *Reading) { r.Value = math.NaN() }},
		{"inf value", func(r *Reading) { r.Value = math.Inf(1) }},
		{"negative timestamp", func(r *Reading) { r.RecordedAt = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validReading()
			tc.mutate(&r)
			err := r.Validate(7)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.Is(err, ErrSchemaViolation) {
				t.Errorf("error %v is not ErrSchemaViolation", err)
			}
		})
	}
}

func TestValidateReadings(t *testing.T) {
	rows := []Reading{validReading()}
	if err := ValidateReadings(7, rows); err != nil {
		t.Fatalf("valid dataset rejected: %v", err)
	}

	// Empty dataset is a schema violation, not a silent success.
	err := ValidateReadings(7, nil)
	if !errors.Is(err, ErrSchemaViolation) {
		t.Errorf("empty dataset: got %v, want ErrSchemaViolation", err)
	}

	// One bad row fails the whole dataset.
	bad := validReading()
	bad.Sensor = ""
	err = ValidateReadings(7, []Reading{validReading(), bad})
	if !errors.Is(err, ErrSchemaViolation) {
		t.Errorf("dataset with bad row: got %v, want ErrSchemaViolation", err)
	}
}

func TestRunStatusConstants(t *testing.T) {
	if RunPending != "pending" {
		t.Errorf("RunPending = %q, want %q", RunPending, "pending")
	}
	if RunDone != "done" {
		t.Errorf("RunDone = %q, want %q", RunDone, "done")
	}
	if RunFailed != "failed" {
		t.Errorf("RunFailed = %q, want %q", RunFailed, "failed")
	}
}
