package main

import (
	"errors"
	"testing"

	"github.com/gyeh/tagstamp/internal/exitcode"
	"github.com/gyeh/tagstamp/internal/extract"
	"github.com/gyeh/tagstamp/internal/ingest"
)

func TestExitCodeForError(t *testing.T) {
	_, zoneErr := extract.ResolveZone("Not/AZone")
	if zoneErr == nil {
		t.Fatal("expected zone error")
	}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"config defect", zoneErr, exitcode.ConfigError},
		{"preflight", &ingest.PipelineError{Phase: ingest.PhasePreflight, Err: errors.New("x")}, exitcode.ValidationError},
		{"extract", &ingest.PipelineError{Phase: ingest.PhaseExtract, Err: errors.New("x")}, exitcode.CopyError},
		{"finalize", &ingest.PipelineError{Phase: ingest.PhaseFinalize, Err: errors.New("x")}, exitcode.FinalizeError},
		{"pipeline config", &ingest.PipelineError{Phase: ingest.PhaseConfig, Err: zoneErr}, exitcode.ConfigError},
		{"other", errors.New("boom"), exitcode.ExtractError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeForError(tt.err); got != tt.want {
				t.Errorf("exitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
