package main

import (
	"errors"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/gyeh/tagstamp/internal/exitcode"
	"github.com/gyeh/tagstamp/internal/ingest"
)

func exitCodeForError(err error) int {
	var pe *ingest.PipelineError
	if errors.As(err, &pe) {
		switch pe.Phase {
		case ingest.PhaseConfig:
			return exitcode.ConfigError
		case ingest.PhasePreflight:
			return exitcode.ValidationError
		case ingest.PhaseExtract:
			return exitcode.CopyError
		case ingest.PhaseFinalize:
			return exitcode.FinalizeError
		}
	}
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument:
		return exitcode.ConfigError
	}
	return exitcode.ExtractError
}
