package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/tagstamp/internal/config"
	"github.com/gyeh/tagstamp/internal/model"
	embedsql "github.com/gyeh/tagstamp/internal/sql"
)

// Pipeline phases, as reported in PipelineError.Phase.
const (
	PhaseConfig    = "config"
	PhasePreflight = "preflight"
	PhaseExtract   = "extract"
	PhaseFinalize  = "finalize"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full load pipeline: preflight → extract → finalize.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.RunSummary, error) {
	totalStart := time.Now()

	norm, err := cfg.Resolve()
	if err != nil {
		return nil, &PipelineError{Phase: PhaseConfig, Err: err}
	}
	zone := norm.Zone()
	log.Info().
		Str("time_zone", zone.Name).
		Str("base_offset", zone.Base.String()).
		Msg("normalizer ready")

	// Phase 1: Preflight
	log.Info().Str("file", cfg.FilePath).Msg("starting preflight")
	pf, err := Preflight(ctx, pool, log, cfg.FilePath, zone.Name, cfg.Force)
	if err != nil {
		return nil, &PipelineError{Phase: PhasePreflight, Err: err}
	}

	if pf.AlreadyLoaded {
		log.Info().
			Int64("run_id", pf.RunID).
			Str("sha256", pf.FileSHA256).
			Msg("file already loaded, skipping (use --force to re-load)")
		return &model.RunSummary{
			FilePath:      pf.FilePath,
			FileSHA256:    pf.FileSHA256,
			RunID:         pf.RunID,
			IngestBatchID: pf.IngestBatchID.String(),
			DurationTotal: time.Since(totalStart),
		}, nil
	}

	// Phase 2: Extract
	log.Info().Msg("starting extract")
	if err := UpdateStatus(ctx, pool, pf.RunID, "extracting"); err != nil {
		return nil, &PipelineError{Phase: PhaseExtract, Err: err}
	}

	res, err := Extract(ctx, pool, log, pf, norm)
	if err != nil {
		fail(ctx, pool, log, pf)
		return nil, &PipelineError{Phase: PhaseExtract, Err: err}
	}

	// Phase 3: Finalize
	log.Info().Msg("finalizing")
	finalizeDur, err := Finalize(ctx, pool, log, pf.RunID, res)
	if err != nil {
		fail(ctx, pool, log, pf)
		return nil, &PipelineError{Phase: PhaseFinalize, Err: err}
	}

	summary := &model.RunSummary{
		FilePath:          pf.FilePath,
		FileSHA256:        pf.FileSHA256,
		RunID:             pf.RunID,
		IngestBatchID:     pf.IngestBatchID.String(),
		RecordsRead:       res.Read,
		RecordsFlagged:    res.Flagged,
		RecordsNormalized: res.Normalized,
		RecordsAbsent:     res.Absent(),
		RowsStored:        res.RowsStored,
		DurationExtract:   res.Duration,
		DurationFinalize:  finalizeDur,
		DurationTotal:     time.Since(totalStart),
	}

	log.Info().
		Int64("records_read", summary.RecordsRead).
		Int64("records_normalized", summary.RecordsNormalized).
		Int64("records_absent", summary.RecordsAbsent).
		Int64("rows_stored", summary.RowsStored).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("load pipeline complete")

	return summary, nil
}

// fail marks the run failed and drops whatever the batch managed to store.
func fail(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult) {
	if err := UpdateStatus(ctx, pool, pf.RunID, "failed"); err != nil {
		log.Warn().Err(err).Msg("could not mark run failed")
	}
	if _, err := pool.Exec(ctx, embedsql.DeleteSyncBatch, pf.IngestBatchID); err != nil {
		log.Warn().Err(err).Msg("could not delete partial batch (non-fatal)")
	}
}

// UpdateStatus updates the run status.
func UpdateStatus(ctx context.Context, pool *pgxpool.Pool, runID int64, status string) error {
	_, err := pool.Exec(ctx, embedsql.UpdateRunStatus, runID, status)
	return err
}
