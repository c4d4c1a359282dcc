package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/tagstamp/internal/sql"
)

// Finalize records the run's counters, marks it loaded, and runs ANALYZE.
func Finalize(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, runID int64, res *ExtractResult) (time.Duration, error) {
	start := time.Now()

	if _, err := pool.Exec(ctx, embedsql.FinalizeRun,
		runID, res.Read, res.Flagged, res.Normalized, res.Absent(), res.RowsStored,
	); err != nil {
		return 0, fmt.Errorf("finalize run: %w", err)
	}
	log.Info().Int64("run_id", runID).Msg("run marked loaded")

	if _, err := pool.Exec(ctx, embedsql.AnalyzeSyncTimes); err != nil {
		return 0, fmt.Errorf("analyze sync_times: %w", err)
	}
	log.Info().Msg("ANALYZE complete")

	return time.Since(start), nil
}
