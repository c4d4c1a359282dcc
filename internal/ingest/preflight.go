package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/tagstamp/internal/normalize"
	"github.com/gyeh/tagstamp/internal/recordread"
	embedsql "github.com/gyeh/tagstamp/internal/sql"
)

// PreflightResult holds all context resolved during the preflight phase.
type PreflightResult struct {
	// FilePath is the original path passed to Preflight, stored as-is.
	FilePath string
	// FileSHA256 is the hex-encoded SHA-256 digest of the file.
	FileSHA256 string
	FileSize   int64
	Format     recordread.Format
	// RunID is the tagstamp.runs key for this file, shared by every import of the same bytes.
	RunID int64
	// IngestBatchID tags the sync_times rows written by this run. For a
	// skipped file it is the batch of the earlier load.
	IngestBatchID uuid.UUID
	// AlreadyLoaded is true when the file was loaded before and force is off.
	AlreadyLoaded bool
}

// Preflight hashes and validates the record file and registers the run.
// A forced re-import drops the rows of the previous batch.
func Preflight(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, filePath, timeZone string, force bool) (*PreflightResult, error) {
	start := time.Now()

	sha, err := normalize.FileHash(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight hash: %w", err)
	}

	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight stat: %w", err)
	}

	format, err := recordread.DetectFormat(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight format: %w", err)
	}

	// Opening validates the Parquet schema or decodes the document up front.
	src, err := recordread.OpenSource(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight open: %w", err)
	}
	src.Close()

	log.Info().
		Str("file", filepath.Base(filePath)).
		Str("sha256", sha).
		Str("format", string(format)).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	pf := &PreflightResult{
		FilePath:      filePath,
		FileSHA256:    sha,
		FileSize:      stat.Size(),
		Format:        format,
		IngestBatchID: uuid.New(),
	}
	if err := registerRun(ctx, pool, log, pf, timeZone, force); err != nil {
		return nil, fmt.Errorf("preflight register run: %w", err)
	}
	return pf, nil
}

func registerRun(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult, timeZone string, force bool) error {
	err := pool.QueryRow(ctx, embedsql.RegisterRun,
		pf.IngestBatchID, filepath.Base(pf.FilePath), pf.FileSHA256, pf.FileSize, timeZone,
	).Scan(&pf.RunID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("register run: %w", err)
	}

	// Already registered (ON CONFLICT DO NOTHING returned no rows).
	var previous uuid.UUID
	var status string
	if err := pool.QueryRow(ctx, embedsql.LookupRun, pf.FileSHA256).Scan(&pf.RunID, &previous, &status); err != nil {
		return fmt.Errorf("lookup existing run: %w", err)
	}

	if !force && status == "loaded" {
		pf.AlreadyLoaded = true
		pf.IngestBatchID = previous
		return nil
	}

	tag, err := pool.Exec(ctx, embedsql.DeleteSyncBatch, previous)
	if err != nil {
		return fmt.Errorf("delete previous batch: %w", err)
	}
	log.Info().
		Str("previous_batch", previous.String()).
		Int64("rows_deleted", tag.RowsAffected()).
		Msg("replacing previous load")

	if _, err := pool.Exec(ctx, embedsql.ResetRun, pf.RunID, pf.IngestBatchID, timeZone); err != nil {
		return fmt.Errorf("reset run: %w", err)
	}
	return nil
}
