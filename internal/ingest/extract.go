package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/tagstamp/internal/db"
	"github.com/gyeh/tagstamp/internal/extract"
	"github.com/gyeh/tagstamp/internal/model"
	"github.com/gyeh/tagstamp/internal/normalize"
	"github.com/gyeh/tagstamp/internal/recordread"
)

const copyBufferSize = 1024

// ExtractResult holds metrics from the extract phase.
type ExtractResult struct {
	Tally
	RowsStored int64
	Duration   time.Duration
}

// Extract streams records from the file through the normalizer and
// COPY-loads every normalized timestamp via a channel-backed CopyFromSource.
func Extract(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult, n *extract.Normalizer) (*ExtractResult, error) {
	start := time.Now()

	src, err := recordread.OpenSource(pf.FilePath)
	if err != nil {
		return nil, fmt.Errorf("extract open: %w", err)
	}
	defer src.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan *model.SyncTimeRow, copyBufferSize)
	errCh := make(chan error, 1)
	var tally *Tally

	// Producer goroutine: read records → normalize → push to channel
	go func() {
		defer close(ch)
		t, err := Walk(ctx, src, n, func(rowNum int64, rec *model.TaggedRecord, o extract.Outcome) error {
			if o.Result == nil {
				log.Debug().Str("record", rec.ID).Int64("row", rowNum).Str("reason", string(o.Reason)).Msg("no sync time")
				return nil
			}
			row := normalize.ToSyncTimeRow(rec, o.Result, o.Value.Code, pf.IngestBatchID, rowNum)
			select {
			case ch <- row:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		tally = t
		errCh <- err
	}()

	// Consumer: COPY from channel into sync_times
	source := db.NewChannelSource(ch)
	rowsStored, copyErr := pool.CopyFrom(ctx,
		pgx.Identifier{"tagstamp", "sync_times"},
		model.SyncTimeColumns(),
		source,
	)
	if copyErr != nil {
		// Unblock the producer if COPY stopped reading.
		cancel()
	}

	prodErr := <-errCh
	if copyErr != nil {
		return nil, fmt.Errorf("extract copy: %w", copyErr)
	}
	if prodErr != nil {
		return nil, fmt.Errorf("extract producer: %w", prodErr)
	}

	dur := time.Since(start)
	log.Info().
		Int64("records_read", tally.Read).
		Int64("records_flagged", tally.Flagged).
		Int64("records_normalized", tally.Normalized).
		Int64("rows_stored", rowsStored).
		Str("duration", dur.String()).
		Msg("extract complete")

	return &ExtractResult{
		Tally:      *tally,
		RowsStored: rowsStored,
		Duration:   dur,
	}, nil
}
