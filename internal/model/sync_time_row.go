package model

import (
	"time"

	"github.com/google/uuid"
)

// SyncTimeRow is the DB-ready representation of one normalized record.
// Offsets are stored as whole seconds next to the timestamptz so the
// normalized wall clock can be rebuilt without a zone database.
type SyncTimeRow struct {
	IngestBatchID uuid.UUID

	SourceRowNumber int64
	SourceRowHash   []byte

	RecordID      string
	RawValue      string
	SyncedAt      time.Time
	OffsetSeconds int32
	TimeZone      string
}

// SyncTimeColumns returns the ordered column names for COPY into tagstamp.sync_times.
func SyncTimeColumns() []string {
	return []string{
		"ingest_batch_id",
		"source_row_number",
		"source_row_hash",
		"record_id",
		"raw_value",
		"synced_at",
		"offset_seconds",
		"time_zone",
	}
}

// CopyValues returns the row values in the same order as SyncTimeColumns(),
// suitable for pgx CopyFromSource.
func (r *SyncTimeRow) CopyValues() []any {
	return []any{
		r.IngestBatchID,
		r.SourceRowNumber,
		r.SourceRowHash,
		r.RecordID,
		r.RawValue,
		r.SyncedAt,
		r.OffsetSeconds,
		r.TimeZone,
	}
}
