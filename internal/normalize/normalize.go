package normalize

import (
	"github.com/google/uuid"

	"github.com/gyeh/tagstamp/internal/model"
)

// ToSyncTimeRow converts a normalized record into a DB-ready SyncTimeRow.
// raw is the value tag's code as it appeared on the record.
func ToSyncTimeRow(rec *model.TaggedRecord, ts *model.NormalizedTimestamp, raw string, batchID uuid.UUID, rowNum int64) *model.SyncTimeRow {
	return &model.SyncTimeRow{
		IngestBatchID:   batchID,
		SourceRowNumber: rowNum,
		SourceRowHash:   RecordHash(rowNum, rec),
		RecordID:        rec.ID,
		RawValue:        raw,
		SyncedAt:        ts.Instant,
		OffsetSeconds:   ts.OffsetSeconds(),
		TimeZone:        ts.Zone,
	}
}
