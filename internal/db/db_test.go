package db

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyeh/tagstamp/internal/model"
)

func TestChannelSource(t *testing.T) {
	batch := uuid.New()
	synced := time.Date(2024, 6, 15, 6, 0, 0, 0, time.FixedZone("AEST", 10*3600))

	ch := make(chan *model.SyncTimeRow, 2)
	ch <- &model.SyncTimeRow{IngestBatchID: batch, SourceRowNumber: 1, RecordID: "a", SyncedAt: synced, OffsetSeconds: 36000, TimeZone: "Australia/Hobart"}
	ch <- &model.SyncTimeRow{IngestBatchID: batch, SourceRowNumber: 2, RecordID: "b", SyncedAt: synced, OffsetSeconds: 36000, TimeZone: "Australia/Hobart"}
	close(ch)

	src := NewChannelSource(ch)
	var ids []any
	for src.Next() {
		vals, err := src.Values()
		require.NoError(t, err)
		require.Len(t, vals, len(model.SyncTimeColumns()))
		ids = append(ids, vals[3])
	}
	require.NoError(t, src.Err())
	assert.Equal(t, []any{"a", "b"}, ids)
	assert.Equal(t, int64(2), src.Sent())
}

func TestMigrationNames(t *testing.T) {
	names, err := MigrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "001_init.sql", names[0])
}
