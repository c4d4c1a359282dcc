package model

import "time"

// RunSummary captures metrics from a single record-file load.
type RunSummary struct {
	FilePath          string
	FileSHA256        string
	RunID             int64
	IngestBatchID     string
	RecordsRead       int64
	RecordsFlagged    int64
	RecordsNormalized int64
	RecordsAbsent     int64
	RowsStored        int64
	DurationExtract   time.Duration
	DurationFinalize  time.Duration
	DurationTotal     time.Duration
}
