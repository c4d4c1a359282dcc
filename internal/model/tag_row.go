package model

// TagRow mirrors the Parquet schema for record files: one row per tag.
// Consecutive rows sharing RecordID belong to the same record.
type TagRow struct {
	RecordID string `parquet:"record_id"`
	System   string `parquet:"system"`
	Code     string `parquet:"code"`
}

// TagRowColumns lists the columns a record file must carry.
func TagRowColumns() []string {
	return []string{"record_id", "system", "code"}
}

// IsPlaceholder reports whether the row only announces a record with an empty tag collection.
func (r *TagRow) IsPlaceholder() bool {
	return r.System == "" && r.Code == ""
}
