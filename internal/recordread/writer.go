package recordread

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/tagstamp/internal/model"
)

// TagRows flattens records into tag rows. A record without tags becomes a
// single placeholder row so it survives the round trip.
func TagRows(records []*model.TaggedRecord) []model.TagRow {
	var rows []model.TagRow
	for _, rec := range records {
		if !rec.HasTags() {
			rows = append(rows, model.TagRow{RecordID: rec.ID})
			continue
		}
		for _, t := range rec.Tags {
			rows = append(rows, model.TagRow{RecordID: rec.ID, System: t.System, Code: t.Code})
		}
	}
	return rows
}

// WriteParquet writes records to path as a Parquet tag-row file.
func WriteParquet(path string, records []*model.TaggedRecord) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create parquet file: %w", err)
	}
	defer f.Close()

	rows := TagRows(records)
	w := parquet.NewGenericWriter[model.TagRow](f)
	if _, err := w.Write(rows); err != nil {
		return 0, fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("close parquet writer: %w", err)
	}
	return len(rows), f.Close()
}
