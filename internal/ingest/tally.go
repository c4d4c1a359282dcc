package ingest

import (
	"context"
	"fmt"
	"io"

	"github.com/gyeh/tagstamp/internal/extract"
	"github.com/gyeh/tagstamp/internal/model"
	"github.com/gyeh/tagstamp/internal/recordread"
)

// Tally counts how records fared in the normalizer.
type Tally struct {
	Read       int64
	Flagged    int64
	Normalized int64
	Reasons    map[extract.Reason]int64
}

// Absent is the number of records that produced no timestamp.
func (t *Tally) Absent() int64 {
	return t.Read - t.Normalized
}

// Add records one outcome.
func (t *Tally) Add(o extract.Outcome) {
	if t.Reasons == nil {
		t.Reasons = make(map[extract.Reason]int64)
	}
	t.Read++
	t.Reasons[o.Reason]++
	switch o.Reason {
	case extract.ReasonNoTags, extract.ReasonNotFlagged:
	default:
		t.Flagged++
	}
	if o.Result != nil {
		t.Normalized++
	}
}

// VisitFunc is called once per record with its 1-based position in the source.
type VisitFunc func(rowNum int64, rec *model.TaggedRecord, o extract.Outcome) error

// Walk runs every record of src through n, tallying outcomes and calling fn
// (if non-nil) for each. It stops at the first error from src or fn.
func Walk(ctx context.Context, src recordread.Source, n *extract.Normalizer, fn VisitFunc) (*Tally, error) {
	t := &Tally{}
	var rowNum int64
	for {
		if err := ctx.Err(); err != nil {
			return t, err
		}
		rec, err := src.Next()
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return t, fmt.Errorf("read record %d: %w", rowNum+1, err)
		}
		rowNum++

		o := n.Inspect(rec)
		t.Add(o)
		if fn != nil {
			if err := fn(rowNum, rec, o); err != nil {
				return t, err
			}
		}
	}
}
