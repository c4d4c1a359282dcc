package extract

import (
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/gyeh/tagstamp/internal/model"
)

// hostOffset reports the process's current UTC offset (seam for tests).
var hostOffset = func() time.Duration {
	_, offset := time.Now().Zone()
	return time.Duration(offset) * time.Second
}

const (
	naiveDisplayLayout  = "02 Jan 2006 15:04"
	naiveFallbackLayout = "01/02/2006 15:04:05 -07:00"
)

// NaiveSyncTime reproduces the first-generation extractor so its failure
// modes can be compared against Normalizer in tests and reports:
//   - tag systems and the flag code are compared case-sensitively;
//   - the output offset is the host's, not the target zone's;
//   - an unparseable value renders the zero time instead of no result;
//   - a flagged record without a value tag is an error.
//
// Do not use it to produce data.
func NaiveSyncTime(rec *model.TaggedRecord) (*string, error) {
	return NaiveSyncTimeFor(rec, model.FlagKeyOffline, model.ValueKeySyncTime)
}

// NaiveSyncTimeFor is NaiveSyncTime with caller-supplied tag keys, still
// compared case-sensitively.
func NaiveSyncTimeFor(rec *model.TaggedRecord, flagKey, valueKey string) (*string, error) {
	if rec == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("record is nil")
	}

	flagged := false
	for _, t := range rec.Tags {
		if t.System == flagKey {
			flagged = t.Code == "true"
			break
		}
	}
	if !flagged {
		return nil, nil
	}

	var value *model.Tag
	for i := range rec.Tags {
		if rec.Tags[i].System == valueKey {
			value = &rec.Tags[i]
			break
		}
	}
	if value == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("sync time tag not found on flagged record")
	}

	var parsed time.Time
	if t, err := time.Parse(time.RFC3339Nano, value.Code); err == nil {
		parsed = t
	} else if t, err := time.Parse(naiveFallbackLayout, value.Code); err == nil {
		parsed = t
	}

	offset := hostOffset()
	out := parsed.In(time.FixedZone("", int(offset/time.Second))).Format(naiveDisplayLayout)
	return &out, nil
}
