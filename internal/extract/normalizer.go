package extract

import (
	"github.com/gyeh/tagstamp/internal/model"
	"github.com/gyeh/tagstamp/internal/normalize"
)

// Options configures a Normalizer. Empty keys fall back to the offline
// criteria URIs in model; an empty zone falls back to model.DefaultTimeZone.
type Options struct {
	FlagKey  string
	ValueKey string
	TimeZone string
	Culture  string
	Formats  []string
}

// Normalizer reads the flag and value tags of a record and normalizes the
// value to a zone's base offset. It is immutable and safe for concurrent use.
type Normalizer struct {
	flagKey  string
	valueKey string
	zone     *Zone
	culture  *normalize.Culture
	formats  *normalize.FormatCatalog
}

// Reason explains why a record did or did not produce a timestamp.
type Reason string

const (
	ReasonNoTags      Reason = "no_tags"
	ReasonNotFlagged  Reason = "not_flagged"
	ReasonNoValue     Reason = "no_value"
	ReasonUnparseable Reason = "unparseable"
	ReasonNormalized  Reason = "normalized"
)

// Outcome is the full trace of one record through the normalizer.
type Outcome struct {
	Reason Reason
	Value  *model.Tag
	Parsed *model.ParsedTimestamp
	Result *model.NormalizedTimestamp
}

// New resolves the zone, culture and formats up front so configuration
// defects surface before any record is read.
func New(opts Options) (*Normalizer, error) {
	zone, err := ResolveZone(opts.TimeZone)
	if err != nil {
		return nil, err
	}
	culture, err := normalize.LookupCulture(opts.Culture)
	if err != nil {
		return nil, err
	}
	formats, err := normalize.NewFormatCatalog(opts.Formats...)
	if err != nil {
		return nil, err
	}

	n := &Normalizer{
		flagKey:  opts.FlagKey,
		valueKey: opts.ValueKey,
		zone:     zone,
		culture:  culture,
		formats:  formats,
	}
	if n.flagKey == "" {
		n.flagKey = model.FlagKeyOffline
	}
	if n.valueKey == "" {
		n.valueKey = model.ValueKeySyncTime
	}
	return n, nil
}

// Extract normalizes a single record. The error is non-nil only when
// timeZoneID does not resolve; missing or malformed data yields (nil, nil).
func Extract(rec *model.TaggedRecord, flagKey, valueKey, timeZoneID string) (*model.NormalizedTimestamp, error) {
	n, err := New(Options{FlagKey: flagKey, ValueKey: valueKey, TimeZone: timeZoneID})
	if err != nil {
		return nil, err
	}
	return n.Normalize(rec), nil
}

// Zone returns the resolved target zone.
func (n *Normalizer) Zone() *Zone { return n.zone }

// Normalize returns the record's value timestamp at the zone's base offset,
// or nil when the record is not flagged or its value is missing or unparseable.
func (n *Normalizer) Normalize(rec *model.TaggedRecord) *model.NormalizedTimestamp {
	return n.Inspect(rec).Result
}

// NormalizeInLocation is the calendar-correct variant: the offset is the one
// in force at the parsed instant, so it changes across daylight transitions.
func (n *Normalizer) NormalizeInLocation(rec *model.TaggedRecord) *model.NormalizedTimestamp {
	o := n.lookup(rec)
	if o.Parsed == nil {
		return nil
	}
	return n.zone.InLocation(o.Parsed)
}

// Inspect runs the normalizer and reports how far the record got.
func (n *Normalizer) Inspect(rec *model.TaggedRecord) Outcome {
	o := n.lookup(rec)
	if o.Parsed != nil {
		o.Result = n.zone.AtBaseOffset(o.Parsed)
		o.Reason = ReasonNormalized
	}
	return o
}

func (n *Normalizer) lookup(rec *model.TaggedRecord) Outcome {
	if !rec.HasTags() {
		return Outcome{Reason: ReasonNoTags}
	}
	if !normalize.ReadBooleanFlag(rec.Tags, n.flagKey) {
		return Outcome{Reason: ReasonNotFlagged}
	}
	value := normalize.FindFirst(rec.Tags, n.valueKey)
	if value == nil {
		return Outcome{Reason: ReasonNoValue}
	}
	parsed := normalize.ParseTimestamp(value.Code, n.formats, n.culture)
	if parsed == nil {
		return Outcome{Reason: ReasonUnparseable, Value: value}
	}
	return Outcome{Value: value, Parsed: parsed}
}
