package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/gyeh/tagstamp/internal/model"
)

// Standard layouts tried before the free-form parser. Text without an
// explicit offset is read as UTC so results never depend on the host zone.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses text with the catalog's exact patterns first, then
// standard ISO-8601 layouts, then a permissive free-form parse.
// Returns nil if text is blank or nothing matches.
func ParseTimestamp(text string, formats *FormatCatalog, culture *Culture) *model.ParsedTimestamp {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil
	}
	if culture == nil {
		culture = defaultCulture
	}

	if t, ok := parseExact(s, formats, culture); ok {
		return newParsed(t)
	}
	if t, ok := parseStandard(s, culture); ok {
		return newParsed(t)
	}
	return nil
}

// ToTimestamp is the standalone entry point for format-fallback parsing.
// The error is reserved for configuration defects (unknown culture, invalid
// pattern); unparseable text yields (nil, nil).
func ToTimestamp(text string, knownFormats []string, cultureID string) (*model.ParsedTimestamp, error) {
	culture, err := LookupCulture(cultureID)
	if err != nil {
		return nil, err
	}
	formats, err := NewFormatCatalog(knownFormats...)
	if err != nil {
		return nil, err
	}
	return ParseTimestamp(text, formats, culture), nil
}

func parseExact(s string, formats *FormatCatalog, culture *Culture) (time.Time, bool) {
	if formats == nil {
		return time.Time{}, false
	}
	for _, f := range formats.formats {
		t, err := time.ParseInLocation(f.layout(culture), culture.canonicalize(s, f.names), time.UTC)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseStandard(s string, culture *Culture) (t time.Time, ok bool) {
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}

	// A bare number is a counter or an epoch, never a timestamp we can trust.
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Time{}, false
	}

	// dateparse panics on a handful of malformed inputs; those are unparseable too.
	defer func() {
		if recover() != nil {
			t, ok = time.Time{}, false
		}
	}()
	t, err := dateparse.ParseIn(s, time.UTC, dateparse.PreferMonthFirst(culture.monthFirst))
	if err != nil || unknownZone(s, t) {
		return time.Time{}, false
	}
	return t, true
}

// Abbreviations that really mean a zero offset.
var zeroOffsetNames = map[string]bool{"": true, "UTC": true, "GMT": true, "UT": true, "Z": true}

// unknownZone reports whether t carries a zone abbreviation that was given a
// zero offset only because it could not be resolved, e.g. "AEST" or "PST".
func unknownZone(s string, t time.Time) bool {
	name, offset := t.Zone()
	if offset != 0 || zeroOffsetNames[strings.ToUpper(name)] {
		return false
	}
	for _, zero := range []string{"+0000", "+00:00", "-0000", "-00:00"} {
		if strings.Contains(s, zero) {
			return false
		}
	}
	return true
}

func newParsed(t time.Time) *model.ParsedTimestamp {
	_, offset := t.Zone()
	return &model.ParsedTimestamp{
		Instant: t,
		Offset:  time.Duration(offset) * time.Second,
	}
}
