package normalize

import (
	"testing"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownFormats = []string{
	"MM/dd/yyyy hh:mm:ss",
	"MM/dd/yyyy hh:mm:ss tt",
	"MM/dd/yyyy HH:mm:ss zzz",
}

func TestToTimestamp_USFormat(t *testing.T) {
	got, err := ToTimestamp("12/20/2024 09:00:00", knownFormats, "en-US")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2024, got.Instant.Year())
	assert.Equal(t, time.December, got.Instant.Month())
	assert.Equal(t, 20, got.Instant.Day())
	assert.Equal(t, 9, got.Instant.Hour())
	assert.Equal(t, time.Duration(0), got.Offset)
}

func TestToTimestamp_ISOFallsThroughCatalog(t *testing.T) {
	got, err := ToTimestamp("2024-06-14T20:00:00.000+00:00", knownFormats, "en-US")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2024, got.Instant.Year())
	assert.Equal(t, time.June, got.Instant.Month())
	assert.Equal(t, 14, got.Instant.Day())
	assert.Equal(t, 20, got.Instant.Hour())
}

func TestToTimestamp_DefaultCulture(t *testing.T) {
	got, err := ToTimestamp("12/20/2024 09:00:00", knownFormats, "")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.December, got.Instant.Month())
}

func TestToTimestamp_ConfigDefects(t *testing.T) {
	_, err := ToTimestamp("12/20/2024 09:00:00", knownFormats, "xx-XX")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	_, err = ToTimestamp("12/20/2024 09:00:00", []string{"yyyy t"}, "en-US")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestParseTimestamp_Catalog(t *testing.T) {
	formats, err := NewFormatCatalog(DefaultFormats...)
	require.NoError(t, err)

	tests := []struct {
		name   string
		input  string
		want   time.Time
		offset time.Duration
	}{
		{
			name:  "12-hour clock without designator",
			input: "12/20/2024 09:00:00",
			want:  time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "12-hour clock with PM",
			input: "12/20/2024 09:00:00 PM",
			want:  time.Date(2024, 12, 20, 21, 0, 0, 0, time.UTC),
		},
		{
			name:  "lowercase pm",
			input: "12/20/2024 09:00:00 pm",
			want:  time.Date(2024, 12, 20, 21, 0, 0, 0, time.UTC),
		},
		{
			name:   "24-hour clock with offset",
			input:  "12/20/2024 21:00:00 +10:00",
			want:   time.Date(2024, 12, 20, 11, 0, 0, 0, time.UTC),
			offset: 10 * time.Hour,
		},
		{
			name:  "display format",
			input: "14 Jun 2024 08:30",
			want:  time.Date(2024, 6, 14, 8, 30, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			input: "  14 Jun 2024 08:30\t",
			want:  time.Date(2024, 6, 14, 8, 30, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTimestamp(tt.input, formats, DefaultCulture())
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(got.Instant), "want %s got %s", tt.want, got.Instant)
			assert.Equal(t, tt.offset, got.Offset)
		})
	}
}

func TestParseTimestamp_PatternDecidesFieldOrder(t *testing.T) {
	dayFirst, err := NewFormatCatalog("dd/MM/yyyy HH:mm")
	require.NoError(t, err)
	monthFirst, err := NewFormatCatalog("MM/dd/yyyy HH:mm")
	require.NoError(t, err)

	got := ParseTimestamp("03/04/2024 10:00", dayFirst, DefaultCulture())
	require.NotNil(t, got)
	assert.Equal(t, time.April, got.Instant.Month())
	assert.Equal(t, 3, got.Instant.Day())

	got = ParseTimestamp("03/04/2024 10:00", monthFirst, DefaultCulture())
	require.NotNil(t, got)
	assert.Equal(t, time.March, got.Instant.Month())
	assert.Equal(t, 4, got.Instant.Day())
}

func TestParseTimestamp_Cultures(t *testing.T) {
	fr, err := LookupCulture("fr-FR")
	require.NoError(t, err)
	de, err := LookupCulture("de-DE")
	require.NoError(t, err)

	display, err := NewFormatCatalog("dd MMM yyyy HH:mm")
	require.NoError(t, err)
	got := ParseTimestamp("14 juin 2024 08:30", display, fr)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 6, 14, 8, 30, 0, 0, time.UTC), got.Instant)

	got = ParseTimestamp("14 févr. 2024 08:30", display, fr)
	require.NotNil(t, got)
	assert.Equal(t, time.February, got.Instant.Month())

	numeric, err := NewFormatCatalog("dd/MM/yyyy HH:mm:ss")
	require.NoError(t, err)
	got = ParseTimestamp("20.12.2024 09:00:00", numeric, de)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC), got.Instant)

	// The pattern misses on the separator; the fallback still reads it day-first.
	got = ParseTimestamp("20/12/2024 09:00:00", numeric, de)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC), got.Instant)
}

func TestParseTimestamp_Fallback(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Time
		offset time.Duration
	}{
		{
			name:  "RFC3339 UTC",
			input: "2024-06-14T20:00:00Z",
			want:  time.Date(2024, 6, 14, 20, 0, 0, 0, time.UTC),
		},
		{
			name:   "RFC3339 with millis and offset",
			input:  "2024-06-14T20:00:00.000+05:30",
			want:   time.Date(2024, 6, 14, 14, 30, 0, 0, time.UTC),
			offset: 5*time.Hour + 30*time.Minute,
		},
		{
			name:  "ISO without zone reads as UTC",
			input: "2024-06-14 20:00:00",
			want:  time.Date(2024, 6, 14, 20, 0, 0, 0, time.UTC),
		},
		{
			name:  "date only",
			input: "2024-06-14",
			want:  time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "unix date with UTC abbreviation",
			input: "Fri Jun 14 20:00:00 UTC 2024",
			want:  time.Date(2024, 6, 14, 20, 0, 0, 0, time.UTC),
		},
		{
			name:  "free-form month name",
			input: "oct 7, 1970",
			want:  time.Date(1970, 10, 7, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTimestamp(tt.input, nil, nil)
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(got.Instant), "want %s got %s", tt.want, got.Instant)
			assert.Equal(t, tt.offset, got.Offset)
		})
	}
}

func TestParseTimestamp_FallbackUsesCultureOrder(t *testing.T) {
	gb, err := LookupCulture("en-GB")
	require.NoError(t, err)

	us := ParseTimestamp("03/04/2024", nil, DefaultCulture())
	require.NotNil(t, us)
	assert.Equal(t, time.March, us.Instant.Month())

	uk := ParseTimestamp("03/04/2024", nil, gb)
	require.NotNil(t, uk)
	assert.Equal(t, time.April, uk.Instant.Month())
}

func TestParseTimestamp_Absent(t *testing.T) {
	formats, err := NewFormatCatalog(DefaultFormats...)
	require.NoError(t, err)
	for _, input := range []string{
		"",
		"   ",
		"not-a-date",
		"malformed-datetime-offset",
		"invalid-date-time-offset",
		"1718395200",
		"2024",
		"20240614",
		"42.5",
		"Fri Jun 14 20:00:00 AEST 2024",
		"2024-06-14 20:00:00 PST",
	} {
		t.Run(input, func(t *testing.T) {
			assert.Nil(t, ParseTimestamp(input, formats, DefaultCulture()))
			assert.Nil(t, ParseTimestamp(input, nil, nil))
		})
	}
}

func TestParseTimestamp_IgnoresHostZone(t *testing.T) {
	orig := time.Local
	t.Cleanup(func() { time.Local = orig })

	var offsets []time.Duration
	for _, name := range []string{"America/New_York", "Asia/Kolkata", "UTC"} {
		loc, err := time.LoadLocation(name)
		require.NoError(t, err)
		time.Local = loc

		got := ParseTimestamp("2024-06-14 20:00:00", nil, nil)
		require.NotNil(t, got)
		offsets = append(offsets, got.Offset)
		assert.Equal(t, 20, got.Instant.Hour())
	}
	assert.Equal(t, []time.Duration{0, 0, 0}, offsets)
}
