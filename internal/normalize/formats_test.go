package normalize

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		pattern string
		culture string
		want    string
	}{
		{"MM/dd/yyyy hh:mm:ss", "en-US", "01/02/2006 03:04:05"},
		{"MM/dd/yyyy hh:mm:ss tt", "en-US", "01/02/2006 03:04:05 PM"},
		{"MM/dd/yyyy HH:mm:ss zzz", "en-US", "01/02/2006 15:04:05 -07:00"},
		{"dd MMM yyyy HH:mm", "en-US", "02 Jan 2006 15:04"},
		{"yyyy-MM-dd'T'HH:mm:ss.fffK", "en-US", "2006-01-02T15:04:05.000Z07:00"},
		{"yyyy-MM-ddTHH:mm:ss", "en-US", "2006-01-02T15:04:05"},
		{"dddd, d MMMM yyyy", "en-US", "Monday, 2 January 2006"},
		{"ddd d/M/yy h:m:s", "en-AU", "Mon 2/1/06 3:4:5"},
		{"dd/MM/yyyy", "de-DE", "02.01.2006"},
		{"HH:mm:ss.FFF", "en-US", "15:04:05.999"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			culture, err := LookupCulture(tt.culture)
			require.NoError(t, err)
			got, err := Layout(tt.pattern, culture)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewFormatCatalog_InvalidPatterns(t *testing.T) {
	for _, p := range []string{
		"",
		"yyyy-MM-dd t",
		"'1st' MMM yyyy",
		"HH:mm:ssfff",
		"g yyyy",
		"'unterminated",
		"yyyy-MM-dd 'MST'",
		`HH:mm\`,
	} {
		t.Run(p, func(t *testing.T) {
			_, err := NewFormatCatalog("MM/dd/yyyy", p)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
}

func TestNewFormatCatalog_KeepsOrder(t *testing.T) {
	c, err := NewFormatCatalog(DefaultFormats...)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultFormats), c.Len())
	assert.Equal(t, DefaultFormats, c.Patterns())
}

func TestFormatCatalog_NilIsEmpty(t *testing.T) {
	var c *FormatCatalog
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Patterns())
}
