package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveZone_BaseOffset(t *testing.T) {
	tests := []struct {
		id     string
		base   time.Duration
		abbrev string
	}{
		{"Australia/Hobart", 10 * time.Hour, "AEST"},
		{"America/New_York", -5 * time.Hour, "EST"},
		{"Europe/Berlin", time.Hour, "CET"},
		{"Asia/Kolkata", 5*time.Hour + 30*time.Minute, "IST"},
		{"UTC", 0, "UTC"},
		{"Europe/Dublin", 0, "GMT"},
		{"Australia/Lord_Howe", 10*time.Hour + 30*time.Minute, "+1030"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			z, err := ResolveZone(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.id, z.Name)
			assert.Equal(t, tt.base, z.Base)
			assert.Equal(t, tt.abbrev, z.Abbrev)
		})
	}
}

func TestResolveZone_Default(t *testing.T) {
	z, err := ResolveZone("  ")
	require.NoError(t, err)
	assert.Equal(t, "Australia/Hobart", z.Name)
}
