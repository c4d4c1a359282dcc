package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSetup_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		log := Setup("json", tt.level)
		if got := log.GetLevel(); got != tt.want {
			t.Errorf("Setup(json, %q) level = %v, want %v", tt.level, got, tt.want)
		}
	}
}
