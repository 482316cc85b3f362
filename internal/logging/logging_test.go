package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"", LevelWarn},
		{"bogus", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := LevelFromString(tt.input); got != tt.want {
				t.Errorf("LevelFromString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInitLogger(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	InitLogger(LevelDebug, FormatText)
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level not enabled after InitLogger(LevelDebug)")
	}

	InitLogger(LevelError, FormatJSON)
	if slog.Default().Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info level still enabled after InitLogger(LevelError)")
	}
}
