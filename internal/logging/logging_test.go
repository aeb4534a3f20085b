package logging

import (
	"context"
	"log/slog"
	"testing"
)

// TestParseLevel tests level string parsing with fallback
func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestSetup tests that Setup installs the default logger
func TestSetup(t *testing.T) {
	logger := Setup("debug", "json")
	if logger == nil {
		t.Fatal("Expected logger, got nil")
	}
	if slog.Default() != logger {
		t.Error("Expected Setup to install the default logger")
	}
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Expected debug level to be enabled")
	}
}
