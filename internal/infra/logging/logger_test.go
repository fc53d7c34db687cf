package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sagesearch/copy-assets/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidateLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		assert.NoError(t, ValidateLevel(lvl), lvl)
	}
	assert.ErrorIs(t, ValidateLevel("verbose"), domain.ErrInvalidLogLevel)
	assert.ErrorIs(t, ValidateLevel(""), domain.ErrInvalidLogLevel)
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Debug("hidden detail")
	logger.Info("copied entry", "dst", "assets/images/a.png")

	out := buf.String()
	assert.NotContains(t, out, "hidden detail")
	assert.Contains(t, out, "copied entry")
	assert.Contains(t, out, "assets/images/a.png")
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelDebug)

	logger.Debug("checking source", "src", "a.png")

	assert.Contains(t, buf.String(), "checking source")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
}
