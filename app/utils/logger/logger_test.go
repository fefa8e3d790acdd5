package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		expectErr bool
	}{
		{"debug level", "debug", false},
		{"info level", "info", false},
		{"warn level", "warn", false},
		{"warning alias", "warning", false},
		{"error level", "error", false},
		{"unknown level", "chatty", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, logger)
			}
		})
	}
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Info("session resolved", "user_id", "user-1")

	output := buf.String()
	assert.Contains(t, output, "session resolved")
	assert.Contains(t, output, "user-1")
	assert.Contains(t, output, "confidios-proxy")
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("warn", &buf)
	require.NoError(t, err)

	logger.Info("should be dropped")
	logger.Warn("should be kept")

	output := buf.String()
	assert.False(t, strings.Contains(output, "should be dropped"))
	assert.Contains(t, output, "should be kept")
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	WithComponent(logger, "session_usecase").Info("login completed")

	assert.Contains(t, buf.String(), "session_usecase")
}
