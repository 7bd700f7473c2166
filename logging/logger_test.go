package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/molalign/metrics"
)

// TestNewLogger verifies basic logger creation
func TestNewLogger(t *testing.T) {
	tests := []struct {
		name   string
		format string
		level  string
	}{
		{"JSON Info", "json", "info"},
		{"JSON Debug", "json", "debug"},
		{"JSON Error", "json", "error"},
		{"Text Info", "text", "info"},
		{"Console Warn", "console", "warn"},
		{"Empty level", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := NewLogger(Config{
				Format: tt.format,
				Level:  tt.level,
				Output: zapcore.AddSync(&buf),
			})
			require.NoError(t, err)
			logger.Error("heartbeat")
			assert.Contains(t, buf.String(), "heartbeat")
		})
	}
}

// TestNewLogger_InvalidLevel verifies error handling for invalid log level
func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(Config{Format: "json", Level: "invalid"})
	assert.True(t, errors.Is(err, ErrInvalidLevel))
}

// TestStructuredLogging verifies structured logging with fields
func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Format: "json", Level: "info", Output: zapcore.AddSync(&buf)})
	require.NoError(t, err)

	logger.Info("aligned", zap.Float64("rmsd", 0.25), zap.Int("candidates", 24))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "aligned", entry["msg"])
	assert.Equal(t, 0.25, entry["rmsd"])
	assert.Equal(t, float64(24), entry["candidates"])
	assert.Contains(t, entry, "timestamp")
}

// TestLevelFiltering verifies entries below the level are dropped and not counted
func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Format: "json", Level: "warn", Output: zapcore.AddSync(&buf)})
	require.NoError(t, err)

	debugBefore := testutil.ToFloat64(metrics.LogEntriesTotal.WithLabelValues("debug"))
	errorsBefore := testutil.ToFloat64(metrics.LogErrorsTotal)

	logger.Debug("hidden")
	logger.Error("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Equal(t, debugBefore, testutil.ToFloat64(metrics.LogEntriesTotal.WithLabelValues("debug")))
	assert.Equal(t, errorsBefore+1, testutil.ToFloat64(metrics.LogErrorsTotal))
}

// TestChildLoggerKeepsHook verifies With() preserves the metrics hook
func TestChildLoggerKeepsHook(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Format: "json", Level: "info", Output: zapcore.AddSync(&buf)})
	require.NoError(t, err)

	before := testutil.ToFloat64(metrics.LogEntriesTotal.WithLabelValues("info"))
	logger.With(zap.String("component", "align")).Info("child")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.LogEntriesTotal.WithLabelValues("info")))
	assert.Contains(t, buf.String(), `"component":"align"`)
}

func TestDiscardLogger(t *testing.T) {
	assert.NotNil(t, DiscardLogger())
	DiscardLogger().Info("nothing")
}
