package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func jsonConfig(service string) Config {
	return Config{Level: "info", Format: "json", ServiceName: service}
}

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer

	l := NewWithOutput(jsonConfig("test-service"), &buf)
	l.Info().Msg("ranking computed")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "ranking computed", entry["message"])
	assert.Equal(t, "test-service", entry["service"])
	assert.NotEmpty(t, entry["time"])
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Level: "info", Format: "console", ServiceName: "test-service"}

	l := NewWithOutput(cfg, &buf)
	l.Info().Msg("ranking computed")

	assert.Contains(t, buf.String(), "ranking computed")
	assert.Contains(t, buf.String(), "INF")
}

func TestNewLogger_LogLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logged at debug level", "debug", "debug", true},
		{"debug NOT logged at info level", "info", "debug", false},
		{"warn logged at info level", "info", "warn", true},
		{"info NOT logged at warn level", "warn", "info", false},
		{"error logged at error level", "error", "error", true},
		{"empty level defaults to info", "", "info", true},
		{"invalid level defaults to info", "verbose", "debug", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := jsonConfig("test")
			cfg.Level = tt.configLevel

			l := NewWithOutput(cfg, &buf)
			switch tt.logLevel {
			case "debug":
				l.Debug().Msg("test")
			case "info":
				l.Info().Msg("test")
			case "warn":
				l.Warn().Msg("test")
			case "error":
				l.Error().Msg("test")
			}

			if tt.shouldLog {
				assert.NotEmpty(t, buf.String(), "expected log output")
			} else {
				assert.Empty(t, buf.String(), "expected no log output")
			}
		})
	}
}

func TestNewLogger_WithCaller(t *testing.T) {
	var buf bytes.Buffer
	cfg := jsonConfig("test")
	cfg.EnableCaller = true

	l := NewWithOutput(cfg, &buf)
	l.Info().Msg("test")

	entry := decodeEntry(t, &buf)
	require.Contains(t, entry, "caller")
	assert.Contains(t, entry["caller"], "logger_test.go")
}

func TestLogger_ContextHelpers(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*Logger) *Logger
		key   string
		value string
	}{
		{
			name:  "custom field",
			apply: func(l *Logger) *Logger { return l.WithContext("custom_field", "custom_value") },
			key:   "custom_field",
			value: "custom_value",
		},
		{
			name:  "run id",
			apply: func(l *Logger) *Logger { return l.WithRun("run-42") },
			key:   "run_id",
			value: "run-42",
		},
		{
			name:  "component",
			apply: func(l *Logger) *Logger { return l.WithComponent("sqlite") },
			key:   "component",
			value: "sqlite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := tt.apply(NewWithOutput(jsonConfig("test"), &buf))
			l.Info().Msg("test")

			assert.Equal(t, tt.value, decodeEntry(t, &buf)[tt.key])
		})
	}
}

func TestNop(t *testing.T) {
	l := Nop()

	assert.NotPanics(t, func() { l.Info().Str("k", "v").Msg("dropped") })
}

func TestLogger_StructuredFields(t *testing.T) {
	var buf bytes.Buffer

	l := NewWithOutput(jsonConfig("test"), &buf)
	l.Info().
		Int("alternatives", 12).
		Int("criteria", 5).
		Float64("top_score", 0.4375).
		Str("top_id", "7").
		Msg("MABAC ranking computed")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, float64(12), entry["alternatives"])
	assert.Equal(t, float64(5), entry["criteria"])
	assert.Equal(t, 0.4375, entry["top_score"])
	assert.Equal(t, "7", entry["top_id"])
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.EnableCaller)
	assert.Equal(t, "destination-ranking", cfg.ServiceName)
}

func TestGlobalLogger(t *testing.T) {
	original := log.Logger
	t.Cleanup(func() {
		Global = nil
		log.Logger = original
	})

	var buf bytes.Buffer
	SetGlobal(NewWithOutput(jsonConfig("global-test"), &buf))

	Info().Msg("global info")
	log.Warn().Msg("package logger")

	assert.Contains(t, buf.String(), "global info")
	assert.Contains(t, buf.String(), "package logger")
	assert.Contains(t, buf.String(), "global-test")
}

func TestGlobalLoggerAutoInit(t *testing.T) {
	original := log.Logger
	t.Cleanup(func() {
		Global = nil
		log.Logger = original
	})
	Global = nil

	assert.NotPanics(t, func() { Debug().Msg("auto-init test") })
	assert.NotNil(t, Global)
}
