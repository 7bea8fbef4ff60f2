package config_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidroman0O/quex/config"
)

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFromValues(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"QUEX_LOG_LEVEL":         "warn",
		"QUEX_LOG_FORMAT":        "json",
		"QUEX_DEADLOCK_TIMEOUT":  "0",
		"QUEX_METRICS_NAMESPACE": "app",
		"QUEX_TRACER_NAME":       "app/tracer",
		"LOG_LEVEL":              "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, config.FormatJSON, cfg.LogFormat)
	assert.Equal(t, time.Duration(0), cfg.DeadlockTimeout)
	assert.Equal(t, "app", cfg.MetricsNamespace)
	assert.Equal(t, "app/tracer", cfg.TracerName)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestLoadFromParseError(t *testing.T) {
	_, err := config.LoadFrom(map[string]string{"QUEX_DEADLOCK_TIMEOUT": "soon"})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoadFromInvalidValues(t *testing.T) {
	_, err := config.LoadFrom(map[string]string{"QUEX_LOG_FORMAT": "xml"})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.LoadFrom(map[string]string{"QUEX_LOG_LEVEL": "loud"})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.LoadFrom(map[string]string{"QUEX_DEADLOCK_TIMEOUT": "-1s"})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoadEnvFiles(t *testing.T) {
	t.Setenv("QUEX_LOG_LEVEL", "error")

	cfg, err := config.Load("testdata/.env.base", "testdata/.env.override")
	require.NoError(t, err)

	// the process environment wins over files
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, config.FormatJSON, cfg.LogFormat)
	// later files win over earlier ones
	assert.Equal(t, "from_override", cfg.MetricsNamespace)
	assert.Equal(t, 5*time.Second, cfg.DeadlockTimeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load("testdata/missing.env")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrReadingEnvFile)
}

func TestLoadWithoutDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "quex", cfg.MetricsNamespace)
}

func TestMustLoad(t *testing.T) {
	assert.NotPanics(t, func() {
		config.MustLoad("testdata/.env.base")
	})
	assert.Panics(t, func() {
		config.MustLoad("testdata/.env.invalid")
	})
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	cfg.LogFormat = config.FormatJSON
	cfg.LogLevel = "debug"

	var buf bytes.Buffer
	logger, err := config.NewLogger(cfg, &buf)
	require.NoError(t, err)

	logger.Debug("hello", slog.String("key", "value"))

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "value", record["key"])
}

func TestNewLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := config.NewLogger(config.Default(), &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.Info("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNewLoggerInvalid(t *testing.T) {
	cfg := config.Default()
	cfg.LogFormat = "yaml"

	_, err := config.NewLogger(cfg, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
