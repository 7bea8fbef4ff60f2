package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every environment variable read by Load.
const Prefix = "QUEX_"

// Log formats accepted by LogFormat.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the process-level settings of a quex store.
type Config struct {
	// LogLevel is one of debug, info, warn or error
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogFormat is text or json
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// DeadlockTimeout bounds how long a store lock may be waited for before
	// go-deadlock reports it. Zero disables the detection.
	DeadlockTimeout time.Duration `env:"DEADLOCK_TIMEOUT" envDefault:"30s"`

	// MetricsNamespace prefixes the Prometheus metrics
	MetricsNamespace string `env:"METRICS_NAMESPACE" envDefault:"quex"`

	// TracerName names the OpenTelemetry tracer and meter
	TracerName string `env:"TRACER_NAME" envDefault:"github.com/davidroman0O/quex"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:         "info",
		LogFormat:        FormatText,
		DeadlockTimeout:  30 * time.Second,
		MetricsNamespace: "quex",
		TracerName:       "github.com/davidroman0O/quex",
	}
}

// Load reads the configuration from the process environment. Values found
// in the given .env files are used when the environment does not set them;
// later files win over earlier ones. Without files, a .env file in the
// working directory is read if it exists.
//
// The process environment itself is never modified.
func Load(files ...string) (Config, error) {
	environ := make(map[string]string)

	fileVars, err := readEnvFiles(files...)
	if err != nil {
		return Config{}, err
	}
	maps.Copy(environ, fileVars)
	maps.Copy(environ, env.ToMap(os.Environ()))

	return LoadFrom(environ)
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad(files ...string) Config {
	cfg, err := Load(files...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}

// LoadFrom parses the configuration from environ instead of the process
// environment. Keys carry the QUEX_ prefix.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{
		Environment: environ,
		Prefix:      Prefix,
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readEnvFiles(files ...string) (map[string]string, error) {
	if len(files) == 0 {
		vars, err := godotenv.Read()
		if errors.Is(err, fs.ErrNotExist) {
			// the default .env file is optional
			return nil, nil
		}
		if err != nil {
			return nil, errors.Join(ErrReadingEnvFile, err)
		}
		return vars, nil
	}

	vars := make(map[string]string)
	for _, file := range files {
		fileVars, err := godotenv.Read(file)
		if err != nil {
			return nil, errors.Join(ErrReadingEnvFile, err)
		}
		maps.Copy(vars, fileVars)
	}
	return vars, nil
}

// Validate checks the loaded values.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: log format %q must be %q or %q", ErrInvalidConfig, c.LogFormat, FormatText, FormatJSON)
	}
	if c.DeadlockTimeout < 0 {
		return fmt.Errorf("%w: deadlock timeout %s is negative", ErrInvalidConfig, c.DeadlockTimeout)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return level, nil
}

// NewLogger builds the slog logger described by cfg, writing to w.
// A nil writer means os.Stderr.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}

	level, _ := cfg.Level()
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), nil
}
