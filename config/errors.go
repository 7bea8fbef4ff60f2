package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrReadingEnvFile is returned when an explicitly requested .env file cannot be read
	ErrReadingEnvFile = errors.New("failed to read env file")

	// ErrInvalidConfig is returned when a loaded value is out of range
	ErrInvalidConfig = errors.New("invalid configuration")
)
