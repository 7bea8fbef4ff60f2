// Package config loads the process-level settings of a quex store from the
// environment.
//
// Variables are read with the QUEX_ prefix:
//
//	QUEX_LOG_LEVEL          debug, info, warn or error (default info)
//	QUEX_LOG_FORMAT         text or json (default text)
//	QUEX_DEADLOCK_TIMEOUT   lock wait bound, 0 disables detection (default 30s)
//	QUEX_METRICS_NAMESPACE  Prometheus namespace (default quex)
//	QUEX_TRACER_NAME        OpenTelemetry instrumentation name
//
// Parsing is done with github.com/caarlos0/env/v11 and .env files are read
// with github.com/joho/godotenv. Values from files never override the
// process environment.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	logger, err := config.NewLogger(cfg, os.Stdout)
package config
