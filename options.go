package quex

import (
	"io"

	"github.com/davidroman0O/quex/config"
)

// OptionsFromConfig turns cfg into store options: a slog-backed logger
// writing to w. cfg.DeadlockTimeout is process-wide and is not applied
// here; pass it to store.DetectDeadlocks once at startup.
func OptionsFromConfig[S any](cfg config.Config, w io.Writer) ([]Option[S], error) {
	logger, err := config.NewLogger(cfg, w)
	if err != nil {
		return nil, err
	}

	return []Option[S]{
		WithLogger[S](NewSlogLogger(logger)),
	}, nil
}
