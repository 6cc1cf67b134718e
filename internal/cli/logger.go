package cli

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"solarcast/internal/config"
)

func newLogger(cfg config.Config, w io.Writer) zerolog.Logger {
	if cfg.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(zerologLevel(cfg.LogLevel)).With().Timestamp().Str("service", "solarcast").Logger()
}

func zerologLevel(s string) zerolog.Level {
	switch s {
	case "off":
		return zerolog.Disabled
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
