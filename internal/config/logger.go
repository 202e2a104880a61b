package config

import (
	"log/slog"
	"os"
)

// NewLogger builds the process logger: text output in development, JSON elsewhere.
func (c LoggerConfig) NewLogger() *slog.Logger {
	return c.newLogger("")
}

// NewLoggerFor is NewLogger with the environment taken into account.
func (c LoggerConfig) NewLoggerFor(env string) *slog.Logger {
	return c.newLogger(env)
}

func (c LoggerConfig) newLogger(env string) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	format := c.Format
	if format == "" {
		format = "json"
		if env == "development" || env == "dev" {
			format = "text"
		}
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
