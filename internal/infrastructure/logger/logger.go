package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/andrescamacho/spaceempire-go/internal/infrastructure/config"
)

// New builds a slog logger from the logging configuration
func New(cfg config.LoggingConfig) *slog.Logger {
	return NewWithWriter(cfg, outputFor(cfg.Output))
}

// NewWithWriter is New with an explicit destination
func NewWithWriter(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLogLevel(cfg.Level),
		AddSource: cfg.IncludeCaller,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Init installs the configured logger as the slog default
func Init(cfg config.LoggingConfig) *slog.Logger {
	l := New(cfg)
	slog.SetDefault(l)

	l.With("component", "logger").Debug("Logger initialized",
		"level", cfg.Level,
		"format", cfg.Format,
		"output", cfg.Output,
	)
	return l
}

func outputFor(output string) io.Writer {
	if output == "stdout" {
		return os.Stdout
	}
	return os.Stderr
}

func parseLogLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
