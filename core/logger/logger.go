package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config controls handler construction.
type Config struct {
	// Level is one of debug, info, warn, error. Defaults to info.
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// Format is "json" or "text". Defaults to json.
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// New builds a slog.Logger writing to stderr according to cfg.
func New(cfg Config) *slog.Logger {
	return NewWithWriter(os.Stderr, cfg)
}

// NewWithWriter builds a slog.Logger writing to w according to cfg.
func NewWithWriter(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
