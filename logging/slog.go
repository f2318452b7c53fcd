package logging

import (
	"context"
	"log/slog"
)

// slogSink routes Sink records onto a standard library slog logger.
type slogSink struct {
	// logger is the backing slog logger; it owns handlers and output.
	logger *slog.Logger
}

// SlogSink adapts a log/slog logger to the Sink interface, for hosts that
// have standardized on slog instead of zap. A nil logger falls back to
// slog.Default.
//
//nolint:ireturn,nolintlint // Returning Sink is the point of the adapter.
func SlogSink(logger *slog.Logger) Sink {
	if logger == nil {
		logger = slog.Default()
	}

	return slogSink{logger: logger}
}

// Log emits the message at the slog level matching the level.
func (s slogSink) Log(level Level, message string) {
	s.logger.Log(context.Background(), slogLevel(level), message)
}

// slogLevel maps the level onto the slog scale.
func slogLevel(l Level) slog.Level {
	switch l {
	case Debug:
		return slog.LevelDebug
	case Info:
		return slog.LevelInfo
	case Warn:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
