package logging

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level is the severity of a log record. Fatal and panic severities are
// deliberately absent: an error-absorbing conversion must never terminate
// the host process.
type Level int8

const (
	// Debug is the lowest severity, for verbose diagnostics.
	Debug Level = iota
	// Info is the severity for routine operational messages.
	Info
	// Warn is the severity for recoverable or expected failures.
	Warn
	// Error is the highest severity, for failures needing attention.
	Error
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// zapLevel maps the level onto the zap scale for the zap-backed sinks.
func (l Level) zapLevel() zapcore.Level {
	switch l {
	case Debug:
		return zapcore.DebugLevel
	case Info:
		return zapcore.InfoLevel
	case Warn:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseLevel converts string input to a Level.
// Input is case- and surrounding-space-insensitive; unknown values are
// reported by the second return alongside the Info fallback.
func ParseLevel(s string) (Level, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "debug":
		return Debug, true
	case "info":
		return Info, true
	case "warn":
		return Warn, true
	case "error":
		return Error, true
	default:
		return Info, false
	}
}
