package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CallerSkip is the zap.AddCallerSkip value that makes a caller-annotating
// sink report the user call site of the conversion operations instead of
// this module's internal frames. Pass it together with zap.AddCaller to
// NewZapLogger when building a sink for the operation family:
//
//	logging.NewZapLogger(level, zap.AddCaller(), zap.AddCallerSkip(logging.CallerSkip))
//
// The constant covers the fixed depth from a public operation through its
// family helper and the emit choke point into the zap adapter.
const CallerSkip = 4

// NewZapLogger creates a new *zap.SugaredLogger with output in simple
// console format on stdout. If the logging level is not provided, the
// package default level is used.
func NewZapLogger(level zapcore.LevelEnabler, options ...zap.Option) *zap.SugaredLogger {
	if level == nil {
		level = defaultLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.AddSync(os.Stdout),
		level,
	)

	return zap.New(core, options...).Sugar()
}

// encoderConfig is the console/json encoder layout shared by NewZapLogger
// and Config.Build.
func encoderConfig() zapcore.EncoderConfig {
	//nolint:exhaustruct // Default encoder configuration values are fine.
	return zapcore.EncoderConfig{
		MessageKey:       "message",
		LevelKey:         "level",
		CallerKey:        "caller",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalColorLevelEncoder,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: ", ",
	}
}

// zapSink routes Sink records onto a sugared zap logger.
type zapSink struct {
	// logger is the backing sugared logger; it owns encoding and output.
	logger *zap.SugaredLogger
}

// ZapSink adapts a sugared zap logger to the Sink interface.
//
//nolint:ireturn,nolintlint // Returning Sink is the point of the adapter.
func ZapSink(logger *zap.SugaredLogger) Sink {
	return zapSink{logger: logger}
}

// Log emits the message on the zap channel matching the level.
func (s zapSink) Log(level Level, message string) {
	switch level {
	case Debug:
		s.logger.Debug(message)
	case Info:
		s.logger.Info(message)
	case Warn:
		s.logger.Warn(message)
	case Error:
		s.logger.Error(message)
	default:
		s.logger.Info(message)
	}
}
