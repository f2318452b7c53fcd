package logging

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// sinkKey is the context key under which a Sink travels.
type sinkKey struct{}

var (
	// defaultSink is the process-wide sink used when a context carries none.
	//nolint:gochecknoglobals // The ambient fallback is the point of the default sink.
	defaultSink Sink
	// defaultLevel is the minimum level of the zap-backed default sink.
	//nolint:gochecknoglobals // Without a default level the process would have no logs.
	defaultLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
)

func init() { //nolint:gochecknoinits // Records emitted before host initialization must not be dropped.
	SetDefault(ZapSink(NewZapLogger(defaultLevel)))
}

// Default returns the process-wide sink.
//
//nolint:ireturn,nolintlint // The facade hands out the interface on purpose.
func Default() Sink {
	return defaultSink
}

// SetDefault replaces the process-wide sink.
// This function is not thread-safe; call it during host startup.
func SetDefault(s Sink) {
	if s == nil {
		s = NopSink{}
	}

	defaultSink = s
}

// SetLevel adjusts the minimum level of the zap-backed sink installed by
// this package at startup. It has no effect on sinks installed via
// SetDefault or carried in contexts.
func SetLevel(level zapcore.Level) {
	defaultLevel.SetLevel(level)
}

// ToContext returns a child context carrying the given sink.
func ToContext(ctx context.Context, s Sink) context.Context {
	return context.WithValue(ctx, sinkKey{}, s)
}

// FromContext returns the sink carried by the context, falling back to the
// process-wide default when the context carries none.
//
//nolint:ireturn,nolintlint // The facade hands out the interface on purpose.
func FromContext(ctx context.Context) Sink {
	if s, ok := ctx.Value(sinkKey{}).(Sink); ok {
		return s
	}

	return Default()
}
