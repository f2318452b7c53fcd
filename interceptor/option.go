package interceptor

import (
	"google.golang.org/grpc/codes"

	"github.com/metaworm/log-error/logging"
)

// settings holds the resolved interceptor configuration.
type settings struct {
	// levels maps a status code onto the severity of its record.
	levels func(codes.Code) logging.Level
	// sink, when set, overrides context resolution for every record.
	sink logging.Sink
}

// Option configures interceptor behaviour.
type Option func(*settings)

// newSettings applies the options over the defaults.
func newSettings(opts ...Option) *settings {
	s := &settings{
		levels: defaultLevels,
		sink:   nil,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithLevels replaces the status-code-to-severity mapping.
func WithLevels(fn func(codes.Code) logging.Level) Option {
	return func(s *settings) {
		if fn != nil {
			s.levels = fn
		}
	}
}

// WithSink pins the records to the given sink instead of resolving one
// from the call context.
func WithSink(sink logging.Sink) Option {
	return func(s *settings) {
		if sink != nil {
			s.sink = sink
		}
	}
}
