package logerror

import (
	"context"
	"errors"

	"github.com/metaworm/log-error/logging"
	"github.com/metaworm/log-error/optional"
)

// ErrAbsent is the fixed error rendered when an option-input operation
// receives an absent value.
var ErrAbsent = errors.New("no value")

// AtOption logs the absence of an optional value at the given level, using
// the same message composition as At with ErrAbsent as the error. Present
// values pass through untouched with no record; the returned option always
// equals the input.
func AtOption[T any](ctx context.Context, o optional.Option[T], level logging.Level, label string) optional.Option[T] {
	return convertOption(ctx, o, level, display(label))
}

// WarnOption is AtOption with the severity fixed to Warn.
func WarnOption[T any](ctx context.Context, o optional.Option[T], label string) optional.Option[T] {
	return convertOption(ctx, o, logging.Warn, display(label))
}

// ErrorOption is AtOption with the severity fixed to Error.
func ErrorOption[T any](ctx context.Context, o optional.Option[T], label string) optional.Option[T] {
	return convertOption(ctx, o, logging.Error, display(label))
}

// convertOption is the choke point of the option-input family, one call
// below every public operation like convert.
func convertOption[T any](ctx context.Context, o optional.Option[T], level logging.Level, render func(error) string) optional.Option[T] {
	if o.IsAbsent() {
		emit(ctx, level, render(ErrAbsent))
	}

	return o
}
