package logerror

import (
	"context"

	"github.com/metaworm/log-error/logging"
	"github.com/metaworm/log-error/result"
)

// Observe logs a failure exactly like At but returns the result unchanged
// instead of reducing it to an option, for call sites that still need to
// propagate the error after recording it.
func Observe[T any](ctx context.Context, r result.Result[T], level logging.Level, label string) result.Result[T] {
	return tap(ctx, r, level, display(label))
}

// tap is the choke point of the observing family, one call below every
// public operation like convert.
func tap[T any](ctx context.Context, r result.Result[T], level logging.Level, render func(error) string) result.Result[T] {
	if err := r.Err(); err != nil {
		emit(ctx, level, render(err))
	}

	return r
}
