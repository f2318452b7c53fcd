package logerror

import (
	"context"
	"fmt"

	"github.com/metaworm/log-error/logging"
	"github.com/metaworm/log-error/optional"
	"github.com/metaworm/log-error/result"
)

// At converts the result into an option, emitting one record at the given
// level when the result is a failure. The record message is the label
// followed by the error's message. Success values pass through silently.
func At[T any](ctx context.Context, r result.Result[T], level logging.Level, label string) optional.Option[T] {
	return convert(ctx, r, level, display(label))
}

// Warn is At with the severity fixed to Warn.
func Warn[T any](ctx context.Context, r result.Result[T], label string) optional.Option[T] {
	return convert(ctx, r, logging.Warn, display(label))
}

// Error is At with the severity fixed to Error.
func Error[T any](ctx context.Context, r result.Result[T], label string) optional.Option[T] {
	return convert(ctx, r, logging.Error, display(label))
}

// AtDetail is At with the error rendered in its verbose %+v form, which
// expands wrapped causes and stack traces for error types that carry them.
// Plain errors degrade to their message.
func AtDetail[T any](ctx context.Context, r result.Result[T], level logging.Level, label string) optional.Option[T] {
	return convert(ctx, r, level, detail(label))
}

// WarnDetail is AtDetail with the severity fixed to Warn.
func WarnDetail[T any](ctx context.Context, r result.Result[T], label string) optional.Option[T] {
	return convert(ctx, r, logging.Warn, detail(label))
}

// ErrorDetail is AtDetail with the severity fixed to Error.
func ErrorDetail[T any](ctx context.Context, r result.Result[T], label string) optional.Option[T] {
	return convert(ctx, r, logging.Error, detail(label))
}

// AtFunc is At with the record message produced by fn instead of the
// label-prefixed default. fn is called only on the failure branch.
func AtFunc[T any](ctx context.Context, r result.Result[T], level logging.Level, fn func(error) string) optional.Option[T] {
	return convert(ctx, r, level, fn)
}

// WarnFunc is AtFunc with the severity fixed to Warn.
func WarnFunc[T any](ctx context.Context, r result.Result[T], fn func(error) string) optional.Option[T] {
	return convert(ctx, r, logging.Warn, fn)
}

// ErrorFunc is AtFunc with the severity fixed to Error.
func ErrorFunc[T any](ctx context.Context, r result.Result[T], fn func(error) string) optional.Option[T] {
	return convert(ctx, r, logging.Error, fn)
}

// convert is the choke point of the result-input family. Keeping every
// public operation exactly one call above it keeps the frame depth to the
// sink uniform, which logging.CallerSkip depends on.
func convert[T any](ctx context.Context, r result.Result[T], level logging.Level, render func(error) string) optional.Option[T] {
	value, err := r.Get()
	if err != nil {
		emit(ctx, level, render(err))

		return optional.Absent[T]()
	}

	return optional.Present(value)
}

// emit routes one record through the sink carried by the context.
func emit(ctx context.Context, level logging.Level, message string) {
	logging.FromContext(ctx).Log(level, message)
}

// display renders "label: message". An empty error message still yields a
// record carrying the label, never a silent drop.
func display(label string) func(error) string {
	return func(err error) string {
		return fmt.Sprintf("%s: %s", label, err.Error())
	}
}

// detail renders "label: verbose-form".
func detail(label string) func(error) string {
	return func(err error) string {
		return fmt.Sprintf("%s: %+v", label, err)
	}
}
