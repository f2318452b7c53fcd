package future

import (
	"context"

	logerror "github.com/metaworm/log-error"
	"github.com/metaworm/log-error/logging"
	"github.com/metaworm/log-error/optional"
	"github.com/metaworm/log-error/result"
)

// Promise represents the handle used to fulfill a Future.
type Promise[T any] struct {
	// ch is the write side of the shared 1-buffered channel.
	ch chan<- result.Result[T]
}

// Future represents a placeholder for a Result that will be available in
// the future. It can be awaited exactly once.
type Future[T any] struct {
	// ch is the read side of the shared 1-buffered channel.
	ch <-chan result.Result[T]
}

// Create initializes a new Promise and Future pair. The Promise fulfills
// the Future; the Future is awaited to retrieve the result.
func Create[T any]() (Promise[T], Future[T]) {
	ch := make(chan result.Result[T], 1)

	return Promise[T]{ch: ch}, Future[T]{ch: ch}
}

// Fulfill delivers the result to the awaiting Future. The buffer makes the
// delivery non-blocking; a Promise must be fulfilled exactly once.
func (p Promise[T]) Fulfill(r result.Result[T]) {
	p.ch <- r
	close(p.ch)
}

// Immediate creates a Future already fulfilled with the given value, for
// scenarios where the result is available without asynchronous work.
func Immediate[T any](value T) Future[T] {
	promise, f := Create[T]()
	promise.Fulfill(result.Ok(value))

	return f
}

// ImmediateErr creates a Future already fulfilled with the given error.
func ImmediateErr[T any](err error) Future[T] {
	promise, f := Create[T]()
	promise.Fulfill(result.Err[T](err))

	return f
}

// Go runs fn in a new goroutine and returns a Future fulfilled with its
// outcome.
func Go[T any](fn func() (T, error)) Future[T] {
	promise, f := Create[T]()

	go func() {
		promise.Fulfill(result.Of(fn()))
	}()

	return f
}

// Await blocks until the Future is fulfilled and returns the contained
// result. Futures can only be consumed once.
func (f Future[T]) Await() result.Result[T] {
	return <-f.ch
}

// AwaitLog awaits the Future and applies the standard conversion: a
// successful result becomes a present option, a failure is absorbed into
// one log record at the given level and becomes absent.
func (f Future[T]) AwaitLog(ctx context.Context, level logging.Level, label string) optional.Option[T] {
	return logerror.At(ctx, f.Await(), level, label)
}
