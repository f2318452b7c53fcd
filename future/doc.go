// Package future provides asynchronous plumbing for result envelopes.
//
// A Future is a placeholder for a Result that is still being produced; a
// Promise is the handle used to fulfill it. Both sides are built on a
// 1-buffered channel, so fulfilling never blocks and a Future can be
// consumed exactly once. AwaitLog bridges into the conversion operations:
// it awaits the result and absorbs a failure into a log record the same
// way logerror.At does.
//
// The producer side typically looks as follows:
//
//	promise, f := future.Create[int]()
//	go func() {
//	        promise.Fulfill(result.Of(compute()))
//	}()
//	return f
//
// or, for the common run-in-a-goroutine case, simply future.Go(compute).
package future
