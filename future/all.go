package future

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/metaworm/log-error/result"
)

// All runs the given functions concurrently and returns their outcomes in
// input order. At most limit functions run at once; a non-positive limit
// means unbounded. Per-slot failures ride in the returned results and do
// not cancel the remaining functions.
func All[T any](ctx context.Context, limit int, fns ...func(context.Context) (T, error)) []result.Result[T] {
	results := make([]result.Result[T], len(fns))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, fn := range fns {
		g.Go(func() error {
			// Failures are carried per slot, never returned to the group,
			// so one bad slot cannot cancel its siblings.
			results[i] = result.Of(fn(gctx))

			return nil
		})
	}

	// The group never sees an error; Wait only joins the goroutines.
	_ = g.Wait()

	return results
}
