// File: group.go
// Title: Bounded Parallel Iteration
// Description: ForEach runs a callback over every element of a slice with a
//              bounded number of goroutines, stopping at the first error.

package thd

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ForEach calls fn for every element of items, running at most limit calls
// in parallel. A limit of zero or less runs all calls concurrently. The
// first error cancels the group's context and is returned; elements not yet
// started still run their fn with the cancelled context.
func ForEach[T any](ctx context.Context, items []T, limit int, fn func(context.Context, T) error) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, item := range items {
		g.Go(func() error {
			return fn(ctx, item)
		})
	}

	return g.Wait()
}
