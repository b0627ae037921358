// Package thd provides a priority-ordered worker pool with typed futures.
//
// Package: thd
// Title: stdx Worker Pool and Futures
// Description: This package implements Pool, a fixed-size worker pool whose
//              pending tasks are ordered by priority (0 to 255, higher runs
//              earlier; equal priorities run in submission order), and
//              Future, a typed one-shot result cell resolved by the pool.
//              Submit returns a Future for any result type; Then chains a
//              continuation onto a future; ForEach runs a bounded parallel
//              loop over a slice. Closing a pool drains the queue and joins
//              all workers.
//
// Usage:
//
//	import "github.com/stdx-go/stdx/core/thd"
//
//	pool := thd.NewPool(4)
//	defer pool.Close()
//
//	f, err := thd.Submit(pool, 128, func() (int, error) {
//		return compute(), nil
//	})
//	if err != nil {
//		return err
//	}
//
//	n, err := f.Wait(ctx)
//
//	// Chain a continuation
//	g := thd.Then(f, func(n int) (string, error) {
//		return strconv.Itoa(n), nil
//	})
//
//	// Bounded parallel iteration
//	err = thd.ForEach(ctx, items, 4, func(ctx context.Context, it Item) error {
//		return process(ctx, it)
//	})
package thd
