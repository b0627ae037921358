// File: future.go
// Title: Typed Futures and Continuations
// Description: Implements Future, the one-shot typed result cell returned by
//              Submit, and Then, the asynchronous continuation combinator.
//              A task panic is captured into the future's error instead of
//              tearing down the worker.

package thd

import (
	"context"

	"github.com/stdx-go/stdx/core/fault"
)

// Future holds the eventual result of a submitted task. A Future is resolved
// exactly once; all waiters observe the same result.
type Future[R any] struct {
	done chan struct{}
	val  R
	err  error
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

// resolve stores the result and releases all waiters. Must be called at
// most once.
func (f *Future[R]) resolve(val R, err error) {
	f.val = val
	f.err = err
	close(f.done)
}

// Done returns a channel that is closed when the result is available
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the result is available or the context ends. A context
// end does not cancel the task; the future stays valid for a later Wait.
func (f *Future[R]) Wait(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero R
		return zero, fault.Wrap(ctx.Err(), "waiting for task result")
	}
}

// MustWait blocks without a context until the result is available
func (f *Future[R]) MustWait() (R, error) {
	<-f.done
	return f.val, f.err
}

// Submit schedules fn on the pool with the given priority and returns a
// future for its result. A panic inside fn resolves the future with an
// error carrying the panic value.
func Submit[R any](p *Pool, prio uint8, fn func() (R, error)) (*Future[R], error) {
	f := newFuture[R]()

	err := p.enqueue(prio, func() {
		defer func() {
			if r := recover(); r != nil {
				var zero R
				f.resolve(zero, fault.Errorf("task panicked: %v", r).
					WithCode(fault.CodeUnknown))
			}
		}()
		f.resolve(fn())
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Go schedules fn with the default priority of zero
func Go[R any](p *Pool, fn func() (R, error)) (*Future[R], error) {
	return Submit(p, 0, fn)
}

// Then returns a future that resolves with fn applied to the result of
// upstream. The continuation runs on its own goroutine once upstream
// resolves; an upstream error short-circuits past fn.
func Then[R, S any](upstream *Future[R], fn func(R) (S, error)) *Future[S] {
	f := newFuture[S]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				var zero S
				f.resolve(zero, fault.Errorf("continuation panicked: %v", r).
					WithCode(fault.CodeUnknown))
			}
		}()

		val, err := upstream.MustWait()
		if err != nil {
			var zero S
			f.resolve(zero, err)
			return
		}
		f.resolve(fn(val))
	}()

	return f
}
