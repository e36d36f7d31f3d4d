// Package futures provides the single-shot asynchronous result used by
// generated async stubs. A Future completes exactly once with a value or an
// error, can be cancelled, and supports derived futures whose transforms run
// inline on the goroutine that completes the upstream future. Because
// completion delivers the original error value, callers always observe the
// underlying failure (transport, decode, or remote error) with no execution
// wrapper around it.
package futures

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Future is a single-shot asynchronous result.
type Future[T any] struct {
	mu        sync.Mutex
	completed bool
	value     T
	err       error
	callbacks []func(T, error)
	done      chan struct{}
	cancel    context.CancelFunc
}

// Call invokes fn on a new goroutine and returns a Future for its result.
// The function receives a context derived from ctx that is cancelled when
// the future is cancelled.
func Call[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	callCtx, cancel := context.WithCancel(ctx)
	f := &Future[T]{done: make(chan struct{}), cancel: cancel}
	go func() {
		defer cancel()
		value, err := fn(callCtx)
		f.complete(value, err)
	}()
	return f
}

// Completed returns an already-successful future, useful for tests.
func Completed[T any](value T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), cancel: func() {}}
	f.complete(value, nil)
	return f
}

// Failed returns an already-failed future, useful for tests.
func Failed[T any](err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), cancel: func() {}}
	var zero T
	f.complete(zero, err)
	return f
}

// Cancel cancels the in-flight call. The future completes with the
// underlying context's cancellation error once the call observes it.
func (f *Future[T]) Cancel() { f.cancel() }

// Done returns a channel that is closed when the future completes.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Get blocks until the future completes or ctx is done. A completed
// future's error is returned as-is.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Await blocks for at most timeout. On timeout it reports how long it
// waited, with context.DeadlineExceeded as the cause, and leaves the
// underlying call running.
func (f *Future[T]) Await(timeout time.Duration) (T, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-f.done:
		return f.value, f.err
	case <-timer.C:
		var zero T
		return zero, errors.Wrapf(context.DeadlineExceeded, "Waited %d milliseconds", timeout.Milliseconds())
	}
}

// Transform derives a future by applying fn to a successful result.
// Failures pass through untouched. fn runs inline on the goroutine that
// completes the upstream future, so it must be non-blocking and cheap
// (deserialization excepted). Cancelling the derived future cancels the
// upstream call.
func Transform[T, U any](f *Future[T], fn func(T) (U, error)) *Future[U] {
	out := &Future[U]{done: make(chan struct{}), cancel: f.cancel}
	f.whenDone(func(value T, err error) {
		if err != nil {
			var zero U
			out.complete(zero, err)
			return
		}
		out.complete(fn(value))
	})
	return out
}

func (f *Future[T]) complete(value T, err error) {
	f.mu.Lock()
	if f.completed {
		f.mu.Unlock()
		return
	}
	f.completed = true
	f.value = value
	f.err = err
	callbacks := f.callbacks
	f.callbacks = nil
	close(f.done)
	f.mu.Unlock()
	for _, cb := range callbacks {
		cb(value, err)
	}
}

func (f *Future[T]) whenDone(cb func(T, error)) {
	f.mu.Lock()
	if !f.completed {
		f.callbacks = append(f.callbacks, cb)
		f.mu.Unlock()
		return
	}
	value, err := f.value, f.err
	f.mu.Unlock()
	cb(value, err)
}
