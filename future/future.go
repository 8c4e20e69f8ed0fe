package future

import "context"

// Future is a single-value asynchronous result. It settles exactly once
// with a value or an error, never both.
type Future[T any] struct {
	done   chan struct{}
	value  T
	err    error
	cancel context.CancelFunc
}

// Run starts fn on a new goroutine with a context derived from ctx and
// returns a future for its result. Cancelling either the parent context or
// the future itself cancels the derived context.
func Run[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	runCtx, cancel := context.WithCancel(ctx)
	f := &Future[T]{
		done:   make(chan struct{}),
		cancel: cancel,
	}
	go func() {
		defer cancel()
		f.value, f.err = fn(runCtx)
		close(f.done)
	}()
	return f
}

// Resolved returns an already-settled future holding v.
func Resolved[T any](v T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), value: v, cancel: func() {}}
	close(f.done)
	return f
}

// Rejected returns an already-settled future holding err.
func Rejected[T any](err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), err: err, cancel: func() {}}
	close(f.done)
	return f
}

// Await blocks until the future settles or ctx is done, whichever comes
// first. When ctx wins, the future keeps running and Await returns the
// zero value and ctx.Err().
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Cancel aborts a pending computation by cancelling its derived context.
// It is safe to call multiple times and after settlement.
func (f *Future[T]) Cancel() {
	f.cancel()
}

// Done returns a channel closed when the future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
