package waitfor

import (
	"context"
	"time"
)

// Future represents the eventual completion of a wait started by one of the
// Async variants. Completion is published by closing an internal channel, so
// any number of goroutines may await the same Future.
type Future struct {
	err  error
	done chan struct{}
}

// Await blocks until the wait completes and returns its outcome.
func (f *Future) Await() error {
	<-f.done
	return f.err
}

// AwaitWithTimeout blocks until the wait completes or the given timeout
// elapses. If the timeout fires first, it returns ErrAwaitTimeout; the
// underlying wait keeps running and can still be awaited again.
func (f *Future) AwaitWithTimeout(timeout time.Duration) error {
	select {
	case <-f.done:
		return f.err
	case <-time.After(timeout):
		return ErrAwaitTimeout
	}
}

// IsComplete reports, without blocking, whether the wait has completed.
func (f *Future) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed when the wait completes, for use in
// the caller's own select statements.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// spawn runs fn in its own goroutine and returns a Future for its outcome.
func spawn(fn func() error) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.err = fn()
	}()
	return f
}

// completed returns an already-settled Future. Input validation failures are
// delivered this way so they are detected before any goroutine or timer
// exists, same as in the blocking API.
func completed(err error) *Future {
	f := &Future{err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// WaitAsync starts Wait in the background and returns a Future for it.
// Validation happens synchronously: a negative d yields an already-failed
// Future without starting anything.
func WaitAsync(ctx context.Context, d time.Duration) *Future {
	if d < 0 {
		return completed(ErrNegativeDuration)
	}
	return spawn(func() error {
		return Wait(ctx, d)
	})
}

// WaitRandomAsync starts WaitRandom in the background and returns a Future
// for it. Validation happens synchronously, before the goroutine starts.
func WaitRandomAsync(ctx context.Context, minDelay, maxDelay time.Duration) *Future {
	if minDelay < 0 || maxDelay < 0 {
		return completed(ErrNegativeDuration)
	}
	if minDelay > maxDelay {
		return completed(ErrInvalidRange)
	}
	return spawn(func() error {
		return WaitRandom(ctx, minDelay, maxDelay)
	})
}

// WaitUntilAsync starts WaitUntil in the background and returns a Future for
// it. Predicate and option validation happens synchronously, before the
// goroutine starts.
func WaitUntilAsync(ctx context.Context, predicate Predicate, opts ...Option) *Future {
	if predicate == nil {
		return completed(ErrNilPredicate)
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return completed(err)
	}
	return spawn(func() error {
		return pollUntil(ctx, predicate, o)
	})
}
