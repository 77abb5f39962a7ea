package waitfor

import (
	"context"
	"time"
)

// Predicate reports whether the awaited condition holds. A predicate may
// block (polling a database, probing an endpoint via the caller's own client)
// and may fail; any error it returns is propagated to the WaitUntil caller
// verbatim and ends the poll.
type Predicate func(ctx context.Context) (bool, error)

// Sync adapts a plain synchronous boolean check into a Predicate.
func Sync(fn func() bool) Predicate {
	return func(context.Context) (bool, error) {
		return fn(), nil
	}
}

// WaitUntil repeatedly evaluates predicate until it returns true, failing
// with a *TimeoutError if the condition is not met within the configured
// timeout (measured from the first check). The predicate is checked once
// immediately, then once per interval; checks never overlap, and at most one
// predicate evaluation and one pending timer exist per call.
//
// The timeout is evaluated after a check returns false, not during the check,
// so a slow predicate can overshoot the nominal deadline by its own latency.
// A zero timeout allows exactly one check. Cancelling ctx between checks
// aborts the poll with ctx.Err().
func WaitUntil(ctx context.Context, predicate Predicate, opts ...Option) error {
	if predicate == nil {
		return ErrNilPredicate
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return err
	}
	return pollUntil(ctx, predicate, o)
}

// pollUntil is the poll loop proper, entered only with validated options.
// It is an explicit iteration with a single reusable timer rather than a
// chain of rescheduled callbacks, so arbitrarily long polls cost nothing in
// stack or closure growth.
func pollUntil(ctx context.Context, predicate Predicate, o options) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		ok, err := predicate(ctx)
		if err != nil {
			// The predicate's own failure, not ours: no wrapping, no retry.
			return err
		}
		if ok {
			return nil
		}

		if time.Since(start) >= o.timeout {
			return &TimeoutError{Timeout: o.timeout}
		}

		if timer == nil {
			timer = time.NewTimer(o.interval)
		} else {
			timer.Reset(o.interval)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}
