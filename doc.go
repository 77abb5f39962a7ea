// Package waitfor provides simple asynchronous timing utilities: a fixed
// delay, a randomized delay, and a condition-polling wait with timeout.
//
// The package is aimed at scripts, tests and automation code that need to
// pause, stagger work, or block until some externally driven condition
// becomes true. It performs no I/O of its own; it only orchestrates
// caller-supplied predicates and the runtime's timers.
//
// # Usage
//
//	import (
//	    "context"
//	    "time"
//
//	    "github.com/dmitrymomot/waitfor"
//	)
//
//	func main() {
//	    ctx := context.Background()
//
//	    // Fixed delay.
//	    if err := waitfor.Wait(ctx, 500*time.Millisecond); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Randomized delay, uniform in [100ms, 300ms].
//	    if err := waitfor.WaitRandom(ctx, 100*time.Millisecond, 300*time.Millisecond); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Poll until a condition holds.
//	    err := waitfor.WaitUntil(ctx, waitfor.Sync(server.Ready),
//	        waitfor.WithInterval(50*time.Millisecond),
//	        waitfor.WithTimeout(5*time.Second),
//	    )
//	    if waitfor.IsTimeoutError(err) {
//	        log.Fatal("server never became ready")
//	    }
//	}
//
// # Polling
//
// WaitUntil checks the predicate once immediately, then once per interval
// until it returns true or the timeout (measured from the first check)
// elapses. Checks never overlap: at most one predicate evaluation and one
// pending timer exist per call. Predicates come in two forms: a plain
// boolean check lifted with Sync, or a Predicate function that may itself
// block and fail:
//
//	err := waitfor.WaitUntil(ctx, func(ctx context.Context) (bool, error) {
//	    n, err := store.CountReady(ctx)
//	    if err != nil {
//	        return false, err // propagated verbatim to the caller
//	    }
//	    return n >= 5, nil
//	})
//
// # Error Handling
//
// Three failure kinds are distinguishable after the fact. Malformed input
// (negative durations, inverted bounds, nil predicate) is reported before any
// waiting begins and matches ErrInvalidInput; an expired poll returns a
// *TimeoutError carrying the configured timeout; an error returned by the
// predicate itself is passed through unwrapped. Cancelling the context
// surfaces the context's own error:
//
//	err := waitfor.WaitUntil(ctx, pred, waitfor.WithTimeout(time.Second))
//	switch {
//	case err == nil:
//	    // condition met
//	case waitfor.IsTimeoutError(err):
//	    // condition never became true
//	case waitfor.IsValidationError(err):
//	    // bad arguments
//	default:
//	    // the predicate's own error, or ctx.Err()
//	}
//
// # Deferred completion
//
// Each operation has an Async variant returning a *Future, for callers that
// want to start a wait and collect it later. Validation still happens
// synchronously; an invalid call yields an already-failed Future:
//
//	future := waitfor.WaitUntilAsync(ctx, waitfor.Sync(cache.Warm))
//	// do other work …
//	if err := future.Await(); err != nil {
//	    log.Fatal(err)
//	}
//
// Concurrent calls are fully independent: every call owns its own start
// timestamp and timer, and no state is shared or persisted between calls.
package waitfor
