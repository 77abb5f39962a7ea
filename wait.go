package waitfor

import (
	"context"
	"math/rand"
	"time"
)

// Wait blocks until d has elapsed or ctx is cancelled, whichever comes first.
// It returns ErrNegativeDuration for a negative d, and ctx.Err() if the
// context is cancelled before the delay completes.
func Wait(ctx context.Context, d time.Duration) error {
	if d < 0 {
		return ErrNegativeDuration
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// WaitRandom blocks for a uniformly distributed duration in the inclusive
// range [minDelay, maxDelay], delegating the actual delay to Wait.
//
// Validation order: both bounds must be non-negative, then minDelay must not
// exceed maxDelay. Each call draws an independent random duration; when the
// bounds are equal the delay is exactly that value.
func WaitRandom(ctx context.Context, minDelay, maxDelay time.Duration) error {
	if minDelay < 0 || maxDelay < 0 {
		return ErrNegativeDuration
	}
	if minDelay > maxDelay {
		return ErrInvalidRange
	}

	d := minDelay
	if span := maxDelay - minDelay; span > 0 {
		d += time.Duration(rand.Int63n(int64(span) + 1))
	}

	return Wait(ctx, d)
}
