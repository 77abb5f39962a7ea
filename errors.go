package waitfor

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput is the base error for all input validation failures.
// Every validation sentinel below wraps it, so callers can match either the
// broad kind (errors.Is(err, waitfor.ErrInvalidInput)) or the specific cause.
var ErrInvalidInput = errors.New("waitfor: invalid input")

var (
	// ErrNegativeDuration is returned when a delay duration is negative.
	ErrNegativeDuration = fmt.Errorf("%w: duration must be non-negative", ErrInvalidInput)

	// ErrInvalidRange is returned by WaitRandom when the minimum delay exceeds the maximum.
	ErrInvalidRange = fmt.Errorf("%w: minimum delay exceeds maximum delay", ErrInvalidInput)

	// ErrNilPredicate is returned by WaitUntil when the predicate is nil.
	ErrNilPredicate = fmt.Errorf("%w: predicate must not be nil", ErrInvalidInput)

	// ErrNegativeInterval is returned by WaitUntil when the poll interval is negative.
	ErrNegativeInterval = fmt.Errorf("%w: poll interval must be non-negative", ErrInvalidInput)

	// ErrNegativeTimeout is returned by WaitUntil when the timeout is negative.
	ErrNegativeTimeout = fmt.Errorf("%w: timeout must be non-negative", ErrInvalidInput)
)

// ErrAwaitTimeout is returned by Future.AwaitWithTimeout when the caller's
// await window elapses before the underlying wait completes. It is distinct
// from TimeoutError, which reports that the polled condition itself timed out.
var ErrAwaitTimeout = errors.New("waitfor: await timed out before the wait completed")

// TimeoutError indicates the polled condition was not met within the
// configured timeout. It is returned only by WaitUntil and carries the
// timeout that was exceeded.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("condition not met within %dms timeout", e.Timeout.Milliseconds())
}

// IsTimeoutError reports whether err is, or wraps, a *TimeoutError.
func IsTimeoutError(err error) bool {
	var e *TimeoutError
	return errors.As(err, &e)
}

// IsValidationError reports whether err is, or wraps, an input validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
