package waitfor

import "time"

const (
	// DefaultInterval is the delay between predicate checks when WithInterval is not given.
	DefaultInterval = 200 * time.Millisecond

	// DefaultTimeout is the overall polling deadline when WithTimeout is not given.
	DefaultTimeout = 30 * time.Second
)

// Option is a functional option for configuring WaitUntil.
type Option func(*options)

type options struct {
	interval time.Duration
	timeout  time.Duration
}

// WithInterval sets the delay between predicate checks.
// A zero interval schedules back-to-back checks, still yielding between them.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		o.interval = d
	}
}

// WithTimeout sets the overall polling deadline, measured from the first check.
// A zero timeout allows the predicate exactly one check.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// resolveOptions applies defaults, then options, then validates the snapshot.
// Setters record values as given; rejection of negatives happens here so the
// caller gets a validation error rather than a silently substituted default.
func resolveOptions(opts []Option) (options, error) {
	o := options{
		interval: DefaultInterval,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.interval < 0 {
		return options{}, ErrNegativeInterval
	}
	if o.timeout < 0 {
		return options{}, ErrNegativeTimeout
	}
	return o, nil
}
