// Package retry runs an operation under capped exponential backoff
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// DefaultMax caps a single wait when a Policy leaves Max unset
const DefaultMax = 5 * time.Second

// Policy bounds a retry loop
type Policy struct {
	Attempts int           // total tries including the first; <1 means one try
	Base     time.Duration // first wait, doubled per retry
	Max      time.Duration // cap on one wait
	Jitter   float64       // randomization factor in [0,1); 0 waits exactly
}

// Permanent stops the loop and hands err back unwrapped
func Permanent(err error) error { return backoff.Permanent(err) }

// Do calls op until it succeeds, returns a Permanent error, runs out of
// attempts or ctx ends; notify sees every failure that will be retried
// a cancelled ctx returns ctx.Err(), exhaustion returns op's last error
func Do(ctx context.Context, p Policy, op func() error, notify func(err error, wait time.Duration)) error {
	return backoff.RetryNotify(op, p.backOff(ctx), notify)
}

func (p Policy) backOff(ctx context.Context) backoff.BackOff {
	if p.Max <= 0 {
		p.Max = DefaultMax
	}
	b := &backoff.ExponentialBackOff{
		InitialInterval:     min(p.Base, p.Max),
		RandomizationFactor: p.Jitter,
		Multiplier:          2,
		MaxInterval:         p.Max,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
	b.Reset()
	retries := max(p.Attempts-1, 0)
	return backoff.WithMaxRetries(backoff.WithContext(b, ctx), uint64(retries))
}
