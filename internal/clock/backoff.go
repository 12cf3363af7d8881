package clock

import (
	"context"
	"time"
)

// Backoff yields exponentially growing delays between Min and Max. The zero value retries
// after one second and caps at one minute.
type Backoff struct {
	Min time.Duration
	Max time.Duration

	attempt int
}

// Next returns the delay for the next retry and advances the attempt counter.
func (b *Backoff) Next() time.Duration {
	lo, hi := b.Min, b.Max
	if lo <= 0 {
		lo = time.Second
	}
	if hi < lo {
		hi = max(lo, time.Minute)
	}

	d := lo
	for i := 0; i < b.attempt && d < hi; i++ {
		d *= 2
	}
	b.attempt++
	return min(d, hi)
}

// Reset starts the sequence over after a success.
func (b *Backoff) Reset() {
	b.attempt = 0
}

// Wait sleeps for the next delay unless ctx is done first.
func (b *Backoff) Wait(ctx context.Context) error {
	return SleepWithContext(ctx, b.Next())
}
