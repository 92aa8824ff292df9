package realtime

import (
	"context"
	"time"
)

// DefaultReconnectDelays is the delay table applied between reconnection
// attempts. The first attempt retries immediately; once the table is
// exhausted the last entry repeats.
var DefaultReconnectDelays = []time.Duration{
	0,
	2 * time.Second,
	5 * time.Second,
	10 * time.Second,
	30 * time.Second,
}

// ReconnectPolicy yields the wait before each reconnection attempt from a
// fixed delay table.
type ReconnectPolicy struct {
	delays []time.Duration
	sleep  func(ctx context.Context, d time.Duration) error
}

// PolicyOption configures a ReconnectPolicy.
type PolicyOption func(*ReconnectPolicy)

// WithSleepFunc overrides the wait implementation. Used in tests.
func WithSleepFunc(sleep func(ctx context.Context, d time.Duration) error) PolicyOption {
	return func(p *ReconnectPolicy) {
		p.sleep = sleep
	}
}

// NewReconnectPolicy creates a policy over the given delay table. A nil or
// empty table falls back to DefaultReconnectDelays.
func NewReconnectPolicy(delays []time.Duration, opts ...PolicyOption) *ReconnectPolicy {
	if len(delays) == 0 {
		delays = DefaultReconnectDelays
	}
	p := &ReconnectPolicy{
		delays: delays,
		sleep:  sleepWithContext,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Delay returns the wait before the given attempt. Attempts are zero-based;
// attempts past the end of the table reuse the last entry.
func (p *ReconnectPolicy) Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if attempt >= len(p.delays) {
		attempt = len(p.delays) - 1
	}
	return p.delays[attempt]
}

// Wait blocks for the attempt's delay, returning early with ctx.Err() if the
// context is canceled mid-wait.
func (p *ReconnectPolicy) Wait(ctx context.Context, attempt int) error {
	return p.sleep(ctx, p.Delay(attempt))
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
