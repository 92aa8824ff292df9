// Package ratelimit provides request rate limiting for chat message sends.
package ratelimit

// RateLimitConfig defines per-window limits. A zero limit disables the window.
type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

// RateLimiter checks whether a keyed action is allowed under the configured limits.
type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
}

// NoopRateLimiter allows everything. Used when redis is not configured.
type NoopRateLimiter struct{}

func NewNoopRateLimiter() RateLimiter {
	return &NoopRateLimiter{}
}

func (l *NoopRateLimiter) Allow(key string, config RateLimitConfig) (bool, error) {
	return true, nil
}
