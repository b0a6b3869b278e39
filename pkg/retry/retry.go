// Package retry provides a shared retry policy so call sites keep
// consistent attempt and backoff semantics.
package retry

import (
	"context"
	"time"
)

// Backoff returns the delay to wait after a failed attempt (1-based).
type Backoff func(attempt int) time.Duration

// Linear grows the delay by base per attempt: base, 2*base, 3*base...
func Linear(base time.Duration) Backoff {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * base
	}
}

// Constant waits the same delay after every failed attempt.
func Constant(d time.Duration) Backoff {
	return func(int) time.Duration {
		return d
	}
}

// Policy bounds retries of an operation.
type Policy struct {
	MaxAttempts int
	Backoff     Backoff
}

// Do runs fn until it succeeds, the attempts are exhausted, or the context
// is canceled. The last attempt's error is returned as-is so callers can
// inspect it with errors.Is/As.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		var wait time.Duration
		if p.Backoff != nil {
			wait = p.Backoff(attempt)
		}
		if wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}

	return lastErr
}
