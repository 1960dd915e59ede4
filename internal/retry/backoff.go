// Package retry provides a small bounded-retry policy with
// exponential backoff and jitter, independent of the operation it
// wraps.
package retry

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"time"
)

// DelayFunc returns the wait before the next attempt. attempt is the
// 1-based number of the attempt that just failed.
type DelayFunc func(attempt int) time.Duration

// Policy retries an operation a fixed number of total attempts,
// waiting Delay between failures. A nil Delay retries immediately.
type Policy struct {
	MaxAttempts int
	Delay       DelayFunc
	Logger      *slog.Logger
}

// ExponentialDelay builds a DelayFunc where the wait grows as
// base * multiplier^(attempt-1), capped at max, with up to ±10% random
// jitter when enabled.
func ExponentialDelay(base, max time.Duration, multiplier float64, jitter bool) DelayFunc {
	return func(attempt int) time.Duration {
		if attempt < 1 {
			attempt = 1
		}
		delay := float64(base) * math.Pow(multiplier, float64(attempt-1))
		if delay > float64(max) {
			delay = float64(max)
		}

		if jitter {
			jitterRange := delay * 0.1
			delay += (rand.Float64() - 0.5) * 2 * jitterRange
			if delay < 0 {
				delay = float64(base)
			}
		}

		return time.Duration(delay)
	}
}

// Do runs op until it succeeds, the attempt budget is exhausted, or
// the context is done. It returns nil on success, the context error on
// cancellation, and otherwise the last error op returned. Both the
// backoff wait and the gap before each attempt honor ctx.
func (p Policy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = op(ctx)
		if lastErr == nil {
			if attempt > 1 && p.Logger != nil {
				p.Logger.Info("operation succeeded after retrying", "attempt", attempt)
			}
			return nil
		}

		if attempt == attempts {
			break
		}

		var delay time.Duration
		if p.Delay != nil {
			delay = p.Delay(attempt)
		}
		if p.Logger != nil {
			p.Logger.Warn("operation failed, backing off",
				"attempt", attempt,
				"max_attempts", attempts,
				"delay", delay,
				"error", lastErr,
			)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	if p.Logger != nil {
		p.Logger.Error("operation failed after all attempts", "attempts", attempts, "error", lastErr)
	}
	return lastErr
}
