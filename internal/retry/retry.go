// Package retry provides bounded retry with exponential backoff for
// arbitrary operations. It knows nothing about the answering domain:
// callers hand it an operation, an attempt budget, and an optional
// observer, and get back either the operation's result or the last
// error unchanged.
package retry

import (
	"context"
	"math"
	"time"
)

// Config controls the attempt budget and backoff curve.
type Config struct {
	// MaxAttempts is the total number of invocations, including the
	// first. Must be >= 1; values below 1 are treated as 1.
	MaxAttempts int

	// InitialWait is the delay before the second attempt.
	InitialWait time.Duration

	// MaxWait caps the computed delay.
	MaxWait time.Duration

	// Multiplier grows the delay between successive attempts.
	Multiplier float64
}

// DefaultConfig returns the standard pipeline budget: three attempts
// with a 500ms base doubling up to an 8s ceiling.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		InitialWait: 500 * time.Millisecond,
		MaxWait:     8 * time.Second,
		Multiplier:  2.0,
	}
}

// Backoff computes the delay that follows the given failed attempt
// (1-based). It is a pure function of the attempt number: delays are
// non-decreasing and never exceed MaxWait.
func (c Config) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	wait := float64(c.InitialWait) * math.Pow(c.Multiplier, float64(attempt-1))
	if wait > float64(c.MaxWait) {
		wait = float64(c.MaxWait)
	}
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}

// Attempt describes one failed invocation, handed to the retry
// observer before the inter-attempt wait. It exists only for the
// duration of the orchestrated call.
type Attempt struct {
	// Number is the 1-based index of the attempt that just failed.
	Number int

	// Err is the error that triggered the retry.
	Err error

	// Wait is the computed delay before the next attempt.
	Wait time.Duration
}

// Do runs op until it succeeds or the attempt budget is exhausted.
//
// The first attempt runs immediately. After each failure short of the
// budget, onRetry (if non-nil) is invoked once, then Do sleeps for the
// backoff delay before the next attempt. When the final attempt fails,
// its error is returned unchanged. onRetry is observability only: a
// panic inside it is swallowed and never alters control flow.
//
// Context cancellation aborts the inter-attempt wait and returns
// ctx.Err().
func Do[T any](ctx context.Context, cfg Config, op func(context.Context) (T, error), onRetry func(Attempt)) (T, error) {
	var zero T
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == maxAttempts {
			break
		}

		wait := cfg.Backoff(attempt)
		notify(onRetry, Attempt{Number: attempt, Err: err, Wait: wait})

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait):
		}
	}

	return zero, lastErr
}

// notify invokes the observer, shielding the retry loop from panics.
func notify(onRetry func(Attempt), a Attempt) {
	if onRetry == nil {
		return
	}
	defer func() { _ = recover() }()
	onRetry(a)
}
