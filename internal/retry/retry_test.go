package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

// failNTimes returns an operation that fails n times, then succeeds,
// counting invocations in calls.
func failNTimes(n int, calls *int) func(context.Context) (string, error) {
	return func(context.Context) (string, error) {
		*calls++
		if *calls <= n {
			return "", errors.New("transient")
		}
		return "ok", nil
	}
}

func TestDo_SucceedsOnFirstAttempt(t *testing.T) {
	calls := 0
	retries := 0

	got, err := Do(context.Background(), testConfig(), failNTimes(0, &calls), func(Attempt) { retries++ })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" {
		t.Fatalf("unexpected result: %q", got)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if retries != 0 {
		t.Fatalf("expected 0 retry notifications, got %d", retries)
	}
}

func TestDo_TransientThenSuccess(t *testing.T) {
	calls := 0
	var seen []Attempt

	got, err := Do(context.Background(), testConfig(), failNTimes(2, &calls), func(a Attempt) {
		seen = append(seen, a)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" {
		t.Fatalf("unexpected result: %q", got)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
	if len(seen) != 2 {
		t.Fatalf("expected 2 retry notifications, got %d", len(seen))
	}
	if seen[0].Number != 1 || seen[1].Number != 2 {
		t.Fatalf("unexpected attempt numbers: %d, %d", seen[0].Number, seen[1].Number)
	}
	if seen[0].Err == nil || seen[1].Err == nil {
		t.Fatal("expected errors attached to retry notifications")
	}
}

func TestDo_AllAttemptsFail(t *testing.T) {
	final := errors.New("still down")
	calls := 0
	retries := 0

	_, err := Do(context.Background(), testConfig(), func(context.Context) (int, error) {
		calls++
		return 0, final
	}, func(Attempt) { retries++ })

	// The final error is propagated unchanged, not wrapped.
	if err != final {
		t.Fatalf("expected the final error unchanged, got: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected exactly 3 calls, got %d", calls)
	}
	if retries != 2 {
		t.Fatalf("expected 2 retry notifications, got %d", retries)
	}
}

func TestDo_SingleAttemptBudget(t *testing.T) {
	cfg := testConfig()
	cfg.MaxAttempts = 1
	calls := 0
	retries := 0

	_, err := Do(context.Background(), cfg, func(context.Context) (int, error) {
		calls++
		return 0, errors.New("down")
	}, func(Attempt) { retries++ })

	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if retries != 0 {
		t.Fatalf("expected 0 retry notifications, got %d", retries)
	}
}

func TestDo_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := Do(ctx, testConfig(), func(context.Context) (int, error) {
		calls++
		return 0, errors.New("down")
	}, nil)

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call before cancellation, got %d", calls)
	}
}

func TestDo_ObserverPanicIgnored(t *testing.T) {
	calls := 0

	got, err := Do(context.Background(), testConfig(), failNTimes(1, &calls), func(Attempt) {
		panic("observer blew up")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" {
		t.Fatalf("unexpected result: %q", got)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}

func TestBackoff_MonotonicAndCapped(t *testing.T) {
	cfg := Config{
		MaxAttempts: 10,
		InitialWait: 500 * time.Millisecond,
		MaxWait:     8 * time.Second,
		Multiplier:  2.0,
	}

	prev := time.Duration(0)
	for attempt := 1; attempt <= 10; attempt++ {
		wait := cfg.Backoff(attempt)
		if wait < prev {
			t.Fatalf("backoff decreased at attempt %d: %v < %v", attempt, wait, prev)
		}
		if wait > cfg.MaxWait {
			t.Fatalf("backoff exceeded ceiling at attempt %d: %v", attempt, wait)
		}
		prev = wait
	}

	if got := cfg.Backoff(1); got != 500*time.Millisecond {
		t.Fatalf("expected 500ms for attempt 1, got %v", got)
	}
	if got := cfg.Backoff(2); got != 1*time.Second {
		t.Fatalf("expected 1s for attempt 2, got %v", got)
	}
	if got := cfg.Backoff(6); got != 8*time.Second {
		t.Fatalf("expected the 8s cap for attempt 6, got %v", got)
	}
}

func TestBackoff_ClampsAttemptBelowOne(t *testing.T) {
	cfg := testConfig()
	if got := cfg.Backoff(0); got != cfg.Backoff(1) {
		t.Fatalf("expected attempt 0 to clamp to attempt 1, got %v", got)
	}
}
