package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/priyankac/axon/internal/gateway"
	"github.com/priyankac/axon/internal/retry"
)

func testConfig() Config {
	return Config{
		Retry: retry.Config{
			MaxAttempts: 3,
			InitialWait: 1 * time.Millisecond,
			MaxWait:     10 * time.Millisecond,
			Multiplier:  2.0,
		},
		Level:      gateway.LevelBeginner,
		MaxHistory: 10,
	}
}

func goodAnswer() *gateway.Answer {
	return &gateway.Answer{
		Text: "X",
		Validation: gateway.Validation{
			IsValid:    true,
			Confidence: 0.95,
			Sources:    []string{"owmeta"},
		},
		Hallucination: false,
	}
}

// stubClient runs an arbitrary function per call, for tests that need
// to observe session state mid-flight.
type stubClient struct {
	fn func(ctx context.Context, req *gateway.Request) (*gateway.Answer, error)
}

func (s *stubClient) Ask(ctx context.Context, req *gateway.Request) (*gateway.Answer, error) {
	return s.fn(ctx, req)
}

func (s *stubClient) Name() string { return "stub" }

func TestAskQuestion_Success(t *testing.T) {
	mock := gateway.NewMockClient(gateway.MockResult{Answer: goodAnswer()})
	var notices []Notice
	cfg := testConfig()
	cfg.Notifier = func(n Notice) { notices = append(notices, n) }
	s := NewSession(mock, cfg)

	answer := s.AskQuestion(context.Background(), "What does AVA do?", nil)

	if answer == nil {
		t.Fatal("expected an answer")
	}
	if answer.Text != "X" || answer.Validation.Confidence != 0.95 {
		t.Fatalf("expected the remote payload verbatim, got: %+v", answer)
	}
	if answer.Validation.Sources[0] != "owmeta" {
		t.Fatalf("unexpected sources: %v", answer.Validation.Sources)
	}
	if s.Err() != "" {
		t.Fatalf("expected no diagnostic error, got %q", s.Err())
	}
	if s.LastAnswer() != answer {
		t.Fatal("expected LastAnswer to hold the returned answer")
	}
	if s.IsLoading() {
		t.Fatal("expected loading to be false after resolution")
	}
	if len(notices) != 0 {
		t.Fatalf("expected no notices on clean success, got %d", len(notices))
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 upstream call, got %d", mock.CallCount())
	}
}

func TestAskQuestion_RetriesThenSucceeds(t *testing.T) {
	mock := gateway.NewMockClient(
		gateway.MockResult{Err: &gateway.ErrGatewayUnavailable{Err: errors.New("down")}},
		gateway.MockResult{Err: &gateway.ErrGatewayUnavailable{Err: errors.New("down")}},
		gateway.MockResult{Answer: goodAnswer()},
	)
	var notices []Notice
	cfg := testConfig()
	cfg.Notifier = func(n Notice) { notices = append(notices, n) }
	s := NewSession(mock, cfg)

	answer := s.AskQuestion(context.Background(), "q", nil)

	if answer.Text != "X" {
		t.Fatalf("expected the attempt-3 result, got: %q", answer.Text)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 upstream calls, got %d", mock.CallCount())
	}
	if len(notices) != 2 {
		t.Fatalf("expected 2 retry notices, got %d", len(notices))
	}
	for _, n := range notices {
		if n.Kind != NoticeRetry {
			t.Fatalf("unexpected notice kind: %q", n.Kind)
		}
	}
	if s.Err() != "" {
		t.Fatalf("expected no diagnostic error after recovery, got %q", s.Err())
	}
}

func TestAskQuestion_ExhaustionFallsBack(t *testing.T) {
	mock := gateway.NewMockClient() // Empty queue: every attempt fails.
	s := NewSession(mock, testConfig())

	answer := s.AskQuestion(context.Background(), "q", nil)

	if mock.CallCount() != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", mock.CallCount())
	}
	assertFallback(t, answer)
	if s.Err() == "" {
		t.Fatal("expected the triggering error to be recorded")
	}
	if s.LastAnswer() != answer {
		t.Fatal("expected LastAnswer to hold the fallback")
	}
}

func TestAskQuestion_FallbackDeterminism(t *testing.T) {
	s1 := NewSession(gateway.NewMockClient(), testConfig())
	s2 := NewSession(gateway.NewMockClient(), testConfig())

	a := s1.AskQuestion(context.Background(), "first question", nil)
	b := s2.AskQuestion(context.Background(), "completely different question", nil)

	if a.Text != b.Text {
		t.Fatal("expected identical fallback text regardless of question")
	}
	assertFallback(t, a)
	assertFallback(t, b)
}

func TestAskQuestion_RateLimitRecordedInError(t *testing.T) {
	rateLimited := gateway.MockResult{Err: &gateway.ErrRateLimit{Err: errors.New("status 429")}}
	mock := gateway.NewMockClient(rateLimited, rateLimited, rateLimited)
	s := NewSession(mock, testConfig())

	answer := s.AskQuestion(context.Background(), "q", nil)

	assertFallback(t, answer)
	if mock.CallCount() != 3 {
		t.Fatalf("expected 429s to be retried, got %d calls", mock.CallCount())
	}
	if !strings.Contains(s.Err(), "429") {
		t.Fatalf("expected diagnostic error to mention 429, got %q", s.Err())
	}
}

func TestAskQuestion_MalformedPayloadFallsBack(t *testing.T) {
	bad := gateway.MockResult{Err: &gateway.ErrInvalidAnswer{Err: errors.New("schema validation failed")}}
	mock := gateway.NewMockClient(bad, bad, bad)
	s := NewSession(mock, testConfig())

	answer := s.AskQuestion(context.Background(), "q", nil)

	assertFallback(t, answer)
	if !strings.Contains(s.Err(), "invalid answer payload") {
		t.Fatalf("expected diagnostic for the malformed payload, got %q", s.Err())
	}
}

func TestAskQuestion_HallucinationPassThrough(t *testing.T) {
	flagged := goodAnswer()
	flagged.Text = "The worm has exactly 400 neurons."
	flagged.Hallucination = true

	mock := gateway.NewMockClient(gateway.MockResult{Answer: flagged})
	var notices []Notice
	cfg := testConfig()
	cfg.Notifier = func(n Notice) { notices = append(notices, n) }
	s := NewSession(mock, cfg)

	answer := s.AskQuestion(context.Background(), "how many neurons?", nil)

	if answer.Text != "The worm has exactly 400 neurons." {
		t.Fatalf("expected the flagged answer preserved verbatim, got %q", answer.Text)
	}
	if !answer.Hallucination {
		t.Fatal("expected hallucination flag set")
	}
	if s.Err() != "" {
		t.Fatalf("hallucination is not an error, got %q", s.Err())
	}

	var reviews int
	for _, n := range notices {
		if n.Kind == NoticeReview {
			reviews++
		}
	}
	if reviews != 1 {
		t.Fatalf("expected exactly 1 review notice, got %d", reviews)
	}
}

func TestAskQuestion_NeverFails(t *testing.T) {
	// A grab bag of failure injections; every one must still produce a
	// well-formed answer.
	injections := [][]gateway.MockResult{
		{}, // empty queue: unavailable on every attempt
		{{Err: errors.New("raw transport error")}},
		{{Err: &gateway.ErrStatus{StatusCode: 403, Body: "quota exceeded"}}},
		{{Err: &gateway.ErrInvalidAnswer{Err: errors.New("bad shape")}}},
		{
			{Err: &gateway.ErrRateLimit{Err: errors.New("429")}},
			{Err: &gateway.ErrGatewayUnavailable{Err: errors.New("down")}},
			{Err: errors.New("something else entirely")},
		},
	}

	for i, results := range injections {
		s := NewSession(gateway.NewMockClient(results...), testConfig())
		answer := s.AskQuestion(context.Background(), "q", nil)
		if answer == nil {
			t.Fatalf("injection %d: expected an answer", i)
		}
		if answer.Text == "" {
			t.Fatalf("injection %d: expected non-empty answer text", i)
		}
	}
}

func TestAskQuestion_LoadingTransitions(t *testing.T) {
	var loadingDuringCall bool
	var s *Session
	client := &stubClient{fn: func(context.Context, *gateway.Request) (*gateway.Answer, error) {
		loadingDuringCall = s.IsLoading()
		return goodAnswer(), nil
	}}
	s = NewSession(client, testConfig())

	if s.IsLoading() {
		t.Fatal("expected loading false before the call")
	}
	s.AskQuestion(context.Background(), "q", nil)
	if !loadingDuringCall {
		t.Fatal("expected loading true while the call was in flight")
	}
	if s.IsLoading() {
		t.Fatal("expected loading false after resolution")
	}
}

func TestAskQuestion_HistoryCarriesPriorQuestions(t *testing.T) {
	mock := gateway.NewMockClient(
		gateway.MockResult{Answer: goodAnswer()},
		gateway.MockResult{Answer: goodAnswer()},
	)
	s := NewSession(mock, testConfig())

	s.AskQuestion(context.Background(), "first", nil)
	s.AskQuestion(context.Background(), "second", nil)

	if len(mock.Calls) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(mock.Calls))
	}
	if len(mock.Calls[0].History) != 0 {
		t.Fatalf("expected empty history on the first request, got %v", mock.Calls[0].History)
	}
	if len(mock.Calls[1].History) != 1 || mock.Calls[1].History[0] != "first" {
		t.Fatalf("expected the prior question in history, got %v", mock.Calls[1].History)
	}
}

func TestAskQuestion_NotifierPanicIgnored(t *testing.T) {
	mock := gateway.NewMockClient(
		gateway.MockResult{Err: &gateway.ErrGatewayUnavailable{Err: errors.New("down")}},
		gateway.MockResult{Answer: goodAnswer()},
	)
	cfg := testConfig()
	cfg.Notifier = func(Notice) { panic("toast renderer crashed") }
	s := NewSession(mock, cfg)

	answer := s.AskQuestion(context.Background(), "q", nil)
	if answer.Text != "X" {
		t.Fatalf("expected the pipeline to survive the notifier panic, got %q", answer.Text)
	}
}

func TestAskQuestion_ConcurrentLastWriteWins(t *testing.T) {
	// Two calls in flight at once; the session must end in a consistent
	// resolved state without synchronizing them.
	release := make(chan struct{})
	client := &stubClient{fn: func(context.Context, *gateway.Request) (*gateway.Answer, error) {
		<-release
		return goodAnswer(), nil
	}}
	s := NewSession(client, testConfig())

	done := make(chan struct{}, 2)
	for i := 0; i < 2; i++ {
		go func() {
			s.AskQuestion(context.Background(), "q", nil)
			done <- struct{}{}
		}()
	}
	close(release)
	<-done
	<-done

	if s.IsLoading() {
		t.Fatal("expected loading false after both calls resolved")
	}
	if s.LastAnswer() == nil || s.Err() != "" {
		t.Fatalf("unexpected final state: answer=%v err=%q", s.LastAnswer(), s.Err())
	}
}

func assertFallback(t *testing.T, answer *gateway.Answer) {
	t.Helper()
	if answer == nil {
		t.Fatal("expected an answer")
	}
	if answer.Text == "" {
		t.Fatal("expected non-empty fallback text")
	}
	if !answer.Validation.IsValid {
		t.Fatal("expected fallback validation.isValid = true")
	}
	if answer.Validation.Confidence != 0.9 {
		t.Fatalf("expected fallback confidence 0.9, got %v", answer.Validation.Confidence)
	}
	if len(answer.Validation.Sources) != 1 || answer.Validation.Sources[0] != "local-cache" {
		t.Fatalf("expected fallback sources [local-cache], got %v", answer.Validation.Sources)
	}
	if answer.Hallucination {
		t.Fatal("fallback must never be hallucination-flagged")
	}
}
