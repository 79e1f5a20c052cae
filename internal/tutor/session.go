// Package tutor is the query pipeline the rest of the app talks to. It
// drives the answering service through the bounded retry orchestrator,
// classifies the outcome, and guarantees the caller always gets an
// answer: when the service cannot be reached, a deterministic local
// fallback is substituted instead of an error.
package tutor

import (
	"context"
	"sync"

	"github.com/priyankac/axon/internal/circuit"
	"github.com/priyankac/axon/internal/gateway"
	"github.com/priyankac/axon/internal/retry"
)

// Config holds pipeline configuration.
type Config struct {
	// Retry is the attempt budget for each question.
	Retry retry.Config

	// Level is the default experience level sent with questions.
	Level gateway.ExperienceLevel

	// Notifier receives user-facing notices. May be nil.
	Notifier Notifier

	// MaxHistory bounds how many prior questions travel with a request.
	MaxHistory int
}

// DefaultConfig returns a Config with the standard three-attempt budget.
func DefaultConfig() Config {
	return Config{
		Retry:      retry.DefaultConfig(),
		Level:      gateway.LevelBeginner,
		MaxHistory: 10,
	}
}

// Session owns one query pipeline instance and its caller-visible
// state. The state is shared display state, not a correctness
// mechanism: concurrent calls each run their own retry sequence, and
// whichever resolves last wins. Callers needing strict ordering must
// serialize calls themselves.
type Session struct {
	client   gateway.Client
	retryCfg retry.Config
	level    gateway.ExperienceLevel
	notifier Notifier
	maxHist  int

	mu         sync.Mutex
	loading    bool
	lastAnswer *gateway.Answer
	lastErr    string
	history    []string
}

// NewSession creates a Session on top of the given client.
func NewSession(client gateway.Client, cfg Config) *Session {
	if cfg.Retry.MaxAttempts < 1 {
		cfg.Retry = retry.DefaultConfig()
	}
	if cfg.Level == "" {
		cfg.Level = gateway.LevelBeginner
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = 10
	}
	return &Session{
		client:   client,
		retryCfg: cfg.Retry,
		level:    cfg.Level,
		notifier: cfg.Notifier,
		maxHist:  cfg.MaxHistory,
	}
}

// AskQuestion submits a free-text question with optional circuit
// context. It never fails: every call yields exactly one well-formed
// Answer. Transport failures, retry exhaustion, and malformed payloads
// all degrade to the local fallback answer, with the triggering error
// retained in Err() for diagnostic display.
func (s *Session) AskQuestion(ctx context.Context, question string, c *circuit.Circuit) *gateway.Answer {
	return s.ask(ctx, "ask", question, c, s.level)
}

func (s *Session) ask(ctx context.Context, purpose, question string, c *circuit.Circuit, level gateway.ExperienceLevel) *gateway.Answer {
	s.setLoading(true)
	defer s.setLoading(false)

	ctx = gateway.WithPurpose(ctx, purpose)

	req := gateway.NewRequest(question, c)
	req.ExperienceLevel = level
	req.History = s.priorQuestions()
	s.recordQuestion(question)

	answer, err := retry.Do(ctx, s.retryCfg,
		func(ctx context.Context) (*gateway.Answer, error) {
			return s.client.Ask(ctx, req)
		},
		func(retry.Attempt) {
			s.emit(Notice{Kind: NoticeRetry, Message: stillTryingMessage})
		},
	)
	if err != nil {
		fb := FallbackAnswer()
		s.resolve(fb, err)
		return fb
	}

	if answer.Hallucination {
		s.emit(Notice{Kind: NoticeReview, Message: flaggedForReviewMessage})
	}

	s.resolve(answer, nil)
	return answer
}

// IsLoading reports whether a question is currently in flight.
func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastAnswer returns the most recent Answer, or nil before the first
// call resolves.
func (s *Session) LastAnswer() *gateway.Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAnswer
}

// Err returns the most recent diagnostic error message, or "" when the
// last call succeeded. A recorded error always coexists with a
// fallback answer, never with a missing one.
func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// resolve records the outcome of one call, last-write-wins.
func (s *Session) resolve(answer *gateway.Answer, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAnswer = answer
	if err != nil {
		s.lastErr = err.Error()
	} else {
		s.lastErr = ""
	}
}

func (s *Session) priorQuestions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) recordQuestion(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, q)
	if len(s.history) > s.maxHist {
		s.history = s.history[len(s.history)-s.maxHist:]
	}
}
