package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/priyankac/axon/internal/store"
)

// fakeEventRepo records appended events in memory.
type fakeEventRepo struct {
	events []store.QueryEventData
	fail   bool
}

func (f *fakeEventRepo) AppendQuery(_ context.Context, data store.QueryEventData) error {
	if f.fail {
		return errors.New("disk full")
	}
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) RecentQueries(context.Context, store.QueryOpts) ([]*store.QueryEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetQuery(context.Context, int) (*store.QueryEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) UsageByPurpose(context.Context) ([]store.UsageStat, error) {
	return nil, nil
}

func TestWithEventLog_RecordsSuccess(t *testing.T) {
	mock := NewMockClient(MockResult{Answer: &Answer{
		Text:          "interneurons relay signals",
		Validation:    Validation{IsValid: true, Confidence: 0.9, Sources: []string{"owmeta"}},
		Hallucination: true,
	}})
	repo := &fakeEventRepo{}
	c := WithEventLog(mock, repo)

	ctx := WithPurpose(context.Background(), "ask")
	_, err := c.Ask(ctx, NewRequest("what do interneurons do?", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "mock" || e.Purpose != "ask" {
		t.Fatalf("unexpected event: %+v", e)
	}
	if !e.Success || !e.Hallucination || e.Confidence != 0.9 {
		t.Fatalf("unexpected event: %+v", e)
	}
	if e.Question != "what do interneurons do?" {
		t.Fatalf("unexpected question: %q", e.Question)
	}
}

func TestWithEventLog_RecordsFailure(t *testing.T) {
	mock := NewMockClient(MockResult{Err: &ErrGatewayUnavailable{Err: errors.New("down")}})
	repo := &fakeEventRepo{}
	c := WithEventLog(mock, repo)

	_, err := c.Ask(context.Background(), NewRequest("q", nil))
	if err == nil {
		t.Fatal("expected error to pass through")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Fatal("expected failure event")
	}
	if e.ErrorMessage == "" {
		t.Fatal("expected error message recorded")
	}
	if e.Purpose != "unknown" {
		t.Fatalf("expected unknown purpose, got %q", e.Purpose)
	}
}

func TestWithEventLog_RepoFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockClient(MockResult{Answer: &Answer{
		Text:       "ok",
		Validation: Validation{IsValid: true, Confidence: 1, Sources: []string{}},
	}})
	c := WithEventLog(mock, &fakeEventRepo{fail: true})

	answer, err := c.Ask(context.Background(), NewRequest("q", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer.Text != "ok" {
		t.Fatalf("unexpected answer: %q", answer.Text)
	}
}

func TestWithEventLog_NameDelegates(t *testing.T) {
	c := WithEventLog(NewMockClient(), &fakeEventRepo{})
	if c.Name() != "mock" {
		t.Fatalf("expected 'mock', got %q", c.Name())
	}
}
