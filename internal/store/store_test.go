package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndRecentQueries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []QueryEventData{
		{Provider: "mock", Purpose: "ask", Question: "what does AVA do?", Success: true, Confidence: 0.95},
		{Provider: "mock", Purpose: "mutation", Question: "knock out AVA", Success: true, Hallucination: true, Confidence: 0.4},
		{Provider: "mock", Purpose: "ask", Question: "what is a synapse?", Success: false, ErrorMessage: "status 429"},
	}
	for _, e := range events {
		if err := repo.AppendQuery(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.RecentQueries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}

	// Newest first.
	if got[0].Question != "what is a synapse?" {
		t.Fatalf("expected newest event first, got %q", got[0].Question)
	}
	if got[0].Sequence <= got[2].Sequence {
		t.Fatalf("expected descending sequence, got %d then %d", got[0].Sequence, got[2].Sequence)
	}
	if got[0].ErrorMessage != "status 429" {
		t.Fatalf("expected error message persisted, got %q", got[0].ErrorMessage)
	}
}

func TestRecentQueries_FilterAndLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		purpose := "ask"
		if i%2 == 0 {
			purpose = "claim-check"
		}
		if err := repo.AppendQuery(ctx, QueryEventData{Provider: "mock", Purpose: purpose, Question: "q", Success: true}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.RecentQueries(ctx, QueryOpts{Purpose: "claim-check"})
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 claim-check events, got %d", len(got))
	}

	got, err = repo.RecentQueries(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events with limit, got %d", len(got))
	}
}

func TestGetQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendQuery(ctx, QueryEventData{Provider: "mock", Purpose: "ask", Question: "q", Success: true, AnswerBody: "a"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	all, err := repo.RecentQueries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("recent: %v", err)
	}

	e, err := repo.GetQuery(ctx, all[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.AnswerBody != "a" {
		t.Fatalf("unexpected event: %+v", e)
	}

	missing, err := repo.GetQuery(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []QueryEventData{
		{Provider: "mock", Purpose: "ask", Question: "q1", Success: true, LatencyMs: 100},
		{Provider: "mock", Purpose: "ask", Question: "q2", Success: false, LatencyMs: 300, ErrorMessage: "boom"},
		{Provider: "mock", Purpose: "mutation", Question: "q3", Success: true, Hallucination: true, LatencyMs: 50},
	}
	for _, e := range data {
		if err := repo.AppendQuery(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(stats))
	}

	byPurpose := map[string]UsageStat{}
	for _, st := range stats {
		byPurpose[st.Purpose] = st
	}

	ask := byPurpose["ask"]
	if ask.Calls != 2 || ask.Failures != 1 || ask.AvgLatencyMs != 200 {
		t.Fatalf("unexpected ask stats: %+v", ask)
	}
	mutation := byPurpose["mutation"]
	if mutation.Calls != 1 || mutation.Flagged != 1 {
		t.Fatalf("unexpected mutation stats: %+v", mutation)
	}
}

func TestSequenceCounter_Monotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	prev := int64(-1)
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}
