package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter by purpose ("" = all)
}

// QueryEventData captures the data for a single answering-service call.
type QueryEventData struct {
	Provider      string
	Purpose       string
	Question      string
	LatencyMs     int64
	Success       bool
	Hallucination bool
	Confidence    float64
	AnswerBody    string
	ErrorMessage  string
}

// QueryEvent is the read model for a recorded call.
type QueryEvent struct {
	ID            int
	Sequence      int64
	Timestamp     time.Time
	Provider      string
	Purpose       string
	Question      string
	LatencyMs     int64
	Success       bool
	Hallucination bool
	Confidence    float64
	AnswerBody    string
	ErrorMessage  string
}

// UsageStat aggregates calls per purpose for the stats command.
type UsageStat struct {
	Purpose      string
	Calls        int
	Failures     int
	Flagged      int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to query events.
type EventRepo interface {
	// AppendQuery records one answering-service call.
	AppendQuery(ctx context.Context, data QueryEventData) error

	// RecentQueries returns events newest first.
	RecentQueries(ctx context.Context, opts QueryOpts) ([]*QueryEvent, error)

	// GetQuery returns one event by ID, or nil if not found.
	GetQuery(ctx context.Context, id int) (*QueryEvent, error)

	// UsageByPurpose aggregates recorded calls per purpose.
	UsageByPurpose(ctx context.Context) ([]UsageStat, error)
}
