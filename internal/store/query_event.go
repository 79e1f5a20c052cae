package store

import (
	"context"
	"fmt"

	"github.com/priyankac/axon/ent"
	"github.com/priyankac/axon/ent/queryevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendQuery(ctx context.Context, data QueryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QueryEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetPurpose(data.Purpose).
		SetQuestion(data.Question).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetHallucination(data.Hallucination).
		SetConfidence(data.Confidence).
		SetAnswerBody(data.AnswerBody).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save query event: %w", err)
	}

	return nil
}

func (r *eventRepo) RecentQueries(ctx context.Context, opts QueryOpts) ([]*QueryEvent, error) {
	q := r.client.QueryEvent.Query().
		Order(ent.Desc(queryevent.FieldSequence))

	if opts.Purpose != "" {
		q = q.Where(queryevent.PurposeEQ(opts.Purpose))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}

	events := make([]*QueryEvent, len(rows))
	for i, row := range rows {
		events[i] = fromEnt(row)
	}
	return events, nil
}

func (r *eventRepo) GetQuery(ctx context.Context, id int) (*QueryEvent, error) {
	row, err := r.client.QueryEvent.Query().
		Where(queryevent.IDEQ(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get event %d: %w", id, err)
	}
	return fromEnt(row), nil
}

// UsageByPurpose aggregates with raw SQL; ent's aggregation API doesn't
// cover multi-column conditional counts.
func (r *eventRepo) UsageByPurpose(ctx context.Context) ([]UsageStat, error) {
	rows, err := r.seq.db.QueryContext(ctx, `
		SELECT purpose,
		       COUNT(*),
		       SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END),
		       SUM(CASE WHEN hallucination = 1 THEN 1 ELSE 0 END),
		       CAST(AVG(latency_ms) AS INTEGER)
		FROM query_events
		GROUP BY purpose
		ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query usage: %w", err)
	}
	defer rows.Close()

	var stats []UsageStat
	for rows.Next() {
		var st UsageStat
		if err := rows.Scan(&st.Purpose, &st.Calls, &st.Failures, &st.Flagged, &st.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan usage row: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

func fromEnt(row *ent.QueryEvent) *QueryEvent {
	return &QueryEvent{
		ID:            row.ID,
		Sequence:      row.Sequence,
		Timestamp:     row.Timestamp,
		Provider:      row.Provider,
		Purpose:       row.Purpose,
		Question:      row.Question,
		LatencyMs:     row.LatencyMs,
		Success:       row.Success,
		Hallucination: row.Hallucination,
		Confidence:    row.Confidence,
		AnswerBody:    row.AnswerBody,
		ErrorMessage:  row.ErrorMessage,
	}
}
