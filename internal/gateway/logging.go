package gateway

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/priyankac/axon/internal/store"
)

// LoggingClient is a decorator that records every upstream call as an
// event.
type LoggingClient struct {
	inner     Client
	eventRepo store.EventRepo
}

// WithEventLog wraps a Client with event logging.
func WithEventLog(c Client, repo store.EventRepo) Client {
	return &LoggingClient{inner: c, eventRepo: repo}
}

func (l *LoggingClient) Ask(ctx context.Context, req *Request) (*Answer, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	answer, err := l.inner.Ask(ctx, req)

	data := store.QueryEventData{
		Provider:  l.inner.Name(),
		Purpose:   purpose,
		Question:  req.Question,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if answer != nil {
		data.Hallucination = answer.Hallucination
		data.AnswerBody = answer.Text
		data.Confidence = answer.Validation.Confidence
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.eventRepo.AppendQuery(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log query event: %v\n", logErr)
	}

	return answer, err
}

func (l *LoggingClient) Name() string {
	return l.inner.Name()
}
