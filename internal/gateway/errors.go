package gateway

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimit indicates the service returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrGatewayUnavailable indicates the service is down or unreachable.
type ErrGatewayUnavailable struct {
	Err error
}

func (e *ErrGatewayUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("answering service unavailable: %v", e.Err)
	}
	return "answering service unavailable"
}

func (e *ErrGatewayUnavailable) Unwrap() error { return e.Err }

// ErrStatus indicates a non-success HTTP status outside the rate-limit
// and server-error classes.
type ErrStatus struct {
	StatusCode int
	Body       string
}

func (e *ErrStatus) Error() string {
	return fmt.Sprintf("answering service returned status %d: %s", e.StatusCode, e.Body)
}

// ErrInvalidAnswer indicates the service returned a payload that does
// not match the expected answer shape.
type ErrInvalidAnswer struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidAnswer) Error() string {
	return fmt.Sprintf("invalid answer payload: %v", e.Err)
}

func (e *ErrInvalidAnswer) Unwrap() error { return e.Err }
