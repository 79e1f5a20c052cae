package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// HTTPClient talks to the hosted answering endpoint: POST with a JSON
// body and bearer-token authorization. Any 2xx with a payload matching
// the answer shape is success; everything else maps into the typed
// error taxonomy.
type HTTPClient struct {
	endpoint string
	token    string
	client   *http.Client
}

// NewHTTPClient creates a client for the configured endpoint.
func NewHTTPClient(cfg GatewayConfig) (*HTTPClient, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("gateway endpoint is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HTTPClient{
		endpoint: cfg.Endpoint,
		token:    cfg.Token,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

func (c *HTTPClient) Ask(ctx context.Context, req *Request) (*Answer, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &ErrGatewayUnavailable{Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &ErrGatewayUnavailable{Err: fmt.Errorf("read response: %w", err)}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &ErrRateLimit{
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("status 429"),
		}
	case resp.StatusCode >= 500:
		return nil, &ErrGatewayUnavailable{Err: fmt.Errorf("status %d", resp.StatusCode)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &ErrStatus{StatusCode: resp.StatusCode, Body: truncateBody(payload)}
	}

	return parseAnswer(payload)
}

func (c *HTTPClient) Name() string {
	return "gateway"
}

// parseRetryAfter handles the delay-seconds form of the Retry-After
// header. The HTTP-date form is rare on AI gateways and falls back to
// zero, which lets the normal backoff apply.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	secs, err := strconv.Atoi(value)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

func truncateBody(body []byte) string {
	const max = 256
	if len(body) > max {
		body = body[:max]
	}
	return string(body)
}
