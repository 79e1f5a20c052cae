package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/priyankac/axon/internal/circuit"
)

func newTestHTTPClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewHTTPClient(GatewayConfig{
		Endpoint: server.URL,
		Token:    "test-token",
		Timeout:  5 * time.Second,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func goodPayload() map[string]any {
	return map[string]any{
		"answer": "AVA drives backward locomotion.",
		"validation": map[string]any{
			"isValid":    true,
			"confidence": 0.95,
			"sources":    []string{"owmeta"},
		},
		"hallucination": false,
	}
}

func TestHTTPClient_HappyPath(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody map[string]any

	handler := func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(goodPayload())
	}

	c := newTestHTTPClient(t, handler)
	req := NewRequest("What does AVA do?", &circuit.Circuit{
		Neurons: []circuit.Neuron{{ID: "AVA", Kind: circuit.KindInter}},
	})

	answer, err := c.Ask(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected JSON content type, got %q", gotContentType)
	}
	if gotBody["question"] != "What does AVA do?" {
		t.Fatalf("unexpected question in request body: %v", gotBody["question"])
	}
	if gotBody["context"] == nil {
		t.Fatal("expected circuit context in request body")
	}

	if answer.Text != "AVA drives backward locomotion." {
		t.Fatalf("unexpected answer: %q", answer.Text)
	}
	if !answer.Validation.IsValid || answer.Validation.Confidence != 0.95 {
		t.Fatalf("unexpected validation: %+v", answer.Validation)
	}
	if len(answer.Validation.Sources) != 1 || answer.Validation.Sources[0] != "owmeta" {
		t.Fatalf("unexpected sources: %v", answer.Validation.Sources)
	}
	if answer.Hallucination {
		t.Fatal("did not expect hallucination flag")
	}
}

func TestHTTPClient_HallucinationPassThrough(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		payload := goodPayload()
		payload["hallucination"] = true
		json.NewEncoder(w).Encode(payload)
	}

	c := newTestHTTPClient(t, handler)
	answer, err := c.Ask(context.Background(), NewRequest("q", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !answer.Hallucination {
		t.Fatal("expected hallucination flag to pass through")
	}
	if answer.Text == "" {
		t.Fatal("expected answer text to be preserved")
	}
}

func TestHTTPClient_ReferenceDataPassThrough(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		payload := goodPayload()
		payload["referenceData"] = map[string]any{"neurons": []string{"AVA", "AVB"}}
		json.NewEncoder(w).Encode(payload)
	}

	c := newTestHTTPClient(t, handler)
	answer, err := c.Ask(context.Background(), NewRequest("q", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(answer.ReferenceData) == 0 {
		t.Fatal("expected reference data to pass through")
	}
}

func TestHTTPClient_RateLimit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "2")
		w.WriteHeader(http.StatusTooManyRequests)
	}

	c := newTestHTTPClient(t, handler)
	_, err := c.Ask(context.Background(), NewRequest("q", nil))
	if err == nil {
		t.Fatal("expected error")
	}

	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T (%v)", err, err)
	}
	if rl.RetryAfter != 2*time.Second {
		t.Fatalf("expected Retry-After 2s, got %v", rl.RetryAfter)
	}
}

func TestHTTPClient_ServerError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	c := newTestHTTPClient(t, handler)
	_, err := c.Ask(context.Background(), NewRequest("q", nil))
	if err == nil {
		t.Fatal("expected error")
	}

	var unavail *ErrGatewayUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrGatewayUnavailable, got: %T (%v)", err, err)
	}
}

func TestHTTPClient_ClientErrorStatus(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("quota exceeded"))
	}

	c := newTestHTTPClient(t, handler)
	_, err := c.Ask(context.Background(), NewRequest("q", nil))
	if err == nil {
		t.Fatal("expected error")
	}

	var status *ErrStatus
	if !errors.As(err, &status) {
		t.Fatalf("expected ErrStatus, got: %T (%v)", err, err)
	}
	if status.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", status.StatusCode)
	}
}

func TestHTTPClient_MalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not JSON", "<html>oops</html>"},
		{"missing answer", `{"validation":{"isValid":true,"confidence":0.9,"sources":[]},"hallucination":false}`},
		{"empty answer", `{"answer":"","validation":{"isValid":true,"confidence":0.9,"sources":[]},"hallucination":false}`},
		{"confidence out of range", `{"answer":"x","validation":{"isValid":true,"confidence":1.5,"sources":[]},"hallucination":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			_, err := c.Ask(context.Background(), NewRequest("q", nil))
			if err == nil {
				t.Fatal("expected error")
			}
			var invalid *ErrInvalidAnswer
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidAnswer, got: %T (%v)", err, err)
			}
		})
	}
}

func TestHTTPClient_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // Kill it so the dial fails.

	c, err := NewHTTPClient(GatewayConfig{Endpoint: server.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = c.Ask(context.Background(), NewRequest("q", nil))
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *ErrGatewayUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrGatewayUnavailable, got: %T (%v)", err, err)
	}
}

func TestNewHTTPClient_RequiresEndpoint(t *testing.T) {
	if _, err := NewHTTPClient(GatewayConfig{}); err == nil {
		t.Fatal("expected error for missing endpoint")
	}
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"", 0},
		{"5", 5 * time.Second},
		{"-1", 0},
		{"Wed, 21 Oct 2026 07:28:00 GMT", 0},
	}
	for _, tt := range tests {
		if got := parseRetryAfter(tt.value); got != tt.want {
			t.Errorf("parseRetryAfter(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
