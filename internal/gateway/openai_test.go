package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/priyankac/axon/internal/circuit"
)

func newTestOpenAIClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"

	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
		model:  "gpt-4o-mini",
	}
}

func TestOpenAIClient_HappyPath(t *testing.T) {
	var gotPrompt string

	handler := func(w http.ResponseWriter, r *http.Request) {
		var chatReq map[string]any
		json.NewDecoder(r.Body).Decode(&chatReq)
		if msgs, ok := chatReq["messages"].([]any); ok && len(msgs) == 2 {
			user := msgs[1].(map[string]any)
			gotPrompt, _ = user["content"].(string)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": `{"answer":"AVA drives reversals.","validation":{"isValid":true,"confidence":0.9,"sources":["owmeta"]},"hallucination":false}`,
					},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     40,
				"completion_tokens": 25,
				"total_tokens":      65,
			},
		})
	}

	c := newTestOpenAIClient(t, handler)
	req := NewRequest("What does AVA do?", &circuit.Circuit{
		Neurons: []circuit.Neuron{{ID: "AVA", Kind: circuit.KindInter}},
	})
	req.ExperienceLevel = LevelAdvanced
	req.History = []string{"What is a synapse?"}

	answer, err := c.Ask(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer.Text != "AVA drives reversals." {
		t.Fatalf("unexpected answer: %q", answer.Text)
	}

	for _, want := range []string{"advanced", "AVA", "What is a synapse?", "What does AVA do?"} {
		if !strings.Contains(gotPrompt, want) {
			t.Errorf("expected prompt to contain %q, got: %s", want, gotPrompt)
		}
	}
}

func TestOpenAIClient_RateLimit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "tokens",
				"message": "Rate limit exceeded",
				"code":    "rate_limit_exceeded",
			},
		})
	}

	c := newTestOpenAIClient(t, handler)
	_, err := c.Ask(context.Background(), NewRequest("q", nil))
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T (%v)", err, err)
	}
}

func TestOpenAIClient_ServerError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "server_error",
				"message": "Internal server error",
			},
		})
	}

	c := newTestOpenAIClient(t, handler)
	_, err := c.Ask(context.Background(), NewRequest("q", nil))
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *ErrGatewayUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrGatewayUnavailable, got: %T (%v)", err, err)
	}
}

func TestOpenAIClient_MalformedModelOutput(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": `sorry, I can't help with that`,
					},
					"finish_reason": "stop",
				},
			},
		})
	}

	c := newTestOpenAIClient(t, handler)
	_, err := c.Ask(context.Background(), NewRequest("q", nil))
	if err == nil {
		t.Fatal("expected error")
	}
	var invalid *ErrInvalidAnswer
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidAnswer, got: %T (%v)", err, err)
	}
}

func TestNewOpenAIClient_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIClient(OpenAIConfig{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestOpenAIClient_Name(t *testing.T) {
	c := &OpenAIClient{model: "gpt-4o-mini"}
	if c.Name() != "openai/gpt-4o-mini" {
		t.Fatalf("unexpected name: %q", c.Name())
	}
}
