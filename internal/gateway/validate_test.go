package gateway

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseAnswer_Valid(t *testing.T) {
	raw := json.RawMessage(`{
		"answer": "Interneurons relay signals between sensory and motor neurons.",
		"validation": {"isValid": true, "confidence": 0.92, "sources": ["owmeta", "textbook"]},
		"hallucination": false
	}`)

	answer, err := parseAnswer(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer.Validation.Confidence != 0.92 {
		t.Fatalf("unexpected confidence: %v", answer.Validation.Confidence)
	}
	if len(answer.Validation.Sources) != 2 {
		t.Fatalf("unexpected sources: %v", answer.Validation.Sources)
	}
}

func TestParseAnswer_Corrections(t *testing.T) {
	raw := json.RawMessage(`{
		"answer": "Not quite: AVA is an interneuron, not a motor neuron.",
		"validation": {"isValid": false, "confidence": 0.85, "sources": ["owmeta"], "corrections": ["AVA is an interneuron"]},
		"hallucination": false
	}`)

	answer, err := parseAnswer(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer.Validation.IsValid {
		t.Fatal("expected isValid=false")
	}
	if len(answer.Validation.Corrections) != 1 {
		t.Fatalf("unexpected corrections: %v", answer.Validation.Corrections)
	}
}

func TestParseAnswer_ShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"truncated JSON", `{"answer": "x"`},
		{"answer wrong type", `{"answer": 42, "validation": {"isValid": true, "confidence": 0.9, "sources": []}, "hallucination": false}`},
		{"missing validation", `{"answer": "x", "hallucination": false}`},
		{"missing hallucination", `{"answer": "x", "validation": {"isValid": true, "confidence": 0.9, "sources": []}}`},
		{"sources wrong type", `{"answer": "x", "validation": {"isValid": true, "confidence": 0.9, "sources": "owmeta"}, "hallucination": false}`},
		{"negative confidence", `{"answer": "x", "validation": {"isValid": true, "confidence": -0.1, "sources": []}, "hallucination": false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAnswer(json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			var invalid *ErrInvalidAnswer
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidAnswer, got: %T (%v)", err, err)
			}
			if len(invalid.Content) == 0 {
				t.Fatal("expected offending content to be attached")
			}
		})
	}
}
