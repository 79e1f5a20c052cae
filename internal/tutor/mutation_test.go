package tutor

import (
	"context"
	"strings"
	"testing"

	"github.com/priyankac/axon/internal/circuit"
	"github.com/priyankac/axon/internal/gateway"
)

func testCircuit() *circuit.Circuit {
	return &circuit.Circuit{
		Neurons: []circuit.Neuron{
			{ID: "AVA", Kind: circuit.KindInter},
			{ID: "PLM", Kind: circuit.KindSensory},
		},
		Synapses: []circuit.Synapse{
			{From: "PLM", To: "AVA", Weight: 0.8},
		},
	}
}

func TestQueryMutation_ShapesQuestion(t *testing.T) {
	mock := gateway.NewMockClient(gateway.MockResult{Answer: goodAnswer()})
	s := NewSession(mock, testConfig())

	answer := s.QueryMutation(context.Background(), "AVA", MutationKnockout, testCircuit())
	if answer == nil {
		t.Fatal("expected an answer")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 upstream call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]

	for _, want := range []string{"AVA", "removed from the circuit", "expected outcome", "1 incoming", "1 outgoing"} {
		if !strings.Contains(req.Question, want) {
			t.Errorf("expected question to contain %q, got: %s", want, req.Question)
		}
	}
	if req.ExperienceLevel != gateway.LevelAdvanced {
		t.Fatalf("expected advanced experience level, got %q", req.ExperienceLevel)
	}
	if req.Circuit == nil {
		t.Fatal("expected the circuit to travel with the request")
	}
}

func TestQueryMutation_AllKindsProduceDistinctQuestions(t *testing.T) {
	seen := map[string]MutationKind{}
	for _, kind := range MutationKinds() {
		q := buildMutationQuestion("AVA", kind, nil)
		if prev, dup := seen[q]; dup {
			t.Fatalf("kinds %q and %q produced the same question", prev, kind)
		}
		seen[q] = kind
	}
}

func TestQueryMutation_TargetNotInCircuit(t *testing.T) {
	q := buildMutationQuestion("GHOST", MutationSilence, testCircuit())
	if strings.Contains(q, "incoming") {
		t.Fatalf("expected no degree detail for an unknown neuron, got: %s", q)
	}
}

func TestQueryMutation_UnknownKindFallsBack(t *testing.T) {
	mock := gateway.NewMockClient(gateway.MockResult{Answer: goodAnswer()})
	s := NewSession(mock, testConfig())

	answer := s.QueryMutation(context.Background(), "AVA", MutationKind("laser"), testCircuit())

	assertFallback(t, answer)
	if mock.CallCount() != 0 {
		t.Fatalf("expected no upstream call for an unknown kind, got %d", mock.CallCount())
	}
	if !strings.Contains(s.Err(), "unknown mutation kind") {
		t.Fatalf("expected diagnostic about the kind, got %q", s.Err())
	}
}

func TestMutationKind_Valid(t *testing.T) {
	for _, kind := range MutationKinds() {
		if !kind.Valid() {
			t.Errorf("expected %q to be valid", kind)
		}
	}
	if MutationKind("laser").Valid() {
		t.Error("expected unknown kind to be invalid")
	}
}

func TestValidateClaim_ReturnsValidationOnly(t *testing.T) {
	answer := goodAnswer()
	answer.Validation = gateway.Validation{
		IsValid:     false,
		Confidence:  0.8,
		Sources:     []string{"owmeta"},
		Corrections: []string{"AVA is an interneuron, not a motor neuron"},
	}
	mock := gateway.NewMockClient(gateway.MockResult{Answer: answer})
	s := NewSession(mock, testConfig())

	v := s.ValidateClaim(context.Background(), "AVA is a motor neuron")

	if v.IsValid {
		t.Fatal("expected the claim to be rejected")
	}
	if len(v.Corrections) != 1 {
		t.Fatalf("expected corrections, got %v", v.Corrections)
	}

	req := mock.Calls[0]
	if !strings.Contains(req.Question, "AVA is a motor neuron") {
		t.Fatalf("expected the claim embedded in the question, got: %s", req.Question)
	}
	if !strings.Contains(req.Question, "Fact-check") {
		t.Fatalf("expected a validation-flavored question, got: %s", req.Question)
	}
}

func TestValidateClaim_FallsBackWhenUnreachable(t *testing.T) {
	s := NewSession(gateway.NewMockClient(), testConfig())

	v := s.ValidateClaim(context.Background(), "synapses have weights")

	// The fallback's validation shape still satisfies the contract.
	if !v.IsValid || v.Confidence != 0.9 {
		t.Fatalf("expected fallback validation, got: %+v", v)
	}
	if len(v.Sources) != 1 || v.Sources[0] != "local-cache" {
		t.Fatalf("expected local-cache source, got %v", v.Sources)
	}
}
