// Package gateway talks to the remote answering service. The service
// is an opaque black box that can be slow, rate-limited, out of quota,
// or wrong; this package only defines the wire contract, the transport
// implementations, and the typed error taxonomy the pipeline retries
// and classifies on.
package gateway

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/priyankac/axon/internal/circuit"
)

// Client is the core abstraction for the answering service.
type Client interface {
	// Ask submits one question and returns the service's answer.
	// Failures are reported as the typed errors in errors.go so the
	// caller can classify them.
	Ask(ctx context.Context, req *Request) (*Answer, error)

	// Name identifies the backing service for event logging.
	Name() string
}

// ExperienceLevel tunes how the tutor pitches its answer.
type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
)

// Request is one question for the answering service. It is built once
// per user action and never mutated after submission.
type Request struct {
	// ID uniquely identifies the request across retries.
	ID uuid.UUID `json:"id"`

	// Question is the learner's free-text question.
	Question string `json:"question"`

	// Circuit is the optional wiring diagram the question refers to.
	Circuit *circuit.Circuit `json:"context,omitempty"`

	// ExperienceLevel is the optional caller experience level.
	ExperienceLevel ExperienceLevel `json:"experience_level,omitempty"`

	// History holds prior questions from the same session, oldest first.
	History []string `json:"history,omitempty"`
}

// NewRequest builds a Request with a fresh ID.
func NewRequest(question string, c *circuit.Circuit) *Request {
	return &Request{
		ID:       uuid.New(),
		Question: question,
		Circuit:  c,
	}
}

// Validation is the service's self-assessment of an answer.
type Validation struct {
	// IsValid reports whether the service considers the answer sound.
	IsValid bool `json:"isValid"`

	// Confidence is the service's self-reported trust, in [0,1].
	Confidence float64 `json:"confidence"`

	// Sources lists where the answer was grounded, in order.
	Sources []string `json:"sources"`

	// Corrections lists amendments the service applied, if any.
	Corrections []string `json:"corrections,omitempty"`
}

// Answer is the only output shape the pipeline ever produces.
type Answer struct {
	// Text is the answer itself. Always non-empty.
	Text string `json:"answer"`

	// Validation carries the service's self-assessment.
	Validation Validation `json:"validation"`

	// Hallucination is true when the service itself flagged the answer
	// as potentially unreliable. This is a successful call, not an
	// error: an imperfect answer beats none.
	Hallucination bool `json:"hallucination"`

	// ReferenceData is an opaque payload passed through unmodified.
	ReferenceData json.RawMessage `json:"referenceData,omitempty"`
}
