package tutor

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/priyankac/axon/internal/circuit"
	"github.com/priyankac/axon/internal/gateway"
)

// MutationKind is a perturbation applied to a neuron in a "what if"
// query. The set is closed: the question templates depend on it.
type MutationKind string

const (
	MutationKnockout     MutationKind = "knockout"
	MutationSilence      MutationKind = "silence"
	MutationOveractivate MutationKind = "overactivate"
	MutationStrengthen   MutationKind = "strengthen"
	MutationWeaken       MutationKind = "weaken"
)

// mutationPhrases describes each perturbation in the generated question.
var mutationPhrases = map[MutationKind]string{
	MutationKnockout:     "is removed from the circuit entirely",
	MutationSilence:      "is silenced so it no longer fires",
	MutationOveractivate: "fires continuously at its maximum rate",
	MutationStrengthen:   "has all of its outgoing synapse weights doubled",
	MutationWeaken:       "has all of its outgoing synapse weights halved",
}

// Valid reports whether k is one of the known mutation kinds.
func (k MutationKind) Valid() bool {
	_, ok := mutationPhrases[k]
	return ok
}

// MutationKinds lists the valid kinds for help text.
func MutationKinds() []MutationKind {
	return []MutationKind{
		MutationKnockout,
		MutationSilence,
		MutationOveractivate,
		MutationStrengthen,
		MutationWeaken,
	}
}

var mutationTemplate = template.Must(template.New("mutation").Parse(
	`Suppose the neuron {{.Target}} {{.Phrase}}.{{if .HasDegree}} In the current circuit it receives {{.In}} incoming and drives {{.Out}} outgoing connections.{{end}} Walk through the expected outcome: which downstream neurons change their activity, in what direction, and what behavior change would you predict? Mention any compensating pathways.`))

// QueryMutation asks what happens when target is perturbed by kind. It
// is pure request shaping over AskQuestion: the question is generated
// from the mutation templates and submitted with the advanced
// experience level, and the never-fails contract is inherited
// unchanged. An unknown kind degrades to the fallback answer like any
// other unrecoverable error.
func (s *Session) QueryMutation(ctx context.Context, target string, kind MutationKind, c *circuit.Circuit) *gateway.Answer {
	if !kind.Valid() {
		fb := FallbackAnswer()
		s.resolve(fb, fmt.Errorf("unknown mutation kind: %q", kind))
		return fb
	}

	question := buildMutationQuestion(target, kind, c)
	return s.ask(ctx, "mutation", question, c, gateway.LevelAdvanced)
}

func buildMutationQuestion(target string, kind MutationKind, c *circuit.Circuit) string {
	data := struct {
		Target    string
		Phrase    string
		HasDegree bool
		In, Out   int
	}{
		Target: target,
		Phrase: mutationPhrases[kind],
	}

	if c != nil && c.Has(target) {
		data.HasDegree = true
		data.In, data.Out = c.Degree(target)
	}

	var buf bytes.Buffer
	// The template only references fields that exist; Execute cannot fail.
	_ = mutationTemplate.Execute(&buf, data)
	return buf.String()
}
