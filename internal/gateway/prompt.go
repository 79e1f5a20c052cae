package gateway

import (
	"fmt"
	"strings"
)

// The direct-provider clients answer questions without the hosted
// endpoint by prompting the model themselves with the same answer
// schema the endpoint enforces.

const tutorSystemPrompt = `You are a patient neuroscience tutor helping a learner understand neural circuits: neurons connected by weighted directed synapses. Positive weights are excitatory, negative weights inhibitory.

Instructions:
- Answer the learner's question directly, at the stated experience level.
- When a circuit is provided, ground the answer in that circuit's actual neurons and connections.
- Report a confidence score (0.0-1.0) and list the sources the answer draws on.
- Set "isValid" to false and list corrections when the question contains a false premise.
- Set "hallucination" to true whenever you are unsure the answer is reliable.`

// buildPrompt renders a Request as a user message for a direct provider.
func buildPrompt(req *Request) string {
	var b strings.Builder

	level := req.ExperienceLevel
	if level == "" {
		level = LevelBeginner
	}
	fmt.Fprintf(&b, "Experience level: %s\n", level)

	if summary := req.Circuit.Summary(); summary != "" {
		fmt.Fprintf(&b, "Circuit: %s\n", summary)
	}

	if len(req.History) > 0 {
		b.WriteString("Earlier questions this session:\n")
		for _, q := range req.History {
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}

	fmt.Fprintf(&b, "\nQuestion: %s", req.Question)

	return b.String()
}
