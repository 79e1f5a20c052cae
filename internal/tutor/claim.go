package tutor

import (
	"context"
	"fmt"

	"github.com/priyankac/axon/internal/gateway"
)

// ValidateClaim fact-checks a learner's claim and returns only the
// validation verdict. Like everything layered on AskQuestion it never
// fails; an unreachable service yields the fallback's validation,
// which reports the claim check as unavailable rather than wrong.
func (s *Session) ValidateClaim(ctx context.Context, claim string) gateway.Validation {
	question := buildClaimQuestion(claim)
	answer := s.ask(ctx, "claim-check", question, nil, s.level)
	return answer.Validation
}

func buildClaimQuestion(claim string) string {
	return fmt.Sprintf(
		"Fact-check this claim about neural circuits: %q. State whether it is accurate, cite the sources you base that on, and list corrections for anything wrong or imprecise.",
		claim,
	)
}
