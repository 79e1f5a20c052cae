package tutor

// NoticeKind classifies a user-facing notice.
type NoticeKind string

const (
	// NoticeRetry is emitted before each retry while a question is
	// still being attempted.
	NoticeRetry NoticeKind = "retry"

	// NoticeReview is emitted once when an answer comes back flagged
	// as a possible hallucination.
	NoticeReview NoticeKind = "review"
)

// Notice is a fire-and-forget user-facing message. It carries no
// control-flow meaning.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Notifier receives notices. Implementations are free to show a toast,
// log, or drop them; the pipeline never depends on the outcome.
type Notifier func(Notice)

const (
	stillTryingMessage      = "Still working on your question, the tutor is taking longer than usual..."
	flaggedForReviewMessage = "This answer was flagged for review. Double-check it before relying on it."
)

// emit delivers a notice, shielding the pipeline from notifier panics.
func (s *Session) emit(n Notice) {
	if s.notifier == nil {
		return
	}
	defer func() { _ = recover() }()
	s.notifier(n)
}
