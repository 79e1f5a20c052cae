package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueryEvent records every call to the answering service for
// diagnostics and usage review.
type QueryEvent struct {
	ent.Schema
}

func (QueryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QueryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Backing service: gateway, openai, anthropic, gemini"),
		field.String("purpose").
			Comment("Consumer-provided label: ask, mutation, claim-check"),
		field.String("question").
			Comment("The question as sent upstream"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the call"),
		field.Bool("success").
			Comment("Whether the call produced an answer"),
		field.Bool("hallucination").
			Default(false).
			Comment("Whether the service flagged its own answer"),
		field.Float("confidence").
			Default(0).
			Comment("Self-reported confidence of the answer"),
		field.String("answer_body").
			Default("").
			Comment("Answer text, if any"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
	}
}

func (QueryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
