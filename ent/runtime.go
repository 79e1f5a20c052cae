// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/priyankac/axon/ent/queryevent"
	"github.com/priyankac/axon/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	queryeventMixin := schema.QueryEvent{}.Mixin()
	queryeventMixinFields0 := queryeventMixin[0].Fields()
	_ = queryeventMixinFields0
	queryeventFields := schema.QueryEvent{}.Fields()
	_ = queryeventFields
	// queryeventDescTimestamp is the schema descriptor for timestamp field.
	queryeventDescTimestamp := queryeventMixinFields0[1].Descriptor()
	// queryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	queryevent.DefaultTimestamp = queryeventDescTimestamp.Default.(func() time.Time)
	// queryeventDescLatencyMs is the schema descriptor for latency_ms field.
	queryeventDescLatencyMs := queryeventFields[3].Descriptor()
	// queryevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	queryevent.DefaultLatencyMs = queryeventDescLatencyMs.Default.(int64)
	// queryeventDescHallucination is the schema descriptor for hallucination field.
	queryeventDescHallucination := queryeventFields[5].Descriptor()
	// queryevent.DefaultHallucination holds the default value on creation for the hallucination field.
	queryevent.DefaultHallucination = queryeventDescHallucination.Default.(bool)
	// queryeventDescConfidence is the schema descriptor for confidence field.
	queryeventDescConfidence := queryeventFields[6].Descriptor()
	// queryevent.DefaultConfidence holds the default value on creation for the confidence field.
	queryevent.DefaultConfidence = queryeventDescConfidence.Default.(float64)
	// queryeventDescAnswerBody is the schema descriptor for answer_body field.
	queryeventDescAnswerBody := queryeventFields[7].Descriptor()
	// queryevent.DefaultAnswerBody holds the default value on creation for the answer_body field.
	queryevent.DefaultAnswerBody = queryeventDescAnswerBody.Default.(string)
	// queryeventDescErrorMessage is the schema descriptor for error_message field.
	queryeventDescErrorMessage := queryeventFields[8].Descriptor()
	// queryevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	queryevent.DefaultErrorMessage = queryeventDescErrorMessage.Default.(string)
}
