// Code generated by ent, DO NOT EDIT.

package queryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/priyankac/axon/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldProvider, v))
}

// Purpose applies equality check predicate on the "purpose" field. It's identical to PurposeEQ.
func Purpose(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldPurpose, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldQuestion, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldSuccess, v))
}

// Hallucination applies equality check predicate on the "hallucination" field. It's identical to HallucinationEQ.
func Hallucination(v bool) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldHallucination, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldConfidence, v))
}

// AnswerBody applies equality check predicate on the "answer_body" field. It's identical to AnswerBodyEQ.
func AnswerBody(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldAnswerBody, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldContainsFold(FieldProvider, v))
}

// PurposeEQ applies the EQ predicate on the "purpose" field.
func PurposeEQ(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldPurpose, v))
}

// PurposeNEQ applies the NEQ predicate on the "purpose" field.
func PurposeNEQ(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNEQ(FieldPurpose, v))
}

// PurposeIn applies the In predicate on the "purpose" field.
func PurposeIn(vs ...string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldIn(FieldPurpose, vs...))
}

// PurposeNotIn applies the NotIn predicate on the "purpose" field.
func PurposeNotIn(vs ...string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNotIn(FieldPurpose, vs...))
}

// PurposeGT applies the GT predicate on the "purpose" field.
func PurposeGT(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGT(FieldPurpose, v))
}

// PurposeGTE applies the GTE predicate on the "purpose" field.
func PurposeGTE(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGTE(FieldPurpose, v))
}

// PurposeLT applies the LT predicate on the "purpose" field.
func PurposeLT(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLT(FieldPurpose, v))
}

// PurposeLTE applies the LTE predicate on the "purpose" field.
func PurposeLTE(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLTE(FieldPurpose, v))
}

// PurposeContains applies the Contains predicate on the "purpose" field.
func PurposeContains(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldContains(FieldPurpose, v))
}

// PurposeHasPrefix applies the HasPrefix predicate on the "purpose" field.
func PurposeHasPrefix(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldHasPrefix(FieldPurpose, v))
}

// PurposeHasSuffix applies the HasSuffix predicate on the "purpose" field.
func PurposeHasSuffix(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldHasSuffix(FieldPurpose, v))
}

// PurposeEqualFold applies the EqualFold predicate on the "purpose" field.
func PurposeEqualFold(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEqualFold(FieldPurpose, v))
}

// PurposeContainsFold applies the ContainsFold predicate on the "purpose" field.
func PurposeContainsFold(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldContainsFold(FieldPurpose, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldContainsFold(FieldQuestion, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNEQ(FieldSuccess, v))
}

// HallucinationEQ applies the EQ predicate on the "hallucination" field.
func HallucinationEQ(v bool) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldHallucination, v))
}

// HallucinationNEQ applies the NEQ predicate on the "hallucination" field.
func HallucinationNEQ(v bool) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNEQ(FieldHallucination, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLTE(FieldConfidence, v))
}

// AnswerBodyEQ applies the EQ predicate on the "answer_body" field.
func AnswerBodyEQ(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldAnswerBody, v))
}

// AnswerBodyNEQ applies the NEQ predicate on the "answer_body" field.
func AnswerBodyNEQ(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNEQ(FieldAnswerBody, v))
}

// AnswerBodyIn applies the In predicate on the "answer_body" field.
func AnswerBodyIn(vs ...string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldIn(FieldAnswerBody, vs...))
}

// AnswerBodyNotIn applies the NotIn predicate on the "answer_body" field.
func AnswerBodyNotIn(vs ...string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNotIn(FieldAnswerBody, vs...))
}

// AnswerBodyGT applies the GT predicate on the "answer_body" field.
func AnswerBodyGT(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGT(FieldAnswerBody, v))
}

// AnswerBodyGTE applies the GTE predicate on the "answer_body" field.
func AnswerBodyGTE(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGTE(FieldAnswerBody, v))
}

// AnswerBodyLT applies the LT predicate on the "answer_body" field.
func AnswerBodyLT(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLT(FieldAnswerBody, v))
}

// AnswerBodyLTE applies the LTE predicate on the "answer_body" field.
func AnswerBodyLTE(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLTE(FieldAnswerBody, v))
}

// AnswerBodyContains applies the Contains predicate on the "answer_body" field.
func AnswerBodyContains(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldContains(FieldAnswerBody, v))
}

// AnswerBodyHasPrefix applies the HasPrefix predicate on the "answer_body" field.
func AnswerBodyHasPrefix(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldHasPrefix(FieldAnswerBody, v))
}

// AnswerBodyHasSuffix applies the HasSuffix predicate on the "answer_body" field.
func AnswerBodyHasSuffix(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldHasSuffix(FieldAnswerBody, v))
}

// AnswerBodyEqualFold applies the EqualFold predicate on the "answer_body" field.
func AnswerBodyEqualFold(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEqualFold(FieldAnswerBody, v))
}

// AnswerBodyContainsFold applies the ContainsFold predicate on the "answer_body" field.
func AnswerBodyContainsFold(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldContainsFold(FieldAnswerBody, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.QueryEvent {
	return predicate.QueryEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QueryEvent) predicate.QueryEvent {
	return predicate.QueryEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QueryEvent) predicate.QueryEvent {
	return predicate.QueryEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QueryEvent) predicate.QueryEvent {
	return predicate.QueryEvent(sql.NotPredicates(p))
}
