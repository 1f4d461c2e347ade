// Code generated by ent, DO NOT EDIT.

package interviewsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/yonatank/prepair/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldUserID, v))
}

// JobSpecID applies equality check predicate on the "job_spec_id" field. It's identical to JobSpecIDEQ.
func JobSpecID(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldJobSpecID, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldLanguage, v))
}

// Persona applies equality check predicate on the "persona" field. It's identical to PersonaEQ.
func Persona(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldPersona, v))
}

// ConversationState applies equality check predicate on the "conversation_state" field. It's identical to ConversationStateEQ.
func ConversationState(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldConversationState, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldEndedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContainsFold(FieldUserID, v))
}

// JobSpecIDEQ applies the EQ predicate on the "job_spec_id" field.
func JobSpecIDEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldJobSpecID, v))
}

// JobSpecIDNEQ applies the NEQ predicate on the "job_spec_id" field.
func JobSpecIDNEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldJobSpecID, v))
}

// JobSpecIDIn applies the In predicate on the "job_spec_id" field.
func JobSpecIDIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldJobSpecID, vs...))
}

// JobSpecIDNotIn applies the NotIn predicate on the "job_spec_id" field.
func JobSpecIDNotIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldJobSpecID, vs...))
}

// JobSpecIDGT applies the GT predicate on the "job_spec_id" field.
func JobSpecIDGT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldJobSpecID, v))
}

// JobSpecIDGTE applies the GTE predicate on the "job_spec_id" field.
func JobSpecIDGTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldJobSpecID, v))
}

// JobSpecIDLT applies the LT predicate on the "job_spec_id" field.
func JobSpecIDLT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldJobSpecID, v))
}

// JobSpecIDLTE applies the LTE predicate on the "job_spec_id" field.
func JobSpecIDLTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldJobSpecID, v))
}

// JobSpecIDContains applies the Contains predicate on the "job_spec_id" field.
func JobSpecIDContains(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContains(FieldJobSpecID, v))
}

// JobSpecIDHasPrefix applies the HasPrefix predicate on the "job_spec_id" field.
func JobSpecIDHasPrefix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasPrefix(FieldJobSpecID, v))
}

// JobSpecIDHasSuffix applies the HasSuffix predicate on the "job_spec_id" field.
func JobSpecIDHasSuffix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasSuffix(FieldJobSpecID, v))
}

// JobSpecIDEqualFold applies the EqualFold predicate on the "job_spec_id" field.
func JobSpecIDEqualFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEqualFold(FieldJobSpecID, v))
}

// JobSpecIDContainsFold applies the ContainsFold predicate on the "job_spec_id" field.
func JobSpecIDContainsFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContainsFold(FieldJobSpecID, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContainsFold(FieldLanguage, v))
}

// PersonaEQ applies the EQ predicate on the "persona" field.
func PersonaEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldPersona, v))
}

// PersonaNEQ applies the NEQ predicate on the "persona" field.
func PersonaNEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldPersona, v))
}

// PersonaIn applies the In predicate on the "persona" field.
func PersonaIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldPersona, vs...))
}

// PersonaNotIn applies the NotIn predicate on the "persona" field.
func PersonaNotIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldPersona, vs...))
}

// PersonaGT applies the GT predicate on the "persona" field.
func PersonaGT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldPersona, v))
}

// PersonaGTE applies the GTE predicate on the "persona" field.
func PersonaGTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldPersona, v))
}

// PersonaLT applies the LT predicate on the "persona" field.
func PersonaLT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldPersona, v))
}

// PersonaLTE applies the LTE predicate on the "persona" field.
func PersonaLTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldPersona, v))
}

// PersonaContains applies the Contains predicate on the "persona" field.
func PersonaContains(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContains(FieldPersona, v))
}

// PersonaHasPrefix applies the HasPrefix predicate on the "persona" field.
func PersonaHasPrefix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasPrefix(FieldPersona, v))
}

// PersonaHasSuffix applies the HasSuffix predicate on the "persona" field.
func PersonaHasSuffix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasSuffix(FieldPersona, v))
}

// PersonaEqualFold applies the EqualFold predicate on the "persona" field.
func PersonaEqualFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEqualFold(FieldPersona, v))
}

// PersonaContainsFold applies the ContainsFold predicate on the "persona" field.
func PersonaContainsFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContainsFold(FieldPersona, v))
}

// PlanIsNil applies the IsNil predicate on the "plan" field.
func PlanIsNil() predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIsNull(FieldPlan))
}

// PlanNotNil applies the NotNil predicate on the "plan" field.
func PlanNotNil() predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotNull(FieldPlan))
}

// ConversationStateEQ applies the EQ predicate on the "conversation_state" field.
func ConversationStateEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldConversationState, v))
}

// ConversationStateNEQ applies the NEQ predicate on the "conversation_state" field.
func ConversationStateNEQ(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldConversationState, v))
}

// ConversationStateIn applies the In predicate on the "conversation_state" field.
func ConversationStateIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldConversationState, vs...))
}

// ConversationStateNotIn applies the NotIn predicate on the "conversation_state" field.
func ConversationStateNotIn(vs ...string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldConversationState, vs...))
}

// ConversationStateGT applies the GT predicate on the "conversation_state" field.
func ConversationStateGT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldConversationState, v))
}

// ConversationStateGTE applies the GTE predicate on the "conversation_state" field.
func ConversationStateGTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldConversationState, v))
}

// ConversationStateLT applies the LT predicate on the "conversation_state" field.
func ConversationStateLT(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldConversationState, v))
}

// ConversationStateLTE applies the LTE predicate on the "conversation_state" field.
func ConversationStateLTE(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldConversationState, v))
}

// ConversationStateContains applies the Contains predicate on the "conversation_state" field.
func ConversationStateContains(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContains(FieldConversationState, v))
}

// ConversationStateHasPrefix applies the HasPrefix predicate on the "conversation_state" field.
func ConversationStateHasPrefix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasPrefix(FieldConversationState, v))
}

// ConversationStateHasSuffix applies the HasSuffix predicate on the "conversation_state" field.
func ConversationStateHasSuffix(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldHasSuffix(FieldConversationState, v))
}

// ConversationStateEqualFold applies the EqualFold predicate on the "conversation_state" field.
func ConversationStateEqualFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEqualFold(FieldConversationState, v))
}

// ConversationStateContainsFold applies the ContainsFold predicate on the "conversation_state" field.
func ConversationStateContainsFold(v string) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldContainsFold(FieldConversationState, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.InterviewSession {
	return predicate.InterviewSession(sql.FieldNotNull(FieldEndedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InterviewSession) predicate.InterviewSession {
	return predicate.InterviewSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InterviewSession) predicate.InterviewSession {
	return predicate.InterviewSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InterviewSession) predicate.InterviewSession {
	return predicate.InterviewSession(sql.NotPredicates(p))
}
