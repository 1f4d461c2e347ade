// Code generated by ent, DO NOT EDIT.

package cvanalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/yonatank/prepair/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldEQ(FieldUserID, v))
}

// JobSpecID applies equality check predicate on the "job_spec_id" field. It's identical to JobSpecIDEQ.
func JobSpecID(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldEQ(FieldJobSpecID, v))
}

// MatchScore applies equality check predicate on the "match_score" field. It's identical to MatchScoreEQ.
func MatchScore(v float64) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldEQ(FieldMatchScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldContainsFold(FieldUserID, v))
}

// JobSpecIDEQ applies the EQ predicate on the "job_spec_id" field.
func JobSpecIDEQ(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldEQ(FieldJobSpecID, v))
}

// JobSpecIDNEQ applies the NEQ predicate on the "job_spec_id" field.
func JobSpecIDNEQ(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldNEQ(FieldJobSpecID, v))
}

// JobSpecIDIn applies the In predicate on the "job_spec_id" field.
func JobSpecIDIn(vs ...string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldIn(FieldJobSpecID, vs...))
}

// JobSpecIDNotIn applies the NotIn predicate on the "job_spec_id" field.
func JobSpecIDNotIn(vs ...string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldNotIn(FieldJobSpecID, vs...))
}

// JobSpecIDGT applies the GT predicate on the "job_spec_id" field.
func JobSpecIDGT(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldGT(FieldJobSpecID, v))
}

// JobSpecIDGTE applies the GTE predicate on the "job_spec_id" field.
func JobSpecIDGTE(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldGTE(FieldJobSpecID, v))
}

// JobSpecIDLT applies the LT predicate on the "job_spec_id" field.
func JobSpecIDLT(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldLT(FieldJobSpecID, v))
}

// JobSpecIDLTE applies the LTE predicate on the "job_spec_id" field.
func JobSpecIDLTE(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldLTE(FieldJobSpecID, v))
}

// JobSpecIDContains applies the Contains predicate on the "job_spec_id" field.
func JobSpecIDContains(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldContains(FieldJobSpecID, v))
}

// JobSpecIDHasPrefix applies the HasPrefix predicate on the "job_spec_id" field.
func JobSpecIDHasPrefix(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldHasPrefix(FieldJobSpecID, v))
}

// JobSpecIDHasSuffix applies the HasSuffix predicate on the "job_spec_id" field.
func JobSpecIDHasSuffix(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldHasSuffix(FieldJobSpecID, v))
}

// JobSpecIDEqualFold applies the EqualFold predicate on the "job_spec_id" field.
func JobSpecIDEqualFold(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldEqualFold(FieldJobSpecID, v))
}

// JobSpecIDContainsFold applies the ContainsFold predicate on the "job_spec_id" field.
func JobSpecIDContainsFold(v string) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldContainsFold(FieldJobSpecID, v))
}

// MatchScoreEQ applies the EQ predicate on the "match_score" field.
func MatchScoreEQ(v float64) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldEQ(FieldMatchScore, v))
}

// MatchScoreNEQ applies the NEQ predicate on the "match_score" field.
func MatchScoreNEQ(v float64) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldNEQ(FieldMatchScore, v))
}

// MatchScoreIn applies the In predicate on the "match_score" field.
func MatchScoreIn(vs ...float64) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldIn(FieldMatchScore, vs...))
}

// MatchScoreNotIn applies the NotIn predicate on the "match_score" field.
func MatchScoreNotIn(vs ...float64) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldNotIn(FieldMatchScore, vs...))
}

// MatchScoreGT applies the GT predicate on the "match_score" field.
func MatchScoreGT(v float64) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldGT(FieldMatchScore, v))
}

// MatchScoreGTE applies the GTE predicate on the "match_score" field.
func MatchScoreGTE(v float64) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldGTE(FieldMatchScore, v))
}

// MatchScoreLT applies the LT predicate on the "match_score" field.
func MatchScoreLT(v float64) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldLT(FieldMatchScore, v))
}

// MatchScoreLTE applies the LTE predicate on the "match_score" field.
func MatchScoreLTE(v float64) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldLTE(FieldMatchScore, v))
}

// StrengthsIsNil applies the IsNil predicate on the "strengths" field.
func StrengthsIsNil() predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldIsNull(FieldStrengths))
}

// StrengthsNotNil applies the NotNil predicate on the "strengths" field.
func StrengthsNotNil() predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldNotNull(FieldStrengths))
}

// GapsIsNil applies the IsNil predicate on the "gaps" field.
func GapsIsNil() predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldIsNull(FieldGaps))
}

// GapsNotNil applies the NotNil predicate on the "gaps" field.
func GapsNotNil() predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldNotNull(FieldGaps))
}

// SuggestionsIsNil applies the IsNil predicate on the "suggestions" field.
func SuggestionsIsNil() predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldIsNull(FieldSuggestions))
}

// SuggestionsNotNil applies the NotNil predicate on the "suggestions" field.
func SuggestionsNotNil() predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldNotNull(FieldSuggestions))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CVAnalysis) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CVAnalysis) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CVAnalysis) predicate.CVAnalysis {
	return predicate.CVAnalysis(sql.NotPredicates(p))
}
