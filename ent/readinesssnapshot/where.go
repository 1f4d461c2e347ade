// Code generated by ent, DO NOT EDIT.

package readinesssnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/yonatank/prepair/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldUserID, v))
}

// JobSpecID applies equality check predicate on the "job_spec_id" field. It's identical to JobSpecIDEQ.
func JobSpecID(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldJobSpecID, v))
}

// ReadinessScore applies equality check predicate on the "readiness_score" field. It's identical to ReadinessScoreEQ.
func ReadinessScore(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldReadinessScore, v))
}

// CvScore applies equality check predicate on the "cv_score" field. It's identical to CvScoreEQ.
func CvScore(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldCvScore, v))
}

// InterviewScore applies equality check predicate on the "interview_score" field. It's identical to InterviewScoreEQ.
func InterviewScore(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldInterviewScore, v))
}

// PracticeScore applies equality check predicate on the "practice_score" field. It's identical to PracticeScoreEQ.
func PracticeScore(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldPracticeScore, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldContainsFold(FieldUserID, v))
}

// JobSpecIDEQ applies the EQ predicate on the "job_spec_id" field.
func JobSpecIDEQ(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldJobSpecID, v))
}

// JobSpecIDNEQ applies the NEQ predicate on the "job_spec_id" field.
func JobSpecIDNEQ(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNEQ(FieldJobSpecID, v))
}

// JobSpecIDIn applies the In predicate on the "job_spec_id" field.
func JobSpecIDIn(vs ...string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldIn(FieldJobSpecID, vs...))
}

// JobSpecIDNotIn applies the NotIn predicate on the "job_spec_id" field.
func JobSpecIDNotIn(vs ...string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNotIn(FieldJobSpecID, vs...))
}

// JobSpecIDGT applies the GT predicate on the "job_spec_id" field.
func JobSpecIDGT(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGT(FieldJobSpecID, v))
}

// JobSpecIDGTE applies the GTE predicate on the "job_spec_id" field.
func JobSpecIDGTE(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGTE(FieldJobSpecID, v))
}

// JobSpecIDLT applies the LT predicate on the "job_spec_id" field.
func JobSpecIDLT(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLT(FieldJobSpecID, v))
}

// JobSpecIDLTE applies the LTE predicate on the "job_spec_id" field.
func JobSpecIDLTE(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLTE(FieldJobSpecID, v))
}

// JobSpecIDContains applies the Contains predicate on the "job_spec_id" field.
func JobSpecIDContains(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldContains(FieldJobSpecID, v))
}

// JobSpecIDHasPrefix applies the HasPrefix predicate on the "job_spec_id" field.
func JobSpecIDHasPrefix(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldHasPrefix(FieldJobSpecID, v))
}

// JobSpecIDHasSuffix applies the HasSuffix predicate on the "job_spec_id" field.
func JobSpecIDHasSuffix(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldHasSuffix(FieldJobSpecID, v))
}

// JobSpecIDEqualFold applies the EqualFold predicate on the "job_spec_id" field.
func JobSpecIDEqualFold(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEqualFold(FieldJobSpecID, v))
}

// JobSpecIDContainsFold applies the ContainsFold predicate on the "job_spec_id" field.
func JobSpecIDContainsFold(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldContainsFold(FieldJobSpecID, v))
}

// ReadinessScoreEQ applies the EQ predicate on the "readiness_score" field.
func ReadinessScoreEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldReadinessScore, v))
}

// ReadinessScoreNEQ applies the NEQ predicate on the "readiness_score" field.
func ReadinessScoreNEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNEQ(FieldReadinessScore, v))
}

// ReadinessScoreIn applies the In predicate on the "readiness_score" field.
func ReadinessScoreIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldIn(FieldReadinessScore, vs...))
}

// ReadinessScoreNotIn applies the NotIn predicate on the "readiness_score" field.
func ReadinessScoreNotIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNotIn(FieldReadinessScore, vs...))
}

// ReadinessScoreGT applies the GT predicate on the "readiness_score" field.
func ReadinessScoreGT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGT(FieldReadinessScore, v))
}

// ReadinessScoreGTE applies the GTE predicate on the "readiness_score" field.
func ReadinessScoreGTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGTE(FieldReadinessScore, v))
}

// ReadinessScoreLT applies the LT predicate on the "readiness_score" field.
func ReadinessScoreLT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLT(FieldReadinessScore, v))
}

// ReadinessScoreLTE applies the LTE predicate on the "readiness_score" field.
func ReadinessScoreLTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLTE(FieldReadinessScore, v))
}

// CvScoreEQ applies the EQ predicate on the "cv_score" field.
func CvScoreEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldCvScore, v))
}

// CvScoreNEQ applies the NEQ predicate on the "cv_score" field.
func CvScoreNEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNEQ(FieldCvScore, v))
}

// CvScoreIn applies the In predicate on the "cv_score" field.
func CvScoreIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldIn(FieldCvScore, vs...))
}

// CvScoreNotIn applies the NotIn predicate on the "cv_score" field.
func CvScoreNotIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNotIn(FieldCvScore, vs...))
}

// CvScoreGT applies the GT predicate on the "cv_score" field.
func CvScoreGT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGT(FieldCvScore, v))
}

// CvScoreGTE applies the GTE predicate on the "cv_score" field.
func CvScoreGTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGTE(FieldCvScore, v))
}

// CvScoreLT applies the LT predicate on the "cv_score" field.
func CvScoreLT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLT(FieldCvScore, v))
}

// CvScoreLTE applies the LTE predicate on the "cv_score" field.
func CvScoreLTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLTE(FieldCvScore, v))
}

// InterviewScoreEQ applies the EQ predicate on the "interview_score" field.
func InterviewScoreEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldInterviewScore, v))
}

// InterviewScoreNEQ applies the NEQ predicate on the "interview_score" field.
func InterviewScoreNEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNEQ(FieldInterviewScore, v))
}

// InterviewScoreIn applies the In predicate on the "interview_score" field.
func InterviewScoreIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldIn(FieldInterviewScore, vs...))
}

// InterviewScoreNotIn applies the NotIn predicate on the "interview_score" field.
func InterviewScoreNotIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNotIn(FieldInterviewScore, vs...))
}

// InterviewScoreGT applies the GT predicate on the "interview_score" field.
func InterviewScoreGT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGT(FieldInterviewScore, v))
}

// InterviewScoreGTE applies the GTE predicate on the "interview_score" field.
func InterviewScoreGTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGTE(FieldInterviewScore, v))
}

// InterviewScoreLT applies the LT predicate on the "interview_score" field.
func InterviewScoreLT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLT(FieldInterviewScore, v))
}

// InterviewScoreLTE applies the LTE predicate on the "interview_score" field.
func InterviewScoreLTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLTE(FieldInterviewScore, v))
}

// PracticeScoreEQ applies the EQ predicate on the "practice_score" field.
func PracticeScoreEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldPracticeScore, v))
}

// PracticeScoreNEQ applies the NEQ predicate on the "practice_score" field.
func PracticeScoreNEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNEQ(FieldPracticeScore, v))
}

// PracticeScoreIn applies the In predicate on the "practice_score" field.
func PracticeScoreIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldIn(FieldPracticeScore, vs...))
}

// PracticeScoreNotIn applies the NotIn predicate on the "practice_score" field.
func PracticeScoreNotIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNotIn(FieldPracticeScore, vs...))
}

// PracticeScoreGT applies the GT predicate on the "practice_score" field.
func PracticeScoreGT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGT(FieldPracticeScore, v))
}

// PracticeScoreGTE applies the GTE predicate on the "practice_score" field.
func PracticeScoreGTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGTE(FieldPracticeScore, v))
}

// PracticeScoreLT applies the LT predicate on the "practice_score" field.
func PracticeScoreLT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLT(FieldPracticeScore, v))
}

// PracticeScoreLTE applies the LTE predicate on the "practice_score" field.
func PracticeScoreLTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLTE(FieldPracticeScore, v))
}

// BreakdownIsNil applies the IsNil predicate on the "breakdown" field.
func BreakdownIsNil() predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldIsNull(FieldBreakdown))
}

// BreakdownNotNil applies the NotNil predicate on the "breakdown" field.
func BreakdownNotNil() predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNotNull(FieldBreakdown))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLTE(FieldTimestamp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReadinessSnapshot) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReadinessSnapshot) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReadinessSnapshot) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.NotPredicates(p))
}
