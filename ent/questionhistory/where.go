// Code generated by ent, DO NOT EDIT.

package questionhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/yonatank/prepair/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldEQ(FieldUserID, v))
}

// JdHash applies equality check predicate on the "jd_hash" field. It's identical to JdHashEQ.
func JdHash(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldEQ(FieldJdHash, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldEQ(FieldQuestionID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldEQ(FieldSessionID, v))
}

// LastAskedAt applies equality check predicate on the "last_asked_at" field. It's identical to LastAskedAtEQ.
func LastAskedAt(v time.Time) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldEQ(FieldLastAskedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldContainsFold(FieldUserID, v))
}

// JdHashEQ applies the EQ predicate on the "jd_hash" field.
func JdHashEQ(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldEQ(FieldJdHash, v))
}

// JdHashNEQ applies the NEQ predicate on the "jd_hash" field.
func JdHashNEQ(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldNEQ(FieldJdHash, v))
}

// JdHashIn applies the In predicate on the "jd_hash" field.
func JdHashIn(vs ...string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldIn(FieldJdHash, vs...))
}

// JdHashNotIn applies the NotIn predicate on the "jd_hash" field.
func JdHashNotIn(vs ...string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldNotIn(FieldJdHash, vs...))
}

// JdHashGT applies the GT predicate on the "jd_hash" field.
func JdHashGT(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldGT(FieldJdHash, v))
}

// JdHashGTE applies the GTE predicate on the "jd_hash" field.
func JdHashGTE(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldGTE(FieldJdHash, v))
}

// JdHashLT applies the LT predicate on the "jd_hash" field.
func JdHashLT(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldLT(FieldJdHash, v))
}

// JdHashLTE applies the LTE predicate on the "jd_hash" field.
func JdHashLTE(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldLTE(FieldJdHash, v))
}

// JdHashContains applies the Contains predicate on the "jd_hash" field.
func JdHashContains(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldContains(FieldJdHash, v))
}

// JdHashHasPrefix applies the HasPrefix predicate on the "jd_hash" field.
func JdHashHasPrefix(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldHasPrefix(FieldJdHash, v))
}

// JdHashHasSuffix applies the HasSuffix predicate on the "jd_hash" field.
func JdHashHasSuffix(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldHasSuffix(FieldJdHash, v))
}

// JdHashEqualFold applies the EqualFold predicate on the "jd_hash" field.
func JdHashEqualFold(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldEqualFold(FieldJdHash, v))
}

// JdHashContainsFold applies the ContainsFold predicate on the "jd_hash" field.
func JdHashContainsFold(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldContainsFold(FieldJdHash, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldContainsFold(FieldQuestionID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldContainsFold(FieldSessionID, v))
}

// LastAskedAtEQ applies the EQ predicate on the "last_asked_at" field.
func LastAskedAtEQ(v time.Time) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldEQ(FieldLastAskedAt, v))
}

// LastAskedAtNEQ applies the NEQ predicate on the "last_asked_at" field.
func LastAskedAtNEQ(v time.Time) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldNEQ(FieldLastAskedAt, v))
}

// LastAskedAtIn applies the In predicate on the "last_asked_at" field.
func LastAskedAtIn(vs ...time.Time) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldIn(FieldLastAskedAt, vs...))
}

// LastAskedAtNotIn applies the NotIn predicate on the "last_asked_at" field.
func LastAskedAtNotIn(vs ...time.Time) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldNotIn(FieldLastAskedAt, vs...))
}

// LastAskedAtGT applies the GT predicate on the "last_asked_at" field.
func LastAskedAtGT(v time.Time) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldGT(FieldLastAskedAt, v))
}

// LastAskedAtGTE applies the GTE predicate on the "last_asked_at" field.
func LastAskedAtGTE(v time.Time) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldGTE(FieldLastAskedAt, v))
}

// LastAskedAtLT applies the LT predicate on the "last_asked_at" field.
func LastAskedAtLT(v time.Time) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldLT(FieldLastAskedAt, v))
}

// LastAskedAtLTE applies the LTE predicate on the "last_asked_at" field.
func LastAskedAtLTE(v time.Time) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.FieldLTE(FieldLastAskedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionHistory) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionHistory) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionHistory) predicate.QuestionHistory {
	return predicate.QuestionHistory(sql.NotPredicates(p))
}
