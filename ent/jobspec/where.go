// Code generated by ent, DO NOT EDIT.

package jobspec

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/yonatank/prepair/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldContainsFold(FieldID, id))
}

// JdHash applies equality check predicate on the "jd_hash" field. It's identical to JdHashEQ.
func JdHash(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldEQ(FieldJdHash, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldEQ(FieldTitle, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldEQ(FieldRawText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldEQ(FieldCreatedAt, v))
}

// JdHashEQ applies the EQ predicate on the "jd_hash" field.
func JdHashEQ(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldEQ(FieldJdHash, v))
}

// JdHashNEQ applies the NEQ predicate on the "jd_hash" field.
func JdHashNEQ(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldNEQ(FieldJdHash, v))
}

// JdHashIn applies the In predicate on the "jd_hash" field.
func JdHashIn(vs ...string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldIn(FieldJdHash, vs...))
}

// JdHashNotIn applies the NotIn predicate on the "jd_hash" field.
func JdHashNotIn(vs ...string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldNotIn(FieldJdHash, vs...))
}

// JdHashGT applies the GT predicate on the "jd_hash" field.
func JdHashGT(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldGT(FieldJdHash, v))
}

// JdHashGTE applies the GTE predicate on the "jd_hash" field.
func JdHashGTE(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldGTE(FieldJdHash, v))
}

// JdHashLT applies the LT predicate on the "jd_hash" field.
func JdHashLT(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldLT(FieldJdHash, v))
}

// JdHashLTE applies the LTE predicate on the "jd_hash" field.
func JdHashLTE(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldLTE(FieldJdHash, v))
}

// JdHashContains applies the Contains predicate on the "jd_hash" field.
func JdHashContains(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldContains(FieldJdHash, v))
}

// JdHashHasPrefix applies the HasPrefix predicate on the "jd_hash" field.
func JdHashHasPrefix(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldHasPrefix(FieldJdHash, v))
}

// JdHashHasSuffix applies the HasSuffix predicate on the "jd_hash" field.
func JdHashHasSuffix(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldHasSuffix(FieldJdHash, v))
}

// JdHashEqualFold applies the EqualFold predicate on the "jd_hash" field.
func JdHashEqualFold(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldEqualFold(FieldJdHash, v))
}

// JdHashContainsFold applies the ContainsFold predicate on the "jd_hash" field.
func JdHashContainsFold(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldContainsFold(FieldJdHash, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldContainsFold(FieldTitle, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldContainsFold(FieldRawText, v))
}

// RoleProfileIsNil applies the IsNil predicate on the "role_profile" field.
func RoleProfileIsNil() predicate.JobSpec {
	return predicate.JobSpec(sql.FieldIsNull(FieldRoleProfile))
}

// RoleProfileNotNil applies the NotNil predicate on the "role_profile" field.
func RoleProfileNotNil() predicate.JobSpec {
	return predicate.JobSpec(sql.FieldNotNull(FieldRoleProfile))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.JobSpec {
	return predicate.JobSpec(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobSpec) predicate.JobSpec {
	return predicate.JobSpec(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobSpec) predicate.JobSpec {
	return predicate.JobSpec(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobSpec) predicate.JobSpec {
	return predicate.JobSpec(sql.NotPredicates(p))
}
