// Code generated by ent, DO NOT EDIT.

package readinesssnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the readinesssnapshot type in the database.
	Label = "readiness_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldJobSpecID holds the string denoting the job_spec_id field in the database.
	FieldJobSpecID = "job_spec_id"
	// FieldReadinessScore holds the string denoting the readiness_score field in the database.
	FieldReadinessScore = "readiness_score"
	// FieldCvScore holds the string denoting the cv_score field in the database.
	FieldCvScore = "cv_score"
	// FieldInterviewScore holds the string denoting the interview_score field in the database.
	FieldInterviewScore = "interview_score"
	// FieldPracticeScore holds the string denoting the practice_score field in the database.
	FieldPracticeScore = "practice_score"
	// FieldBreakdown holds the string denoting the breakdown field in the database.
	FieldBreakdown = "breakdown"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// Table holds the table name of the readinesssnapshot in the database.
	Table = "readiness_snapshots"
)

// Columns holds all SQL columns for readinesssnapshot fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldJobSpecID,
	FieldReadinessScore,
	FieldCvScore,
	FieldInterviewScore,
	FieldPracticeScore,
	FieldBreakdown,
	FieldTimestamp,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultJobSpecID holds the default value on creation for the "job_spec_id" field.
	DefaultJobSpecID string
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// OrderOption defines the ordering options for the ReadinessSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByJobSpecID orders the results by the job_spec_id field.
func ByJobSpecID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobSpecID, opts...).ToFunc()
}

// ByReadinessScore orders the results by the readiness_score field.
func ByReadinessScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadinessScore, opts...).ToFunc()
}

// ByCvScore orders the results by the cv_score field.
func ByCvScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCvScore, opts...).ToFunc()
}

// ByInterviewScore orders the results by the interview_score field.
func ByInterviewScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterviewScore, opts...).ToFunc()
}

// ByPracticeScore orders the results by the practice_score field.
func ByPracticeScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPracticeScore, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}
