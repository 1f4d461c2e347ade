// Code generated by ent, DO NOT EDIT.

package interviewsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the interviewsession type in the database.
	Label = "interview_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldJobSpecID holds the string denoting the job_spec_id field in the database.
	FieldJobSpecID = "job_spec_id"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldPersona holds the string denoting the persona field in the database.
	FieldPersona = "persona"
	// FieldPlan holds the string denoting the plan field in the database.
	FieldPlan = "plan"
	// FieldConversationState holds the string denoting the conversation_state field in the database.
	FieldConversationState = "conversation_state"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// Table holds the table name of the interviewsession in the database.
	Table = "interview_sessions"
)

// Columns holds all SQL columns for interviewsession fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldJobSpecID,
	FieldLanguage,
	FieldPersona,
	FieldPlan,
	FieldConversationState,
	FieldStartedAt,
	FieldEndedAt,
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
	// DefaultLanguage holds the default value on creation for the "language" field.
	DefaultLanguage string
	// DefaultPersona holds the default value on creation for the "persona" field.
	DefaultPersona string
	// DefaultConversationState holds the default value on creation for the "conversation_state" field.
	DefaultConversationState string
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// OrderOption defines the ordering options for the InterviewSession queries.
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

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByPersona orders the results by the persona field.
func ByPersona(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersona, opts...).ToFunc()
}

// ByConversationState orders the results by the conversation_state field.
func ByConversationState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationState, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}
