// Code generated by ent, DO NOT EDIT.

package questionhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the questionhistory type in the database.
	Label = "question_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldJdHash holds the string denoting the jd_hash field in the database.
	FieldJdHash = "jd_hash"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldLastAskedAt holds the string denoting the last_asked_at field in the database.
	FieldLastAskedAt = "last_asked_at"
	// Table holds the table name of the questionhistory in the database.
	Table = "question_histories"
)

// Columns holds all SQL columns for questionhistory fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldJdHash,
	FieldQuestionID,
	FieldSessionID,
	FieldLastAskedAt,
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
	// JdHashValidator is a validator for the "jd_hash" field. It is called by the builders before save.
	JdHashValidator func(string) error
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// DefaultSessionID holds the default value on creation for the "session_id" field.
	DefaultSessionID string
	// DefaultLastAskedAt holds the default value on creation for the "last_asked_at" field.
	DefaultLastAskedAt func() time.Time
)

// OrderOption defines the ordering options for the QuestionHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByJdHash orders the results by the jd_hash field.
func ByJdHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJdHash, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByLastAskedAt orders the results by the last_asked_at field.
func ByLastAskedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAskedAt, opts...).ToFunc()
}
