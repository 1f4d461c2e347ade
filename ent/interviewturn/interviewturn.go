// Code generated by ent, DO NOT EDIT.

package interviewturn

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the interviewturn type in the database.
	Label = "interview_turn"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldTurnID holds the string denoting the turn_id field in the database.
	FieldTurnID = "turn_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTurnIndex holds the string denoting the turn_index field in the database.
	FieldTurnIndex = "turn_index"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldQuestionSnapshot holds the string denoting the question_snapshot field in the database.
	FieldQuestionSnapshot = "question_snapshot"
	// FieldTranscript holds the string denoting the transcript field in the database.
	FieldTranscript = "transcript"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldIsFollowup holds the string denoting the is_followup field in the database.
	FieldIsFollowup = "is_followup"
	// FieldParentTurnID holds the string denoting the parent_turn_id field in the database.
	FieldParentTurnID = "parent_turn_id"
	// FieldQuestionNumber holds the string denoting the question_number field in the database.
	FieldQuestionNumber = "question_number"
	// FieldTimeSpentSecs holds the string denoting the time_spent_secs field in the database.
	FieldTimeSpentSecs = "time_spent_secs"
	// Table holds the table name of the interviewturn in the database.
	Table = "interview_turns"
)

// Columns holds all SQL columns for interviewturn fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldTurnID,
	FieldSessionID,
	FieldTurnIndex,
	FieldQuestionID,
	FieldQuestionSnapshot,
	FieldTranscript,
	FieldCode,
	FieldScore,
	FieldIsFollowup,
	FieldParentTurnID,
	FieldQuestionNumber,
	FieldTimeSpentSecs,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// DefaultTranscript holds the default value on creation for the "transcript" field.
	DefaultTranscript string
	// DefaultCode holds the default value on creation for the "code" field.
	DefaultCode string
	// DefaultIsFollowup holds the default value on creation for the "is_followup" field.
	DefaultIsFollowup bool
	// DefaultParentTurnID holds the default value on creation for the "parent_turn_id" field.
	DefaultParentTurnID string
	// DefaultQuestionNumber holds the default value on creation for the "question_number" field.
	DefaultQuestionNumber int
	// DefaultTimeSpentSecs holds the default value on creation for the "time_spent_secs" field.
	DefaultTimeSpentSecs int
)

// OrderOption defines the ordering options for the InterviewTurn queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByTurnID orders the results by the turn_id field.
func ByTurnID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurnID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTurnIndex orders the results by the turn_index field.
func ByTurnIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurnIndex, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByQuestionSnapshot orders the results by the question_snapshot field.
func ByQuestionSnapshot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionSnapshot, opts...).ToFunc()
}

// ByTranscript orders the results by the transcript field.
func ByTranscript(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscript, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByIsFollowup orders the results by the is_followup field.
func ByIsFollowup(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsFollowup, opts...).ToFunc()
}

// ByParentTurnID orders the results by the parent_turn_id field.
func ByParentTurnID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentTurnID, opts...).ToFunc()
}

// ByQuestionNumber orders the results by the question_number field.
func ByQuestionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionNumber, opts...).ToFunc()
}

// ByTimeSpentSecs orders the results by the time_spent_secs field.
func ByTimeSpentSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentSecs, opts...).ToFunc()
}
