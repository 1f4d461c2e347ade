// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yonatank/prepair/ent/questionhistory"
)

// QuestionHistory is the model entity for the QuestionHistory schema.
type QuestionHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// JdHash holds the value of the "jd_hash" field.
	JdHash string `json:"jd_hash,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// LastAskedAt holds the value of the "last_asked_at" field.
	LastAskedAt  time.Time `json:"last_asked_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionhistory.FieldID:
			values[i] = new(sql.NullInt64)
		case questionhistory.FieldUserID, questionhistory.FieldJdHash, questionhistory.FieldQuestionID, questionhistory.FieldSessionID:
			values[i] = new(sql.NullString)
		case questionhistory.FieldLastAskedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionHistory fields.
func (_m *QuestionHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionhistory.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case questionhistory.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case questionhistory.FieldJdHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field jd_hash", values[i])
			} else if value.Valid {
				_m.JdHash = value.String
			}
		case questionhistory.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case questionhistory.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case questionhistory.FieldLastAskedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_asked_at", values[i])
			} else if value.Valid {
				_m.LastAskedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionHistory.
// This includes values selected through modifiers, order, etc.
func (_m *QuestionHistory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuestionHistory.
// Note that you need to call QuestionHistory.Unwrap() before calling this method if this QuestionHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestionHistory) Update() *QuestionHistoryUpdateOne {
	return NewQuestionHistoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestionHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestionHistory) Unwrap() *QuestionHistory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestionHistory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestionHistory) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("jd_hash=")
	builder.WriteString(_m.JdHash)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("last_asked_at=")
	builder.WriteString(_m.LastAskedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuestionHistories is a parsable slice of QuestionHistory.
type QuestionHistories []*QuestionHistory
