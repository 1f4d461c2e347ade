// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yonatank/prepair/ent/interviewturn"
)

// InterviewTurn is the model entity for the InterviewTurn schema.
type InterviewTurn struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID
	TurnID string `json:"turn_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Position within the session, 0-based
	TurnIndex int `json:"turn_index,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// Question text as presented, post-refinement
	QuestionSnapshot string `json:"question_snapshot,omitempty"`
	// Transcript holds the value of the "transcript" field.
	Transcript string `json:"transcript,omitempty"`
	// Submitted code, code questions only
	Code string `json:"code,omitempty"`
	// Satisfaction score in [0,1]
	Score float64 `json:"score,omitempty"`
	// IsFollowup holds the value of the "is_followup" field.
	IsFollowup bool `json:"is_followup,omitempty"`
	// Most recent main turn when this turn is a follow-up
	ParentTurnID string `json:"parent_turn_id,omitempty"`
	// Plan index of the question this turn belongs to
	QuestionNumber int `json:"question_number,omitempty"`
	// TimeSpentSecs holds the value of the "time_spent_secs" field.
	TimeSpentSecs int `json:"time_spent_secs,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InterviewTurn) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interviewturn.FieldIsFollowup:
			values[i] = new(sql.NullBool)
		case interviewturn.FieldScore:
			values[i] = new(sql.NullFloat64)
		case interviewturn.FieldID, interviewturn.FieldSequence, interviewturn.FieldTurnIndex, interviewturn.FieldQuestionNumber, interviewturn.FieldTimeSpentSecs:
			values[i] = new(sql.NullInt64)
		case interviewturn.FieldTurnID, interviewturn.FieldSessionID, interviewturn.FieldQuestionID, interviewturn.FieldQuestionSnapshot, interviewturn.FieldTranscript, interviewturn.FieldCode, interviewturn.FieldParentTurnID:
			values[i] = new(sql.NullString)
		case interviewturn.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InterviewTurn fields.
func (_m *InterviewTurn) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interviewturn.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case interviewturn.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case interviewturn.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case interviewturn.FieldTurnID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field turn_id", values[i])
			} else if value.Valid {
				_m.TurnID = value.String
			}
		case interviewturn.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case interviewturn.FieldTurnIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turn_index", values[i])
			} else if value.Valid {
				_m.TurnIndex = int(value.Int64)
			}
		case interviewturn.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case interviewturn.FieldQuestionSnapshot:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_snapshot", values[i])
			} else if value.Valid {
				_m.QuestionSnapshot = value.String
			}
		case interviewturn.FieldTranscript:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transcript", values[i])
			} else if value.Valid {
				_m.Transcript = value.String
			}
		case interviewturn.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case interviewturn.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case interviewturn.FieldIsFollowup:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_followup", values[i])
			} else if value.Valid {
				_m.IsFollowup = value.Bool
			}
		case interviewturn.FieldParentTurnID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_turn_id", values[i])
			} else if value.Valid {
				_m.ParentTurnID = value.String
			}
		case interviewturn.FieldQuestionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_number", values[i])
			} else if value.Valid {
				_m.QuestionNumber = int(value.Int64)
			}
		case interviewturn.FieldTimeSpentSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_secs", values[i])
			} else if value.Valid {
				_m.TimeSpentSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InterviewTurn.
// This includes values selected through modifiers, order, etc.
func (_m *InterviewTurn) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InterviewTurn.
// Note that you need to call InterviewTurn.Unwrap() before calling this method if this InterviewTurn
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InterviewTurn) Update() *InterviewTurnUpdateOne {
	return NewInterviewTurnClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InterviewTurn entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InterviewTurn) Unwrap() *InterviewTurn {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InterviewTurn is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InterviewTurn) String() string {
	var builder strings.Builder
	builder.WriteString("InterviewTurn(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("turn_id=")
	builder.WriteString(_m.TurnID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("turn_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.TurnIndex))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("question_snapshot=")
	builder.WriteString(_m.QuestionSnapshot)
	builder.WriteString(", ")
	builder.WriteString("transcript=")
	builder.WriteString(_m.Transcript)
	builder.WriteString(", ")
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("is_followup=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsFollowup))
	builder.WriteString(", ")
	builder.WriteString("parent_turn_id=")
	builder.WriteString(_m.ParentTurnID)
	builder.WriteString(", ")
	builder.WriteString("question_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionNumber))
	builder.WriteString(", ")
	builder.WriteString("time_spent_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentSecs))
	builder.WriteByte(')')
	return builder.String()
}

// InterviewTurns is a parsable slice of InterviewTurn.
type InterviewTurns []*InterviewTurn
