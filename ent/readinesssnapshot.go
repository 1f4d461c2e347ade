// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yonatank/prepair/ent/readinesssnapshot"
	"github.com/yonatank/prepair/ent/schema"
)

// ReadinessSnapshot is the model entity for the ReadinessSnapshot schema.
type ReadinessSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// JobSpecID holds the value of the "job_spec_id" field.
	JobSpecID string `json:"job_spec_id,omitempty"`
	// ReadinessScore holds the value of the "readiness_score" field.
	ReadinessScore float64 `json:"readiness_score,omitempty"`
	// CvScore holds the value of the "cv_score" field.
	CvScore float64 `json:"cv_score,omitempty"`
	// InterviewScore holds the value of the "interview_score" field.
	InterviewScore float64 `json:"interview_score,omitempty"`
	// PracticeScore holds the value of the "practice_score" field.
	PracticeScore float64 `json:"practice_score,omitempty"`
	// Breakdown holds the value of the "breakdown" field.
	Breakdown *schema.ReadinessBreakdownData `json:"breakdown,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp    time.Time `json:"timestamp,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReadinessSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case readinesssnapshot.FieldBreakdown:
			values[i] = new([]byte)
		case readinesssnapshot.FieldReadinessScore, readinesssnapshot.FieldCvScore, readinesssnapshot.FieldInterviewScore, readinesssnapshot.FieldPracticeScore:
			values[i] = new(sql.NullFloat64)
		case readinesssnapshot.FieldID:
			values[i] = new(sql.NullInt64)
		case readinesssnapshot.FieldUserID, readinesssnapshot.FieldJobSpecID:
			values[i] = new(sql.NullString)
		case readinesssnapshot.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReadinessSnapshot fields.
func (_m *ReadinessSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case readinesssnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case readinesssnapshot.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case readinesssnapshot.FieldJobSpecID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_spec_id", values[i])
			} else if value.Valid {
				_m.JobSpecID = value.String
			}
		case readinesssnapshot.FieldReadinessScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field readiness_score", values[i])
			} else if value.Valid {
				_m.ReadinessScore = value.Float64
			}
		case readinesssnapshot.FieldCvScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cv_score", values[i])
			} else if value.Valid {
				_m.CvScore = value.Float64
			}
		case readinesssnapshot.FieldInterviewScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field interview_score", values[i])
			} else if value.Valid {
				_m.InterviewScore = value.Float64
			}
		case readinesssnapshot.FieldPracticeScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field practice_score", values[i])
			} else if value.Valid {
				_m.PracticeScore = value.Float64
			}
		case readinesssnapshot.FieldBreakdown:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field breakdown", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Breakdown); err != nil {
					return fmt.Errorf("unmarshal field breakdown: %w", err)
				}
			}
		case readinesssnapshot.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReadinessSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *ReadinessSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReadinessSnapshot.
// Note that you need to call ReadinessSnapshot.Unwrap() before calling this method if this ReadinessSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReadinessSnapshot) Update() *ReadinessSnapshotUpdateOne {
	return NewReadinessSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReadinessSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReadinessSnapshot) Unwrap() *ReadinessSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReadinessSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReadinessSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("ReadinessSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("job_spec_id=")
	builder.WriteString(_m.JobSpecID)
	builder.WriteString(", ")
	builder.WriteString("readiness_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReadinessScore))
	builder.WriteString(", ")
	builder.WriteString("cv_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CvScore))
	builder.WriteString(", ")
	builder.WriteString("interview_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.InterviewScore))
	builder.WriteString(", ")
	builder.WriteString("practice_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.PracticeScore))
	builder.WriteString(", ")
	builder.WriteString("breakdown=")
	builder.WriteString(fmt.Sprintf("%v", _m.Breakdown))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReadinessSnapshots is a parsable slice of ReadinessSnapshot.
type ReadinessSnapshots []*ReadinessSnapshot
