// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yonatank/prepair/ent/cvanalysis"
)

// CVAnalysis is the model entity for the CVAnalysis schema.
type CVAnalysis struct {
	config `json:"-"`
	// ID of the ent.
	// UUID
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// JobSpecID holds the value of the "job_spec_id" field.
	JobSpecID string `json:"job_spec_id,omitempty"`
	// 0-1 fit between CV and JD
	MatchScore float64 `json:"match_score,omitempty"`
	// Strengths holds the value of the "strengths" field.
	Strengths []string `json:"strengths,omitempty"`
	// Gaps holds the value of the "gaps" field.
	Gaps []string `json:"gaps,omitempty"`
	// Suggestions holds the value of the "suggestions" field.
	Suggestions []string `json:"suggestions,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CVAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cvanalysis.FieldStrengths, cvanalysis.FieldGaps, cvanalysis.FieldSuggestions:
			values[i] = new([]byte)
		case cvanalysis.FieldMatchScore:
			values[i] = new(sql.NullFloat64)
		case cvanalysis.FieldID, cvanalysis.FieldUserID, cvanalysis.FieldJobSpecID:
			values[i] = new(sql.NullString)
		case cvanalysis.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CVAnalysis fields.
func (_m *CVAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cvanalysis.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case cvanalysis.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case cvanalysis.FieldJobSpecID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_spec_id", values[i])
			} else if value.Valid {
				_m.JobSpecID = value.String
			}
		case cvanalysis.FieldMatchScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field match_score", values[i])
			} else if value.Valid {
				_m.MatchScore = value.Float64
			}
		case cvanalysis.FieldStrengths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field strengths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Strengths); err != nil {
					return fmt.Errorf("unmarshal field strengths: %w", err)
				}
			}
		case cvanalysis.FieldGaps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field gaps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Gaps); err != nil {
					return fmt.Errorf("unmarshal field gaps: %w", err)
				}
			}
		case cvanalysis.FieldSuggestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field suggestions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Suggestions); err != nil {
					return fmt.Errorf("unmarshal field suggestions: %w", err)
				}
			}
		case cvanalysis.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CVAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *CVAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CVAnalysis.
// Note that you need to call CVAnalysis.Unwrap() before calling this method if this CVAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CVAnalysis) Update() *CVAnalysisUpdateOne {
	return NewCVAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CVAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CVAnalysis) Unwrap() *CVAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CVAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CVAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("CVAnalysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("job_spec_id=")
	builder.WriteString(_m.JobSpecID)
	builder.WriteString(", ")
	builder.WriteString("match_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatchScore))
	builder.WriteString(", ")
	builder.WriteString("strengths=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strengths))
	builder.WriteString(", ")
	builder.WriteString("gaps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Gaps))
	builder.WriteString(", ")
	builder.WriteString("suggestions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Suggestions))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CVAnalyses is a parsable slice of CVAnalysis.
type CVAnalyses []*CVAnalysis
