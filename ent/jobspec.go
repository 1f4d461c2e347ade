// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yonatank/prepair/ent/jobspec"
	"github.com/yonatank/prepair/ent/schema"
)

// JobSpec is the model entity for the JobSpec schema.
type JobSpec struct {
	config `json:"-"`
	// ID of the ent.
	// UUID
	ID string `json:"id,omitempty"`
	// MD5 of the JD text, dedupe key
	JdHash string `json:"jd_hash,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// Extracted once at ingest; immutable after creation
	RoleProfile *schema.RoleProfileData `json:"role_profile,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobSpec) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobspec.FieldRoleProfile:
			values[i] = new([]byte)
		case jobspec.FieldID, jobspec.FieldJdHash, jobspec.FieldTitle, jobspec.FieldRawText:
			values[i] = new(sql.NullString)
		case jobspec.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobSpec fields.
func (_m *JobSpec) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobspec.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case jobspec.FieldJdHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field jd_hash", values[i])
			} else if value.Valid {
				_m.JdHash = value.String
			}
		case jobspec.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case jobspec.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case jobspec.FieldRoleProfile:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field role_profile", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RoleProfile); err != nil {
					return fmt.Errorf("unmarshal field role_profile: %w", err)
				}
			}
		case jobspec.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the JobSpec.
// This includes values selected through modifiers, order, etc.
func (_m *JobSpec) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this JobSpec.
// Note that you need to call JobSpec.Unwrap() before calling this method if this JobSpec
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobSpec) Update() *JobSpecUpdateOne {
	return NewJobSpecClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobSpec entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobSpec) Unwrap() *JobSpec {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobSpec is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobSpec) String() string {
	var builder strings.Builder
	builder.WriteString("JobSpec(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("jd_hash=")
	builder.WriteString(_m.JdHash)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	builder.WriteString("role_profile=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoleProfile))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// JobSpecs is a parsable slice of JobSpec.
type JobSpecs []*JobSpec
