// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yonatank/prepair/ent/predicate"
	"github.com/yonatank/prepair/ent/readinesssnapshot"
	"github.com/yonatank/prepair/ent/schema"
)

// ReadinessSnapshotUpdate is the builder for updating ReadinessSnapshot entities.
type ReadinessSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ReadinessSnapshotMutation
}

// Where appends a list predicates to the ReadinessSnapshotUpdate builder.
func (_u *ReadinessSnapshotUpdate) Where(ps ...predicate.ReadinessSnapshot) *ReadinessSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReadinessSnapshotUpdate) SetUserID(v string) *ReadinessSnapshotUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdate) SetNillableUserID(v *string) *ReadinessSnapshotUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetJobSpecID sets the "job_spec_id" field.
func (_u *ReadinessSnapshotUpdate) SetJobSpecID(v string) *ReadinessSnapshotUpdate {
	_u.mutation.SetJobSpecID(v)
	return _u
}

// SetNillableJobSpecID sets the "job_spec_id" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdate) SetNillableJobSpecID(v *string) *ReadinessSnapshotUpdate {
	if v != nil {
		_u.SetJobSpecID(*v)
	}
	return _u
}

// SetReadinessScore sets the "readiness_score" field.
func (_u *ReadinessSnapshotUpdate) SetReadinessScore(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.ResetReadinessScore()
	_u.mutation.SetReadinessScore(v)
	return _u
}

// SetNillableReadinessScore sets the "readiness_score" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdate) SetNillableReadinessScore(v *float64) *ReadinessSnapshotUpdate {
	if v != nil {
		_u.SetReadinessScore(*v)
	}
	return _u
}

// AddReadinessScore adds value to the "readiness_score" field.
func (_u *ReadinessSnapshotUpdate) AddReadinessScore(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.AddReadinessScore(v)
	return _u
}

// SetCvScore sets the "cv_score" field.
func (_u *ReadinessSnapshotUpdate) SetCvScore(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.ResetCvScore()
	_u.mutation.SetCvScore(v)
	return _u
}

// SetNillableCvScore sets the "cv_score" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdate) SetNillableCvScore(v *float64) *ReadinessSnapshotUpdate {
	if v != nil {
		_u.SetCvScore(*v)
	}
	return _u
}

// AddCvScore adds value to the "cv_score" field.
func (_u *ReadinessSnapshotUpdate) AddCvScore(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.AddCvScore(v)
	return _u
}

// SetInterviewScore sets the "interview_score" field.
func (_u *ReadinessSnapshotUpdate) SetInterviewScore(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.ResetInterviewScore()
	_u.mutation.SetInterviewScore(v)
	return _u
}

// SetNillableInterviewScore sets the "interview_score" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdate) SetNillableInterviewScore(v *float64) *ReadinessSnapshotUpdate {
	if v != nil {
		_u.SetInterviewScore(*v)
	}
	return _u
}

// AddInterviewScore adds value to the "interview_score" field.
func (_u *ReadinessSnapshotUpdate) AddInterviewScore(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.AddInterviewScore(v)
	return _u
}

// SetPracticeScore sets the "practice_score" field.
func (_u *ReadinessSnapshotUpdate) SetPracticeScore(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.ResetPracticeScore()
	_u.mutation.SetPracticeScore(v)
	return _u
}

// SetNillablePracticeScore sets the "practice_score" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdate) SetNillablePracticeScore(v *float64) *ReadinessSnapshotUpdate {
	if v != nil {
		_u.SetPracticeScore(*v)
	}
	return _u
}

// AddPracticeScore adds value to the "practice_score" field.
func (_u *ReadinessSnapshotUpdate) AddPracticeScore(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.AddPracticeScore(v)
	return _u
}

// SetBreakdown sets the "breakdown" field.
func (_u *ReadinessSnapshotUpdate) SetBreakdown(v *schema.ReadinessBreakdownData) *ReadinessSnapshotUpdate {
	_u.mutation.SetBreakdown(v)
	return _u
}

// ClearBreakdown clears the value of the "breakdown" field.
func (_u *ReadinessSnapshotUpdate) ClearBreakdown() *ReadinessSnapshotUpdate {
	_u.mutation.ClearBreakdown()
	return _u
}

// Mutation returns the ReadinessSnapshotMutation object of the builder.
func (_u *ReadinessSnapshotUpdate) Mutation() *ReadinessSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReadinessSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReadinessSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReadinessSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReadinessSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReadinessSnapshotUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := readinesssnapshot.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReadinessSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(readinesssnapshot.Table, readinesssnapshot.Columns, sqlgraph.NewFieldSpec(readinesssnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(readinesssnapshot.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobSpecID(); ok {
		_spec.SetField(readinesssnapshot.FieldJobSpecID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReadinessScore(); ok {
		_spec.SetField(readinesssnapshot.FieldReadinessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReadinessScore(); ok {
		_spec.AddField(readinesssnapshot.FieldReadinessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CvScore(); ok {
		_spec.SetField(readinesssnapshot.FieldCvScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCvScore(); ok {
		_spec.AddField(readinesssnapshot.FieldCvScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InterviewScore(); ok {
		_spec.SetField(readinesssnapshot.FieldInterviewScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInterviewScore(); ok {
		_spec.AddField(readinesssnapshot.FieldInterviewScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PracticeScore(); ok {
		_spec.SetField(readinesssnapshot.FieldPracticeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPracticeScore(); ok {
		_spec.AddField(readinesssnapshot.FieldPracticeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Breakdown(); ok {
		_spec.SetField(readinesssnapshot.FieldBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.BreakdownCleared() {
		_spec.ClearField(readinesssnapshot.FieldBreakdown, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{readinesssnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReadinessSnapshotUpdateOne is the builder for updating a single ReadinessSnapshot entity.
type ReadinessSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReadinessSnapshotMutation
}

// SetUserID sets the "user_id" field.
func (_u *ReadinessSnapshotUpdateOne) SetUserID(v string) *ReadinessSnapshotUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdateOne) SetNillableUserID(v *string) *ReadinessSnapshotUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetJobSpecID sets the "job_spec_id" field.
func (_u *ReadinessSnapshotUpdateOne) SetJobSpecID(v string) *ReadinessSnapshotUpdateOne {
	_u.mutation.SetJobSpecID(v)
	return _u
}

// SetNillableJobSpecID sets the "job_spec_id" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdateOne) SetNillableJobSpecID(v *string) *ReadinessSnapshotUpdateOne {
	if v != nil {
		_u.SetJobSpecID(*v)
	}
	return _u
}

// SetReadinessScore sets the "readiness_score" field.
func (_u *ReadinessSnapshotUpdateOne) SetReadinessScore(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.ResetReadinessScore()
	_u.mutation.SetReadinessScore(v)
	return _u
}

// SetNillableReadinessScore sets the "readiness_score" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdateOne) SetNillableReadinessScore(v *float64) *ReadinessSnapshotUpdateOne {
	if v != nil {
		_u.SetReadinessScore(*v)
	}
	return _u
}

// AddReadinessScore adds value to the "readiness_score" field.
func (_u *ReadinessSnapshotUpdateOne) AddReadinessScore(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.AddReadinessScore(v)
	return _u
}

// SetCvScore sets the "cv_score" field.
func (_u *ReadinessSnapshotUpdateOne) SetCvScore(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.ResetCvScore()
	_u.mutation.SetCvScore(v)
	return _u
}

// SetNillableCvScore sets the "cv_score" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdateOne) SetNillableCvScore(v *float64) *ReadinessSnapshotUpdateOne {
	if v != nil {
		_u.SetCvScore(*v)
	}
	return _u
}

// AddCvScore adds value to the "cv_score" field.
func (_u *ReadinessSnapshotUpdateOne) AddCvScore(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.AddCvScore(v)
	return _u
}

// SetInterviewScore sets the "interview_score" field.
func (_u *ReadinessSnapshotUpdateOne) SetInterviewScore(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.ResetInterviewScore()
	_u.mutation.SetInterviewScore(v)
	return _u
}

// SetNillableInterviewScore sets the "interview_score" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdateOne) SetNillableInterviewScore(v *float64) *ReadinessSnapshotUpdateOne {
	if v != nil {
		_u.SetInterviewScore(*v)
	}
	return _u
}

// AddInterviewScore adds value to the "interview_score" field.
func (_u *ReadinessSnapshotUpdateOne) AddInterviewScore(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.AddInterviewScore(v)
	return _u
}

// SetPracticeScore sets the "practice_score" field.
func (_u *ReadinessSnapshotUpdateOne) SetPracticeScore(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.ResetPracticeScore()
	_u.mutation.SetPracticeScore(v)
	return _u
}

// SetNillablePracticeScore sets the "practice_score" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdateOne) SetNillablePracticeScore(v *float64) *ReadinessSnapshotUpdateOne {
	if v != nil {
		_u.SetPracticeScore(*v)
	}
	return _u
}

// AddPracticeScore adds value to the "practice_score" field.
func (_u *ReadinessSnapshotUpdateOne) AddPracticeScore(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.AddPracticeScore(v)
	return _u
}

// SetBreakdown sets the "breakdown" field.
func (_u *ReadinessSnapshotUpdateOne) SetBreakdown(v *schema.ReadinessBreakdownData) *ReadinessSnapshotUpdateOne {
	_u.mutation.SetBreakdown(v)
	return _u
}

// ClearBreakdown clears the value of the "breakdown" field.
func (_u *ReadinessSnapshotUpdateOne) ClearBreakdown() *ReadinessSnapshotUpdateOne {
	_u.mutation.ClearBreakdown()
	return _u
}

// Mutation returns the ReadinessSnapshotMutation object of the builder.
func (_u *ReadinessSnapshotUpdateOne) Mutation() *ReadinessSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReadinessSnapshotUpdate builder.
func (_u *ReadinessSnapshotUpdateOne) Where(ps ...predicate.ReadinessSnapshot) *ReadinessSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReadinessSnapshotUpdateOne) Select(field string, fields ...string) *ReadinessSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReadinessSnapshot entity.
func (_u *ReadinessSnapshotUpdateOne) Save(ctx context.Context) (*ReadinessSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReadinessSnapshotUpdateOne) SaveX(ctx context.Context) *ReadinessSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReadinessSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReadinessSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReadinessSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := readinesssnapshot.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReadinessSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ReadinessSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(readinesssnapshot.Table, readinesssnapshot.Columns, sqlgraph.NewFieldSpec(readinesssnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReadinessSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, readinesssnapshot.FieldID)
		for _, f := range fields {
			if !readinesssnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != readinesssnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(readinesssnapshot.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobSpecID(); ok {
		_spec.SetField(readinesssnapshot.FieldJobSpecID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReadinessScore(); ok {
		_spec.SetField(readinesssnapshot.FieldReadinessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReadinessScore(); ok {
		_spec.AddField(readinesssnapshot.FieldReadinessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CvScore(); ok {
		_spec.SetField(readinesssnapshot.FieldCvScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCvScore(); ok {
		_spec.AddField(readinesssnapshot.FieldCvScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InterviewScore(); ok {
		_spec.SetField(readinesssnapshot.FieldInterviewScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInterviewScore(); ok {
		_spec.AddField(readinesssnapshot.FieldInterviewScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PracticeScore(); ok {
		_spec.SetField(readinesssnapshot.FieldPracticeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPracticeScore(); ok {
		_spec.AddField(readinesssnapshot.FieldPracticeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Breakdown(); ok {
		_spec.SetField(readinesssnapshot.FieldBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.BreakdownCleared() {
		_spec.ClearField(readinesssnapshot.FieldBreakdown, field.TypeJSON)
	}
	_node = &ReadinessSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{readinesssnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
