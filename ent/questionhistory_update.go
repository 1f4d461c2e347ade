// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yonatank/prepair/ent/predicate"
	"github.com/yonatank/prepair/ent/questionhistory"
)

// QuestionHistoryUpdate is the builder for updating QuestionHistory entities.
type QuestionHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionHistoryMutation
}

// Where appends a list predicates to the QuestionHistoryUpdate builder.
func (_u *QuestionHistoryUpdate) Where(ps ...predicate.QuestionHistory) *QuestionHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuestionHistoryUpdate) SetUserID(v string) *QuestionHistoryUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuestionHistoryUpdate) SetNillableUserID(v *string) *QuestionHistoryUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetJdHash sets the "jd_hash" field.
func (_u *QuestionHistoryUpdate) SetJdHash(v string) *QuestionHistoryUpdate {
	_u.mutation.SetJdHash(v)
	return _u
}

// SetNillableJdHash sets the "jd_hash" field if the given value is not nil.
func (_u *QuestionHistoryUpdate) SetNillableJdHash(v *string) *QuestionHistoryUpdate {
	if v != nil {
		_u.SetJdHash(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionHistoryUpdate) SetQuestionID(v string) *QuestionHistoryUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionHistoryUpdate) SetNillableQuestionID(v *string) *QuestionHistoryUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuestionHistoryUpdate) SetSessionID(v string) *QuestionHistoryUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuestionHistoryUpdate) SetNillableSessionID(v *string) *QuestionHistoryUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLastAskedAt sets the "last_asked_at" field.
func (_u *QuestionHistoryUpdate) SetLastAskedAt(v time.Time) *QuestionHistoryUpdate {
	_u.mutation.SetLastAskedAt(v)
	return _u
}

// SetNillableLastAskedAt sets the "last_asked_at" field if the given value is not nil.
func (_u *QuestionHistoryUpdate) SetNillableLastAskedAt(v *time.Time) *QuestionHistoryUpdate {
	if v != nil {
		_u.SetLastAskedAt(*v)
	}
	return _u
}

// Mutation returns the QuestionHistoryMutation object of the builder.
func (_u *QuestionHistoryUpdate) Mutation() *QuestionHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionHistoryUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := questionhistory.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuestionHistory.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JdHash(); ok {
		if err := questionhistory.JdHashValidator(v); err != nil {
			return &ValidationError{Name: "jd_hash", err: fmt.Errorf(`ent: validator failed for field "QuestionHistory.jd_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := questionhistory.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionHistory.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionhistory.Table, questionhistory.Columns, sqlgraph.NewFieldSpec(questionhistory.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(questionhistory.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JdHash(); ok {
		_spec.SetField(questionhistory.FieldJdHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(questionhistory.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(questionhistory.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastAskedAt(); ok {
		_spec.SetField(questionhistory.FieldLastAskedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionHistoryUpdateOne is the builder for updating a single QuestionHistory entity.
type QuestionHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionHistoryMutation
}

// SetUserID sets the "user_id" field.
func (_u *QuestionHistoryUpdateOne) SetUserID(v string) *QuestionHistoryUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuestionHistoryUpdateOne) SetNillableUserID(v *string) *QuestionHistoryUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetJdHash sets the "jd_hash" field.
func (_u *QuestionHistoryUpdateOne) SetJdHash(v string) *QuestionHistoryUpdateOne {
	_u.mutation.SetJdHash(v)
	return _u
}

// SetNillableJdHash sets the "jd_hash" field if the given value is not nil.
func (_u *QuestionHistoryUpdateOne) SetNillableJdHash(v *string) *QuestionHistoryUpdateOne {
	if v != nil {
		_u.SetJdHash(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionHistoryUpdateOne) SetQuestionID(v string) *QuestionHistoryUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionHistoryUpdateOne) SetNillableQuestionID(v *string) *QuestionHistoryUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuestionHistoryUpdateOne) SetSessionID(v string) *QuestionHistoryUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuestionHistoryUpdateOne) SetNillableSessionID(v *string) *QuestionHistoryUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLastAskedAt sets the "last_asked_at" field.
func (_u *QuestionHistoryUpdateOne) SetLastAskedAt(v time.Time) *QuestionHistoryUpdateOne {
	_u.mutation.SetLastAskedAt(v)
	return _u
}

// SetNillableLastAskedAt sets the "last_asked_at" field if the given value is not nil.
func (_u *QuestionHistoryUpdateOne) SetNillableLastAskedAt(v *time.Time) *QuestionHistoryUpdateOne {
	if v != nil {
		_u.SetLastAskedAt(*v)
	}
	return _u
}

// Mutation returns the QuestionHistoryMutation object of the builder.
func (_u *QuestionHistoryUpdateOne) Mutation() *QuestionHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionHistoryUpdate builder.
func (_u *QuestionHistoryUpdateOne) Where(ps ...predicate.QuestionHistory) *QuestionHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionHistoryUpdateOne) Select(field string, fields ...string) *QuestionHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionHistory entity.
func (_u *QuestionHistoryUpdateOne) Save(ctx context.Context) (*QuestionHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionHistoryUpdateOne) SaveX(ctx context.Context) *QuestionHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionHistoryUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := questionhistory.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuestionHistory.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JdHash(); ok {
		if err := questionhistory.JdHashValidator(v); err != nil {
			return &ValidationError{Name: "jd_hash", err: fmt.Errorf(`ent: validator failed for field "QuestionHistory.jd_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := questionhistory.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionHistory.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionHistoryUpdateOne) sqlSave(ctx context.Context) (_node *QuestionHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionhistory.Table, questionhistory.Columns, sqlgraph.NewFieldSpec(questionhistory.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionhistory.FieldID)
		for _, f := range fields {
			if !questionhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionhistory.FieldID {
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
		_spec.SetField(questionhistory.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JdHash(); ok {
		_spec.SetField(questionhistory.FieldJdHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(questionhistory.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(questionhistory.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastAskedAt(); ok {
		_spec.SetField(questionhistory.FieldLastAskedAt, field.TypeTime, value)
	}
	_node = &QuestionHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
