// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/yonatank/prepair/ent/interviewsession"
	"github.com/yonatank/prepair/ent/predicate"
	"github.com/yonatank/prepair/ent/schema"
)

// InterviewSessionUpdate is the builder for updating InterviewSession entities.
type InterviewSessionUpdate struct {
	config
	hooks    []Hook
	mutation *InterviewSessionMutation
}

// Where appends a list predicates to the InterviewSessionUpdate builder.
func (_u *InterviewSessionUpdate) Where(ps ...predicate.InterviewSession) *InterviewSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InterviewSessionUpdate) SetUserID(v string) *InterviewSessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableUserID(v *string) *InterviewSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetJobSpecID sets the "job_spec_id" field.
func (_u *InterviewSessionUpdate) SetJobSpecID(v string) *InterviewSessionUpdate {
	_u.mutation.SetJobSpecID(v)
	return _u
}

// SetNillableJobSpecID sets the "job_spec_id" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableJobSpecID(v *string) *InterviewSessionUpdate {
	if v != nil {
		_u.SetJobSpecID(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *InterviewSessionUpdate) SetLanguage(v string) *InterviewSessionUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableLanguage(v *string) *InterviewSessionUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetPersona sets the "persona" field.
func (_u *InterviewSessionUpdate) SetPersona(v string) *InterviewSessionUpdate {
	_u.mutation.SetPersona(v)
	return _u
}

// SetNillablePersona sets the "persona" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillablePersona(v *string) *InterviewSessionUpdate {
	if v != nil {
		_u.SetPersona(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *InterviewSessionUpdate) SetPlan(v []schema.PlanItemData) *InterviewSessionUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// AppendPlan appends value to the "plan" field.
func (_u *InterviewSessionUpdate) AppendPlan(v []schema.PlanItemData) *InterviewSessionUpdate {
	_u.mutation.AppendPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *InterviewSessionUpdate) ClearPlan() *InterviewSessionUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// SetConversationState sets the "conversation_state" field.
func (_u *InterviewSessionUpdate) SetConversationState(v string) *InterviewSessionUpdate {
	_u.mutation.SetConversationState(v)
	return _u
}

// SetNillableConversationState sets the "conversation_state" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableConversationState(v *string) *InterviewSessionUpdate {
	if v != nil {
		_u.SetConversationState(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *InterviewSessionUpdate) SetEndedAt(v time.Time) *InterviewSessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *InterviewSessionUpdate) SetNillableEndedAt(v *time.Time) *InterviewSessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *InterviewSessionUpdate) ClearEndedAt() *InterviewSessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// Mutation returns the InterviewSessionMutation object of the builder.
func (_u *InterviewSessionUpdate) Mutation() *InterviewSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterviewSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterviewSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewSessionUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := interviewsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewsession.Table, interviewsession.Columns, sqlgraph.NewFieldSpec(interviewsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(interviewsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobSpecID(); ok {
		_spec.SetField(interviewsession.FieldJobSpecID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(interviewsession.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Persona(); ok {
		_spec.SetField(interviewsession.FieldPersona, field.TypeString, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(interviewsession.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interviewsession.FieldPlan, value)
		})
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(interviewsession.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConversationState(); ok {
		_spec.SetField(interviewsession.FieldConversationState, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(interviewsession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(interviewsession.FieldEndedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterviewSessionUpdateOne is the builder for updating a single InterviewSession entity.
type InterviewSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterviewSessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *InterviewSessionUpdateOne) SetUserID(v string) *InterviewSessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableUserID(v *string) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetJobSpecID sets the "job_spec_id" field.
func (_u *InterviewSessionUpdateOne) SetJobSpecID(v string) *InterviewSessionUpdateOne {
	_u.mutation.SetJobSpecID(v)
	return _u
}

// SetNillableJobSpecID sets the "job_spec_id" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableJobSpecID(v *string) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetJobSpecID(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *InterviewSessionUpdateOne) SetLanguage(v string) *InterviewSessionUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableLanguage(v *string) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetPersona sets the "persona" field.
func (_u *InterviewSessionUpdateOne) SetPersona(v string) *InterviewSessionUpdateOne {
	_u.mutation.SetPersona(v)
	return _u
}

// SetNillablePersona sets the "persona" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillablePersona(v *string) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetPersona(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *InterviewSessionUpdateOne) SetPlan(v []schema.PlanItemData) *InterviewSessionUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// AppendPlan appends value to the "plan" field.
func (_u *InterviewSessionUpdateOne) AppendPlan(v []schema.PlanItemData) *InterviewSessionUpdateOne {
	_u.mutation.AppendPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *InterviewSessionUpdateOne) ClearPlan() *InterviewSessionUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// SetConversationState sets the "conversation_state" field.
func (_u *InterviewSessionUpdateOne) SetConversationState(v string) *InterviewSessionUpdateOne {
	_u.mutation.SetConversationState(v)
	return _u
}

// SetNillableConversationState sets the "conversation_state" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableConversationState(v *string) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetConversationState(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *InterviewSessionUpdateOne) SetEndedAt(v time.Time) *InterviewSessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *InterviewSessionUpdateOne) SetNillableEndedAt(v *time.Time) *InterviewSessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *InterviewSessionUpdateOne) ClearEndedAt() *InterviewSessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// Mutation returns the InterviewSessionMutation object of the builder.
func (_u *InterviewSessionUpdateOne) Mutation() *InterviewSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the InterviewSessionUpdate builder.
func (_u *InterviewSessionUpdateOne) Where(ps ...predicate.InterviewSession) *InterviewSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterviewSessionUpdateOne) Select(field string, fields ...string) *InterviewSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InterviewSession entity.
func (_u *InterviewSessionUpdateOne) Save(ctx context.Context) (*InterviewSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewSessionUpdateOne) SaveX(ctx context.Context) *InterviewSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterviewSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewSessionUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := interviewsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewSessionUpdateOne) sqlSave(ctx context.Context) (_node *InterviewSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewsession.Table, interviewsession.Columns, sqlgraph.NewFieldSpec(interviewsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InterviewSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interviewsession.FieldID)
		for _, f := range fields {
			if !interviewsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interviewsession.FieldID {
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
		_spec.SetField(interviewsession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobSpecID(); ok {
		_spec.SetField(interviewsession.FieldJobSpecID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(interviewsession.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Persona(); ok {
		_spec.SetField(interviewsession.FieldPersona, field.TypeString, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(interviewsession.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interviewsession.FieldPlan, value)
		})
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(interviewsession.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConversationState(); ok {
		_spec.SetField(interviewsession.FieldConversationState, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(interviewsession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(interviewsession.FieldEndedAt, field.TypeTime)
	}
	_node = &InterviewSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
