// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yonatank/prepair/ent/interviewturn"
	"github.com/yonatank/prepair/ent/predicate"
)

// InterviewTurnUpdate is the builder for updating InterviewTurn entities.
type InterviewTurnUpdate struct {
	config
	hooks    []Hook
	mutation *InterviewTurnMutation
}

// Where appends a list predicates to the InterviewTurnUpdate builder.
func (_u *InterviewTurnUpdate) Where(ps ...predicate.InterviewTurn) *InterviewTurnUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InterviewTurnUpdate) SetSessionID(v string) *InterviewTurnUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InterviewTurnUpdate) SetNillableSessionID(v *string) *InterviewTurnUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTurnIndex sets the "turn_index" field.
func (_u *InterviewTurnUpdate) SetTurnIndex(v int) *InterviewTurnUpdate {
	_u.mutation.ResetTurnIndex()
	_u.mutation.SetTurnIndex(v)
	return _u
}

// SetNillableTurnIndex sets the "turn_index" field if the given value is not nil.
func (_u *InterviewTurnUpdate) SetNillableTurnIndex(v *int) *InterviewTurnUpdate {
	if v != nil {
		_u.SetTurnIndex(*v)
	}
	return _u
}

// AddTurnIndex adds value to the "turn_index" field.
func (_u *InterviewTurnUpdate) AddTurnIndex(v int) *InterviewTurnUpdate {
	_u.mutation.AddTurnIndex(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *InterviewTurnUpdate) SetQuestionID(v string) *InterviewTurnUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *InterviewTurnUpdate) SetNillableQuestionID(v *string) *InterviewTurnUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestionSnapshot sets the "question_snapshot" field.
func (_u *InterviewTurnUpdate) SetQuestionSnapshot(v string) *InterviewTurnUpdate {
	_u.mutation.SetQuestionSnapshot(v)
	return _u
}

// SetNillableQuestionSnapshot sets the "question_snapshot" field if the given value is not nil.
func (_u *InterviewTurnUpdate) SetNillableQuestionSnapshot(v *string) *InterviewTurnUpdate {
	if v != nil {
		_u.SetQuestionSnapshot(*v)
	}
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *InterviewTurnUpdate) SetTranscript(v string) *InterviewTurnUpdate {
	_u.mutation.SetTranscript(v)
	return _u
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_u *InterviewTurnUpdate) SetNillableTranscript(v *string) *InterviewTurnUpdate {
	if v != nil {
		_u.SetTranscript(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *InterviewTurnUpdate) SetCode(v string) *InterviewTurnUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *InterviewTurnUpdate) SetNillableCode(v *string) *InterviewTurnUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *InterviewTurnUpdate) SetScore(v float64) *InterviewTurnUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *InterviewTurnUpdate) SetNillableScore(v *float64) *InterviewTurnUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *InterviewTurnUpdate) AddScore(v float64) *InterviewTurnUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetIsFollowup sets the "is_followup" field.
func (_u *InterviewTurnUpdate) SetIsFollowup(v bool) *InterviewTurnUpdate {
	_u.mutation.SetIsFollowup(v)
	return _u
}

// SetNillableIsFollowup sets the "is_followup" field if the given value is not nil.
func (_u *InterviewTurnUpdate) SetNillableIsFollowup(v *bool) *InterviewTurnUpdate {
	if v != nil {
		_u.SetIsFollowup(*v)
	}
	return _u
}

// SetParentTurnID sets the "parent_turn_id" field.
func (_u *InterviewTurnUpdate) SetParentTurnID(v string) *InterviewTurnUpdate {
	_u.mutation.SetParentTurnID(v)
	return _u
}

// SetNillableParentTurnID sets the "parent_turn_id" field if the given value is not nil.
func (_u *InterviewTurnUpdate) SetNillableParentTurnID(v *string) *InterviewTurnUpdate {
	if v != nil {
		_u.SetParentTurnID(*v)
	}
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *InterviewTurnUpdate) SetQuestionNumber(v int) *InterviewTurnUpdate {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *InterviewTurnUpdate) SetNillableQuestionNumber(v *int) *InterviewTurnUpdate {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *InterviewTurnUpdate) AddQuestionNumber(v int) *InterviewTurnUpdate {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *InterviewTurnUpdate) SetTimeSpentSecs(v int) *InterviewTurnUpdate {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *InterviewTurnUpdate) SetNillableTimeSpentSecs(v *int) *InterviewTurnUpdate {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *InterviewTurnUpdate) AddTimeSpentSecs(v int) *InterviewTurnUpdate {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// Mutation returns the InterviewTurnMutation object of the builder.
func (_u *InterviewTurnUpdate) Mutation() *InterviewTurnMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterviewTurnUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewTurnUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterviewTurnUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewTurnUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewTurnUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interviewturn.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterviewTurn.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := interviewturn.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "InterviewTurn.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewTurnUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewturn.Table, interviewturn.Columns, sqlgraph.NewFieldSpec(interviewturn.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interviewturn.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TurnIndex(); ok {
		_spec.SetField(interviewturn.FieldTurnIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnIndex(); ok {
		_spec.AddField(interviewturn.FieldTurnIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(interviewturn.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionSnapshot(); ok {
		_spec.SetField(interviewturn.FieldQuestionSnapshot, field.TypeString, value)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(interviewturn.FieldTranscript, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(interviewturn.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(interviewturn.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(interviewturn.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsFollowup(); ok {
		_spec.SetField(interviewturn.FieldIsFollowup, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ParentTurnID(); ok {
		_spec.SetField(interviewturn.FieldParentTurnID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(interviewturn.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(interviewturn.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(interviewturn.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(interviewturn.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewturn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterviewTurnUpdateOne is the builder for updating a single InterviewTurn entity.
type InterviewTurnUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterviewTurnMutation
}

// SetSessionID sets the "session_id" field.
func (_u *InterviewTurnUpdateOne) SetSessionID(v string) *InterviewTurnUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InterviewTurnUpdateOne) SetNillableSessionID(v *string) *InterviewTurnUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTurnIndex sets the "turn_index" field.
func (_u *InterviewTurnUpdateOne) SetTurnIndex(v int) *InterviewTurnUpdateOne {
	_u.mutation.ResetTurnIndex()
	_u.mutation.SetTurnIndex(v)
	return _u
}

// SetNillableTurnIndex sets the "turn_index" field if the given value is not nil.
func (_u *InterviewTurnUpdateOne) SetNillableTurnIndex(v *int) *InterviewTurnUpdateOne {
	if v != nil {
		_u.SetTurnIndex(*v)
	}
	return _u
}

// AddTurnIndex adds value to the "turn_index" field.
func (_u *InterviewTurnUpdateOne) AddTurnIndex(v int) *InterviewTurnUpdateOne {
	_u.mutation.AddTurnIndex(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *InterviewTurnUpdateOne) SetQuestionID(v string) *InterviewTurnUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *InterviewTurnUpdateOne) SetNillableQuestionID(v *string) *InterviewTurnUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestionSnapshot sets the "question_snapshot" field.
func (_u *InterviewTurnUpdateOne) SetQuestionSnapshot(v string) *InterviewTurnUpdateOne {
	_u.mutation.SetQuestionSnapshot(v)
	return _u
}

// SetNillableQuestionSnapshot sets the "question_snapshot" field if the given value is not nil.
func (_u *InterviewTurnUpdateOne) SetNillableQuestionSnapshot(v *string) *InterviewTurnUpdateOne {
	if v != nil {
		_u.SetQuestionSnapshot(*v)
	}
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *InterviewTurnUpdateOne) SetTranscript(v string) *InterviewTurnUpdateOne {
	_u.mutation.SetTranscript(v)
	return _u
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_u *InterviewTurnUpdateOne) SetNillableTranscript(v *string) *InterviewTurnUpdateOne {
	if v != nil {
		_u.SetTranscript(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *InterviewTurnUpdateOne) SetCode(v string) *InterviewTurnUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *InterviewTurnUpdateOne) SetNillableCode(v *string) *InterviewTurnUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *InterviewTurnUpdateOne) SetScore(v float64) *InterviewTurnUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *InterviewTurnUpdateOne) SetNillableScore(v *float64) *InterviewTurnUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *InterviewTurnUpdateOne) AddScore(v float64) *InterviewTurnUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetIsFollowup sets the "is_followup" field.
func (_u *InterviewTurnUpdateOne) SetIsFollowup(v bool) *InterviewTurnUpdateOne {
	_u.mutation.SetIsFollowup(v)
	return _u
}

// SetNillableIsFollowup sets the "is_followup" field if the given value is not nil.
func (_u *InterviewTurnUpdateOne) SetNillableIsFollowup(v *bool) *InterviewTurnUpdateOne {
	if v != nil {
		_u.SetIsFollowup(*v)
	}
	return _u
}

// SetParentTurnID sets the "parent_turn_id" field.
func (_u *InterviewTurnUpdateOne) SetParentTurnID(v string) *InterviewTurnUpdateOne {
	_u.mutation.SetParentTurnID(v)
	return _u
}

// SetNillableParentTurnID sets the "parent_turn_id" field if the given value is not nil.
func (_u *InterviewTurnUpdateOne) SetNillableParentTurnID(v *string) *InterviewTurnUpdateOne {
	if v != nil {
		_u.SetParentTurnID(*v)
	}
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *InterviewTurnUpdateOne) SetQuestionNumber(v int) *InterviewTurnUpdateOne {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *InterviewTurnUpdateOne) SetNillableQuestionNumber(v *int) *InterviewTurnUpdateOne {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *InterviewTurnUpdateOne) AddQuestionNumber(v int) *InterviewTurnUpdateOne {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *InterviewTurnUpdateOne) SetTimeSpentSecs(v int) *InterviewTurnUpdateOne {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *InterviewTurnUpdateOne) SetNillableTimeSpentSecs(v *int) *InterviewTurnUpdateOne {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *InterviewTurnUpdateOne) AddTimeSpentSecs(v int) *InterviewTurnUpdateOne {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// Mutation returns the InterviewTurnMutation object of the builder.
func (_u *InterviewTurnUpdateOne) Mutation() *InterviewTurnMutation {
	return _u.mutation
}

// Where appends a list predicates to the InterviewTurnUpdate builder.
func (_u *InterviewTurnUpdateOne) Where(ps ...predicate.InterviewTurn) *InterviewTurnUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterviewTurnUpdateOne) Select(field string, fields ...string) *InterviewTurnUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InterviewTurn entity.
func (_u *InterviewTurnUpdateOne) Save(ctx context.Context) (*InterviewTurn, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewTurnUpdateOne) SaveX(ctx context.Context) *InterviewTurn {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterviewTurnUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewTurnUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterviewTurnUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interviewturn.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterviewTurn.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := interviewturn.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "InterviewTurn.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *InterviewTurnUpdateOne) sqlSave(ctx context.Context) (_node *InterviewTurn, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interviewturn.Table, interviewturn.Columns, sqlgraph.NewFieldSpec(interviewturn.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InterviewTurn.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interviewturn.FieldID)
		for _, f := range fields {
			if !interviewturn.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interviewturn.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interviewturn.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TurnIndex(); ok {
		_spec.SetField(interviewturn.FieldTurnIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnIndex(); ok {
		_spec.AddField(interviewturn.FieldTurnIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(interviewturn.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionSnapshot(); ok {
		_spec.SetField(interviewturn.FieldQuestionSnapshot, field.TypeString, value)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(interviewturn.FieldTranscript, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(interviewturn.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(interviewturn.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(interviewturn.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsFollowup(); ok {
		_spec.SetField(interviewturn.FieldIsFollowup, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ParentTurnID(); ok {
		_spec.SetField(interviewturn.FieldParentTurnID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(interviewturn.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(interviewturn.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(interviewturn.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(interviewturn.FieldTimeSpentSecs, field.TypeInt, value)
	}
	_node = &InterviewTurn{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interviewturn.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
