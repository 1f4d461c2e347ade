// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yonatank/prepair/ent/interviewturn"
)

// InterviewTurnCreate is the builder for creating a InterviewTurn entity.
type InterviewTurnCreate struct {
	config
	mutation *InterviewTurnMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *InterviewTurnCreate) SetSequence(v int64) *InterviewTurnCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InterviewTurnCreate) SetTimestamp(v time.Time) *InterviewTurnCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InterviewTurnCreate) SetNillableTimestamp(v *time.Time) *InterviewTurnCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTurnID sets the "turn_id" field.
func (_c *InterviewTurnCreate) SetTurnID(v string) *InterviewTurnCreate {
	_c.mutation.SetTurnID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *InterviewTurnCreate) SetSessionID(v string) *InterviewTurnCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTurnIndex sets the "turn_index" field.
func (_c *InterviewTurnCreate) SetTurnIndex(v int) *InterviewTurnCreate {
	_c.mutation.SetTurnIndex(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *InterviewTurnCreate) SetQuestionID(v string) *InterviewTurnCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetQuestionSnapshot sets the "question_snapshot" field.
func (_c *InterviewTurnCreate) SetQuestionSnapshot(v string) *InterviewTurnCreate {
	_c.mutation.SetQuestionSnapshot(v)
	return _c
}

// SetTranscript sets the "transcript" field.
func (_c *InterviewTurnCreate) SetTranscript(v string) *InterviewTurnCreate {
	_c.mutation.SetTranscript(v)
	return _c
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_c *InterviewTurnCreate) SetNillableTranscript(v *string) *InterviewTurnCreate {
	if v != nil {
		_c.SetTranscript(*v)
	}
	return _c
}

// SetCode sets the "code" field.
func (_c *InterviewTurnCreate) SetCode(v string) *InterviewTurnCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_c *InterviewTurnCreate) SetNillableCode(v *string) *InterviewTurnCreate {
	if v != nil {
		_c.SetCode(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *InterviewTurnCreate) SetScore(v float64) *InterviewTurnCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetIsFollowup sets the "is_followup" field.
func (_c *InterviewTurnCreate) SetIsFollowup(v bool) *InterviewTurnCreate {
	_c.mutation.SetIsFollowup(v)
	return _c
}

// SetNillableIsFollowup sets the "is_followup" field if the given value is not nil.
func (_c *InterviewTurnCreate) SetNillableIsFollowup(v *bool) *InterviewTurnCreate {
	if v != nil {
		_c.SetIsFollowup(*v)
	}
	return _c
}

// SetParentTurnID sets the "parent_turn_id" field.
func (_c *InterviewTurnCreate) SetParentTurnID(v string) *InterviewTurnCreate {
	_c.mutation.SetParentTurnID(v)
	return _c
}

// SetNillableParentTurnID sets the "parent_turn_id" field if the given value is not nil.
func (_c *InterviewTurnCreate) SetNillableParentTurnID(v *string) *InterviewTurnCreate {
	if v != nil {
		_c.SetParentTurnID(*v)
	}
	return _c
}

// SetQuestionNumber sets the "question_number" field.
func (_c *InterviewTurnCreate) SetQuestionNumber(v int) *InterviewTurnCreate {
	_c.mutation.SetQuestionNumber(v)
	return _c
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_c *InterviewTurnCreate) SetNillableQuestionNumber(v *int) *InterviewTurnCreate {
	if v != nil {
		_c.SetQuestionNumber(*v)
	}
	return _c
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_c *InterviewTurnCreate) SetTimeSpentSecs(v int) *InterviewTurnCreate {
	_c.mutation.SetTimeSpentSecs(v)
	return _c
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_c *InterviewTurnCreate) SetNillableTimeSpentSecs(v *int) *InterviewTurnCreate {
	if v != nil {
		_c.SetTimeSpentSecs(*v)
	}
	return _c
}

// Mutation returns the InterviewTurnMutation object of the builder.
func (_c *InterviewTurnCreate) Mutation() *InterviewTurnMutation {
	return _c.mutation
}

// Save creates the InterviewTurn in the database.
func (_c *InterviewTurnCreate) Save(ctx context.Context) (*InterviewTurn, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterviewTurnCreate) SaveX(ctx context.Context) *InterviewTurn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewTurnCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewTurnCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterviewTurnCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := interviewturn.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Transcript(); !ok {
		v := interviewturn.DefaultTranscript
		_c.mutation.SetTranscript(v)
	}
	if _, ok := _c.mutation.Code(); !ok {
		v := interviewturn.DefaultCode
		_c.mutation.SetCode(v)
	}
	if _, ok := _c.mutation.IsFollowup(); !ok {
		v := interviewturn.DefaultIsFollowup
		_c.mutation.SetIsFollowup(v)
	}
	if _, ok := _c.mutation.ParentTurnID(); !ok {
		v := interviewturn.DefaultParentTurnID
		_c.mutation.SetParentTurnID(v)
	}
	if _, ok := _c.mutation.QuestionNumber(); !ok {
		v := interviewturn.DefaultQuestionNumber
		_c.mutation.SetQuestionNumber(v)
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		v := interviewturn.DefaultTimeSpentSecs
		_c.mutation.SetTimeSpentSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterviewTurnCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "InterviewTurn.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InterviewTurn.timestamp"`)}
	}
	if _, ok := _c.mutation.TurnID(); !ok {
		return &ValidationError{Name: "turn_id", err: errors.New(`ent: missing required field "InterviewTurn.turn_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "InterviewTurn.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := interviewturn.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterviewTurn.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TurnIndex(); !ok {
		return &ValidationError{Name: "turn_index", err: errors.New(`ent: missing required field "InterviewTurn.turn_index"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "InterviewTurn.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := interviewturn.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "InterviewTurn.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionSnapshot(); !ok {
		return &ValidationError{Name: "question_snapshot", err: errors.New(`ent: missing required field "InterviewTurn.question_snapshot"`)}
	}
	if _, ok := _c.mutation.Transcript(); !ok {
		return &ValidationError{Name: "transcript", err: errors.New(`ent: missing required field "InterviewTurn.transcript"`)}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "InterviewTurn.code"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "InterviewTurn.score"`)}
	}
	if _, ok := _c.mutation.IsFollowup(); !ok {
		return &ValidationError{Name: "is_followup", err: errors.New(`ent: missing required field "InterviewTurn.is_followup"`)}
	}
	if _, ok := _c.mutation.ParentTurnID(); !ok {
		return &ValidationError{Name: "parent_turn_id", err: errors.New(`ent: missing required field "InterviewTurn.parent_turn_id"`)}
	}
	if _, ok := _c.mutation.QuestionNumber(); !ok {
		return &ValidationError{Name: "question_number", err: errors.New(`ent: missing required field "InterviewTurn.question_number"`)}
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		return &ValidationError{Name: "time_spent_secs", err: errors.New(`ent: missing required field "InterviewTurn.time_spent_secs"`)}
	}
	return nil
}

func (_c *InterviewTurnCreate) sqlSave(ctx context.Context) (*InterviewTurn, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InterviewTurnCreate) createSpec() (*InterviewTurn, *sqlgraph.CreateSpec) {
	var (
		_node = &InterviewTurn{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interviewturn.Table, sqlgraph.NewFieldSpec(interviewturn.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(interviewturn.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(interviewturn.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.TurnID(); ok {
		_spec.SetField(interviewturn.FieldTurnID, field.TypeString, value)
		_node.TurnID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(interviewturn.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TurnIndex(); ok {
		_spec.SetField(interviewturn.FieldTurnIndex, field.TypeInt, value)
		_node.TurnIndex = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(interviewturn.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.QuestionSnapshot(); ok {
		_spec.SetField(interviewturn.FieldQuestionSnapshot, field.TypeString, value)
		_node.QuestionSnapshot = value
	}
	if value, ok := _c.mutation.Transcript(); ok {
		_spec.SetField(interviewturn.FieldTranscript, field.TypeString, value)
		_node.Transcript = value
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(interviewturn.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(interviewturn.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.IsFollowup(); ok {
		_spec.SetField(interviewturn.FieldIsFollowup, field.TypeBool, value)
		_node.IsFollowup = value
	}
	if value, ok := _c.mutation.ParentTurnID(); ok {
		_spec.SetField(interviewturn.FieldParentTurnID, field.TypeString, value)
		_node.ParentTurnID = value
	}
	if value, ok := _c.mutation.QuestionNumber(); ok {
		_spec.SetField(interviewturn.FieldQuestionNumber, field.TypeInt, value)
		_node.QuestionNumber = value
	}
	if value, ok := _c.mutation.TimeSpentSecs(); ok {
		_spec.SetField(interviewturn.FieldTimeSpentSecs, field.TypeInt, value)
		_node.TimeSpentSecs = value
	}
	return _node, _spec
}

// InterviewTurnCreateBulk is the builder for creating many InterviewTurn entities in bulk.
type InterviewTurnCreateBulk struct {
	config
	err      error
	builders []*InterviewTurnCreate
}

// Save creates the InterviewTurn entities in the database.
func (_c *InterviewTurnCreateBulk) Save(ctx context.Context) ([]*InterviewTurn, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InterviewTurn, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterviewTurnMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InterviewTurnCreateBulk) SaveX(ctx context.Context) []*InterviewTurn {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewTurnCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewTurnCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
