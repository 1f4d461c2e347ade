// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yonatank/prepair/ent/interviewsession"
	"github.com/yonatank/prepair/ent/schema"
)

// InterviewSessionCreate is the builder for creating a InterviewSession entity.
type InterviewSessionCreate struct {
	config
	mutation *InterviewSessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *InterviewSessionCreate) SetUserID(v string) *InterviewSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetJobSpecID sets the "job_spec_id" field.
func (_c *InterviewSessionCreate) SetJobSpecID(v string) *InterviewSessionCreate {
	_c.mutation.SetJobSpecID(v)
	return _c
}

// SetNillableJobSpecID sets the "job_spec_id" field if the given value is not nil.
func (_c *InterviewSessionCreate) SetNillableJobSpecID(v *string) *InterviewSessionCreate {
	if v != nil {
		_c.SetJobSpecID(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *InterviewSessionCreate) SetLanguage(v string) *InterviewSessionCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *InterviewSessionCreate) SetNillableLanguage(v *string) *InterviewSessionCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetPersona sets the "persona" field.
func (_c *InterviewSessionCreate) SetPersona(v string) *InterviewSessionCreate {
	_c.mutation.SetPersona(v)
	return _c
}

// SetNillablePersona sets the "persona" field if the given value is not nil.
func (_c *InterviewSessionCreate) SetNillablePersona(v *string) *InterviewSessionCreate {
	if v != nil {
		_c.SetPersona(*v)
	}
	return _c
}

// SetPlan sets the "plan" field.
func (_c *InterviewSessionCreate) SetPlan(v []schema.PlanItemData) *InterviewSessionCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetConversationState sets the "conversation_state" field.
func (_c *InterviewSessionCreate) SetConversationState(v string) *InterviewSessionCreate {
	_c.mutation.SetConversationState(v)
	return _c
}

// SetNillableConversationState sets the "conversation_state" field if the given value is not nil.
func (_c *InterviewSessionCreate) SetNillableConversationState(v *string) *InterviewSessionCreate {
	if v != nil {
		_c.SetConversationState(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *InterviewSessionCreate) SetStartedAt(v time.Time) *InterviewSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *InterviewSessionCreate) SetNillableStartedAt(v *time.Time) *InterviewSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *InterviewSessionCreate) SetEndedAt(v time.Time) *InterviewSessionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *InterviewSessionCreate) SetNillableEndedAt(v *time.Time) *InterviewSessionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InterviewSessionCreate) SetID(v string) *InterviewSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InterviewSessionMutation object of the builder.
func (_c *InterviewSessionCreate) Mutation() *InterviewSessionMutation {
	return _c.mutation
}

// Save creates the InterviewSession in the database.
func (_c *InterviewSessionCreate) Save(ctx context.Context) (*InterviewSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterviewSessionCreate) SaveX(ctx context.Context) *InterviewSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterviewSessionCreate) defaults() {
	if _, ok := _c.mutation.JobSpecID(); !ok {
		v := interviewsession.DefaultJobSpecID
		_c.mutation.SetJobSpecID(v)
	}
	if _, ok := _c.mutation.Language(); !ok {
		v := interviewsession.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.Persona(); !ok {
		v := interviewsession.DefaultPersona
		_c.mutation.SetPersona(v)
	}
	if _, ok := _c.mutation.ConversationState(); !ok {
		v := interviewsession.DefaultConversationState
		_c.mutation.SetConversationState(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := interviewsession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterviewSessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "InterviewSession.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := interviewsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InterviewSession.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JobSpecID(); !ok {
		return &ValidationError{Name: "job_spec_id", err: errors.New(`ent: missing required field "InterviewSession.job_spec_id"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "InterviewSession.language"`)}
	}
	if _, ok := _c.mutation.Persona(); !ok {
		return &ValidationError{Name: "persona", err: errors.New(`ent: missing required field "InterviewSession.persona"`)}
	}
	if _, ok := _c.mutation.ConversationState(); !ok {
		return &ValidationError{Name: "conversation_state", err: errors.New(`ent: missing required field "InterviewSession.conversation_state"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "InterviewSession.started_at"`)}
	}
	return nil
}

func (_c *InterviewSessionCreate) sqlSave(ctx context.Context) (*InterviewSession, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected InterviewSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InterviewSessionCreate) createSpec() (*InterviewSession, *sqlgraph.CreateSpec) {
	var (
		_node = &InterviewSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interviewsession.Table, sqlgraph.NewFieldSpec(interviewsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(interviewsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.JobSpecID(); ok {
		_spec.SetField(interviewsession.FieldJobSpecID, field.TypeString, value)
		_node.JobSpecID = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(interviewsession.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Persona(); ok {
		_spec.SetField(interviewsession.FieldPersona, field.TypeString, value)
		_node.Persona = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(interviewsession.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.ConversationState(); ok {
		_spec.SetField(interviewsession.FieldConversationState, field.TypeString, value)
		_node.ConversationState = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(interviewsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(interviewsession.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	return _node, _spec
}

// InterviewSessionCreateBulk is the builder for creating many InterviewSession entities in bulk.
type InterviewSessionCreateBulk struct {
	config
	err      error
	builders []*InterviewSessionCreate
}

// Save creates the InterviewSession entities in the database.
func (_c *InterviewSessionCreateBulk) Save(ctx context.Context) ([]*InterviewSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InterviewSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterviewSessionMutation)
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
func (_c *InterviewSessionCreateBulk) SaveX(ctx context.Context) []*InterviewSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
