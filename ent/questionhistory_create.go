// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yonatank/prepair/ent/questionhistory"
)

// QuestionHistoryCreate is the builder for creating a QuestionHistory entity.
type QuestionHistoryCreate struct {
	config
	mutation *QuestionHistoryMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *QuestionHistoryCreate) SetUserID(v string) *QuestionHistoryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetJdHash sets the "jd_hash" field.
func (_c *QuestionHistoryCreate) SetJdHash(v string) *QuestionHistoryCreate {
	_c.mutation.SetJdHash(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *QuestionHistoryCreate) SetQuestionID(v string) *QuestionHistoryCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *QuestionHistoryCreate) SetSessionID(v string) *QuestionHistoryCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *QuestionHistoryCreate) SetNillableSessionID(v *string) *QuestionHistoryCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetLastAskedAt sets the "last_asked_at" field.
func (_c *QuestionHistoryCreate) SetLastAskedAt(v time.Time) *QuestionHistoryCreate {
	_c.mutation.SetLastAskedAt(v)
	return _c
}

// SetNillableLastAskedAt sets the "last_asked_at" field if the given value is not nil.
func (_c *QuestionHistoryCreate) SetNillableLastAskedAt(v *time.Time) *QuestionHistoryCreate {
	if v != nil {
		_c.SetLastAskedAt(*v)
	}
	return _c
}

// Mutation returns the QuestionHistoryMutation object of the builder.
func (_c *QuestionHistoryCreate) Mutation() *QuestionHistoryMutation {
	return _c.mutation
}

// Save creates the QuestionHistory in the database.
func (_c *QuestionHistoryCreate) Save(ctx context.Context) (*QuestionHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionHistoryCreate) SaveX(ctx context.Context) *QuestionHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionHistoryCreate) defaults() {
	if _, ok := _c.mutation.SessionID(); !ok {
		v := questionhistory.DefaultSessionID
		_c.mutation.SetSessionID(v)
	}
	if _, ok := _c.mutation.LastAskedAt(); !ok {
		v := questionhistory.DefaultLastAskedAt()
		_c.mutation.SetLastAskedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionHistoryCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QuestionHistory.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := questionhistory.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuestionHistory.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JdHash(); !ok {
		return &ValidationError{Name: "jd_hash", err: errors.New(`ent: missing required field "QuestionHistory.jd_hash"`)}
	}
	if v, ok := _c.mutation.JdHash(); ok {
		if err := questionhistory.JdHashValidator(v); err != nil {
			return &ValidationError{Name: "jd_hash", err: fmt.Errorf(`ent: validator failed for field "QuestionHistory.jd_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "QuestionHistory.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := questionhistory.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionHistory.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuestionHistory.session_id"`)}
	}
	if _, ok := _c.mutation.LastAskedAt(); !ok {
		return &ValidationError{Name: "last_asked_at", err: errors.New(`ent: missing required field "QuestionHistory.last_asked_at"`)}
	}
	return nil
}

func (_c *QuestionHistoryCreate) sqlSave(ctx context.Context) (*QuestionHistory, error) {
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

func (_c *QuestionHistoryCreate) createSpec() (*QuestionHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionhistory.Table, sqlgraph.NewFieldSpec(questionhistory.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(questionhistory.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.JdHash(); ok {
		_spec.SetField(questionhistory.FieldJdHash, field.TypeString, value)
		_node.JdHash = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(questionhistory.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(questionhistory.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LastAskedAt(); ok {
		_spec.SetField(questionhistory.FieldLastAskedAt, field.TypeTime, value)
		_node.LastAskedAt = value
	}
	return _node, _spec
}

// QuestionHistoryCreateBulk is the builder for creating many QuestionHistory entities in bulk.
type QuestionHistoryCreateBulk struct {
	config
	err      error
	builders []*QuestionHistoryCreate
}

// Save creates the QuestionHistory entities in the database.
func (_c *QuestionHistoryCreateBulk) Save(ctx context.Context) ([]*QuestionHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionHistoryMutation)
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
func (_c *QuestionHistoryCreateBulk) SaveX(ctx context.Context) []*QuestionHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
