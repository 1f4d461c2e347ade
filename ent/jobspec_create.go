// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yonatank/prepair/ent/jobspec"
	"github.com/yonatank/prepair/ent/schema"
)

// JobSpecCreate is the builder for creating a JobSpec entity.
type JobSpecCreate struct {
	config
	mutation *JobSpecMutation
	hooks    []Hook
}

// SetJdHash sets the "jd_hash" field.
func (_c *JobSpecCreate) SetJdHash(v string) *JobSpecCreate {
	_c.mutation.SetJdHash(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *JobSpecCreate) SetTitle(v string) *JobSpecCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *JobSpecCreate) SetNillableTitle(v *string) *JobSpecCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *JobSpecCreate) SetRawText(v string) *JobSpecCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetRoleProfile sets the "role_profile" field.
func (_c *JobSpecCreate) SetRoleProfile(v *schema.RoleProfileData) *JobSpecCreate {
	_c.mutation.SetRoleProfile(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobSpecCreate) SetCreatedAt(v time.Time) *JobSpecCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobSpecCreate) SetNillableCreatedAt(v *time.Time) *JobSpecCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobSpecCreate) SetID(v string) *JobSpecCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the JobSpecMutation object of the builder.
func (_c *JobSpecCreate) Mutation() *JobSpecMutation {
	return _c.mutation
}

// Save creates the JobSpec in the database.
func (_c *JobSpecCreate) Save(ctx context.Context) (*JobSpec, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobSpecCreate) SaveX(ctx context.Context) *JobSpec {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobSpecCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobSpecCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobSpecCreate) defaults() {
	if _, ok := _c.mutation.Title(); !ok {
		v := jobspec.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := jobspec.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobSpecCreate) check() error {
	if _, ok := _c.mutation.JdHash(); !ok {
		return &ValidationError{Name: "jd_hash", err: errors.New(`ent: missing required field "JobSpec.jd_hash"`)}
	}
	if v, ok := _c.mutation.JdHash(); ok {
		if err := jobspec.JdHashValidator(v); err != nil {
			return &ValidationError{Name: "jd_hash", err: fmt.Errorf(`ent: validator failed for field "JobSpec.jd_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "JobSpec.title"`)}
	}
	if _, ok := _c.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "JobSpec.raw_text"`)}
	}
	if v, ok := _c.mutation.RawText(); ok {
		if err := jobspec.RawTextValidator(v); err != nil {
			return &ValidationError{Name: "raw_text", err: fmt.Errorf(`ent: validator failed for field "JobSpec.raw_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "JobSpec.created_at"`)}
	}
	return nil
}

func (_c *JobSpecCreate) sqlSave(ctx context.Context) (*JobSpec, error) {
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
			return nil, fmt.Errorf("unexpected JobSpec.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobSpecCreate) createSpec() (*JobSpec, *sqlgraph.CreateSpec) {
	var (
		_node = &JobSpec{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobspec.Table, sqlgraph.NewFieldSpec(jobspec.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.JdHash(); ok {
		_spec.SetField(jobspec.FieldJdHash, field.TypeString, value)
		_node.JdHash = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(jobspec.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(jobspec.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.RoleProfile(); ok {
		_spec.SetField(jobspec.FieldRoleProfile, field.TypeJSON, value)
		_node.RoleProfile = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(jobspec.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// JobSpecCreateBulk is the builder for creating many JobSpec entities in bulk.
type JobSpecCreateBulk struct {
	config
	err      error
	builders []*JobSpecCreate
}

// Save creates the JobSpec entities in the database.
func (_c *JobSpecCreateBulk) Save(ctx context.Context) ([]*JobSpec, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobSpec, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobSpecMutation)
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
func (_c *JobSpecCreateBulk) SaveX(ctx context.Context) []*JobSpec {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobSpecCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobSpecCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
