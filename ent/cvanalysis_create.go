// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yonatank/prepair/ent/cvanalysis"
)

// CVAnalysisCreate is the builder for creating a CVAnalysis entity.
type CVAnalysisCreate struct {
	config
	mutation *CVAnalysisMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CVAnalysisCreate) SetUserID(v string) *CVAnalysisCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetJobSpecID sets the "job_spec_id" field.
func (_c *CVAnalysisCreate) SetJobSpecID(v string) *CVAnalysisCreate {
	_c.mutation.SetJobSpecID(v)
	return _c
}

// SetMatchScore sets the "match_score" field.
func (_c *CVAnalysisCreate) SetMatchScore(v float64) *CVAnalysisCreate {
	_c.mutation.SetMatchScore(v)
	return _c
}

// SetStrengths sets the "strengths" field.
func (_c *CVAnalysisCreate) SetStrengths(v []string) *CVAnalysisCreate {
	_c.mutation.SetStrengths(v)
	return _c
}

// SetGaps sets the "gaps" field.
func (_c *CVAnalysisCreate) SetGaps(v []string) *CVAnalysisCreate {
	_c.mutation.SetGaps(v)
	return _c
}

// SetSuggestions sets the "suggestions" field.
func (_c *CVAnalysisCreate) SetSuggestions(v []string) *CVAnalysisCreate {
	_c.mutation.SetSuggestions(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CVAnalysisCreate) SetCreatedAt(v time.Time) *CVAnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CVAnalysisCreate) SetNillableCreatedAt(v *time.Time) *CVAnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CVAnalysisCreate) SetID(v string) *CVAnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CVAnalysisMutation object of the builder.
func (_c *CVAnalysisCreate) Mutation() *CVAnalysisMutation {
	return _c.mutation
}

// Save creates the CVAnalysis in the database.
func (_c *CVAnalysisCreate) Save(ctx context.Context) (*CVAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CVAnalysisCreate) SaveX(ctx context.Context) *CVAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CVAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CVAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CVAnalysisCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cvanalysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CVAnalysisCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CVAnalysis.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := cvanalysis.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CVAnalysis.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JobSpecID(); !ok {
		return &ValidationError{Name: "job_spec_id", err: errors.New(`ent: missing required field "CVAnalysis.job_spec_id"`)}
	}
	if v, ok := _c.mutation.JobSpecID(); ok {
		if err := cvanalysis.JobSpecIDValidator(v); err != nil {
			return &ValidationError{Name: "job_spec_id", err: fmt.Errorf(`ent: validator failed for field "CVAnalysis.job_spec_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MatchScore(); !ok {
		return &ValidationError{Name: "match_score", err: errors.New(`ent: missing required field "CVAnalysis.match_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CVAnalysis.created_at"`)}
	}
	return nil
}

func (_c *CVAnalysisCreate) sqlSave(ctx context.Context) (*CVAnalysis, error) {
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
			return nil, fmt.Errorf("unexpected CVAnalysis.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CVAnalysisCreate) createSpec() (*CVAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &CVAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cvanalysis.Table, sqlgraph.NewFieldSpec(cvanalysis.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(cvanalysis.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.JobSpecID(); ok {
		_spec.SetField(cvanalysis.FieldJobSpecID, field.TypeString, value)
		_node.JobSpecID = value
	}
	if value, ok := _c.mutation.MatchScore(); ok {
		_spec.SetField(cvanalysis.FieldMatchScore, field.TypeFloat64, value)
		_node.MatchScore = value
	}
	if value, ok := _c.mutation.Strengths(); ok {
		_spec.SetField(cvanalysis.FieldStrengths, field.TypeJSON, value)
		_node.Strengths = value
	}
	if value, ok := _c.mutation.Gaps(); ok {
		_spec.SetField(cvanalysis.FieldGaps, field.TypeJSON, value)
		_node.Gaps = value
	}
	if value, ok := _c.mutation.Suggestions(); ok {
		_spec.SetField(cvanalysis.FieldSuggestions, field.TypeJSON, value)
		_node.Suggestions = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cvanalysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CVAnalysisCreateBulk is the builder for creating many CVAnalysis entities in bulk.
type CVAnalysisCreateBulk struct {
	config
	err      error
	builders []*CVAnalysisCreate
}

// Save creates the CVAnalysis entities in the database.
func (_c *CVAnalysisCreateBulk) Save(ctx context.Context) ([]*CVAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CVAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CVAnalysisMutation)
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
func (_c *CVAnalysisCreateBulk) SaveX(ctx context.Context) []*CVAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CVAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CVAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
