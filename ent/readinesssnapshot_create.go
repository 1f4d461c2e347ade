// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yonatank/prepair/ent/readinesssnapshot"
	"github.com/yonatank/prepair/ent/schema"
)

// ReadinessSnapshotCreate is the builder for creating a ReadinessSnapshot entity.
type ReadinessSnapshotCreate struct {
	config
	mutation *ReadinessSnapshotMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ReadinessSnapshotCreate) SetUserID(v string) *ReadinessSnapshotCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetJobSpecID sets the "job_spec_id" field.
func (_c *ReadinessSnapshotCreate) SetJobSpecID(v string) *ReadinessSnapshotCreate {
	_c.mutation.SetJobSpecID(v)
	return _c
}

// SetNillableJobSpecID sets the "job_spec_id" field if the given value is not nil.
func (_c *ReadinessSnapshotCreate) SetNillableJobSpecID(v *string) *ReadinessSnapshotCreate {
	if v != nil {
		_c.SetJobSpecID(*v)
	}
	return _c
}

// SetReadinessScore sets the "readiness_score" field.
func (_c *ReadinessSnapshotCreate) SetReadinessScore(v float64) *ReadinessSnapshotCreate {
	_c.mutation.SetReadinessScore(v)
	return _c
}

// SetCvScore sets the "cv_score" field.
func (_c *ReadinessSnapshotCreate) SetCvScore(v float64) *ReadinessSnapshotCreate {
	_c.mutation.SetCvScore(v)
	return _c
}

// SetInterviewScore sets the "interview_score" field.
func (_c *ReadinessSnapshotCreate) SetInterviewScore(v float64) *ReadinessSnapshotCreate {
	_c.mutation.SetInterviewScore(v)
	return _c
}

// SetPracticeScore sets the "practice_score" field.
func (_c *ReadinessSnapshotCreate) SetPracticeScore(v float64) *ReadinessSnapshotCreate {
	_c.mutation.SetPracticeScore(v)
	return _c
}

// SetBreakdown sets the "breakdown" field.
func (_c *ReadinessSnapshotCreate) SetBreakdown(v *schema.ReadinessBreakdownData) *ReadinessSnapshotCreate {
	_c.mutation.SetBreakdown(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ReadinessSnapshotCreate) SetTimestamp(v time.Time) *ReadinessSnapshotCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ReadinessSnapshotCreate) SetNillableTimestamp(v *time.Time) *ReadinessSnapshotCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// Mutation returns the ReadinessSnapshotMutation object of the builder.
func (_c *ReadinessSnapshotCreate) Mutation() *ReadinessSnapshotMutation {
	return _c.mutation
}

// Save creates the ReadinessSnapshot in the database.
func (_c *ReadinessSnapshotCreate) Save(ctx context.Context) (*ReadinessSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReadinessSnapshotCreate) SaveX(ctx context.Context) *ReadinessSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReadinessSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReadinessSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReadinessSnapshotCreate) defaults() {
	if _, ok := _c.mutation.JobSpecID(); !ok {
		v := readinesssnapshot.DefaultJobSpecID
		_c.mutation.SetJobSpecID(v)
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := readinesssnapshot.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReadinessSnapshotCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReadinessSnapshot.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := readinesssnapshot.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JobSpecID(); !ok {
		return &ValidationError{Name: "job_spec_id", err: errors.New(`ent: missing required field "ReadinessSnapshot.job_spec_id"`)}
	}
	if _, ok := _c.mutation.ReadinessScore(); !ok {
		return &ValidationError{Name: "readiness_score", err: errors.New(`ent: missing required field "ReadinessSnapshot.readiness_score"`)}
	}
	if _, ok := _c.mutation.CvScore(); !ok {
		return &ValidationError{Name: "cv_score", err: errors.New(`ent: missing required field "ReadinessSnapshot.cv_score"`)}
	}
	if _, ok := _c.mutation.InterviewScore(); !ok {
		return &ValidationError{Name: "interview_score", err: errors.New(`ent: missing required field "ReadinessSnapshot.interview_score"`)}
	}
	if _, ok := _c.mutation.PracticeScore(); !ok {
		return &ValidationError{Name: "practice_score", err: errors.New(`ent: missing required field "ReadinessSnapshot.practice_score"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ReadinessSnapshot.timestamp"`)}
	}
	return nil
}

func (_c *ReadinessSnapshotCreate) sqlSave(ctx context.Context) (*ReadinessSnapshot, error) {
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

func (_c *ReadinessSnapshotCreate) createSpec() (*ReadinessSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ReadinessSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(readinesssnapshot.Table, sqlgraph.NewFieldSpec(readinesssnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(readinesssnapshot.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.JobSpecID(); ok {
		_spec.SetField(readinesssnapshot.FieldJobSpecID, field.TypeString, value)
		_node.JobSpecID = value
	}
	if value, ok := _c.mutation.ReadinessScore(); ok {
		_spec.SetField(readinesssnapshot.FieldReadinessScore, field.TypeFloat64, value)
		_node.ReadinessScore = value
	}
	if value, ok := _c.mutation.CvScore(); ok {
		_spec.SetField(readinesssnapshot.FieldCvScore, field.TypeFloat64, value)
		_node.CvScore = value
	}
	if value, ok := _c.mutation.InterviewScore(); ok {
		_spec.SetField(readinesssnapshot.FieldInterviewScore, field.TypeFloat64, value)
		_node.InterviewScore = value
	}
	if value, ok := _c.mutation.PracticeScore(); ok {
		_spec.SetField(readinesssnapshot.FieldPracticeScore, field.TypeFloat64, value)
		_node.PracticeScore = value
	}
	if value, ok := _c.mutation.Breakdown(); ok {
		_spec.SetField(readinesssnapshot.FieldBreakdown, field.TypeJSON, value)
		_node.Breakdown = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(readinesssnapshot.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	return _node, _spec
}

// ReadinessSnapshotCreateBulk is the builder for creating many ReadinessSnapshot entities in bulk.
type ReadinessSnapshotCreateBulk struct {
	config
	err      error
	builders []*ReadinessSnapshotCreate
}

// Save creates the ReadinessSnapshot entities in the database.
func (_c *ReadinessSnapshotCreateBulk) Save(ctx context.Context) ([]*ReadinessSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReadinessSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReadinessSnapshotMutation)
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
func (_c *ReadinessSnapshotCreateBulk) SaveX(ctx context.Context) []*ReadinessSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReadinessSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReadinessSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
