// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yonatank/prepair/ent/jobspec"
	"github.com/yonatank/prepair/ent/predicate"
	"github.com/yonatank/prepair/ent/schema"
)

// JobSpecUpdate is the builder for updating JobSpec entities.
type JobSpecUpdate struct {
	config
	hooks    []Hook
	mutation *JobSpecMutation
}

// Where appends a list predicates to the JobSpecUpdate builder.
func (_u *JobSpecUpdate) Where(ps ...predicate.JobSpec) *JobSpecUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJdHash sets the "jd_hash" field.
func (_u *JobSpecUpdate) SetJdHash(v string) *JobSpecUpdate {
	_u.mutation.SetJdHash(v)
	return _u
}

// SetNillableJdHash sets the "jd_hash" field if the given value is not nil.
func (_u *JobSpecUpdate) SetNillableJdHash(v *string) *JobSpecUpdate {
	if v != nil {
		_u.SetJdHash(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *JobSpecUpdate) SetTitle(v string) *JobSpecUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *JobSpecUpdate) SetNillableTitle(v *string) *JobSpecUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *JobSpecUpdate) SetRawText(v string) *JobSpecUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *JobSpecUpdate) SetNillableRawText(v *string) *JobSpecUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetRoleProfile sets the "role_profile" field.
func (_u *JobSpecUpdate) SetRoleProfile(v *schema.RoleProfileData) *JobSpecUpdate {
	_u.mutation.SetRoleProfile(v)
	return _u
}

// ClearRoleProfile clears the value of the "role_profile" field.
func (_u *JobSpecUpdate) ClearRoleProfile() *JobSpecUpdate {
	_u.mutation.ClearRoleProfile()
	return _u
}

// Mutation returns the JobSpecMutation object of the builder.
func (_u *JobSpecUpdate) Mutation() *JobSpecMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobSpecUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobSpecUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobSpecUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobSpecUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobSpecUpdate) check() error {
	if v, ok := _u.mutation.JdHash(); ok {
		if err := jobspec.JdHashValidator(v); err != nil {
			return &ValidationError{Name: "jd_hash", err: fmt.Errorf(`ent: validator failed for field "JobSpec.jd_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RawText(); ok {
		if err := jobspec.RawTextValidator(v); err != nil {
			return &ValidationError{Name: "raw_text", err: fmt.Errorf(`ent: validator failed for field "JobSpec.raw_text": %w`, err)}
		}
	}
	return nil
}

func (_u *JobSpecUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobspec.Table, jobspec.Columns, sqlgraph.NewFieldSpec(jobspec.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JdHash(); ok {
		_spec.SetField(jobspec.FieldJdHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(jobspec.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(jobspec.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoleProfile(); ok {
		_spec.SetField(jobspec.FieldRoleProfile, field.TypeJSON, value)
	}
	if _u.mutation.RoleProfileCleared() {
		_spec.ClearField(jobspec.FieldRoleProfile, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobspec.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobSpecUpdateOne is the builder for updating a single JobSpec entity.
type JobSpecUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobSpecMutation
}

// SetJdHash sets the "jd_hash" field.
func (_u *JobSpecUpdateOne) SetJdHash(v string) *JobSpecUpdateOne {
	_u.mutation.SetJdHash(v)
	return _u
}

// SetNillableJdHash sets the "jd_hash" field if the given value is not nil.
func (_u *JobSpecUpdateOne) SetNillableJdHash(v *string) *JobSpecUpdateOne {
	if v != nil {
		_u.SetJdHash(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *JobSpecUpdateOne) SetTitle(v string) *JobSpecUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *JobSpecUpdateOne) SetNillableTitle(v *string) *JobSpecUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *JobSpecUpdateOne) SetRawText(v string) *JobSpecUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *JobSpecUpdateOne) SetNillableRawText(v *string) *JobSpecUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetRoleProfile sets the "role_profile" field.
func (_u *JobSpecUpdateOne) SetRoleProfile(v *schema.RoleProfileData) *JobSpecUpdateOne {
	_u.mutation.SetRoleProfile(v)
	return _u
}

// ClearRoleProfile clears the value of the "role_profile" field.
func (_u *JobSpecUpdateOne) ClearRoleProfile() *JobSpecUpdateOne {
	_u.mutation.ClearRoleProfile()
	return _u
}

// Mutation returns the JobSpecMutation object of the builder.
func (_u *JobSpecUpdateOne) Mutation() *JobSpecMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobSpecUpdate builder.
func (_u *JobSpecUpdateOne) Where(ps ...predicate.JobSpec) *JobSpecUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobSpecUpdateOne) Select(field string, fields ...string) *JobSpecUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobSpec entity.
func (_u *JobSpecUpdateOne) Save(ctx context.Context) (*JobSpec, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobSpecUpdateOne) SaveX(ctx context.Context) *JobSpec {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobSpecUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobSpecUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobSpecUpdateOne) check() error {
	if v, ok := _u.mutation.JdHash(); ok {
		if err := jobspec.JdHashValidator(v); err != nil {
			return &ValidationError{Name: "jd_hash", err: fmt.Errorf(`ent: validator failed for field "JobSpec.jd_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RawText(); ok {
		if err := jobspec.RawTextValidator(v); err != nil {
			return &ValidationError{Name: "raw_text", err: fmt.Errorf(`ent: validator failed for field "JobSpec.raw_text": %w`, err)}
		}
	}
	return nil
}

func (_u *JobSpecUpdateOne) sqlSave(ctx context.Context) (_node *JobSpec, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobspec.Table, jobspec.Columns, sqlgraph.NewFieldSpec(jobspec.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobSpec.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobspec.FieldID)
		for _, f := range fields {
			if !jobspec.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobspec.FieldID {
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
	if value, ok := _u.mutation.JdHash(); ok {
		_spec.SetField(jobspec.FieldJdHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(jobspec.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(jobspec.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoleProfile(); ok {
		_spec.SetField(jobspec.FieldRoleProfile, field.TypeJSON, value)
	}
	if _u.mutation.RoleProfileCleared() {
		_spec.ClearField(jobspec.FieldRoleProfile, field.TypeJSON)
	}
	_node = &JobSpec{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobspec.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
