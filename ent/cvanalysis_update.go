// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/yonatank/prepair/ent/cvanalysis"
	"github.com/yonatank/prepair/ent/predicate"
)

// CVAnalysisUpdate is the builder for updating CVAnalysis entities.
type CVAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *CVAnalysisMutation
}

// Where appends a list predicates to the CVAnalysisUpdate builder.
func (_u *CVAnalysisUpdate) Where(ps ...predicate.CVAnalysis) *CVAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CVAnalysisUpdate) SetUserID(v string) *CVAnalysisUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CVAnalysisUpdate) SetNillableUserID(v *string) *CVAnalysisUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetJobSpecID sets the "job_spec_id" field.
func (_u *CVAnalysisUpdate) SetJobSpecID(v string) *CVAnalysisUpdate {
	_u.mutation.SetJobSpecID(v)
	return _u
}

// SetNillableJobSpecID sets the "job_spec_id" field if the given value is not nil.
func (_u *CVAnalysisUpdate) SetNillableJobSpecID(v *string) *CVAnalysisUpdate {
	if v != nil {
		_u.SetJobSpecID(*v)
	}
	return _u
}

// SetMatchScore sets the "match_score" field.
func (_u *CVAnalysisUpdate) SetMatchScore(v float64) *CVAnalysisUpdate {
	_u.mutation.ResetMatchScore()
	_u.mutation.SetMatchScore(v)
	return _u
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (_u *CVAnalysisUpdate) SetNillableMatchScore(v *float64) *CVAnalysisUpdate {
	if v != nil {
		_u.SetMatchScore(*v)
	}
	return _u
}

// AddMatchScore adds value to the "match_score" field.
func (_u *CVAnalysisUpdate) AddMatchScore(v float64) *CVAnalysisUpdate {
	_u.mutation.AddMatchScore(v)
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *CVAnalysisUpdate) SetStrengths(v []string) *CVAnalysisUpdate {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *CVAnalysisUpdate) AppendStrengths(v []string) *CVAnalysisUpdate {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *CVAnalysisUpdate) ClearStrengths() *CVAnalysisUpdate {
	_u.mutation.ClearStrengths()
	return _u
}

// SetGaps sets the "gaps" field.
func (_u *CVAnalysisUpdate) SetGaps(v []string) *CVAnalysisUpdate {
	_u.mutation.SetGaps(v)
	return _u
}

// AppendGaps appends value to the "gaps" field.
func (_u *CVAnalysisUpdate) AppendGaps(v []string) *CVAnalysisUpdate {
	_u.mutation.AppendGaps(v)
	return _u
}

// ClearGaps clears the value of the "gaps" field.
func (_u *CVAnalysisUpdate) ClearGaps() *CVAnalysisUpdate {
	_u.mutation.ClearGaps()
	return _u
}

// SetSuggestions sets the "suggestions" field.
func (_u *CVAnalysisUpdate) SetSuggestions(v []string) *CVAnalysisUpdate {
	_u.mutation.SetSuggestions(v)
	return _u
}

// AppendSuggestions appends value to the "suggestions" field.
func (_u *CVAnalysisUpdate) AppendSuggestions(v []string) *CVAnalysisUpdate {
	_u.mutation.AppendSuggestions(v)
	return _u
}

// ClearSuggestions clears the value of the "suggestions" field.
func (_u *CVAnalysisUpdate) ClearSuggestions() *CVAnalysisUpdate {
	_u.mutation.ClearSuggestions()
	return _u
}

// Mutation returns the CVAnalysisMutation object of the builder.
func (_u *CVAnalysisUpdate) Mutation() *CVAnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CVAnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CVAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CVAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CVAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CVAnalysisUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := cvanalysis.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CVAnalysis.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JobSpecID(); ok {
		if err := cvanalysis.JobSpecIDValidator(v); err != nil {
			return &ValidationError{Name: "job_spec_id", err: fmt.Errorf(`ent: validator failed for field "CVAnalysis.job_spec_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CVAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cvanalysis.Table, cvanalysis.Columns, sqlgraph.NewFieldSpec(cvanalysis.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(cvanalysis.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobSpecID(); ok {
		_spec.SetField(cvanalysis.FieldJobSpecID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MatchScore(); ok {
		_spec.SetField(cvanalysis.FieldMatchScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMatchScore(); ok {
		_spec.AddField(cvanalysis.FieldMatchScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(cvanalysis.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cvanalysis.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(cvanalysis.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.Gaps(); ok {
		_spec.SetField(cvanalysis.FieldGaps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGaps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cvanalysis.FieldGaps, value)
		})
	}
	if _u.mutation.GapsCleared() {
		_spec.ClearField(cvanalysis.FieldGaps, field.TypeJSON)
	}
	if value, ok := _u.mutation.Suggestions(); ok {
		_spec.SetField(cvanalysis.FieldSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cvanalysis.FieldSuggestions, value)
		})
	}
	if _u.mutation.SuggestionsCleared() {
		_spec.ClearField(cvanalysis.FieldSuggestions, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cvanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CVAnalysisUpdateOne is the builder for updating a single CVAnalysis entity.
type CVAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CVAnalysisMutation
}

// SetUserID sets the "user_id" field.
func (_u *CVAnalysisUpdateOne) SetUserID(v string) *CVAnalysisUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CVAnalysisUpdateOne) SetNillableUserID(v *string) *CVAnalysisUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetJobSpecID sets the "job_spec_id" field.
func (_u *CVAnalysisUpdateOne) SetJobSpecID(v string) *CVAnalysisUpdateOne {
	_u.mutation.SetJobSpecID(v)
	return _u
}

// SetNillableJobSpecID sets the "job_spec_id" field if the given value is not nil.
func (_u *CVAnalysisUpdateOne) SetNillableJobSpecID(v *string) *CVAnalysisUpdateOne {
	if v != nil {
		_u.SetJobSpecID(*v)
	}
	return _u
}

// SetMatchScore sets the "match_score" field.
func (_u *CVAnalysisUpdateOne) SetMatchScore(v float64) *CVAnalysisUpdateOne {
	_u.mutation.ResetMatchScore()
	_u.mutation.SetMatchScore(v)
	return _u
}

// SetNillableMatchScore sets the "match_score" field if the given value is not nil.
func (_u *CVAnalysisUpdateOne) SetNillableMatchScore(v *float64) *CVAnalysisUpdateOne {
	if v != nil {
		_u.SetMatchScore(*v)
	}
	return _u
}

// AddMatchScore adds value to the "match_score" field.
func (_u *CVAnalysisUpdateOne) AddMatchScore(v float64) *CVAnalysisUpdateOne {
	_u.mutation.AddMatchScore(v)
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *CVAnalysisUpdateOne) SetStrengths(v []string) *CVAnalysisUpdateOne {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *CVAnalysisUpdateOne) AppendStrengths(v []string) *CVAnalysisUpdateOne {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *CVAnalysisUpdateOne) ClearStrengths() *CVAnalysisUpdateOne {
	_u.mutation.ClearStrengths()
	return _u
}

// SetGaps sets the "gaps" field.
func (_u *CVAnalysisUpdateOne) SetGaps(v []string) *CVAnalysisUpdateOne {
	_u.mutation.SetGaps(v)
	return _u
}

// AppendGaps appends value to the "gaps" field.
func (_u *CVAnalysisUpdateOne) AppendGaps(v []string) *CVAnalysisUpdateOne {
	_u.mutation.AppendGaps(v)
	return _u
}

// ClearGaps clears the value of the "gaps" field.
func (_u *CVAnalysisUpdateOne) ClearGaps() *CVAnalysisUpdateOne {
	_u.mutation.ClearGaps()
	return _u
}

// SetSuggestions sets the "suggestions" field.
func (_u *CVAnalysisUpdateOne) SetSuggestions(v []string) *CVAnalysisUpdateOne {
	_u.mutation.SetSuggestions(v)
	return _u
}

// AppendSuggestions appends value to the "suggestions" field.
func (_u *CVAnalysisUpdateOne) AppendSuggestions(v []string) *CVAnalysisUpdateOne {
	_u.mutation.AppendSuggestions(v)
	return _u
}

// ClearSuggestions clears the value of the "suggestions" field.
func (_u *CVAnalysisUpdateOne) ClearSuggestions() *CVAnalysisUpdateOne {
	_u.mutation.ClearSuggestions()
	return _u
}

// Mutation returns the CVAnalysisMutation object of the builder.
func (_u *CVAnalysisUpdateOne) Mutation() *CVAnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the CVAnalysisUpdate builder.
func (_u *CVAnalysisUpdateOne) Where(ps ...predicate.CVAnalysis) *CVAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CVAnalysisUpdateOne) Select(field string, fields ...string) *CVAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CVAnalysis entity.
func (_u *CVAnalysisUpdateOne) Save(ctx context.Context) (*CVAnalysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CVAnalysisUpdateOne) SaveX(ctx context.Context) *CVAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CVAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CVAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CVAnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := cvanalysis.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CVAnalysis.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JobSpecID(); ok {
		if err := cvanalysis.JobSpecIDValidator(v); err != nil {
			return &ValidationError{Name: "job_spec_id", err: fmt.Errorf(`ent: validator failed for field "CVAnalysis.job_spec_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CVAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *CVAnalysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cvanalysis.Table, cvanalysis.Columns, sqlgraph.NewFieldSpec(cvanalysis.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CVAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cvanalysis.FieldID)
		for _, f := range fields {
			if !cvanalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cvanalysis.FieldID {
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
		_spec.SetField(cvanalysis.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobSpecID(); ok {
		_spec.SetField(cvanalysis.FieldJobSpecID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MatchScore(); ok {
		_spec.SetField(cvanalysis.FieldMatchScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMatchScore(); ok {
		_spec.AddField(cvanalysis.FieldMatchScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(cvanalysis.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cvanalysis.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(cvanalysis.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.Gaps(); ok {
		_spec.SetField(cvanalysis.FieldGaps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGaps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cvanalysis.FieldGaps, value)
		})
	}
	if _u.mutation.GapsCleared() {
		_spec.ClearField(cvanalysis.FieldGaps, field.TypeJSON)
	}
	if value, ok := _u.mutation.Suggestions(); ok {
		_spec.SetField(cvanalysis.FieldSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cvanalysis.FieldSuggestions, value)
		})
	}
	if _u.mutation.SuggestionsCleared() {
		_spec.ClearField(cvanalysis.FieldSuggestions, field.TypeJSON)
	}
	_node = &CVAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cvanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
