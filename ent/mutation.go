// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yonatank/prepair/ent/cvanalysis"
	"github.com/yonatank/prepair/ent/interviewsession"
	"github.com/yonatank/prepair/ent/interviewturn"
	"github.com/yonatank/prepair/ent/jobspec"
	"github.com/yonatank/prepair/ent/llmrequestevent"
	"github.com/yonatank/prepair/ent/predicate"
	"github.com/yonatank/prepair/ent/question"
	"github.com/yonatank/prepair/ent/questionhistory"
	"github.com/yonatank/prepair/ent/readinesssnapshot"
	"github.com/yonatank/prepair/ent/schema"
	"github.com/yonatank/prepair/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCVAnalysis        = "CVAnalysis"
	TypeInterviewSession  = "InterviewSession"
	TypeInterviewTurn     = "InterviewTurn"
	TypeJobSpec           = "JobSpec"
	TypeLLMRequestEvent   = "LLMRequestEvent"
	TypeQuestion          = "Question"
	TypeQuestionHistory   = "QuestionHistory"
	TypeReadinessSnapshot = "ReadinessSnapshot"
	TypeUser              = "User"
)

// CVAnalysisMutation represents an operation that mutates the CVAnalysis nodes in the graph.
type CVAnalysisMutation struct {
	config
	op                Op
	typ               string
	id                *string
	user_id           *string
	job_spec_id       *string
	match_score       *float64
	addmatch_score    *float64
	strengths         *[]string
	appendstrengths   []string
	gaps              *[]string
	appendgaps        []string
	suggestions       *[]string
	appendsuggestions []string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*CVAnalysis, error)
	predicates        []predicate.CVAnalysis
}

var _ ent.Mutation = (*CVAnalysisMutation)(nil)

// cvanalysisOption allows management of the mutation configuration using functional options.
type cvanalysisOption func(*CVAnalysisMutation)

// newCVAnalysisMutation creates new mutation for the CVAnalysis entity.
func newCVAnalysisMutation(c config, op Op, opts ...cvanalysisOption) *CVAnalysisMutation {
	m := &CVAnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeCVAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCVAnalysisID sets the ID field of the mutation.
func withCVAnalysisID(id string) cvanalysisOption {
	return func(m *CVAnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *CVAnalysis
		)
		m.oldValue = func(ctx context.Context) (*CVAnalysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CVAnalysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCVAnalysis sets the old CVAnalysis of the mutation.
func withCVAnalysis(node *CVAnalysis) cvanalysisOption {
	return func(m *CVAnalysisMutation) {
		m.oldValue = func(context.Context) (*CVAnalysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CVAnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CVAnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CVAnalysis entities.
func (m *CVAnalysisMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CVAnalysisMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CVAnalysisMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CVAnalysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CVAnalysisMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CVAnalysisMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CVAnalysis entity.
// If the CVAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVAnalysisMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CVAnalysisMutation) ResetUserID() {
	m.user_id = nil
}

// SetJobSpecID sets the "job_spec_id" field.
func (m *CVAnalysisMutation) SetJobSpecID(s string) {
	m.job_spec_id = &s
}

// JobSpecID returns the value of the "job_spec_id" field in the mutation.
func (m *CVAnalysisMutation) JobSpecID() (r string, exists bool) {
	v := m.job_spec_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobSpecID returns the old "job_spec_id" field's value of the CVAnalysis entity.
// If the CVAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVAnalysisMutation) OldJobSpecID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobSpecID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobSpecID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobSpecID: %w", err)
	}
	return oldValue.JobSpecID, nil
}

// ResetJobSpecID resets all changes to the "job_spec_id" field.
func (m *CVAnalysisMutation) ResetJobSpecID() {
	m.job_spec_id = nil
}

// SetMatchScore sets the "match_score" field.
func (m *CVAnalysisMutation) SetMatchScore(f float64) {
	m.match_score = &f
	m.addmatch_score = nil
}

// MatchScore returns the value of the "match_score" field in the mutation.
func (m *CVAnalysisMutation) MatchScore() (r float64, exists bool) {
	v := m.match_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchScore returns the old "match_score" field's value of the CVAnalysis entity.
// If the CVAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVAnalysisMutation) OldMatchScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchScore: %w", err)
	}
	return oldValue.MatchScore, nil
}

// AddMatchScore adds f to the "match_score" field.
func (m *CVAnalysisMutation) AddMatchScore(f float64) {
	if m.addmatch_score != nil {
		*m.addmatch_score += f
	} else {
		m.addmatch_score = &f
	}
}

// AddedMatchScore returns the value that was added to the "match_score" field in this mutation.
func (m *CVAnalysisMutation) AddedMatchScore() (r float64, exists bool) {
	v := m.addmatch_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMatchScore resets all changes to the "match_score" field.
func (m *CVAnalysisMutation) ResetMatchScore() {
	m.match_score = nil
	m.addmatch_score = nil
}

// SetStrengths sets the "strengths" field.
func (m *CVAnalysisMutation) SetStrengths(s []string) {
	m.strengths = &s
	m.appendstrengths = nil
}

// Strengths returns the value of the "strengths" field in the mutation.
func (m *CVAnalysisMutation) Strengths() (r []string, exists bool) {
	v := m.strengths
	if v == nil {
		return
	}
	return *v, true
}

// OldStrengths returns the old "strengths" field's value of the CVAnalysis entity.
// If the CVAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVAnalysisMutation) OldStrengths(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrengths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrengths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrengths: %w", err)
	}
	return oldValue.Strengths, nil
}

// AppendStrengths adds s to the "strengths" field.
func (m *CVAnalysisMutation) AppendStrengths(s []string) {
	m.appendstrengths = append(m.appendstrengths, s...)
}

// AppendedStrengths returns the list of values that were appended to the "strengths" field in this mutation.
func (m *CVAnalysisMutation) AppendedStrengths() ([]string, bool) {
	if len(m.appendstrengths) == 0 {
		return nil, false
	}
	return m.appendstrengths, true
}

// ClearStrengths clears the value of the "strengths" field.
func (m *CVAnalysisMutation) ClearStrengths() {
	m.strengths = nil
	m.appendstrengths = nil
	m.clearedFields[cvanalysis.FieldStrengths] = struct{}{}
}

// StrengthsCleared returns if the "strengths" field was cleared in this mutation.
func (m *CVAnalysisMutation) StrengthsCleared() bool {
	_, ok := m.clearedFields[cvanalysis.FieldStrengths]
	return ok
}

// ResetStrengths resets all changes to the "strengths" field.
func (m *CVAnalysisMutation) ResetStrengths() {
	m.strengths = nil
	m.appendstrengths = nil
	delete(m.clearedFields, cvanalysis.FieldStrengths)
}

// SetGaps sets the "gaps" field.
func (m *CVAnalysisMutation) SetGaps(s []string) {
	m.gaps = &s
	m.appendgaps = nil
}

// Gaps returns the value of the "gaps" field in the mutation.
func (m *CVAnalysisMutation) Gaps() (r []string, exists bool) {
	v := m.gaps
	if v == nil {
		return
	}
	return *v, true
}

// OldGaps returns the old "gaps" field's value of the CVAnalysis entity.
// If the CVAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVAnalysisMutation) OldGaps(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGaps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGaps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGaps: %w", err)
	}
	return oldValue.Gaps, nil
}

// AppendGaps adds s to the "gaps" field.
func (m *CVAnalysisMutation) AppendGaps(s []string) {
	m.appendgaps = append(m.appendgaps, s...)
}

// AppendedGaps returns the list of values that were appended to the "gaps" field in this mutation.
func (m *CVAnalysisMutation) AppendedGaps() ([]string, bool) {
	if len(m.appendgaps) == 0 {
		return nil, false
	}
	return m.appendgaps, true
}

// ClearGaps clears the value of the "gaps" field.
func (m *CVAnalysisMutation) ClearGaps() {
	m.gaps = nil
	m.appendgaps = nil
	m.clearedFields[cvanalysis.FieldGaps] = struct{}{}
}

// GapsCleared returns if the "gaps" field was cleared in this mutation.
func (m *CVAnalysisMutation) GapsCleared() bool {
	_, ok := m.clearedFields[cvanalysis.FieldGaps]
	return ok
}

// ResetGaps resets all changes to the "gaps" field.
func (m *CVAnalysisMutation) ResetGaps() {
	m.gaps = nil
	m.appendgaps = nil
	delete(m.clearedFields, cvanalysis.FieldGaps)
}

// SetSuggestions sets the "suggestions" field.
func (m *CVAnalysisMutation) SetSuggestions(s []string) {
	m.suggestions = &s
	m.appendsuggestions = nil
}

// Suggestions returns the value of the "suggestions" field in the mutation.
func (m *CVAnalysisMutation) Suggestions() (r []string, exists bool) {
	v := m.suggestions
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestions returns the old "suggestions" field's value of the CVAnalysis entity.
// If the CVAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVAnalysisMutation) OldSuggestions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestions: %w", err)
	}
	return oldValue.Suggestions, nil
}

// AppendSuggestions adds s to the "suggestions" field.
func (m *CVAnalysisMutation) AppendSuggestions(s []string) {
	m.appendsuggestions = append(m.appendsuggestions, s...)
}

// AppendedSuggestions returns the list of values that were appended to the "suggestions" field in this mutation.
func (m *CVAnalysisMutation) AppendedSuggestions() ([]string, bool) {
	if len(m.appendsuggestions) == 0 {
		return nil, false
	}
	return m.appendsuggestions, true
}

// ClearSuggestions clears the value of the "suggestions" field.
func (m *CVAnalysisMutation) ClearSuggestions() {
	m.suggestions = nil
	m.appendsuggestions = nil
	m.clearedFields[cvanalysis.FieldSuggestions] = struct{}{}
}

// SuggestionsCleared returns if the "suggestions" field was cleared in this mutation.
func (m *CVAnalysisMutation) SuggestionsCleared() bool {
	_, ok := m.clearedFields[cvanalysis.FieldSuggestions]
	return ok
}

// ResetSuggestions resets all changes to the "suggestions" field.
func (m *CVAnalysisMutation) ResetSuggestions() {
	m.suggestions = nil
	m.appendsuggestions = nil
	delete(m.clearedFields, cvanalysis.FieldSuggestions)
}

// SetCreatedAt sets the "created_at" field.
func (m *CVAnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CVAnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CVAnalysis entity.
// If the CVAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CVAnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CVAnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CVAnalysisMutation builder.
func (m *CVAnalysisMutation) Where(ps ...predicate.CVAnalysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CVAnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CVAnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CVAnalysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CVAnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CVAnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CVAnalysis).
func (m *CVAnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CVAnalysisMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, cvanalysis.FieldUserID)
	}
	if m.job_spec_id != nil {
		fields = append(fields, cvanalysis.FieldJobSpecID)
	}
	if m.match_score != nil {
		fields = append(fields, cvanalysis.FieldMatchScore)
	}
	if m.strengths != nil {
		fields = append(fields, cvanalysis.FieldStrengths)
	}
	if m.gaps != nil {
		fields = append(fields, cvanalysis.FieldGaps)
	}
	if m.suggestions != nil {
		fields = append(fields, cvanalysis.FieldSuggestions)
	}
	if m.created_at != nil {
		fields = append(fields, cvanalysis.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CVAnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cvanalysis.FieldUserID:
		return m.UserID()
	case cvanalysis.FieldJobSpecID:
		return m.JobSpecID()
	case cvanalysis.FieldMatchScore:
		return m.MatchScore()
	case cvanalysis.FieldStrengths:
		return m.Strengths()
	case cvanalysis.FieldGaps:
		return m.Gaps()
	case cvanalysis.FieldSuggestions:
		return m.Suggestions()
	case cvanalysis.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CVAnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cvanalysis.FieldUserID:
		return m.OldUserID(ctx)
	case cvanalysis.FieldJobSpecID:
		return m.OldJobSpecID(ctx)
	case cvanalysis.FieldMatchScore:
		return m.OldMatchScore(ctx)
	case cvanalysis.FieldStrengths:
		return m.OldStrengths(ctx)
	case cvanalysis.FieldGaps:
		return m.OldGaps(ctx)
	case cvanalysis.FieldSuggestions:
		return m.OldSuggestions(ctx)
	case cvanalysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CVAnalysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CVAnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cvanalysis.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case cvanalysis.FieldJobSpecID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobSpecID(v)
		return nil
	case cvanalysis.FieldMatchScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchScore(v)
		return nil
	case cvanalysis.FieldStrengths:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrengths(v)
		return nil
	case cvanalysis.FieldGaps:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGaps(v)
		return nil
	case cvanalysis.FieldSuggestions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestions(v)
		return nil
	case cvanalysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CVAnalysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CVAnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addmatch_score != nil {
		fields = append(fields, cvanalysis.FieldMatchScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CVAnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cvanalysis.FieldMatchScore:
		return m.AddedMatchScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CVAnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cvanalysis.FieldMatchScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMatchScore(v)
		return nil
	}
	return fmt.Errorf("unknown CVAnalysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CVAnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cvanalysis.FieldStrengths) {
		fields = append(fields, cvanalysis.FieldStrengths)
	}
	if m.FieldCleared(cvanalysis.FieldGaps) {
		fields = append(fields, cvanalysis.FieldGaps)
	}
	if m.FieldCleared(cvanalysis.FieldSuggestions) {
		fields = append(fields, cvanalysis.FieldSuggestions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CVAnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CVAnalysisMutation) ClearField(name string) error {
	switch name {
	case cvanalysis.FieldStrengths:
		m.ClearStrengths()
		return nil
	case cvanalysis.FieldGaps:
		m.ClearGaps()
		return nil
	case cvanalysis.FieldSuggestions:
		m.ClearSuggestions()
		return nil
	}
	return fmt.Errorf("unknown CVAnalysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CVAnalysisMutation) ResetField(name string) error {
	switch name {
	case cvanalysis.FieldUserID:
		m.ResetUserID()
		return nil
	case cvanalysis.FieldJobSpecID:
		m.ResetJobSpecID()
		return nil
	case cvanalysis.FieldMatchScore:
		m.ResetMatchScore()
		return nil
	case cvanalysis.FieldStrengths:
		m.ResetStrengths()
		return nil
	case cvanalysis.FieldGaps:
		m.ResetGaps()
		return nil
	case cvanalysis.FieldSuggestions:
		m.ResetSuggestions()
		return nil
	case cvanalysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CVAnalysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CVAnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CVAnalysisMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CVAnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CVAnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CVAnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CVAnalysisMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CVAnalysisMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CVAnalysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CVAnalysisMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CVAnalysis edge %s", name)
}

// InterviewSessionMutation represents an operation that mutates the InterviewSession nodes in the graph.
type InterviewSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	user_id            *string
	job_spec_id        *string
	language           *string
	persona            *string
	plan               *[]schema.PlanItemData
	appendplan         []schema.PlanItemData
	conversation_state *string
	started_at         *time.Time
	ended_at           *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*InterviewSession, error)
	predicates         []predicate.InterviewSession
}

var _ ent.Mutation = (*InterviewSessionMutation)(nil)

// interviewsessionOption allows management of the mutation configuration using functional options.
type interviewsessionOption func(*InterviewSessionMutation)

// newInterviewSessionMutation creates new mutation for the InterviewSession entity.
func newInterviewSessionMutation(c config, op Op, opts ...interviewsessionOption) *InterviewSessionMutation {
	m := &InterviewSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeInterviewSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInterviewSessionID sets the ID field of the mutation.
func withInterviewSessionID(id string) interviewsessionOption {
	return func(m *InterviewSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *InterviewSession
		)
		m.oldValue = func(ctx context.Context) (*InterviewSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InterviewSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInterviewSession sets the old InterviewSession of the mutation.
func withInterviewSession(node *InterviewSession) interviewsessionOption {
	return func(m *InterviewSessionMutation) {
		m.oldValue = func(context.Context) (*InterviewSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InterviewSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InterviewSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InterviewSession entities.
func (m *InterviewSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InterviewSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InterviewSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InterviewSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *InterviewSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InterviewSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InterviewSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetJobSpecID sets the "job_spec_id" field.
func (m *InterviewSessionMutation) SetJobSpecID(s string) {
	m.job_spec_id = &s
}

// JobSpecID returns the value of the "job_spec_id" field in the mutation.
func (m *InterviewSessionMutation) JobSpecID() (r string, exists bool) {
	v := m.job_spec_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobSpecID returns the old "job_spec_id" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldJobSpecID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobSpecID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobSpecID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobSpecID: %w", err)
	}
	return oldValue.JobSpecID, nil
}

// ResetJobSpecID resets all changes to the "job_spec_id" field.
func (m *InterviewSessionMutation) ResetJobSpecID() {
	m.job_spec_id = nil
}

// SetLanguage sets the "language" field.
func (m *InterviewSessionMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *InterviewSessionMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *InterviewSessionMutation) ResetLanguage() {
	m.language = nil
}

// SetPersona sets the "persona" field.
func (m *InterviewSessionMutation) SetPersona(s string) {
	m.persona = &s
}

// Persona returns the value of the "persona" field in the mutation.
func (m *InterviewSessionMutation) Persona() (r string, exists bool) {
	v := m.persona
	if v == nil {
		return
	}
	return *v, true
}

// OldPersona returns the old "persona" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldPersona(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersona is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersona requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersona: %w", err)
	}
	return oldValue.Persona, nil
}

// ResetPersona resets all changes to the "persona" field.
func (m *InterviewSessionMutation) ResetPersona() {
	m.persona = nil
}

// SetPlan sets the "plan" field.
func (m *InterviewSessionMutation) SetPlan(sid []schema.PlanItemData) {
	m.plan = &sid
	m.appendplan = nil
}

// Plan returns the value of the "plan" field in the mutation.
func (m *InterviewSessionMutation) Plan() (r []schema.PlanItemData, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldPlan(ctx context.Context) (v []schema.PlanItemData, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// AppendPlan adds sid to the "plan" field.
func (m *InterviewSessionMutation) AppendPlan(sid []schema.PlanItemData) {
	m.appendplan = append(m.appendplan, sid...)
}

// AppendedPlan returns the list of values that were appended to the "plan" field in this mutation.
func (m *InterviewSessionMutation) AppendedPlan() ([]schema.PlanItemData, bool) {
	if len(m.appendplan) == 0 {
		return nil, false
	}
	return m.appendplan, true
}

// ClearPlan clears the value of the "plan" field.
func (m *InterviewSessionMutation) ClearPlan() {
	m.plan = nil
	m.appendplan = nil
	m.clearedFields[interviewsession.FieldPlan] = struct{}{}
}

// PlanCleared returns if the "plan" field was cleared in this mutation.
func (m *InterviewSessionMutation) PlanCleared() bool {
	_, ok := m.clearedFields[interviewsession.FieldPlan]
	return ok
}

// ResetPlan resets all changes to the "plan" field.
func (m *InterviewSessionMutation) ResetPlan() {
	m.plan = nil
	m.appendplan = nil
	delete(m.clearedFields, interviewsession.FieldPlan)
}

// SetConversationState sets the "conversation_state" field.
func (m *InterviewSessionMutation) SetConversationState(s string) {
	m.conversation_state = &s
}

// ConversationState returns the value of the "conversation_state" field in the mutation.
func (m *InterviewSessionMutation) ConversationState() (r string, exists bool) {
	v := m.conversation_state
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationState returns the old "conversation_state" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldConversationState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationState: %w", err)
	}
	return oldValue.ConversationState, nil
}

// ResetConversationState resets all changes to the "conversation_state" field.
func (m *InterviewSessionMutation) ResetConversationState() {
	m.conversation_state = nil
}

// SetStartedAt sets the "started_at" field.
func (m *InterviewSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *InterviewSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *InterviewSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *InterviewSessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *InterviewSessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the InterviewSession entity.
// If the InterviewSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewSessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *InterviewSessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[interviewsession.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *InterviewSessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[interviewsession.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *InterviewSessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, interviewsession.FieldEndedAt)
}

// Where appends a list predicates to the InterviewSessionMutation builder.
func (m *InterviewSessionMutation) Where(ps ...predicate.InterviewSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InterviewSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InterviewSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InterviewSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InterviewSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InterviewSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InterviewSession).
func (m *InterviewSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InterviewSessionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, interviewsession.FieldUserID)
	}
	if m.job_spec_id != nil {
		fields = append(fields, interviewsession.FieldJobSpecID)
	}
	if m.language != nil {
		fields = append(fields, interviewsession.FieldLanguage)
	}
	if m.persona != nil {
		fields = append(fields, interviewsession.FieldPersona)
	}
	if m.plan != nil {
		fields = append(fields, interviewsession.FieldPlan)
	}
	if m.conversation_state != nil {
		fields = append(fields, interviewsession.FieldConversationState)
	}
	if m.started_at != nil {
		fields = append(fields, interviewsession.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, interviewsession.FieldEndedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InterviewSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interviewsession.FieldUserID:
		return m.UserID()
	case interviewsession.FieldJobSpecID:
		return m.JobSpecID()
	case interviewsession.FieldLanguage:
		return m.Language()
	case interviewsession.FieldPersona:
		return m.Persona()
	case interviewsession.FieldPlan:
		return m.Plan()
	case interviewsession.FieldConversationState:
		return m.ConversationState()
	case interviewsession.FieldStartedAt:
		return m.StartedAt()
	case interviewsession.FieldEndedAt:
		return m.EndedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InterviewSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interviewsession.FieldUserID:
		return m.OldUserID(ctx)
	case interviewsession.FieldJobSpecID:
		return m.OldJobSpecID(ctx)
	case interviewsession.FieldLanguage:
		return m.OldLanguage(ctx)
	case interviewsession.FieldPersona:
		return m.OldPersona(ctx)
	case interviewsession.FieldPlan:
		return m.OldPlan(ctx)
	case interviewsession.FieldConversationState:
		return m.OldConversationState(ctx)
	case interviewsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case interviewsession.FieldEndedAt:
		return m.OldEndedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InterviewSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterviewSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interviewsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case interviewsession.FieldJobSpecID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobSpecID(v)
		return nil
	case interviewsession.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case interviewsession.FieldPersona:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersona(v)
		return nil
	case interviewsession.FieldPlan:
		v, ok := value.([]schema.PlanItemData)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case interviewsession.FieldConversationState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationState(v)
		return nil
	case interviewsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case interviewsession.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InterviewSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InterviewSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InterviewSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterviewSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InterviewSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InterviewSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(interviewsession.FieldPlan) {
		fields = append(fields, interviewsession.FieldPlan)
	}
	if m.FieldCleared(interviewsession.FieldEndedAt) {
		fields = append(fields, interviewsession.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InterviewSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InterviewSessionMutation) ClearField(name string) error {
	switch name {
	case interviewsession.FieldPlan:
		m.ClearPlan()
		return nil
	case interviewsession.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown InterviewSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InterviewSessionMutation) ResetField(name string) error {
	switch name {
	case interviewsession.FieldUserID:
		m.ResetUserID()
		return nil
	case interviewsession.FieldJobSpecID:
		m.ResetJobSpecID()
		return nil
	case interviewsession.FieldLanguage:
		m.ResetLanguage()
		return nil
	case interviewsession.FieldPersona:
		m.ResetPersona()
		return nil
	case interviewsession.FieldPlan:
		m.ResetPlan()
		return nil
	case interviewsession.FieldConversationState:
		m.ResetConversationState()
		return nil
	case interviewsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case interviewsession.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	}
	return fmt.Errorf("unknown InterviewSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InterviewSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InterviewSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InterviewSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InterviewSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InterviewSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InterviewSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InterviewSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InterviewSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InterviewSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InterviewSession edge %s", name)
}

// InterviewTurnMutation represents an operation that mutates the InterviewTurn nodes in the graph.
type InterviewTurnMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	turn_id            *string
	session_id         *string
	turn_index         *int
	addturn_index      *int
	question_id        *string
	question_snapshot  *string
	transcript         *string
	code               *string
	score              *float64
	addscore           *float64
	is_followup        *bool
	parent_turn_id     *string
	question_number    *int
	addquestion_number *int
	time_spent_secs    *int
	addtime_spent_secs *int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*InterviewTurn, error)
	predicates         []predicate.InterviewTurn
}

var _ ent.Mutation = (*InterviewTurnMutation)(nil)

// interviewturnOption allows management of the mutation configuration using functional options.
type interviewturnOption func(*InterviewTurnMutation)

// newInterviewTurnMutation creates new mutation for the InterviewTurn entity.
func newInterviewTurnMutation(c config, op Op, opts ...interviewturnOption) *InterviewTurnMutation {
	m := &InterviewTurnMutation{
		config:        c,
		op:            op,
		typ:           TypeInterviewTurn,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInterviewTurnID sets the ID field of the mutation.
func withInterviewTurnID(id int) interviewturnOption {
	return func(m *InterviewTurnMutation) {
		var (
			err   error
			once  sync.Once
			value *InterviewTurn
		)
		m.oldValue = func(ctx context.Context) (*InterviewTurn, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InterviewTurn.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInterviewTurn sets the old InterviewTurn of the mutation.
func withInterviewTurn(node *InterviewTurn) interviewturnOption {
	return func(m *InterviewTurnMutation) {
		m.oldValue = func(context.Context) (*InterviewTurn, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InterviewTurnMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InterviewTurnMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InterviewTurnMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InterviewTurnMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InterviewTurn.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *InterviewTurnMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *InterviewTurnMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the InterviewTurn entity.
// If the InterviewTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewTurnMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *InterviewTurnMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *InterviewTurnMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *InterviewTurnMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *InterviewTurnMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *InterviewTurnMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the InterviewTurn entity.
// If the InterviewTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewTurnMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *InterviewTurnMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetTurnID sets the "turn_id" field.
func (m *InterviewTurnMutation) SetTurnID(s string) {
	m.turn_id = &s
}

// TurnID returns the value of the "turn_id" field in the mutation.
func (m *InterviewTurnMutation) TurnID() (r string, exists bool) {
	v := m.turn_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnID returns the old "turn_id" field's value of the InterviewTurn entity.
// If the InterviewTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewTurnMutation) OldTurnID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnID: %w", err)
	}
	return oldValue.TurnID, nil
}

// ResetTurnID resets all changes to the "turn_id" field.
func (m *InterviewTurnMutation) ResetTurnID() {
	m.turn_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *InterviewTurnMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *InterviewTurnMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the InterviewTurn entity.
// If the InterviewTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewTurnMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *InterviewTurnMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTurnIndex sets the "turn_index" field.
func (m *InterviewTurnMutation) SetTurnIndex(i int) {
	m.turn_index = &i
	m.addturn_index = nil
}

// TurnIndex returns the value of the "turn_index" field in the mutation.
func (m *InterviewTurnMutation) TurnIndex() (r int, exists bool) {
	v := m.turn_index
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnIndex returns the old "turn_index" field's value of the InterviewTurn entity.
// If the InterviewTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewTurnMutation) OldTurnIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnIndex: %w", err)
	}
	return oldValue.TurnIndex, nil
}

// AddTurnIndex adds i to the "turn_index" field.
func (m *InterviewTurnMutation) AddTurnIndex(i int) {
	if m.addturn_index != nil {
		*m.addturn_index += i
	} else {
		m.addturn_index = &i
	}
}

// AddedTurnIndex returns the value that was added to the "turn_index" field in this mutation.
func (m *InterviewTurnMutation) AddedTurnIndex() (r int, exists bool) {
	v := m.addturn_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetTurnIndex resets all changes to the "turn_index" field.
func (m *InterviewTurnMutation) ResetTurnIndex() {
	m.turn_index = nil
	m.addturn_index = nil
}

// SetQuestionID sets the "question_id" field.
func (m *InterviewTurnMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *InterviewTurnMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the InterviewTurn entity.
// If the InterviewTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewTurnMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *InterviewTurnMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetQuestionSnapshot sets the "question_snapshot" field.
func (m *InterviewTurnMutation) SetQuestionSnapshot(s string) {
	m.question_snapshot = &s
}

// QuestionSnapshot returns the value of the "question_snapshot" field in the mutation.
func (m *InterviewTurnMutation) QuestionSnapshot() (r string, exists bool) {
	v := m.question_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionSnapshot returns the old "question_snapshot" field's value of the InterviewTurn entity.
// If the InterviewTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewTurnMutation) OldQuestionSnapshot(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionSnapshot: %w", err)
	}
	return oldValue.QuestionSnapshot, nil
}

// ResetQuestionSnapshot resets all changes to the "question_snapshot" field.
func (m *InterviewTurnMutation) ResetQuestionSnapshot() {
	m.question_snapshot = nil
}

// SetTranscript sets the "transcript" field.
func (m *InterviewTurnMutation) SetTranscript(s string) {
	m.transcript = &s
}

// Transcript returns the value of the "transcript" field in the mutation.
func (m *InterviewTurnMutation) Transcript() (r string, exists bool) {
	v := m.transcript
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscript returns the old "transcript" field's value of the InterviewTurn entity.
// If the InterviewTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewTurnMutation) OldTranscript(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscript is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscript requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscript: %w", err)
	}
	return oldValue.Transcript, nil
}

// ResetTranscript resets all changes to the "transcript" field.
func (m *InterviewTurnMutation) ResetTranscript() {
	m.transcript = nil
}

// SetCode sets the "code" field.
func (m *InterviewTurnMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *InterviewTurnMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the InterviewTurn entity.
// If the InterviewTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewTurnMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *InterviewTurnMutation) ResetCode() {
	m.code = nil
}

// SetScore sets the "score" field.
func (m *InterviewTurnMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *InterviewTurnMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the InterviewTurn entity.
// If the InterviewTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewTurnMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *InterviewTurnMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *InterviewTurnMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *InterviewTurnMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetIsFollowup sets the "is_followup" field.
func (m *InterviewTurnMutation) SetIsFollowup(b bool) {
	m.is_followup = &b
}

// IsFollowup returns the value of the "is_followup" field in the mutation.
func (m *InterviewTurnMutation) IsFollowup() (r bool, exists bool) {
	v := m.is_followup
	if v == nil {
		return
	}
	return *v, true
}

// OldIsFollowup returns the old "is_followup" field's value of the InterviewTurn entity.
// If the InterviewTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewTurnMutation) OldIsFollowup(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsFollowup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsFollowup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsFollowup: %w", err)
	}
	return oldValue.IsFollowup, nil
}

// ResetIsFollowup resets all changes to the "is_followup" field.
func (m *InterviewTurnMutation) ResetIsFollowup() {
	m.is_followup = nil
}

// SetParentTurnID sets the "parent_turn_id" field.
func (m *InterviewTurnMutation) SetParentTurnID(s string) {
	m.parent_turn_id = &s
}

// ParentTurnID returns the value of the "parent_turn_id" field in the mutation.
func (m *InterviewTurnMutation) ParentTurnID() (r string, exists bool) {
	v := m.parent_turn_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTurnID returns the old "parent_turn_id" field's value of the InterviewTurn entity.
// If the InterviewTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewTurnMutation) OldParentTurnID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTurnID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTurnID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTurnID: %w", err)
	}
	return oldValue.ParentTurnID, nil
}

// ResetParentTurnID resets all changes to the "parent_turn_id" field.
func (m *InterviewTurnMutation) ResetParentTurnID() {
	m.parent_turn_id = nil
}

// SetQuestionNumber sets the "question_number" field.
func (m *InterviewTurnMutation) SetQuestionNumber(i int) {
	m.question_number = &i
	m.addquestion_number = nil
}

// QuestionNumber returns the value of the "question_number" field in the mutation.
func (m *InterviewTurnMutation) QuestionNumber() (r int, exists bool) {
	v := m.question_number
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionNumber returns the old "question_number" field's value of the InterviewTurn entity.
// If the InterviewTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewTurnMutation) OldQuestionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionNumber: %w", err)
	}
	return oldValue.QuestionNumber, nil
}

// AddQuestionNumber adds i to the "question_number" field.
func (m *InterviewTurnMutation) AddQuestionNumber(i int) {
	if m.addquestion_number != nil {
		*m.addquestion_number += i
	} else {
		m.addquestion_number = &i
	}
}

// AddedQuestionNumber returns the value that was added to the "question_number" field in this mutation.
func (m *InterviewTurnMutation) AddedQuestionNumber() (r int, exists bool) {
	v := m.addquestion_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionNumber resets all changes to the "question_number" field.
func (m *InterviewTurnMutation) ResetQuestionNumber() {
	m.question_number = nil
	m.addquestion_number = nil
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (m *InterviewTurnMutation) SetTimeSpentSecs(i int) {
	m.time_spent_secs = &i
	m.addtime_spent_secs = nil
}

// TimeSpentSecs returns the value of the "time_spent_secs" field in the mutation.
func (m *InterviewTurnMutation) TimeSpentSecs() (r int, exists bool) {
	v := m.time_spent_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentSecs returns the old "time_spent_secs" field's value of the InterviewTurn entity.
// If the InterviewTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InterviewTurnMutation) OldTimeSpentSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentSecs: %w", err)
	}
	return oldValue.TimeSpentSecs, nil
}

// AddTimeSpentSecs adds i to the "time_spent_secs" field.
func (m *InterviewTurnMutation) AddTimeSpentSecs(i int) {
	if m.addtime_spent_secs != nil {
		*m.addtime_spent_secs += i
	} else {
		m.addtime_spent_secs = &i
	}
}

// AddedTimeSpentSecs returns the value that was added to the "time_spent_secs" field in this mutation.
func (m *InterviewTurnMutation) AddedTimeSpentSecs() (r int, exists bool) {
	v := m.addtime_spent_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentSecs resets all changes to the "time_spent_secs" field.
func (m *InterviewTurnMutation) ResetTimeSpentSecs() {
	m.time_spent_secs = nil
	m.addtime_spent_secs = nil
}

// Where appends a list predicates to the InterviewTurnMutation builder.
func (m *InterviewTurnMutation) Where(ps ...predicate.InterviewTurn) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InterviewTurnMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InterviewTurnMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InterviewTurn, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InterviewTurnMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InterviewTurnMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InterviewTurn).
func (m *InterviewTurnMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InterviewTurnMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.sequence != nil {
		fields = append(fields, interviewturn.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, interviewturn.FieldTimestamp)
	}
	if m.turn_id != nil {
		fields = append(fields, interviewturn.FieldTurnID)
	}
	if m.session_id != nil {
		fields = append(fields, interviewturn.FieldSessionID)
	}
	if m.turn_index != nil {
		fields = append(fields, interviewturn.FieldTurnIndex)
	}
	if m.question_id != nil {
		fields = append(fields, interviewturn.FieldQuestionID)
	}
	if m.question_snapshot != nil {
		fields = append(fields, interviewturn.FieldQuestionSnapshot)
	}
	if m.transcript != nil {
		fields = append(fields, interviewturn.FieldTranscript)
	}
	if m.code != nil {
		fields = append(fields, interviewturn.FieldCode)
	}
	if m.score != nil {
		fields = append(fields, interviewturn.FieldScore)
	}
	if m.is_followup != nil {
		fields = append(fields, interviewturn.FieldIsFollowup)
	}
	if m.parent_turn_id != nil {
		fields = append(fields, interviewturn.FieldParentTurnID)
	}
	if m.question_number != nil {
		fields = append(fields, interviewturn.FieldQuestionNumber)
	}
	if m.time_spent_secs != nil {
		fields = append(fields, interviewturn.FieldTimeSpentSecs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InterviewTurnMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case interviewturn.FieldSequence:
		return m.Sequence()
	case interviewturn.FieldTimestamp:
		return m.Timestamp()
	case interviewturn.FieldTurnID:
		return m.TurnID()
	case interviewturn.FieldSessionID:
		return m.SessionID()
	case interviewturn.FieldTurnIndex:
		return m.TurnIndex()
	case interviewturn.FieldQuestionID:
		return m.QuestionID()
	case interviewturn.FieldQuestionSnapshot:
		return m.QuestionSnapshot()
	case interviewturn.FieldTranscript:
		return m.Transcript()
	case interviewturn.FieldCode:
		return m.Code()
	case interviewturn.FieldScore:
		return m.Score()
	case interviewturn.FieldIsFollowup:
		return m.IsFollowup()
	case interviewturn.FieldParentTurnID:
		return m.ParentTurnID()
	case interviewturn.FieldQuestionNumber:
		return m.QuestionNumber()
	case interviewturn.FieldTimeSpentSecs:
		return m.TimeSpentSecs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InterviewTurnMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case interviewturn.FieldSequence:
		return m.OldSequence(ctx)
	case interviewturn.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case interviewturn.FieldTurnID:
		return m.OldTurnID(ctx)
	case interviewturn.FieldSessionID:
		return m.OldSessionID(ctx)
	case interviewturn.FieldTurnIndex:
		return m.OldTurnIndex(ctx)
	case interviewturn.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case interviewturn.FieldQuestionSnapshot:
		return m.OldQuestionSnapshot(ctx)
	case interviewturn.FieldTranscript:
		return m.OldTranscript(ctx)
	case interviewturn.FieldCode:
		return m.OldCode(ctx)
	case interviewturn.FieldScore:
		return m.OldScore(ctx)
	case interviewturn.FieldIsFollowup:
		return m.OldIsFollowup(ctx)
	case interviewturn.FieldParentTurnID:
		return m.OldParentTurnID(ctx)
	case interviewturn.FieldQuestionNumber:
		return m.OldQuestionNumber(ctx)
	case interviewturn.FieldTimeSpentSecs:
		return m.OldTimeSpentSecs(ctx)
	}
	return nil, fmt.Errorf("unknown InterviewTurn field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterviewTurnMutation) SetField(name string, value ent.Value) error {
	switch name {
	case interviewturn.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case interviewturn.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case interviewturn.FieldTurnID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnID(v)
		return nil
	case interviewturn.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case interviewturn.FieldTurnIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnIndex(v)
		return nil
	case interviewturn.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case interviewturn.FieldQuestionSnapshot:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionSnapshot(v)
		return nil
	case interviewturn.FieldTranscript:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscript(v)
		return nil
	case interviewturn.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case interviewturn.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case interviewturn.FieldIsFollowup:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsFollowup(v)
		return nil
	case interviewturn.FieldParentTurnID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTurnID(v)
		return nil
	case interviewturn.FieldQuestionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionNumber(v)
		return nil
	case interviewturn.FieldTimeSpentSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentSecs(v)
		return nil
	}
	return fmt.Errorf("unknown InterviewTurn field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InterviewTurnMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, interviewturn.FieldSequence)
	}
	if m.addturn_index != nil {
		fields = append(fields, interviewturn.FieldTurnIndex)
	}
	if m.addscore != nil {
		fields = append(fields, interviewturn.FieldScore)
	}
	if m.addquestion_number != nil {
		fields = append(fields, interviewturn.FieldQuestionNumber)
	}
	if m.addtime_spent_secs != nil {
		fields = append(fields, interviewturn.FieldTimeSpentSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InterviewTurnMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case interviewturn.FieldSequence:
		return m.AddedSequence()
	case interviewturn.FieldTurnIndex:
		return m.AddedTurnIndex()
	case interviewturn.FieldScore:
		return m.AddedScore()
	case interviewturn.FieldQuestionNumber:
		return m.AddedQuestionNumber()
	case interviewturn.FieldTimeSpentSecs:
		return m.AddedTimeSpentSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InterviewTurnMutation) AddField(name string, value ent.Value) error {
	switch name {
	case interviewturn.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case interviewturn.FieldTurnIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurnIndex(v)
		return nil
	case interviewturn.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case interviewturn.FieldQuestionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionNumber(v)
		return nil
	case interviewturn.FieldTimeSpentSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentSecs(v)
		return nil
	}
	return fmt.Errorf("unknown InterviewTurn numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InterviewTurnMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InterviewTurnMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InterviewTurnMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InterviewTurn nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InterviewTurnMutation) ResetField(name string) error {
	switch name {
	case interviewturn.FieldSequence:
		m.ResetSequence()
		return nil
	case interviewturn.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case interviewturn.FieldTurnID:
		m.ResetTurnID()
		return nil
	case interviewturn.FieldSessionID:
		m.ResetSessionID()
		return nil
	case interviewturn.FieldTurnIndex:
		m.ResetTurnIndex()
		return nil
	case interviewturn.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case interviewturn.FieldQuestionSnapshot:
		m.ResetQuestionSnapshot()
		return nil
	case interviewturn.FieldTranscript:
		m.ResetTranscript()
		return nil
	case interviewturn.FieldCode:
		m.ResetCode()
		return nil
	case interviewturn.FieldScore:
		m.ResetScore()
		return nil
	case interviewturn.FieldIsFollowup:
		m.ResetIsFollowup()
		return nil
	case interviewturn.FieldParentTurnID:
		m.ResetParentTurnID()
		return nil
	case interviewturn.FieldQuestionNumber:
		m.ResetQuestionNumber()
		return nil
	case interviewturn.FieldTimeSpentSecs:
		m.ResetTimeSpentSecs()
		return nil
	}
	return fmt.Errorf("unknown InterviewTurn field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InterviewTurnMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InterviewTurnMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InterviewTurnMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InterviewTurnMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InterviewTurnMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InterviewTurnMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InterviewTurnMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown InterviewTurn unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InterviewTurnMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown InterviewTurn edge %s", name)
}

// JobSpecMutation represents an operation that mutates the JobSpec nodes in the graph.
type JobSpecMutation struct {
	config
	op            Op
	typ           string
	id            *string
	jd_hash       *string
	title         *string
	raw_text      *string
	role_profile  **schema.RoleProfileData
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*JobSpec, error)
	predicates    []predicate.JobSpec
}

var _ ent.Mutation = (*JobSpecMutation)(nil)

// jobspecOption allows management of the mutation configuration using functional options.
type jobspecOption func(*JobSpecMutation)

// newJobSpecMutation creates new mutation for the JobSpec entity.
func newJobSpecMutation(c config, op Op, opts ...jobspecOption) *JobSpecMutation {
	m := &JobSpecMutation{
		config:        c,
		op:            op,
		typ:           TypeJobSpec,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobSpecID sets the ID field of the mutation.
func withJobSpecID(id string) jobspecOption {
	return func(m *JobSpecMutation) {
		var (
			err   error
			once  sync.Once
			value *JobSpec
		)
		m.oldValue = func(ctx context.Context) (*JobSpec, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobSpec.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobSpec sets the old JobSpec of the mutation.
func withJobSpec(node *JobSpec) jobspecOption {
	return func(m *JobSpecMutation) {
		m.oldValue = func(context.Context) (*JobSpec, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobSpecMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobSpecMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobSpec entities.
func (m *JobSpecMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobSpecMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobSpecMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobSpec.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJdHash sets the "jd_hash" field.
func (m *JobSpecMutation) SetJdHash(s string) {
	m.jd_hash = &s
}

// JdHash returns the value of the "jd_hash" field in the mutation.
func (m *JobSpecMutation) JdHash() (r string, exists bool) {
	v := m.jd_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldJdHash returns the old "jd_hash" field's value of the JobSpec entity.
// If the JobSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobSpecMutation) OldJdHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJdHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJdHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJdHash: %w", err)
	}
	return oldValue.JdHash, nil
}

// ResetJdHash resets all changes to the "jd_hash" field.
func (m *JobSpecMutation) ResetJdHash() {
	m.jd_hash = nil
}

// SetTitle sets the "title" field.
func (m *JobSpecMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *JobSpecMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the JobSpec entity.
// If the JobSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobSpecMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *JobSpecMutation) ResetTitle() {
	m.title = nil
}

// SetRawText sets the "raw_text" field.
func (m *JobSpecMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *JobSpecMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the JobSpec entity.
// If the JobSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobSpecMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *JobSpecMutation) ResetRawText() {
	m.raw_text = nil
}

// SetRoleProfile sets the "role_profile" field.
func (m *JobSpecMutation) SetRoleProfile(spd *schema.RoleProfileData) {
	m.role_profile = &spd
}

// RoleProfile returns the value of the "role_profile" field in the mutation.
func (m *JobSpecMutation) RoleProfile() (r *schema.RoleProfileData, exists bool) {
	v := m.role_profile
	if v == nil {
		return
	}
	return *v, true
}

// OldRoleProfile returns the old "role_profile" field's value of the JobSpec entity.
// If the JobSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobSpecMutation) OldRoleProfile(ctx context.Context) (v *schema.RoleProfileData, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoleProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoleProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoleProfile: %w", err)
	}
	return oldValue.RoleProfile, nil
}

// ClearRoleProfile clears the value of the "role_profile" field.
func (m *JobSpecMutation) ClearRoleProfile() {
	m.role_profile = nil
	m.clearedFields[jobspec.FieldRoleProfile] = struct{}{}
}

// RoleProfileCleared returns if the "role_profile" field was cleared in this mutation.
func (m *JobSpecMutation) RoleProfileCleared() bool {
	_, ok := m.clearedFields[jobspec.FieldRoleProfile]
	return ok
}

// ResetRoleProfile resets all changes to the "role_profile" field.
func (m *JobSpecMutation) ResetRoleProfile() {
	m.role_profile = nil
	delete(m.clearedFields, jobspec.FieldRoleProfile)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobSpecMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobSpecMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JobSpec entity.
// If the JobSpec object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobSpecMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobSpecMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the JobSpecMutation builder.
func (m *JobSpecMutation) Where(ps ...predicate.JobSpec) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobSpecMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobSpecMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobSpec, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobSpecMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobSpecMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobSpec).
func (m *JobSpecMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobSpecMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.jd_hash != nil {
		fields = append(fields, jobspec.FieldJdHash)
	}
	if m.title != nil {
		fields = append(fields, jobspec.FieldTitle)
	}
	if m.raw_text != nil {
		fields = append(fields, jobspec.FieldRawText)
	}
	if m.role_profile != nil {
		fields = append(fields, jobspec.FieldRoleProfile)
	}
	if m.created_at != nil {
		fields = append(fields, jobspec.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobSpecMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobspec.FieldJdHash:
		return m.JdHash()
	case jobspec.FieldTitle:
		return m.Title()
	case jobspec.FieldRawText:
		return m.RawText()
	case jobspec.FieldRoleProfile:
		return m.RoleProfile()
	case jobspec.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobSpecMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobspec.FieldJdHash:
		return m.OldJdHash(ctx)
	case jobspec.FieldTitle:
		return m.OldTitle(ctx)
	case jobspec.FieldRawText:
		return m.OldRawText(ctx)
	case jobspec.FieldRoleProfile:
		return m.OldRoleProfile(ctx)
	case jobspec.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown JobSpec field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobSpecMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobspec.FieldJdHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJdHash(v)
		return nil
	case jobspec.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case jobspec.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case jobspec.FieldRoleProfile:
		v, ok := value.(*schema.RoleProfileData)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoleProfile(v)
		return nil
	case jobspec.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown JobSpec field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobSpecMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobSpecMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobSpecMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown JobSpec numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobSpecMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobspec.FieldRoleProfile) {
		fields = append(fields, jobspec.FieldRoleProfile)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobSpecMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobSpecMutation) ClearField(name string) error {
	switch name {
	case jobspec.FieldRoleProfile:
		m.ClearRoleProfile()
		return nil
	}
	return fmt.Errorf("unknown JobSpec nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobSpecMutation) ResetField(name string) error {
	switch name {
	case jobspec.FieldJdHash:
		m.ResetJdHash()
		return nil
	case jobspec.FieldTitle:
		m.ResetTitle()
		return nil
	case jobspec.FieldRawText:
		m.ResetRawText()
		return nil
	case jobspec.FieldRoleProfile:
		m.ResetRoleProfile()
		return nil
	case jobspec.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown JobSpec field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobSpecMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobSpecMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobSpecMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobSpecMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobSpecMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobSpecMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobSpecMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown JobSpec unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobSpecMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown JobSpec edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	question_type *question.QuestionType
	text          *string
	topics        *[]string
	appendtopics  []string
	difficulty    *string
	solution_text *string
	source        *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Question, error)
	predicates    []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id string) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Question entities.
func (m *QuestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQuestionType sets the "question_type" field.
func (m *QuestionMutation) SetQuestionType(qt question.QuestionType) {
	m.question_type = &qt
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *QuestionMutation) QuestionType() (r question.QuestionType, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionType(ctx context.Context) (v question.QuestionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *QuestionMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetText sets the "text" field.
func (m *QuestionMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *QuestionMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *QuestionMutation) ResetText() {
	m.text = nil
}

// SetTopics sets the "topics" field.
func (m *QuestionMutation) SetTopics(s []string) {
	m.topics = &s
	m.appendtopics = nil
}

// Topics returns the value of the "topics" field in the mutation.
func (m *QuestionMutation) Topics() (r []string, exists bool) {
	v := m.topics
	if v == nil {
		return
	}
	return *v, true
}

// OldTopics returns the old "topics" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopics: %w", err)
	}
	return oldValue.Topics, nil
}

// AppendTopics adds s to the "topics" field.
func (m *QuestionMutation) AppendTopics(s []string) {
	m.appendtopics = append(m.appendtopics, s...)
}

// AppendedTopics returns the list of values that were appended to the "topics" field in this mutation.
func (m *QuestionMutation) AppendedTopics() ([]string, bool) {
	if len(m.appendtopics) == 0 {
		return nil, false
	}
	return m.appendtopics, true
}

// ClearTopics clears the value of the "topics" field.
func (m *QuestionMutation) ClearTopics() {
	m.topics = nil
	m.appendtopics = nil
	m.clearedFields[question.FieldTopics] = struct{}{}
}

// TopicsCleared returns if the "topics" field was cleared in this mutation.
func (m *QuestionMutation) TopicsCleared() bool {
	_, ok := m.clearedFields[question.FieldTopics]
	return ok
}

// ResetTopics resets all changes to the "topics" field.
func (m *QuestionMutation) ResetTopics() {
	m.topics = nil
	m.appendtopics = nil
	delete(m.clearedFields, question.FieldTopics)
}

// SetDifficulty sets the "difficulty" field.
func (m *QuestionMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *QuestionMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *QuestionMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetSolutionText sets the "solution_text" field.
func (m *QuestionMutation) SetSolutionText(s string) {
	m.solution_text = &s
}

// SolutionText returns the value of the "solution_text" field in the mutation.
func (m *QuestionMutation) SolutionText() (r string, exists bool) {
	v := m.solution_text
	if v == nil {
		return
	}
	return *v, true
}

// OldSolutionText returns the old "solution_text" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSolutionText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolutionText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolutionText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolutionText: %w", err)
	}
	return oldValue.SolutionText, nil
}

// ResetSolutionText resets all changes to the "solution_text" field.
func (m *QuestionMutation) ResetSolutionText() {
	m.solution_text = nil
}

// SetSource sets the "source" field.
func (m *QuestionMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *QuestionMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *QuestionMutation) ResetSource() {
	m.source = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.question_type != nil {
		fields = append(fields, question.FieldQuestionType)
	}
	if m.text != nil {
		fields = append(fields, question.FieldText)
	}
	if m.topics != nil {
		fields = append(fields, question.FieldTopics)
	}
	if m.difficulty != nil {
		fields = append(fields, question.FieldDifficulty)
	}
	if m.solution_text != nil {
		fields = append(fields, question.FieldSolutionText)
	}
	if m.source != nil {
		fields = append(fields, question.FieldSource)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldQuestionType:
		return m.QuestionType()
	case question.FieldText:
		return m.Text()
	case question.FieldTopics:
		return m.Topics()
	case question.FieldDifficulty:
		return m.Difficulty()
	case question.FieldSolutionText:
		return m.SolutionText()
	case question.FieldSource:
		return m.Source()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case question.FieldText:
		return m.OldText(ctx)
	case question.FieldTopics:
		return m.OldTopics(ctx)
	case question.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case question.FieldSolutionText:
		return m.OldSolutionText(ctx)
	case question.FieldSource:
		return m.OldSource(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldQuestionType:
		v, ok := value.(question.QuestionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case question.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case question.FieldTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopics(v)
		return nil
	case question.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case question.FieldSolutionText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolutionText(v)
		return nil
	case question.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldTopics) {
		fields = append(fields, question.FieldTopics)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldTopics:
		m.ClearTopics()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case question.FieldText:
		m.ResetText()
		return nil
	case question.FieldTopics:
		m.ResetTopics()
		return nil
	case question.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case question.FieldSolutionText:
		m.ResetSolutionText()
		return nil
	case question.FieldSource:
		m.ResetSource()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Question edge %s", name)
}

// QuestionHistoryMutation represents an operation that mutates the QuestionHistory nodes in the graph.
type QuestionHistoryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	jd_hash       *string
	question_id   *string
	session_id    *string
	last_asked_at *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*QuestionHistory, error)
	predicates    []predicate.QuestionHistory
}

var _ ent.Mutation = (*QuestionHistoryMutation)(nil)

// questionhistoryOption allows management of the mutation configuration using functional options.
type questionhistoryOption func(*QuestionHistoryMutation)

// newQuestionHistoryMutation creates new mutation for the QuestionHistory entity.
func newQuestionHistoryMutation(c config, op Op, opts ...questionhistoryOption) *QuestionHistoryMutation {
	m := &QuestionHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionHistoryID sets the ID field of the mutation.
func withQuestionHistoryID(id int) questionhistoryOption {
	return func(m *QuestionHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestionHistory
		)
		m.oldValue = func(ctx context.Context) (*QuestionHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestionHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionHistory sets the old QuestionHistory of the mutation.
func withQuestionHistory(node *QuestionHistory) questionhistoryOption {
	return func(m *QuestionHistoryMutation) {
		m.oldValue = func(context.Context) (*QuestionHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionHistoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionHistoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestionHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *QuestionHistoryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *QuestionHistoryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the QuestionHistory entity.
// If the QuestionHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionHistoryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *QuestionHistoryMutation) ResetUserID() {
	m.user_id = nil
}

// SetJdHash sets the "jd_hash" field.
func (m *QuestionHistoryMutation) SetJdHash(s string) {
	m.jd_hash = &s
}

// JdHash returns the value of the "jd_hash" field in the mutation.
func (m *QuestionHistoryMutation) JdHash() (r string, exists bool) {
	v := m.jd_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldJdHash returns the old "jd_hash" field's value of the QuestionHistory entity.
// If the QuestionHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionHistoryMutation) OldJdHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJdHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJdHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJdHash: %w", err)
	}
	return oldValue.JdHash, nil
}

// ResetJdHash resets all changes to the "jd_hash" field.
func (m *QuestionHistoryMutation) ResetJdHash() {
	m.jd_hash = nil
}

// SetQuestionID sets the "question_id" field.
func (m *QuestionHistoryMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *QuestionHistoryMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the QuestionHistory entity.
// If the QuestionHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionHistoryMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *QuestionHistoryMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *QuestionHistoryMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *QuestionHistoryMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the QuestionHistory entity.
// If the QuestionHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionHistoryMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *QuestionHistoryMutation) ResetSessionID() {
	m.session_id = nil
}

// SetLastAskedAt sets the "last_asked_at" field.
func (m *QuestionHistoryMutation) SetLastAskedAt(t time.Time) {
	m.last_asked_at = &t
}

// LastAskedAt returns the value of the "last_asked_at" field in the mutation.
func (m *QuestionHistoryMutation) LastAskedAt() (r time.Time, exists bool) {
	v := m.last_asked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAskedAt returns the old "last_asked_at" field's value of the QuestionHistory entity.
// If the QuestionHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionHistoryMutation) OldLastAskedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAskedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAskedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAskedAt: %w", err)
	}
	return oldValue.LastAskedAt, nil
}

// ResetLastAskedAt resets all changes to the "last_asked_at" field.
func (m *QuestionHistoryMutation) ResetLastAskedAt() {
	m.last_asked_at = nil
}

// Where appends a list predicates to the QuestionHistoryMutation builder.
func (m *QuestionHistoryMutation) Where(ps ...predicate.QuestionHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestionHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestionHistory).
func (m *QuestionHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionHistoryMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, questionhistory.FieldUserID)
	}
	if m.jd_hash != nil {
		fields = append(fields, questionhistory.FieldJdHash)
	}
	if m.question_id != nil {
		fields = append(fields, questionhistory.FieldQuestionID)
	}
	if m.session_id != nil {
		fields = append(fields, questionhistory.FieldSessionID)
	}
	if m.last_asked_at != nil {
		fields = append(fields, questionhistory.FieldLastAskedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionhistory.FieldUserID:
		return m.UserID()
	case questionhistory.FieldJdHash:
		return m.JdHash()
	case questionhistory.FieldQuestionID:
		return m.QuestionID()
	case questionhistory.FieldSessionID:
		return m.SessionID()
	case questionhistory.FieldLastAskedAt:
		return m.LastAskedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionhistory.FieldUserID:
		return m.OldUserID(ctx)
	case questionhistory.FieldJdHash:
		return m.OldJdHash(ctx)
	case questionhistory.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case questionhistory.FieldSessionID:
		return m.OldSessionID(ctx)
	case questionhistory.FieldLastAskedAt:
		return m.OldLastAskedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuestionHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionhistory.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case questionhistory.FieldJdHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJdHash(v)
		return nil
	case questionhistory.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case questionhistory.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case questionhistory.FieldLastAskedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAskedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionHistoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionHistoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown QuestionHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionHistoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionHistoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuestionHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionHistoryMutation) ResetField(name string) error {
	switch name {
	case questionhistory.FieldUserID:
		m.ResetUserID()
		return nil
	case questionhistory.FieldJdHash:
		m.ResetJdHash()
		return nil
	case questionhistory.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case questionhistory.FieldSessionID:
		m.ResetSessionID()
		return nil
	case questionhistory.FieldLastAskedAt:
		m.ResetLastAskedAt()
		return nil
	}
	return fmt.Errorf("unknown QuestionHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionHistoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionHistoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionHistoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuestionHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionHistoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuestionHistory edge %s", name)
}

// ReadinessSnapshotMutation represents an operation that mutates the ReadinessSnapshot nodes in the graph.
type ReadinessSnapshotMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	user_id            *string
	job_spec_id        *string
	readiness_score    *float64
	addreadiness_score *float64
	cv_score           *float64
	addcv_score        *float64
	interview_score    *float64
	addinterview_score *float64
	practice_score     *float64
	addpractice_score  *float64
	breakdown          **schema.ReadinessBreakdownData
	timestamp          *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ReadinessSnapshot, error)
	predicates         []predicate.ReadinessSnapshot
}

var _ ent.Mutation = (*ReadinessSnapshotMutation)(nil)

// readinesssnapshotOption allows management of the mutation configuration using functional options.
type readinesssnapshotOption func(*ReadinessSnapshotMutation)

// newReadinessSnapshotMutation creates new mutation for the ReadinessSnapshot entity.
func newReadinessSnapshotMutation(c config, op Op, opts ...readinesssnapshotOption) *ReadinessSnapshotMutation {
	m := &ReadinessSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeReadinessSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReadinessSnapshotID sets the ID field of the mutation.
func withReadinessSnapshotID(id int) readinesssnapshotOption {
	return func(m *ReadinessSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *ReadinessSnapshot
		)
		m.oldValue = func(ctx context.Context) (*ReadinessSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReadinessSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReadinessSnapshot sets the old ReadinessSnapshot of the mutation.
func withReadinessSnapshot(node *ReadinessSnapshot) readinesssnapshotOption {
	return func(m *ReadinessSnapshotMutation) {
		m.oldValue = func(context.Context) (*ReadinessSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReadinessSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReadinessSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReadinessSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReadinessSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReadinessSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ReadinessSnapshotMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ReadinessSnapshotMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ReadinessSnapshot entity.
// If the ReadinessSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadinessSnapshotMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ReadinessSnapshotMutation) ResetUserID() {
	m.user_id = nil
}

// SetJobSpecID sets the "job_spec_id" field.
func (m *ReadinessSnapshotMutation) SetJobSpecID(s string) {
	m.job_spec_id = &s
}

// JobSpecID returns the value of the "job_spec_id" field in the mutation.
func (m *ReadinessSnapshotMutation) JobSpecID() (r string, exists bool) {
	v := m.job_spec_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobSpecID returns the old "job_spec_id" field's value of the ReadinessSnapshot entity.
// If the ReadinessSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadinessSnapshotMutation) OldJobSpecID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobSpecID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobSpecID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobSpecID: %w", err)
	}
	return oldValue.JobSpecID, nil
}

// ResetJobSpecID resets all changes to the "job_spec_id" field.
func (m *ReadinessSnapshotMutation) ResetJobSpecID() {
	m.job_spec_id = nil
}

// SetReadinessScore sets the "readiness_score" field.
func (m *ReadinessSnapshotMutation) SetReadinessScore(f float64) {
	m.readiness_score = &f
	m.addreadiness_score = nil
}

// ReadinessScore returns the value of the "readiness_score" field in the mutation.
func (m *ReadinessSnapshotMutation) ReadinessScore() (r float64, exists bool) {
	v := m.readiness_score
	if v == nil {
		return
	}
	return *v, true
}

// OldReadinessScore returns the old "readiness_score" field's value of the ReadinessSnapshot entity.
// If the ReadinessSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadinessSnapshotMutation) OldReadinessScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadinessScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadinessScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadinessScore: %w", err)
	}
	return oldValue.ReadinessScore, nil
}

// AddReadinessScore adds f to the "readiness_score" field.
func (m *ReadinessSnapshotMutation) AddReadinessScore(f float64) {
	if m.addreadiness_score != nil {
		*m.addreadiness_score += f
	} else {
		m.addreadiness_score = &f
	}
}

// AddedReadinessScore returns the value that was added to the "readiness_score" field in this mutation.
func (m *ReadinessSnapshotMutation) AddedReadinessScore() (r float64, exists bool) {
	v := m.addreadiness_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetReadinessScore resets all changes to the "readiness_score" field.
func (m *ReadinessSnapshotMutation) ResetReadinessScore() {
	m.readiness_score = nil
	m.addreadiness_score = nil
}

// SetCvScore sets the "cv_score" field.
func (m *ReadinessSnapshotMutation) SetCvScore(f float64) {
	m.cv_score = &f
	m.addcv_score = nil
}

// CvScore returns the value of the "cv_score" field in the mutation.
func (m *ReadinessSnapshotMutation) CvScore() (r float64, exists bool) {
	v := m.cv_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCvScore returns the old "cv_score" field's value of the ReadinessSnapshot entity.
// If the ReadinessSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadinessSnapshotMutation) OldCvScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCvScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCvScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCvScore: %w", err)
	}
	return oldValue.CvScore, nil
}

// AddCvScore adds f to the "cv_score" field.
func (m *ReadinessSnapshotMutation) AddCvScore(f float64) {
	if m.addcv_score != nil {
		*m.addcv_score += f
	} else {
		m.addcv_score = &f
	}
}

// AddedCvScore returns the value that was added to the "cv_score" field in this mutation.
func (m *ReadinessSnapshotMutation) AddedCvScore() (r float64, exists bool) {
	v := m.addcv_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCvScore resets all changes to the "cv_score" field.
func (m *ReadinessSnapshotMutation) ResetCvScore() {
	m.cv_score = nil
	m.addcv_score = nil
}

// SetInterviewScore sets the "interview_score" field.
func (m *ReadinessSnapshotMutation) SetInterviewScore(f float64) {
	m.interview_score = &f
	m.addinterview_score = nil
}

// InterviewScore returns the value of the "interview_score" field in the mutation.
func (m *ReadinessSnapshotMutation) InterviewScore() (r float64, exists bool) {
	v := m.interview_score
	if v == nil {
		return
	}
	return *v, true
}

// OldInterviewScore returns the old "interview_score" field's value of the ReadinessSnapshot entity.
// If the ReadinessSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadinessSnapshotMutation) OldInterviewScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterviewScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterviewScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterviewScore: %w", err)
	}
	return oldValue.InterviewScore, nil
}

// AddInterviewScore adds f to the "interview_score" field.
func (m *ReadinessSnapshotMutation) AddInterviewScore(f float64) {
	if m.addinterview_score != nil {
		*m.addinterview_score += f
	} else {
		m.addinterview_score = &f
	}
}

// AddedInterviewScore returns the value that was added to the "interview_score" field in this mutation.
func (m *ReadinessSnapshotMutation) AddedInterviewScore() (r float64, exists bool) {
	v := m.addinterview_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetInterviewScore resets all changes to the "interview_score" field.
func (m *ReadinessSnapshotMutation) ResetInterviewScore() {
	m.interview_score = nil
	m.addinterview_score = nil
}

// SetPracticeScore sets the "practice_score" field.
func (m *ReadinessSnapshotMutation) SetPracticeScore(f float64) {
	m.practice_score = &f
	m.addpractice_score = nil
}

// PracticeScore returns the value of the "practice_score" field in the mutation.
func (m *ReadinessSnapshotMutation) PracticeScore() (r float64, exists bool) {
	v := m.practice_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeScore returns the old "practice_score" field's value of the ReadinessSnapshot entity.
// If the ReadinessSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadinessSnapshotMutation) OldPracticeScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeScore: %w", err)
	}
	return oldValue.PracticeScore, nil
}

// AddPracticeScore adds f to the "practice_score" field.
func (m *ReadinessSnapshotMutation) AddPracticeScore(f float64) {
	if m.addpractice_score != nil {
		*m.addpractice_score += f
	} else {
		m.addpractice_score = &f
	}
}

// AddedPracticeScore returns the value that was added to the "practice_score" field in this mutation.
func (m *ReadinessSnapshotMutation) AddedPracticeScore() (r float64, exists bool) {
	v := m.addpractice_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPracticeScore resets all changes to the "practice_score" field.
func (m *ReadinessSnapshotMutation) ResetPracticeScore() {
	m.practice_score = nil
	m.addpractice_score = nil
}

// SetBreakdown sets the "breakdown" field.
func (m *ReadinessSnapshotMutation) SetBreakdown(sbd *schema.ReadinessBreakdownData) {
	m.breakdown = &sbd
}

// Breakdown returns the value of the "breakdown" field in the mutation.
func (m *ReadinessSnapshotMutation) Breakdown() (r *schema.ReadinessBreakdownData, exists bool) {
	v := m.breakdown
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakdown returns the old "breakdown" field's value of the ReadinessSnapshot entity.
// If the ReadinessSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadinessSnapshotMutation) OldBreakdown(ctx context.Context) (v *schema.ReadinessBreakdownData, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakdown: %w", err)
	}
	return oldValue.Breakdown, nil
}

// ClearBreakdown clears the value of the "breakdown" field.
func (m *ReadinessSnapshotMutation) ClearBreakdown() {
	m.breakdown = nil
	m.clearedFields[readinesssnapshot.FieldBreakdown] = struct{}{}
}

// BreakdownCleared returns if the "breakdown" field was cleared in this mutation.
func (m *ReadinessSnapshotMutation) BreakdownCleared() bool {
	_, ok := m.clearedFields[readinesssnapshot.FieldBreakdown]
	return ok
}

// ResetBreakdown resets all changes to the "breakdown" field.
func (m *ReadinessSnapshotMutation) ResetBreakdown() {
	m.breakdown = nil
	delete(m.clearedFields, readinesssnapshot.FieldBreakdown)
}

// SetTimestamp sets the "timestamp" field.
func (m *ReadinessSnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ReadinessSnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ReadinessSnapshot entity.
// If the ReadinessSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadinessSnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ReadinessSnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the ReadinessSnapshotMutation builder.
func (m *ReadinessSnapshotMutation) Where(ps ...predicate.ReadinessSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReadinessSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReadinessSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReadinessSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReadinessSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReadinessSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReadinessSnapshot).
func (m *ReadinessSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReadinessSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, readinesssnapshot.FieldUserID)
	}
	if m.job_spec_id != nil {
		fields = append(fields, readinesssnapshot.FieldJobSpecID)
	}
	if m.readiness_score != nil {
		fields = append(fields, readinesssnapshot.FieldReadinessScore)
	}
	if m.cv_score != nil {
		fields = append(fields, readinesssnapshot.FieldCvScore)
	}
	if m.interview_score != nil {
		fields = append(fields, readinesssnapshot.FieldInterviewScore)
	}
	if m.practice_score != nil {
		fields = append(fields, readinesssnapshot.FieldPracticeScore)
	}
	if m.breakdown != nil {
		fields = append(fields, readinesssnapshot.FieldBreakdown)
	}
	if m.timestamp != nil {
		fields = append(fields, readinesssnapshot.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReadinessSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case readinesssnapshot.FieldUserID:
		return m.UserID()
	case readinesssnapshot.FieldJobSpecID:
		return m.JobSpecID()
	case readinesssnapshot.FieldReadinessScore:
		return m.ReadinessScore()
	case readinesssnapshot.FieldCvScore:
		return m.CvScore()
	case readinesssnapshot.FieldInterviewScore:
		return m.InterviewScore()
	case readinesssnapshot.FieldPracticeScore:
		return m.PracticeScore()
	case readinesssnapshot.FieldBreakdown:
		return m.Breakdown()
	case readinesssnapshot.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReadinessSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case readinesssnapshot.FieldUserID:
		return m.OldUserID(ctx)
	case readinesssnapshot.FieldJobSpecID:
		return m.OldJobSpecID(ctx)
	case readinesssnapshot.FieldReadinessScore:
		return m.OldReadinessScore(ctx)
	case readinesssnapshot.FieldCvScore:
		return m.OldCvScore(ctx)
	case readinesssnapshot.FieldInterviewScore:
		return m.OldInterviewScore(ctx)
	case readinesssnapshot.FieldPracticeScore:
		return m.OldPracticeScore(ctx)
	case readinesssnapshot.FieldBreakdown:
		return m.OldBreakdown(ctx)
	case readinesssnapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown ReadinessSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReadinessSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case readinesssnapshot.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case readinesssnapshot.FieldJobSpecID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobSpecID(v)
		return nil
	case readinesssnapshot.FieldReadinessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadinessScore(v)
		return nil
	case readinesssnapshot.FieldCvScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCvScore(v)
		return nil
	case readinesssnapshot.FieldInterviewScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterviewScore(v)
		return nil
	case readinesssnapshot.FieldPracticeScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeScore(v)
		return nil
	case readinesssnapshot.FieldBreakdown:
		v, ok := value.(*schema.ReadinessBreakdownData)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakdown(v)
		return nil
	case readinesssnapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown ReadinessSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReadinessSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addreadiness_score != nil {
		fields = append(fields, readinesssnapshot.FieldReadinessScore)
	}
	if m.addcv_score != nil {
		fields = append(fields, readinesssnapshot.FieldCvScore)
	}
	if m.addinterview_score != nil {
		fields = append(fields, readinesssnapshot.FieldInterviewScore)
	}
	if m.addpractice_score != nil {
		fields = append(fields, readinesssnapshot.FieldPracticeScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReadinessSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case readinesssnapshot.FieldReadinessScore:
		return m.AddedReadinessScore()
	case readinesssnapshot.FieldCvScore:
		return m.AddedCvScore()
	case readinesssnapshot.FieldInterviewScore:
		return m.AddedInterviewScore()
	case readinesssnapshot.FieldPracticeScore:
		return m.AddedPracticeScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReadinessSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case readinesssnapshot.FieldReadinessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReadinessScore(v)
		return nil
	case readinesssnapshot.FieldCvScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCvScore(v)
		return nil
	case readinesssnapshot.FieldInterviewScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInterviewScore(v)
		return nil
	case readinesssnapshot.FieldPracticeScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPracticeScore(v)
		return nil
	}
	return fmt.Errorf("unknown ReadinessSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReadinessSnapshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(readinesssnapshot.FieldBreakdown) {
		fields = append(fields, readinesssnapshot.FieldBreakdown)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReadinessSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReadinessSnapshotMutation) ClearField(name string) error {
	switch name {
	case readinesssnapshot.FieldBreakdown:
		m.ClearBreakdown()
		return nil
	}
	return fmt.Errorf("unknown ReadinessSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReadinessSnapshotMutation) ResetField(name string) error {
	switch name {
	case readinesssnapshot.FieldUserID:
		m.ResetUserID()
		return nil
	case readinesssnapshot.FieldJobSpecID:
		m.ResetJobSpecID()
		return nil
	case readinesssnapshot.FieldReadinessScore:
		m.ResetReadinessScore()
		return nil
	case readinesssnapshot.FieldCvScore:
		m.ResetCvScore()
		return nil
	case readinesssnapshot.FieldInterviewScore:
		m.ResetInterviewScore()
		return nil
	case readinesssnapshot.FieldPracticeScore:
		m.ResetPracticeScore()
		return nil
	case readinesssnapshot.FieldBreakdown:
		m.ResetBreakdown()
		return nil
	case readinesssnapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown ReadinessSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReadinessSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReadinessSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReadinessSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReadinessSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReadinessSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReadinessSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReadinessSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReadinessSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReadinessSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReadinessSnapshot edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *string
	email         *string
	name          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldName:
		return m.Name()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
