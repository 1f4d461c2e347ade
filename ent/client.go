// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/yonatank/prepair/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/yonatank/prepair/ent/cvanalysis"
	"github.com/yonatank/prepair/ent/interviewsession"
	"github.com/yonatank/prepair/ent/interviewturn"
	"github.com/yonatank/prepair/ent/jobspec"
	"github.com/yonatank/prepair/ent/llmrequestevent"
	"github.com/yonatank/prepair/ent/question"
	"github.com/yonatank/prepair/ent/questionhistory"
	"github.com/yonatank/prepair/ent/readinesssnapshot"
	"github.com/yonatank/prepair/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CVAnalysis is the client for interacting with the CVAnalysis builders.
	CVAnalysis *CVAnalysisClient
	// InterviewSession is the client for interacting with the InterviewSession builders.
	InterviewSession *InterviewSessionClient
	// InterviewTurn is the client for interacting with the InterviewTurn builders.
	InterviewTurn *InterviewTurnClient
	// JobSpec is the client for interacting with the JobSpec builders.
	JobSpec *JobSpecClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
	// QuestionHistory is the client for interacting with the QuestionHistory builders.
	QuestionHistory *QuestionHistoryClient
	// ReadinessSnapshot is the client for interacting with the ReadinessSnapshot builders.
	ReadinessSnapshot *ReadinessSnapshotClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CVAnalysis = NewCVAnalysisClient(c.config)
	c.InterviewSession = NewInterviewSessionClient(c.config)
	c.InterviewTurn = NewInterviewTurnClient(c.config)
	c.JobSpec = NewJobSpecClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.Question = NewQuestionClient(c.config)
	c.QuestionHistory = NewQuestionHistoryClient(c.config)
	c.ReadinessSnapshot = NewReadinessSnapshotClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		CVAnalysis:        NewCVAnalysisClient(cfg),
		InterviewSession:  NewInterviewSessionClient(cfg),
		InterviewTurn:     NewInterviewTurnClient(cfg),
		JobSpec:           NewJobSpecClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		Question:          NewQuestionClient(cfg),
		QuestionHistory:   NewQuestionHistoryClient(cfg),
		ReadinessSnapshot: NewReadinessSnapshotClient(cfg),
		User:              NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		CVAnalysis:        NewCVAnalysisClient(cfg),
		InterviewSession:  NewInterviewSessionClient(cfg),
		InterviewTurn:     NewInterviewTurnClient(cfg),
		JobSpec:           NewJobSpecClient(cfg),
		LLMRequestEvent:   NewLLMRequestEventClient(cfg),
		Question:          NewQuestionClient(cfg),
		QuestionHistory:   NewQuestionHistoryClient(cfg),
		ReadinessSnapshot: NewReadinessSnapshotClient(cfg),
		User:              NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CVAnalysis.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.CVAnalysis, c.InterviewSession, c.InterviewTurn, c.JobSpec, c.LLMRequestEvent,
		c.Question, c.QuestionHistory, c.ReadinessSnapshot, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CVAnalysis, c.InterviewSession, c.InterviewTurn, c.JobSpec, c.LLMRequestEvent,
		c.Question, c.QuestionHistory, c.ReadinessSnapshot, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CVAnalysisMutation:
		return c.CVAnalysis.mutate(ctx, m)
	case *InterviewSessionMutation:
		return c.InterviewSession.mutate(ctx, m)
	case *InterviewTurnMutation:
		return c.InterviewTurn.mutate(ctx, m)
	case *JobSpecMutation:
		return c.JobSpec.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	case *QuestionHistoryMutation:
		return c.QuestionHistory.mutate(ctx, m)
	case *ReadinessSnapshotMutation:
		return c.ReadinessSnapshot.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CVAnalysisClient is a client for the CVAnalysis schema.
type CVAnalysisClient struct {
	config
}

// NewCVAnalysisClient returns a client for the CVAnalysis from the given config.
func NewCVAnalysisClient(c config) *CVAnalysisClient {
	return &CVAnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cvanalysis.Hooks(f(g(h())))`.
func (c *CVAnalysisClient) Use(hooks ...Hook) {
	c.hooks.CVAnalysis = append(c.hooks.CVAnalysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cvanalysis.Intercept(f(g(h())))`.
func (c *CVAnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.CVAnalysis = append(c.inters.CVAnalysis, interceptors...)
}

// Create returns a builder for creating a CVAnalysis entity.
func (c *CVAnalysisClient) Create() *CVAnalysisCreate {
	mutation := newCVAnalysisMutation(c.config, OpCreate)
	return &CVAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CVAnalysis entities.
func (c *CVAnalysisClient) CreateBulk(builders ...*CVAnalysisCreate) *CVAnalysisCreateBulk {
	return &CVAnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CVAnalysisClient) MapCreateBulk(slice any, setFunc func(*CVAnalysisCreate, int)) *CVAnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CVAnalysisCreateBulk{err: fmt.Errorf("calling to CVAnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CVAnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CVAnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CVAnalysis.
func (c *CVAnalysisClient) Update() *CVAnalysisUpdate {
	mutation := newCVAnalysisMutation(c.config, OpUpdate)
	return &CVAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CVAnalysisClient) UpdateOne(_m *CVAnalysis) *CVAnalysisUpdateOne {
	mutation := newCVAnalysisMutation(c.config, OpUpdateOne, withCVAnalysis(_m))
	return &CVAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CVAnalysisClient) UpdateOneID(id string) *CVAnalysisUpdateOne {
	mutation := newCVAnalysisMutation(c.config, OpUpdateOne, withCVAnalysisID(id))
	return &CVAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CVAnalysis.
func (c *CVAnalysisClient) Delete() *CVAnalysisDelete {
	mutation := newCVAnalysisMutation(c.config, OpDelete)
	return &CVAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CVAnalysisClient) DeleteOne(_m *CVAnalysis) *CVAnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CVAnalysisClient) DeleteOneID(id string) *CVAnalysisDeleteOne {
	builder := c.Delete().Where(cvanalysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CVAnalysisDeleteOne{builder}
}

// Query returns a query builder for CVAnalysis.
func (c *CVAnalysisClient) Query() *CVAnalysisQuery {
	return &CVAnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCVAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a CVAnalysis entity by its id.
func (c *CVAnalysisClient) Get(ctx context.Context, id string) (*CVAnalysis, error) {
	return c.Query().Where(cvanalysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CVAnalysisClient) GetX(ctx context.Context, id string) *CVAnalysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CVAnalysisClient) Hooks() []Hook {
	return c.hooks.CVAnalysis
}

// Interceptors returns the client interceptors.
func (c *CVAnalysisClient) Interceptors() []Interceptor {
	return c.inters.CVAnalysis
}

func (c *CVAnalysisClient) mutate(ctx context.Context, m *CVAnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CVAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CVAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CVAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CVAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CVAnalysis mutation op: %q", m.Op())
	}
}

// InterviewSessionClient is a client for the InterviewSession schema.
type InterviewSessionClient struct {
	config
}

// NewInterviewSessionClient returns a client for the InterviewSession from the given config.
func NewInterviewSessionClient(c config) *InterviewSessionClient {
	return &InterviewSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interviewsession.Hooks(f(g(h())))`.
func (c *InterviewSessionClient) Use(hooks ...Hook) {
	c.hooks.InterviewSession = append(c.hooks.InterviewSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interviewsession.Intercept(f(g(h())))`.
func (c *InterviewSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.InterviewSession = append(c.inters.InterviewSession, interceptors...)
}

// Create returns a builder for creating a InterviewSession entity.
func (c *InterviewSessionClient) Create() *InterviewSessionCreate {
	mutation := newInterviewSessionMutation(c.config, OpCreate)
	return &InterviewSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InterviewSession entities.
func (c *InterviewSessionClient) CreateBulk(builders ...*InterviewSessionCreate) *InterviewSessionCreateBulk {
	return &InterviewSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InterviewSessionClient) MapCreateBulk(slice any, setFunc func(*InterviewSessionCreate, int)) *InterviewSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InterviewSessionCreateBulk{err: fmt.Errorf("calling to InterviewSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InterviewSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InterviewSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InterviewSession.
func (c *InterviewSessionClient) Update() *InterviewSessionUpdate {
	mutation := newInterviewSessionMutation(c.config, OpUpdate)
	return &InterviewSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InterviewSessionClient) UpdateOne(_m *InterviewSession) *InterviewSessionUpdateOne {
	mutation := newInterviewSessionMutation(c.config, OpUpdateOne, withInterviewSession(_m))
	return &InterviewSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InterviewSessionClient) UpdateOneID(id string) *InterviewSessionUpdateOne {
	mutation := newInterviewSessionMutation(c.config, OpUpdateOne, withInterviewSessionID(id))
	return &InterviewSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InterviewSession.
func (c *InterviewSessionClient) Delete() *InterviewSessionDelete {
	mutation := newInterviewSessionMutation(c.config, OpDelete)
	return &InterviewSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InterviewSessionClient) DeleteOne(_m *InterviewSession) *InterviewSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InterviewSessionClient) DeleteOneID(id string) *InterviewSessionDeleteOne {
	builder := c.Delete().Where(interviewsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InterviewSessionDeleteOne{builder}
}

// Query returns a query builder for InterviewSession.
func (c *InterviewSessionClient) Query() *InterviewSessionQuery {
	return &InterviewSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInterviewSession},
		inters: c.Interceptors(),
	}
}

// Get returns a InterviewSession entity by its id.
func (c *InterviewSessionClient) Get(ctx context.Context, id string) (*InterviewSession, error) {
	return c.Query().Where(interviewsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InterviewSessionClient) GetX(ctx context.Context, id string) *InterviewSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InterviewSessionClient) Hooks() []Hook {
	return c.hooks.InterviewSession
}

// Interceptors returns the client interceptors.
func (c *InterviewSessionClient) Interceptors() []Interceptor {
	return c.inters.InterviewSession
}

func (c *InterviewSessionClient) mutate(ctx context.Context, m *InterviewSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InterviewSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InterviewSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InterviewSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InterviewSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InterviewSession mutation op: %q", m.Op())
	}
}

// InterviewTurnClient is a client for the InterviewTurn schema.
type InterviewTurnClient struct {
	config
}

// NewInterviewTurnClient returns a client for the InterviewTurn from the given config.
func NewInterviewTurnClient(c config) *InterviewTurnClient {
	return &InterviewTurnClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interviewturn.Hooks(f(g(h())))`.
func (c *InterviewTurnClient) Use(hooks ...Hook) {
	c.hooks.InterviewTurn = append(c.hooks.InterviewTurn, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interviewturn.Intercept(f(g(h())))`.
func (c *InterviewTurnClient) Intercept(interceptors ...Interceptor) {
	c.inters.InterviewTurn = append(c.inters.InterviewTurn, interceptors...)
}

// Create returns a builder for creating a InterviewTurn entity.
func (c *InterviewTurnClient) Create() *InterviewTurnCreate {
	mutation := newInterviewTurnMutation(c.config, OpCreate)
	return &InterviewTurnCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InterviewTurn entities.
func (c *InterviewTurnClient) CreateBulk(builders ...*InterviewTurnCreate) *InterviewTurnCreateBulk {
	return &InterviewTurnCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InterviewTurnClient) MapCreateBulk(slice any, setFunc func(*InterviewTurnCreate, int)) *InterviewTurnCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InterviewTurnCreateBulk{err: fmt.Errorf("calling to InterviewTurnClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InterviewTurnCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InterviewTurnCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InterviewTurn.
func (c *InterviewTurnClient) Update() *InterviewTurnUpdate {
	mutation := newInterviewTurnMutation(c.config, OpUpdate)
	return &InterviewTurnUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InterviewTurnClient) UpdateOne(_m *InterviewTurn) *InterviewTurnUpdateOne {
	mutation := newInterviewTurnMutation(c.config, OpUpdateOne, withInterviewTurn(_m))
	return &InterviewTurnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InterviewTurnClient) UpdateOneID(id int) *InterviewTurnUpdateOne {
	mutation := newInterviewTurnMutation(c.config, OpUpdateOne, withInterviewTurnID(id))
	return &InterviewTurnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InterviewTurn.
func (c *InterviewTurnClient) Delete() *InterviewTurnDelete {
	mutation := newInterviewTurnMutation(c.config, OpDelete)
	return &InterviewTurnDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InterviewTurnClient) DeleteOne(_m *InterviewTurn) *InterviewTurnDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InterviewTurnClient) DeleteOneID(id int) *InterviewTurnDeleteOne {
	builder := c.Delete().Where(interviewturn.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InterviewTurnDeleteOne{builder}
}

// Query returns a query builder for InterviewTurn.
func (c *InterviewTurnClient) Query() *InterviewTurnQuery {
	return &InterviewTurnQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInterviewTurn},
		inters: c.Interceptors(),
	}
}

// Get returns a InterviewTurn entity by its id.
func (c *InterviewTurnClient) Get(ctx context.Context, id int) (*InterviewTurn, error) {
	return c.Query().Where(interviewturn.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InterviewTurnClient) GetX(ctx context.Context, id int) *InterviewTurn {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InterviewTurnClient) Hooks() []Hook {
	return c.hooks.InterviewTurn
}

// Interceptors returns the client interceptors.
func (c *InterviewTurnClient) Interceptors() []Interceptor {
	return c.inters.InterviewTurn
}

func (c *InterviewTurnClient) mutate(ctx context.Context, m *InterviewTurnMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InterviewTurnCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InterviewTurnUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InterviewTurnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InterviewTurnDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InterviewTurn mutation op: %q", m.Op())
	}
}

// JobSpecClient is a client for the JobSpec schema.
type JobSpecClient struct {
	config
}

// NewJobSpecClient returns a client for the JobSpec from the given config.
func NewJobSpecClient(c config) *JobSpecClient {
	return &JobSpecClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobspec.Hooks(f(g(h())))`.
func (c *JobSpecClient) Use(hooks ...Hook) {
	c.hooks.JobSpec = append(c.hooks.JobSpec, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobspec.Intercept(f(g(h())))`.
func (c *JobSpecClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobSpec = append(c.inters.JobSpec, interceptors...)
}

// Create returns a builder for creating a JobSpec entity.
func (c *JobSpecClient) Create() *JobSpecCreate {
	mutation := newJobSpecMutation(c.config, OpCreate)
	return &JobSpecCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobSpec entities.
func (c *JobSpecClient) CreateBulk(builders ...*JobSpecCreate) *JobSpecCreateBulk {
	return &JobSpecCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobSpecClient) MapCreateBulk(slice any, setFunc func(*JobSpecCreate, int)) *JobSpecCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobSpecCreateBulk{err: fmt.Errorf("calling to JobSpecClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobSpecCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobSpecCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobSpec.
func (c *JobSpecClient) Update() *JobSpecUpdate {
	mutation := newJobSpecMutation(c.config, OpUpdate)
	return &JobSpecUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobSpecClient) UpdateOne(_m *JobSpec) *JobSpecUpdateOne {
	mutation := newJobSpecMutation(c.config, OpUpdateOne, withJobSpec(_m))
	return &JobSpecUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobSpecClient) UpdateOneID(id string) *JobSpecUpdateOne {
	mutation := newJobSpecMutation(c.config, OpUpdateOne, withJobSpecID(id))
	return &JobSpecUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobSpec.
func (c *JobSpecClient) Delete() *JobSpecDelete {
	mutation := newJobSpecMutation(c.config, OpDelete)
	return &JobSpecDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobSpecClient) DeleteOne(_m *JobSpec) *JobSpecDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobSpecClient) DeleteOneID(id string) *JobSpecDeleteOne {
	builder := c.Delete().Where(jobspec.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobSpecDeleteOne{builder}
}

// Query returns a query builder for JobSpec.
func (c *JobSpecClient) Query() *JobSpecQuery {
	return &JobSpecQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobSpec},
		inters: c.Interceptors(),
	}
}

// Get returns a JobSpec entity by its id.
func (c *JobSpecClient) Get(ctx context.Context, id string) (*JobSpec, error) {
	return c.Query().Where(jobspec.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobSpecClient) GetX(ctx context.Context, id string) *JobSpec {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JobSpecClient) Hooks() []Hook {
	return c.hooks.JobSpec
}

// Interceptors returns the client interceptors.
func (c *JobSpecClient) Interceptors() []Interceptor {
	return c.inters.JobSpec
}

func (c *JobSpecClient) mutate(ctx context.Context, m *JobSpecMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobSpecCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobSpecUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobSpecUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobSpecDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobSpec mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// QuestionClient is a client for the Question schema.
type QuestionClient struct {
	config
}

// NewQuestionClient returns a client for the Question from the given config.
func NewQuestionClient(c config) *QuestionClient {
	return &QuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `question.Hooks(f(g(h())))`.
func (c *QuestionClient) Use(hooks ...Hook) {
	c.hooks.Question = append(c.hooks.Question, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `question.Intercept(f(g(h())))`.
func (c *QuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Question = append(c.inters.Question, interceptors...)
}

// Create returns a builder for creating a Question entity.
func (c *QuestionClient) Create() *QuestionCreate {
	mutation := newQuestionMutation(c.config, OpCreate)
	return &QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Question entities.
func (c *QuestionClient) CreateBulk(builders ...*QuestionCreate) *QuestionCreateBulk {
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionClient) MapCreateBulk(slice any, setFunc func(*QuestionCreate, int)) *QuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionCreateBulk{err: fmt.Errorf("calling to QuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Question.
func (c *QuestionClient) Update() *QuestionUpdate {
	mutation := newQuestionMutation(c.config, OpUpdate)
	return &QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionClient) UpdateOne(_m *Question) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestion(_m))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionClient) UpdateOneID(id string) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestionID(id))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Question.
func (c *QuestionClient) Delete() *QuestionDelete {
	mutation := newQuestionMutation(c.config, OpDelete)
	return &QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionClient) DeleteOne(_m *Question) *QuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionClient) DeleteOneID(id string) *QuestionDeleteOne {
	builder := c.Delete().Where(question.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionDeleteOne{builder}
}

// Query returns a query builder for Question.
func (c *QuestionClient) Query() *QuestionQuery {
	return &QuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a Question entity by its id.
func (c *QuestionClient) Get(ctx context.Context, id string) (*Question, error) {
	return c.Query().Where(question.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionClient) GetX(ctx context.Context, id string) *Question {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionClient) Hooks() []Hook {
	return c.hooks.Question
}

// Interceptors returns the client interceptors.
func (c *QuestionClient) Interceptors() []Interceptor {
	return c.inters.Question
}

func (c *QuestionClient) mutate(ctx context.Context, m *QuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Question mutation op: %q", m.Op())
	}
}

// QuestionHistoryClient is a client for the QuestionHistory schema.
type QuestionHistoryClient struct {
	config
}

// NewQuestionHistoryClient returns a client for the QuestionHistory from the given config.
func NewQuestionHistoryClient(c config) *QuestionHistoryClient {
	return &QuestionHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionhistory.Hooks(f(g(h())))`.
func (c *QuestionHistoryClient) Use(hooks ...Hook) {
	c.hooks.QuestionHistory = append(c.hooks.QuestionHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionhistory.Intercept(f(g(h())))`.
func (c *QuestionHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionHistory = append(c.inters.QuestionHistory, interceptors...)
}

// Create returns a builder for creating a QuestionHistory entity.
func (c *QuestionHistoryClient) Create() *QuestionHistoryCreate {
	mutation := newQuestionHistoryMutation(c.config, OpCreate)
	return &QuestionHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionHistory entities.
func (c *QuestionHistoryClient) CreateBulk(builders ...*QuestionHistoryCreate) *QuestionHistoryCreateBulk {
	return &QuestionHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionHistoryClient) MapCreateBulk(slice any, setFunc func(*QuestionHistoryCreate, int)) *QuestionHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionHistoryCreateBulk{err: fmt.Errorf("calling to QuestionHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionHistory.
func (c *QuestionHistoryClient) Update() *QuestionHistoryUpdate {
	mutation := newQuestionHistoryMutation(c.config, OpUpdate)
	return &QuestionHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionHistoryClient) UpdateOne(_m *QuestionHistory) *QuestionHistoryUpdateOne {
	mutation := newQuestionHistoryMutation(c.config, OpUpdateOne, withQuestionHistory(_m))
	return &QuestionHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionHistoryClient) UpdateOneID(id int) *QuestionHistoryUpdateOne {
	mutation := newQuestionHistoryMutation(c.config, OpUpdateOne, withQuestionHistoryID(id))
	return &QuestionHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionHistory.
func (c *QuestionHistoryClient) Delete() *QuestionHistoryDelete {
	mutation := newQuestionHistoryMutation(c.config, OpDelete)
	return &QuestionHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionHistoryClient) DeleteOne(_m *QuestionHistory) *QuestionHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionHistoryClient) DeleteOneID(id int) *QuestionHistoryDeleteOne {
	builder := c.Delete().Where(questionhistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionHistoryDeleteOne{builder}
}

// Query returns a query builder for QuestionHistory.
func (c *QuestionHistoryClient) Query() *QuestionHistoryQuery {
	return &QuestionHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionHistory entity by its id.
func (c *QuestionHistoryClient) Get(ctx context.Context, id int) (*QuestionHistory, error) {
	return c.Query().Where(questionhistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionHistoryClient) GetX(ctx context.Context, id int) *QuestionHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionHistoryClient) Hooks() []Hook {
	return c.hooks.QuestionHistory
}

// Interceptors returns the client interceptors.
func (c *QuestionHistoryClient) Interceptors() []Interceptor {
	return c.inters.QuestionHistory
}

func (c *QuestionHistoryClient) mutate(ctx context.Context, m *QuestionHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuestionHistory mutation op: %q", m.Op())
	}
}

// ReadinessSnapshotClient is a client for the ReadinessSnapshot schema.
type ReadinessSnapshotClient struct {
	config
}

// NewReadinessSnapshotClient returns a client for the ReadinessSnapshot from the given config.
func NewReadinessSnapshotClient(c config) *ReadinessSnapshotClient {
	return &ReadinessSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `readinesssnapshot.Hooks(f(g(h())))`.
func (c *ReadinessSnapshotClient) Use(hooks ...Hook) {
	c.hooks.ReadinessSnapshot = append(c.hooks.ReadinessSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `readinesssnapshot.Intercept(f(g(h())))`.
func (c *ReadinessSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReadinessSnapshot = append(c.inters.ReadinessSnapshot, interceptors...)
}

// Create returns a builder for creating a ReadinessSnapshot entity.
func (c *ReadinessSnapshotClient) Create() *ReadinessSnapshotCreate {
	mutation := newReadinessSnapshotMutation(c.config, OpCreate)
	return &ReadinessSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReadinessSnapshot entities.
func (c *ReadinessSnapshotClient) CreateBulk(builders ...*ReadinessSnapshotCreate) *ReadinessSnapshotCreateBulk {
	return &ReadinessSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReadinessSnapshotClient) MapCreateBulk(slice any, setFunc func(*ReadinessSnapshotCreate, int)) *ReadinessSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReadinessSnapshotCreateBulk{err: fmt.Errorf("calling to ReadinessSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReadinessSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReadinessSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReadinessSnapshot.
func (c *ReadinessSnapshotClient) Update() *ReadinessSnapshotUpdate {
	mutation := newReadinessSnapshotMutation(c.config, OpUpdate)
	return &ReadinessSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReadinessSnapshotClient) UpdateOne(_m *ReadinessSnapshot) *ReadinessSnapshotUpdateOne {
	mutation := newReadinessSnapshotMutation(c.config, OpUpdateOne, withReadinessSnapshot(_m))
	return &ReadinessSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReadinessSnapshotClient) UpdateOneID(id int) *ReadinessSnapshotUpdateOne {
	mutation := newReadinessSnapshotMutation(c.config, OpUpdateOne, withReadinessSnapshotID(id))
	return &ReadinessSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReadinessSnapshot.
func (c *ReadinessSnapshotClient) Delete() *ReadinessSnapshotDelete {
	mutation := newReadinessSnapshotMutation(c.config, OpDelete)
	return &ReadinessSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReadinessSnapshotClient) DeleteOne(_m *ReadinessSnapshot) *ReadinessSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReadinessSnapshotClient) DeleteOneID(id int) *ReadinessSnapshotDeleteOne {
	builder := c.Delete().Where(readinesssnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReadinessSnapshotDeleteOne{builder}
}

// Query returns a query builder for ReadinessSnapshot.
func (c *ReadinessSnapshotClient) Query() *ReadinessSnapshotQuery {
	return &ReadinessSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReadinessSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a ReadinessSnapshot entity by its id.
func (c *ReadinessSnapshotClient) Get(ctx context.Context, id int) (*ReadinessSnapshot, error) {
	return c.Query().Where(readinesssnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReadinessSnapshotClient) GetX(ctx context.Context, id int) *ReadinessSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReadinessSnapshotClient) Hooks() []Hook {
	return c.hooks.ReadinessSnapshot
}

// Interceptors returns the client interceptors.
func (c *ReadinessSnapshotClient) Interceptors() []Interceptor {
	return c.inters.ReadinessSnapshot
}

func (c *ReadinessSnapshotClient) mutate(ctx context.Context, m *ReadinessSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReadinessSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReadinessSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReadinessSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReadinessSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReadinessSnapshot mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CVAnalysis, InterviewSession, InterviewTurn, JobSpec, LLMRequestEvent, Question,
		QuestionHistory, ReadinessSnapshot, User []ent.Hook
	}
	inters struct {
		CVAnalysis, InterviewSession, InterviewTurn, JobSpec, LLMRequestEvent, Question,
		QuestionHistory, ReadinessSnapshot, User []ent.Interceptor
	}
)
