// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/quillhq/quill/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/quillhq/quill/ent/connectorrecord"
	"github.com/quillhq/quill/ent/job"
	"github.com/quillhq/quill/ent/jobevent"
	"github.com/quillhq/quill/ent/semanticmodelrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ConnectorRecord is the client for interacting with the ConnectorRecord builders.
	ConnectorRecord *ConnectorRecordClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// JobEvent is the client for interacting with the JobEvent builders.
	JobEvent *JobEventClient
	// SemanticModelRecord is the client for interacting with the SemanticModelRecord builders.
	SemanticModelRecord *SemanticModelRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ConnectorRecord = NewConnectorRecordClient(c.config)
	c.Job = NewJobClient(c.config)
	c.JobEvent = NewJobEventClient(c.config)
	c.SemanticModelRecord = NewSemanticModelRecordClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		ConnectorRecord:     NewConnectorRecordClient(cfg),
		Job:                 NewJobClient(cfg),
		JobEvent:            NewJobEventClient(cfg),
		SemanticModelRecord: NewSemanticModelRecordClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		ConnectorRecord:     NewConnectorRecordClient(cfg),
		Job:                 NewJobClient(cfg),
		JobEvent:            NewJobEventClient(cfg),
		SemanticModelRecord: NewSemanticModelRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ConnectorRecord.
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
	c.ConnectorRecord.Use(hooks...)
	c.Job.Use(hooks...)
	c.JobEvent.Use(hooks...)
	c.SemanticModelRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ConnectorRecord.Intercept(interceptors...)
	c.Job.Intercept(interceptors...)
	c.JobEvent.Intercept(interceptors...)
	c.SemanticModelRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ConnectorRecordMutation:
		return c.ConnectorRecord.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *JobEventMutation:
		return c.JobEvent.mutate(ctx, m)
	case *SemanticModelRecordMutation:
		return c.SemanticModelRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ConnectorRecordClient is a client for the ConnectorRecord schema.
type ConnectorRecordClient struct {
	config
}

// NewConnectorRecordClient returns a client for the ConnectorRecord from the given config.
func NewConnectorRecordClient(c config) *ConnectorRecordClient {
	return &ConnectorRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `connectorrecord.Hooks(f(g(h())))`.
func (c *ConnectorRecordClient) Use(hooks ...Hook) {
	c.hooks.ConnectorRecord = append(c.hooks.ConnectorRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `connectorrecord.Intercept(f(g(h())))`.
func (c *ConnectorRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConnectorRecord = append(c.inters.ConnectorRecord, interceptors...)
}

// Create returns a builder for creating a ConnectorRecord entity.
func (c *ConnectorRecordClient) Create() *ConnectorRecordCreate {
	mutation := newConnectorRecordMutation(c.config, OpCreate)
	return &ConnectorRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConnectorRecord entities.
func (c *ConnectorRecordClient) CreateBulk(builders ...*ConnectorRecordCreate) *ConnectorRecordCreateBulk {
	return &ConnectorRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConnectorRecordClient) MapCreateBulk(slice any, setFunc func(*ConnectorRecordCreate, int)) *ConnectorRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConnectorRecordCreateBulk{err: fmt.Errorf("calling to ConnectorRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConnectorRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConnectorRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConnectorRecord.
func (c *ConnectorRecordClient) Update() *ConnectorRecordUpdate {
	mutation := newConnectorRecordMutation(c.config, OpUpdate)
	return &ConnectorRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConnectorRecordClient) UpdateOne(_m *ConnectorRecord) *ConnectorRecordUpdateOne {
	mutation := newConnectorRecordMutation(c.config, OpUpdateOne, withConnectorRecord(_m))
	return &ConnectorRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConnectorRecordClient) UpdateOneID(id string) *ConnectorRecordUpdateOne {
	mutation := newConnectorRecordMutation(c.config, OpUpdateOne, withConnectorRecordID(id))
	return &ConnectorRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConnectorRecord.
func (c *ConnectorRecordClient) Delete() *ConnectorRecordDelete {
	mutation := newConnectorRecordMutation(c.config, OpDelete)
	return &ConnectorRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConnectorRecordClient) DeleteOne(_m *ConnectorRecord) *ConnectorRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConnectorRecordClient) DeleteOneID(id string) *ConnectorRecordDeleteOne {
	builder := c.Delete().Where(connectorrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConnectorRecordDeleteOne{builder}
}

// Query returns a query builder for ConnectorRecord.
func (c *ConnectorRecordClient) Query() *ConnectorRecordQuery {
	return &ConnectorRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConnectorRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ConnectorRecord entity by its id.
func (c *ConnectorRecordClient) Get(ctx context.Context, id string) (*ConnectorRecord, error) {
	return c.Query().Where(connectorrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConnectorRecordClient) GetX(ctx context.Context, id string) *ConnectorRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConnectorRecordClient) Hooks() []Hook {
	return c.hooks.ConnectorRecord
}

// Interceptors returns the client interceptors.
func (c *ConnectorRecordClient) Interceptors() []Interceptor {
	return c.inters.ConnectorRecord
}

func (c *ConnectorRecordClient) mutate(ctx context.Context, m *ConnectorRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConnectorRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConnectorRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConnectorRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConnectorRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConnectorRecord mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id string) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id string) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id string) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id string) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvents queries the events edge of a Job.
func (c *JobClient) QueryEvents(_m *Job) *JobEventQuery {
	query := (&JobEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(jobevent.Table, jobevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.EventsTable, job.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// JobEventClient is a client for the JobEvent schema.
type JobEventClient struct {
	config
}

// NewJobEventClient returns a client for the JobEvent from the given config.
func NewJobEventClient(c config) *JobEventClient {
	return &JobEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobevent.Hooks(f(g(h())))`.
func (c *JobEventClient) Use(hooks ...Hook) {
	c.hooks.JobEvent = append(c.hooks.JobEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobevent.Intercept(f(g(h())))`.
func (c *JobEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobEvent = append(c.inters.JobEvent, interceptors...)
}

// Create returns a builder for creating a JobEvent entity.
func (c *JobEventClient) Create() *JobEventCreate {
	mutation := newJobEventMutation(c.config, OpCreate)
	return &JobEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobEvent entities.
func (c *JobEventClient) CreateBulk(builders ...*JobEventCreate) *JobEventCreateBulk {
	return &JobEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobEventClient) MapCreateBulk(slice any, setFunc func(*JobEventCreate, int)) *JobEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobEventCreateBulk{err: fmt.Errorf("calling to JobEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobEvent.
func (c *JobEventClient) Update() *JobEventUpdate {
	mutation := newJobEventMutation(c.config, OpUpdate)
	return &JobEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobEventClient) UpdateOne(_m *JobEvent) *JobEventUpdateOne {
	mutation := newJobEventMutation(c.config, OpUpdateOne, withJobEvent(_m))
	return &JobEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobEventClient) UpdateOneID(id int) *JobEventUpdateOne {
	mutation := newJobEventMutation(c.config, OpUpdateOne, withJobEventID(id))
	return &JobEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobEvent.
func (c *JobEventClient) Delete() *JobEventDelete {
	mutation := newJobEventMutation(c.config, OpDelete)
	return &JobEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobEventClient) DeleteOne(_m *JobEvent) *JobEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobEventClient) DeleteOneID(id int) *JobEventDeleteOne {
	builder := c.Delete().Where(jobevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobEventDeleteOne{builder}
}

// Query returns a query builder for JobEvent.
func (c *JobEventClient) Query() *JobEventQuery {
	return &JobEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a JobEvent entity by its id.
func (c *JobEventClient) Get(ctx context.Context, id int) (*JobEvent, error) {
	return c.Query().Where(jobevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobEventClient) GetX(ctx context.Context, id int) *JobEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a JobEvent.
func (c *JobEventClient) QueryJob(_m *JobEvent) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobevent.Table, jobevent.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobevent.JobTable, jobevent.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobEventClient) Hooks() []Hook {
	return c.hooks.JobEvent
}

// Interceptors returns the client interceptors.
func (c *JobEventClient) Interceptors() []Interceptor {
	return c.inters.JobEvent
}

func (c *JobEventClient) mutate(ctx context.Context, m *JobEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobEvent mutation op: %q", m.Op())
	}
}

// SemanticModelRecordClient is a client for the SemanticModelRecord schema.
type SemanticModelRecordClient struct {
	config
}

// NewSemanticModelRecordClient returns a client for the SemanticModelRecord from the given config.
func NewSemanticModelRecordClient(c config) *SemanticModelRecordClient {
	return &SemanticModelRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `semanticmodelrecord.Hooks(f(g(h())))`.
func (c *SemanticModelRecordClient) Use(hooks ...Hook) {
	c.hooks.SemanticModelRecord = append(c.hooks.SemanticModelRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `semanticmodelrecord.Intercept(f(g(h())))`.
func (c *SemanticModelRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.SemanticModelRecord = append(c.inters.SemanticModelRecord, interceptors...)
}

// Create returns a builder for creating a SemanticModelRecord entity.
func (c *SemanticModelRecordClient) Create() *SemanticModelRecordCreate {
	mutation := newSemanticModelRecordMutation(c.config, OpCreate)
	return &SemanticModelRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SemanticModelRecord entities.
func (c *SemanticModelRecordClient) CreateBulk(builders ...*SemanticModelRecordCreate) *SemanticModelRecordCreateBulk {
	return &SemanticModelRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SemanticModelRecordClient) MapCreateBulk(slice any, setFunc func(*SemanticModelRecordCreate, int)) *SemanticModelRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SemanticModelRecordCreateBulk{err: fmt.Errorf("calling to SemanticModelRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SemanticModelRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SemanticModelRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SemanticModelRecord.
func (c *SemanticModelRecordClient) Update() *SemanticModelRecordUpdate {
	mutation := newSemanticModelRecordMutation(c.config, OpUpdate)
	return &SemanticModelRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SemanticModelRecordClient) UpdateOne(_m *SemanticModelRecord) *SemanticModelRecordUpdateOne {
	mutation := newSemanticModelRecordMutation(c.config, OpUpdateOne, withSemanticModelRecord(_m))
	return &SemanticModelRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SemanticModelRecordClient) UpdateOneID(id string) *SemanticModelRecordUpdateOne {
	mutation := newSemanticModelRecordMutation(c.config, OpUpdateOne, withSemanticModelRecordID(id))
	return &SemanticModelRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SemanticModelRecord.
func (c *SemanticModelRecordClient) Delete() *SemanticModelRecordDelete {
	mutation := newSemanticModelRecordMutation(c.config, OpDelete)
	return &SemanticModelRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SemanticModelRecordClient) DeleteOne(_m *SemanticModelRecord) *SemanticModelRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SemanticModelRecordClient) DeleteOneID(id string) *SemanticModelRecordDeleteOne {
	builder := c.Delete().Where(semanticmodelrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SemanticModelRecordDeleteOne{builder}
}

// Query returns a query builder for SemanticModelRecord.
func (c *SemanticModelRecordClient) Query() *SemanticModelRecordQuery {
	return &SemanticModelRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSemanticModelRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a SemanticModelRecord entity by its id.
func (c *SemanticModelRecordClient) Get(ctx context.Context, id string) (*SemanticModelRecord, error) {
	return c.Query().Where(semanticmodelrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SemanticModelRecordClient) GetX(ctx context.Context, id string) *SemanticModelRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SemanticModelRecordClient) Hooks() []Hook {
	return c.hooks.SemanticModelRecord
}

// Interceptors returns the client interceptors.
func (c *SemanticModelRecordClient) Interceptors() []Interceptor {
	return c.inters.SemanticModelRecord
}

func (c *SemanticModelRecordClient) mutate(ctx context.Context, m *SemanticModelRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SemanticModelRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SemanticModelRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SemanticModelRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SemanticModelRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SemanticModelRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ConnectorRecord, Job, JobEvent, SemanticModelRecord []ent.Hook
	}
	inters struct {
		ConnectorRecord, Job, JobEvent, SemanticModelRecord []ent.Interceptor
	}
)
