// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/lingoflow/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingoflow/ent/activesession"
	"github.com/abhisek/lingoflow/ent/attemptevent"
	"github.com/abhisek/lingoflow/ent/categoryprogress"
	"github.com/abhisek/lingoflow/ent/dailyxp"
	"github.com/abhisek/lingoflow/ent/itemprogress"
	"github.com/abhisek/lingoflow/ent/learnerprogress"
	"github.com/abhisek/lingoflow/ent/learnersettings"
	"github.com/abhisek/lingoflow/ent/sessionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ActiveSession is the client for interacting with the ActiveSession builders.
	ActiveSession *ActiveSessionClient
	// AttemptEvent is the client for interacting with the AttemptEvent builders.
	AttemptEvent *AttemptEventClient
	// CategoryProgress is the client for interacting with the CategoryProgress builders.
	CategoryProgress *CategoryProgressClient
	// DailyXP is the client for interacting with the DailyXP builders.
	DailyXP *DailyXPClient
	// ItemProgress is the client for interacting with the ItemProgress builders.
	ItemProgress *ItemProgressClient
	// LearnerProgress is the client for interacting with the LearnerProgress builders.
	LearnerProgress *LearnerProgressClient
	// LearnerSettings is the client for interacting with the LearnerSettings builders.
	LearnerSettings *LearnerSettingsClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ActiveSession = NewActiveSessionClient(c.config)
	c.AttemptEvent = NewAttemptEventClient(c.config)
	c.CategoryProgress = NewCategoryProgressClient(c.config)
	c.DailyXP = NewDailyXPClient(c.config)
	c.ItemProgress = NewItemProgressClient(c.config)
	c.LearnerProgress = NewLearnerProgressClient(c.config)
	c.LearnerSettings = NewLearnerSettingsClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		ActiveSession:    NewActiveSessionClient(cfg),
		AttemptEvent:     NewAttemptEventClient(cfg),
		CategoryProgress: NewCategoryProgressClient(cfg),
		DailyXP:          NewDailyXPClient(cfg),
		ItemProgress:     NewItemProgressClient(cfg),
		LearnerProgress:  NewLearnerProgressClient(cfg),
		LearnerSettings:  NewLearnerSettingsClient(cfg),
		SessionEvent:     NewSessionEventClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		ActiveSession:    NewActiveSessionClient(cfg),
		AttemptEvent:     NewAttemptEventClient(cfg),
		CategoryProgress: NewCategoryProgressClient(cfg),
		DailyXP:          NewDailyXPClient(cfg),
		ItemProgress:     NewItemProgressClient(cfg),
		LearnerProgress:  NewLearnerProgressClient(cfg),
		LearnerSettings:  NewLearnerSettingsClient(cfg),
		SessionEvent:     NewSessionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ActiveSession.
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
		c.ActiveSession, c.AttemptEvent, c.CategoryProgress, c.DailyXP, c.ItemProgress,
		c.LearnerProgress, c.LearnerSettings, c.SessionEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ActiveSession, c.AttemptEvent, c.CategoryProgress, c.DailyXP, c.ItemProgress,
		c.LearnerProgress, c.LearnerSettings, c.SessionEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActiveSessionMutation:
		return c.ActiveSession.mutate(ctx, m)
	case *AttemptEventMutation:
		return c.AttemptEvent.mutate(ctx, m)
	case *CategoryProgressMutation:
		return c.CategoryProgress.mutate(ctx, m)
	case *DailyXPMutation:
		return c.DailyXP.mutate(ctx, m)
	case *ItemProgressMutation:
		return c.ItemProgress.mutate(ctx, m)
	case *LearnerProgressMutation:
		return c.LearnerProgress.mutate(ctx, m)
	case *LearnerSettingsMutation:
		return c.LearnerSettings.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActiveSessionClient is a client for the ActiveSession schema.
type ActiveSessionClient struct {
	config
}

// NewActiveSessionClient returns a client for the ActiveSession from the given config.
func NewActiveSessionClient(c config) *ActiveSessionClient {
	return &ActiveSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activesession.Hooks(f(g(h())))`.
func (c *ActiveSessionClient) Use(hooks ...Hook) {
	c.hooks.ActiveSession = append(c.hooks.ActiveSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activesession.Intercept(f(g(h())))`.
func (c *ActiveSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActiveSession = append(c.inters.ActiveSession, interceptors...)
}

// Create returns a builder for creating a ActiveSession entity.
func (c *ActiveSessionClient) Create() *ActiveSessionCreate {
	mutation := newActiveSessionMutation(c.config, OpCreate)
	return &ActiveSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActiveSession entities.
func (c *ActiveSessionClient) CreateBulk(builders ...*ActiveSessionCreate) *ActiveSessionCreateBulk {
	return &ActiveSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActiveSessionClient) MapCreateBulk(slice any, setFunc func(*ActiveSessionCreate, int)) *ActiveSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActiveSessionCreateBulk{err: fmt.Errorf("calling to ActiveSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActiveSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActiveSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActiveSession.
func (c *ActiveSessionClient) Update() *ActiveSessionUpdate {
	mutation := newActiveSessionMutation(c.config, OpUpdate)
	return &ActiveSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActiveSessionClient) UpdateOne(_m *ActiveSession) *ActiveSessionUpdateOne {
	mutation := newActiveSessionMutation(c.config, OpUpdateOne, withActiveSession(_m))
	return &ActiveSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActiveSessionClient) UpdateOneID(id int) *ActiveSessionUpdateOne {
	mutation := newActiveSessionMutation(c.config, OpUpdateOne, withActiveSessionID(id))
	return &ActiveSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActiveSession.
func (c *ActiveSessionClient) Delete() *ActiveSessionDelete {
	mutation := newActiveSessionMutation(c.config, OpDelete)
	return &ActiveSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActiveSessionClient) DeleteOne(_m *ActiveSession) *ActiveSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActiveSessionClient) DeleteOneID(id int) *ActiveSessionDeleteOne {
	builder := c.Delete().Where(activesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActiveSessionDeleteOne{builder}
}

// Query returns a query builder for ActiveSession.
func (c *ActiveSessionClient) Query() *ActiveSessionQuery {
	return &ActiveSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActiveSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ActiveSession entity by its id.
func (c *ActiveSessionClient) Get(ctx context.Context, id int) (*ActiveSession, error) {
	return c.Query().Where(activesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActiveSessionClient) GetX(ctx context.Context, id int) *ActiveSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActiveSessionClient) Hooks() []Hook {
	return c.hooks.ActiveSession
}

// Interceptors returns the client interceptors.
func (c *ActiveSessionClient) Interceptors() []Interceptor {
	return c.inters.ActiveSession
}

func (c *ActiveSessionClient) mutate(ctx context.Context, m *ActiveSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActiveSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActiveSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActiveSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActiveSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActiveSession mutation op: %q", m.Op())
	}
}

// AttemptEventClient is a client for the AttemptEvent schema.
type AttemptEventClient struct {
	config
}

// NewAttemptEventClient returns a client for the AttemptEvent from the given config.
func NewAttemptEventClient(c config) *AttemptEventClient {
	return &AttemptEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attemptevent.Hooks(f(g(h())))`.
func (c *AttemptEventClient) Use(hooks ...Hook) {
	c.hooks.AttemptEvent = append(c.hooks.AttemptEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attemptevent.Intercept(f(g(h())))`.
func (c *AttemptEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttemptEvent = append(c.inters.AttemptEvent, interceptors...)
}

// Create returns a builder for creating a AttemptEvent entity.
func (c *AttemptEventClient) Create() *AttemptEventCreate {
	mutation := newAttemptEventMutation(c.config, OpCreate)
	return &AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttemptEvent entities.
func (c *AttemptEventClient) CreateBulk(builders ...*AttemptEventCreate) *AttemptEventCreateBulk {
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptEventClient) MapCreateBulk(slice any, setFunc func(*AttemptEventCreate, int)) *AttemptEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptEventCreateBulk{err: fmt.Errorf("calling to AttemptEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttemptEvent.
func (c *AttemptEventClient) Update() *AttemptEventUpdate {
	mutation := newAttemptEventMutation(c.config, OpUpdate)
	return &AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptEventClient) UpdateOne(_m *AttemptEvent) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEvent(_m))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptEventClient) UpdateOneID(id int) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEventID(id))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttemptEvent.
func (c *AttemptEventClient) Delete() *AttemptEventDelete {
	mutation := newAttemptEventMutation(c.config, OpDelete)
	return &AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptEventClient) DeleteOne(_m *AttemptEvent) *AttemptEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptEventClient) DeleteOneID(id int) *AttemptEventDeleteOne {
	builder := c.Delete().Where(attemptevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptEventDeleteOne{builder}
}

// Query returns a query builder for AttemptEvent.
func (c *AttemptEventClient) Query() *AttemptEventQuery {
	return &AttemptEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttemptEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AttemptEvent entity by its id.
func (c *AttemptEventClient) Get(ctx context.Context, id int) (*AttemptEvent, error) {
	return c.Query().Where(attemptevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptEventClient) GetX(ctx context.Context, id int) *AttemptEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptEventClient) Hooks() []Hook {
	return c.hooks.AttemptEvent
}

// Interceptors returns the client interceptors.
func (c *AttemptEventClient) Interceptors() []Interceptor {
	return c.inters.AttemptEvent
}

func (c *AttemptEventClient) mutate(ctx context.Context, m *AttemptEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttemptEvent mutation op: %q", m.Op())
	}
}

// CategoryProgressClient is a client for the CategoryProgress schema.
type CategoryProgressClient struct {
	config
}

// NewCategoryProgressClient returns a client for the CategoryProgress from the given config.
func NewCategoryProgressClient(c config) *CategoryProgressClient {
	return &CategoryProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `categoryprogress.Hooks(f(g(h())))`.
func (c *CategoryProgressClient) Use(hooks ...Hook) {
	c.hooks.CategoryProgress = append(c.hooks.CategoryProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `categoryprogress.Intercept(f(g(h())))`.
func (c *CategoryProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.CategoryProgress = append(c.inters.CategoryProgress, interceptors...)
}

// Create returns a builder for creating a CategoryProgress entity.
func (c *CategoryProgressClient) Create() *CategoryProgressCreate {
	mutation := newCategoryProgressMutation(c.config, OpCreate)
	return &CategoryProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CategoryProgress entities.
func (c *CategoryProgressClient) CreateBulk(builders ...*CategoryProgressCreate) *CategoryProgressCreateBulk {
	return &CategoryProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CategoryProgressClient) MapCreateBulk(slice any, setFunc func(*CategoryProgressCreate, int)) *CategoryProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CategoryProgressCreateBulk{err: fmt.Errorf("calling to CategoryProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CategoryProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CategoryProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CategoryProgress.
func (c *CategoryProgressClient) Update() *CategoryProgressUpdate {
	mutation := newCategoryProgressMutation(c.config, OpUpdate)
	return &CategoryProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CategoryProgressClient) UpdateOne(_m *CategoryProgress) *CategoryProgressUpdateOne {
	mutation := newCategoryProgressMutation(c.config, OpUpdateOne, withCategoryProgress(_m))
	return &CategoryProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CategoryProgressClient) UpdateOneID(id int) *CategoryProgressUpdateOne {
	mutation := newCategoryProgressMutation(c.config, OpUpdateOne, withCategoryProgressID(id))
	return &CategoryProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CategoryProgress.
func (c *CategoryProgressClient) Delete() *CategoryProgressDelete {
	mutation := newCategoryProgressMutation(c.config, OpDelete)
	return &CategoryProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CategoryProgressClient) DeleteOne(_m *CategoryProgress) *CategoryProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CategoryProgressClient) DeleteOneID(id int) *CategoryProgressDeleteOne {
	builder := c.Delete().Where(categoryprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CategoryProgressDeleteOne{builder}
}

// Query returns a query builder for CategoryProgress.
func (c *CategoryProgressClient) Query() *CategoryProgressQuery {
	return &CategoryProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCategoryProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a CategoryProgress entity by its id.
func (c *CategoryProgressClient) Get(ctx context.Context, id int) (*CategoryProgress, error) {
	return c.Query().Where(categoryprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CategoryProgressClient) GetX(ctx context.Context, id int) *CategoryProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CategoryProgressClient) Hooks() []Hook {
	return c.hooks.CategoryProgress
}

// Interceptors returns the client interceptors.
func (c *CategoryProgressClient) Interceptors() []Interceptor {
	return c.inters.CategoryProgress
}

func (c *CategoryProgressClient) mutate(ctx context.Context, m *CategoryProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CategoryProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CategoryProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CategoryProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CategoryProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CategoryProgress mutation op: %q", m.Op())
	}
}

// DailyXPClient is a client for the DailyXP schema.
type DailyXPClient struct {
	config
}

// NewDailyXPClient returns a client for the DailyXP from the given config.
func NewDailyXPClient(c config) *DailyXPClient {
	return &DailyXPClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dailyxp.Hooks(f(g(h())))`.
func (c *DailyXPClient) Use(hooks ...Hook) {
	c.hooks.DailyXP = append(c.hooks.DailyXP, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dailyxp.Intercept(f(g(h())))`.
func (c *DailyXPClient) Intercept(interceptors ...Interceptor) {
	c.inters.DailyXP = append(c.inters.DailyXP, interceptors...)
}

// Create returns a builder for creating a DailyXP entity.
func (c *DailyXPClient) Create() *DailyXPCreate {
	mutation := newDailyXPMutation(c.config, OpCreate)
	return &DailyXPCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DailyXP entities.
func (c *DailyXPClient) CreateBulk(builders ...*DailyXPCreate) *DailyXPCreateBulk {
	return &DailyXPCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DailyXPClient) MapCreateBulk(slice any, setFunc func(*DailyXPCreate, int)) *DailyXPCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DailyXPCreateBulk{err: fmt.Errorf("calling to DailyXPClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DailyXPCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DailyXPCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DailyXP.
func (c *DailyXPClient) Update() *DailyXPUpdate {
	mutation := newDailyXPMutation(c.config, OpUpdate)
	return &DailyXPUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DailyXPClient) UpdateOne(_m *DailyXP) *DailyXPUpdateOne {
	mutation := newDailyXPMutation(c.config, OpUpdateOne, withDailyXP(_m))
	return &DailyXPUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DailyXPClient) UpdateOneID(id int) *DailyXPUpdateOne {
	mutation := newDailyXPMutation(c.config, OpUpdateOne, withDailyXPID(id))
	return &DailyXPUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DailyXP.
func (c *DailyXPClient) Delete() *DailyXPDelete {
	mutation := newDailyXPMutation(c.config, OpDelete)
	return &DailyXPDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DailyXPClient) DeleteOne(_m *DailyXP) *DailyXPDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DailyXPClient) DeleteOneID(id int) *DailyXPDeleteOne {
	builder := c.Delete().Where(dailyxp.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DailyXPDeleteOne{builder}
}

// Query returns a query builder for DailyXP.
func (c *DailyXPClient) Query() *DailyXPQuery {
	return &DailyXPQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDailyXP},
		inters: c.Interceptors(),
	}
}

// Get returns a DailyXP entity by its id.
func (c *DailyXPClient) Get(ctx context.Context, id int) (*DailyXP, error) {
	return c.Query().Where(dailyxp.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DailyXPClient) GetX(ctx context.Context, id int) *DailyXP {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DailyXPClient) Hooks() []Hook {
	return c.hooks.DailyXP
}

// Interceptors returns the client interceptors.
func (c *DailyXPClient) Interceptors() []Interceptor {
	return c.inters.DailyXP
}

func (c *DailyXPClient) mutate(ctx context.Context, m *DailyXPMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DailyXPCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DailyXPUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DailyXPUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DailyXPDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DailyXP mutation op: %q", m.Op())
	}
}

// ItemProgressClient is a client for the ItemProgress schema.
type ItemProgressClient struct {
	config
}

// NewItemProgressClient returns a client for the ItemProgress from the given config.
func NewItemProgressClient(c config) *ItemProgressClient {
	return &ItemProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `itemprogress.Hooks(f(g(h())))`.
func (c *ItemProgressClient) Use(hooks ...Hook) {
	c.hooks.ItemProgress = append(c.hooks.ItemProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `itemprogress.Intercept(f(g(h())))`.
func (c *ItemProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.ItemProgress = append(c.inters.ItemProgress, interceptors...)
}

// Create returns a builder for creating a ItemProgress entity.
func (c *ItemProgressClient) Create() *ItemProgressCreate {
	mutation := newItemProgressMutation(c.config, OpCreate)
	return &ItemProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ItemProgress entities.
func (c *ItemProgressClient) CreateBulk(builders ...*ItemProgressCreate) *ItemProgressCreateBulk {
	return &ItemProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ItemProgressClient) MapCreateBulk(slice any, setFunc func(*ItemProgressCreate, int)) *ItemProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ItemProgressCreateBulk{err: fmt.Errorf("calling to ItemProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ItemProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ItemProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ItemProgress.
func (c *ItemProgressClient) Update() *ItemProgressUpdate {
	mutation := newItemProgressMutation(c.config, OpUpdate)
	return &ItemProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ItemProgressClient) UpdateOne(_m *ItemProgress) *ItemProgressUpdateOne {
	mutation := newItemProgressMutation(c.config, OpUpdateOne, withItemProgress(_m))
	return &ItemProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ItemProgressClient) UpdateOneID(id int) *ItemProgressUpdateOne {
	mutation := newItemProgressMutation(c.config, OpUpdateOne, withItemProgressID(id))
	return &ItemProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ItemProgress.
func (c *ItemProgressClient) Delete() *ItemProgressDelete {
	mutation := newItemProgressMutation(c.config, OpDelete)
	return &ItemProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ItemProgressClient) DeleteOne(_m *ItemProgress) *ItemProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ItemProgressClient) DeleteOneID(id int) *ItemProgressDeleteOne {
	builder := c.Delete().Where(itemprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ItemProgressDeleteOne{builder}
}

// Query returns a query builder for ItemProgress.
func (c *ItemProgressClient) Query() *ItemProgressQuery {
	return &ItemProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeItemProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a ItemProgress entity by its id.
func (c *ItemProgressClient) Get(ctx context.Context, id int) (*ItemProgress, error) {
	return c.Query().Where(itemprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ItemProgressClient) GetX(ctx context.Context, id int) *ItemProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ItemProgressClient) Hooks() []Hook {
	return c.hooks.ItemProgress
}

// Interceptors returns the client interceptors.
func (c *ItemProgressClient) Interceptors() []Interceptor {
	return c.inters.ItemProgress
}

func (c *ItemProgressClient) mutate(ctx context.Context, m *ItemProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ItemProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ItemProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ItemProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ItemProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ItemProgress mutation op: %q", m.Op())
	}
}

// LearnerProgressClient is a client for the LearnerProgress schema.
type LearnerProgressClient struct {
	config
}

// NewLearnerProgressClient returns a client for the LearnerProgress from the given config.
func NewLearnerProgressClient(c config) *LearnerProgressClient {
	return &LearnerProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learnerprogress.Hooks(f(g(h())))`.
func (c *LearnerProgressClient) Use(hooks ...Hook) {
	c.hooks.LearnerProgress = append(c.hooks.LearnerProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learnerprogress.Intercept(f(g(h())))`.
func (c *LearnerProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearnerProgress = append(c.inters.LearnerProgress, interceptors...)
}

// Create returns a builder for creating a LearnerProgress entity.
func (c *LearnerProgressClient) Create() *LearnerProgressCreate {
	mutation := newLearnerProgressMutation(c.config, OpCreate)
	return &LearnerProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearnerProgress entities.
func (c *LearnerProgressClient) CreateBulk(builders ...*LearnerProgressCreate) *LearnerProgressCreateBulk {
	return &LearnerProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearnerProgressClient) MapCreateBulk(slice any, setFunc func(*LearnerProgressCreate, int)) *LearnerProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearnerProgressCreateBulk{err: fmt.Errorf("calling to LearnerProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearnerProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearnerProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearnerProgress.
func (c *LearnerProgressClient) Update() *LearnerProgressUpdate {
	mutation := newLearnerProgressMutation(c.config, OpUpdate)
	return &LearnerProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearnerProgressClient) UpdateOne(_m *LearnerProgress) *LearnerProgressUpdateOne {
	mutation := newLearnerProgressMutation(c.config, OpUpdateOne, withLearnerProgress(_m))
	return &LearnerProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearnerProgressClient) UpdateOneID(id int) *LearnerProgressUpdateOne {
	mutation := newLearnerProgressMutation(c.config, OpUpdateOne, withLearnerProgressID(id))
	return &LearnerProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearnerProgress.
func (c *LearnerProgressClient) Delete() *LearnerProgressDelete {
	mutation := newLearnerProgressMutation(c.config, OpDelete)
	return &LearnerProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearnerProgressClient) DeleteOne(_m *LearnerProgress) *LearnerProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearnerProgressClient) DeleteOneID(id int) *LearnerProgressDeleteOne {
	builder := c.Delete().Where(learnerprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearnerProgressDeleteOne{builder}
}

// Query returns a query builder for LearnerProgress.
func (c *LearnerProgressClient) Query() *LearnerProgressQuery {
	return &LearnerProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearnerProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a LearnerProgress entity by its id.
func (c *LearnerProgressClient) Get(ctx context.Context, id int) (*LearnerProgress, error) {
	return c.Query().Where(learnerprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearnerProgressClient) GetX(ctx context.Context, id int) *LearnerProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearnerProgressClient) Hooks() []Hook {
	return c.hooks.LearnerProgress
}

// Interceptors returns the client interceptors.
func (c *LearnerProgressClient) Interceptors() []Interceptor {
	return c.inters.LearnerProgress
}

func (c *LearnerProgressClient) mutate(ctx context.Context, m *LearnerProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearnerProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearnerProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearnerProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearnerProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearnerProgress mutation op: %q", m.Op())
	}
}

// LearnerSettingsClient is a client for the LearnerSettings schema.
type LearnerSettingsClient struct {
	config
}

// NewLearnerSettingsClient returns a client for the LearnerSettings from the given config.
func NewLearnerSettingsClient(c config) *LearnerSettingsClient {
	return &LearnerSettingsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learnersettings.Hooks(f(g(h())))`.
func (c *LearnerSettingsClient) Use(hooks ...Hook) {
	c.hooks.LearnerSettings = append(c.hooks.LearnerSettings, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learnersettings.Intercept(f(g(h())))`.
func (c *LearnerSettingsClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearnerSettings = append(c.inters.LearnerSettings, interceptors...)
}

// Create returns a builder for creating a LearnerSettings entity.
func (c *LearnerSettingsClient) Create() *LearnerSettingsCreate {
	mutation := newLearnerSettingsMutation(c.config, OpCreate)
	return &LearnerSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearnerSettings entities.
func (c *LearnerSettingsClient) CreateBulk(builders ...*LearnerSettingsCreate) *LearnerSettingsCreateBulk {
	return &LearnerSettingsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearnerSettingsClient) MapCreateBulk(slice any, setFunc func(*LearnerSettingsCreate, int)) *LearnerSettingsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearnerSettingsCreateBulk{err: fmt.Errorf("calling to LearnerSettingsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearnerSettingsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearnerSettingsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearnerSettings.
func (c *LearnerSettingsClient) Update() *LearnerSettingsUpdate {
	mutation := newLearnerSettingsMutation(c.config, OpUpdate)
	return &LearnerSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearnerSettingsClient) UpdateOne(_m *LearnerSettings) *LearnerSettingsUpdateOne {
	mutation := newLearnerSettingsMutation(c.config, OpUpdateOne, withLearnerSettings(_m))
	return &LearnerSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearnerSettingsClient) UpdateOneID(id int) *LearnerSettingsUpdateOne {
	mutation := newLearnerSettingsMutation(c.config, OpUpdateOne, withLearnerSettingsID(id))
	return &LearnerSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearnerSettings.
func (c *LearnerSettingsClient) Delete() *LearnerSettingsDelete {
	mutation := newLearnerSettingsMutation(c.config, OpDelete)
	return &LearnerSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearnerSettingsClient) DeleteOne(_m *LearnerSettings) *LearnerSettingsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearnerSettingsClient) DeleteOneID(id int) *LearnerSettingsDeleteOne {
	builder := c.Delete().Where(learnersettings.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearnerSettingsDeleteOne{builder}
}

// Query returns a query builder for LearnerSettings.
func (c *LearnerSettingsClient) Query() *LearnerSettingsQuery {
	return &LearnerSettingsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearnerSettings},
		inters: c.Interceptors(),
	}
}

// Get returns a LearnerSettings entity by its id.
func (c *LearnerSettingsClient) Get(ctx context.Context, id int) (*LearnerSettings, error) {
	return c.Query().Where(learnersettings.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearnerSettingsClient) GetX(ctx context.Context, id int) *LearnerSettings {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearnerSettingsClient) Hooks() []Hook {
	return c.hooks.LearnerSettings
}

// Interceptors returns the client interceptors.
func (c *LearnerSettingsClient) Interceptors() []Interceptor {
	return c.inters.LearnerSettings
}

func (c *LearnerSettingsClient) mutate(ctx context.Context, m *LearnerSettingsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearnerSettingsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearnerSettingsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearnerSettingsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearnerSettingsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearnerSettings mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id int) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id int) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id int) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id int) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ActiveSession, AttemptEvent, CategoryProgress, DailyXP, ItemProgress,
		LearnerProgress, LearnerSettings, SessionEvent []ent.Hook
	}
	inters struct {
		ActiveSession, AttemptEvent, CategoryProgress, DailyXP, ItemProgress,
		LearnerProgress, LearnerSettings, SessionEvent []ent.Interceptor
	}
)
