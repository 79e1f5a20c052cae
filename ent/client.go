// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/priyankac/axon/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/priyankac/axon/ent/queryevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// QueryEvent is the client for interacting with the QueryEvent builders.
	QueryEvent *QueryEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.QueryEvent = NewQueryEventClient(c.config)
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
		ctx:        ctx,
		config:     cfg,
		QueryEvent: NewQueryEventClient(cfg),
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
		ctx:        ctx,
		config:     cfg,
		QueryEvent: NewQueryEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		QueryEvent.
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
	c.QueryEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.QueryEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *QueryEventMutation:
		return c.QueryEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// QueryEventClient is a client for the QueryEvent schema.
type QueryEventClient struct {
	config
}

// NewQueryEventClient returns a client for the QueryEvent from the given config.
func NewQueryEventClient(c config) *QueryEventClient {
	return &QueryEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `queryevent.Hooks(f(g(h())))`.
func (c *QueryEventClient) Use(hooks ...Hook) {
	c.hooks.QueryEvent = append(c.hooks.QueryEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `queryevent.Intercept(f(g(h())))`.
func (c *QueryEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.QueryEvent = append(c.inters.QueryEvent, interceptors...)
}

// Create returns a builder for creating a QueryEvent entity.
func (c *QueryEventClient) Create() *QueryEventCreate {
	mutation := newQueryEventMutation(c.config, OpCreate)
	return &QueryEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QueryEvent entities.
func (c *QueryEventClient) CreateBulk(builders ...*QueryEventCreate) *QueryEventCreateBulk {
	return &QueryEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QueryEventClient) MapCreateBulk(slice any, setFunc func(*QueryEventCreate, int)) *QueryEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QueryEventCreateBulk{err: fmt.Errorf("calling to QueryEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QueryEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QueryEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QueryEvent.
func (c *QueryEventClient) Update() *QueryEventUpdate {
	mutation := newQueryEventMutation(c.config, OpUpdate)
	return &QueryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QueryEventClient) UpdateOne(_m *QueryEvent) *QueryEventUpdateOne {
	mutation := newQueryEventMutation(c.config, OpUpdateOne, withQueryEvent(_m))
	return &QueryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QueryEventClient) UpdateOneID(id int) *QueryEventUpdateOne {
	mutation := newQueryEventMutation(c.config, OpUpdateOne, withQueryEventID(id))
	return &QueryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QueryEvent.
func (c *QueryEventClient) Delete() *QueryEventDelete {
	mutation := newQueryEventMutation(c.config, OpDelete)
	return &QueryEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QueryEventClient) DeleteOne(_m *QueryEvent) *QueryEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QueryEventClient) DeleteOneID(id int) *QueryEventDeleteOne {
	builder := c.Delete().Where(queryevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QueryEventDeleteOne{builder}
}

// Query returns a query builder for QueryEvent.
func (c *QueryEventClient) Query() *QueryEventQuery {
	return &QueryEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQueryEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a QueryEvent entity by its id.
func (c *QueryEventClient) Get(ctx context.Context, id int) (*QueryEvent, error) {
	return c.Query().Where(queryevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QueryEventClient) GetX(ctx context.Context, id int) *QueryEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QueryEventClient) Hooks() []Hook {
	return c.hooks.QueryEvent
}

// Interceptors returns the client interceptors.
func (c *QueryEventClient) Interceptors() []Interceptor {
	return c.inters.QueryEvent
}

func (c *QueryEventClient) mutate(ctx context.Context, m *QueryEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QueryEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QueryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QueryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QueryEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QueryEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		QueryEvent []ent.Hook
	}
	inters struct {
		QueryEvent []ent.Interceptor
	}
)
