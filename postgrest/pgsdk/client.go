// Package pgsdk is the public surface of the mock backend: a fluent,
// PostgREST-style query builder over the in-memory store. Application code
// written against the real backend client runs unmodified against this
// package; the rest of the app never reaches past it into store internals.
package pgsdk

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/supalite/supalite/postgrest/pgstore"
	"github.com/supalite/supalite/postgrest/record"
)

// Client hands out query builders for a single store.
type Client struct {
	store *pgstore.Store

	// execMu serializes executions. The engine is logically synchronous;
	// this only guarantees that concurrent callers observe whole
	// operations, never partial ones.
	execMu sync.Mutex

	opts clientOptions
}

type clientOptions struct {
	logger  *slog.Logger
	latency time.Duration
	clock   record.Clock
}

// Option configures a Client.
type Option func(*clientOptions)

// WithLogger enables a structured log line per executed query.
func WithLogger(logger *slog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithLatency adds an artificial delay before each execution, purely to
// mimic network latency for UI testing. Not part of the correctness
// contract.
func WithLatency(d time.Duration) Option {
	return func(o *clientOptions) {
		o.latency = d
	}
}

// WithClock overrides the timestamp source, for deterministic tests.
func WithClock(clock record.Clock) Option {
	return func(o *clientOptions) {
		o.clock = clock
	}
}

// New wraps a store in a client.
func New(store *pgstore.Store, opts ...Option) *Client {
	c := &Client{
		store: store,
		opts: clientOptions{
			logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
			clock:  record.UTCNow,
		},
	}
	for _, opt := range opts {
		opt(&c.opts)
	}
	if c.opts.logger == nil {
		c.opts.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.opts.clock == nil {
		c.opts.clock = record.UTCNow
	}
	return c
}

// Store exposes the underlying store for lifecycle calls (Reset, Close).
// Query paths never need it.
func (c *Client) Store() *pgstore.Store {
	return c.store
}

// From starts a builder for one operation against a table. The table is
// created lazily on first reference; a builder with no operation selector
// executes as a select.
func (c *Client) From(table string) *Builder {
	return &Builder{
		client: c,
		table:  table,
		op:     opSelect,
	}
}
