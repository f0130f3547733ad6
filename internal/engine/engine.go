package engine

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/specialistvlad/lazyframe/internal/collector"
	"github.com/specialistvlad/lazyframe/internal/ctxlog"
	"github.com/specialistvlad/lazyframe/internal/dagerr"
	"github.com/specialistvlad/lazyframe/internal/executor"
	"github.com/specialistvlad/lazyframe/internal/graph"
	"github.com/specialistvlad/lazyframe/internal/inmemorystore"
	"github.com/specialistvlad/lazyframe/internal/node"
	"github.com/specialistvlad/lazyframe/internal/nodestore"
	"github.com/specialistvlad/lazyframe/internal/registry"
	"github.com/specialistvlad/lazyframe/internal/scheduler"
	"github.com/specialistvlad/lazyframe/internal/task"
)

// Source supplies raw input columns, e.g. a loaded table.
type Source interface {
	Names() []string
	Value(name string) any
}

// Option configures an Engine.
type Option func(*Engine)

// WithStore makes the engine keep its nodes in store instead of a fresh
// in-memory store.
func WithStore(store nodestore.Store) Option {
	return func(e *Engine) { e.store = store }
}

// Engine owns one registry of nodes and evaluates it on demand.
type Engine struct {
	store    nodestore.Store
	registry *registry.Registry

	running   atomic.Bool
	failed    atomic.Bool
	completed atomic.Bool
}

// New creates an empty engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.store == nil {
		e.store = inmemorystore.New()
	}
	e.registry = registry.New(e.store)
	return e
}

// Store returns the engine's node store.
func (e *Engine) Store() nodestore.Store {
	return e.store
}

// RegisterInput registers a raw input column. Registering an existing name
// replaces the previous node.
func (e *Engine) RegisterInput(ctx context.Context, name string, value any) error {
	if err := e.writable(); err != nil {
		return err
	}
	return e.registry.RegisterInput(ctx, name, value)
}

// RegisterInputs registers every column of src, in src's order.
func (e *Engine) RegisterInputs(ctx context.Context, src Source) error {
	if err := e.writable(); err != nil {
		return err
	}
	for _, name := range src.Names() {
		if err := e.registry.RegisterInput(ctx, name, src.Value(name)); err != nil {
			return err
		}
	}
	return nil
}

// RegisterScalar registers a constant value.
func (e *Engine) RegisterScalar(ctx context.Context, name string, value any) error {
	if err := e.writable(); err != nil {
		return err
	}
	return e.registry.RegisterScalar(ctx, name, value)
}

// RegisterTask registers a derived value computed by fn. args maps each of
// fn's parameters to a node name (a string or nodeid.Ref) or to an inline
// value wrapped with nodeid.Literal. The binding is checked against fn's
// signature immediately; the referenced names are not.
func (e *Engine) RegisterTask(ctx context.Context, name string, fn *task.Func, args map[string]any) error {
	if err := e.writable(); err != nil {
		return err
	}
	return e.registry.RegisterTask(ctx, name, fn, args)
}

// Get returns the node registered under name.
func (e *Engine) Get(ctx context.Context, name string) (*node.Node, error) {
	return e.registry.Get(ctx, name)
}

// Plan validates the graph and returns the order Run would follow. It
// evaluates nothing.
func (e *Engine) Plan(ctx context.Context) ([]string, error) {
	g := graph.Build(ctx, e.store)
	return scheduler.Order(ctx, g)
}

// Run evaluates every pending node. Graph errors (unresolved references,
// cycles) are reported before any function is invoked and leave the engine
// usable. A failing task aborts the run and marks the engine as failed. After
// a successful run the registry is read-only.
func (e *Engine) Run(ctx context.Context) error {
	if e.failed.Load() {
		return dagerr.ErrRegistryFailed
	}
	if !e.running.CompareAndSwap(false, true) {
		return dagerr.ErrRunInProgress
	}
	defer e.running.Store(false)

	logger := ctxlog.FromContext(ctx).With("run_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)

	order, err := e.Plan(ctx)
	if err != nil {
		return fmt.Errorf("failed to plan run: %w", err)
	}

	logger.Info("🚀 Starting run.", "nodes", len(order))
	if err := executor.New(e.store).Run(ctx, order); err != nil {
		e.failed.Store(true)
		return err
	}
	e.completed.Store(true)
	logger.Info("🏁 Run finished.")
	return nil
}

// Failed reports whether a previous Run aborted on a task failure.
func (e *Engine) Failed() bool {
	return e.failed.Load()
}

// Collect returns the values of names in the given order. Without names it
// returns every scalar and derived node, in registration order; raw inputs
// are only returned when asked for by name.
func (e *Engine) Collect(ctx context.Context, names ...string) ([]collector.Column, error) {
	if len(names) == 0 {
		names = collector.Derived(ctx, e.store)
	}
	return collector.Collect(ctx, e.store, names...)
}

// CollectAll returns the value of every node, inputs included.
func (e *Engine) CollectAll(ctx context.Context) ([]collector.Column, error) {
	return collector.Collect(ctx, e.store, collector.All(ctx, e.store)...)
}

func (e *Engine) writable() error {
	if e.running.Load() {
		return dagerr.ErrRunInProgress
	}
	if e.failed.Load() {
		return dagerr.ErrRegistryFailed
	}
	if e.completed.Load() {
		return dagerr.ErrRegistryReadOnly
	}
	return nil
}
