package registry

import (
	"context"
	"fmt"

	"github.com/specialistvlad/lazyframe/internal/ctxlog"
	"github.com/specialistvlad/lazyframe/internal/dagerr"
	"github.com/specialistvlad/lazyframe/internal/node"
	"github.com/specialistvlad/lazyframe/internal/nodeid"
	"github.com/specialistvlad/lazyframe/internal/nodestore"
	"github.com/specialistvlad/lazyframe/internal/resolver"
	"github.com/specialistvlad/lazyframe/internal/task"
)

// Registry registers nodes into a nodestore.Store.
type Registry struct {
	store nodestore.Store
}

// New creates a registry on top of store.
func New(store nodestore.Store) *Registry {
	return &Registry{store: store}
}

// Store returns the underlying node store.
func (r *Registry) Store() nodestore.Store {
	return r.store
}

// RegisterInput registers a raw input column.
func (r *Registry) RegisterInput(ctx context.Context, name string, value any) error {
	if err := nodeid.Validate(name); err != nil {
		return fmt.Errorf("failed to register input: %w", err)
	}
	r.put(ctx, node.NewInput(name, value))
	return nil
}

// RegisterScalar registers a declared scalar value.
func (r *Registry) RegisterScalar(ctx context.Context, name string, value any) error {
	if err := nodeid.Validate(name); err != nil {
		return fmt.Errorf("failed to register scalar: %w", err)
	}
	r.put(ctx, node.NewScalar(name, value))
	return nil
}

// RegisterTask classifies supplied against fn's signature and registers the
// pending node. Signature mismatches fail here, before any graph is built.
func (r *Registry) RegisterTask(ctx context.Context, name string, fn *task.Func, supplied map[string]any) error {
	if err := nodeid.Validate(name); err != nil {
		return fmt.Errorf("failed to register task: %w", err)
	}

	bindings, err := resolver.Resolve(fn, supplied)
	if err != nil {
		return fmt.Errorf("failed to register task %q: %w", name, err)
	}

	r.put(ctx, node.NewTask(name, &task.Spec{Func: fn, Bindings: bindings}))
	ctxlog.FromContext(ctx).Debug("Task registered.", "node", name, "function", fn.Name, "depends_on", bindings.Refs())
	return nil
}

// Get retrieves a node by name.
func (r *Registry) Get(ctx context.Context, name string) (*node.Node, error) {
	n, ok := r.store.Get(ctx, name)
	if !ok {
		return nil, &dagerr.UnknownNode{Name: name}
	}
	return n, nil
}

func (r *Registry) put(ctx context.Context, n *node.Node) {
	if replaced := r.store.Put(ctx, n); replaced {
		ctxlog.FromContext(ctx).Debug("Node overwritten, last registration wins.", "node", n.Name, "kind", n.Kind.String())
	}
}
