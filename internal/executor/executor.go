// Package executor evaluates pending nodes in scheduler order, invoking each
// transformation exactly once and memoizing its result in the node store.
package executor

import (
	"context"
	"fmt"

	"github.com/specialistvlad/lazyframe/internal/ctxlog"
	"github.com/specialistvlad/lazyframe/internal/dagerr"
	"github.com/specialistvlad/lazyframe/internal/node"
	"github.com/specialistvlad/lazyframe/internal/nodestore"
	"github.com/specialistvlad/lazyframe/internal/task"
)

// Executor walks an evaluation order over a node store. It is the store's
// only writer while Run is in progress.
type Executor struct {
	store nodestore.Store
}

// New creates an executor for store.
func New(store nodestore.Store) *Executor {
	return &Executor{store: store}
}

// Run evaluates every node of order that is not yet materialized. order must
// be topological; the first failing task aborts the run, leaving the nodes
// after it pending.
func (e *Executor) Run(ctx context.Context, order []string) error {
	logger := ctxlog.FromContext(ctx)
	evaluated := 0

	for _, name := range order {
		n, ok := e.store.Get(ctx, name)
		if !ok {
			return fmt.Errorf("%w: scheduled node %q is not registered", dagerr.ErrInvariantViolated, name)
		}

		switch n.GetState() {
		case node.Materialized:
			continue
		case node.Evaluating:
			return fmt.Errorf("%w: node %q re-entered while evaluating", dagerr.ErrInvariantViolated, name)
		case node.Failed:
			return fmt.Errorf("%w: node %q failed in an earlier run", dagerr.ErrRegistryFailed, name)
		}

		if err := e.evaluate(ctx, n); err != nil {
			logger.Error("Node evaluation failed.", "node", name, "error", err)
			return err
		}
		evaluated++
	}

	logger.Debug("Executor: Run complete.", "evaluated", evaluated, "skipped", len(order)-evaluated)
	return nil
}

// evaluate runs one pending node: Pending → Evaluating → Materialized|Failed.
func (e *Executor) evaluate(ctx context.Context, n *node.Node) error {
	logger := ctxlog.FromContext(ctx).With("node", n.Name)
	if n.Task == nil || n.Task.Func == nil || n.Task.Func.Fn == nil {
		return fmt.Errorf("%w: pending node %q has no function", dagerr.ErrInvariantViolated, n.Name)
	}

	n.SetState(node.Evaluating)
	args, err := e.resolveArgs(ctx, n)
	if err != nil {
		n.SetState(node.Pending)
		return err
	}

	logger.Debug("Evaluating node.", "function", n.Task.Func.Name)
	value, err := invoke(n.Task.Func.Fn, args)
	if err != nil {
		n.Fail(err)
		return &dagerr.TaskExecutionError{Node: n.Name, Err: err}
	}

	n.Materialize(value)
	logger.Debug("Node materialized.")
	return nil
}

// resolveArgs looks up every referenced value. The topological order
// guarantees the targets are materialized; anything else is a scheduler bug.
func (e *Executor) resolveArgs(ctx context.Context, n *node.Node) (task.Args, error) {
	args := make(task.Args, len(n.Task.Bindings))
	for _, b := range n.Task.Bindings {
		if b.IsLiteral {
			args[b.Param] = b.Literal
			continue
		}

		dep, ok := e.store.Get(ctx, b.Ref)
		if !ok {
			return nil, fmt.Errorf("%w: node %q references unregistered %q", dagerr.ErrInvariantViolated, n.Name, b.Ref)
		}
		if !dep.IsMaterialized() {
			return nil, fmt.Errorf("%w: node %q evaluated before its dependency %q (%s)", dagerr.ErrInvariantViolated, n.Name, b.Ref, dep.GetState())
		}
		args[b.Param] = dep.Value
	}
	return args, nil
}

// invoke calls fn, turning a panic into an error so that a misbehaving
// transformation fails its node instead of the process.
func invoke(fn task.Fn, args task.Args) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(args)
}
