// Package collector reads materialized values back out of a node store in
// the order the caller asked for them.
package collector

import (
	"context"
	"errors"

	"github.com/specialistvlad/lazyframe/internal/dagerr"
	"github.com/specialistvlad/lazyframe/internal/node"
	"github.com/specialistvlad/lazyframe/internal/nodestore"
)

// Column is one named output value.
type Column struct {
	Name  string
	Value any
}

// Collect returns the values of names, in the order given. Every name must be
// registered and materialized; all offending names are reported together.
// Duplicate names yield duplicate columns.
func Collect(ctx context.Context, store nodestore.Store, names ...string) ([]Column, error) {
	cols := make([]Column, 0, len(names))
	var errs []error

	for _, name := range names {
		n, ok := store.Get(ctx, name)
		if !ok {
			errs = append(errs, &dagerr.UnknownNode{Name: name})
			continue
		}
		if !n.IsMaterialized() {
			errs = append(errs, &dagerr.OutputNotMaterialized{Name: name, State: n.GetState().String()})
			continue
		}
		cols = append(cols, Column{Name: name, Value: n.Value})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cols, nil
}

// Derived returns the names of every scalar and task node in registration
// order. Raw inputs are left out.
func Derived(ctx context.Context, store nodestore.Store) []string {
	var names []string
	for _, n := range store.All(ctx) {
		if n.Kind != node.InputNode {
			names = append(names, n.Name)
		}
	}
	return names
}

// All returns the names of every node in registration order.
func All(ctx context.Context, store nodestore.Store) []string {
	nodes := store.All(ctx)
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name
	}
	return names
}

// Map is a convenience view of cols keyed by name. Later duplicates win.
func Map(cols []Column) map[string]any {
	out := make(map[string]any, len(cols))
	for _, c := range cols {
		out[c.Name] = c.Value
	}
	return out
}
