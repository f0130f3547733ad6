// Package nodestore defines the storage interface behind the node registry.
//
// # Why Node Store Exists
//
// The registry owns every node of a pipeline: raw inputs, scalars and pending
// tasks. Keeping the storage behind an interface separates the registration
// rules (validation, binding classification) from the mechanics of keeping
// nodes, and lets tests inject a store to inspect what the engine wrote.
//
// # Lifecycle and Usage
//
// The store is:
//  1. **Created** empty, once per engine
//  2. **Populated** by the registry (inputs in bulk, scalars and tasks one by one)
//  3. **Mutated** in place by the evaluator (Pending → Materialized)
//  4. **Read** by the graph builder and the output collector
//
// # Ordering
//
// All returns nodes in first-registration order. Re-registering a name
// replaces the node but keeps its original position and sequence number, so
// the scheduler's tie-break stays stable across overwrites.
//
// # Concurrency
//
// Implementations need no locking. The engine has a single writer (the
// evaluator during a run, the caller otherwise); a future parallel evaluator
// must keep that discipline per node.
package nodestore

import (
	"context"

	"github.com/specialistvlad/lazyframe/internal/node"
)

// Store keeps the nodes of one registry.
type Store interface {
	// Put inserts n, or replaces the node with the same name. It assigns
	// n.Seq and reports whether an existing node was replaced.
	Put(ctx context.Context, n *node.Node) (replaced bool)

	// Get retrieves a node by name.
	Get(ctx context.Context, name string) (*node.Node, bool)

	// All returns a snapshot of every node in first-registration order.
	All(ctx context.Context) []*node.Node

	// Len returns the number of registered names.
	Len(ctx context.Context) int
}
