package graph

import (
	"context"

	"github.com/specialistvlad/lazyframe/internal/ctxlog"
	"github.com/specialistvlad/lazyframe/internal/nodestore"
)

// Graph is a snapshot of the dependency structure of a registry.
type Graph struct {
	// Nodes lists every registered name in first-registration order.
	Nodes []string
	// Edges maps a node to the names it references, in binding order.
	Edges map[string][]string
}

// Build derives the graph from the nodes currently in store.
func Build(ctx context.Context, store nodestore.Store) *Graph {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.")

	all := store.All(ctx)
	g := &Graph{
		Nodes: make([]string, 0, len(all)),
		Edges: make(map[string][]string, len(all)),
	}

	edgeCount := 0
	for _, n := range all {
		g.Nodes = append(g.Nodes, n.Name)
		deps := n.Dependencies()
		if len(deps) > 0 {
			g.Edges[n.Name] = deps
			edgeCount += len(deps)
		}
	}

	logger.Debug("Build: Graph construction complete.", "node_count", len(g.Nodes), "edge_count", edgeCount)
	return g
}

// Dependencies returns the names that the given node depends on.
func (g *Graph) Dependencies(name string) []string {
	return g.Edges[name]
}

// Dependents returns the nodes that reference name, in registration order.
func (g *Graph) Dependents(name string) []string {
	var dependents []string
	for _, n := range g.Nodes {
		for _, dep := range g.Edges[n] {
			if dep == name {
				dependents = append(dependents, n)
				break
			}
		}
	}
	return dependents
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.Nodes)
}
