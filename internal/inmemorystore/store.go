package inmemorystore

import (
	"context"

	"github.com/specialistvlad/lazyframe/internal/node"
	"github.com/specialistvlad/lazyframe/internal/nodestore"
)

// Store is an in-memory nodestore.Store backed by a map for lookups and a
// slice for registration order.
//
// It is not safe for concurrent mutation; the engine guarantees a single
// writer.
type Store struct {
	nodes map[string]*node.Node
	order []string // first-registration order; index == Seq
}

// New creates a new, empty in-memory node store.
func New() nodestore.Store {
	return &Store{
		nodes: make(map[string]*node.Node),
	}
}

// Put inserts or replaces a node, keeping the name's original position.
func (s *Store) Put(ctx context.Context, n *node.Node) bool {
	if existing, ok := s.nodes[n.Name]; ok {
		n.Seq = existing.Seq
		s.nodes[n.Name] = n
		return true
	}
	n.Seq = len(s.order)
	s.order = append(s.order, n.Name)
	s.nodes[n.Name] = n
	return false
}

// Get retrieves a node by name.
func (s *Store) Get(ctx context.Context, name string) (*node.Node, bool) {
	n, ok := s.nodes[name]
	return n, ok
}

// All returns every node in first-registration order.
func (s *Store) All(ctx context.Context) []*node.Node {
	nodes := make([]*node.Node, 0, len(s.order))
	for _, name := range s.order {
		nodes = append(nodes, s.nodes[name])
	}
	return nodes
}

// Len returns the number of registered names.
func (s *Store) Len(ctx context.Context) int {
	return len(s.order)
}
