package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/lazyframe/internal/dagerr"
	"github.com/specialistvlad/lazyframe/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func position(order []string) map[string]int {
	pos := make(map[string]int, len(order))
	for i, name := range order {
		pos[name] = i
	}
	return pos
}

func TestOrder(t *testing.T) {
	testCases := []struct {
		name     string
		graph    *graph.Graph
		expected []string
	}{
		{
			name:     "empty graph",
			graph:    &graph.Graph{},
			expected: []string{},
		},
		{
			name:     "no edges keeps registration order",
			graph:    &graph.Graph{Nodes: []string{"c", "a", "b"}},
			expected: []string{"c", "a", "b"},
		},
		{
			name: "pipeline example",
			graph: &graph.Graph{
				Nodes: []string{"A", "B", "C", "S", "S2", "D", "E", "F", "G"},
				Edges: map[string][]string{
					"D": {"A", "S"},
					"E": {"B", "D"},
					"F": {"C", "S2"},
					"G": {"E", "F"},
				},
			},
			expected: []string{"A", "B", "C", "S", "S2", "D", "E", "F", "G"},
		},
		{
			name: "forward declaration is ordered after its dependency",
			graph: &graph.Graph{
				Nodes: []string{"total", "x", "y"},
				Edges: map[string][]string{"total": {"x", "y"}},
			},
			expected: []string{"x", "y", "total"},
		},
		{
			name: "ties go to the earliest registration",
			graph: &graph.Graph{
				Nodes: []string{"late", "root", "early"},
				Edges: map[string][]string{
					"late":  {"root"},
					"early": {"root"},
				},
			},
			expected: []string{"root", "late", "early"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order, err := Order(context.Background(), tc.graph)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, order); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}

			pos := position(order)
			for n, deps := range tc.graph.Edges {
				for _, dep := range deps {
					assert.Less(t, pos[dep], pos[n], "%s must come after %s", n, dep)
				}
			}
		})
	}
}

func TestOrderIsDeterministic(t *testing.T) {
	build := func() *graph.Graph {
		return &graph.Graph{
			Nodes: []string{"a", "b", "c", "d", "e", "f"},
			Edges: map[string][]string{
				"d": {"a", "b"},
				"e": {"c"},
				"f": {"d", "e"},
			},
		}
	}

	first, err := Order(context.Background(), build())
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := Order(context.Background(), build())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestOrderUnresolvedReference(t *testing.T) {
	g := &graph.Graph{
		Nodes: []string{"A", "D", "G"},
		Edges: map[string][]string{
			"D": {"A", "S"},
			"G": {"nope"},
		},
	}

	_, err := Order(context.Background(), g)
	require.Error(t, err)

	var target *dagerr.UnresolvedReference
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "D", target.Node)
	assert.Equal(t, "S", target.Target)
}

func TestOrderCycles(t *testing.T) {
	testCases := []struct {
		name     string
		graph    *graph.Graph
		expected []string
	}{
		{
			name: "two node cycle",
			graph: &graph.Graph{
				Nodes: []string{"A", "B"},
				Edges: map[string][]string{"A": {"B"}, "B": {"A"}},
			},
			expected: []string{"A", "B"},
		},
		{
			name: "self reference",
			graph: &graph.Graph{
				Nodes: []string{"x", "A"},
				Edges: map[string][]string{"A": {"A"}},
			},
			expected: []string{"A"},
		},
		{
			name: "shortest cycle is reported",
			graph: &graph.Graph{
				Nodes: []string{"a", "b", "c", "d"},
				Edges: map[string][]string{
					"a": {"b"},
					"b": {"c"},
					"c": {"d"},
					"d": {"a", "c"},
				},
			},
			expected: []string{"c", "d"},
		},
		{
			name: "cycle in a disjoint component",
			graph: &graph.Graph{
				Nodes: []string{"a", "b", "x", "y", "z", "tail"},
				Edges: map[string][]string{
					"b":    {"a"},
					"x":    {"z"},
					"y":    {"x"},
					"z":    {"y"},
					"tail": {"z"},
				},
			},
			expected: []string{"x", "z", "y"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Order(context.Background(), tc.graph)
			require.Error(t, err)
			assert.ErrorIs(t, err, dagerr.ErrCyclicDependency)

			var target *dagerr.CyclicDependency
			require.True(t, errors.As(err, &target))
			assert.Equal(t, tc.expected, target.Cycle)
		})
	}
}
