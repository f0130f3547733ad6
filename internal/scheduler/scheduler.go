package scheduler

import (
	"container/heap"
	"context"

	"github.com/specialistvlad/lazyframe/internal/ctxlog"
	"github.com/specialistvlad/lazyframe/internal/dagerr"
	"github.com/specialistvlad/lazyframe/internal/graph"
)

// arena is the interned form of a graph. Index i is the i-th registered name.
type arena struct {
	names      []string
	deps       [][]int // node -> nodes it depends on
	dependents [][]int // node -> nodes depending on it
}

// Order returns every node of g, each one after all the nodes it depends on.
func Order(ctx context.Context, g *graph.Graph) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Scheduler: Ordering graph.", "node_count", g.Len())

	a, err := intern(g)
	if err != nil {
		return nil, err
	}

	order := a.topoOrder()
	if len(order) != len(a.names) {
		cycle := a.shortestCycle(order)
		logger.Debug("Scheduler: Cycle detected.", "cycle", cycle)
		return nil, &dagerr.CyclicDependency{Cycle: cycle}
	}

	names := make([]string, len(order))
	for i, idx := range order {
		names[i] = a.names[idx]
	}
	logger.Debug("Scheduler: Order computed.", "order", names)
	return names, nil
}

// intern maps names to indices, failing on the first reference to a name
// that is not part of the graph.
func intern(g *graph.Graph) (*arena, error) {
	index := make(map[string]int, len(g.Nodes))
	for i, name := range g.Nodes {
		index[name] = i
	}

	a := &arena{
		names:      g.Nodes,
		deps:       make([][]int, len(g.Nodes)),
		dependents: make([][]int, len(g.Nodes)),
	}
	for i, name := range g.Nodes {
		for _, target := range g.Edges[name] {
			j, ok := index[target]
			if !ok {
				return nil, &dagerr.UnresolvedReference{Node: name, Target: target}
			}
			a.deps[i] = append(a.deps[i], j)
			a.dependents[j] = append(a.dependents[j], i)
		}
	}
	return a, nil
}

// topoOrder runs Kahn's algorithm. The ready queue is a min-heap by
// registration index. Nodes on or behind a cycle are left out.
func (a *arena) topoOrder() []int {
	indeg := make([]int, len(a.names))
	for i := range a.deps {
		indeg[i] = len(a.deps[i])
	}

	ready := &intMinHeap{}
	for i, d := range indeg {
		if d == 0 {
			heap.Push(ready, i)
		}
	}

	order := make([]int, 0, len(a.names))
	for ready.Len() > 0 {
		n := heap.Pop(ready).(int)
		order = append(order, n)
		for _, m := range a.dependents[n] {
			indeg[m]--
			if indeg[m] == 0 {
				heap.Push(ready, m)
			}
		}
	}
	return order
}

// shortestCycle returns a minimal cycle among the nodes Kahn's algorithm
// could not order. The cycle starts at its earliest registered member and
// follows dependency edges.
func (a *arena) shortestCycle(ordered []int) []string {
	done := make([]bool, len(a.names))
	for _, idx := range ordered {
		done[idx] = true
	}

	var best []int
	for start := range a.names {
		if done[start] {
			continue
		}
		if c := a.cycleThrough(start, done); c != nil && (best == nil || len(c) < len(best)) {
			best = c
		}
	}

	cycle := make([]string, len(best))
	for i, idx := range best {
		cycle[i] = a.names[idx]
	}
	return cycle
}

// cycleThrough finds the shortest cycle containing start with a BFS along
// dependency edges, skipping nodes in done.
func (a *arena) cycleThrough(start int, done []bool) []int {
	parent := map[int]int{start: -1}
	queue := []int{start}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range a.deps[u] {
			if done[v] {
				continue
			}
			if v == start {
				var path []int
				for cur := u; cur != -1; cur = parent[cur] {
					path = append(path, cur)
				}
				// path runs u ... start; reverse it to start ... u.
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path
			}
			if _, seen := parent[v]; !seen {
				parent[v] = u
				queue = append(queue, v)
			}
		}
	}
	return nil
}

type intMinHeap []int

func (h intMinHeap) Len() int           { return len(h) }
func (h intMinHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h intMinHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *intMinHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *intMinHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
