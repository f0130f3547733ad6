// Package scheduler computes the evaluation order of a dependency graph.
//
// # How It Works
//
//  1. Every edge target is checked against the registered names, so a typo
//     is reported as an unresolved reference naming both the node and the
//     missing target, rather than as a generic ordering failure.
//  2. Names are interned into an arena of indices (their registration
//     position) and Kahn's algorithm runs over it with a min-heap as the
//     ready queue. Among nodes whose dependencies are all satisfied, the one
//     registered first is always emitted first, which makes the order
//     reproducible across runs and processes.
//  3. If Kahn's algorithm stalls, the nodes left over contain at least one
//     cycle. A breadth-first search from each of them finds the shortest
//     cycle, which is reported member by member.
//
// The scheduler is a pure function of the graph: it never touches the
// registry and never invokes a transformation.
package scheduler
