// Package graph derives the dependency edge set of a registry.
//
// # Why Graph Package Exists
//
// Edges are never stored on their own. They are recomputed from the nodes'
// bindings every time they are needed, so the edge set and the node bodies
// cannot drift apart when a name is re-registered.
//
// # Edge Direction
//
// Edges point from a node to the nodes it depends on:
//
//	E = multiply(series1=B, series2=D)   ⇒   Edges["E"] = ["B", "D"]
//
// Materialized nodes (inputs, scalars, already evaluated tasks) have no edges.
// Targets are taken verbatim from the bindings; whether they exist is checked
// by the scheduler, which reports the offending node and name.
package graph
