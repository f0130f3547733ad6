// Package engine is the public face of the derivation engine. It ties the
// node registry, the graph builder, the scheduler, the executor and the
// output collector together behind a small register/run/collect API.
//
// A typical session registers raw input columns, scalars and derived tasks
// in any order, calls Run once, and reads the results back with Collect:
//
//	e := engine.New()
//	_ = e.RegisterInput(ctx, "A", []float64{1, 2, 3})
//	_ = e.RegisterScalar(ctx, "S", 10)
//	_ = e.RegisterTask(ctx, "D", addScalar, map[string]any{
//		"series":        nodeid.Reference("A"),
//		"scalar_to_add": "S",
//	})
//	if err := e.Run(ctx); err != nil { ... }
//	cols, _ := e.Collect(ctx, "D")
//
// Validation that needs the whole graph (missing references, cycles) is
// deferred to Run, so tasks may refer to names registered after them.
// Nothing is evaluated unless the whole graph is valid, and every task is
// evaluated at most once per engine: a second Run is a no-op for nodes that
// are already materialized.
//
// Once a run completes the registry is read-only and registration returns
// dagerr.ErrRegistryReadOnly, so collected values always match their current
// dependencies. A run that fails while evaluating a task leaves the engine in
// a failed state. In both cases start over with a fresh engine to change the
// graph.
//
// An Engine is not safe for concurrent use.
package engine
