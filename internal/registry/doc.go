// Package registry implements the node registry: the single owner of every
// named value in a pipeline.
//
// Raw input columns and scalars enter the registry already materialized.
// Tasks enter it pending, with their bindings classified by the resolver at
// registration time. References are not checked here; a task may name a node
// that is registered later, and unresolved names are reported when the graph
// is scheduled.
//
// Registering a name twice replaces the earlier node (last write wins). This
// is the caller's responsibility and is only logged at debug level.
package registry
