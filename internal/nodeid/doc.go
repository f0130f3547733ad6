// internal/nodeid/doc.go

/*
Package nodeid provides the value references used to bind a task's parameters
to other nodes of the graph.

A binding is either a Ref, naming another node (a raw input column, a scalar,
or the output of another task) and resolved only at evaluation time, or a Lit,
an inline constant that never takes part in graph resolution. The registrant
chooses the tag explicitly; nothing is inferred from the Go type of a value.

In pipeline files a reference is written either as a bare identifier (`A`) or,
for names that are not valid identifiers, with the `node` index form
(`node["Unit Price"]`).
*/
package nodeid
