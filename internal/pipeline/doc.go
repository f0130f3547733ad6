// Package pipeline loads derivation pipelines written in HCL and registers
// them with an engine.
//
// A pipeline file declares scalars, tasks and, optionally, the default
// output selection:
//
//	scalar "S" {
//	  value = 10
//	}
//
//	task "D" {
//	  function = "add_scalar"
//	  args     = { series = A, scalar_to_add = "S" }
//	}
//
//	task "half" {
//	  function = "scale"
//	  args     = { series = node["Unit Price"] }
//	  literals = { factor = 0.5 }
//	}
//
//	output {
//	  columns = ["D", "half"]
//	}
//
// Entries of args are node references, written either as a bare traversal,
// as node["name"] for names that are not identifiers, or as a quoted string.
// Entries of literals are constant values converted to the declared type of
// the parameter. Declarations are registered in file order; files found in
// a directory are read in lexical order.
package pipeline
