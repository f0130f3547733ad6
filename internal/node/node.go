// Package node defines the central entity of the engine: a named value that
// is either already materialized or pending computation.
package node

import (
	"sync/atomic"

	"github.com/specialistvlad/lazyframe/internal/task"
)

// Kind records how a node entered the registry.
type Kind int

const (
	// InputNode is a raw column taken from the source table.
	InputNode Kind = iota
	// ScalarNode is a declared constant.
	ScalarNode
	// TaskNode is derived by applying a function to other nodes.
	TaskNode
)

func (k Kind) String() string {
	switch k {
	case InputNode:
		return "input"
	case ScalarNode:
		return "scalar"
	case TaskNode:
		return "task"
	default:
		return "unknown"
	}
}

// State represents the evaluation state of a node.
type State int32

const (
	// Pending indicates the node has a function that has not run yet.
	Pending State = iota
	// Evaluating is transient: the function of the node is being invoked.
	Evaluating
	// Materialized indicates Value holds the node's final value.
	Materialized
	// Failed indicates the node's function returned an error.
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Evaluating:
		return "evaluating"
	case Materialized:
		return "materialized"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Node is a single vertex of the graph.
type Node struct {
	// Name is the unique key of the node in the registry.
	Name string
	// Kind distinguishes inputs, scalars and derived tasks.
	Kind Kind
	// Seq is the position of the name's first registration. The store
	// assigns it; overwrites keep the original value.
	Seq int

	// Task holds the function and bindings. It is nil for inputs and scalars.
	Task *task.Spec

	// Value is the node's value once Materialized. The engine never inspects it.
	Value any
	// Error stores the failure of the node's function.
	Error error

	state atomic.Int32
}

// NewInput creates a materialized node for a raw input column.
func NewInput(name string, value any) *Node {
	n := &Node{Name: name, Kind: InputNode, Value: value}
	n.SetState(Materialized)
	return n
}

// NewScalar creates a materialized node for a declared scalar.
func NewScalar(name string, value any) *Node {
	n := &Node{Name: name, Kind: ScalarNode, Value: value}
	n.SetState(Materialized)
	return n
}

// NewTask creates a pending node for a derived value.
func NewTask(name string, spec *task.Spec) *Node {
	n := &Node{Name: name, Kind: TaskNode, Task: spec}
	n.SetState(Pending)
	return n
}

// SetState atomically sets the node's state.
func (n *Node) SetState(s State) {
	n.state.Store(int32(s))
}

// GetState atomically retrieves the node's state.
func (n *Node) GetState() State {
	return State(n.state.Load())
}

// IsMaterialized reports whether Value is final.
func (n *Node) IsMaterialized() bool {
	return n.GetState() == Materialized
}

// Materialize records the computed value. It is the only transition into
// Materialized for task nodes.
func (n *Node) Materialize(v any) {
	n.Value = v
	n.Error = nil
	n.SetState(Materialized)
}

// Fail records the failure of the node's function.
func (n *Node) Fail(err error) {
	n.Error = err
	n.SetState(Failed)
}

// Dependencies returns the names this node references, in binding order.
// Materialized nodes have none: their value no longer depends on anything.
func (n *Node) Dependencies() []string {
	if n.IsMaterialized() || n.Task == nil {
		return nil
	}
	return n.Task.Bindings.Refs()
}
