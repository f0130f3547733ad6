// Package dagerr defines the error taxonomy shared by every stage of the
// engine: registration, graph construction, scheduling, evaluation and
// output assembly.
//
// Each failure kind is a typed error carrying the offending names and
// unwrapping to a sentinel, so callers can use either errors.As (for the
// details) or errors.Is (for the kind).
package dagerr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedParameterType = errors.New("unsupported parameter type")
	ErrMissingBinding           = errors.New("missing binding")
	ErrUnknownParameter         = errors.New("unknown parameter")
	ErrUnresolvedReference      = errors.New("unresolved reference")
	ErrCyclicDependency         = errors.New("cyclic dependency")
	ErrTaskExecution            = errors.New("task execution failed")
	ErrOutputNotMaterialized    = errors.New("output not materialized")
	ErrUnknownNode              = errors.New("unknown node")

	ErrEmptyName          = errors.New("node name cannot be empty")
	ErrNilFunc            = errors.New("task function cannot be nil")
	ErrInvalidSignature   = errors.New("invalid function signature")
	ErrUnsupportedBinding = errors.New("unsupported binding value")
	ErrInvariantViolated  = errors.New("internal invariant violated")
	ErrRegistryFailed     = errors.New("registry is in a failed state")
	ErrRunInProgress      = errors.New("run already in progress")
	ErrRegistryReadOnly   = errors.New("registry is read-only after a completed run")
)

// UnsupportedParameterType is returned when a function declares a parameter
// whose type cannot carry a node reference.
type UnsupportedParameterType struct {
	Func  string
	Param string
	Type  string
}

func (e *UnsupportedParameterType) Error() string {
	return fmt.Sprintf("%s: function %q parameter %q has type %s", ErrUnsupportedParameterType, e.Func, e.Param, e.Type)
}

func (e *UnsupportedParameterType) Unwrap() error { return ErrUnsupportedParameterType }

// MissingBinding is returned when a declared parameter has no supplied value.
type MissingBinding struct {
	Func  string
	Param string
}

func (e *MissingBinding) Error() string {
	return fmt.Sprintf("%s: function %q parameter %q has no binding", ErrMissingBinding, e.Func, e.Param)
}

func (e *MissingBinding) Unwrap() error { return ErrMissingBinding }

// UnknownParameter is returned when a supplied keyword matches no declared
// parameter.
type UnknownParameter struct {
	Func  string
	Param string
}

func (e *UnknownParameter) Error() string {
	return fmt.Sprintf("%s: function %q has no parameter named %q", ErrUnknownParameter, e.Func, e.Param)
}

func (e *UnknownParameter) Unwrap() error { return ErrUnknownParameter }

// UnresolvedReference is returned when a binding of Node points at a Target
// that was never registered.
type UnresolvedReference struct {
	Node   string
	Target string
}

func (e *UnresolvedReference) Error() string {
	return fmt.Sprintf("%s: node %q depends on %q, which is not registered", ErrUnresolvedReference, e.Node, e.Target)
}

func (e *UnresolvedReference) Unwrap() error { return ErrUnresolvedReference }

// CyclicDependency carries one minimal cycle. Cycle lists each member once,
// each entry depending on the next and the last depending on the first.
type CyclicDependency struct {
	Cycle []string
}

func (e *CyclicDependency) Error() string {
	if len(e.Cycle) == 0 {
		return ErrCyclicDependency.Error()
	}
	path := append(append([]string{}, e.Cycle...), e.Cycle[0])
	return fmt.Sprintf("%s: %s", ErrCyclicDependency, strings.Join(path, " -> "))
}

func (e *CyclicDependency) Unwrap() error { return ErrCyclicDependency }

// TaskExecutionError wraps the failure of a transformation function with the
// name of the node being evaluated.
type TaskExecutionError struct {
	Node string
	Err  error
}

func (e *TaskExecutionError) Error() string {
	return fmt.Sprintf("%s: node %q: %v", ErrTaskExecution, e.Node, e.Err)
}

// Unwrap exposes both the kind and the underlying cause.
func (e *TaskExecutionError) Unwrap() []error { return []error{ErrTaskExecution, e.Err} }

// OutputNotMaterialized is returned when a requested output has no value.
type OutputNotMaterialized struct {
	Name  string
	State string
}

func (e *OutputNotMaterialized) Error() string {
	return fmt.Sprintf("%s: %q is %s", ErrOutputNotMaterialized, e.Name, e.State)
}

func (e *OutputNotMaterialized) Unwrap() error { return ErrOutputNotMaterialized }

// UnknownNode is returned by lookups of names absent from the registry.
type UnknownNode struct {
	Name string
}

func (e *UnknownNode) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownNode, e.Name)
}

func (e *UnknownNode) Unwrap() error { return ErrUnknownNode }
