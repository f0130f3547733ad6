// Package task describes transformation functions: their declared signature,
// the arguments they receive, and the bindings that connect their parameters
// to nodes of the graph.
package task

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Type is the declared type of a function parameter.
type Type int

const (
	// Invalid is the zero Type; it is never supported.
	Invalid Type = iota
	// Column is a columnar value, e.g. a series of numbers.
	Column
	// Integer is an integral scalar.
	Integer
	// Float is a floating-point scalar.
	Float
	// Bool is a flag. Flags cannot carry references and are rejected.
	Bool
	// String is free text. It cannot carry references and is rejected.
	String
	// Any is an untyped parameter. It is rejected.
	Any
)

var typeNames = map[Type]string{
	Invalid: "invalid",
	Column:  "column",
	Integer: "integer",
	Float:   "float",
	Bool:    "bool",
	String:  "string",
	Any:     "any",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Supported reports whether a parameter of this type may be bound to a node.
func (t Type) Supported() bool {
	switch t {
	case Column, Integer, Float:
		return true
	default:
		return false
	}
}

// CtyType is the cty type a literal for this parameter is converted to.
func (t Type) CtyType() cty.Type {
	switch t {
	case Column:
		return cty.List(cty.Number)
	case Integer, Float:
		return cty.Number
	case Bool:
		return cty.Bool
	case String:
		return cty.String
	default:
		return cty.DynamicPseudoType
	}
}

// ParseType maps a type keyword to a Type.
func ParseType(s string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for t, name := range typeNames {
		if t != Invalid && name == key {
			return t, nil
		}
	}
	return Invalid, fmt.Errorf("unknown parameter type %q", s)
}

// Param is one declared parameter of a function.
type Param struct {
	Name string
	Type Type
}

// Args holds the resolved arguments of a single invocation, keyed by
// parameter name.
type Args map[string]any

// Fn is the body of a transformation. It must be pure: the engine calls it at
// most once per node and memoizes the result.
type Fn func(args Args) (any, error)

// Func is a transformation function together with its declared signature.
type Func struct {
	Name   string
	Params []Param
	Fn     Fn
}

// New declares a function.
func New(name string, fn Fn, params ...Param) *Func {
	return &Func{Name: name, Params: params, Fn: fn}
}

// Binding connects one parameter to either a node (Ref) or an inline value.
type Binding struct {
	Param     string
	Type      Type
	Ref       string
	Literal   any
	IsLiteral bool
}

// Bindings are ordered by the function's declared parameter order.
type Bindings []Binding

// Refs returns the referenced node names in binding order, without
// duplicates.
func (b Bindings) Refs() []string {
	seen := make(map[string]struct{}, len(b))
	refs := make([]string, 0, len(b))
	for _, binding := range b {
		if binding.IsLiteral {
			continue
		}
		if _, ok := seen[binding.Ref]; ok {
			continue
		}
		seen[binding.Ref] = struct{}{}
		refs = append(refs, binding.Ref)
	}
	return refs
}

// Spec is a pending computation: a function and its classified bindings.
type Spec struct {
	Func     *Func
	Bindings Bindings
}
