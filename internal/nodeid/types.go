// internal/nodeid/types.go
package nodeid

// Ref is a typed pointer, by name, to another node in the registry.
type Ref string

// Reference returns a Ref to the named node.
func Reference(name string) Ref {
	return Ref(name)
}

// String returns the referenced node name.
func (r Ref) String() string {
	return string(r)
}

// Lit is an inline constant bound directly to a parameter.
type Lit struct {
	Value any
}

// Literal wraps v so that it is passed to the function unchanged.
func Literal(v any) Lit {
	return Lit{Value: v}
}
