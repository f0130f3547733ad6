// Package resolver classifies the values supplied for a task's parameters
// into node references and inline literals, using the function's declared
// signature.
//
// The classification runs once, when the task is registered, so a mismatch
// between a function and its bindings is reported before anything is built
// or evaluated.
package resolver

import (
	"errors"
	"fmt"
	"sort"

	"github.com/specialistvlad/lazyframe/internal/dagerr"
	"github.com/specialistvlad/lazyframe/internal/nodeid"
	"github.com/specialistvlad/lazyframe/internal/task"
)

// Resolve checks supplied against the declared parameters of fn and returns
// the bindings in declaration order.
//
// A supplied string or nodeid.Ref becomes a reference to the node of that
// name; a nodeid.Lit is passed through unchanged. Every mismatch found is
// reported, joined into a single error.
func Resolve(fn *task.Func, supplied map[string]any) (task.Bindings, error) {
	if fn == nil || fn.Fn == nil {
		return nil, dagerr.ErrNilFunc
	}
	if err := checkSignature(fn); err != nil {
		return nil, err
	}

	var errs []error
	declared := make(map[string]struct{}, len(fn.Params))
	bindings := make(task.Bindings, 0, len(fn.Params))

	for _, p := range fn.Params {
		declared[p.Name] = struct{}{}

		if !p.Type.Supported() {
			errs = append(errs, &dagerr.UnsupportedParameterType{Func: fn.Name, Param: p.Name, Type: p.Type.String()})
			continue
		}

		value, ok := supplied[p.Name]
		if !ok {
			errs = append(errs, &dagerr.MissingBinding{Func: fn.Name, Param: p.Name})
			continue
		}

		binding, err := classify(p, value)
		if err != nil {
			errs = append(errs, fmt.Errorf("function %q parameter %q: %w", fn.Name, p.Name, err))
			continue
		}
		bindings = append(bindings, binding)
	}

	// Sorted so that the joined error reads the same on every call.
	unknown := make([]string, 0)
	for name := range supplied {
		if _, ok := declared[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		errs = append(errs, &dagerr.UnknownParameter{Func: fn.Name, Param: name})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return bindings, nil
}

// classify turns one supplied value into a binding for p.
func classify(p task.Param, value any) (task.Binding, error) {
	binding := task.Binding{Param: p.Name, Type: p.Type}

	switch v := value.(type) {
	case string:
		ref, err := nodeid.Parse(v)
		if err != nil {
			return binding, err
		}
		binding.Ref = ref.String()
	case nodeid.Ref:
		ref, err := nodeid.Parse(string(v))
		if err != nil {
			return binding, err
		}
		binding.Ref = ref.String()
	case nodeid.Lit:
		binding.Literal = v.Value
		binding.IsLiteral = true
	default:
		return binding, fmt.Errorf("%w: got %T, want a node name or nodeid.Literal", dagerr.ErrUnsupportedBinding, value)
	}
	return binding, nil
}

// checkSignature rejects functions whose declared parameters cannot be bound
// unambiguously.
func checkSignature(fn *task.Func) error {
	seen := make(map[string]struct{}, len(fn.Params))
	for _, p := range fn.Params {
		if p.Name == "" {
			return fmt.Errorf("%w: function %q declares a parameter without a name", dagerr.ErrInvalidSignature, fn.Name)
		}
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("%w: function %q declares parameter %q twice", dagerr.ErrInvalidSignature, fn.Name, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}
