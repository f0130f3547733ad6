package pipeline

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/lazyframe/internal/nodeid"
	"github.com/specialistvlad/lazyframe/internal/task"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// bindArgs merges the args and literals maps of a task block into the
// supplied-arguments map the registry expects.
func bindArgs(fn *task.Func, argsExpr, literalsExpr hcl.Expression) (map[string]any, hcl.Diagnostics) {
	supplied := make(map[string]any)
	var diags hcl.Diagnostics

	refs, moreDiags := exprPairs(argsExpr)
	diags = append(diags, moreDiags...)
	for _, kv := range refs {
		ref, err := reference(kv.value)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid reference",
				Detail:   fmt.Sprintf("Argument %q: %s.", kv.key, err),
				Subject:  kv.value.Range().Ptr(),
			})
			continue
		}
		supplied[kv.key] = ref
	}

	lits, moreDiags := exprPairs(literalsExpr)
	diags = append(diags, moreDiags...)
	for _, kv := range lits {
		if _, dup := supplied[kv.key]; dup {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate argument",
				Detail:   fmt.Sprintf("Argument %q is set in both args and literals.", kv.key),
				Subject:  kv.value.Range().Ptr(),
			})
			continue
		}

		val, valDiags := kv.value.Value(nil)
		if valDiags.HasErrors() {
			diags = append(diags, valDiags...)
			continue
		}

		goVal, err := literal(fn, kv.key, val)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid literal",
				Detail:   fmt.Sprintf("Argument %q: %s.", kv.key, err),
				Subject:  kv.value.Range().Ptr(),
			})
			continue
		}
		supplied[kv.key] = nodeid.Literal(goVal)
	}

	return supplied, diags
}

type pair struct {
	key   string
	value hcl.Expression
}

// exprPairs reads an object expression. An absent attribute yields nothing.
func exprPairs(expr hcl.Expression) ([]pair, hcl.Diagnostics) {
	if expr == nil || isNull(expr) {
		return nil, nil
	}

	items, diags := hcl.ExprMap(expr)
	if diags.HasErrors() {
		return nil, diags
	}

	pairs := make([]pair, 0, len(items))
	for _, item := range items {
		key := hcl.ExprAsKeyword(item.Key)
		if key == "" {
			v, keyDiags := item.Key.Value(nil)
			if keyDiags.HasErrors() || v.IsNull() || !v.Type().Equals(cty.String) {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid argument name",
					Detail:   "Argument names must be identifiers or strings.",
					Subject:  item.Key.Range().Ptr(),
				})
				continue
			}
			key = v.AsString()
		}
		pairs = append(pairs, pair{key: key, value: item.Value})
	}
	return pairs, diags
}

// reference accepts a quoted node name or a traversal.
func reference(expr hcl.Expression) (nodeid.Ref, error) {
	if v, diags := expr.Value(nil); !diags.HasErrors() {
		if v.IsNull() || !v.Type().Equals(cty.String) {
			return "", fmt.Errorf("expected a node reference, got %s", v.Type().FriendlyName())
		}
		return nodeid.Parse(v.AsString())
	}

	traversal, diags := hcl.AbsTraversalForExpr(expr)
	if diags.HasErrors() {
		return "", fmt.Errorf("expected a node name or %s[\"name\"]", nodeid.IndexRoot)
	}
	return nodeid.FromTraversal(traversal)
}

// literal converts val to the Go representation of the declared type of
// param. Values for undeclared parameters are passed through so that the
// registry reports them.
func literal(fn *task.Func, param string, val cty.Value) (any, error) {
	if !val.IsWhollyKnown() || val.IsNull() {
		return nil, fmt.Errorf("value must be known and not null")
	}

	typ := task.Invalid
	for _, p := range fn.Params {
		if p.Name == param {
			typ = p.Type
			break
		}
	}

	switch typ {
	case task.Column:
		converted, err := convert.Convert(val, typ.CtyType())
		if err != nil {
			return nil, err
		}
		var series []float64
		if err := gocty.FromCtyValue(converted, &series); err != nil {
			return nil, err
		}
		return series, nil
	case task.Integer:
		converted, err := convert.Convert(val, typ.CtyType())
		if err != nil {
			return nil, err
		}
		var n int64
		if err := gocty.FromCtyValue(converted, &n); err != nil {
			return nil, err
		}
		return n, nil
	case task.Float:
		converted, err := convert.Convert(val, typ.CtyType())
		if err != nil {
			return nil, err
		}
		var f float64
		if err := gocty.FromCtyValue(converted, &f); err != nil {
			return nil, err
		}
		return f, nil
	default:
		return generic(val)
	}
}

// scalarValue evaluates the value of a scalar block. Whole numbers become
// int64, other numbers float64.
func scalarValue(expr hcl.Expression) (any, hcl.Diagnostics) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() || !val.IsKnown() || !val.Type().Equals(cty.Number) {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid scalar value",
			Detail:   fmt.Sprintf("A scalar must be a number, got %s.", val.Type().FriendlyName()),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return number(val.AsBigFloat()), nil
}

// generic maps a cty value without a declared target type onto plain Go
// values.
func generic(val cty.Value) (any, error) {
	ty := val.Type()
	switch {
	case ty.Equals(cty.Number):
		return number(val.AsBigFloat()), nil
	case ty.Equals(cty.String):
		return val.AsString(), nil
	case ty.Equals(cty.Bool):
		return val.True(), nil
	case ty.IsListType() || ty.IsTupleType():
		converted, err := convert.Convert(val, cty.List(cty.Number))
		if err != nil {
			return nil, err
		}
		var series []float64
		if err := gocty.FromCtyValue(converted, &series); err != nil {
			return nil, err
		}
		return series, nil
	default:
		return nil, fmt.Errorf("unsupported value of type %s", ty.FriendlyName())
	}
}

func number(bf *big.Float) any {
	if bf.IsInt() {
		if n, acc := bf.Int64(); acc == big.Exact {
			return n
		}
	}
	f, _ := bf.Float64()
	return f
}

func isNull(expr hcl.Expression) bool {
	v, diags := expr.Value(nil)
	return !diags.HasErrors() && v.IsNull()
}

// sortBySource orders declarations of a single file by position.
func sortBySource(decls []Declaration) {
	sort.SliceStable(decls, func(i, j int) bool {
		return decls[i].Range.Start.Byte < decls[j].Range.Start.Byte
	})
}
