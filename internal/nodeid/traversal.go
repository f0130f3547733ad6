// internal/nodeid/traversal.go
package nodeid

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// IndexRoot is the root keyword for references whose name is not a valid
// identifier, e.g. node["Unit Price"].
const IndexRoot = "node"

// FromTraversal converts a reference written as an HCL traversal into a Ref.
func FromTraversal(t hcl.Traversal) (Ref, error) {
	if len(t) == 0 {
		return "", fmt.Errorf("empty reference")
	}

	root := t.RootName()
	if len(t) == 1 {
		return Parse(root)
	}

	if root != IndexRoot || len(t) != 2 {
		return "", fmt.Errorf("unsupported reference %s: use a bare name or %s[\"name\"]", traversalKey(t), IndexRoot)
	}

	switch step := t[1].(type) {
	case hcl.TraverseAttr:
		return Parse(step.Name)
	case hcl.TraverseIndex:
		if step.Key.IsNull() || !step.Key.Type().Equals(cty.String) {
			return "", fmt.Errorf("unsupported reference %s: index key must be a string", traversalKey(t))
		}
		return Parse(step.Key.AsString())
	default:
		return "", fmt.Errorf("unsupported reference %s", traversalKey(t))
	}
}

// traversalKey renders t the way it was written, for error messages.
func traversalKey(t hcl.Traversal) string {
	return string(hclwrite.TokensForTraversal(t).Bytes())
}
