package pipeline

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/lazyframe/internal/ctxlog"
	"github.com/specialistvlad/lazyframe/internal/fsutil"
	"github.com/specialistvlad/lazyframe/internal/handlers"
	"github.com/specialistvlad/lazyframe/internal/node"
)

// Extension is the file extension of pipeline files.
const Extension = ".hcl"

// Load finds every pipeline file under paths, decodes them and resolves
// function names against catalog.
func Load(ctx context.Context, catalog *handlers.Catalog, paths ...string) (*Pipeline, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Pipeline loader started.", "path_count", len(paths))

	files, err := fsutil.ResolvePaths(Extension, paths...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logger.Warn("No pipeline files found.", "paths", paths)
	}

	p := &Pipeline{Files: files}
	parser := hclparse.NewParser()
	var outputRange *hcl.Range

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		decls, err := declarations(catalog, &root)
		if err != nil {
			return nil, err
		}
		p.Declarations = append(p.Declarations, decls...)

		for _, out := range root.Outputs {
			if outputRange != nil {
				return nil, fmt.Errorf("duplicate output block: %w", hcl.Diagnostics{{
					Severity: hcl.DiagError,
					Summary:  "Duplicate output block",
					Detail:   fmt.Sprintf("An output block was already declared at %s.", outputRange),
					Subject:  out.DefRange.Ptr(),
				}})
			}
			r := out.DefRange
			outputRange = &r
			p.Outputs = append([]string{}, out.Columns...)
		}
	}

	logger.Debug("Pipeline loading complete.", "files", len(files), "declarations", len(p.Declarations), "outputs", p.Outputs)
	return p, nil
}

// declarations translates the blocks of one file, keeping their source order.
func declarations(catalog *handlers.Catalog, root *fileRoot) ([]Declaration, error) {
	decls := make([]Declaration, 0, len(root.Scalars)+len(root.Tasks))

	for _, s := range root.Scalars {
		value, diags := scalarValue(s.Value)
		if diags.HasErrors() {
			return nil, fmt.Errorf("scalar %q: %w", s.Name, diags)
		}
		decls = append(decls, Declaration{Name: s.Name, Kind: node.ScalarNode, Value: value, Range: s.DefRange})
	}

	for _, t := range root.Tasks {
		fn, ok := catalog.Get(t.Function)
		if !ok {
			return nil, fmt.Errorf("task %q: %w", t.Name, hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Unknown function",
				Detail:   fmt.Sprintf("Function %q is not registered. Available functions: %v.", t.Function, catalog.Names()),
				Subject:  t.DefRange.Ptr(),
			}})
		}

		args, diags := bindArgs(fn, t.Args, t.Literals)
		if diags.HasErrors() {
			return nil, fmt.Errorf("task %q: %w", t.Name, diags)
		}
		decls = append(decls, Declaration{Name: t.Name, Kind: node.TaskNode, Func: fn, Args: args, Range: t.DefRange})
	}

	sortBySource(decls)
	return decls, nil
}
