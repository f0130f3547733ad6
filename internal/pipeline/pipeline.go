package pipeline

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/lazyframe/internal/ctxlog"
	"github.com/specialistvlad/lazyframe/internal/node"
	"github.com/specialistvlad/lazyframe/internal/task"
)

// Declaration is one scalar or task of a pipeline.
type Declaration struct {
	Name string
	Kind node.Kind

	// Value is set for scalars.
	Value any

	// Func and Args are set for tasks. Args is ready to be passed to
	// RegisterTask.
	Func *task.Func
	Args map[string]any

	Range hcl.Range
}

// Pipeline is the merged content of one or more pipeline files.
type Pipeline struct {
	Declarations []Declaration
	// Outputs is the default output selection, nil when no file has an
	// output block.
	Outputs []string
	Files   []string
}

// Registrar is the part of the engine a pipeline registers into.
type Registrar interface {
	RegisterScalar(ctx context.Context, name string, value any) error
	RegisterTask(ctx context.Context, name string, fn *task.Func, args map[string]any) error
}

// Apply registers every declaration of p, in order, and stops at the first
// error.
func Apply(ctx context.Context, p *Pipeline, r Registrar) error {
	logger := ctxlog.FromContext(ctx)

	for _, d := range p.Declarations {
		var err error
		switch d.Kind {
		case node.ScalarNode:
			err = r.RegisterScalar(ctx, d.Name, d.Value)
		case node.TaskNode:
			err = r.RegisterTask(ctx, d.Name, d.Func, d.Args)
		default:
			err = fmt.Errorf("unsupported declaration kind %s", d.Kind)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", d.Range, err)
		}
	}

	logger.Debug("Pipeline applied.", "declarations", len(p.Declarations))
	return nil
}
