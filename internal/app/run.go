package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/lazyframe/internal/ctxlog"
	"github.com/specialistvlad/lazyframe/internal/engine"
	"github.com/specialistvlad/lazyframe/internal/pipeline"
	"github.com/specialistvlad/lazyframe/internal/table"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	p, err := pipeline.Load(ctx, a.catalog, a.config.PipelinePaths...)
	if err != nil {
		return fmt.Errorf("failed to load pipeline: %w", err)
	}
	a.logger.Info("Pipeline loaded.", "files", len(p.Files), "declarations", len(p.Declarations))

	e := engine.New()
	if a.config.InputPath != "" {
		input, err := table.Read(a.config.InputPath)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if err := e.RegisterInputs(ctx, input); err != nil {
			return fmt.Errorf("failed to register input columns: %w", err)
		}
		a.logger.Info("Input loaded.", "path", a.config.InputPath, "columns", input.Width(), "rows", input.Len())
	}

	if err := pipeline.Apply(ctx, p, e); err != nil {
		return fmt.Errorf("failed to register pipeline: %w", err)
	}

	if a.config.PlanOnly {
		return a.printPlan(ctx, e)
	}

	if err := e.Run(ctx); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	names := a.config.Columns
	if len(names) == 0 {
		names = p.Outputs
	}
	cols, err := e.Collect(ctx, names...)
	if err != nil {
		return fmt.Errorf("failed to collect outputs: %w", err)
	}

	pairs := make([]table.Pair, len(cols))
	for i, c := range cols {
		pairs[i] = table.Pair{Name: c.Name, Value: c.Value}
	}
	result, err := table.FromValues(pairs...)
	if err != nil {
		return fmt.Errorf("failed to assemble output table: %w", err)
	}

	if a.config.OutputPath == "" {
		err = table.WriteCSV(a.outW, result)
	} else {
		err = table.Write(a.config.OutputPath, result)
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	a.logger.Info("Output written.", "columns", result.Width(), "rows", result.Len(), "path", a.config.OutputPath)
	a.logger.Debug("App.Run method finished.")
	return nil
}

// printPlan writes the evaluation order, one node per line.
func (a *App) printPlan(ctx context.Context, e *engine.Engine) error {
	order, err := e.Plan(ctx)
	if err != nil {
		return fmt.Errorf("failed to plan: %w", err)
	}
	for i, name := range order {
		n, err := e.Get(ctx, name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(a.outW, "%d\t%s\t%s\n", i+1, n.Kind, name); err != nil {
			return err
		}
	}
	return nil
}
