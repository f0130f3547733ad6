// Package cumulative provides running aggregations over a column.
package cumulative

import (
	"fmt"

	"github.com/specialistvlad/lazyframe/internal/handlers"
	"github.com/specialistvlad/lazyframe/internal/table"
	"github.com/specialistvlad/lazyframe/internal/task"
)

// Module implements the handlers.Module interface for this package.
type Module struct{}

// Register registers cumsum.
func (m *Module) Register(c *handlers.Catalog) {
	c.Register(task.New("cumsum", CumSum, task.Param{Name: "series", Type: task.Column}))
}

// CumSum returns the running total of series.
func CumSum(args task.Args) (any, error) {
	in, err := table.AsSeries(args["series"])
	if err != nil {
		return nil, fmt.Errorf("series: %w", err)
	}
	out := make([]float64, len(in))
	var total float64
	for i, v := range in {
		total += v
		out[i] = total
	}
	return out, nil
}
