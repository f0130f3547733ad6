// Package scalar provides operations that combine a column with a single
// number.
package scalar

import (
	"fmt"
	"math"

	"github.com/specialistvlad/lazyframe/internal/handlers"
	"github.com/specialistvlad/lazyframe/internal/table"
	"github.com/specialistvlad/lazyframe/internal/task"
)

// Module implements the handlers.Module interface for this package.
type Module struct{}

// Register registers add_scalar, subtract_scalar and scale.
func (m *Module) Register(c *handlers.Catalog) {
	c.Register(task.New("add_scalar", AddScalar,
		task.Param{Name: "series", Type: task.Column},
		task.Param{Name: "scalar_to_add", Type: task.Integer},
	))
	c.Register(task.New("subtract_scalar", SubtractScalar,
		task.Param{Name: "series", Type: task.Column},
		task.Param{Name: "scalar_to_subtract", Type: task.Float},
	))
	c.Register(task.New("scale", Scale,
		task.Param{Name: "series", Type: task.Column},
		task.Param{Name: "factor", Type: task.Float},
	))
}

// AddScalar adds an integer to every element of series.
func AddScalar(args task.Args) (any, error) {
	n, err := integer(args["scalar_to_add"])
	if err != nil {
		return nil, fmt.Errorf("scalar_to_add: %w", err)
	}
	return apply(args["series"], func(v float64) float64 { return v + float64(n) })
}

// SubtractScalar subtracts a number from every element of series.
func SubtractScalar(args task.Args) (any, error) {
	n, err := table.AsNumber(args["scalar_to_subtract"])
	if err != nil {
		return nil, fmt.Errorf("scalar_to_subtract: %w", err)
	}
	return apply(args["series"], func(v float64) float64 { return v - n })
}

// Scale multiplies every element of series by factor.
func Scale(args task.Args) (any, error) {
	f, err := table.AsNumber(args["factor"])
	if err != nil {
		return nil, fmt.Errorf("factor: %w", err)
	}
	return apply(args["series"], func(v float64) float64 { return v * f })
}

func apply(series any, op func(float64) float64) ([]float64, error) {
	in, err := table.AsSeries(series)
	if err != nil {
		return nil, fmt.Errorf("series: %w", err)
	}
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = op(v)
	}
	return out, nil
}

// integer accepts any numeric value without a fractional part.
func integer(v any) (int64, error) {
	f, err := table.AsNumber(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%v is not an integer", f)
	}
	// 2^63 itself is representable as a float64 but not as an int64.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%v is out of integer range", f)
	}
	return int64(f), nil
}
