// Package arithmetic provides element-wise operations between two columns.
package arithmetic

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/lazyframe/internal/handlers"
	"github.com/specialistvlad/lazyframe/internal/table"
	"github.com/specialistvlad/lazyframe/internal/task"
)

// ErrDivisionByZero is returned by divide when a divisor element is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Module implements the handlers.Module interface for this package.
type Module struct{}

var operands = []task.Param{
	{Name: "series1", Type: task.Column},
	{Name: "series2", Type: task.Column},
}

// Register registers add, subtract, multiply and divide.
func (m *Module) Register(c *handlers.Catalog) {
	c.Register(task.New("add", elementwise(func(a, b float64) (float64, error) { return a + b, nil }), operands...))
	c.Register(task.New("subtract", elementwise(func(a, b float64) (float64, error) { return a - b, nil }), operands...))
	c.Register(task.New("multiply", elementwise(func(a, b float64) (float64, error) { return a * b, nil }), operands...))
	c.Register(task.New("divide", elementwise(divide), operands...))
}

func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// elementwise lifts op to a function over series1 and series2.
func elementwise(op func(a, b float64) (float64, error)) task.Fn {
	return func(args task.Args) (any, error) {
		left, err := table.AsSeries(args["series1"])
		if err != nil {
			return nil, fmt.Errorf("series1: %w", err)
		}
		right, err := table.AsSeries(args["series2"])
		if err != nil {
			return nil, fmt.Errorf("series2: %w", err)
		}
		if len(left) != len(right) {
			return nil, fmt.Errorf("%w: series1 has %d rows, series2 has %d", table.ErrLengthMismatch, len(left), len(right))
		}

		out := make([]float64, len(left))
		for i := range left {
			v, err := op(left[i], right[i])
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			out[i] = v
		}
		return out, nil
	}
}
