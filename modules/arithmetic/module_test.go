package arithmetic

import (
	"testing"

	"github.com/specialistvlad/lazyframe/internal/handlers"
	"github.com/specialistvlad/lazyframe/internal/table"
	"github.com/specialistvlad/lazyframe/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, name string, args task.Args) (any, error) {
	t.Helper()
	c := handlers.NewWith(&Module{})
	fn, ok := c.Get(name)
	require.True(t, ok, "function %q not registered", name)
	return fn.Fn(args)
}

func TestOperations(t *testing.T) {
	a := []float64{11, 12, 13}
	b := []float64{8, 15, 24}

	testCases := []struct {
		name string
		want []float64
	}{
		{name: "add", want: []float64{19, 27, 37}},
		{name: "subtract", want: []float64{3, -3, -11}},
		{name: "multiply", want: []float64{88, 180, 312}},
		{name: "divide", want: []float64{11.0 / 8, 12.0 / 15, 13.0 / 24}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := call(t, tc.name, task.Args{"series1": a, "series2": b})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOperationErrors(t *testing.T) {
	_, err := call(t, "divide", task.Args{"series1": []float64{1, 2}, "series2": []float64{1, 0}})
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.ErrorContains(t, err, "row 1")

	_, err = call(t, "add", task.Args{"series1": []float64{1, 2}, "series2": []float64{1}})
	assert.ErrorIs(t, err, table.ErrLengthMismatch)

	_, err = call(t, "multiply", task.Args{"series1": 2, "series2": []float64{1}})
	assert.ErrorIs(t, err, table.ErrNotNumeric)
}

func TestOperationsAcceptIntegerSeries(t *testing.T) {
	got, err := call(t, "add", task.Args{"series1": []int{1, 2}, "series2": []int64{3, 4}})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, got)
}
