package scalar

import (
	"math"
	"testing"

	"github.com/specialistvlad/lazyframe/internal/handlers"
	"github.com/specialistvlad/lazyframe/internal/table"
	"github.com/specialistvlad/lazyframe/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	c := handlers.NewWith(&Module{})
	assert.Equal(t, []string{"add_scalar", "scale", "subtract_scalar"}, c.Names())

	fn, ok := c.Get("add_scalar")
	require.True(t, ok)
	assert.Equal(t, []task.Param{
		{Name: "series", Type: task.Column},
		{Name: "scalar_to_add", Type: task.Integer},
	}, fn.Params)
}

func TestAddScalar(t *testing.T) {
	got, err := AddScalar(task.Args{"series": []float64{1, 2, 3}, "scalar_to_add": 10})
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 12, 13}, got)

	got, err = AddScalar(task.Args{"series": []float64{1}, "scalar_to_add": 2.0})
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, got)

	_, err = AddScalar(task.Args{"series": []float64{1}, "scalar_to_add": 0.5})
	assert.ErrorContains(t, err, "not an integer")

	for _, bad := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err = AddScalar(task.Args{"series": []float64{1}, "scalar_to_add": bad})
		assert.ErrorContains(t, err, "not an integer")
	}
	for _, bad := range []float64{math.Pow(2, 63), -math.Pow(2, 64)} {
		_, err = AddScalar(task.Args{"series": []float64{1}, "scalar_to_add": bad})
		assert.ErrorContains(t, err, "out of integer range")
	}

	_, err = AddScalar(task.Args{"series": 1, "scalar_to_add": 1})
	assert.ErrorIs(t, err, table.ErrNotNumeric)
}

func TestSubtractScalar(t *testing.T) {
	got, err := SubtractScalar(task.Args{"series": []float64{10, 20, 30}, "scalar_to_subtract": 2.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{7.5, 17.5, 27.5}, got)

	_, err = SubtractScalar(task.Args{"series": []float64{1}, "scalar_to_subtract": "x"})
	assert.ErrorIs(t, err, table.ErrNotNumeric)
}

func TestScale(t *testing.T) {
	got, err := Scale(task.Args{"series": []int{1, 2}, "factor": 1.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 3}, got)
}
