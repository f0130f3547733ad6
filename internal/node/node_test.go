package node

import (
	"errors"
	"testing"

	"github.com/specialistvlad/lazyframe/internal/task"
	"github.com/stretchr/testify/assert"
)

func TestNewNodesStartInTheRightState(t *testing.T) {
	in := NewInput("A", []float64{1, 2, 3})
	assert.Equal(t, InputNode, in.Kind)
	assert.True(t, in.IsMaterialized())

	sc := NewScalar("S", int64(10))
	assert.Equal(t, ScalarNode, sc.Kind)
	assert.True(t, sc.IsMaterialized())

	tk := NewTask("D", &task.Spec{Bindings: task.Bindings{{Param: "series", Ref: "A"}}})
	assert.Equal(t, TaskNode, tk.Kind)
	assert.Equal(t, Pending, tk.GetState())
	assert.Equal(t, []string{"A"}, tk.Dependencies())
}

func TestMaterializeDropsDependencies(t *testing.T) {
	tk := NewTask("D", &task.Spec{Bindings: task.Bindings{{Param: "series", Ref: "A"}}})
	tk.Materialize(42)

	assert.Equal(t, Materialized, tk.GetState())
	assert.Equal(t, 42, tk.Value)
	assert.Nil(t, tk.Dependencies())
}

func TestFail(t *testing.T) {
	tk := NewTask("D", &task.Spec{})
	boom := errors.New("boom")
	tk.Fail(boom)

	assert.Equal(t, Failed, tk.GetState())
	assert.Equal(t, boom, tk.Error)
	assert.Equal(t, "failed", tk.GetState().String())
}
