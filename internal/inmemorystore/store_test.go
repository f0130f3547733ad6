package inmemorystore

import (
	"context"
	"testing"

	"github.com/specialistvlad/lazyframe/internal/node"
	"github.com/specialistvlad/lazyframe/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(nodes []*node.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name)
	}
	return out
}

func TestPutAndGet(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, ok := s.Get(ctx, "A")
	assert.False(t, ok)

	replaced := s.Put(ctx, node.NewInput("A", []float64{1}))
	assert.False(t, replaced)

	n, ok := s.Get(ctx, "A")
	require.True(t, ok)
	assert.Equal(t, "A", n.Name)
	assert.Equal(t, 0, n.Seq)
	assert.Equal(t, 1, s.Len(ctx))
}

func TestAllKeepsRegistrationOrder(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, name := range []string{"C", "A", "B"} {
		s.Put(ctx, node.NewScalar(name, 1))
	}
	assert.Equal(t, []string{"C", "A", "B"}, names(s.All(ctx)))
}

// TestOverwriteKeepsSequence verifies that last write wins for the node while
// the name keeps its first-registration slot.
func TestOverwriteKeepsSequence(t *testing.T) {
	s := New()
	ctx := context.Background()

	s.Put(ctx, node.NewScalar("S", 1))
	s.Put(ctx, node.NewScalar("T", 2))
	replaced := s.Put(ctx, node.NewTask("S", &task.Spec{}))
	assert.True(t, replaced)

	n, ok := s.Get(ctx, "S")
	require.True(t, ok)
	assert.Equal(t, node.TaskNode, n.Kind)
	assert.Equal(t, 0, n.Seq)
	assert.Equal(t, []string{"S", "T"}, names(s.All(ctx)))
	assert.Equal(t, 2, s.Len(ctx))
}
