package testutil

import (
	"sync"

	"github.com/specialistvlad/lazyframe/internal/task"
)

// Counter records how often instrumented functions are invoked.
type Counter struct {
	mu    sync.Mutex
	calls map[string]int
}

// NewCounter creates an empty counter.
func NewCounter() *Counter {
	return &Counter{calls: make(map[string]int)}
}

// Wrap returns a copy of fn whose invocations are counted under key.
func (c *Counter) Wrap(key string, fn *task.Func) *task.Func {
	inner := fn.Fn
	return &task.Func{
		Name:   fn.Name,
		Params: fn.Params,
		Fn: func(args task.Args) (any, error) {
			c.mu.Lock()
			c.calls[key]++
			c.mu.Unlock()
			return inner(args)
		},
	}
}

// Calls returns the invocation count for key.
func (c *Counter) Calls(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[key]
}

// Total returns the number of invocations across all keys.
func (c *Counter) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, n := range c.calls {
		total += n
	}
	return total
}
