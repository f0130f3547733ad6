// Package handlers holds the catalogue of named transformations that
// pipeline files can refer to by function name.
package handlers

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/lazyframe/internal/task"
)

// Module is implemented by every package that contributes functions.
type Module interface {
	Register(c *Catalog)
}

// Catalog holds all the registered functions.
type Catalog struct {
	all map[string]*task.Func
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{all: make(map[string]*task.Func)}
}

// NewWith creates a catalog populated by modules.
func NewWith(modules ...Module) *Catalog {
	c := New()
	for _, m := range modules {
		m.Register(c)
	}
	return c
}

// Register adds fn under fn.Name. Registering a name twice is a programming
// error and panics.
func (c *Catalog) Register(fn *task.Func) {
	if fn == nil || fn.Fn == nil {
		panic("cannot register a nil function")
	}
	if _, exists := c.all[fn.Name]; exists {
		panic(fmt.Sprintf("function with name '%s' already registered", fn.Name))
	}
	slog.Debug("Registering function.", "name", fn.Name, "params", len(fn.Params))
	c.all[fn.Name] = fn
}

// Get looks a function up by name.
func (c *Catalog) Get(name string) (*task.Func, bool) {
	fn, ok := c.all[name]
	return fn, ok
}

// Names returns the registered function names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.all))
	for name := range c.all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered functions.
func (c *Catalog) Len() int {
	return len(c.all)
}
