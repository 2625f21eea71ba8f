package table

import (
	"iter"

	"github.com/cwbudde/algo-spectral/spectral/array"
)

// Columns is an insertion-ordered mapping from column name to array.
// The zero value is an empty mapping ready for use.
type Columns struct {
	names  []string
	byName map[string]*array.Array
}

// NewColumns returns an empty mapping.
func NewColumns() *Columns {
	return &Columns{}
}

// Set stores a under name. Replacing an existing column keeps its position.
func (c *Columns) Set(name string, a *array.Array) {
	if c.byName == nil {
		c.byName = make(map[string]*array.Array)
	}
	if _, ok := c.byName[name]; !ok {
		c.names = append(c.names, name)
	}
	c.byName[name] = a
}

// Get returns the column stored under name.
func (c *Columns) Get(name string) (*array.Array, bool) {
	a, ok := c.byName[name]
	return a, ok
}

// Has reports whether name is present.
func (c *Columns) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Len returns the number of columns.
func (c *Columns) Len() int {
	return len(c.names)
}

// Names returns the column names in insertion order.
func (c *Columns) Names() []string {
	return append([]string(nil), c.names...)
}

// All yields name and array pairs in insertion order.
func (c *Columns) All() iter.Seq2[string, *array.Array] {
	return func(yield func(string, *array.Array) bool) {
		for _, name := range c.names {
			if !yield(name, c.byName[name]) {
				return
			}
		}
	}
}
