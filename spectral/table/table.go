package table

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spectral/spectral/array"
)

// ErrRowMismatch reports columns that disagree on the number of rows.
var ErrRowMismatch = errors.New("table: columns have different row counts")

// Kind identifies the container type a set of columns came from.
type Kind int

const (
	// KindDict is a plain mapping of names to arrays of any shape.
	KindDict Kind = iota
	// KindTable is a columnar table whose columns share the leading axis.
	KindTable
	// KindColumn is a single named array.
	KindColumn
)

func (k Kind) String() string {
	switch k {
	case KindDict:
		return "dict"
	case KindTable:
		return "table"
	case KindColumn:
		return "column"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Tabular is a container that can be decomposed into named columns.
// Columns returns the container's own backing mapping, so arrays obtained
// from it are live views of the container.
type Tabular interface {
	Kind() Kind
	Columns() *Columns
}

// Dict is a plain ordered mapping of named arrays.
type Dict struct {
	cols *Columns
}

// NewDict returns a Dict backed by cols. A nil cols yields an empty Dict.
func NewDict(cols *Columns) *Dict {
	if cols == nil {
		cols = NewColumns()
	}
	return &Dict{cols: cols}
}

// Kind returns KindDict.
func (d *Dict) Kind() Kind { return KindDict }

// Columns returns the backing mapping.
func (d *Dict) Columns() *Columns { return d.cols }

// Set stores a under name.
func (d *Dict) Set(name string, a *array.Array) { d.cols.Set(name, a) }

// Get returns the array stored under name.
func (d *Dict) Get(name string) (*array.Array, bool) { return d.cols.Get(name) }

// Table is a columnar table. Every column has at least one dimension and
// the length of its first axis equals the row count.
type Table struct {
	rows int
	cols *Columns
}

// NewTable validates cols as a table and returns it.
func NewTable(cols *Columns) (*Table, error) {
	if cols == nil {
		cols = NewColumns()
	}
	rows := -1
	for name, a := range cols.All() {
		if a.NDim() == 0 {
			return nil, fmt.Errorf("table: column %q is a scalar", name)
		}
		n := a.Shape()[0]
		if rows >= 0 && n != rows {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d", ErrRowMismatch, name, n, rows)
		}
		rows = n
	}
	return &Table{rows: max(rows, 0), cols: cols}, nil
}

// Kind returns KindTable.
func (t *Table) Kind() Kind { return KindTable }

// Columns returns the backing mapping.
func (t *Table) Columns() *Columns { return t.cols }

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Column returns the column stored under name.
func (t *Table) Column(name string) (*array.Array, bool) { return t.cols.Get(name) }

// Column is a single named array, the equivalent of a keyword argument.
type Column struct {
	Name   string
	Values *array.Array
}

// Col returns a Column for name and values.
func Col(name string, values *array.Array) Column {
	return Column{Name: name, Values: values}
}

// Kind returns KindColumn.
func (c Column) Kind() Kind { return KindColumn }

// Columns returns a new mapping holding only this column.
func (c Column) Columns() *Columns {
	cols := NewColumns()
	cols.Set(c.Name, c.Values)
	return cols
}
