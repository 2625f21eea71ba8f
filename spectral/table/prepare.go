package table

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateColumn reports a column name supplied by more than one input.
	ErrDuplicateColumn = errors.New("table: duplicate column")
	// ErrInPlaceArity reports an in-place request that does not name exactly
	// one container.
	ErrInPlaceArity = errors.New("table: in-place mode requires exactly one input")
)

// Mode selects how Prepare exposes the arrays of its inputs.
type Mode int

const (
	// ReadOnly gathers the columns of any number of inputs. Callers must
	// not write to the returned arrays.
	ReadOnly Mode = iota
	// InPlace exposes the writable backing arrays of a single container.
	InPlace
)

// Descriptor records what is needed to rebuild a container like the one
// a set of columns was taken from.
type Descriptor struct {
	Kind  Kind
	Rows  int
	Names []string
}

// Prepare flattens inputs into one ordered mapping of columns.
//
// The descriptor kind is that of the first input that is not a [Column];
// inputs made only of columns describe a [KindDict].
func Prepare(mode Mode, inputs ...Tabular) (*Columns, Descriptor, error) {
	if mode == InPlace && len(inputs) != 1 {
		return nil, Descriptor{}, fmt.Errorf("%w: got %d", ErrInPlaceArity, len(inputs))
	}

	out := NewColumns()
	desc := Descriptor{Kind: KindDict}
	described := false

	for _, in := range inputs {
		if in == nil {
			continue
		}
		if !described && in.Kind() != KindColumn {
			desc.Kind = in.Kind()
			if t, ok := in.(*Table); ok {
				desc.Rows = t.Rows()
			}
			described = true
		}
		for name, a := range in.Columns().All() {
			if out.Has(name) {
				return nil, Descriptor{}, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
			}
			out.Set(name, a)
		}
	}

	desc.Names = out.Names()
	return out, desc, nil
}

// Like builds a container of the kind described by desc holding cols in
// mapping order.
func Like(desc Descriptor, cols *Columns) (Tabular, error) {
	switch desc.Kind {
	case KindTable:
		return NewTable(cols)
	case KindDict, KindColumn:
		return NewDict(cols), nil
	default:
		return nil, fmt.Errorf("table: cannot build container of kind %s", desc.Kind)
	}
}
