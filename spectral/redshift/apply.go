package redshift

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/spectral/array"
	"github.com/cwbudde/algo-spectral/spectral/table"
)

// Apply fills every column of out from the column of the same name in in,
// scaled by ((1 + zOut) / (1 + zIn)) ** exps[name], and returns out.
//
// Names missing from exps use exponent 0 and are copied unchanged; the
// copy is skipped when the output column already is the input column.
// Results are broadcast into the existing output arrays, so their shapes
// must be reachable from the broadcast of zIn, zOut and the input column.
func Apply(zIn, zOut *array.Array, in, out *table.Columns, exps ExponentTable) (*table.Columns, error) {
	if err := checkRedshifts(zIn, zOut); err != nil {
		return nil, err
	}

	for name, dst := range out.All() {
		src, ok := in.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w %s", ErrMissingInputColumn, name)
		}

		n := exps[name]
		if n == 0 {
			if array.SharesMemory(dst, src) {
				continue
			}
			if err := dst.CopyFrom(src); err != nil {
				return nil, fmt.Errorf("%w for %s: %w", ErrShapeMismatch, name, err)
			}
			continue
		}

		shape, err := array.Broadcast(zIn.Shape(), zOut.Shape(), src.Shape(), dst.Shape())
		if err != nil || !shape.Equal(dst.Shape()) {
			return nil, fmt.Errorf("%w %s for %s", ErrShapeMismatch, dst.Shape(), name)
		}
		if err := scale(dst, zIn, zOut, src, n); err != nil {
			return nil, fmt.Errorf("redshift: column %s: %w", name, err)
		}
	}

	return out, nil
}
