package redshift

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectral/internal/scratch"
	"github.com/cwbudde/algo-spectral/spectral/array"
)

var factorPool = scratch.NewPool()

// checkRedshifts fails unless every unmasked value of zIn and zOut is > -1.
func checkRedshifts(zIn, zOut *array.Array) error {
	if zIn.AnyAtMost(-1) {
		return fmt.Errorf("%w: found z_in <= -1", ErrInvalidRedshift)
	}
	if zOut.AnyAtMost(-1) {
		return fmt.Errorf("%w: found z_out <= -1", ErrInvalidRedshift)
	}
	return nil
}

// scale writes y * ((1 + zOut) / (1 + zIn)) ** n into dst. Every input
// must broadcast to the shape of dst. dst may be y itself.
func scale(dst, zIn, zOut, y *array.Array, n int) error {
	shape := dst.Shape()

	yb, err := y.BroadcastTo(shape)
	if err != nil {
		return err
	}
	if yb == y && array.Overlaps(dst, y) && !array.SharesMemory(dst, y) {
		yb = y.Copy()
	}

	buf := factorPool.Get(dst.Size())
	defer factorPool.Put(buf)
	factors := buf.Floats()

	mask, err := fillFactors(factors, shape, zIn, zOut, yb, n)
	if err != nil {
		return err
	}

	if array.SharesMemory(dst, yb) {
		vecmath.MulBlockInPlace(dst.Data(), factors)
	} else {
		vecmath.MulBlock(dst.Data(), yb.Data(), factors)
	}

	if d := dst.DType(); d != array.Float64 {
		out := dst.Data()
		for i, v := range out {
			out[i] = d.Cast(v)
		}
	}

	if mask == nil && dst.Mask() != nil {
		mask = make([]bool, dst.Size())
	}
	return dst.SetMask(mask)
}

// fillFactors stores the per-element scale factor in factors and returns
// the combined mask of the broadcast inputs, nil when nothing is masked.
// Masked elements get a factor of 1 so their input value passes through.
func fillFactors(factors []float64, shape array.Shape, zIn, zOut, yb *array.Array, n int) ([]bool, error) {
	exp := float64(n)

	if zIn.Size() == 1 && zOut.Size() == 1 && zIn.Mask() == nil && zOut.Mask() == nil {
		f := math.Pow((1+zOut.Data()[0])/(1+zIn.Data()[0]), exp)
		for i := range factors {
			factors[i] = f
		}
		mask := yb.Mask()
		if mask != nil {
			mask = append([]bool(nil), mask...)
			for i, m := range mask {
				if m {
					factors[i] = 1
				}
			}
		}
		return mask, nil
	}

	zi, err := zIn.BroadcastTo(shape)
	if err != nil {
		return nil, err
	}
	zo, err := zOut.BroadcastTo(shape)
	if err != nil {
		return nil, err
	}

	var mask []bool
	if zi.Mask() != nil || zo.Mask() != nil || yb.Mask() != nil {
		mask = make([]bool, len(factors))
	}

	in, out := zi.Data(), zo.Data()
	for i := range factors {
		if mask != nil {
			mask[i] = zi.IsMasked(i) || zo.IsMasked(i) || yb.IsMasked(i)
			if mask[i] {
				factors[i] = 1
				continue
			}
		}
		factors[i] = math.Pow((1+out[i])/(1+in[i]), exp)
	}
	return mask, nil
}
