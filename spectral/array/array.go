package array

import (
	"fmt"
	"math"
	"unsafe"
)

// Array is an N-dimensional row-major array of float64 values.
//
// The zero value is not usable; construct arrays with [New], [FromSlice],
// [Scalar], [Full] or [Arange].
type Array struct {
	shape Shape
	dtype DType
	data  []float64
	mask  []bool
}

// New returns a zero-filled array of the given shape and element type.
func New(shape Shape, dtype DType) *Array {
	return &Array{
		shape: shape.Clone(),
		dtype: dtype,
		data:  make([]float64, shape.Size()),
	}
}

// FromSlice wraps data as a one-dimensional Float64 array without copying.
// Mutations to the slice are visible through the Array and vice versa.
func FromSlice(data []float64) *Array {
	return &Array{shape: Shape{len(data)}, dtype: Float64, data: data}
}

// Scalar returns a zero-dimensional Float64 array holding v.
func Scalar(v float64) *Array {
	return &Array{shape: Shape{}, dtype: Float64, data: []float64{v}}
}

// Full returns a Float64 array of the given shape filled with v.
func Full(shape Shape, v float64) *Array {
	a := New(shape, Float64)
	for i := range a.data {
		a.data[i] = v
	}
	return a
}

// Arange returns evenly spaced values in [start, stop) with the given step.
// A non-positive step or an empty interval yields an empty array.
func Arange(start, stop, step float64) *Array {
	if step <= 0 || stop <= start {
		return FromSlice([]float64{})
	}
	n := int(math.Ceil((stop - start) / step))
	data := make([]float64, n)
	for i := range data {
		data[i] = start + float64(i)*step
	}
	return FromSlice(data)
}

// Reshape returns a view of a with a new shape of the same size.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	s := Shape(shape).Clone()
	if s.Size() != len(a.data) {
		return nil, fmt.Errorf("array: cannot reshape size %d into shape %s", len(a.data), s)
	}
	return &Array{shape: s, dtype: a.dtype, data: a.data, mask: a.mask}, nil
}

// AsType returns a copy of a converted to the element type d.
func (a *Array) AsType(d DType) *Array {
	out := a.Copy()
	out.dtype = d
	for i, v := range out.data {
		out.data[i] = d.Cast(v)
	}
	return out
}

// WithMask returns a view of a that shares its data and carries a copy of
// mask. Entries set to true are treated as invalid.
func (a *Array) WithMask(mask []bool) (*Array, error) {
	if len(mask) != len(a.data) {
		return nil, fmt.Errorf("array: mask length %d does not match size %d", len(mask), len(a.data))
	}
	return &Array{shape: a.shape, dtype: a.dtype, data: a.data, mask: append([]bool(nil), mask...)}, nil
}

// Shape returns a copy of the array shape.
func (a *Array) Shape() Shape { return a.shape.Clone() }

// NDim returns the number of dimensions.
func (a *Array) NDim() int { return len(a.shape) }

// Size returns the number of elements.
func (a *Array) Size() int { return len(a.data) }

// DType returns the element type.
func (a *Array) DType() DType { return a.dtype }

// Data returns the flat row-major backing slice.
func (a *Array) Data() []float64 { return a.data }

// Mask returns the validity mask, or nil when the array is unmasked.
func (a *Array) Mask() []bool { return a.mask }

// IsMasked reports whether the flat element i is marked invalid.
func (a *Array) IsMasked(i int) bool {
	return a.mask != nil && a.mask[i]
}

// SetMask replaces the validity mask with a copy of mask. A nil mask
// removes masking.
func (a *Array) SetMask(mask []bool) error {
	if mask == nil {
		a.mask = nil
		return nil
	}
	if len(mask) != len(a.data) {
		return fmt.Errorf("array: mask length %d does not match size %d", len(mask), len(a.data))
	}
	if a.mask == nil {
		a.mask = make([]bool, len(mask))
	}
	copy(a.mask, mask)
	return nil
}

// At returns the element at the given multi-index.
func (a *Array) At(idx ...int) float64 {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("array: index of length %d for %d-d array", len(idx), len(a.shape)))
	}
	off := 0
	for i, n := range a.shape {
		if idx[i] < 0 || idx[i] >= n {
			panic(fmt.Sprintf("array: index %d out of range for axis %d of size %d", idx[i], i, n))
		}
		off = off*n + idx[i]
	}
	return a.data[off]
}

// Copy returns a deep copy of a, including its mask.
func (a *Array) Copy() *Array {
	out := &Array{
		shape: a.shape.Clone(),
		dtype: a.dtype,
		data:  append(make([]float64, 0, len(a.data)), a.data...),
	}
	if a.mask != nil {
		out.mask = append([]bool(nil), a.mask...)
	}
	return out
}

// BroadcastTo returns a with its data and mask materialized at shape.
// The receiver itself is returned when it already has that shape.
func (a *Array) BroadcastTo(shape Shape) (*Array, error) {
	if a.shape.Equal(shape) {
		return a, nil
	}
	s, err := Broadcast(a.shape, shape)
	if err != nil {
		return nil, err
	}
	if !s.Equal(shape) {
		return nil, fmt.Errorf("%w: cannot broadcast %s to %s", ErrBroadcast, a.shape, shape)
	}

	out := &Array{shape: shape.Clone(), dtype: a.dtype, data: make([]float64, shape.Size())}
	if a.mask != nil {
		out.mask = make([]bool, len(out.data))
	}

	strides := broadcastStrides(a.shape, shape)
	idx := make([]int, len(shape))
	off := 0
	for i := range out.data {
		out.data[i] = a.data[off]
		if out.mask != nil {
			out.mask[i] = a.mask[off]
		}
		for d := len(shape) - 1; d >= 0; d-- {
			idx[d]++
			off += strides[d]
			if idx[d] < shape[d] {
				break
			}
			off -= strides[d] * idx[d]
			idx[d] = 0
		}
	}
	return out, nil
}

// CopyFrom assigns src into a, broadcasting src to the shape of a and
// casting values to the element type of a. The mask of a follows src.
func (a *Array) CopyFrom(src *Array) error {
	b, err := src.BroadcastTo(a.shape)
	if err != nil {
		return err
	}
	if b == src && Overlaps(a, src) && !SharesMemory(a, src) {
		b = src.Copy()
	}

	if a.dtype == Float64 {
		copy(a.data, b.data)
	} else {
		for i, v := range b.data {
			a.data[i] = a.dtype.Cast(v)
		}
	}
	return a.SetMask(b.mask)
}

// AnyAtMost reports whether any unmasked element is <= v.
func (a *Array) AnyAtMost(v float64) bool {
	for i, x := range a.data {
		if x <= v && !a.IsMasked(i) {
			return true
		}
	}
	return false
}

// AllFinite reports whether every unmasked element is neither NaN nor Inf.
func (a *Array) AllFinite() bool {
	for i, x := range a.data {
		if (math.IsNaN(x) || math.IsInf(x, 0)) && !a.IsMasked(i) {
			return false
		}
	}
	return true
}

// String formats the shape, element type and values of a.
func (a *Array) String() string {
	return fmt.Sprintf("array(%v, shape=%s, dtype=%s)", a.data, a.shape, a.dtype)
}

// EmptyLike allocates a zeroed array with the given shape and element type.
// The result carries an all-valid mask when template is masked, so masks
// can propagate into it.
func EmptyLike(template *Array, shape Shape, dtype DType) *Array {
	out := New(shape, dtype)
	if template != nil && template.mask != nil {
		out.mask = make([]bool, len(out.data))
	}
	return out
}

// SharesMemory reports whether a and b are views of the same elements:
// same first element and same size.
func SharesMemory(a, b *Array) bool {
	if len(a.data) == 0 || len(a.data) != len(b.data) {
		return false
	}
	return &a.data[0] == &b.data[0]
}

// Overlaps reports whether the backing storage of a and b intersects.
func Overlaps(a, b *Array) bool {
	if len(a.data) == 0 || len(b.data) == 0 {
		return false
	}
	aLo, aHi := span(a.data)
	bLo, bHi := span(b.data)
	return aLo < bHi && bLo < aHi
}

func span(data []float64) (lo, hi uintptr) {
	lo = uintptr(unsafe.Pointer(unsafe.SliceData(data)))
	return lo, lo + uintptr(len(data))*unsafe.Sizeof(data[0])
}
