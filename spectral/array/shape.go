package array

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBroadcast reports shapes that cannot be broadcast together.
var ErrBroadcast = errors.New("shapes cannot be broadcast")

// Shape lists the length of each dimension. The empty shape is a scalar.
type Shape []int

// NDim returns the number of dimensions.
func (s Shape) NDim() int {
	return len(s)
}

// Size returns the number of elements, 1 for a scalar.
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Equal reports whether both shapes have identical dimensions.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy that does not share memory with s.
func (s Shape) Clone() Shape {
	return append(Shape{}, s...)
}

// String formats the shape as a tuple, e.g. "(3, 4)" or "()".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	if len(s) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Broadcast returns the shape obtained by broadcasting all shapes together.
func Broadcast(shapes ...Shape) (Shape, error) {
	ndim := 0
	for _, s := range shapes {
		ndim = max(ndim, len(s))
	}

	out := make(Shape, ndim)
	for i := range out {
		out[i] = 1
	}

	for _, s := range shapes {
		offset := ndim - len(s)
		for i, d := range s {
			j := offset + i
			switch {
			case d == out[j], d == 1:
			case out[j] == 1:
				out[j] = d
			default:
				return nil, fmt.Errorf("%w: %s", ErrBroadcast, joinShapes(shapes))
			}
		}
	}

	return out, nil
}

// broadcastStrides returns per-dimension strides for reading an array of
// shape src as if it had shape dst. Stretched dimensions get stride 0.
// dst must be a valid broadcast target of src.
func broadcastStrides(src, dst Shape) []int {
	strides := make([]int, len(dst))
	offset := len(dst) - len(src)
	step := 1
	for i := len(src) - 1; i >= 0; i-- {
		if src[i] != 1 {
			strides[offset+i] = step
		}
		step *= src[i]
	}
	return strides
}

func joinShapes(shapes []Shape) string {
	parts := make([]string, len(shapes))
	for i, s := range shapes {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}
