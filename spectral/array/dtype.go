package array

import (
	"fmt"
	"math"
)

// DType identifies the logical element type of an Array.
type DType int

const (
	Float64 DType = iota
	Float32
	Int64
	Int32
	Bool
)

// String returns the numpy-style name of the element type.
func (d DType) String() string {
	switch d {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Int64:
		return "int64"
	case Int32:
		return "int32"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("DType(%d)", int(d))
	}
}

// Numeric reports whether values of this type take part in arithmetic.
func (d DType) Numeric() bool {
	switch d {
	case Float64, Float32, Int64, Int32:
		return true
	default:
		return false
	}
}

// Cast rounds v to the precision of the element type.
// Integer types truncate toward zero; Bool maps any non-zero value to 1.
func (d DType) Cast(v float64) float64 {
	switch d {
	case Float32:
		return float64(float32(v))
	case Int64, Int32:
		return math.Trunc(v)
	case Bool:
		if v != 0 {
			return 1
		}
		return 0
	default:
		return v
	}
}
