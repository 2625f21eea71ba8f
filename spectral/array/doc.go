// Package array provides the small N-dimensional float64 array used by the
// spectral packages.
//
// An [Array] couples a flat []float64 backing slice with a [Shape], a
// [DType] tag describing the logical element type and an optional validity
// mask. Binary operations follow numpy broadcasting rules: shapes are
// right-aligned and dimensions of size 1 are stretched to match. See
// [Broadcast] and [Array.BroadcastTo].
//
// Storage is always float64. Narrower element types are emulated by
// rounding values through [DType.Cast] when they are written.
package array
