package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-spectral/spectral/array"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds the relative tolerance rtol.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, rtol float64) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch")
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		scale := math.Max(1, math.Max(math.Abs(got[i]), math.Abs(want[i])))
		if diff > rtol*scale {
			t.Fatalf("index %d: got %v, want %v (diff %v > rtol %v)", i, got[i], want[i], diff, rtol)
		}
	}
}

// RequireArrayNearlyEqual fails t unless got has the expected shape and
// its values match want within rtol.
func RequireArrayNearlyEqual(t *testing.T, got *array.Array, shape array.Shape, want []float64, rtol float64) {
	t.Helper()
	require.NotNil(t, got)
	require.True(t, got.Shape().Equal(shape), "shape = %s, want %s", got.Shape(), shape)
	RequireSliceNearlyEqual(t, got.Data(), want, rtol)
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxRelDiff returns the maximum relative difference between two slices.
// Returns an error if the slices differ in length.
func MaxRelDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if scale := math.Max(math.Abs(a[i]), math.Abs(b[i])); scale > 1 {
			d /= scale
		}
		maxDiff = math.Max(maxDiff, d)
	}
	return maxDiff, nil
}
