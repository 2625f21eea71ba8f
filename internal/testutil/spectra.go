package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-spectral/spectral/array"
)

// WavelengthGrid returns n wavelengths spaced by step starting at start.
func WavelengthGrid(start, step float64, n int) *array.Array {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return array.FromSlice(out)
}

// DeterministicFlux returns a positive, reproducible flux density with a
// Gaussian emission line at center on top of a flat continuum.
func DeterministicFlux(wlen *array.Array, center, width float64) *array.Array {
	out := make([]float64, wlen.Size())
	for i, w := range wlen.Data() {
		d := (w - center) / width
		out[i] = 1 + 4*math.Exp(-0.5*d*d)
	}
	return array.FromSlice(out)
}

// DeterministicNoise generates values in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicRedshifts returns n redshifts in [0, zMax) with a fixed seed.
func DeterministicRedshifts(seed int64, zMax float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64() * zMax
	}
	return out
}
