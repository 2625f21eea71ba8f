package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWavelengthGrid(t *testing.T) {
	w := WavelengthGrid(4000, 0.5, 4)
	assert.Equal(t, []float64{4000, 4000.5, 4001, 4001.5}, w.Data())
}

func TestDeterministicFluxPeak(t *testing.T) {
	w := WavelengthGrid(6000, 1, 1001)
	f := DeterministicFlux(w, 6500, 5)
	RequireFinite(t, f.Data())
	assert.InDelta(t, 5.0, f.Data()[500], 1e-12)
	assert.InDelta(t, 1.0, f.Data()[0], 1e-12)
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(7, 0.5, 64)
	b := DeterministicNoise(7, 0.5, 64)
	require.Equal(t, a, b)
	for _, v := range a {
		assert.LessOrEqual(t, v, 0.5)
		assert.GreaterOrEqual(t, v, -0.5)
	}
}

func TestDeterministicRedshiftsRange(t *testing.T) {
	for _, z := range DeterministicRedshifts(3, 2, 100) {
		assert.GreaterOrEqual(t, z, 0.0)
		assert.Less(t, z, 2.0)
	}
}
