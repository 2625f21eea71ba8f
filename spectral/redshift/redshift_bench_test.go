package redshift

import (
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
	"github.com/cwbudde/algo-spectral/spectral/array"
	"github.com/cwbudde/algo-spectral/spectral/table"
)

func BenchmarkArrayScalarRedshift(b *testing.B) {
	y := testutil.WavelengthGrid(3600, 0.8, 8192)
	out := array.New(y.Shape(), array.Float64)
	zIn, zOut := array.Scalar(0.2), array.Scalar(1.7)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Array(zIn, zOut, y, WithOutput(out), WithName("wlen")); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkArrayBroadcastRedshift(b *testing.B) {
	y := testutil.WavelengthGrid(3600, 0.8, 4096)
	zOut, err := array.FromSlice(testutil.DeterministicRedshifts(1, 3, 16)).Reshape(16, 1)
	if err != nil {
		b.Fatal(err)
	}
	zIn := array.Scalar(0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Array(zIn, zOut, y, WithName("flux")); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTransform(b *testing.B) {
	wlen := testutil.WavelengthGrid(3600, 0.8, 8192)
	in := []table.Tabular{
		table.Col("wlen", wlen),
		table.Col("flux", testutil.DeterministicFlux(wlen, 6563, 4)),
		table.Col("ivar", array.Full(wlen.Shape(), 2)),
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Transform(in, WithZ(array.Scalar(0.5))); err != nil {
			b.Fatal(err)
		}
	}
}
