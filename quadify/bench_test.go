package quadify_test

import (
	"testing"

	"github.com/katalvlaran/quadmesh/meshbuild"
	"github.com/katalvlaran/quadmesh/quadify"
)

func benchmarkConvert(b *testing.B, rows, cols int, opts ...quadify.Option) {
	m, err := meshbuild.TriGrid(rows, cols, meshbuild.WithJitter(0.3), meshbuild.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := quadify.Convert(m, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConvert_Grid10(b *testing.B) { benchmarkConvert(b, 10, 10) }
func BenchmarkConvert_Grid25(b *testing.B) { benchmarkConvert(b, 25, 25) }
func BenchmarkConvert_Grid25Splits(b *testing.B) {
	benchmarkConvert(b, 25, 25, quadify.WithBoundarySplits(true))
}
