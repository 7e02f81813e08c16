package bilayer_test

import (
	"testing"

	"github.com/reflkit/reflkit/bilayer"
	"github.com/reflkit/reflkit/phase"
)

// BenchmarkBuildLayers measures the hot path as an optimizer drives it:
// decode the vector, build the stack, every iteration.
func BenchmarkBuildLayers(b *testing.B) {
	vec := []float64{3, 15, 0.15, 65.86, 0.3, 0.05, 4.5, 2}
	bulkOut := phase.Table{phase.D2O, phase.H2O}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := bilayer.ParamsFromVector(vec)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := bilayer.BuildLayers(p, bulkOut, i%2); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAbsorptionLayerModel measures the framework adapter with the
// 4-column flattening included.
func BenchmarkAbsorptionLayerModel(b *testing.B) {
	vec := []float64{3, 15, 0.15, 65.86, 0.3, 0.05, 4.5, 2}
	bulkIn := phase.Table{{}}
	bulkOut := phase.Table{{RealSLD: 6.35e-6, ImagSLD: 1.2e-8}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bilayer.AbsorptionLayerModel(vec, bulkIn, bulkOut, 0); err != nil {
			b.Fatal(err)
		}
	}
}
