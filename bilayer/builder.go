package bilayer

import (
	"github.com/reflkit/reflkit/moiety"
	"github.com/reflkit/reflkit/phase"
)

// BuildLayers — symmetric bilayer layer-model builder.
//
// Description:
//
//	Converts the named fit parameters into the six-layer SLD profile of a
//	hydrated SiO2 surface carrying a symmetric phosphatidylcholine
//	bilayer, ordered substrate → bulk solvent.
//
// Algorithm outline:
//  1. Look up the bulk solvent phase for the requested contrast.
//  2. Take the dry head and tail SLDs from the moiety tables
//     (Σb / literature volume; fixed chemistry, not fittable).
//  3. thickness = volume / APM for head and tail independently; one APM
//     parameter couples both.
//  4. Hydration mixing per region:
//     SLD = w·SLD_solvent + (1−w)·SLD_dry
//     applied with the region's own fraction to oxide, head and tail.
//  5. Assemble: oxide (substrate roughness), water spacer (raw bulk SLD),
//     inner head, tail, tail, outer head (all bilayer roughness). The
//     head row and the tail row are each built once and emitted twice —
//     symmetry is an invariant, not copy-paste.
//
// Determinism: pure arithmetic over the inputs and package constants;
// identical inputs yield bit-identical stacks.
//
// Degenerate geometry: APM → 0 produces a non-finite thickness. This is a
// fit-boundary condition the optimizer must prevent via parameter bounds;
// it is deliberately not trapped here.
//
// Errors: phase.ErrContrastRange when the contrast has no table entry.
//
// Complexity: O(1) time and space; one 6-element allocation.
func BuildLayers(p Params, bulkOut phase.Table, contrast int) ([]Layer, error) {
	solvent, err := bulkOut.Lookup(contrast)
	if err != nil {
		return nil, err
	}

	head, tail := lipidLayers(p, solvent.RealSLD)

	oxide := Layer{
		Thickness: p.OxideThickness,
		SLD:       mix(p.OxideHydration, solvent.RealSLD, moiety.OxideSLD),
		Roughness: p.SubstrateRoughness,
	}
	water := Layer{
		Thickness: p.WaterThickness,
		SLD:       solvent.RealSLD,
		Roughness: p.BilayerRoughness,
	}

	return []Layer{oxide, water, head, tail, tail, head}, nil
}

// BuildLayersAbsorption is the absorption-aware variant of BuildLayers.
//
// Every row additionally carries an imaginary SLD, mixed with the same
// hydration weights as the real part: the dry organic fragments and the
// oxide absorb negligibly (imaginary part zero), so each layer's
// imaginary SLD is its hydration fraction times the solvent's. The water
// spacer carries the full bulk imaginary SLD. The imaginary component is
// threaded through every row, not only the solvent layer — below the
// critical edge all of them attenuate.
//
// Errors and complexity as BuildLayers.
func BuildLayersAbsorption(p Params, bulkOut phase.Table, contrast int) ([]Layer, error) {
	solvent, err := bulkOut.Lookup(contrast)
	if err != nil {
		return nil, err
	}

	head, tail := lipidLayers(p, solvent.RealSLD)
	head.ImagSLD = mix(p.HeadHydration, solvent.ImagSLD, 0)
	tail.ImagSLD = mix(p.BilayerHydration, solvent.ImagSLD, 0)

	oxide := Layer{
		Thickness: p.OxideThickness,
		SLD:       mix(p.OxideHydration, solvent.RealSLD, moiety.OxideSLD),
		Roughness: p.SubstrateRoughness,
		ImagSLD:   mix(p.OxideHydration, solvent.ImagSLD, 0),
	}
	water := Layer{
		Thickness: p.WaterThickness,
		SLD:       solvent.RealSLD,
		Roughness: p.BilayerRoughness,
		ImagSLD:   solvent.ImagSLD,
	}

	return []Layer{oxide, water, head, tail, tail, head}, nil
}

// lipidLayers builds the single head and tail rows shared by both stack
// halves. Thickness couples to the one APM parameter; SLDs are the
// hydration-mixed dry values.
func lipidLayers(p Params, solventSLD float64) (head, tail Layer) {
	head = Layer{
		Thickness: moiety.VolumeHead / p.LipidAPM,
		SLD:       mix(p.HeadHydration, solventSLD, moiety.PCHead().SLD(moiety.VolumeHead)),
		Roughness: p.BilayerRoughness,
	}
	tail = Layer{
		Thickness: moiety.VolumeTail / p.LipidAPM,
		SLD:       mix(p.BilayerHydration, solventSLD, moiety.PCTails().SLD(moiety.VolumeTail)),
		Roughness: p.BilayerRoughness,
	}

	return head, tail
}

// mix linearly combines the solvent and dry SLDs with hydration weight w.
// w=0 yields the dry value exactly; w=1 yields the solvent exactly.
func mix(w, solvent, dry float64) float64 {
	return w*solvent + (1-w)*dry
}
