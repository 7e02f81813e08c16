package bilayer

import "errors"

// ErrParamsLength indicates a fit-parameter vector shorter than the fixed
// set of slots the model reads. This is fatal for the fit run: the caller
// wired the wrong problem definition, and retrying cannot help.
var ErrParamsLength = errors.New("bilayer: parameter vector shorter than NumParams")

// NumParams is the length of the fit-parameter vector the model consumes.
// The slot order is a contract with the calling framework; change it only
// together with every caller.
const NumParams = 8

// Params names the eight fit parameters of the symmetric bilayer model.
// All other quantities (scattering lengths, molecular volumes, the oxide
// SLD) are literature constants from the moiety package.
type Params struct {
	SubstrateRoughness float64 // Å; applied to the layer nearest the substrate
	OxideThickness     float64 // Å
	OxideHydration     float64 // volume fraction in [0,1]
	LipidAPM           float64 // Å² per molecule; sets both head and tail thickness
	HeadHydration      float64 // volume fraction in [0,1]
	BilayerHydration   float64 // volume fraction in [0,1]
	BilayerRoughness   float64 // Å; applied to every bilayer-associated interface
	WaterThickness     float64 // Å; solvent spacer between oxide and bilayer
}

// ParamsFromVector decodes the fixed-position fit vector into a named
// record. This is the only place slot indices appear; everything
// downstream works with Params fields.
//
// Returns ErrParamsLength when v holds fewer than NumParams values.
// Extra trailing values are ignored (frameworks may append parameters the
// model does not read).
func ParamsFromVector(v []float64) (Params, error) {
	if len(v) < NumParams {
		return Params{}, ErrParamsLength
	}

	return Params{
		SubstrateRoughness: v[0],
		OxideThickness:     v[1],
		OxideHydration:     v[2],
		LipidAPM:           v[3],
		HeadHydration:      v[4],
		BilayerHydration:   v[5],
		BilayerRoughness:   v[6],
		WaterThickness:     v[7],
	}, nil
}

// Layer is one row of the scattering potential profile.
type Layer struct {
	Thickness float64 // Å
	SLD       float64 // Å⁻², real part
	Roughness float64 // Å, interfacial width with the preceding layer
	ImagSLD   float64 // Å⁻²; populated only by the absorption variant
}

// Row flattens the layer into the 3-column form frameworks expect when
// absorption is disabled: [thickness, SLD, roughness].
func (l Layer) Row() []float64 {
	return []float64{l.Thickness, l.SLD, l.Roughness}
}

// RowAbsorption flattens the layer into the 4-column form used when the
// problem models absorption: [thickness, SLD, roughness, imaginary SLD].
func (l Layer) RowAbsorption() []float64 {
	return []float64{l.Thickness, l.SLD, l.Roughness, l.ImagSLD}
}

// Rows flattens a stack for the framework interface, choosing the 3- or
// 4-column form from the problem's absorption flag.
func Rows(stack []Layer, absorption bool) [][]float64 {
	out := make([][]float64, len(stack))
	for i, l := range stack {
		if absorption {
			out[i] = l.RowAbsorption()
		} else {
			out[i] = l.Row()
		}
	}

	return out
}
