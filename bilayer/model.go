package bilayer

import "github.com/reflkit/reflkit/phase"

// Model is the invocation signature reflectivity frameworks expect from a
// custom layer function: raw parameter vector in, flattened layer matrix
// out. The framework selects the 3- or 4-column shape via the problem's
// absorption flag and registers the matching function.
//
// bulkIn is the phase on the incident side (the substrate for a
// solid/liquid cell). This model reads only bulkOut, but the argument is
// part of the framework contract and is accepted by every custom model.
type Model func(params []float64, bulkIn, bulkOut phase.Table, contrast int) ([][]float64, error)

// LayerModel adapts BuildLayers to the framework signature. Rows have
// three columns: [thickness, SLD, roughness].
func LayerModel(params []float64, bulkIn, bulkOut phase.Table, contrast int) ([][]float64, error) {
	_ = bulkIn // incident-side phase is not used by the symmetric bilayer model

	p, err := ParamsFromVector(params)
	if err != nil {
		return nil, err
	}

	stack, err := BuildLayers(p, bulkOut, contrast)
	if err != nil {
		return nil, err
	}

	return Rows(stack, false), nil
}

// AbsorptionLayerModel adapts BuildLayersAbsorption to the framework
// signature. Rows have four columns: [thickness, SLD, roughness, SLD_imag].
func AbsorptionLayerModel(params []float64, bulkIn, bulkOut phase.Table, contrast int) ([][]float64, error) {
	_ = bulkIn

	p, err := ParamsFromVector(params)
	if err != nil {
		return nil, err
	}

	stack, err := BuildLayersAbsorption(p, bulkOut, contrast)
	if err != nil {
		return nil, err
	}

	return Rows(stack, true), nil
}

// ModelFor returns the framework adapter matching the problem's
// absorption flag.
func ModelFor(absorption bool) Model {
	if absorption {
		return AbsorptionLayerModel
	}

	return LayerModel
}
