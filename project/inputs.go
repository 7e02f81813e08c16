package project

import "fmt"

// Inputs is the flat numeric form of a project, ready for the
// calculation engine: parameter collections concatenated in the fixed
// engine order, split into fitted and held values with their limits, and
// per-contrast 1-based indices into each collection.
//
// The concatenation order — parameters, background parameters,
// scalefactors, bulk in, bulk out, resolution parameters — is a contract
// with the engine; do not reorder.
type Inputs struct {
	Absorption bool

	Params           []float64
	BackgroundParams []float64
	Scalefactors     []float64
	BulkIn           []float64
	BulkOut          []float64
	ResolutionParams []float64

	FitParams   []float64
	OtherParams []float64
	FitLimits   [][2]float64
	OtherLimits [][2]float64

	// 1-based indices, one entry per contrast, in contrast order.
	// Backgrounds and resolutions are resolved through their source down
	// to the parameter collections; data-sourced ones carry 0 here and
	// take their value from the dataset instead.
	ContrastData             []int
	ContrastBackgroundParams []int
	ContrastResolutionParams []int
	ContrastBulkIns          []int
	ContrastBulkOuts         []int
	ContrastScalefactors     []int
	ContrastCustomFiles      []int

	NumberOfContrasts   int
	NumberOfDataSets    int
	NumberOfCustomFiles int
}

// Flatten validates the project and converts it into engine inputs.
// Because bounds ordering is validated here, every value in Params is
// guaranteed inside its limits — this is where hydration fractions and
// area-per-molecule bounds are enforced, so the layer-model hot path
// never has to.
func (p *Project) Flatten() (Inputs, error) {
	if err := p.Validate(); err != nil {
		return Inputs{}, err
	}

	in := Inputs{
		Absorption:          p.Absorption,
		Params:              parameterValues(p.Parameters),
		BackgroundParams:    parameterValues(p.BackgroundParameters),
		Scalefactors:        parameterValues(p.Scalefactors),
		BulkIn:              parameterValues(p.BulkIn),
		BulkOut:             parameterValues(p.BulkOut),
		ResolutionParams:    parameterValues(p.ResolutionParameters),
		NumberOfContrasts:   len(p.Contrasts),
		NumberOfDataSets:    len(p.Data),
		NumberOfCustomFiles: len(p.CustomFiles),
	}

	// Fit/other split walks the collections in the engine order.
	ordered := [][]Parameter{
		p.Parameters,
		p.BackgroundParameters,
		p.Scalefactors,
		p.BulkIn,
		p.BulkOut,
		p.ResolutionParameters,
	}
	for _, collection := range ordered {
		for _, param := range collection {
			if param.Fit {
				in.FitParams = append(in.FitParams, param.Value)
				in.FitLimits = append(in.FitLimits, param.Limits())
			} else {
				in.OtherParams = append(in.OtherParams, param.Value)
				in.OtherLimits = append(in.OtherLimits, param.Limits())
			}
		}
	}

	for _, c := range p.Contrasts {
		in.ContrastData = append(in.ContrastData, indexOf(dataNames(p.Data), c.Data))
		in.ContrastBackgroundParams = append(in.ContrastBackgroundParams,
			p.backgroundParamIndex(c.Background))
		in.ContrastResolutionParams = append(in.ContrastResolutionParams,
			p.resolutionParamIndex(c.Resolution))
		in.ContrastBulkIns = append(in.ContrastBulkIns, indexOf(parameterNames(p.BulkIn), c.BulkIn))
		in.ContrastBulkOuts = append(in.ContrastBulkOuts, indexOf(parameterNames(p.BulkOut), c.BulkOut))
		in.ContrastScalefactors = append(in.ContrastScalefactors, indexOf(parameterNames(p.Scalefactors), c.Scalefactor))
		in.ContrastCustomFiles = append(in.ContrastCustomFiles, indexOf(customFileNames(p.CustomFiles), c.Model[0]))
	}

	return in, nil
}

// backgroundParamIndex resolves a background name down to its constant
// parameter's 1-based index; data-sourced backgrounds yield 0.
func (p *Project) backgroundParamIndex(name string) int {
	for _, bg := range p.Backgrounds {
		if bg.Name == name && bg.Type == SourceConstant {
			return indexOf(parameterNames(p.BackgroundParameters), bg.Source)
		}
	}

	return 0
}

// resolutionParamIndex resolves a resolution name like
// backgroundParamIndex does.
func (p *Project) resolutionParamIndex(name string) int {
	for _, res := range p.Resolutions {
		if res.Name == name && res.Type == SourceConstant {
			return indexOf(parameterNames(p.ResolutionParameters), res.Source)
		}
	}

	return 0
}

// CheckIndices verifies every per-contrast index lands inside its
// collection. Flatten output always passes; the check exists for inputs
// assembled or mutated outside this package, where a shifted index would
// otherwise silently read the wrong phase or scalefactor.
func (in Inputs) CheckIndices() error {
	checks := []struct {
		field   string
		indices []int
		size    int
	}{
		{"data", in.ContrastData, in.NumberOfDataSets},
		{"bulk_in", in.ContrastBulkIns, len(in.BulkIn)},
		{"bulk_out", in.ContrastBulkOuts, len(in.BulkOut)},
		{"scalefactors", in.ContrastScalefactors, len(in.Scalefactors)},
		{"custom_files", in.ContrastCustomFiles, in.NumberOfCustomFiles},
	}
	for _, c := range checks {
		for _, idx := range c.indices {
			if idx < 1 || idx > c.size {
				return fmt.Errorf("%w: %s index %d (collection size %d)",
					ErrIndexOutOfBounds, c.field, idx, c.size)
			}
		}
	}

	// Background and resolution parameter indices allow 0 (data-sourced).
	resolved := []struct {
		field   string
		indices []int
		size    int
	}{
		{"background_parameters", in.ContrastBackgroundParams, len(in.BackgroundParams)},
		{"resolution_parameters", in.ContrastResolutionParams, len(in.ResolutionParams)},
	}
	for _, c := range resolved {
		for _, idx := range c.indices {
			if idx < 0 || idx > c.size {
				return fmt.Errorf("%w: %s index %d (collection size %d)",
					ErrIndexOutOfBounds, c.field, idx, c.size)
			}
		}
	}

	return nil
}

// indexOf returns the 1-based position of want, or 0 when absent.
// Validate runs before Flatten, so 0 never escapes in practice.
func indexOf(names []string, want string) int {
	for i, n := range names {
		if n == want {
			return i + 1
		}
	}

	return 0
}
