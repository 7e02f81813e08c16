package phase

import "errors"

// ErrContrastRange indicates a contrast index with no entry in the table.
var ErrContrastRange = errors.New("phase: contrast index out of range")

// Phase is the bulk-fluid scattering length density for one contrast.
type Phase struct {
	// RealSLD drives the critical edge and phase behavior, Å⁻².
	RealSLD float64

	// ImagSLD drives absorption below the critical edge, Å⁻².
	// Zero for non-absorbing solvents.
	ImagSLD float64
}

// Table maps contrast index → bulk phase. Index 0 is the first measured
// contrast; the order is a contract with the dataset bookkeeping.
type Table []Phase

// Lookup returns the phase for the given contrast, or ErrContrastRange
// when the index has no entry.
func (t Table) Lookup(contrast int) (Phase, error) {
	if contrast < 0 || contrast >= len(t) {
		return Phase{}, ErrContrastRange
	}

	return t[contrast], nil
}

// Common solvents, for convenience when assembling tables by hand.
var (
	// D2O is pure heavy water.
	D2O = Phase{RealSLD: 6.35e-6}

	// H2O is pure light water.
	H2O = Phase{RealSLD: -0.56e-6}

	// SMW is silicon-matched water (38% D2O), contrast-matched to the
	// substrate.
	SMW = Phase{RealSLD: 2.07e-6}
)
