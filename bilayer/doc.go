// Package bilayer builds the SLD layer profile of a supported symmetric
// lipid bilayer from a small set of fit parameters.
//
// The builder is the hot path of a reflectometry fit: an optimizer mutates
// the parameter vector between calls and a reflectivity engine consumes
// the returned stack immediately. It is a pure function — no state, no
// I/O, no locks — so it is safe to evaluate concurrently, one goroutine
// per contrast or per optimizer trial, with zero synchronization.
//
// Model, substrate to bulk solvent:
//
//	oxide │ water │ head │ tail │ tail │ head
//
// The two tail rows are identical, as are the two head rows: structural
// symmetry is an invariant of this model, not an accident of assembly.
//
// Parameter contract (fixed vector positions, see ParamsFromVector):
//
//	0 – substrate roughness (Å)
//	1 – oxide thickness (Å)
//	2 – oxide hydration (volume fraction)
//	3 – lipid area per molecule (Å²)
//	4 – head hydration (volume fraction)
//	5 – bilayer hydration (volume fraction)
//	6 – bilayer roughness (Å)
//	7 – water-spacer thickness (Å)
//
// Hydration fractions are linear mixing weights and are expected in
// [0, 1]; the builder does not validate them. Enforce bounds at the
// optimizer boundary (see project.Flatten) — a range check here would be
// paid on every trial of every fit.
//
// Errors (sentinel):
//
//	– ErrParamsLength        if the vector is shorter than NumParams.
//	– phase.ErrContrastRange if the contrast has no bulk-phase entry.
//
// Example usage:
//
//	p, err := bilayer.ParamsFromVector(vec)
//	if err != nil { … }
//	stack, err := bilayer.BuildLayers(p, bulkOut, contrast)
package bilayer
