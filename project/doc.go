// Package project defines and stores the input data for a reflectivity
// fitting problem: the fit parameters with their bounds and priors, the
// bulk phases on each side of the sample, scalefactors, backgrounds,
// resolutions, datasets, custom model files, and the contrasts that tie
// them together by name.
//
// A Project is bookkeeping, not computation. It exists to be validated
// once — unique names, ordered bounds, no dangling references — and then
// flattened into the plain numeric inputs the calculation engine and the
// layer-model builder consume (see Flatten). The builder itself stays
// free of validation; every range and reference check lives here, at the
// optimizer boundary.
//
// Projects can be assembled in code or decoded from a TOML file (Load).
// NewProject and ApplyDefaults mirror the conventional defaults: an air
// incident phase, a D2O bulk phase, one scalefactor, one constant
// background and resolution, and the protected "Substrate Roughness"
// parameter, which is always present and always first.
package project
