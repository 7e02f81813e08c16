// Package phase describes the bulk fluids a reflectometry sample is
// measured against: one Phase per experimental contrast, carrying the real
// and (for absorbing solvents) imaginary scattering length density.
//
// A Table is ordered by contrast index and is read-only to the layer-model
// builder; it is fixed for the lifetime of one fitting problem. Lookups
// are bounds-checked and fail with ErrContrastRange, which the calling
// framework should treat as fatal for the fit run.
//
// Units: SLD in Å⁻², matching the layer-model output.
package phase
