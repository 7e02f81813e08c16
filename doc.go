// Package reflkit turns molecular descriptions of supported lipid bilayers
// into the layer profiles consumed by neutron and X-ray reflectometry
// forward models.
//
// What is reflkit?
//
//	A small, deterministic toolkit that brings together:
//		• Chemistry tables: elemental neutron scattering lengths & lipid fragments
//		• Bulk phases: per-contrast solvent SLDs (D2O, H2O, SMW, …)
//		• The layer-model builder: fit parameters → ordered SLD layer stack
//		• Project bookkeeping: parameters, bounds, contrasts, validation
//		• A CLI: validate project files and print evaluated layer stacks
//
// Why choose reflkit?
//
//   - Pure and reentrant – the builder has no state, no I/O, no locks;
//     call it from as many fitting workers as you like
//   - Bit-identical outputs – identical inputs always produce identical
//     layer stacks, as stochastic and gradient optimizers require
//   - Explicit contracts – fixed parameter slots decode once into a named
//     record; everything downstream is typed
//
// Everything is organized under five packages:
//
//	moiety/   — immutable scattering-length and molecular-volume tables
//	phase/    — bulk solvent SLD tables indexed by contrast
//	bilayer/  — the layer-model builder (the hot path)
//	project/  — fit-problem bookkeeping, validation and flattening
//	cmd/      — the reflkit command-line tool
//
// Quick ASCII sketch of the model the builder emits, substrate to solvent:
//
//	Si │ SiO2 │ water │ head │ tail │ tail │ head │ bulk solvent
//
// Dive into the package docs for the parameter contract, units and the
// absorption-aware variant.
package reflkit
