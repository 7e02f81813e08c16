// Package moiety holds the immutable chemistry behind the layer models:
// coherent neutron scattering lengths for the elements that appear in
// phospholipids, elemental compositions for the standard molecular
// fragments, and the literature molecular volumes used to convert summed
// scattering lengths into densities.
//
// Units:
//
//	– Scattering lengths b are stored in units of 1e-4 Å (i.e. fm × 1e-5),
//	  so that Σb divided by a molecular volume in Å³ yields an SLD in Å⁻²,
//	  directly comparable with bulk-phase tables (D2O ≈ 6.35e-6 Å⁻²).
//	– Volumes are in Å³.
//
// Everything in this package is a constant or a value derived from
// constants. Nothing here is fittable: the fit parameters live in the
// caller's parameter vector, not in the chemistry.
//
// Example:
//
//	head := moiety.PCHead()
//	sld := head.SLD(moiety.VolumeHead) // ≈ 2.01e-6 Å⁻² for a PC head group
package moiety
