package moiety

// Coherent neutron scattering lengths, 1e-4 Å units (Sears 1992).
// These are literature constants; do not tune them to improve a fit.
const (
	BCarbon     = 0.6646e-4
	BOxygen     = 0.5843e-4
	BHydrogen   = -0.3741e-4
	BPhosphorus = 0.5131e-4
	BNitrogen   = 0.9360e-4
	BDeuterium  = 0.6671e-4
)

// Literature molecular volumes, Å³.
const (
	// VolumeHead is the phosphatidylcholine head-group volume.
	VolumeHead = 319.0

	// VolumeTail is the combined volume of both acyl chains of one lipid.
	VolumeTail = 782.0
)

// OxideSLD is the dry SiO2 scattering length density, Å⁻².
const OxideSLD = 3.41e-6

// Group is the elemental composition of a molecular fragment: a count of
// each atom species it contains. The zero value is an empty fragment.
type Group struct {
	C, H, O, N, P, D int
}

// ScatteringLength returns the summed coherent scattering length of the
// fragment, Σ(count × b), in 1e-4 Å units.
func (g Group) ScatteringLength() float64 {
	return float64(g.C)*BCarbon +
		float64(g.H)*BHydrogen +
		float64(g.O)*BOxygen +
		float64(g.N)*BNitrogen +
		float64(g.P)*BPhosphorus +
		float64(g.D)*BDeuterium
}

// Add returns the composition-wise sum of g and h.
func (g Group) Add(h Group) Group {
	return Group{
		C: g.C + h.C,
		H: g.H + h.H,
		O: g.O + h.O,
		N: g.N + h.N,
		P: g.P + h.P,
		D: g.D + h.D,
	}
}

// Scale returns g with every atom count multiplied by n.
func (g Group) Scale(n int) Group {
	return Group{
		C: g.C * n,
		H: g.H * n,
		O: g.O * n,
		N: g.N * n,
		P: g.P * n,
		D: g.D * n,
	}
}

// SLD divides the fragment's summed scattering length by a molecular
// volume in Å³, yielding the unhydrated scattering length density in Å⁻².
func (g Group) SLD(volume float64) float64 {
	return g.ScatteringLength() / volume
}

// Standard molecular fragments. The head-group fragments follow the known
// phosphatidylcholine structure; they are summed by PCHead and are not
// user-configurable.
var (
	// CH2 is one methylene unit of an acyl chain.
	CH2 = Group{C: 1, H: 2}

	// CH3 is the terminal methyl of an acyl chain.
	CH3 = Group{C: 1, H: 3}

	// Carboxylates covers both ester carboxylate linkages of the
	// glycerol backbone in a single fragment.
	Carboxylates = Group{C: 2, O: 4}

	// Glycerol is the glycerol backbone less the ester oxygens, which are
	// counted with Carboxylates.
	Glycerol = Group{C: 3, H: 5}

	// Phosphate is the PO4 unit of the head group.
	Phosphate = Group{P: 1, O: 4}

	// Choline is the choline unit of the head group.
	Choline = Group{C: 5, H: 12, N: 1}
)

// Per-lipid chain composition: two acyl chains, 14 methylenes each plus a
// terminal methyl (a C16 chain less the carboxylate carbon).
const (
	tailMethylenes = 28
	tailMethyls    = 2
)

// PCHead composes the phosphatidylcholine head group from its fragments:
// choline + phosphate + glycerol + both carboxylates.
func PCHead() Group {
	return Choline.Add(Phosphate).Add(Glycerol).Add(Carboxylates)
}

// PCTails composes both acyl chains of one lipid: 28 CH2 units and the
// two terminal CH3 groups.
func PCTails() Group {
	return CH2.Scale(tailMethylenes).Add(CH3.Scale(tailMethyls))
}
