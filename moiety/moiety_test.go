package moiety_test

import (
	"testing"

	"github.com/reflkit/reflkit/moiety"
	"github.com/stretchr/testify/assert"
)

// TestGroup_ScatteringLength verifies the elemental sum for a methylene
// unit: one carbon plus two (negative) hydrogens.
func TestGroup_ScatteringLength(t *testing.T) {
	want := moiety.BCarbon + 2*moiety.BHydrogen
	assert.InDelta(t, want, moiety.CH2.ScatteringLength(), 1e-12, "CH2 must sum C + 2H")
	assert.Negative(t, moiety.CH2.ScatteringLength(), "hydrogenated CH2 has a negative b")
}

// TestGroup_AddAndScale verifies composition arithmetic is count-wise.
func TestGroup_AddAndScale(t *testing.T) {
	tails := moiety.CH2.Scale(28).Add(moiety.CH3.Scale(2))

	assert.Equal(t, moiety.Group{C: 30, H: 62}, tails, "28×CH2 + 2×CH3 is C30H62")
	assert.Equal(t, tails, moiety.PCTails(), "PCTails must match the chain composition")
}

// TestPCHead_Composition checks the head group is the documented sum of
// choline, phosphate, glycerol and both carboxylates.
func TestPCHead_Composition(t *testing.T) {
	head := moiety.PCHead()

	assert.Equal(t, moiety.Group{C: 10, H: 17, O: 8, N: 1, P: 1}, head)
}

// TestPCHead_SLD pins the dry head SLD to its literature value: with
// vHead = 319 Å³ the PC head group sits near 2.0e-6 Å⁻².
func TestPCHead_SLD(t *testing.T) {
	sld := moiety.PCHead().SLD(moiety.VolumeHead)

	assert.InDelta(t, 2.0093e-6, sld, 1e-9, "dry PC head SLD")
}

// TestPCTails_SLD pins the dry tail SLD: hydrogenated chains are slightly
// negative, near -4.16e-7 Å⁻² for vTail = 782 Å³.
func TestPCTails_SLD(t *testing.T) {
	sld := moiety.PCTails().SLD(moiety.VolumeTail)

	assert.InDelta(t, -4.164e-7, sld, 1e-9, "dry PC tail SLD")
	assert.Negative(t, sld)
}

// TestSLD_VolumeScaling verifies SLD is inversely proportional to volume.
func TestSLD_VolumeScaling(t *testing.T) {
	g := moiety.PCHead()

	assert.InDelta(t, 2*g.SLD(100), g.SLD(50), 1e-15, "halving the volume doubles the SLD")
}
