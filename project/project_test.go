package project_test

import (
	"testing"

	"github.com/reflkit/reflkit/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bilayerProject assembles a small but complete custom-model project:
// the eight bilayer parameters, two contrasts (D2O and H2O), and one
// custom file.
func bilayerProject(t *testing.T) *project.Project {
	t.Helper()

	p := project.NewProject("supported DPPC bilayer")
	p.Parameters = append(p.Parameters,
		project.NewParameter("Oxide Thickness", 5, 15, 60, true),
		project.NewParameter("Oxide Hydration", 0, 0.15, 0.5, true),
		project.NewParameter("Lipid APM", 40, 65.86, 90, true),
		project.NewParameter("Head Hydration", 0, 0.3, 0.5, true),
		project.NewParameter("Bilayer Hydration", 0, 0.05, 0.2, true),
		project.NewParameter("Bilayer Roughness", 2, 4.5, 8, true),
		project.NewParameter("Water Thickness", 0, 2, 10, true),
	)
	p.BulkOut = []project.Parameter{
		project.NewParameter("SLD D2O", 6.2e-6, 6.35e-6, 6.35e-6, false),
		project.NewParameter("SLD H2O", -0.6e-6, -0.56e-6, -0.3e-6, false),
	}
	p.CustomFiles = []project.CustomFile{
		{Name: "DPPC Model", Filename: "bilayer.go", FunctionName: "LayerModel", Language: "go"},
	}
	p.Data = append(p.Data, project.DataSet{Name: "D2O data"}, project.DataSet{Name: "H2O data"})
	p.Contrasts = []project.Contrast{
		{
			Name: "D2O", Data: "D2O data", Background: "Background 1",
			BulkIn: "SLD Air", BulkOut: "SLD D2O", Scalefactor: "Scalefactor 1",
			Resolution: "Resolution 1", Model: []string{"DPPC Model"},
		},
		{
			Name: "H2O", Data: "H2O data", Background: "Background 1",
			BulkIn: "SLD Air", BulkOut: "SLD H2O", Scalefactor: "Scalefactor 1",
			Resolution: "Resolution 1", Model: []string{"DPPC Model"},
		},
	}

	return p
}

// TestNewProject_Defaults: a fresh project carries the conventional
// defaults with the protected parameter first.
func TestNewProject_Defaults(t *testing.T) {
	p := project.NewProject("empty")

	require.NotEmpty(t, p.Parameters)
	assert.Equal(t, project.ProtectedParameterName, p.Parameters[0].Name)
	assert.True(t, p.Parameters[0].Fit, "substrate roughness is fitted by default")
	assert.Len(t, p.BulkIn, 1)
	assert.Len(t, p.BulkOut, 1)
	assert.Len(t, p.Backgrounds, 1)
	assert.Len(t, p.Resolutions, 1)
	assert.Equal(t, "Simulation", p.Data[0].Name)

	assert.NoError(t, p.Validate())
}

// TestApplyDefaults_KeepsExistingProtected does not duplicate the
// protected parameter when it is already present.
func TestApplyDefaults_KeepsExistingProtected(t *testing.T) {
	p := project.NewProject("twice")
	p.ApplyDefaults()

	count := 0
	for _, param := range p.Parameters {
		if param.Name == project.ProtectedParameterName {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

// TestValidate_FullProject accepts the assembled bilayer project.
func TestValidate_FullProject(t *testing.T) {
	assert.NoError(t, bilayerProject(t).Validate())
}

// TestValidate_DuplicateName rejects two parameters sharing a name.
func TestValidate_DuplicateName(t *testing.T) {
	p := bilayerProject(t)
	p.Parameters = append(p.Parameters, project.NewParameter("Lipid APM", 0, 1, 2, false))

	assert.ErrorIs(t, p.Validate(), project.ErrDuplicateName)
}

// TestValidate_EmptyName rejects unnamed entries.
func TestValidate_EmptyName(t *testing.T) {
	p := bilayerProject(t)
	p.Parameters = append(p.Parameters, project.NewParameter("", 0, 1, 2, false))

	assert.ErrorIs(t, p.Validate(), project.ErrEmptyName)
}

// TestValidate_BoundsOrder rejects value outside [min, max] — this is
// the boundary that keeps hydration fractions physical before the
// layer-model builder ever sees them.
func TestValidate_BoundsOrder(t *testing.T) {
	p := bilayerProject(t)
	for i := range p.Parameters {
		if p.Parameters[i].Name == "Head Hydration" {
			p.Parameters[i].Value = 1.4 // above max 0.5
		}
	}

	assert.ErrorIs(t, p.Validate(), project.ErrBoundsOrder)
}

// TestValidate_ProtectedParameter rejects removal of the substrate
// roughness parameter.
func TestValidate_ProtectedParameter(t *testing.T) {
	p := bilayerProject(t)
	p.Parameters = p.Parameters[1:]

	assert.ErrorIs(t, p.Validate(), project.ErrProtectedParameter)
}

// TestValidate_DanglingReference rejects a contrast naming an undefined
// bulk phase.
func TestValidate_DanglingReference(t *testing.T) {
	p := bilayerProject(t)
	p.Contrasts[0].BulkOut = "SLD SMW"

	assert.ErrorIs(t, p.Validate(), project.ErrUnknownReference)
}

// TestValidate_BackgroundSource checks the constant/data source rules:
// a constant background must name a background parameter, a data-sourced
// one must name a dataset.
func TestValidate_BackgroundSource(t *testing.T) {
	p := bilayerProject(t)
	p.Backgrounds[0].Source = "D2O data"
	assert.ErrorIs(t, p.Validate(), project.ErrUnknownReference,
		"constant background cannot source a dataset")

	p.Backgrounds[0].Type = project.SourceData
	assert.NoError(t, p.Validate(), "data-sourced background names a dataset")
}

// TestValidate_ContrastModel enforces exactly one custom file per
// contrast in a custom-model project.
func TestValidate_ContrastModel(t *testing.T) {
	p := bilayerProject(t)

	p.Contrasts[0].Model = nil
	assert.ErrorIs(t, p.Validate(), project.ErrContrastModel)

	p.Contrasts[0].Model = []string{"DPPC Model", "DPPC Model"}
	assert.ErrorIs(t, p.Validate(), project.ErrContrastModel)
}

// TestContrastIndex resolves contrast names to their positions.
func TestContrastIndex(t *testing.T) {
	p := bilayerProject(t)

	idx, err := p.ContrastIndex("H2O")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = p.ContrastIndex("SMW")
	assert.ErrorIs(t, err, project.ErrUnknownReference)
}

// TestBulkOutTable preserves collection order and values.
func TestBulkOutTable(t *testing.T) {
	p := bilayerProject(t)

	table := p.BulkOutTable()
	require.Len(t, table, 2)
	assert.Equal(t, 6.35e-6, table[0].RealSLD)
	assert.Equal(t, -0.56e-6, table[1].RealSLD)
}

// TestParameterValues returns the vector handed to a custom model, in
// collection order with substrate roughness first.
func TestParameterValues(t *testing.T) {
	p := bilayerProject(t)

	vec := p.ParameterValues()
	require.Len(t, vec, 8)
	assert.Equal(t, 3.0, vec[0], "substrate roughness leads the vector")
	assert.Equal(t, 65.86, vec[3], "lipid APM sits at slot 3")
}
