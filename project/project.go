package project

import (
	"fmt"

	"github.com/reflkit/reflkit/phase"
)

// ProtectedParameterName is always present and always first in the
// parameters collection; the calculation engine assumes it.
const ProtectedParameterName = "Substrate Roughness"

// Project is the full input set for one reflectivity fitting problem.
// Collections reference each other by name; Validate enforces the
// integrity of those references before anything is flattened.
type Project struct {
	Name       string `toml:"name"`
	Absorption bool   `toml:"absorption"`

	Parameters           []Parameter `toml:"parameters"`
	BulkIn               []Parameter `toml:"bulk_in"`
	BulkOut              []Parameter `toml:"bulk_out"`
	Scalefactors         []Parameter `toml:"scalefactors"`
	BackgroundParameters []Parameter `toml:"background_parameters"`
	ResolutionParameters []Parameter `toml:"resolution_parameters"`

	Backgrounds []Background `toml:"backgrounds"`
	Resolutions []Resolution `toml:"resolutions"`
	Data        []DataSet    `toml:"data"`
	CustomFiles []CustomFile `toml:"custom_files"`
	Contrasts   []Contrast   `toml:"contrasts"`
}

// NewProject returns a project populated with the conventional defaults
// and the protected substrate-roughness parameter.
func NewProject(name string) *Project {
	p := &Project{Name: name}
	p.ApplyDefaults()

	return p
}

// ApplyDefaults fills empty collections with the conventional defaults
// and guarantees the protected substrate-roughness parameter is present
// and first. Call it after decoding a project from a file; NewProject
// calls it for you.
func (p *Project) ApplyDefaults() {
	if !containsName(parameterNames(p.Parameters), ProtectedParameterName) {
		protected := NewParameter(ProtectedParameterName, 1.0, 3.0, 5.0, true)
		p.Parameters = append([]Parameter{protected}, p.Parameters...)
	}

	if len(p.BulkIn) == 0 {
		p.BulkIn = []Parameter{NewParameter("SLD Air", 0, 0, 0, false)}
	}
	if len(p.BulkOut) == 0 {
		p.BulkOut = []Parameter{NewParameter("SLD D2O", 6.2e-6, 6.35e-6, 6.35e-6, false)}
	}
	if len(p.Scalefactors) == 0 {
		p.Scalefactors = []Parameter{NewParameter("Scalefactor 1", 0.02, 0.23, 0.25, false)}
	}
	if len(p.BackgroundParameters) == 0 {
		p.BackgroundParameters = []Parameter{NewParameter("Background Param 1", 1e-7, 1e-6, 1e-5, false)}
	}
	if len(p.Backgrounds) == 0 {
		p.Backgrounds = []Background{{Name: "Background 1", Type: SourceConstant, Source: "Background Param 1"}}
	}
	if len(p.ResolutionParameters) == 0 {
		p.ResolutionParameters = []Parameter{NewParameter("Resolution Param 1", 0.01, 0.03, 0.05, false)}
	}
	if len(p.Resolutions) == 0 {
		p.Resolutions = []Resolution{{Name: "Resolution 1", Type: SourceConstant, Source: "Resolution Param 1"}}
	}
	if !containsName(dataNames(p.Data), "Simulation") {
		sim := DataSet{Name: "Simulation", SimulationRange: [2]float64{0.005, 0.7}}
		p.Data = append([]DataSet{sim}, p.Data...)
	}
}

// Validate checks the project is internally consistent: every name
// non-empty and unique within its collection, every parameter's bounds
// ordered around its value, the protected parameter in place, and every
// cross-collection reference resolvable. It reports the first violation.
func (p *Project) Validate() error {
	paramCollections := []struct {
		kind string
		list []Parameter
	}{
		{"parameters", p.Parameters},
		{"bulk_in", p.BulkIn},
		{"bulk_out", p.BulkOut},
		{"scalefactors", p.Scalefactors},
		{"background_parameters", p.BackgroundParameters},
		{"resolution_parameters", p.ResolutionParameters},
	}
	for _, c := range paramCollections {
		if err := checkUnique(c.kind, parameterNames(c.list)); err != nil {
			return err
		}
		for _, param := range c.list {
			if !(param.Min <= param.Value && param.Value <= param.Max) {
				return fmt.Errorf("%w: %s %q (min=%g value=%g max=%g)",
					ErrBoundsOrder, c.kind, param.Name, param.Min, param.Value, param.Max)
			}
		}
	}

	if len(p.Parameters) == 0 || p.Parameters[0].Name != ProtectedParameterName {
		return fmt.Errorf("%w: %q must be the first parameter", ErrProtectedParameter, ProtectedParameterName)
	}

	if err := checkUnique("backgrounds", backgroundNames(p.Backgrounds)); err != nil {
		return err
	}
	if err := checkUnique("resolutions", resolutionNames(p.Resolutions)); err != nil {
		return err
	}
	if err := checkUnique("data", dataNames(p.Data)); err != nil {
		return err
	}
	if err := checkUnique("custom_files", customFileNames(p.CustomFiles)); err != nil {
		return err
	}
	if err := checkUnique("contrasts", contrastNames(p.Contrasts)); err != nil {
		return err
	}

	// Backgrounds and resolutions source their value from a parameter or
	// a dataset depending on their type.
	for _, bg := range p.Backgrounds {
		allowed := parameterNames(p.BackgroundParameters)
		if bg.Type == SourceData {
			allowed = dataNames(p.Data)
		}
		if err := checkReference("backgrounds", bg.Name, bg.Source, allowed); err != nil {
			return err
		}
	}
	for _, res := range p.Resolutions {
		allowed := parameterNames(p.ResolutionParameters)
		if res.Type == SourceData {
			allowed = dataNames(p.Data)
		}
		if err := checkReference("resolutions", res.Name, res.Source, allowed); err != nil {
			return err
		}
	}

	for _, c := range p.Contrasts {
		refs := []struct {
			value   string
			allowed []string
		}{
			{c.Data, dataNames(p.Data)},
			{c.Background, backgroundNames(p.Backgrounds)},
			{c.BulkIn, parameterNames(p.BulkIn)},
			{c.BulkOut, parameterNames(p.BulkOut)},
			{c.Scalefactor, parameterNames(p.Scalefactors)},
			{c.Resolution, resolutionNames(p.Resolutions)},
		}
		for _, r := range refs {
			if err := checkReference("contrasts", c.Name, r.value, r.allowed); err != nil {
				return err
			}
		}

		// Custom-model projects: one model function per contrast.
		if len(c.Model) != 1 {
			return fmt.Errorf("%w: contrast %q names %d", ErrContrastModel, c.Name, len(c.Model))
		}
		if err := checkReference("contrasts", c.Name, c.Model[0], customFileNames(p.CustomFiles)); err != nil {
			return err
		}
	}

	return nil
}

// ParameterValues returns the values of the parameters collection in
// order — the vector handed to a custom layer model.
func (p *Project) ParameterValues() []float64 {
	return parameterValues(p.Parameters)
}

// BulkInTable converts the bulk_in collection into a phase table, in
// collection order.
func (p *Project) BulkInTable() phase.Table {
	return phaseTable(p.BulkIn)
}

// BulkOutTable converts the bulk_out collection into a phase table, in
// collection order.
func (p *Project) BulkOutTable() phase.Table {
	return phaseTable(p.BulkOut)
}

// ContrastIndex returns the position of the named contrast, or
// ErrUnknownReference.
func (p *Project) ContrastIndex(name string) (int, error) {
	for i, c := range p.Contrasts {
		if c.Name == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: contrast %q", ErrUnknownReference, name)
}

func phaseTable(params []Parameter) phase.Table {
	t := make(phase.Table, len(params))
	for i, p := range params {
		t[i] = phase.Phase{RealSLD: p.Value}
	}

	return t
}

// ---- name helpers ----

func parameterNames(ps []Parameter) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}

	return out
}

func parameterValues(ps []Parameter) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = p.Value
	}

	return out
}

func backgroundNames(bs []Background) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.Name
	}

	return out
}

func resolutionNames(rs []Resolution) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}

	return out
}

func dataNames(ds []DataSet) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Name
	}

	return out
}

func customFileNames(cs []CustomFile) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}

	return out
}

func contrastNames(cs []Contrast) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}

	return out
}

func containsName(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}

	return false
}

func checkUnique(kind string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			return fmt.Errorf("%w: in %s", ErrEmptyName, kind)
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: %s %q", ErrDuplicateName, kind, n)
		}
		seen[n] = struct{}{}
	}

	return nil
}

func checkReference(kind, owner, value string, allowed []string) error {
	if containsName(allowed, value) {
		return nil
	}

	return fmt.Errorf("%w: %s %q references %q", ErrUnknownReference, kind, owner, value)
}
