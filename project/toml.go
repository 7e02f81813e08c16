package project

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

// Load reads a project definition from a TOML file, applies the
// conventional defaults for anything the file omits, and validates the
// result. The returned project is ready to Flatten.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("project: read %s: %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("project: %s: %w", path, err)
	}

	return p, nil
}

// Parse decodes a TOML project definition, applies defaults and
// validates. See Load for the file-path convenience wrapper.
func Parse(data []byte) (*Project, error) {
	var p Project
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	// Sigma defaults to +Inf for uniform priors; TOML cannot express
	// infinity, so patch zero-valued sigmas after decoding.
	normalizePriors(p.Parameters)
	normalizePriors(p.BulkIn)
	normalizePriors(p.BulkOut)
	normalizePriors(p.Scalefactors)
	normalizePriors(p.BackgroundParameters)
	normalizePriors(p.ResolutionParameters)

	p.ApplyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

func normalizePriors(params []Parameter) {
	for i := range params {
		if params[i].Prior == "" {
			params[i].Prior = PriorUniform
		}
		if params[i].Prior == PriorUniform && params[i].Sigma == 0 {
			params[i].Sigma = math.Inf(1)
		}
	}
}
