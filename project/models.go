package project

import "math"

// PriorType selects the prior distribution of a fitted parameter.
type PriorType string

const (
	PriorUniform  PriorType = "uniform"
	PriorGaussian PriorType = "gaussian"
)

// Parameter is one scalar of the fitting problem: a value, the bounds the
// optimizer must respect, whether it is fitted at all, and its prior.
type Parameter struct {
	Name  string  `toml:"name"`
	Min   float64 `toml:"min"`
	Value float64 `toml:"value"`
	Max   float64 `toml:"max"`
	Fit   bool    `toml:"fit"`

	Prior PriorType `toml:"prior"`
	Mu    float64   `toml:"mu"`
	Sigma float64   `toml:"sigma"`
}

// NewParameter builds a parameter with a uniform prior, the convention
// for everything that is not explicitly Gaussian.
func NewParameter(name string, min, value, max float64, fit bool) Parameter {
	return Parameter{
		Name:  name,
		Min:   min,
		Value: value,
		Max:   max,
		Fit:   fit,
		Prior: PriorUniform,
		Sigma: math.Inf(1),
	}
}

// Limits returns the [min, max] pair the optimizer enforces.
func (p Parameter) Limits() [2]float64 {
	return [2]float64{p.Min, p.Max}
}

// SourceType distinguishes backgrounds and resolutions defined by a
// constant parameter from those read out of a dataset.
type SourceType string

const (
	SourceConstant SourceType = "constant"
	SourceData     SourceType = "data"
)

// Background names a background and where its value comes from: a
// background parameter (constant) or a dataset column (data).
type Background struct {
	Name   string     `toml:"name"`
	Type   SourceType `toml:"type"`
	Source string     `toml:"source"`
}

// Resolution names an instrument resolution, sourced like a Background.
type Resolution struct {
	Name   string     `toml:"name"`
	Type   SourceType `toml:"type"`
	Source string     `toml:"source"`
}

// DataSet is one measured reflectivity curve: rows of [Q, R, dR].
// A dataset with no points is a simulation range only.
type DataSet struct {
	Name            string       `toml:"name"`
	Points          [][3]float64 `toml:"points"`
	SimulationRange [2]float64   `toml:"simulation_range"`
}

// CustomFile registers a custom layer-model function with the framework:
// which file, which function, and the language it is written in.
type CustomFile struct {
	Name         string `toml:"name"`
	Filename     string `toml:"filename"`
	FunctionName string `toml:"function_name"`
	Language     string `toml:"language"`
}

// Contrast is one experimental condition: which dataset was measured,
// against which bulk phases, scaled and corrected how, and which custom
// model evaluates it. All fields reference other collections by name.
type Contrast struct {
	Name        string   `toml:"name"`
	Data        string   `toml:"data"`
	Background  string   `toml:"background"`
	BulkIn      string   `toml:"bulk_in"`
	BulkOut     string   `toml:"bulk_out"`
	Scalefactor string   `toml:"scalefactor"`
	Resolution  string   `toml:"resolution"`
	Model       []string `toml:"model"`
}
