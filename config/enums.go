// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ResponseShape selects the hemodynamic/CO₂ response used by the simulator.
//
//   - ShapeBoxcar: instant on/off step with the stimulus block.
//   - ShapeExponential: 1-exp(-t/rise) during stimulus, exp(-t/fall) after it.
type ResponseShape int

const (
	ShapeBoxcar ResponseShape = iota
	ShapeExponential
)

var shapeNames = []string{"boxcar", "exponential"}

func (s ResponseShape) String() string { return enumName(shapeNames, int(s)) }

// Valid reports whether s is a known shape.
func (s ResponseShape) Valid() bool { return s >= 0 && int(s) < len(shapeNames) }

// ParseResponseShape maps a name to a ResponseShape (case-insensitive).
func ParseResponseShape(name string) (ResponseShape, error) {
	i, err := enumParse(shapeNames, name)
	return ResponseShape(i), err
}

func (s ResponseShape) MarshalYAML() (interface{}, error) { return s.String(), nil }

func (s *ResponseShape) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseResponseShape(node.Value)
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// AnalysisModel selects the regressor family of the GLM.
type AnalysisModel int

const (
	ModelBoxcar AnalysisModel = iota
	ModelExponential
	ModelFIR
)

var modelNames = []string{"boxcar", "exponential", "fir"}

func (m AnalysisModel) String() string { return enumName(modelNames, int(m)) }

// Valid reports whether m is a known model.
func (m AnalysisModel) Valid() bool { return m >= 0 && int(m) < len(modelNames) }

// IsFIR reports whether m uses one regressor per post-onset offset.
func (m AnalysisModel) IsFIR() bool { return m == ModelFIR }

// Shape returns the response shape a parametric model regresses on.
// ok is false for FIR, which has no shape.
func (m AnalysisModel) Shape() (shape ResponseShape, ok bool) {
	switch m {
	case ModelBoxcar:
		return ShapeBoxcar, true
	case ModelExponential:
		return ShapeExponential, true
	default:
		return ShapeBoxcar, false
	}
}

// ParseAnalysisModel maps a name to an AnalysisModel (case-insensitive).
func ParseAnalysisModel(name string) (AnalysisModel, error) {
	i, err := enumParse(modelNames, name)
	return AnalysisModel(i), err
}

func (m AnalysisModel) MarshalYAML() (interface{}, error) { return m.String(), nil }

func (m *AnalysisModel) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseAnalysisModel(node.Value)
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// FIRMethod selects how FIR coefficients reduce to one response magnitude.
//
//   - FIRMaximum: largest |β_k|, with its time offset.
//   - FIRMean: mean of |β_k| over all FIR columns.
//   - FIRMeanPositive: mean of the strictly positive β_k.
//   - FIRTimeWindow: mean of |β_k| whose offsets fall in [WindowStart, WindowEnd].
type FIRMethod int

const (
	FIRMaximum FIRMethod = iota
	FIRMean
	FIRMeanPositive
	FIRTimeWindow
)

var firMethodNames = []string{"maximum", "mean", "meanPositive", "timeWindow"}

func (f FIRMethod) String() string { return enumName(firMethodNames, int(f)) }

// Valid reports whether f is a known method.
func (f FIRMethod) Valid() bool { return f >= 0 && int(f) < len(firMethodNames) }

// ParseFIRMethod maps a name to a FIRMethod (case-insensitive).
func ParseFIRMethod(name string) (FIRMethod, error) {
	i, err := enumParse(firMethodNames, name)
	return FIRMethod(i), err
}

func (f FIRMethod) MarshalYAML() (interface{}, error) { return f.String(), nil }

func (f *FIRMethod) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseFIRMethod(node.Value)
	if err != nil {
		return err
	}
	*f = v

	return nil
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}

	return names[i]
}

func enumParse(names []string, name string) (int, error) {
	for i, n := range names {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%q (valid: %s): %w", name, strings.Join(names, ", "), ErrUnknownName)
}
