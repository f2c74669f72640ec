// SPDX-License-Identifier: MIT

package engine

// Plan selects the pipeline stages Recompute runs.
type Plan struct {
	// SynthesizeCO2 regenerates the CO₂ waveform and its end-tidal points.
	SynthesizeCO2 bool
	// SynthesizeMRI regenerates the MRI time axis and raw series.
	SynthesizeMRI bool
	// RescaleMRI rebuilds the raw MRI series from the cached noise at the
	// current amplitude, keeping the time axis.
	RescaleMRI bool
	// BuildDesign rebuilds the design matrix and BlockPatterns.
	BuildDesign bool
	// Fit reruns the GLM and the metrics. It implies BuildDesign.
	Fit bool
}

// Empty reports whether p runs nothing.
func (p Plan) Empty() bool { return p == Plan{} }

// Stage plans.
var (
	planFull = Plan{SynthesizeCO2: true, SynthesizeMRI: true, BuildDesign: true, Fit: true}
	planFit  = Plan{BuildDesign: true, Fit: true}

	// PlanRegenerateNoise resynthesizes MRI from a fresh draw and reanalyzes.
	PlanRegenerateNoise = Plan{SynthesizeMRI: true, BuildDesign: true, Fit: true}
	// PlanRandomizePhase regenerates the CO₂ waveform only.
	PlanRandomizePhase = Plan{SynthesizeCO2: true}
	// PlanReanalyze reruns design and fit on the current raw signals.
	PlanReanalyze = planFit
)

// PlanFor maps a change category to the stages it invalidates.
func PlanFor(c Category) Plan {
	switch c {
	case CategoryNone:
		return Plan{}
	case CategoryModelTerms, CategoryAnalysis:
		return planFit
	case CategoryNoiseAmplitude:
		return Plan{RescaleMRI: true, BuildDesign: true, Fit: true}
	case CategoryCO2Variance:
		return Plan{SynthesizeCO2: true, BuildDesign: true}
	default:
		return planFull
	}
}
