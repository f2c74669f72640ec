// SPDX-License-Identifier: MIT

package engine

import "github.com/katalvlaran/cvrsim/config"

// Category is the kind of configuration change between two snapshots.
type Category int

// Categories in classification priority order.
const (
	CategoryNone Category = iota
	CategoryModelTerms
	CategoryNoiseAmplitude
	CategoryCO2Variance
	CategoryResponseShape
	CategoryAnalysis
	CategoryFull
)

var categoryNames = [...]string{
	CategoryNone:           "none",
	CategoryModelTerms:     "model_terms",
	CategoryNoiseAmplitude: "noise_amplitude",
	CategoryCO2Variance:    "co2_variance",
	CategoryResponseShape:  "response_shape",
	CategoryAnalysis:       "analysis",
	CategoryFull:           "full",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}

	return categoryNames[c]
}

// Classify returns the first category, in priority order, whose field set
// contains every difference between prev and cur:
//
//  1. none            nothing changed
//  2. model_terms     only Analysis.Terms
//  3. noise_amplitude only MRI.Noise.Amplitude
//  4. co2_variance    only CO2.Variance
//  5. response_shape  only Response
//  6. analysis        only Analysis (model, time constants, FIR, terms)
//  7. full            anything else
//
// A diff that spans two groups falls through to a broader category, so a
// cheaper plan is never chosen for a change it cannot absorb.
func Classify(prev, cur config.Snapshot) Category {
	if prev == cur {
		return CategoryNone
	}

	// Each probe copies cur's group into prev; equality then means the
	// group held every difference.
	probe := prev
	probe.Analysis.Terms = cur.Analysis.Terms
	if probe == cur {
		return CategoryModelTerms
	}

	probe = prev
	probe.MRI.Noise.Amplitude = cur.MRI.Noise.Amplitude
	if probe == cur {
		return CategoryNoiseAmplitude
	}

	probe = prev
	probe.CO2.Variance = cur.CO2.Variance
	if probe == cur {
		return CategoryCO2Variance
	}

	probe = prev
	probe.Response = cur.Response
	if probe == cur {
		return CategoryResponseShape
	}

	probe = prev
	probe.Analysis = cur.Analysis
	if probe == cur {
		return CategoryAnalysis
	}

	return CategoryFull
}
