// SPDX-License-Identifier: MIT

package signal

import (
	"math"

	"github.com/katalvlaran/cvrsim/config"
)

// ResponseFactor returns the stimulus response level in [0,1] at time t.
//
// With k = floor(t/BlockDuration) and Δt the time since block k started:
//   - odd k: 1 for boxcar, 1-exp(-Δt/rise) for exponential;
//   - even k > 0 (the block after a stimulus) under exponential: exp(-Δt/fall);
//   - otherwise 0.
//
// A rise or fall time <= 0 degrades that block to the boxcar value.
func ResponseFactor(t float64, shape config.ResponseShape, rise, fall float64) float64 {
	k := BlockIndex(t)
	if k < 0 {
		return 0
	}
	dt := t - float64(k)*config.BlockDuration

	if k%2 == 1 {
		if shape != config.ShapeExponential || rise <= 0 {
			return 1
		}
		return 1 - math.Exp(-dt/rise)
	}

	if k > 0 && shape == config.ShapeExponential && fall > 0 {
		return math.Exp(-dt / fall)
	}

	return 0
}

// responseFactorOf is ResponseFactor driven by a ResponseConfig.
func responseFactorOf(t float64, rc config.ResponseConfig) float64 {
	return ResponseFactor(t, rc.Shape, rc.RiseTime, rc.FallTime)
}

// ResponsePattern evaluates the response factor on every point of times.
func ResponsePattern(times []float64, rc config.ResponseConfig) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = responseFactorOf(t, rc)
	}

	return out
}
