// SPDX-License-Identifier: MIT

package signal

import (
	"math"

	"github.com/katalvlaran/cvrsim/config"
)

// FMDepth is the peak respiratory phase deviation, in radians, produced by
// the variance sinusoid.
const FMDepth = math.Pi / 4

// SynthesizeCO2 renders the respiratory CO₂ waveform on a TimeAxis sampled
// at cfg.SampleRate. resp is the simulation response shape and phase the
// persisted offset of the variance sinusoid.
//
// Per sample:
//
//	m     = sin(2π·f_var·t + phase)          (0 when variance is disabled)
//	s     = sin(2π·breaths/60·t + FMDepth·m)
//	floor = EnrichedMin in stimulus blocks, BaselineMin otherwise
//	ceil  = BaselineMax + (EnrichedMax-BaselineMax)·factor(t)
//	a     = 1 + m·Amplitude/(ceil-floor)     (1 when ceil <= floor)
//	co2   = floor + (ceil-floor)·(s+1)/2·a  [+ drift(t/TotalDuration)]
//
// The amplitude factor is calibrated so the breath peak moves by exactly
// Amplitude·m mmHg.
//
// Complexity: O(n) with n = TotalDuration·SampleRate+1.
func SynthesizeCO2(cfg config.CO2Config, resp config.ResponseConfig, phase float64) (times, values []float64) {
	times = TimeAxis(config.TotalDuration, 1/cfg.SampleRate)
	values = make([]float64, len(times))

	breathHz := cfg.BreathingRate / 60
	var m, s, lo, hi, span, a float64
	for i, t := range times {
		m = 0
		if cfg.Variance.Enabled {
			m = math.Sin(2*math.Pi*cfg.Variance.Frequency*t + phase)
		}
		s = math.Sin(2*math.Pi*breathHz*t + FMDepth*m)

		lo = cfg.BaselineMin
		if IsStimulus(t) {
			lo = cfg.EnrichedMin
		}
		hi = cfg.BaselineMax + (cfg.EnrichedMax-cfg.BaselineMax)*responseFactorOf(t, resp)

		span = hi - lo
		a = 1
		if span > 0 {
			a = 1 + m*cfg.Variance.Amplitude/span
		}

		values[i] = lo + span*((s+1)/2)*a
		if cfg.Drift.Enabled {
			values[i] += cfg.Drift.At(normalizedTime(t))
		}
	}

	return times, values
}
