// SPDX-License-Identifier: MIT

package signal

import (
	"github.com/katalvlaran/cvrsim/config"
)

// MRITimes returns the MRI sample grid for cfg.
func MRITimes(cfg config.MRIConfig) []float64 {
	return TimeAxis(config.TotalDuration, cfg.SampleInterval)
}

// MRIDeterministic returns every MRI term except noise at each time point:
// Baseline + ResponseAmplitude·factor(t), plus Baseline·drift(τ)/100 when
// drift is enabled.
func MRIDeterministic(cfg config.MRIConfig, resp config.ResponseConfig, times []float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = cfg.Baseline + cfg.ResponseAmplitude*responseFactorOf(t, resp)
		if cfg.Drift.Enabled {
			out[i] += cfg.Baseline * cfg.Drift.At(normalizedTime(t)) / 100
		}
	}

	return out
}

// RescaleMRI rebuilds the raw MRI series from its deterministic part and a
// unit-variance noise sequence: det[i] + z[i]·Amplitude when noise is
// enabled. Samples beyond len(z) receive no noise.
//
// Reusing the same z across calls keeps the realization fixed while the
// amplitude changes.
func RescaleMRI(det, z []float64, nc config.NoiseConfig) []float64 {
	out := make([]float64, len(det))
	copy(out, det)
	if !nc.Enabled {
		return out
	}
	for i := range out {
		if i >= len(z) {
			break
		}
		out[i] += z[i] * nc.Amplitude
	}

	return out
}

// SynthesizeMRI renders the raw MRI series on MRITimes(cfg).
func SynthesizeMRI(cfg config.MRIConfig, resp config.ResponseConfig, z []float64) (times, values []float64) {
	times = MRITimes(cfg)
	return times, RescaleMRI(MRIDeterministic(cfg, resp, times), z, cfg.Noise)
}
