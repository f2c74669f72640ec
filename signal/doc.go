// SPDX-License-Identifier: MIT

// Package signal synthesizes the paired CO₂ and MRI time series of a block
// paradigm and extracts end-tidal CO₂ from the respiratory waveform.
//
// The paradigm is fixed: config.TotalDuration seconds split into
// config.BlockDuration blocks that alternate baseline and stimulus, with the
// odd-indexed blocks carrying the stimulus. Both series share the response
// factor (ResponseFactor), a value in [0,1] describing how far the stimulus
// response has developed at time t.
//
// What:
//   - TimeAxis builds a sample grid that ends exactly at the total duration.
//   - SynthesizeCO2 renders the breath-by-breath waveform with optional
//     variance modulation and polynomial drift.
//   - SynthesizeMRI adds baseline, response, scaled noise and drift.
//     MRIDeterministic and RescaleMRI split that sum so a noise-amplitude
//     change can reuse one noise realization.
//   - ExtractEndTidal keeps the strict local maxima of each breath.
//
// All functions are pure and allocate their results.
package signal
