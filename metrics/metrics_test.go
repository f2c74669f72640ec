// SPDX-License-Identifier: MIT
package metrics_test

import (
	"testing"

	"github.com/katalvlaran/cvrsim/config"
	"github.com/katalvlaran/cvrsim/metrics"
	"github.com/stretchr/testify/assert"
)

func TestCompute_EmptyBeta(t *testing.T) {
	got := metrics.Compute(metrics.Input{Residual: []float64{1, 2}, ResponseColumns: 1, HasConstant: true})
	assert.Equal(t, metrics.Result{}, got)
}

func TestCompute_SingleColumnModel(t *testing.T) {
	got := metrics.Compute(metrics.Input{
		Beta:            []float64{-100, 1200, 3},
		Residual:        []float64{2, -2, 2, -2},
		ResponseColumns: 1,
		HasConstant:     true,
	})
	assert.InDelta(t, 100*100.0/1200, got.PercentChange, 1e-12)
	assert.InDelta(t, 2, got.NoiseRMS, 1e-12)
	assert.InDelta(t, 600, got.SNR, 1e-9)
	assert.InDelta(t, 50, got.CNR, 1e-9)
	assert.Zero(t, got.FIRMagnitude)
}

func TestCompute_Guards(t *testing.T) {
	noConst := metrics.Compute(metrics.Input{
		Beta:            []float64{100, 5},
		Residual:        []float64{1, 1},
		ResponseColumns: 1,
	})
	assert.Zero(t, noConst.PercentChange)
	assert.Zero(t, noConst.SNR)
	assert.InDelta(t, 100, noConst.CNR, 1e-12)

	zeroConst := metrics.Compute(metrics.Input{
		Beta:            []float64{100, 0},
		Residual:        []float64{1},
		ResponseColumns: 1,
		HasConstant:     true,
	})
	assert.Zero(t, zeroConst.PercentChange)

	perfect := metrics.Compute(metrics.Input{
		Beta:            []float64{100, 1200},
		Residual:        []float64{0, 0, 0},
		ResponseColumns: 1,
		HasConstant:     true,
	})
	assert.Zero(t, perfect.SNR, "zero noise RMS reads as 0")
	assert.Zero(t, perfect.CNR)
}

func TestCompute_FIRPercentUsesShiftedConstant(t *testing.T) {
	beta := []float64{1, 4, -2, 200}
	got := metrics.Compute(metrics.Input{
		Beta:            beta,
		Residual:        []float64{1},
		ResponseColumns: 3,
		HasConstant:     true,
		FIR:             true,
		FIRConfig:       config.FIRConfig{Method: config.FIRMaximum},
		SampleInterval:  2,
	})
	assert.Equal(t, 4.0, got.FIRMagnitude)
	assert.Equal(t, 2.0, got.FIRPeakTime)
	assert.InDelta(t, 2, got.PercentChange, 1e-12)
	assert.InDelta(t, 200, got.SNR, 1e-12)
	assert.InDelta(t, 4, got.CNR, 1e-12)
}

func TestFIRMagnitude_Methods(t *testing.T) {
	beta := []float64{1, -3, 3, 2, -1}
	cases := []struct {
		name     string
		cfg      config.FIRConfig
		mag      float64
		peakTime float64
	}{
		{"maximum keeps first tie", config.FIRConfig{Method: config.FIRMaximum}, 3, 2},
		{"mean of abs", config.FIRConfig{Method: config.FIRMean}, 2, 0},
		{"mean positive signed", config.FIRConfig{Method: config.FIRMeanPositive}, 2, 0},
		{"window", config.FIRConfig{Method: config.FIRTimeWindow, WindowStart: 2, WindowEnd: 6}, 8.0 / 3, 0},
		{"window clamped", config.FIRConfig{Method: config.FIRTimeWindow, WindowStart: -10, WindowEnd: 100}, 2, 0},
		{"window between samples", config.FIRConfig{Method: config.FIRTimeWindow, WindowStart: 2.5, WindowEnd: 3.5}, 3, 0},
		{"window past coverage", config.FIRConfig{Method: config.FIRTimeWindow, WindowStart: 20, WindowEnd: 30}, 1, 0},
		{"window before zero", config.FIRConfig{Method: config.FIRTimeWindow, WindowStart: -20, WindowEnd: -10}, 1, 0},
		{"window inverted", config.FIRConfig{Method: config.FIRTimeWindow, WindowStart: 6, WindowEnd: 2}, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mag, peak := metrics.FIRMagnitude(beta, tc.cfg, 2)
			assert.InDelta(t, tc.mag, mag, 1e-12)
			assert.Equal(t, tc.peakTime, peak)
		})
	}

	mag, _ := metrics.FIRMagnitude([]float64{-1, -2}, config.FIRConfig{Method: config.FIRMeanPositive}, 2)
	assert.Zero(t, mag, "no positive coefficients")
}

func TestWindowIndices_ThirtyToSixty(t *testing.T) {
	lo, hi := metrics.WindowIndices(30, 60, 2, 45)
	assert.Equal(t, 15, lo)
	assert.Equal(t, 30, hi)

	lo, hi = metrics.WindowIndices(30, 600, 2, 45)
	assert.Equal(t, 15, lo)
	assert.Equal(t, 44, hi)

	lo, hi = metrics.WindowIndices(60, 30, 2, 45)
	assert.Greater(t, lo, hi)
}

func TestWindowIndices_ClampedIntoCoverage(t *testing.T) {
	beta := make([]float64, 45)
	for k := range beta {
		beta[k] = float64(k + 1)
	}
	cases := []struct {
		name       string
		start, end float64
		lo, hi     int
		mag        float64
	}{
		{"past coverage", 100, 200, 44, 44, 45},
		{"before zero", -20, -10, 0, 0, 1},
		{"straddles end", 80, 120, 40, 44, 43},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi := metrics.WindowIndices(tc.start, tc.end, 2, len(beta))
			assert.Equal(t, tc.lo, lo)
			assert.Equal(t, tc.hi, hi)
			assert.GreaterOrEqual(t, lo, 0)
			assert.LessOrEqual(t, hi, len(beta)-1)

			cfg := config.FIRConfig{Method: config.FIRTimeWindow, WindowStart: tc.start, WindowEnd: tc.end}
			mag, _ := metrics.FIRMagnitude(beta, cfg, 2)
			assert.InDelta(t, tc.mag, mag, 1e-12)
		})
	}
}
