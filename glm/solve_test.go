// SPDX-License-Identifier: MIT
package glm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cvrsim/config"
	"github.com/katalvlaran/cvrsim/design"
	"github.com/katalvlaran/cvrsim/glm"
	"github.com/katalvlaran/cvrsim/matrix"
	"github.com/katalvlaran/cvrsim/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noiselessConfig() config.Config {
	cfg := config.Default()
	cfg.MRI.Noise.Enabled = false
	cfg.MRI.Drift.Enabled = false

	return cfg
}

func TestSolve_RecoversBoxcarAmplitude(t *testing.T) {
	cfg := noiselessConfig()
	times, y := signal.SynthesizeMRI(cfg.MRI, cfg.Response, nil)
	d, err := design.Build(cfg, times)
	require.NoError(t, err)

	res, err := glm.Solve(d.X, y)
	require.NoError(t, err)
	require.True(t, res.Valid())
	require.Len(t, res.Beta, 5)
	assert.InDelta(t, 100, res.Beta[0], 1e-6)
	assert.InDelta(t, 1200, res.Beta[1], 1e-6)
	for j := 2; j < 5; j++ {
		assert.InDelta(t, 0, res.Beta[j], 1e-6, "drift beta %d", j)
	}
	for i := range y {
		assert.InDelta(t, y[i], res.Fitted[i], 1e-6)
		assert.InDelta(t, 0, res.Residual[i], 1e-6)
	}
}

func TestSolve_RecoversDrift(t *testing.T) {
	cfg := noiselessConfig()
	cfg.MRI.Drift = config.DriftConfig{Enabled: true, Linear: 1, Quadratic: -0.5, Cubic: 0.25}
	times, y := signal.SynthesizeMRI(cfg.MRI, cfg.Response, nil)
	d, err := design.Build(cfg, times)
	require.NoError(t, err)

	res, err := glm.Solve(d.X, y)
	require.NoError(t, err)
	assert.InDelta(t, 12, res.Beta[2], 1e-5)  // 1200·1/100
	assert.InDelta(t, -6, res.Beta[3], 1e-5)  // 1200·-0.5/100
	assert.InDelta(t, 3, res.Beta[4], 1e-5)   // 1200·0.25/100

	det := glm.Detrend(y, d.X, res.Beta, d.DriftStart)
	clean := signal.MRIDeterministic(noiselessConfig().MRI, cfg.Response, times)
	for i := range det {
		assert.InDelta(t, clean[i], det[i], 1e-5)
	}
}

func TestSolve_SingularDuplicateColumns(t *testing.T) {
	x, err := matrix.NewDenseFrom([][]float64{
		{1, 1, 0},
		{1, 1, 1},
		{1, 1, 2},
		{1, 1, 3},
	})
	require.NoError(t, err)
	y := []float64{1, 2, 3, 4}

	res, err := glm.Solve(x, y)
	require.Error(t, err)
	assert.ErrorIs(t, err, glm.ErrSingularDesign)
	assert.ErrorIs(t, err, matrix.ErrSingular)
	assert.False(t, res.Valid())
	assert.Empty(t, res.Beta)
	assert.Equal(t, make([]float64, 4), res.Fitted)
	assert.Equal(t, make([]float64, 4), res.Residual)

	assert.Equal(t, y, glm.Detrend(y, x, res.Beta, 1), "singular fit detrends to a copy")
}

func TestSolve_BadInput(t *testing.T) {
	_, err := glm.Solve(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	x, err := matrix.NewDense(3, 1)
	require.NoError(t, err)
	_, err = glm.Solve(x, []float64{1, 2})
	assert.ErrorIs(t, err, glm.ErrLength)
}

func TestDetrend_RemovesFromIndex(t *testing.T) {
	x, err := matrix.NewDenseFrom([][]float64{
		{1, 1, 0},
		{0, 1, 1},
		{1, 1, 2},
	})
	require.NoError(t, err)
	y := []float64{10, 10, 10}
	beta := []float64{2, 3, 4}

	got := glm.Detrend(y, x, beta, 2)
	assert.Equal(t, []float64{10, 6, 2}, got)
	assert.Equal(t, []float64{10, 10, 10}, y, "input untouched")

	assert.Equal(t, y, glm.Detrend(y, x, beta, 3))
	assert.False(t, math.IsNaN(glm.Detrend(y, x, beta, -1)[0]))
}

func TestDetrend_WithoutConstantStartsAfterResponse(t *testing.T) {
	cfg := noiselessConfig()
	cfg.Analysis.Terms = config.TermsConfig{Linear: true}
	times := signal.MRITimes(cfg.MRI)
	d, err := design.Build(cfg, times)
	require.NoError(t, err)
	require.Equal(t, 1, d.DriftStart)

	resp := d.X.Col(0)
	y := make([]float64, len(times))
	for i, tm := range times {
		y[i] = 5*resp[i] + 3*tm/config.TotalDuration
	}
	res, err := glm.Solve(d.X, y)
	require.NoError(t, err)

	det := glm.Detrend(y, d.X, res.Beta, d.DriftStart)
	for i := range det {
		assert.InDelta(t, 5*resp[i], det[i], 1e-6)
	}
}
