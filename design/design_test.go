// SPDX-License-Identifier: MIT
package design_test

import (
	"testing"

	"github.com/katalvlaran/cvrsim/config"
	"github.com/katalvlaran/cvrsim/design"
	"github.com/katalvlaran/cvrsim/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mriTimes(cfg config.Config) []float64 {
	return signal.MRITimes(cfg.MRI)
}

func TestBuild_BoxcarWithAllTerms(t *testing.T) {
	cfg := config.Default()
	times := mriTimes(cfg)

	d, err := design.Build(cfg, times)
	require.NoError(t, err)
	assert.Equal(t, 151, d.X.Rows())
	assert.Equal(t, 5, d.X.Cols())
	assert.Equal(t, []string{"response", "constant", "linear", "quadratic", "cubic"}, d.Labels)
	assert.Equal(t, 1, d.ResponseColumns)
	assert.True(t, d.HasConstant)
	assert.Equal(t, 1, d.ConstantIndex())
	assert.Equal(t, 2, d.DriftStart)

	resp := d.X.Col(0)
	assert.Equal(t, 0.0, resp[0])
	assert.Equal(t, 1.0, resp[30]) // t = 60
	assert.Equal(t, 0.0, resp[60]) // t = 120

	assert.Equal(t, 1.0, d.X.Col(1)[77])
	row := d.X.Row(150) // t = 300, tau = 1
	assert.Equal(t, []float64{1, 1, 1, 1}, row[1:])
	row = d.X.Row(75) // t = 150, tau = 0.5
	assert.InDeltaSlice(t, []float64{1, 0.5, 0.25, 0.125}, row[1:], 1e-12)
}

func TestBuild_ExponentialUsesAnalysisShape(t *testing.T) {
	cfg := config.Default()
	cfg.Analysis.Model = config.ModelExponential
	cfg.Response.Shape = config.ShapeBoxcar

	d, err := design.Build(cfg, mriTimes(cfg))
	require.NoError(t, err)
	want := signal.ResponseFactor(70, config.ShapeExponential, cfg.Analysis.RiseTime, cfg.Analysis.FallTime)
	assert.InDelta(t, want, d.X.Col(0)[35], 1e-12)
}

func TestBuild_FIRColumns(t *testing.T) {
	cfg := config.Default()
	cfg.Analysis.Model = config.ModelFIR
	times := mriTimes(cfg)

	d, err := design.Build(cfg, times)
	require.NoError(t, err)
	require.Equal(t, 45, d.ResponseColumns, "90 s coverage at 2 s")
	assert.Equal(t, 45+4, d.X.Cols())
	assert.Equal(t, "fir[0]", d.Labels[0])
	assert.Equal(t, "fir[44]", d.Labels[44])
	assert.Equal(t, "constant", d.Labels[45])
	assert.Equal(t, 45, d.ConstantIndex())
	assert.Equal(t, 46, d.DriftStart)

	assert.Equal(t, []int{30, 90}, design.Onsets(times))
	for k := 0; k < d.ResponseColumns; k++ {
		col := d.X.Col(k)
		ones := 0
		for i, v := range col {
			if v == 1 {
				ones++
				assert.Contains(t, []int{30 + k, 90 + k}, i, "column %d", k)
			}
		}
		assert.Equal(t, 2, ones, "column %d", k)
	}
}

func TestBuild_FIRTruncatedAtEnd(t *testing.T) {
	cfg := config.Default()
	cfg.Analysis.Model = config.ModelFIR
	cfg.Analysis.FIR.Coverage = 200 // 100 columns, the second onset runs off the grid
	times := mriTimes(cfg)

	d, err := design.Build(cfg, times)
	require.NoError(t, err)
	col := d.X.Col(99)
	sum := 0.0
	for _, v := range col {
		sum += v
	}
	assert.Equal(t, 1.0, sum, "only the first onset reaches offset 99")
}

func TestBuild_NoTerms(t *testing.T) {
	cfg := config.Default()
	cfg.Analysis.Terms = config.TermsConfig{}

	d, err := design.Build(cfg, mriTimes(cfg))
	require.NoError(t, err)
	assert.Equal(t, 1, d.X.Cols(), "the response block remains")
	assert.False(t, d.HasConstant)
	assert.Equal(t, -1, d.ConstantIndex())
	assert.Equal(t, 1, d.DriftStart)
}

func TestBuild_PatternsAndEmpty(t *testing.T) {
	cfg := config.Default()
	d, err := design.Build(cfg, mriTimes(cfg))
	require.NoError(t, err)
	p := d.Patterns()
	require.Len(t, p, 1)
	assert.Len(t, p[0], 151)

	_, err = design.Build(cfg, nil)
	assert.ErrorIs(t, err, design.ErrNoSamples)
}

func TestBuild_EveryCellWritten(t *testing.T) {
	cfg := config.Default()
	cfg.Analysis.Terms = config.TermsConfig{Linear: true, Cubic: true}
	times := mriTimes(cfg)

	d, err := design.Build(cfg, times)
	require.NoError(t, err)
	require.Equal(t, []string{"response", "linear", "cubic"}, d.Labels)
	assert.Equal(t, 1, d.DriftStart)

	rc, ok := cfg.Analysis.Response()
	require.True(t, ok)
	resp := signal.ResponsePattern(times, rc)
	for i, tm := range times {
		tau := tm / config.TotalDuration
		row := d.X.Row(i)
		assert.Equal(t, resp[i], row[0], "response at row %d", i)
		assert.InDelta(t, tau, row[1], 1e-12, "linear at row %d", i)
		assert.InDelta(t, tau*tau*tau, row[2], 1e-12, "cubic at row %d", i)
	}
}
