// SPDX-License-Identifier: MIT

package design

import (
	"fmt"

	"github.com/katalvlaran/cvrsim/config"
	"github.com/katalvlaran/cvrsim/matrix"
	"github.com/katalvlaran/cvrsim/signal"
)

// Column labels.
const (
	LabelResponse  = "response"
	LabelConstant  = "constant"
	LabelLinear    = "linear"
	LabelQuadratic = "quadratic"
	LabelCubic     = "cubic"
)

// Design is a built regressor matrix plus the bookkeeping downstream stages
// need to address its columns.
type Design struct {
	// X has one row per MRI sample and one column per regressor.
	X *matrix.Dense
	// ResponseColumns is 1, or the FIR coverage in samples.
	ResponseColumns int
	// HasConstant reports whether column ResponseColumns is all ones.
	HasConstant bool
	// DriftStart is the first column removed by detrending:
	// ResponseColumns plus one when the constant is present.
	DriftStart int
	// Labels names every column, e.g. "fir[3]" or "linear".
	Labels []string
}

// ConstantIndex returns the constant column, or -1 when absent.
func (d *Design) ConstantIndex() int {
	if !d.HasConstant {
		return -1
	}

	return d.ResponseColumns
}

// Patterns returns copies of the response columns.
func (d *Design) Patterns() [][]float64 {
	out := make([][]float64, d.ResponseColumns)
	for k := range out {
		out[k] = d.X.Col(k)
	}

	return out
}

// Build assembles the design matrix for cfg.Analysis on the MRI grid times.
//
// Steps:
//  1. Response block: the analysis response factor, or the FIR bank.
//  2. Drift columns for each selected term, in order.
//
// Build does not force a drift term; callers that must avoid a bare
// response block apply config.EnsureDriftTerm first.
//
// Complexity: O(n·p) for n samples and p columns.
func Build(cfg config.Config, times []float64) (*Design, error) {
	n := len(times)
	if n == 0 {
		return nil, fmt.Errorf("Build: %w", ErrNoSamples)
	}

	an := cfg.Analysis
	respCols := 1
	if an.Model.IsFIR() {
		respCols = an.FIR.CoverageSamples(cfg.MRI.SampleInterval)
	}

	labels := make([]string, 0, respCols+4)
	if an.Model.IsFIR() {
		for k := 0; k < respCols; k++ {
			labels = append(labels, fmt.Sprintf("fir[%d]", k))
		}
	} else {
		labels = append(labels, LabelResponse)
	}
	terms := []struct {
		on    bool
		label string
		power int
	}{
		{an.Terms.Constant, LabelConstant, 0},
		{an.Terms.Linear, LabelLinear, 1},
		{an.Terms.Quadratic, LabelQuadratic, 2},
		{an.Terms.Cubic, LabelCubic, 3},
	}
	for _, term := range terms {
		if term.on {
			labels = append(labels, term.label)
		}
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, len(labels))
	}

	if an.Model.IsFIR() {
		for _, onset := range Onsets(times) {
			for k := 0; k < respCols && onset+k < n; k++ {
				rows[onset+k][k] = 1
			}
		}
	} else {
		rc, _ := an.Response()
		for i, v := range signal.ResponsePattern(times, rc) {
			rows[i][0] = v
		}
	}

	col := respCols
	for _, term := range terms {
		if !term.on {
			continue
		}
		for i, t := range times {
			rows[i][col] = power(t/config.TotalDuration, term.power)
		}
		col++
	}

	x, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	d := &Design{
		X:               x,
		ResponseColumns: respCols,
		HasConstant:     an.Terms.Constant,
		DriftStart:      respCols,
		Labels:          labels,
	}
	if d.HasConstant {
		d.DriftStart++
	}

	return d, nil
}

// Onsets returns the indices of the first sample of every stimulus block
// that starts before TotalDuration.
func Onsets(times []float64) []int {
	var out []int
	for i, t := range times {
		if t >= config.TotalDuration || !signal.IsStimulus(t) {
			continue
		}
		if i == 0 || !signal.IsStimulus(times[i-1]) {
			out = append(out, i)
		}
	}

	return out
}

func power(x float64, p int) float64 {
	v := 1.0
	for ; p > 0; p-- {
		v *= x
	}

	return v
}
