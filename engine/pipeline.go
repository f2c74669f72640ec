// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"time"

	"github.com/katalvlaran/cvrsim/config"
	"github.com/katalvlaran/cvrsim/design"
	"github.com/katalvlaran/cvrsim/glm"
	"github.com/katalvlaran/cvrsim/metrics"
	"github.com/katalvlaran/cvrsim/signal"
)

// Stage names passed to Inputs.Observe.
const (
	StageCO2    = "co2"
	StageMRI    = "mri"
	StageDesign = "design"
	StageFit    = "fit"
)

// Inputs carries the state Recompute reads but does not own.
type Inputs struct {
	// Noise is the unit-variance sequence, one value per MRI sample.
	Noise []float64
	// CO2Phase offsets the CO₂ variance sinusoid, radians.
	CO2Phase float64
	// Observe, when set, receives the wall time of every stage that ran.
	Observe func(stage string, elapsed time.Duration)
}

func (in Inputs) timed(stage string, fn func()) {
	start := time.Now()
	fn()
	if in.Observe != nil {
		in.Observe(stage, time.Since(start))
	}
}

// Recompute applies plan to a clone of prev and returns the new Output;
// prev is never modified. cfg must be valid and already carry at least one
// drift term (see config.EnsureDriftTerm).
//
// The returned error is non-nil only when the fit failed (typically
// glm.ErrSingularDesign). The Output is complete in that case: raw signals
// and patterns stay valid, Model and Residual are zero, Detrended is a copy
// of Raw and every metric is 0.
func Recompute(prev *Output, cfg config.Config, plan Plan, in Inputs) (*Output, error) {
	out := prev.Clone()

	if plan.SynthesizeCO2 {
		in.timed(StageCO2, func() {
			out.CO2Time, out.CO2Raw = signal.SynthesizeCO2(cfg.CO2, cfg.Response, in.CO2Phase)
			out.EndTidalTime, out.EndTidalValue = signal.ExtractEndTidal(
				out.CO2Time, out.CO2Raw, cfg.CO2.SampleRate, cfg.CO2.BreathingRate)
		})
	}

	switch {
	case plan.SynthesizeMRI || (plan.RescaleMRI && len(out.MRITime) == 0):
		in.timed(StageMRI, func() {
			out.MRITime, out.MRIRaw = signal.SynthesizeMRI(cfg.MRI, cfg.Response, in.Noise)
		})
	case plan.RescaleMRI:
		in.timed(StageMRI, func() {
			det := signal.MRIDeterministic(cfg.MRI, cfg.Response, out.MRITime)
			out.MRIRaw = signal.RescaleMRI(det, in.Noise, cfg.MRI.Noise)
		})
	}

	if !plan.BuildDesign && !plan.Fit {
		return out, nil
	}

	var (
		d   *design.Design
		err error
	)
	in.timed(StageDesign, func() {
		d, err = design.Build(cfg, out.MRITime)
	})
	if err != nil {
		clearFit(out)
		out.BlockPatterns = nil
		return out, fmt.Errorf("Recompute: %w", err)
	}
	out.BlockPatterns = d.Patterns()

	if !plan.Fit {
		return out, nil
	}

	var res glm.Result
	in.timed(StageFit, func() {
		res, err = glm.Solve(d.X, out.MRIRaw)
		if err != nil {
			return
		}
		out.MRIModel = res.Fitted
		out.MRIResidual = res.Residual
		out.MRIDetrended = glm.Detrend(out.MRIRaw, d.X, res.Beta, d.DriftStart)
		out.Beta = res.Beta
		out.Valid = true

		m := metrics.Compute(metrics.Input{
			Beta:            res.Beta,
			Residual:        res.Residual,
			ResponseColumns: d.ResponseColumns,
			HasConstant:     d.HasConstant,
			FIR:             cfg.Analysis.Model.IsFIR(),
			FIRConfig:       cfg.Analysis.FIR,
			SampleInterval:  cfg.MRI.SampleInterval,
		})
		out.PercentChange = m.PercentChange
		out.FIRMagnitude = m.FIRMagnitude
		out.FIRPeakTime = m.FIRPeakTime
		out.SNR = m.SNR
		out.CNR = m.CNR
	})
	if err != nil {
		clearFit(out)
		return out, fmt.Errorf("Recompute: %w", err)
	}

	return out, nil
}

// clearFit resets the fit-derived fields to the "no valid model" state.
func clearFit(out *Output) {
	n := len(out.MRIRaw)
	out.MRIModel = make([]float64, n)
	out.MRIResidual = make([]float64, n)
	out.MRIDetrended = cloneSlice(out.MRIRaw)
	out.Beta = []float64{}
	out.PercentChange, out.FIRMagnitude, out.FIRPeakTime = 0, 0, 0
	out.SNR, out.CNR = 0, 0
	out.Valid = false
}
