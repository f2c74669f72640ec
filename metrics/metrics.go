// SPDX-License-Identifier: MIT

package metrics

import (
	"math"

	"github.com/katalvlaran/cvrsim/config"
	"gonum.org/v1/gonum/floats"
)

// Input carries what Compute needs from the design and the fit.
type Input struct {
	Beta            []float64
	Residual        []float64
	ResponseColumns int
	HasConstant     bool
	// FIR selects the FIR reductions; when false the response is column 0.
	FIR            bool
	FIRConfig      config.FIRConfig
	SampleInterval float64
}

// Result holds the derived metrics.
type Result struct {
	PercentChange float64
	// FIRMagnitude and FIRPeakTime are zero for non-FIR models.
	// FIRPeakTime is set only by the maximum method.
	FIRMagnitude float64
	FIRPeakTime  float64
	SNR          float64
	CNR          float64
	NoiseRMS     float64
}

// Compute derives all metrics.
//
//	percent = 100·contrast/|β_const|   (0 without a usable constant)
//	SNR     = |β_const|/rms(residual)  (0 if either operand is not positive)
//	CNR     = contrast/rms(residual)   (same guard)
//
// contrast is |β_0| for single-column models and FIRMagnitude for FIR.
func Compute(in Input) Result {
	if len(in.Beta) == 0 {
		return Result{}
	}

	var out Result
	out.NoiseRMS = RMS(in.Residual)

	signal := 0.0
	if ci := in.ResponseColumns; in.HasConstant && ci >= 0 && ci < len(in.Beta) {
		signal = math.Abs(in.Beta[ci])
	}

	var contrast float64
	if in.FIR {
		cov := in.ResponseColumns
		if cov > len(in.Beta) {
			cov = len(in.Beta)
		}
		out.FIRMagnitude, out.FIRPeakTime = FIRMagnitude(in.Beta[:cov], in.FIRConfig, in.SampleInterval)
		contrast = out.FIRMagnitude
	} else {
		contrast = math.Abs(in.Beta[0])
	}

	if signal > 0 {
		out.PercentChange = 100 * contrast / signal
	}
	out.SNR = ratio(signal, out.NoiseRMS)
	out.CNR = ratio(contrast, out.NoiseRMS)

	return out
}

// RMS returns sqrt(mean(x²)), 0 for an empty slice.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return floats.Norm(x, 2) / math.Sqrt(float64(len(x)))
}

func ratio(num, den float64) float64 {
	if !(num > 0) || !(den > 0) {
		return 0
	}

	return num / den
}
