// SPDX-License-Identifier: MIT

package engine

// Output is the full state of one simulation and its analysis.
// Arrays sharing a time axis have equal length.
type Output struct {
	CO2Time []float64
	CO2Raw  []float64

	EndTidalTime  []float64
	EndTidalValue []float64

	MRITime      []float64
	MRIRaw       []float64
	MRIModel     []float64
	MRIDetrended []float64
	MRIResidual  []float64

	// BlockPatterns are the response regressors, one slice per column.
	BlockPatterns [][]float64
	// Beta is empty when the last fit was singular.
	Beta []float64

	PercentChange float64
	FIRMagnitude  float64
	FIRPeakTime   float64
	SNR           float64
	CNR           float64

	// Valid is false when the last fit failed.
	Valid bool
}

// Clone returns a deep copy; nil clones to an empty Output.
func (o *Output) Clone() *Output {
	if o == nil {
		return &Output{}
	}
	c := *o
	c.CO2Time = cloneSlice(o.CO2Time)
	c.CO2Raw = cloneSlice(o.CO2Raw)
	c.EndTidalTime = cloneSlice(o.EndTidalTime)
	c.EndTidalValue = cloneSlice(o.EndTidalValue)
	c.MRITime = cloneSlice(o.MRITime)
	c.MRIRaw = cloneSlice(o.MRIRaw)
	c.MRIModel = cloneSlice(o.MRIModel)
	c.MRIDetrended = cloneSlice(o.MRIDetrended)
	c.MRIResidual = cloneSlice(o.MRIResidual)
	c.Beta = cloneSlice(o.Beta)
	if o.BlockPatterns != nil {
		c.BlockPatterns = make([][]float64, len(o.BlockPatterns))
		for i, p := range o.BlockPatterns {
			c.BlockPatterns[i] = cloneSlice(p)
		}
	}

	return &c
}

func cloneSlice(s []float64) []float64 {
	if s == nil {
		return nil
	}
	out := make([]float64, len(s))
	copy(out, s)

	return out
}
