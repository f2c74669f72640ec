// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/cvrsim/config"
	"github.com/katalvlaran/cvrsim/engine"
)

// report is the printable summary of one engine output.
type report struct {
	Model          string    `json:"model"`
	NoiseAmplitude float64   `json:"noise_amplitude"`
	Valid          bool      `json:"valid"`
	Beta           []float64 `json:"beta"`
	PercentChange  float64   `json:"percent_change"`
	FIRMagnitude   float64   `json:"fir_magnitude,omitempty"`
	FIRPeakTime    float64   `json:"fir_peak_time,omitempty"`
	SNR            float64   `json:"snr"`
	CNR            float64   `json:"cnr"`
	MRISamples     int       `json:"mri_samples"`
	CO2Samples     int       `json:"co2_samples"`
	EndTidalPoints int       `json:"end_tidal_points"`
}

func newReport(cfg config.Config, out *engine.Output) report {
	amp := 0.0
	if cfg.MRI.Noise.Enabled {
		amp = cfg.MRI.Noise.Amplitude
	}

	return report{
		Model:          cfg.Analysis.Model.String(),
		NoiseAmplitude: amp,
		Valid:          out.Valid,
		Beta:           out.Beta,
		PercentChange:  out.PercentChange,
		FIRMagnitude:   out.FIRMagnitude,
		FIRPeakTime:    out.FIRPeakTime,
		SNR:            out.SNR,
		CNR:            out.CNR,
		MRISamples:     len(out.MRITime),
		CO2Samples:     len(out.CO2Time),
		EndTidalPoints: len(out.EndTidalTime),
	}
}

func writeReports(w io.Writer, jsonOut bool, reports []report) error {
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(reports) == 1 {
			return enc.Encode(reports[0])
		}
		return enc.Encode(reports)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODEL\tNOISE\tVALID\tCHANGE%\tFIR\tSNR\tCNR")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%.2f\t%t\t%.3f\t%.3f\t%.2f\t%.2f\n",
			r.Model, r.NoiseAmplitude, r.Valid, r.PercentChange, r.FIRMagnitude, r.SNR, r.CNR)
	}

	return tw.Flush()
}
