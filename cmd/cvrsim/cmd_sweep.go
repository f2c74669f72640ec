// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Refit across MRI noise amplitudes with one fixed noise realization",
		Long: `sweep applies each noise amplitude as an amplitude-only update, so the
engine rescales the cached noise instead of drawing a new one. Metrics
across rows are therefore directly comparable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			amps, _ := cmd.Flags().GetFloat64Slice("noise")
			if len(amps) == 0 {
				return fmt.Errorf("sweep: --noise needs at least one amplitude")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg.MRI.Noise.Enabled = true

			e, err := newEngine(cmd, cfg, prometheus.NewRegistry())
			if err != nil {
				return err
			}

			reports := make([]report, 0, len(amps))
			for _, a := range amps {
				cfg.MRI.Noise.Amplitude = a
				if err := e.Recompute(cfg); err != nil {
					return fmt.Errorf("sweep: amplitude %v: %w", a, err)
				}
				reports = append(reports, newReport(e.Config(), e.Output()))
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			return writeReports(cmd.OutOrStdout(), jsonOut, reports)
		},
	}
	cmd.Flags().Float64Slice("noise", []float64{5, 10, 20}, "Comma-separated MRI noise amplitudes")
	cmd.Flags().Int64("seed", 0, "Seed for noise and CO₂ phase (time-seeded when unset)")

	return cmd
}
