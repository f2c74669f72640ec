// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/cvrsim/config"
	"github.com/katalvlaran/cvrsim/engine"
	"github.com/katalvlaran/cvrsim/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one full simulation and print the fitted metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			reg := prometheus.NewRegistry()
			e, err := newEngine(cmd, cfg, reg)
			if err != nil {
				return err
			}

			if err := e.Recompute(cfg); err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if err := writeReports(cmd.OutOrStdout(), jsonOut, []report{newReport(e.Config(), e.Output())}); err != nil {
				return err
			}

			if dump, _ := cmd.Flags().GetBool("metrics"); dump {
				return writeMetrics(cmd, reg)
			}
			return nil
		},
	}
	cmd.Flags().Int64("seed", 0, "Seed for noise and CO₂ phase (time-seeded when unset)")
	cmd.Flags().Bool("metrics", false, "Print engine Prometheus metrics after the run")

	return cmd
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// newEngine wires logging, metrics and the optional seed into an engine.
func newEngine(cmd *cobra.Command, cfg config.Config, reg prometheus.Registerer) (*engine.Engine, error) {
	if err := engine.RegisterMetrics(reg); err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	logger := logging.NewLogger(cfg.Logging.Level, cfg.Logging.JSON, cmd.ErrOrStderr())

	opts := []engine.Option{engine.WithLogger(logger)}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		opts = append(opts, engine.WithSeed(seed))
	}

	return engine.New(opts...), nil
}

func writeMetrics(cmd *cobra.Command, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
			return err
		}
	}

	return nil
}
