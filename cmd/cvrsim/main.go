// SPDX-License-Identifier: MIT

// Command cvrsim runs the CO₂/MRI block-paradigm simulation from the
// command line and prints the recovered model metrics.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cvrsim",
		Short: "Simulate paired CO₂ and MRI series and fit a GLM",
		Long: `cvrsim synthesizes a respiratory CO₂ waveform and a BOLD-like MRI signal
under a 300 s block paradigm, then recovers the response amplitude and
drift terms with a general linear model.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			return loadEnvFile(envFile)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "YAML configuration file (defaults apply to omitted keys)")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("env-file", ".env", "Environment file loaded when present")

	rootCmd.AddCommand(
		newVersionCmd(),
		newDefaultsCmd(),
		newRunCmd(),
		newSweepCmd(),
	)

	return rootCmd
}

// loadEnvFile loads KEY=VALUE pairs from path. A missing file is not an
// error; variables already set in the environment win.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cvrsim version %s\n", version)
		},
	}
}
