// SPDX-License-Identifier: MIT

// Package cvrsim simulates cerebrovascular-reactivity experiments: a
// respiratory CO₂ waveform and a BOLD-like MRI signal under a 300 s block
// paradigm, analysed with a general linear model.
//
// Layout:
//
//	matrix/   dense row-major linear algebra (transpose, multiply, Gauss–Jordan inverse)
//	noise/    cached z-scored Gaussian noise
//	config/   configuration, YAML loading, environment overrides
//	signal/   CO₂ and MRI synthesis, end-tidal extraction
//	design/   GLM design matrices (boxcar, exponential, FIR + drift terms)
//	glm/      least-squares fit and detrending
//	metrics/  percent change, FIR magnitude, SNR, CNR
//	engine/   incremental recompute coordinator with subscribers
//	logging/  slog setup
//	cmd/cvrsim  command-line front end
//
// Quick start:
//
//	e := engine.New(engine.WithSeed(1))
//	if err := e.Recompute(config.Default()); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(e.Output().PercentChange)
package cvrsim
