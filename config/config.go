// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"
)

// Paradigm constants. They are fixed and not configurable.
const (
	// TotalDuration is the length of every simulated run, in seconds.
	TotalDuration = 300.0
	// BlockDuration is the length of each baseline or stimulus block, in seconds.
	// Blocks alternate starting with baseline; odd-indexed blocks are stimulus.
	BlockDuration = 60.0
)

// Size limits enforced by Validate so a single recompute stays bounded.
const (
	// MaxMRISamples caps the MRI grid (a 0.1 s interval).
	MaxMRISamples = 3001
	// MaxCO2Samples caps the CO₂ grid (a 1 kHz sample rate).
	MaxCO2Samples = 300001
	// MaxFIRColumns caps the FIR regressor bank.
	MaxFIRColumns = 500
)

// Config contains all simulation and analysis settings.
type Config struct {
	// CO2 controls the respiratory CO₂ waveform.
	CO2 CO2Config `json:"co2" yaml:"co2"`

	// MRI controls the BOLD-like signal.
	MRI MRIConfig `json:"mri" yaml:"mri"`

	// Response is the response shape used to synthesize both signals.
	Response ResponseConfig `json:"response" yaml:"response"`

	// Analysis is the model fitted to the MRI signal. It is independent from Response.
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`

	// Logging is ambient and does not take part in change detection.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// CO2Config configures the respiratory waveform.
type CO2Config struct {
	// SampleRate in Hz.
	SampleRate float64 `json:"sample_rate" yaml:"sample_rate"`
	// BreathingRate in breaths per minute.
	BreathingRate float64 `json:"breathing_rate" yaml:"breathing_rate"`

	// Inhaled floor and end-tidal ceiling during baseline blocks, mmHg.
	BaselineMin float64 `json:"baseline_min" yaml:"baseline_min"`
	BaselineMax float64 `json:"baseline_max" yaml:"baseline_max"`
	// Floor and ceiling reached during stimulus blocks, mmHg.
	EnrichedMin float64 `json:"enriched_min" yaml:"enriched_min"`
	EnrichedMax float64 `json:"enriched_max" yaml:"enriched_max"`

	Variance VarianceConfig `json:"variance" yaml:"variance"`
	Drift    DriftConfig    `json:"drift" yaml:"drift"`
}

// VarianceConfig modulates breath depth and pacing with one slow sinusoid.
type VarianceConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// Frequency of the modulating sinusoid, Hz.
	Frequency float64 `json:"frequency" yaml:"frequency"`
	// Amplitude is the peak deviation of the breath ceiling, mmHg.
	Amplitude float64 `json:"amplitude" yaml:"amplitude"`
}

// DriftConfig is a cubic polynomial in normalized time t/TotalDuration.
// Units are mmHg for CO₂ and percent of baseline for MRI.
type DriftConfig struct {
	Enabled   bool    `json:"enabled" yaml:"enabled"`
	Linear    float64 `json:"linear" yaml:"linear"`
	Quadratic float64 `json:"quadratic" yaml:"quadratic"`
	Cubic     float64 `json:"cubic" yaml:"cubic"`
}

// At evaluates the drift polynomial at normalized time tau.
// It ignores Enabled; callers gate on it.
func (d DriftConfig) At(tau float64) float64 {
	return d.Linear*tau + d.Quadratic*tau*tau + d.Cubic*tau*tau*tau
}

// MRIConfig configures the BOLD-like signal.
type MRIConfig struct {
	// SampleInterval (repetition time) in seconds.
	SampleInterval float64 `json:"sample_interval" yaml:"sample_interval"`
	// Baseline signal level, arbitrary units.
	Baseline float64 `json:"baseline" yaml:"baseline"`
	// ResponseAmplitude added at full response.
	ResponseAmplitude float64 `json:"response_amplitude" yaml:"response_amplitude"`

	Noise NoiseConfig `json:"noise" yaml:"noise"`
	Drift DriftConfig `json:"drift" yaml:"drift"`
}

// NoiseConfig scales the cached unit-variance Gaussian sequence.
type NoiseConfig struct {
	Enabled   bool    `json:"enabled" yaml:"enabled"`
	Amplitude float64 `json:"amplitude" yaml:"amplitude"`
}

// ResponseConfig selects a response shape and its time constants (seconds).
type ResponseConfig struct {
	Shape    ResponseShape `json:"shape" yaml:"shape"`
	RiseTime float64       `json:"rise_time" yaml:"rise_time"`
	FallTime float64       `json:"fall_time" yaml:"fall_time"`
}

// AnalysisConfig configures the GLM design.
type AnalysisConfig struct {
	Model    AnalysisModel `json:"model" yaml:"model"`
	RiseTime float64       `json:"rise_time" yaml:"rise_time"`
	FallTime float64       `json:"fall_time" yaml:"fall_time"`
	FIR      FIRConfig     `json:"fir" yaml:"fir"`
	Terms    TermsConfig   `json:"terms" yaml:"terms"`
}

// Response returns the analysis shape and time constants as a ResponseConfig.
// ok is false for FIR models.
func (a AnalysisConfig) Response() (ResponseConfig, bool) {
	shape, ok := a.Model.Shape()
	return ResponseConfig{Shape: shape, RiseTime: a.RiseTime, FallTime: a.FallTime}, ok
}

// FIRConfig configures the finite-impulse-response model.
type FIRConfig struct {
	// Coverage is the post-onset duration spanned by FIR regressors, seconds.
	Coverage float64   `json:"coverage" yaml:"coverage"`
	Method   FIRMethod `json:"method" yaml:"method"`
	// WindowStart/WindowEnd bound FIRTimeWindow, seconds after onset, inclusive.
	WindowStart float64 `json:"window_start" yaml:"window_start"`
	WindowEnd   float64 `json:"window_end" yaml:"window_end"`
}

// CoverageSamples returns round(Coverage/interval), at least 1.
func (f FIRConfig) CoverageSamples(interval float64) int {
	if interval <= 0 {
		return 1
	}
	n := int(math.Round(f.Coverage / interval))
	if n < 1 {
		return 1
	}

	return n
}

// TermsConfig selects the drift regressors included in the design.
type TermsConfig struct {
	Constant  bool `json:"constant" yaml:"constant"`
	Linear    bool `json:"linear" yaml:"linear"`
	Quadratic bool `json:"quadratic" yaml:"quadratic"`
	Cubic     bool `json:"cubic" yaml:"cubic"`
}

// Any reports whether at least one drift term is selected.
func (t TermsConfig) Any() bool {
	return t.Constant || t.Linear || t.Quadratic || t.Cubic
}

// LoggingConfig configures operational logging.
type LoggingConfig struct {
	// Level: "debug", "info" (default), "warn" or "error".
	Level string `json:"level" yaml:"level"`
	JSON  bool   `json:"json" yaml:"json"`
}

// Default returns a Config with the stock paradigm: 15 breaths/min sampled
// at 10 Hz, a 2 s MRI interval, boxcar simulation and analysis, all four
// drift terms in the model.
func Default() Config {
	return Config{
		CO2: CO2Config{
			SampleRate:    10,
			BreathingRate: 15,
			BaselineMin:   0,
			BaselineMax:   40,
			EnrichedMin:   5,
			EnrichedMax:   48,
			Variance:      VarianceConfig{Enabled: false, Frequency: 0.02, Amplitude: 2},
			Drift:         DriftConfig{Enabled: false, Linear: 2, Quadratic: -1, Cubic: 0.5},
		},
		MRI: MRIConfig{
			SampleInterval:    2,
			Baseline:          1200,
			ResponseAmplitude: 100,
			Noise:             NoiseConfig{Enabled: true, Amplitude: 10},
			Drift:             DriftConfig{Enabled: false, Linear: 1, Quadratic: -0.5, Cubic: 0.25},
		},
		Response: ResponseConfig{Shape: ShapeBoxcar, RiseTime: 10, FallTime: 15},
		Analysis: AnalysisConfig{
			Model:    ModelBoxcar,
			RiseTime: 10,
			FallTime: 15,
			FIR: FIRConfig{
				Coverage:    90,
				Method:      FIRMaximum,
				WindowStart: 30,
				WindowEnd:   60,
			},
			Terms: TermsConfig{Constant: true, Linear: true, Quadratic: true, Cubic: true},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Validate checks that the configuration can be simulated.
// Time constants are not checked here: a non-positive rise or fall time
// degrades to the boxcar response for that block.
func (c Config) Validate() error {
	switch {
	case !(c.CO2.SampleRate > 0):
		return invalidf("co2.sample_rate must be > 0, got %v", c.CO2.SampleRate)
	case !(c.CO2.BreathingRate > 0):
		return invalidf("co2.breathing_rate must be > 0, got %v", c.CO2.BreathingRate)
	case 1/c.CO2.SampleRate > TotalDuration:
		return invalidf("co2.sample_rate %v Hz yields fewer than two samples", c.CO2.SampleRate)
	case !(c.MRI.SampleInterval > 0) || c.MRI.SampleInterval > TotalDuration:
		return invalidf("mri.sample_interval must be in (0, %v], got %v", TotalDuration, c.MRI.SampleInterval)
	case c.MRI.Noise.Amplitude < 0:
		return invalidf("mri.noise.amplitude must be >= 0, got %v", c.MRI.Noise.Amplitude)
	case c.CO2.Variance.Enabled && c.CO2.Variance.Frequency < 0:
		return invalidf("co2.variance.frequency must be >= 0, got %v", c.CO2.Variance.Frequency)
	case !c.Response.Shape.Valid():
		return invalidf("response.shape %v", c.Response.Shape)
	case !c.Analysis.Model.Valid():
		return invalidf("analysis.model %v", c.Analysis.Model)
	case !c.Analysis.FIR.Method.Valid():
		return invalidf("analysis.fir.method %v", c.Analysis.FIR.Method)
	case c.Analysis.Model.IsFIR() && !(c.Analysis.FIR.Coverage > 0):
		return invalidf("analysis.fir.coverage must be > 0 for fir models, got %v", c.Analysis.FIR.Coverage)
	case gridSize(c.MRI.SampleInterval) > MaxMRISamples:
		return invalidf("mri.sample_interval %v s yields more than %d samples", c.MRI.SampleInterval, MaxMRISamples)
	case gridSize(1/c.CO2.SampleRate) > MaxCO2Samples:
		return invalidf("co2.sample_rate %v Hz yields more than %d samples", c.CO2.SampleRate, MaxCO2Samples)
	case c.Analysis.Model.IsFIR() && math.Round(c.Analysis.FIR.Coverage/c.MRI.SampleInterval) > MaxFIRColumns:
		return invalidf("analysis.fir.coverage %v s yields more than %d columns", c.Analysis.FIR.Coverage, MaxFIRColumns)
	}

	validLevels := map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return invalidf("logging.level %q (valid: debug, info, warn, error)", c.Logging.Level)
	}

	return nil
}

// EnsureDriftTerm returns c with the constant term forced on when no drift
// term is selected, and whether it had to do so.
func (c Config) EnsureDriftTerm() (Config, bool) {
	if c.Analysis.Terms.Any() {
		return c, false
	}
	c.Analysis.Terms.Constant = true

	return c, true
}

// gridSize is the sample count of a TotalDuration axis with step dt,
// matching the endpoint-inclusive time axes the simulator builds.
func gridSize(dt float64) float64 {
	return math.Round(TotalDuration/dt) + 1
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid)
}
