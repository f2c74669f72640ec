// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvLogLevel          = "CVRSIM_LOG_LEVEL"
	EnvNoiseAmplitude    = "CVRSIM_NOISE_AMPLITUDE"
	EnvResponseAmplitude = "CVRSIM_RESPONSE_AMPLITUDE"
)

// Load builds a configuration from defaults, the optional YAML file at path
// and environment overrides, in that order. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}

	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// LoadFromFile loads configuration from a YAML file on top of Default,
// so omitted keys keep their default values.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML on top of Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Marshal renders cfg as YAML with enum names spelled out.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// ApplyEnv applies environment overrides read through lookup.
// lookup is usually os.LookupEnv; tests pass a map-backed func.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v, ok := lookup(EnvNoiseAmplitude); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvNoiseAmplitude, v, ErrInvalid)
		}
		cfg.MRI.Noise.Amplitude = f
	}
	if v, ok := lookup(EnvResponseAmplitude); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvResponseAmplitude, v, ErrInvalid)
		}
		cfg.MRI.ResponseAmplitude = f
	}

	return nil
}
