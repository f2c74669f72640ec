// SPDX-License-Identifier: MIT

// Package config holds every simulation and analysis knob of cvrsim.
//
// A Config is a plain value: the external collaborator owns and mutates it,
// the engine reads a copy per call. Snapshot projects the fields that drive
// recomputation into a comparable value so change detection is a single ==.
//
// Loading follows defaults -> YAML file -> environment overrides.
package config
