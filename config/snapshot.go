// SPDX-License-Identifier: MIT

package config

// Snapshot is the comparable projection of a Config used for change
// detection. Every field is a value type, so two snapshots compare with ==.
type Snapshot struct {
	CO2      CO2Config
	MRI      MRIConfig
	Response ResponseConfig
	Analysis AnalysisConfig
}

// Snapshot projects c for change detection. Logging is excluded.
func (c Config) Snapshot() Snapshot {
	return Snapshot{
		CO2:      c.CO2,
		MRI:      c.MRI,
		Response: c.Response,
		Analysis: c.Analysis,
	}
}
