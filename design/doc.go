// SPDX-License-Identifier: MIT

// Package design builds the GLM design matrix for an MRI time grid.
//
// Columns come in a fixed order:
//
//	response block | constant | linear | quadratic | cubic
//
// The response block is one column for the boxcar and exponential analysis
// models (the analysis response factor) or coverageSamples columns for FIR,
// where column k marks the samples exactly k steps after each stimulus
// onset. The drift columns are powers of normalized time t/TotalDuration and
// appear only when selected.
package design
