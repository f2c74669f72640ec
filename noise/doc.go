// SPDX-License-Identifier: MIT

// Package noise owns the cached Gaussian sequence added to the MRI signal.
//
// The cache is what makes noise-amplitude edits comparable: the sequence is
// drawn once, normalized to mean 0 and standard deviation 1, and reused
// verbatim until a caller forces a new draw or the sample count changes.
// Scaling happens downstream, so the realization never moves with the
// amplitude.
//
// Determinism policy:
//   - WithSeed / WithRand fix the stream (tests, reproducible CLI runs).
//   - Without either, a time-seeded stream is used.
//
// The cache is not safe for concurrent use; the engine serializes access.
package noise
