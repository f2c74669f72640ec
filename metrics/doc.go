// SPDX-License-Identifier: MIT

// Package metrics derives the summary numbers of a fit: percent signal
// change, the FIR response magnitude, SNR and CNR.
//
// Column addressing follows the design layout: the response block occupies
// columns [0, ResponseColumns) and the constant, when present, sits at
// column ResponseColumns. An empty β means no valid model and yields an
// all-zero Result.
package metrics
