// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernels behind the GLM fit.
//
// What & Why:
//
//	Design matrices in cvrsim are small (a few hundred rows, at most a few
//	hundred columns for FIR models) and are rebuilt on almost every recompute.
//	A flat row-major buffer indexed as i*cols + j keeps them cache friendly and
//	avoids one allocation per row.
//
// Surface:
//   - Matrix interface with bounds-checked At/Set and deep Clone.
//   - Dense, the only concrete implementation.
//   - Transpose, Mul, MatVec: fast path for *Dense, At/Set fallback otherwise.
//   - Inverse: Gauss–Jordan elimination with partial pivoting; a pivot below
//     SingularTolerance yields ErrSingular.
//
// Errors are package sentinels wrapped as "<Op>: <sentinel>"; match them with
// errors.Is.
package matrix
