// SPDX-License-Identifier: MIT

// Package glm fits ordinary least squares through the normal equations
// β = (XᵗX)⁻¹Xᵗy using the matrix kernels, and removes fitted drift.
//
// A singular XᵗX is a recoverable outcome: Solve returns an empty β and an
// error matching ErrSingularDesign, and downstream stages treat the model as
// absent.
package glm
