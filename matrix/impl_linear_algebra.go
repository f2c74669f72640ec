// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the GLM solver:
// transpose, matrix multiplication, matrix-vector product and inversion.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast path on the flat backing slice and a
//     generic At/Set fallback with the same loop order.
//   - Results are always freshly allocated; inputs are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// SingularTolerance is the smallest pivot magnitude Inverse accepts.
const SingularTolerance = 1e-10

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opInverse   = "Inverse"
	opColumn    = "Column"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] pays off on FIR designs,
//     which are mostly zeros.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Fast-path copies *Dense data via flat indexing; fallback uses At/Set.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// MatVec computes y = m·x for a column vector x of length m.Cols().
//
// Errors:
//   - ErrNilMatrix (nil m or nil x), ErrDimensionMismatch (len(x) != Cols).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 {
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Inverse computes A^{-1} by Gauss–Jordan elimination with partial pivoting.
// The input must be non-nil and square. It is copied into an augmented [A | I]
// workspace and never mutated.
//
// Implementation:
//   - Stage 1: Validate; copy A into the left half of an n×2n buffer, I into the right.
//   - Stage 2: For each column c: pick the row r ≥ c with the largest |a[r,c]|;
//     fail with ErrSingular if that magnitude is below SingularTolerance;
//     swap rows r and c; scale row c so the pivot is 1; eliminate column c
//     from every other row.
//   - Stage 3: Copy the right half into the result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular.
//
// Determinism:
//   - Ties in pivot magnitude keep the lowest row index.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.Rows()
	w := 2 * n
	aug := make([]float64, n*w)

	// Stage 1: load [A | I]
	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < n; i++ {
			copy(aug[i*w:i*w+n], d.data[i*n:(i+1)*n])
			aug[i*w+n+i] = 1
		}
	} else {
		var v float64
		var err error
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				aug[i*w+j] = v
			}
			aug[i*w+n+i] = 1
		}
	}

	// Stage 2: eliminate
	var (
		col, r, pivotRow int
		best, mag, f     float64
		pivot            float64
	)
	for col = 0; col < n; col++ {
		pivotRow = col
		best = math.Abs(aug[col*w+col])
		for r = col + 1; r < n; r++ {
			mag = math.Abs(aug[r*w+col])
			if mag > best {
				best, pivotRow = mag, r
			}
		}
		if best < SingularTolerance {
			return nil, matrixErrorf(opInverse, fmt.Errorf("pivot %d: %w", col, ErrSingular))
		}
		if pivotRow != col {
			for j = 0; j < w; j++ {
				aug[col*w+j], aug[pivotRow*w+j] = aug[pivotRow*w+j], aug[col*w+j]
			}
		}

		pivot = aug[col*w+col]
		for j = 0; j < w; j++ {
			aug[col*w+j] /= pivot
		}

		for r = 0; r < n; r++ {
			if r == col {
				continue
			}
			f = aug[r*w+col]
			if f == 0 {
				continue
			}
			for j = 0; j < w; j++ {
				aug[r*w+j] -= f * aug[col*w+j]
			}
		}
	}

	// Stage 3: extract right half
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i = 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug[i*w+n:(i+1)*w])
	}

	return inv, nil
}

// Column returns a copy of column j of m.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (j outside [0, Cols)).
func Column(m Matrix, j int) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumn, err)
	}
	if j < 0 || j >= m.Cols() {
		return nil, matrixErrorf(opColumn, fmt.Errorf("col %d: %w", j, ErrOutOfRange))
	}
	if d, ok := m.(*Dense); ok {
		return d.Col(j), nil
	}

	out := make([]float64, m.Rows())
	var err error
	for i := range out {
		if out[i], err = m.At(i, j); err != nil {
			return nil, matrixErrorf(opColumn, fmt.Errorf("At(%d,%d): %w", i, j, err))
		}
	}

	return out, nil
}
