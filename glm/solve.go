// SPDX-License-Identifier: MIT

package glm

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cvrsim/matrix"
	"gonum.org/v1/gonum/floats"
)

const opSolve = "Solve"

// Result is the outcome of one fit.
type Result struct {
	// Beta holds one coefficient per design column; empty when singular.
	Beta []float64
	// Fitted is X·β (zeros when singular).
	Fitted []float64
	// Residual is y − X·β (zeros when singular).
	Residual []float64
}

// Valid reports whether the fit produced coefficients.
func (r Result) Valid() bool { return len(r.Beta) > 0 }

// Solve regresses y onto the columns of X.
//
// Implementation:
//   - Stage 1: Xᵗ, XᵗX (matrix.Transpose, matrix.Mul).
//   - Stage 2: (XᵗX)⁻¹ by Gauss–Jordan (matrix.Inverse).
//   - Stage 3: β = (XᵗX)⁻¹(Xᵗy), fitted = Xβ, residual = y − fitted.
//
// Errors:
//   - ErrSingularDesign (with zeroed Fitted/Residual and empty Beta).
//   - ErrLength, matrix.ErrNilMatrix on malformed input (zero Result).
//
// Complexity: O(n·p² + p³) for n rows and p columns.
func Solve(x matrix.Matrix, y []float64) (Result, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	n := x.Rows()
	if len(y) != n {
		return Result{}, fmt.Errorf("%s: %d rows, %d observations: %w", opSolve, n, len(y), ErrLength)
	}

	xt, err := matrix.Transpose(x)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	xtx, err := matrix.Mul(xt, x)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	inv, err := matrix.Inverse(xtx)
	if errors.Is(err, matrix.ErrSingular) {
		return Result{
			Beta:     []float64{},
			Fitted:   make([]float64, n),
			Residual: make([]float64, n),
		}, fmt.Errorf("%s: %w", opSolve, ErrSingularDesign)
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	xty, err := matrix.MatVec(xt, y)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	beta, err := matrix.MatVec(inv, xty)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	fitted, err := matrix.MatVec(x, beta)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	residual := make([]float64, n)
	floats.SubTo(residual, y, fitted)

	return Result{Beta: beta, Fitted: fitted, Residual: residual}, nil
}

// Detrend returns y minus Σ_{j≥from} X[:,j]·β_j, removing the drift columns
// while keeping the response block and the constant. Callers pass
// Design.DriftStart as from: without a constant term the drift block begins
// right after the response columns (column 1 for single-column models), not at 2.
// An empty beta (singular fit) or nil X yields an unmodified copy of y.
func Detrend(y []float64, x matrix.Matrix, beta []float64, from int) []float64 {
	out := make([]float64, len(y))
	copy(out, y)
	if len(beta) == 0 || x == nil || x.Rows() != len(y) {
		return out
	}
	if from < 0 {
		from = 0
	}

	last := x.Cols()
	if len(beta) < last {
		last = len(beta)
	}
	for j := from; j < last; j++ {
		col, err := matrix.Column(x, j)
		if err != nil {
			break
		}
		floats.AddScaled(out, -beta[j], col)
	}

	return out
}
