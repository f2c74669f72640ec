// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/cvrsim/matrix"
)

// ExampleInverse solves the normal equations of a two-column design by hand.
func ExampleInverse() {
	x, _ := matrix.NewDenseFrom([][]float64{{1, 0}, {1, 1}, {1, 2}})
	y := []float64{1, 3, 5}

	xt, _ := matrix.Transpose(x)
	xtx, _ := matrix.Mul(xt, x)
	inv, _ := matrix.Inverse(xtx)
	xty, _ := matrix.MatVec(xt, y)
	beta, _ := matrix.MatVec(inv, xty)

	fmt.Printf("intercept=%.1f slope=%.1f\n", beta[0], beta[1])
	// Output:
	// intercept=1.0 slope=2.0
}
