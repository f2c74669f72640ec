// SPDX-License-Identifier: MIT
package signal_test

import (
	"fmt"

	"github.com/katalvlaran/cvrsim/config"
	"github.com/katalvlaran/cvrsim/signal"
)

// ExampleResponseFactor contrasts the boxcar and exponential responses
// across a stimulus block (60-120 s) and the baseline block after it.
func ExampleResponseFactor() {
	for _, t := range []float64{30, 70, 130} {
		box := signal.ResponseFactor(t, config.ShapeBoxcar, 10, 15)
		exp := signal.ResponseFactor(t, config.ShapeExponential, 10, 15)
		fmt.Printf("t=%3.0f boxcar=%.3f exponential=%.3f\n", t, box, exp)
	}
	// Output:
	// t= 30 boxcar=0.000 exponential=0.000
	// t= 70 boxcar=1.000 exponential=0.632
	// t=130 boxcar=0.000 exponential=0.513
}
