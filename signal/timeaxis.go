// SPDX-License-Identifier: MIT

package signal

import (
	"math"

	"github.com/katalvlaran/cvrsim/config"
)

// TimeAxis returns round(total/dt)+1 points i·dt, with the final point set to
// exactly total. The axis is strictly increasing because the rounding error
// of the last step never exceeds dt/2. A non-positive total or dt yields nil.
func TimeAxis(total, dt float64) []float64 {
	if !(total > 0) || !(dt > 0) {
		return nil
	}
	n := int(math.Round(total / dt))
	if n < 1 {
		n = 1
	}

	times := make([]float64, n+1)
	for i := 0; i < n; i++ {
		times[i] = float64(i) * dt
	}
	times[n] = total

	return times
}

// BlockIndex returns floor(t/BlockDuration).
func BlockIndex(t float64) int {
	return int(math.Floor(t / config.BlockDuration))
}

// IsStimulus reports whether t falls inside a stimulus (odd) block.
func IsStimulus(t float64) bool {
	return BlockIndex(t)%2 == 1
}

// normalizedTime maps t onto [0,1] for the drift polynomials.
func normalizedTime(t float64) float64 {
	return t / config.TotalDuration
}
