// SPDX-License-Identifier: MIT

package metrics

import (
	"math"

	"github.com/katalvlaran/cvrsim/config"
	"github.com/montanaflynn/stats"
)

// FIRMagnitude reduces the FIR coefficients to one response magnitude.
//
//   - maximum: the largest |β_k|; peak is k·dt of the first such k.
//   - mean: the mean of |β_k|.
//   - meanPositive: the mean of the strictly positive β_k (signed), 0 if none.
//   - timeWindow: the mean of |β_k| over WindowIndices(start, end, dt, len(β));
//     0 only when end < start.
//
// peak is zero for every method except maximum.
func FIRMagnitude(beta []float64, cfg config.FIRConfig, dt float64) (mag, peak float64) {
	if len(beta) == 0 {
		return 0, 0
	}

	switch cfg.Method {
	case config.FIRMaximum:
		best := -1
		for k, b := range beta {
			if best < 0 || math.Abs(b) > mag {
				mag, best = math.Abs(b), k
			}
		}
		return mag, float64(best) * dt

	case config.FIRMean:
		return mean(absAll(beta)), 0

	case config.FIRMeanPositive:
		pos := make([]float64, 0, len(beta))
		for _, b := range beta {
			if b > 0 {
				pos = append(pos, b)
			}
		}
		return mean(pos), 0

	case config.FIRTimeWindow:
		lo, hi := WindowIndices(cfg.WindowStart, cfg.WindowEnd, dt, len(beta))
		if lo > hi {
			return 0, 0
		}
		return mean(absAll(beta[lo : hi+1])), 0
	}

	return 0, 0
}

// WindowIndices maps the inclusive window [start, end] seconds to FIR column
// indices lo..hi. Both bounds are clamped to [0, cov-1], so a window wholly
// before 0 or past the coverage reduces to the first or last column. A window
// that falls between two sample offsets collapses to the column nearest its
// centre. Only end < start (or a degenerate dt or cov) is empty, signalled by
// lo > hi.
func WindowIndices(start, end, dt float64, cov int) (lo, hi int) {
	if !(dt > 0) || cov <= 0 || end < start {
		return 1, 0
	}
	lo = clampIndex(int(math.Ceil(start/dt)), cov)
	hi = clampIndex(int(math.Floor(end/dt)), cov)
	if lo > hi {
		mid := clampIndex(int(math.Round((start+end)/2/dt)), cov)
		lo, hi = mid, mid
	}

	return lo, hi
}

func clampIndex(i, cov int) int {
	if i < 0 {
		return 0
	}
	if i > cov-1 {
		return cov - 1
	}

	return i
}

func absAll(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Abs(v)
	}

	return out
}

// mean is stats.Mean with an empty input read as 0.
func mean(x []float64) float64 {
	m, err := stats.Mean(x)
	if err != nil {
		return 0
	}

	return m
}
