// SPDX-License-Identifier: MIT

package signal

import "math"

// minHalfWindow is the smallest end-tidal search half-window, in samples.
const minHalfWindow = 2

// EndTidalHalfWindow returns max(2, ⌊pointsPerBreath/4⌋) where
// pointsPerBreath = ⌊sampleRate·60/breathingRate⌋.
func EndTidalHalfWindow(sampleRate, breathingRate float64) int {
	if !(breathingRate > 0) {
		return minHalfWindow
	}
	ppb := int(math.Floor(sampleRate * 60 / breathingRate))
	if h := ppb / 4; h > minHalfWindow {
		return h
	}

	return minHalfWindow
}

// ExtractEndTidal returns the (time, value) pairs of per-breath maxima.
//
// A sample i is kept when it exceeds both neighbours and is strictly greater
// than every other sample in [i-h, i+h], the window clipped to the series.
// Equal values inside a window suppress each other. Pairs come in time order.
//
// Complexity: O(n·h).
func ExtractEndTidal(times, values []float64, sampleRate, breathingRate float64) (et, ev []float64) {
	n := len(values)
	if len(times) < n {
		n = len(times)
	}
	h := EndTidalHalfWindow(sampleRate, breathingRate)

	for i := 1; i < n-1; i++ {
		v := values[i]
		if v <= values[i-1] || v <= values[i+1] {
			continue
		}
		if !strictWindowMax(values[:n], i, h) {
			continue
		}
		et = append(et, times[i])
		ev = append(ev, v)
	}

	return et, ev
}

func strictWindowMax(values []float64, i, h int) bool {
	lo, hi := i-h, i+h
	if lo < 0 {
		lo = 0
	}
	if hi > len(values)-1 {
		hi = len(values) - 1
	}
	for j := lo; j <= hi; j++ {
		if j != i && values[j] >= values[i] {
			return false
		}
	}

	return true
}
