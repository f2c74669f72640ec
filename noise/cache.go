// SPDX-License-Identifier: MIT

package noise

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

const tau = 2.0 * math.Pi

// Cache retains one normalized Gaussian sequence.
type Cache struct {
	rng *rand.Rand
	seq []float64
}

// NewCache returns an empty cache.
func NewCache(opts ...Option) *Cache {
	cfg := newCacheConfig(opts...)
	return &Cache{rng: cfg.rng}
}

// Ensure returns a sequence of length n. A new sequence is drawn when the
// cache is empty, its length differs from n, or force is set; otherwise the
// cached sequence is returned unchanged. n <= 0 yields an empty sequence.
//
// The returned slice is owned by the cache; callers must not mutate it.
func (c *Cache) Ensure(n int, force bool) []float64 {
	if n <= 0 {
		c.seq = c.seq[:0]
		return c.seq
	}
	if !force && len(c.seq) == n {
		return c.seq
	}

	seq := make([]float64, n)
	for i := range seq {
		seq[i] = BoxMuller(c.rng)
	}
	normalize(seq)
	c.seq = seq

	return c.seq
}

// Sequence returns the cached sequence without drawing; nil when empty.
func (c *Cache) Sequence() []float64 {
	if len(c.seq) == 0 {
		return nil
	}

	return c.seq
}

// Len returns the cached sample count.
func (c *Cache) Len() int { return len(c.seq) }

// Invalidate clears the cache so the next Ensure draws afresh.
func (c *Cache) Invalidate() { c.seq = nil }

// BoxMuller draws one standard-normal value: sqrt(-2 ln u1)·cos(2π u2).
// u1 == 0 is resampled so the logarithm stays finite.
func BoxMuller(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	u2 := rng.Float64()

	return math.Sqrt(-2*math.Log(u1)) * math.Cos(tau*u2)
}

// normalize z-scores seq in place. Sequences with fewer than two samples or
// no spread are only centered.
func normalize(seq []float64) {
	if len(seq) < 2 {
		for i := range seq {
			seq[i] = 0
		}
		return
	}
	mean, std := stat.MeanStdDev(seq, nil)
	if std == 0 || math.IsNaN(std) {
		std = 1
	}
	for i := range seq {
		seq[i] = (seq[i] - mean) / std
	}
}
