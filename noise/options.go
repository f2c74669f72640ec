// SPDX-License-Identifier: MIT

package noise

import (
	"math/rand"
	"time"
)

// Option customizes a Cache before first use.
type Option func(*cacheConfig)

type cacheConfig struct {
	rng *rand.Rand
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("noise: WithRand(nil)")
	}
	return func(c *cacheConfig) {
		c.rng = r
	}
}

// WithSeed creates a deterministic RNG with the given seed.
func WithSeed(seed int64) Option {
	return func(c *cacheConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

func newCacheConfig(opts ...Option) cacheConfig {
	var cfg cacheConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
