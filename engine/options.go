// SPDX-License-Identifier: MIT

package engine

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/cvrsim/logging"
	"github.com/katalvlaran/cvrsim/noise"
)

// Option customizes an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	logger *slog.Logger
	rng    *rand.Rand
	cache  *noise.Cache
}

// WithLogger sets the logger. A nil logger keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(c *engineConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRand provides the RNG used for the CO₂ phase and, unless
// WithNoiseCache is given, the noise draws. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("engine: WithRand(nil)")
	}
	return func(c *engineConfig) {
		c.rng = r
	}
}

// WithSeed makes the engine deterministic.
func WithSeed(seed int64) Option {
	return func(c *engineConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNoiseCache injects a noise cache, e.g. one shared with a test.
func WithNoiseCache(nc *noise.Cache) Option {
	return func(c *engineConfig) {
		c.cache = nc
	}
}

func newEngineConfig(opts ...Option) engineConfig {
	var cfg engineConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.Discard()
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.cache == nil {
		cfg.cache = noise.NewCache(noise.WithRand(cfg.rng))
	}

	return cfg
}
