// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/cvrsim/config"
	"github.com/katalvlaran/cvrsim/glm"
	"github.com/katalvlaran/cvrsim/noise"
	"github.com/katalvlaran/cvrsim/signal"
)

// Action labels recorded next to the change categories.
const (
	actionRegenerateNoise = "regenerate_noise"
	actionRandomizePhase  = "randomize_co2_phase"
	actionReanalyze       = "reanalyze"
)

type listener struct {
	id int
	fn func(*Output)
}

// Engine holds the current configuration and Output together with the
// state that outlives a single recompute: the noise cache and the CO₂ phase.
type Engine struct {
	logger *slog.Logger
	rng    *rand.Rand
	cache  *noise.Cache

	cfg   config.Config
	ready bool
	out   *Output
	phase float64

	listeners []listener
	nextID    int
}

// New returns an engine with no configuration applied.
func New(opts ...Option) *Engine {
	c := newEngineConfig(opts...)
	return &Engine{
		logger: c.logger,
		rng:    c.rng,
		cache:  c.cache,
		out:    &Output{},
	}
}

// Output returns the current output. Callers must treat it as read-only;
// use Clone to retain a copy across actions.
func (e *Engine) Output() *Output { return e.out }

// Config returns the effective configuration of the last accepted Recompute.
func (e *Engine) Config() config.Config { return e.cfg }

// CO2Phase returns the persisted CO₂ variance phase, radians.
func (e *Engine) CO2Phase() float64 { return e.phase }

// Subscribe registers fn to run after every action. The returned func
// removes it.
func (e *Engine) Subscribe(fn func(*Output)) (unsubscribe func()) {
	id := e.nextID
	e.nextID++
	e.listeners = append(e.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range e.listeners {
			if l.id == id {
				e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

// Recompute brings the output up to date with cfg, rerunning only the
// stages the change invalidates. The first call always runs everything.
//
// An invalid cfg is rejected with an error wrapping config.ErrInvalid and
// the previous state is kept. A singular fit is not an error: it is logged
// and the output carries zeroed metrics with Valid false.
func (e *Engine) Recompute(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		e.logger.Warn("configuration rejected", "err", err)
		return fmt.Errorf("Recompute: %w", err)
	}

	eff, forced := cfg.EnsureDriftTerm()
	if forced {
		e.logger.Warn("no drift term selected, forcing the constant term on")
	}

	category := CategoryFull
	if e.ready {
		category = Classify(e.cfg.Snapshot(), eff.Snapshot())
	}
	plan := PlanFor(category)
	e.logger.Debug("recompute", "category", category.String())

	e.run(eff, plan, category.String())

	return nil
}

// RegenerateNoise draws a fresh noise realization, resynthesizes the MRI
// signal and reanalyzes.
func (e *Engine) RegenerateNoise() error {
	if !e.ready {
		return fmt.Errorf("RegenerateNoise: %w", ErrNotReady)
	}
	e.cache.Invalidate()
	e.run(e.cfg, PlanRegenerateNoise, actionRegenerateNoise)

	return nil
}

// RandomizeCO2Phase redraws the CO₂ phase uniformly in [0, 2π) and
// regenerates the CO₂ signal only.
func (e *Engine) RandomizeCO2Phase() error {
	if !e.ready {
		return fmt.Errorf("RandomizeCO2Phase: %w", ErrNotReady)
	}
	e.phase = e.rng.Float64() * 2 * math.Pi
	e.logger.Debug("co2 phase randomized", "phase", e.phase)
	e.run(e.cfg, PlanRandomizePhase, actionRandomizePhase)

	return nil
}

// ReanalyzeOnly rebuilds the design and refits on the current raw signals.
func (e *Engine) ReanalyzeOnly() error {
	if !e.ready {
		return fmt.Errorf("ReanalyzeOnly: %w", ErrNotReady)
	}
	e.run(e.cfg, PlanReanalyze, actionReanalyze)

	return nil
}

// run executes plan, commits the result and notifies listeners.
func (e *Engine) run(cfg config.Config, plan Plan, label string) {
	in := Inputs{
		CO2Phase: e.phase,
		Observe: func(stage string, elapsed time.Duration) {
			observeStage(stage, elapsed)
			e.logger.Debug("stage done", "stage", stage, "elapsed", elapsed)
		},
	}
	if plan.SynthesizeMRI || plan.RescaleMRI {
		n := len(signal.MRITimes(cfg.MRI))
		in.Noise = e.cache.Ensure(n, false)
	}

	out, err := Recompute(e.out, cfg, plan, in)
	if err != nil {
		if errors.Is(err, glm.ErrSingularDesign) {
			singularFitsTotal.Inc()
		}
		e.logger.Warn("fit failed, metrics zeroed", "err", err)
	}

	e.cfg = cfg
	e.ready = true
	e.out = out
	recomputesTotal.WithLabelValues(label).Inc()
	e.notify()
}

func (e *Engine) notify() {
	// Copy so a listener may unsubscribe itself.
	ls := append([]listener(nil), e.listeners...)
	for _, l := range ls {
		l.fn(e.out)
	}
}
