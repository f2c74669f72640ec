// SPDX-License-Identifier: MIT

package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	recomputesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cvrsim",
			Name:      "recomputes_total",
			Help:      "Engine actions handled, partitioned by change category or action.",
		},
		[]string{"category"},
	)

	stageSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cvrsim",
			Name:      "stage_seconds",
			Help:      "Pipeline stage latency in seconds.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"stage"},
	)

	singularFitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cvrsim",
			Name:      "singular_fits_total",
			Help:      "Fits rejected because the design matrix was singular.",
		},
	)
)

// RegisterMetrics attaches the engine collectors to reg. Registering twice
// is not an error.
func RegisterMetrics(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		recomputesTotal,
		stageSeconds,
		singularFitsTotal,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

func observeStage(stage string, elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	stageSeconds.WithLabelValues(stage).Observe(elapsed.Seconds())
}
