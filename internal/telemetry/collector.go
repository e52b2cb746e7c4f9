// Package telemetry exposes recomputation and session metrics to Prometheus.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"aid-gap-analyzer/internal/dashboard/core/ports"
)

const namespace = "aidgap"

type Collector struct {
	recomputations *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	filtered       prometheus.Histogram
}

var _ ports.RecomputeObserverPort = (*Collector)(nil)

// New registers the collectors on reg. sessions, if non-nil, backs the
// active sessions gauge.
func New(reg prometheus.Registerer, sessions func() int) *Collector {
	c := &Collector{
		recomputations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recomputations_total",
			Help:      "Filter and aggregate passes by trigger and outcome.",
		}, []string{"trigger", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recompute_duration_seconds",
			Help:      "Time spent in one filter and aggregate pass.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"trigger"}),
		filtered: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "filtered_records",
			Help:      "Records left after filtering, per successful pass.",
			Buckets:   prometheus.LinearBuckets(0, 100, 10),
		}),
	}

	reg.MustRegister(c.recomputations, c.duration, c.filtered)

	if sessions != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Sessions currently held in memory.",
		}, func() float64 { return float64(sessions()) }))
	}

	return c
}

func (c *Collector) ObserveRecompute(trigger string, took time.Duration, filteredRecords int, err error) {
	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case filteredRecords == 0:
		outcome = "empty"
	}

	c.recomputations.WithLabelValues(trigger, outcome).Inc()
	c.duration.WithLabelValues(trigger).Observe(took.Seconds())
	if err == nil {
		c.filtered.Observe(float64(filteredRecords))
	}
}
