package telemetry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/wayfind/astar"
)

const namespace = "wayfind"

// PrometheusObserver records search metrics. Exposed metrics:
//
//   - wayfind_searches_total{outcome,strategy} (counter): finished searches;
//     outcome is the stop reason (goal, exhausted, iteration_budget, ...).
//   - wayfind_search_duration_seconds{strategy} (histogram): wall time per search.
//   - wayfind_nodes_considered (histogram): nodes considered per search.
//   - wayfind_frontier_high_water (histogram): largest frontier per search.
//
// It is safe for concurrent use.
type PrometheusObserver struct {
	searches   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	considered prometheus.Histogram
	highWater  prometheus.Histogram
}

// NewPrometheusObserver creates and registers the search metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer. Registering twice with the
// same registry panics, as with any promauto collector.
func NewPrometheusObserver(reg prometheus.Registerer) *PrometheusObserver {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusObserver{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Finished searches by stop reason and frontier strategy.",
		}, []string{"outcome", "strategy"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time spent per search.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"strategy"}),
		considered: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "nodes_considered",
			Help:      "Nodes considered per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}),
		highWater: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frontier_high_water",
			Help:      "Largest frontier size per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}),
	}
}

// ObserveSearch implements astar.Observer.
func (p *PrometheusObserver) ObserveSearch(_ context.Context, s astar.Summary) {
	strategy := s.Strategy.String()
	p.searches.WithLabelValues(s.Stop.String(), strategy).Inc()
	p.duration.WithLabelValues(strategy).Observe(s.Elapsed.Seconds())
	p.considered.Observe(float64(s.NodesConsidered))
	p.highWater.Observe(float64(s.HighWaterMark))
}
