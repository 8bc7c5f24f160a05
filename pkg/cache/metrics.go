package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	hits          prometheus.Counter
	misses        prometheus.Counter
	invalidations prometheus.Counter
	limited       prometheus.Counter
}

// newMetrics registers the counters of the cache called name on reg. A nil
// reg leaves them unregistered.
func newMetrics(reg prometheus.Registerer, name string) *metrics {
	f := promauto.With(reg)
	labels := prometheus.Labels{"cache": name}
	return &metrics{
		hits: f.NewCounter(prometheus.CounterOpts{
			Name:        "measurement_surface_cache_hits_total",
			Help:        "Surface queries answered from the cache",
			ConstLabels: labels,
		}),
		misses: f.NewCounter(prometheus.CounterOpts{
			Name:        "measurement_surface_cache_misses_total",
			Help:        "Surface queries that ran an extraction",
			ConstLabels: labels,
		}),
		invalidations: f.NewCounter(prometheus.CounterOpts{
			Name:        "measurement_surface_cache_invalidations_total",
			Help:        "Explicit cache invalidations",
			ConstLabels: labels,
		}),
		limited: f.NewCounter(prometheus.CounterOpts{
			Name:        "measurement_surface_limited_total",
			Help:        "Extractions refused or truncated by a guard",
			ConstLabels: labels,
		}),
	}
}
