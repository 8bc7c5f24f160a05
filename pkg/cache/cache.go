// Package cache memoizes surface extractions.
//
// A SurfaceCache belongs to one consumer context. Separate contexts use
// separate caches because they invalidate on different triggers; keys are
// never shared between them.
package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/mttstwrt/measurementtools/pkg/guard"
	"github.com/mttstwrt/measurementtools/pkg/selection"
	"github.com/mttstwrt/measurementtools/pkg/surface"
	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// SurfaceCache keeps the most recent extractions. Concurrent hits are safe;
// concurrent misses are not, callers serialize queries per cache.
type SurfaceCache struct {
	name    string
	limits  guard.Limits
	entries *lru.Cache[Key, *surface.Result]
	metrics *metrics
}

// Option configures a SurfaceCache.
type Option func(*config)

type config struct {
	capacity   int
	limits     guard.Limits
	registerer prometheus.Registerer
}

// WithCapacity keeps up to n results. The default of 1 keeps only the last.
func WithCapacity(n int) Option {
	return func(c *config) { c.capacity = n }
}

// WithLimits sets the guard ceilings used on a miss.
func WithLimits(l guard.Limits) Option {
	return func(c *config) { c.limits = l }
}

// WithRegisterer registers the cache counters on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *config) { c.registerer = reg }
}

// New returns an empty cache. name labels its metrics and log lines.
func New(name string, opts ...Option) (*SurfaceCache, error) {
	cfg := config{capacity: 1, limits: guard.DefaultLimits()}
	for _, o := range opts {
		o(&cfg)
	}
	entries, err := lru.New[Key, *surface.Result](cfg.capacity)
	if err != nil {
		return nil, fmt.Errorf("cache %s: %w", name, err)
	}
	return &SurfaceCache{
		name:    name,
		limits:  cfg.limits.Normalize(),
		entries: entries,
		metrics: newMetrics(cfg.registerer, name),
	}, nil
}

// HollowSurface returns the boundary voxels of the shape snap describes on
// layer. A repeated query with the same key returns the stored result
// itself. A snapshot that does not resolve yields an empty result, which is
// not cached.
func (c *SurfaceCache) HollowSurface(snap selection.Snapshot, layer voxel.Layer) *surface.Result {
	params, ok := snap.Resolve()
	if !ok {
		return surface.Empty()
	}

	key := KeyOf(snap, layer)
	if r, ok := c.entries.Get(key); ok {
		c.metrics.hits.Inc()
		return r
	}
	c.metrics.misses.Inc()

	r := surface.Extract(params, layer, c.limits)
	fields := log.Fields{
		"cache":  c.name,
		"mode":   key.Mode,
		"layer":  key.Layer,
		"voxels": r.Len(),
	}
	if r.Limited {
		c.metrics.limited.Inc()
		log.WithFields(fields).WithField("reason", r.Reason).Debug("surface extraction limited")
	} else {
		log.WithFields(fields).Debug("surface extracted")
	}
	c.entries.Add(key, r)
	return r
}

// Invalidate drops every stored result.
func (c *SurfaceCache) Invalidate() {
	c.metrics.invalidations.Inc()
	c.entries.Purge()
}

// Len returns the number of stored results.
func (c *SurfaceCache) Len() int {
	return c.entries.Len()
}
