package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/mttstwrt/measurementtools/pkg/cache"
	"github.com/mttstwrt/measurementtools/pkg/config"
	"github.com/mttstwrt/measurementtools/pkg/count"
	"github.com/mttstwrt/measurementtools/pkg/grid"
	"github.com/mttstwrt/measurementtools/pkg/guard"
	"github.com/mttstwrt/measurementtools/pkg/kernel"
	"github.com/mttstwrt/measurementtools/pkg/kernel/sdfx"
	"github.com/mttstwrt/measurementtools/pkg/script"
	"github.com/mttstwrt/measurementtools/pkg/selection"
	"github.com/mttstwrt/measurementtools/pkg/shape"
	"github.com/mttstwrt/measurementtools/pkg/tessellate"
	"github.com/mttstwrt/measurementtools/pkg/volume"
	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// App runs selection scripts through the measurement pipeline.
type App struct {
	cfg     config.Config
	limits  guard.Limits
	engine  *script.Engine
	surface *cache.SurfaceCache
	kernel  kernel.Kernel
	grid    *grid.SQLite

	// anchors of the previous evaluation; the cache key ignores anchor
	// positions, so a change here invalidates it.
	anchors []voxel.Coord
}

// SurfaceData summarizes the hollow surface of the selection.
type SurfaceData struct {
	Voxels   int    `json:"voxels"`
	Estimate int    `json:"estimate"`
	Limited  bool   `json:"limited"`
	Reason   string `json:"reason,omitempty"`
}

// CountData is the content tally of the filled selection.
type CountData struct {
	Rows    []count.Row `json:"rows"`
	Total   int         `json:"total"`
	Volume  int         `json:"volume"`
	Limited bool        `json:"limited"`
	Reason  string      `json:"reason,omitempty"`
}

// MeshData describes a preview mesh without its geometry.
type MeshData struct {
	Name      string     `json:"name"`
	Vertices  int        `json:"vertices"`
	Triangles int        `json:"triangles"`
	Min       [3]float32 `json:"min"`
	Max       [3]float32 `json:"max"`
}

// EvalErrorData is a JSON-serializable script error.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// Report is everything one evaluation produces.
type Report struct {
	Anchors      int                 `json:"anchors"`
	Resolved     bool                `json:"resolved"`
	Mode         string              `json:"mode,omitempty"`
	Layer        string              `json:"layer"`
	Measurements *shape.Measurements `json:"measurements,omitempty"`
	Labels       []string            `json:"labels,omitempty"`
	Surface      SurfaceData         `json:"surface"`
	Counts       *CountData          `json:"counts,omitempty"`
	Meshes       []MeshData          `json:"meshes,omitempty"`
	Errors       []EvalErrorData     `json:"errors"`
}

// NewApp builds the pipeline described by cfg. Cache metrics go to reg,
// which may be nil. The grid database, when configured, stays open until
// Close.
func NewApp(cfg config.Config, reg prometheus.Registerer) (*App, error) {
	limits := cfg.Limits().Normalize()
	surface, err := cache.New("cli",
		cache.WithCapacity(cfg.CacheCapacity),
		cache.WithLimits(limits),
		cache.WithRegisterer(reg),
	)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:     cfg,
		limits:  limits,
		engine:  script.NewEngine(),
		surface: surface,
		kernel:  sdfx.NewWithCells(cfg.MeshCells),
	}
	if cfg.Grid != "" {
		g, err := grid.OpenSQLite(cfg.Grid)
		if err != nil {
			return nil, err
		}
		a.grid = g
	}
	return a, nil
}

// Close releases the grid database.
func (a *App) Close() error {
	if a.grid == nil {
		return nil
	}
	return a.grid.Close()
}

// Evaluate runs source and measures the selection it builds.
func (a *App) Evaluate(ctx context.Context, source string) Report {
	report := Report{Layer: voxel.AllLayers.String(), Errors: []EvalErrorData{}}

	sel, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		log.WithError(err).Error("selection script failed")
		report.Errors = append(report.Errors, EvalErrorData{Message: err.Error()})
		return report
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			report.Errors = append(report.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return report
	}

	snap := sel.Snapshot()
	layer := snap.LayerFilter
	if a.cfg.HasLayer {
		layer = voxel.OnLayer(a.cfg.Layer)
	}
	report.Anchors = len(snap.Anchors)
	report.Layer = layer.String()

	params, ok := snap.Resolve()
	if !ok {
		return report
	}
	report.Resolved = true
	report.Mode = params.Mode().String()
	m := shape.Measure(params)
	report.Measurements = &m
	report.Labels = m.Labels()

	if !slices.Equal(a.anchors, snap.Anchors) {
		a.surface.Invalidate()
		a.anchors = snap.Anchors
	}
	r := a.surface.HollowSurface(snap, layer)
	report.Surface = SurfaceData{
		Voxels:   r.Len(),
		Estimate: r.Estimate,
		Limited:  r.Limited,
		Reason:   r.Reason,
	}
	if r.Limited {
		log.WithFields(log.Fields{
			"mode":   report.Mode,
			"voxels": r.Len(),
			"reason": r.Reason,
		}).Warn("surface limited")
	}

	if a.grid != nil {
		counts, err := a.count(ctx, params)
		if err != nil {
			report.Errors = append(report.Errors, EvalErrorData{Message: err.Error()})
		} else {
			report.Counts = counts
		}
	}

	if a.cfg.Mesh {
		meshes, err := a.meshes(snap)
		if err != nil {
			report.Errors = append(report.Errors, EvalErrorData{Message: "tessellation failed: " + err.Error()})
		}
		report.Meshes = meshes
	}
	return report
}

func (a *App) count(ctx context.Context, p shape.Params) (*CountData, error) {
	var g grid.Grid = a.grid
	if v := a.limits.CheckVolume(p); !v.Limited {
		region, err := a.grid.Region(ctx, volume.SearchBounds(p))
		if err != nil {
			return nil, fmt.Errorf("counting: %w", err)
		}
		g = region
	}

	res := count.CountFilledVolume(p, g, a.limits)
	if res.Limited {
		log.WithFields(log.Fields{
			"mode":   p.Mode(),
			"volume": res.Volume,
			"reason": res.Reason,
		}).Warn("count limited")
	}
	return &CountData{
		Rows:    res.Rows(),
		Total:   res.Total,
		Volume:  res.Volume,
		Limited: res.Limited,
		Reason:  res.Reason,
	}, nil
}

func (a *App) meshes(snap selection.Snapshot) ([]MeshData, error) {
	part, ok := tessellate.FromSnapshot("", snap)
	if !ok {
		return nil, nil
	}
	meshes, err := tessellate.Tessellate([]tessellate.Part{part}, a.kernel)
	if err != nil {
		return nil, err
	}
	out := make([]MeshData, 0, len(meshes))
	for _, m := range meshes {
		lo, hi := m.Bounds()
		out = append(out, MeshData{
			Name:      m.Name,
			Vertices:  m.VertexCount(),
			Triangles: m.TriangleCount(),
			Min:       lo,
			Max:       hi,
		})
	}
	return out, nil
}
