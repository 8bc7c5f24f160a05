// Package surface extracts the boundary voxels of a resolved shape.
//
// The boundary test is narrower than the membership test of package volume
// and every extracted voxel also passes it. Extraction is guarded: shapes
// whose estimated surface exceeds the configured ceiling are refused before
// any voxel is visited, and a running cap stops enumeration when the output
// grows past the ceiling anyway.
package surface

import (
	"fmt"
	"iter"

	"github.com/mttstwrt/measurementtools/pkg/guard"
	"github.com/mttstwrt/measurementtools/pkg/shape"
	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// Result is one extraction. It must not be modified once returned; the cache
// hands out the same value to every caller.
type Result struct {
	Voxels voxel.Set `json:"-"`
	// Limited is set when a guard refused or truncated the extraction.
	// Voxels is then empty or partial.
	Limited bool   `json:"limited"`
	Reason  string `json:"reason,omitempty"`
	// Estimate is the closed-form surface estimate, 0 when none was made.
	Estimate int `json:"estimate"`
}

// Empty is the result for a selection that does not resolve to a shape.
func Empty() *Result {
	return &Result{Voxels: voxel.Set{}}
}

// Len returns the number of extracted voxels.
func (r *Result) Len() int {
	return r.Voxels.Len()
}

// Extract returns the boundary voxels of p on layer.
func Extract(p shape.Params, layer voxel.Layer, limits guard.Limits) *Result {
	limits = limits.Normalize()
	v := limits.CheckSurface(p)
	if v.Limited {
		return &Result{Voxels: voxel.Set{}, Limited: true, Reason: v.Reason, Estimate: v.Estimate}
	}

	out := guard.NewCollector(limits.MaxSurface)
	switch p := p.(type) {
	case shape.BoxParams:
		box(p, layer, out)
	case shape.CylinderParams:
		cylinder(p, layer, out)
	case shape.EllipsoidParams:
		ellipsoid(p, layer, out)
	case shape.TubeParams:
		tube(p, layer, limits, out)
	default:
		panic(fmt.Sprintf("surface: unsupported params type %T", p))
	}
	return &Result{
		Voxels:   out.Voxels(),
		Limited:  out.Limited(),
		Reason:   out.Reason(),
		Estimate: v.Estimate,
	}
}

// layers yields the Y values of [lo, hi] that pass layer.
func layers(lo, hi int, layer voxel.Layer) iter.Seq[int] {
	return func(yield func(int) bool) {
		if layer.Filtered() {
			if y := layer.Y(); y >= lo && y <= hi {
				yield(y)
			}
			return
		}
		for y := lo; y <= hi; y++ {
			if !yield(y) {
				return
			}
		}
	}
}
