package volume

import (
	"math"
	"slices"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/mttstwrt/measurementtools/pkg/curve"
	"github.com/mttstwrt/measurementtools/pkg/shape"
	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// tube caches the sampled center line of a TubeParams.
type tube struct {
	radius  int
	samples []curve.Sample
}

func newTube(p shape.TubeParams) *tube {
	return &tube{
		radius:  max(p.Radius, 0),
		samples: slices.Collect(curve.Samples(p.Points, curve.RenderSamples)),
	}
}

// reach is the largest perpendicular distance from the curve to a member
// voxel center.
func (t *tube) reach() float64 {
	return float64(t.radius) + 0.5
}

// nearest returns the sample closest to p.
func (t *tube) nearest(p v3.Vec) curve.Sample {
	best := t.samples[0]
	bestDist := math.MaxFloat64
	for _, s := range t.samples {
		if d := p.Sub(s.Point).Length2(); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}

// PerpendicularDistance is the distance from p to the tangent line through
// sample s. A sample without a tangent measures straight-line distance.
func PerpendicularDistance(p v3.Vec, s curve.Sample) float64 {
	to := p.Sub(s.Point)
	along := to.Dot(s.Tangent)
	return to.Sub(s.Tangent.MulScalar(along)).Length()
}

// inReach reports whether c lies in the radius cube around some sample.
func (t *tube) inReach(c voxel.Coord) bool {
	for _, s := range t.samples {
		b := voxel.Containing(s.Point)
		if abs(c.X-b.X) <= t.radius && abs(c.Y-b.Y) <= t.radius && abs(c.Z-b.Z) <= t.radius {
			return true
		}
	}
	return false
}

// member is the tube test for a candidate already known to be in reach.
func (t *tube) member(c voxel.Coord) bool {
	if t.radius == 0 {
		return true
	}
	center := c.Center()
	return PerpendicularDistance(center, t.nearest(center)) <= t.reach()
}

func (t *tube) contains(c voxel.Coord) bool {
	return t.inReach(c) && t.member(c)
}

// walk visits every member voxel once. Candidates are generated from the
// radius cube around each sample; a radius of 0 degenerates to the voxels
// containing the samples.
func (t *tube) walk(layer voxel.Layer, visit func(voxel.Coord) bool) bool {
	seen := make(voxel.Set)
	r := t.radius
	for _, s := range t.samples {
		base := voxel.Containing(s.Point)
		for dy := -r; dy <= r; dy++ {
			if !layer.Match(base.Y + dy) {
				continue
			}
			for dx := -r; dx <= r; dx++ {
				for dz := -r; dz <= r; dz++ {
					c := base.Add(dx, dy, dz)
					if !seen.Add(c) || !t.member(c) {
						continue
					}
					if !visit(c) {
						return false
					}
				}
			}
		}
	}
	return true
}

// CenterLine visits the voxels containing the sampled center line of p,
// once each, in curve order.
func CenterLine(p shape.TubeParams, layer voxel.Layer, visit func(voxel.Coord) bool) bool {
	seen := make(voxel.Set)
	for s := range curve.Samples(p.Points, curve.RenderSamples) {
		c := voxel.Containing(s.Point)
		if !layer.Match(c.Y) || !seen.Add(c) {
			continue
		}
		if !visit(c) {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
