package sdfx

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/mttstwrt/measurementtools/pkg/curve"
	"github.com/mttstwrt/measurementtools/pkg/shape"
)

// tubeSDF is a chain of capsules along the sampled center line.
type tubeSDF struct {
	points []v3.Vec
	radius float64
	bb     sdf.Box3
}

func newTube(p shape.TubeParams) *tubeSDF {
	t := &tubeSDF{radius: float64(max(p.Radius, 0)) + 0.5}
	for s := range curve.Samples(p.Points, curve.RenderSamples) {
		if n := len(t.points); n > 0 && t.points[n-1] == s.Point {
			continue
		}
		t.points = append(t.points, s.Point)
	}
	lo, hi := t.points[0], t.points[0]
	for _, q := range t.points[1:] {
		lo = v3.Vec{X: min(lo.X, q.X), Y: min(lo.Y, q.Y), Z: min(lo.Z, q.Z)}
		hi = v3.Vec{X: max(hi.X, q.X), Y: max(hi.Y, q.Y), Z: max(hi.Z, q.Z)}
	}
	pad := v3.Vec{X: t.radius, Y: t.radius, Z: t.radius}
	t.bb = sdf.Box3{Min: lo.Sub(pad), Max: hi.Add(pad)}
	return t
}

func (t *tubeSDF) Evaluate(p v3.Vec) float64 {
	best := p.Sub(t.points[0]).Length()
	for i := 1; i < len(t.points); i++ {
		best = min(best, segmentDistance(p, t.points[i-1], t.points[i]))
	}
	return best - t.radius
}

func (t *tubeSDF) BoundingBox() sdf.Box3 {
	return t.bb
}

// segmentDistance is the distance from p to the segment ab.
func segmentDistance(p, a, b v3.Vec) float64 {
	ab := b.Sub(a)
	l2 := ab.Length2()
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	t := min(max(p.Sub(a).Dot(ab)/l2, 0), 1)
	return p.Sub(a.Add(ab.MulScalar(t))).Length()
}
