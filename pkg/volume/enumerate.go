package volume

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/mttstwrt/measurementtools/pkg/shape"
	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// Enumerate calls visit once for every member voxel of p that passes layer.
// It stops as soon as visit returns false and reports whether the walk ran
// to completion.
func Enumerate(p shape.Params, layer voxel.Layer, visit func(voxel.Coord) bool) bool {
	switch p := p.(type) {
	case shape.TubeParams:
		return newTube(p).walk(layer, visit)
	case shape.BoxParams, shape.CylinderParams, shape.EllipsoidParams:
		return scan(SearchBounds(p), layer, func(c voxel.Coord) bool {
			if !Contains(p, c) {
				return true
			}
			return visit(c)
		})
	default:
		panic(fmt.Sprintf("volume: unsupported params type %T", p))
	}
}

// Collect returns every member voxel of p that passes layer, without any
// size limit.
func Collect(p shape.Params, layer voxel.Layer) voxel.Set {
	out := make(voxel.Set)
	Enumerate(p, layer, func(c voxel.Coord) bool {
		out.Add(c)
		return true
	})
	return out
}

// SearchBounds returns the voxel box that encloses every member of p, padded
// by one voxel beyond the furthest member for round shapes.
func SearchBounds(p shape.Params) voxel.Bounds {
	switch p := p.(type) {
	case shape.BoxParams:
		return p.Bounds
	case shape.CylinderParams:
		return voxel.Bounds{
			Min: voxel.C(floor(p.CenterX-p.Radius-1), p.MinY, floor(p.CenterZ-p.Radius-1)),
			Max: voxel.C(ceil(p.CenterX+p.Radius+1), p.MaxY, ceil(p.CenterZ+p.Radius+1)),
		}
	case shape.EllipsoidParams:
		// Members reach r·sqrt(slack) from the center along each axis.
		s := math.Sqrt(EllipsoidSlack(p))
		c := p.Center
		r := v3.Vec{
			X: max(p.Radii.X, shape.MinRadius) * s,
			Y: max(p.Radii.Y, shape.MinRadius) * s,
			Z: max(p.Radii.Z, shape.MinRadius) * s,
		}
		return voxel.Bounds{
			Min: voxel.C(floor(c.X-r.X-1), floor(c.Y-r.Y-1), floor(c.Z-r.Z-1)),
			Max: voxel.C(ceil(c.X+r.X+1), ceil(c.Y+r.Y+1), ceil(c.Z+r.Z+1)),
		}
	case shape.TubeParams:
		t := newTube(p)
		first := voxel.Containing(t.samples[0].Point)
		b := voxel.Bounds{Min: first, Max: first}
		for _, s := range t.samples[1:] {
			c := voxel.Containing(s.Point)
			b.Min.X, b.Min.Y, b.Min.Z = min(b.Min.X, c.X), min(b.Min.Y, c.Y), min(b.Min.Z, c.Z)
			b.Max.X, b.Max.Y, b.Max.Z = max(b.Max.X, c.X), max(b.Max.Y, c.Y), max(b.Max.Z, c.Z)
		}
		b.Min = b.Min.Add(-t.radius, -t.radius, -t.radius)
		b.Max = b.Max.Add(t.radius, t.radius, t.radius)
		return b
	default:
		panic(fmt.Sprintf("volume: unsupported params type %T", p))
	}
}

// scan visits every voxel of b on the filtered layer, Y outermost.
func scan(b voxel.Bounds, layer voxel.Layer, visit func(voxel.Coord) bool) bool {
	ylo, yhi := b.Min.Y, b.Max.Y
	if layer.Filtered() {
		if layer.Y() < ylo || layer.Y() > yhi {
			return true
		}
		ylo, yhi = layer.Y(), layer.Y()
	}
	for y := ylo; y <= yhi; y++ {
		for x := b.Min.X; x <= b.Max.X; x++ {
			for z := b.Min.Z; z <= b.Max.Z; z++ {
				if !visit(voxel.C(x, y, z)) {
					return false
				}
			}
		}
	}
	return true
}

func floor(v float64) int { return int(math.Floor(v)) }
func ceil(v float64) int  { return int(math.Ceil(v)) }
