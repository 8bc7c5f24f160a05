package shape

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// Options carries the mode-specific inputs of Resolve.
type Options struct {
	Mode       Mode
	Ellipsoid  EllipsoidMode
	TubeRadius int
}

// Resolve derives the parameters of the shape described by anchors. It
// reports false when the anchor list is too short for the mode: empty for
// any mode, or fewer than two anchors for a tube. That is the normal state
// before enough points are selected, not an error.
func Resolve(anchors []voxel.Coord, opts Options) (Params, bool) {
	if len(anchors) == 0 {
		return nil, false
	}
	switch opts.Mode {
	case Box:
		return resolveBox(anchors), true
	case Cylinder:
		return resolveCylinder(anchors), true
	case Ellipsoid:
		if opts.Ellipsoid == CenterAndRadius {
			return resolveEllipsoidCentered(anchors), true
		}
		return resolveEllipsoidFit(anchors), true
	case Tube:
		if len(anchors) < 2 {
			return nil, false
		}
		return TubeParams{
			Points: voxel.Centers(anchors),
			Radius: max(opts.TubeRadius, 0),
		}, true
	default:
		panic("shape: unknown mode " + opts.Mode.String())
	}
}

func resolveBox(anchors []voxel.Coord) BoxParams {
	b, _ := voxel.BoundsOf(anchors)
	return BoxParams{Bounds: b}
}

func resolveCylinder(anchors []voxel.Coord) CylinderParams {
	b, _ := voxel.BoundsOf(anchors)
	c := anchors[0]
	return CylinderParams{
		CenterX: float64(c.X) + 0.5,
		CenterZ: float64(c.Z) + 0.5,
		Radius:  floorRadius(maxPlanarDistance(anchors)),
		MinY:    b.Min.Y,
		MaxY:    b.Max.Y,
	}
}

func resolveEllipsoidFit(anchors []voxel.Coord) EllipsoidParams {
	b, _ := voxel.BoundsOf(anchors)
	mid := func(lo, hi int) float64 { return float64(lo+hi+1) / 2 }
	half := func(lo, hi int) float64 { return floorRadius(float64(hi-lo+1) / 2) }
	return EllipsoidParams{
		Center: v3.Vec{
			X: mid(b.Min.X, b.Max.X),
			Y: mid(b.Min.Y, b.Max.Y),
			Z: mid(b.Min.Z, b.Max.Z),
		},
		Radii: v3.Vec{
			X: half(b.Min.X, b.Max.X),
			Y: half(b.Min.Y, b.Max.Y),
			Z: half(b.Min.Z, b.Max.Z),
		},
	}
}

func resolveEllipsoidCentered(anchors []voxel.Coord) EllipsoidParams {
	b, _ := voxel.BoundsOf(anchors)
	c := anchors[0]
	rxz := floorRadius(maxPlanarDistance(anchors))
	return EllipsoidParams{
		Center: v3.Vec{
			X: float64(c.X) + 0.5,
			Y: float64(b.Min.Y+b.Max.Y+1) / 2,
			Z: float64(c.Z) + 0.5,
		},
		Radii: v3.Vec{
			X: rxz,
			Y: floorRadius(float64(b.Max.Y-b.Min.Y+1) / 2),
			Z: rxz,
		},
	}
}

// maxPlanarDistance is the largest XZ distance from the first anchor to any
// other anchor, or 0 for a single anchor.
func maxPlanarDistance(anchors []voxel.Coord) float64 {
	c := anchors[0]
	best := 0.0
	for _, a := range anchors[1:] {
		d := math.Hypot(float64(a.X-c.X), float64(a.Z-c.Z))
		best = max(best, d)
	}
	return best
}

func floorRadius(r float64) float64 {
	if r < MinRadius || math.IsNaN(r) {
		return MinRadius
	}
	return r
}
