package volume

import (
	"fmt"
	"math"

	"github.com/mttstwrt/measurementtools/pkg/shape"
	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// Contains reports whether voxel c is a member of the filled shape p.
func Contains(p shape.Params, c voxel.Coord) bool {
	switch p := p.(type) {
	case shape.BoxParams:
		return p.Bounds.Contains(c)
	case shape.CylinderParams:
		return c.Y >= p.MinY && c.Y <= p.MaxY && PlanarDistance(p, c) <= p.Radius+0.5
	case shape.EllipsoidParams:
		return NormalizedDistance(p, c) <= EllipsoidSlack(p)
	case shape.TubeParams:
		return newTube(p).contains(c)
	default:
		panic(fmt.Sprintf("volume: unsupported params type %T", p))
	}
}

// PlanarDistance is the XZ distance from the center of c to the cylinder
// axis.
func PlanarDistance(p shape.CylinderParams, c voxel.Coord) float64 {
	center := c.Center()
	return math.Hypot(center.X-p.CenterX, center.Z-p.CenterZ)
}

// NormalizedDistance evaluates (dx/rx)² + (dy/ry)² + (dz/rz)² at the center
// of c. It is 1 on the ideal surface.
func NormalizedDistance(p shape.EllipsoidParams, c voxel.Coord) float64 {
	d := c.Center().Sub(p.Center)
	nx := d.X / max(p.Radii.X, shape.MinRadius)
	ny := d.Y / max(p.Radii.Y, shape.MinRadius)
	nz := d.Z / max(p.Radii.Z, shape.MinRadius)
	return nx*nx + ny*ny + nz*nz
}

// EllipsoidSlack is the largest normalized distance still inside the
// ellipsoid, 1 + 0.5/min(rx, ry, rz). The extra term admits voxels whose
// center lies just outside the ideal surface.
func EllipsoidSlack(p shape.EllipsoidParams) float64 {
	return 1 + 0.5/max(p.MinRadius(), shape.MinRadius)
}
