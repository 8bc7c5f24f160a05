package surface

import (
	"math"

	"github.com/mttstwrt/measurementtools/pkg/guard"
	"github.com/mttstwrt/measurementtools/pkg/shape"
	"github.com/mttstwrt/measurementtools/pkg/volume"
	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// ShellThreshold is the allowed deviation of the normalized distance from 1
// for a voxel to count as boundary: 0.5/min(rx, ry, rz) clamped to
// [0.15, 0.5].
func ShellThreshold(p shape.EllipsoidParams) float64 {
	t := 0.5 / max(p.MinRadius(), shape.MinRadius)
	return min(max(t, 0.15), 0.5)
}

// ellipsoid keeps voxels within ShellThreshold of the ideal surface that are
// also members of the filled ellipsoid.
func ellipsoid(p shape.EllipsoidParams, layer voxel.Layer, out *guard.Collector) {
	threshold := ShellThreshold(p)
	slack := volume.EllipsoidSlack(p)
	b := volume.SearchBounds(p)
	for y := range layers(b.Min.Y, b.Max.Y, layer) {
		for x := b.Min.X; x <= b.Max.X; x++ {
			for z := b.Min.Z; z <= b.Max.Z; z++ {
				v := voxel.C(x, y, z)
				d := volume.NormalizedDistance(p, v)
				if math.Abs(d-1) > threshold || d > slack {
					continue
				}
				if !out.Add(v) {
					return
				}
			}
		}
	}
}
