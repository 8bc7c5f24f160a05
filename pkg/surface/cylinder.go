package surface

import (
	"math"

	"github.com/mttstwrt/measurementtools/pkg/guard"
	"github.com/mttstwrt/measurementtools/pkg/shape"
	"github.com/mttstwrt/measurementtools/pkg/volume"
	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// cylinder keeps filled disks on the cap layers and a ring one voxel thick,
// planar distance in [r-0.5, r+0.5], on every other layer.
func cylinder(p shape.CylinderParams, layer voxel.Layer, out *guard.Collector) {
	ax, az := p.AxisVoxel()
	reach := int(math.Ceil(p.Radius))
	inner, outer := p.Radius-0.5, p.Radius+0.5
	for y := range layers(p.MinY, p.MaxY, layer) {
		filled := y == p.MinY || y == p.MaxY
		for dx := -reach; dx <= reach; dx++ {
			for dz := -reach; dz <= reach; dz++ {
				c := voxel.C(ax+dx, y, az+dz)
				d := volume.PlanarDistance(p, c)
				if d > outer || (!filled && d < inner) {
					continue
				}
				if !out.Add(c) {
					return
				}
			}
		}
	}
}
