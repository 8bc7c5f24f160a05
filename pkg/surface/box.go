package surface

import (
	"github.com/mttstwrt/measurementtools/pkg/guard"
	"github.com/mttstwrt/measurementtools/pkg/shape"
	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// box walks the six faces. Top and bottom layers are filled slabs, every
// other layer is the rectangle outline.
func box(p shape.BoxParams, layer voxel.Layer, out *guard.Collector) {
	b := p.Bounds
	for y := range layers(b.Min.Y, b.Max.Y, layer) {
		slab := y == b.Min.Y || y == b.Max.Y
		for x := b.Min.X; x <= b.Max.X; x++ {
			if slab || x == b.Min.X || x == b.Max.X {
				for z := b.Min.Z; z <= b.Max.Z; z++ {
					if !out.Add(voxel.C(x, y, z)) {
						return
					}
				}
				continue
			}
			if !out.Add(voxel.C(x, y, b.Min.Z)) || !out.Add(voxel.C(x, y, b.Max.Z)) {
				return
			}
		}
	}
}
