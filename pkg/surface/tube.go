package surface

import (
	"github.com/mttstwrt/measurementtools/pkg/curve"
	"github.com/mttstwrt/measurementtools/pkg/guard"
	"github.com/mttstwrt/measurementtools/pkg/shape"
	"github.com/mttstwrt/measurementtools/pkg/volume"
	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// tube keeps the members of the filled tube whose sampled distance to the
// center line is at least r-0.5. A radius of 0 keeps the center line itself.
//
// The filled volume is walked under MaxVolume; running out stops the walk
// and tags the result limited.
func tube(p shape.TubeParams, layer voxel.Layer, limits guard.Limits, out *guard.Collector) {
	if p.Radius <= 0 {
		volume.CenterLine(p, layer, out.Add)
		return
	}

	edge := float64(p.Radius) - 0.5
	budget := guard.NewBudget(limits.MaxVolume)
	volume.Enumerate(p, layer, func(c voxel.Coord) bool {
		if !budget.Spend() {
			out.Stop(budget.Reason())
			return false
		}
		if curve.SampleMinDistance(c.Center(), p.Points, curve.DistanceSamples) < edge {
			return true
		}
		return out.Add(c)
	})
}
