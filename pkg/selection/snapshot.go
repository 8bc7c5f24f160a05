package selection

import (
	"github.com/mttstwrt/measurementtools/pkg/shape"
	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// Snapshot is a read-only copy of a selection at one moment.
type Snapshot struct {
	Anchors    []voxel.Coord       `json:"anchors"`
	Mode       shape.Mode          `json:"mode"`
	Ellipsoid  shape.EllipsoidMode `json:"ellipsoid_mode"`
	TubeRadius int                 `json:"tube_radius"`
	// LayerFilter is AllLayers unless layer mode is on.
	LayerFilter voxel.Layer `json:"-"`
}

// Snapshot copies the current state.
func (s *Selection) Snapshot() Snapshot {
	return Snapshot{
		Anchors:     s.Anchors(),
		Mode:        s.mode,
		Ellipsoid:   s.ellipsoid,
		TubeRadius:  s.tubeRadius,
		LayerFilter: s.Layer(),
	}
}

// Bounds returns the min and max corner of the anchors.
func (s Snapshot) Bounds() (voxel.Bounds, bool) {
	return voxel.BoundsOf(s.Anchors)
}

// Options returns the resolver options of the snapshot.
func (s Snapshot) Options() shape.Options {
	return shape.Options{Mode: s.Mode, Ellipsoid: s.Ellipsoid, TubeRadius: s.TubeRadius}
}

// Resolve resolves the snapshot into shape parameters.
func (s Snapshot) Resolve() (shape.Params, bool) {
	return shape.Resolve(s.Anchors, s.Options())
}
