package shape

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// MinRadius is the smallest radius any shape resolves to. Classifiers divide
// by radii, so no resolved radius is ever below it.
const MinRadius = 0.5

// Params is the resolved geometry of one shape. The set of implementations
// is closed: BoxParams, CylinderParams, EllipsoidParams and TubeParams.
type Params interface {
	Mode() Mode
	params() // marker method restricting implementations to this package
}

// BoxParams is an inclusive voxel box.
type BoxParams struct {
	Bounds voxel.Bounds `json:"bounds"`
}

func (BoxParams) Mode() Mode { return Box }
func (BoxParams) params()    {}

// CylinderParams is a vertical cylinder. CenterX and CenterZ are the
// continuous center of the axis (anchor + 0.5).
type CylinderParams struct {
	CenterX float64 `json:"center_x"`
	CenterZ float64 `json:"center_z"`
	Radius  float64 `json:"radius"`
	MinY    int     `json:"min_y"`
	MaxY    int     `json:"max_y"`
}

func (CylinderParams) Mode() Mode { return Cylinder }
func (CylinderParams) params()    {}

// AxisVoxel returns the X and Z of the voxel the axis passes through.
func (p CylinderParams) AxisVoxel() (x, z int) {
	return int(math.Floor(p.CenterX)), int(math.Floor(p.CenterZ))
}

// Height returns the inclusive number of layers.
func (p CylinderParams) Height() int {
	return p.MaxY - p.MinY + 1
}

// EllipsoidParams is an axis-aligned ellipsoid.
type EllipsoidParams struct {
	Center v3.Vec `json:"center"`
	Radii  v3.Vec `json:"radii"`
}

func (EllipsoidParams) Mode() Mode { return Ellipsoid }
func (EllipsoidParams) params()    {}

// MinRadius returns the smallest of the three radii.
func (p EllipsoidParams) MinRadius() float64 {
	return min(p.Radii.X, p.Radii.Y, p.Radii.Z)
}

// TubeParams is a tube of integer radius around the Catmull-Rom curve
// through Points. Radius 0 degenerates to the center line.
type TubeParams struct {
	Points []v3.Vec `json:"points"`
	Radius int      `json:"radius"`
}

func (TubeParams) Mode() Mode { return Tube }
func (TubeParams) params()    {}
