package shape

import (
	"fmt"
	"math"

	"github.com/mttstwrt/measurementtools/pkg/curve"
)

// Measurements are the dimensions shown next to a shape outline.
type Measurements struct {
	Mode Mode `json:"mode"`

	// Box spans, inclusive.
	SizeX int `json:"size_x,omitempty"`
	SizeY int `json:"size_y,omitempty"`
	SizeZ int `json:"size_z,omitempty"`

	// Cylinder.
	Radius   float64 `json:"radius,omitempty"`
	Diameter float64 `json:"diameter,omitempty"`
	Height   int     `json:"height,omitempty"`

	// Ellipsoid.
	RadiusX float64 `json:"radius_x,omitempty"`
	RadiusY float64 `json:"radius_y,omitempty"`
	RadiusZ float64 `json:"radius_z,omitempty"`

	// Tube center-line length.
	Length float64 `json:"length,omitempty"`
}

// Measure computes the dimensions of p.
func Measure(p Params) Measurements {
	m := Measurements{Mode: p.Mode()}
	switch p := p.(type) {
	case BoxParams:
		m.SizeX, m.SizeY, m.SizeZ = p.Bounds.Size()
	case CylinderParams:
		m.Radius = p.Radius
		m.Diameter = 2 * p.Radius
		m.Height = p.Height()
	case EllipsoidParams:
		m.RadiusX, m.RadiusY, m.RadiusZ = p.Radii.X, p.Radii.Y, p.Radii.Z
	case TubeParams:
		m.Length = curve.ArcLength(p.Points, curve.RenderSamples)
	default:
		panic(fmt.Sprintf("shape: unsupported params type %T", p))
	}
	return m
}

// Labels returns the measurement labels in display order. The ellipsoid Z
// radius is omitted when it matches the X radius to within 0.1.
func (m Measurements) Labels() []string {
	switch m.Mode {
	case Box:
		return []string{
			fmt.Sprintf("%d", m.SizeX),
			fmt.Sprintf("%d", m.SizeY),
			fmt.Sprintf("%d", m.SizeZ),
		}
	case Cylinder:
		return []string{
			fmt.Sprintf("h=%d", m.Height),
			fmt.Sprintf("r=%.1f", m.Radius),
			fmt.Sprintf("d=%.1f", m.Diameter),
		}
	case Ellipsoid:
		labels := []string{
			fmt.Sprintf("rx=%.1f", m.RadiusX),
			fmt.Sprintf("ry=%.1f", m.RadiusY),
		}
		if math.Abs(m.RadiusX-m.RadiusZ) > 0.1 {
			labels = append(labels, fmt.Sprintf("rz=%.1f", m.RadiusZ))
		}
		return labels
	case Tube:
		return []string{fmt.Sprintf("len=%.1f", m.Length)}
	}
	return nil
}

// Subdivide splits the span [lo, hi] into n equal segments and returns the
// n-1 interior division positions together with the segment size. Fewer
// than two segments yield no divisions.
func Subdivide(lo, hi float64, n int) (divisions []float64, size float64) {
	if n < 2 || hi <= lo {
		return nil, hi - lo
	}
	size = (hi - lo) / float64(n)
	divisions = make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		divisions = append(divisions, lo+float64(i)*size)
	}
	return divisions, size
}
