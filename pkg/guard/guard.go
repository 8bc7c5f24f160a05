// Package guard bounds the cost of voxel enumeration.
//
// Every extraction is checked twice: once up front against a closed-form
// estimate of its output size, and again while it runs, against hard caps on
// the number of voxels visited and collected. The estimates are continuous
// approximations and can be off by double digit percentages for small or
// eccentric shapes; the running caps catch what they miss.
package guard

import (
	"fmt"
	"math"

	"github.com/mttstwrt/measurementtools/pkg/curve"
	"github.com/mttstwrt/measurementtools/pkg/shape"
)

const (
	DefaultMaxSurface = 50_000
	DefaultMaxVolume  = 10_000_000
)

// thomsenP is the exponent of Knud Thomsen's ellipsoid area approximation.
const thomsenP = 1.6075

// Limits are the ceilings applied to one extraction. A zero or negative
// field means its default.
type Limits struct {
	MaxSurface int `json:"max_surface"`
	MaxVolume  int `json:"max_volume"`
}

// DefaultLimits returns 50 000 surface voxels and 10 000 000 volume voxels.
func DefaultLimits() Limits {
	return Limits{MaxSurface: DefaultMaxSurface, MaxVolume: DefaultMaxVolume}
}

// Normalize replaces unset fields with their defaults.
func (l Limits) Normalize() Limits {
	if l.MaxSurface <= 0 {
		l.MaxSurface = DefaultMaxSurface
	}
	if l.MaxVolume <= 0 {
		l.MaxVolume = DefaultMaxVolume
	}
	return l
}

// Verdict is the outcome of an up-front check.
type Verdict struct {
	Estimate int
	Limited  bool
	Reason   string
}

// CheckSurface refuses shapes whose estimated surface exceeds MaxSurface.
func (l Limits) CheckSurface(p shape.Params) Verdict {
	return check(SurfaceEstimate(p), l.Normalize().MaxSurface)
}

// CheckVolume refuses shapes whose estimated filled volume exceeds
// MaxVolume.
func (l Limits) CheckVolume(p shape.Params) Verdict {
	return check(VolumeEstimate(p), l.Normalize().MaxVolume)
}

func check(estimate float64, ceiling int) Verdict {
	v := Verdict{Estimate: toCount(estimate)}
	if v.Estimate > ceiling {
		v.Limited = true
		v.Reason = TooLarge(v.Estimate, ceiling)
	}
	return v
}

// TooLarge formats the reason of a refused extraction.
func TooLarge(estimate, ceiling int) string {
	return fmt.Sprintf("too large, estimated %d, max %d", estimate, ceiling)
}

// SurfaceEstimate approximates the number of boundary voxels of p.
func SurfaceEstimate(p shape.Params) float64 {
	switch p := p.(type) {
	case shape.BoxParams:
		dx, dy, dz := p.Bounds.Size()
		x, y, z := float64(dx), float64(dy), float64(dz)
		return 2 * (x*y + x*z + y*z)
	case shape.CylinderParams:
		r, h := p.Radius, float64(p.Height())
		return 2*math.Pi*r*r + 2*math.Pi*r*h
	case shape.EllipsoidParams:
		ap := math.Pow(p.Radii.X, thomsenP)
		bp := math.Pow(p.Radii.Y, thomsenP)
		cp := math.Pow(p.Radii.Z, thomsenP)
		return 4 * math.Pi * math.Pow((ap*bp+ap*cp+bp*cp)/3, 1/thomsenP)
	case shape.TubeParams:
		r := float64(p.Radius)
		length := curve.ArcLength(p.Points, curve.RenderSamples)
		if r == 0 {
			return length + 1
		}
		return 2*math.Pi*r*length + 2*math.Pi*r*r
	default:
		panic(fmt.Sprintf("guard: unsupported params type %T", p))
	}
}

// VolumeEstimate approximates the number of member voxels of p, including
// the half voxel of slack the classifiers allow around round shapes.
func VolumeEstimate(p shape.Params) float64 {
	switch p := p.(type) {
	case shape.BoxParams:
		return float64(p.Bounds.Volume())
	case shape.CylinderParams:
		r := p.Radius + 0.5
		return math.Pi * r * r * float64(p.Height())
	case shape.EllipsoidParams:
		return 4.0 / 3.0 * math.Pi * p.Radii.X * p.Radii.Y * p.Radii.Z
	case shape.TubeParams:
		r := float64(p.Radius) + 0.5
		length := curve.ArcLength(p.Points, curve.RenderSamples)
		return math.Pi*r*r*length + 1
	default:
		panic(fmt.Sprintf("guard: unsupported params type %T", p))
	}
}

func toCount(v float64) int {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxInt:
		return math.MaxInt
	default:
		return int(math.Ceil(v))
	}
}
