package curve

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// epsilon is the length below which a vector has no usable direction.
const epsilon = 1e-9

var (
	worldUp = v3.Vec{X: 0, Y: 1, Z: 0}
	worldX  = v3.Vec{X: 1, Y: 0, Z: 0}
)

// Normalize returns v scaled to unit length. It reports false and returns
// the zero vector when v is too short to have a direction.
func Normalize(v v3.Vec) (v3.Vec, bool) {
	l := v.Length()
	if l < epsilon || math.IsNaN(l) || math.IsInf(l, 0) {
		return v3.Vec{}, false
	}
	return v.MulScalar(1 / l), true
}

// FindPerpendicular returns a unit vector perpendicular to direction. World
// up is used as the reference unless direction is within about 8° of
// vertical, in which case world X is used. A degenerate direction yields
// world X.
func FindPerpendicular(direction v3.Vec) v3.Vec {
	dir, ok := Normalize(direction)
	if !ok {
		return worldX
	}
	ref := worldUp
	if math.Abs(dir.Dot(worldUp)) > 0.99 {
		ref = worldX
	}
	perp, ok := Normalize(dir.Cross(ref))
	if !ok {
		return worldX
	}
	return perp
}
