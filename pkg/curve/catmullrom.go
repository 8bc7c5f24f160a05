package curve

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// CatmullRom evaluates the cubic Catmull-Rom basis at t ∈ [0, 1]. The result
// moves from p1 (t = 0) to p2 (t = 1); p0 and p3 only shape the tangents.
func CatmullRom(p0, p1, p2, p3 v3.Vec, t float64) v3.Vec {
	t2 := t * t
	t3 := t2 * t
	eval := func(a, b, c, d float64) float64 {
		return 0.5 * (2*b +
			(-a+c)*t +
			(2*a-5*b+4*c-d)*t2 +
			(-a+3*b-3*c+d)*t3)
	}
	return v3.Vec{
		X: eval(p0.X, p1.X, p2.X, p3.X),
		Y: eval(p0.Y, p1.Y, p2.Y, p3.Y),
		Z: eval(p0.Z, p1.Z, p2.Z, p3.Z),
	}
}

// Derivative returns d/dt of [CatmullRom] at t. It is the local tangent of
// the curve and is not normalized.
func Derivative(p0, p1, p2, p3 v3.Vec, t float64) v3.Vec {
	t2 := t * t
	eval := func(a, b, c, d float64) float64 {
		return 0.5 * ((-a + c) +
			2*(2*a-5*b+4*c-d)*t +
			3*(-a+3*b-3*c+d)*t2)
	}
	return v3.Vec{
		X: eval(p0.X, p1.X, p2.X, p3.X),
		Y: eval(p0.Y, p1.Y, p2.Y, p3.Y),
		Z: eval(p0.Z, p1.Z, p2.Z, p3.Z),
	}
}

// ExtrapolateStart returns the phantom point before p0, 2·p0 − p1.
func ExtrapolateStart(p0, p1 v3.Vec) v3.Vec {
	return p0.MulScalar(2).Sub(p1)
}

// ExtrapolateEnd returns the phantom point after pn, 2·pn − pn1.
func ExtrapolateEnd(pn1, pn v3.Vec) v3.Vec {
	return pn.MulScalar(2).Sub(pn1)
}

// Window returns the four control points of segment i, substituting phantom
// points at either end of the curve.
func Window(points []v3.Vec, i int) [4]v3.Vec {
	n := len(points)
	var w [4]v3.Vec
	if i == 0 {
		w[0] = ExtrapolateStart(points[0], points[1])
	} else {
		w[0] = points[i-1]
	}
	w[1] = points[i]
	w[2] = points[i+1]
	if i == n-2 {
		w[3] = ExtrapolateEnd(points[n-2], points[n-1])
	} else {
		w[3] = points[i+2]
	}
	return w
}

// Segments returns the number of interpolating segments through points.
func Segments(points []v3.Vec) int {
	if len(points) < 2 {
		return 0
	}
	return len(points) - 1
}

// PointAt evaluates the whole curve at a global parameter t ∈ [0, 1]. Two
// control points give the straight segment between them.
func PointAt(points []v3.Vec, t float64) v3.Vec {
	n := len(points)
	if n < 2 {
		return points[0]
	}
	if n == 2 {
		return lerp(points[0], points[1], t)
	}
	scaled := t * float64(n-1)
	i := int(scaled)
	if i >= n-1 {
		i = n - 2
	}
	if i < 0 {
		i = 0
	}
	w := Window(points, i)
	return CatmullRom(w[0], w[1], w[2], w[3], scaled-float64(i))
}

func lerp(a, b v3.Vec, t float64) v3.Vec {
	return a.Add(b.Sub(a).MulScalar(t))
}
