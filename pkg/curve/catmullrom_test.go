package curve

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestCatmullRomEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		p0, p1, p2, p3 v3.Vec
	}{
		{"collinear", vec(0, 0, 0), vec(1, 0, 0), vec(2, 0, 0), vec(3, 0, 0)},
		{"zigzag", vec(-3, 7, 2), vec(1.5, -2, 4), vec(8, 3.25, -1), vec(0, 0, 9)},
		{"repeated", vec(1, 1, 1), vec(1, 1, 1), vec(4, 5, 6), vec(4, 5, 6)},
		{"negative", vec(-10, -20, -30), vec(-1, -2, -3), vec(-7, 11, -13), vec(100, -100, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.p1, CatmullRom(tt.p0, tt.p1, tt.p2, tt.p3, 0), approx)
			diff(t, tt.p2, CatmullRom(tt.p0, tt.p1, tt.p2, tt.p3, 1), approx)
		})
	}
}

func TestCatmullRomStraightWithPhantoms(t *testing.T) {
	a, b := vec(0, 0, 0), vec(4, 2, -6)
	p0 := ExtrapolateStart(a, b)
	p3 := ExtrapolateEnd(a, b)
	for _, tt := range []float64{0.1, 0.25, 0.5, 0.9} {
		want := lerp(a, b, tt)
		diff(t, want, CatmullRom(p0, a, b, p3, tt), approx)
	}
}

func TestDerivativeMatchesFiniteDifference(t *testing.T) {
	p0, p1, p2, p3 := vec(-3, 7, 2), vec(1.5, -2, 4), vec(8, 3.25, -1), vec(0, 0, 9)
	const h = 1e-6
	for _, tt := range []float64{0.1, 0.3, 0.5, 0.8} {
		fd := CatmullRom(p0, p1, p2, p3, tt+h).Sub(CatmullRom(p0, p1, p2, p3, tt-h)).MulScalar(1 / (2 * h))
		diff(t, fd, Derivative(p0, p1, p2, p3, tt), cmpoptsLoose)
	}
}

func TestExtrapolate(t *testing.T) {
	diff(t, vec(-1, -2, -3), ExtrapolateStart(vec(0, 0, 0), vec(1, 2, 3)), approx)
	diff(t, vec(2, 4, 6), ExtrapolateEnd(vec(0, 0, 0), vec(1, 2, 3)), approx)
}

func TestWindow(t *testing.T) {
	pts := []v3.Vec{vec(0, 0, 0), vec(1, 0, 0), vec(2, 1, 0), vec(3, 1, 1)}

	first := Window(pts, 0)
	diff(t, [4]v3.Vec{vec(-1, 0, 0), pts[0], pts[1], pts[2]}, first, approx)

	mid := Window(pts, 1)
	diff(t, [4]v3.Vec{pts[0], pts[1], pts[2], pts[3]}, mid, approx)

	last := Window(pts, 2)
	diff(t, [4]v3.Vec{pts[1], pts[2], pts[3], vec(4, 1, 2)}, last, approx)
}

func TestPointAt(t *testing.T) {
	two := []v3.Vec{vec(0, 0, 0), vec(10, 0, 0)}
	diff(t, vec(2.5, 0, 0), PointAt(two, 0.25), approx)

	three := []v3.Vec{vec(0, 0, 0), vec(5, 5, 0), vec(10, 0, 0)}
	diff(t, three[0], PointAt(three, 0), approx)
	diff(t, three[1], PointAt(three, 0.5), approx)
	diff(t, three[2], PointAt(three, 1), approx)
}
