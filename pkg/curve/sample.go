package curve

import (
	"iter"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Sampling densities used by the engine.
const (
	// RenderSamples is the per-segment density for center lines, tube
	// enumeration and arc length.
	RenderSamples = 32
	// DistanceSamples is the per-segment density for distance checks that
	// run once per candidate voxel.
	DistanceSamples = 16
)

// Sample is one evaluated point of the curve.
type Sample struct {
	Segment int
	T       float64
	Point   v3.Vec
	// Tangent is the unit tangent at Point, or the zero vector where the
	// derivative vanishes.
	Tangent v3.Vec
}

// Samples yields perSegment+1 uniformly spaced samples (t = 0 … 1) of every
// segment in order. Segment boundaries are yielded twice, once per segment.
func Samples(points []v3.Vec, perSegment int) iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		if perSegment < 1 {
			perSegment = 1
		}
		for i := range Segments(points) {
			w := Window(points, i)
			for s := 0; s <= perSegment; s++ {
				t := float64(s) / float64(perSegment)
				tangent, _ := Normalize(Derivative(w[0], w[1], w[2], w[3], t))
				smp := Sample{
					Segment: i,
					T:       t,
					Point:   CatmullRom(w[0], w[1], w[2], w[3], t),
					Tangent: tangent,
				}
				if !yield(smp) {
					return
				}
			}
		}
	}
}

// SampleMinDistance returns the smallest straight-line distance from p to
// any sample of the curve. It is a discrete approximation whose accuracy
// grows with perSegment.
func SampleMinDistance(p v3.Vec, points []v3.Vec, perSegment int) float64 {
	best := math.MaxFloat64
	if perSegment < 1 {
		perSegment = 1
	}
	for i := range Segments(points) {
		w := Window(points, i)
		for s := 0; s <= perSegment; s++ {
			t := float64(s) / float64(perSegment)
			if d := p.Sub(CatmullRom(w[0], w[1], w[2], w[3], t)).Length(); d < best {
				best = d
			}
		}
	}
	return best
}

// ArcLength approximates the length of the whole curve by summing chords
// between (len(points)-1)·segmentsPerSpan + 1 samples of [PointAt].
func ArcLength(points []v3.Vec, segmentsPerSpan int) float64 {
	if len(points) < 2 {
		return 0
	}
	total := (len(points) - 1) * max(segmentsPerSpan, 1)
	length := 0.0
	prev := points[0]
	for s := 1; s <= total; s++ {
		cur := PointAt(points, float64(s)/float64(total))
		length += cur.Sub(prev).Length()
		prev = cur
	}
	return length
}
