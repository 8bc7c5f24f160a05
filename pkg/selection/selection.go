// Package selection holds the anchors a user has marked and the options that
// turn them into a shape.
//
// Selection is the mutable owner. Every mutation goes through its methods,
// which notify OnChange listeners so dependent caches can invalidate. The
// engine itself only ever sees an immutable Snapshot.
package selection

import (
	"slices"

	"github.com/mttstwrt/measurementtools/pkg/shape"
	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// MaxTubeRadius is the largest radius StepTubeRadiusUp reaches.
const MaxTubeRadius = 32

// Subdivisions is the cycle of subdivision counts, 0 meaning none.
var Subdivisions = []int{0, 2, 3, 4, 5, 8, 10, 16}

// Selection is not safe for concurrent use.
type Selection struct {
	anchors     []voxel.Coord
	mode        shape.Mode
	ellipsoid   shape.EllipsoidMode
	tubeRadius  int
	subdivision int

	layerMode bool
	layer     int // relative to the minimum Y

	listeners []func()
}

// New returns an empty box selection.
func New() *Selection {
	return &Selection{}
}

// OnChange registers fn to run after every mutation that can change a shape
// derived from the selection.
func (s *Selection) OnChange(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *Selection) changed() {
	for _, fn := range s.listeners {
		fn()
	}
}

// Add appends c as the next anchor. Coordinates already selected are
// ignored and Add reports false.
func (s *Selection) Add(c voxel.Coord) bool {
	if slices.Contains(s.anchors, c) {
		return false
	}
	s.anchors = append(s.anchors, c)
	s.changed()
	return true
}

// RemoveLast drops the most recent anchor.
func (s *Selection) RemoveLast() (voxel.Coord, bool) {
	if len(s.anchors) == 0 {
		return voxel.Coord{}, false
	}
	last := s.anchors[len(s.anchors)-1]
	s.anchors = s.anchors[:len(s.anchors)-1]
	s.changed()
	return last, true
}

// Clear drops every anchor and leaves the options untouched.
func (s *Selection) Clear() {
	if len(s.anchors) == 0 {
		return
	}
	s.anchors = nil
	s.changed()
}

func (s *Selection) Len() int         { return len(s.anchors) }
func (s *Selection) Empty() bool      { return len(s.anchors) == 0 }
func (s *Selection) Mode() shape.Mode { return s.mode }

// Anchors returns a copy of the anchors in selection order.
func (s *Selection) Anchors() []voxel.Coord {
	return slices.Clone(s.anchors)
}

// Bounds returns the min and max corner of the anchors.
func (s *Selection) Bounds() (voxel.Bounds, bool) {
	return voxel.BoundsOf(s.anchors)
}

func (s *Selection) SetMode(m shape.Mode) {
	if s.mode == m {
		return
	}
	s.mode = m
	s.changed()
}

func (s *Selection) EllipsoidMode() shape.EllipsoidMode { return s.ellipsoid }

func (s *Selection) SetEllipsoidMode(m shape.EllipsoidMode) {
	if s.ellipsoid == m {
		return
	}
	s.ellipsoid = m
	s.changed()
}

// ToggleEllipsoidMode switches between fitting the bounding box and the
// center-and-radius construction.
func (s *Selection) ToggleEllipsoidMode() {
	if s.ellipsoid == shape.FitToBoundingBox {
		s.SetEllipsoidMode(shape.CenterAndRadius)
		return
	}
	s.SetEllipsoidMode(shape.FitToBoundingBox)
}

func (s *Selection) TubeRadius() int { return s.tubeRadius }

// SetTubeRadius sets the tube radius, clamped to [0, MaxTubeRadius].
func (s *Selection) SetTubeRadius(r int) {
	r = min(max(r, 0), MaxTubeRadius)
	if s.tubeRadius == r {
		return
	}
	s.tubeRadius = r
	s.changed()
}

func (s *Selection) StepTubeRadiusUp()   { s.SetTubeRadius(s.tubeRadius + 1) }
func (s *Selection) StepTubeRadiusDown() { s.SetTubeRadius(s.tubeRadius - 1) }

// Subdivision returns the current subdivision count.
func (s *Selection) Subdivision() int {
	return Subdivisions[s.subdivision]
}

// CycleSubdivision advances to the next entry of Subdivisions, wrapping to
// 0 after the last. Subdivisions are an overlay and do not notify listeners.
func (s *Selection) CycleSubdivision() int {
	s.subdivision = (s.subdivision + 1) % len(Subdivisions)
	return s.Subdivision()
}
