package voxel

import "strconv"

// Layer restricts results to a single absolute Y value. The zero value
// matches every layer.
type Layer struct {
	y   int
	set bool
}

// AllLayers matches every Y.
var AllLayers = Layer{}

// OnLayer matches only voxels whose Y equals y.
func OnLayer(y int) Layer {
	return Layer{y: y, set: true}
}

// Filtered reports whether the layer restricts Y at all.
func (l Layer) Filtered() bool {
	return l.set
}

// Y returns the filtered Y value. It is meaningless when Filtered is false.
func (l Layer) Y() int {
	return l.y
}

// Match reports whether a voxel at height y passes the filter.
func (l Layer) Match(y int) bool {
	return !l.set || l.y == y
}

func (l Layer) String() string {
	if !l.set {
		return "all"
	}
	return "y=" + strconv.Itoa(l.y)
}
