// Package kernel defines the geometry kernel that turns a resolved shape
// into a continuous solid and a triangle mesh for previews. The voxel
// classifiers never go through it; a preview mesh is an approximation of
// the shape, not of its voxel set.
package kernel

import "github.com/mttstwrt/measurementtools/pkg/shape"

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
	// Inside reports whether point p lies inside the solid.
	Inside(p [3]float64) bool
}

// Kernel builds solids from shape parameters.
type Kernel interface {
	// Solid returns the continuous solid approximating the filled shape p.
	Solid(p shape.Params) (Solid, error)

	// Union merges solids, used to preview several selections at once.
	Union(a, b Solid) Solid

	// ToMesh converts a solid to a triangle mesh.
	ToMesh(s Solid) (*Mesh, error)
}
