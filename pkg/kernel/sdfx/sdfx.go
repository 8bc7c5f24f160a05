// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/mttstwrt/measurementtools/pkg/kernel"
	"github.com/mttstwrt/measurementtools/pkg/shape"
	"github.com/mttstwrt/measurementtools/pkg/volume"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// DefaultMeshCells controls marching cubes tessellation resolution.
const DefaultMeshCells = 64

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

func (s *sdfxSolid) BoundingBox() (min, max [3]float64) {
	bb := s.s.BoundingBox()
	min = [3]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}
	max = [3]float64{bb.Max.X, bb.Max.Y, bb.Max.Z}
	return min, max
}

func (s *sdfxSolid) Inside(p [3]float64) bool {
	return s.s.Evaluate(v3.Vec{X: p[0], Y: p[1], Z: p[2]}) <= 0
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct {
	cells int
}

// New returns a kernel meshing at DefaultMeshCells.
func New() *SdfxKernel {
	return NewWithCells(DefaultMeshCells)
}

// NewWithCells returns a kernel whose marching cubes grid has cells cells
// along the longest axis. Non-positive values mean DefaultMeshCells.
func NewWithCells(cells int) *SdfxKernel {
	if cells <= 0 {
		cells = DefaultMeshCells
	}
	return &SdfxKernel{cells: cells}
}

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

// Solid builds the preview solid of p in world coordinates, one unit per
// voxel.
func (k *SdfxKernel) Solid(p shape.Params) (kernel.Solid, error) {
	switch p := p.(type) {
	case shape.BoxParams:
		return k.box(p)
	case shape.CylinderParams:
		return k.cylinder(p)
	case shape.EllipsoidParams:
		return wrap(newEllipsoid(p)), nil
	case shape.TubeParams:
		if len(p.Points) < 2 {
			return nil, fmt.Errorf("sdfx: tube needs at least 2 points, got %d", len(p.Points))
		}
		return wrap(newTube(p)), nil
	default:
		return nil, fmt.Errorf("sdfx: unsupported params type %T", p)
	}
}

// box covers the voxel extents: the min corner voxel's lower face to the
// max corner voxel's upper face. sdf.Box3D centers the box at the origin.
func (k *SdfxKernel) box(p shape.BoxParams) (kernel.Solid, error) {
	dx, dy, dz := p.Bounds.Size()
	size := v3.Vec{X: float64(dx), Y: float64(dy), Z: float64(dz)}
	s, err := sdf.Box3D(size, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Box3D: %w", err)
	}
	min := v3.Vec{X: float64(p.Bounds.Min.X), Y: float64(p.Bounds.Min.Y), Z: float64(p.Bounds.Min.Z)}
	m := sdf.Translate3d(min.Add(size.MulScalar(0.5)))
	return wrap(sdf.Transform3D(s, m)), nil
}

// cylinder is Y-up with radius r+0.5, the reach of the membership test.
// sdf.Cylinder3D is Z-up and centered at the origin.
func (k *SdfxKernel) cylinder(p shape.CylinderParams) (kernel.Solid, error) {
	h := float64(p.Height())
	s, err := sdf.Cylinder3D(h, p.Radius+0.5, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Cylinder3D: %w", err)
	}
	center := v3.Vec{X: p.CenterX, Y: float64(p.MinY) + h/2, Z: p.CenterZ}
	m := sdf.Translate3d(center).Mul(sdf.RotateX(math.Pi / 2))
	return wrap(sdf.Transform3D(s, m)), nil
}

// Union returns the union of two solids.
func (k *SdfxKernel) Union(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Union3D(unwrap(a), unwrap(b)))
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	sdf3 := unwrap(s)

	renderer := render.NewMarchingCubesUniform(k.cells)
	triangles := render.ToTriangles(sdf3, renderer)

	numVerts := len(triangles) * 3
	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		n := tri.Normal()
		nx, ny, nz := float32(n.X), float32(n.Y), float32(n.Z)
		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}

// ellipsoidSDF is an axis-aligned ellipsoid. The distance is the usual
// k0·(k0-1)/k1 approximation, exact on the surface and in sign everywhere.
type ellipsoidSDF struct {
	center, radii v3.Vec
}

// newEllipsoid scales the radii by the square root of the membership slack
// so the solid holds every member voxel center.
func newEllipsoid(p shape.EllipsoidParams) *ellipsoidSDF {
	s := math.Sqrt(volume.EllipsoidSlack(p))
	return &ellipsoidSDF{
		center: p.Center,
		radii: v3.Vec{
			X: max(p.Radii.X, shape.MinRadius) * s,
			Y: max(p.Radii.Y, shape.MinRadius) * s,
			Z: max(p.Radii.Z, shape.MinRadius) * s,
		},
	}
}

func (e *ellipsoidSDF) Evaluate(p v3.Vec) float64 {
	d := p.Sub(e.center)
	q := v3.Vec{X: d.X / e.radii.X, Y: d.Y / e.radii.Y, Z: d.Z / e.radii.Z}
	k0 := q.Length()
	if k0 == 0 {
		return -min(e.radii.X, e.radii.Y, e.radii.Z)
	}
	r2 := v3.Vec{X: q.X / e.radii.X, Y: q.Y / e.radii.Y, Z: q.Z / e.radii.Z}
	k1 := r2.Length()
	return k0 * (k0 - 1) / k1
}

func (e *ellipsoidSDF) BoundingBox() sdf.Box3 {
	return sdf.Box3{Min: e.center.Sub(e.radii), Max: e.center.Add(e.radii)}
}
