package sdfx

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/mttstwrt/measurementtools/pkg/kernel"
	"github.com/mttstwrt/measurementtools/pkg/shape"
	"github.com/mttstwrt/measurementtools/pkg/volume"
	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

func mustSolid(t *testing.T, k *SdfxKernel, p shape.Params) kernel.Solid {
	t.Helper()
	s, err := k.Solid(p)
	if err != nil {
		t.Fatalf("Solid(%T) failed: %v", p, err)
	}
	return s
}

func checkBounds(t *testing.T, s kernel.Solid, wantMin, wantMax [3]float64, tol float64) {
	t.Helper()
	min, max := s.BoundingBox()
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-wantMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected %f", i, min[i], wantMin[i])
		}
		if math.Abs(max[i]-wantMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected %f", i, max[i], wantMax[i])
		}
	}
}

func checkMesh(t *testing.T, k *SdfxKernel, s kernel.Solid) *kernel.Mesh {
	t.Helper()
	mesh, err := k.ToMesh(s)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != mesh.TriangleCount()*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), mesh.TriangleCount()*3)
	}
	return mesh
}

func TestBox(t *testing.T) {
	k := New()
	p := shape.BoxParams{Bounds: voxel.Bounds{Min: voxel.C(-2, 0, 5), Max: voxel.C(7, 3, 5)}}
	s := mustSolid(t, k, p)
	checkBounds(t, s, [3]float64{-2, 0, 5}, [3]float64{8, 4, 6}, 0.01)
	mesh := checkMesh(t, k, s)

	lo, hi := mesh.Bounds()
	if lo[0] < -2.1 || hi[0] > 8.1 {
		t.Errorf("mesh X extent [%f, %f] outside box", lo[0], hi[0])
	}
}

func TestCylinderIsYUp(t *testing.T) {
	k := New()
	p := shape.CylinderParams{CenterX: 0.5, CenterZ: 0.5, Radius: 3, MinY: 0, MaxY: 9}
	s := mustSolid(t, k, p)
	checkBounds(t, s, [3]float64{-3, 0, -3}, [3]float64{4, 10, 4}, 1e-6)
	checkMesh(t, k, s)
}

func TestEllipsoid(t *testing.T) {
	k := New()
	p := shape.EllipsoidParams{Center: v3.Vec{X: 1, Y: 2, Z: 3}, Radii: v3.Vec{X: 4, Y: 2, Z: 3}}
	s := mustSolid(t, k, p)
	if !s.Inside([3]float64{1, 2, 3}) {
		t.Error("center is not inside")
	}
	if s.Inside([3]float64{1, 5, 3}) {
		t.Error("(1,5,3) is inside, beyond ry")
	}
	checkMesh(t, k, s)
}

func TestSolidHoldsMemberCenters(t *testing.T) {
	k := New()
	shapes := map[string]shape.Params{
		"box":       shape.BoxParams{Bounds: voxel.Bounds{Min: voxel.C(0, 0, 0), Max: voxel.C(3, 2, 4)}},
		"cylinder":  shape.CylinderParams{CenterX: 0.5, CenterZ: 0.5, Radius: 3, MinY: -2, MaxY: 2},
		"ellipsoid": shape.EllipsoidParams{Center: v3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, Radii: v3.Vec{X: 4.5, Y: 2.5, Z: 3.5}},
	}
	for name, p := range shapes {
		t.Run(name, func(t *testing.T) {
			s := mustSolid(t, k, p)
			for c := range volume.Collect(p, voxel.AllLayers) {
				ctr := c.Center()
				if !s.Inside([3]float64{ctr.X, ctr.Y, ctr.Z}) {
					t.Errorf("member %v is outside the solid", c)
				}
			}
		})
	}
}

func TestTube(t *testing.T) {
	k := New()
	p := shape.TubeParams{
		Points: []v3.Vec{{X: 0.5, Y: 0.5, Z: 0.5}, {X: 8.5, Y: 4.5, Z: 0.5}, {X: 12.5, Y: 4.5, Z: 6.5}},
		Radius: 1,
	}
	s := mustSolid(t, k, p)
	for _, q := range p.Points {
		if !s.Inside([3]float64{q.X, q.Y, q.Z}) {
			t.Errorf("control point %v is outside the tube", q)
		}
	}
	if s.Inside([3]float64{0.5, 10, 0.5}) {
		t.Error("point far from the curve is inside")
	}
	checkMesh(t, k, s)
}

func TestTubeCenterLineHasWidth(t *testing.T) {
	k := New()
	s := mustSolid(t, k, shape.TubeParams{Points: []v3.Vec{{}, {X: 5}}})
	checkBounds(t, s, [3]float64{-0.5, -0.5, -0.5}, [3]float64{5.5, 0.5, 0.5}, 1e-9)
}

func TestTubeNeedsTwoPoints(t *testing.T) {
	if _, err := New().Solid(shape.TubeParams{Points: []v3.Vec{{}}}); err == nil {
		t.Fatal("expected an error for a single point tube")
	}
}

func TestUnsupportedParams(t *testing.T) {
	if _, err := New().Solid(nil); err == nil {
		t.Fatal("expected an error for nil params")
	}
}

func TestUnion(t *testing.T) {
	k := New()
	a := mustSolid(t, k, shape.BoxParams{Bounds: voxel.Bounds{Min: voxel.C(0, 0, 0), Max: voxel.C(4, 4, 4)}})
	b := mustSolid(t, k, shape.BoxParams{Bounds: voxel.Bounds{Min: voxel.C(3, 0, 0), Max: voxel.C(9, 4, 4)}})
	u := k.Union(a, b)
	checkBounds(t, u, [3]float64{0, 0, 0}, [3]float64{10, 5, 5}, 0.01)
	checkMesh(t, k, u)
}

func TestNewWithCells(t *testing.T) {
	if got := NewWithCells(0).cells; got != DefaultMeshCells {
		t.Errorf("cells = %d, want %d", got, DefaultMeshCells)
	}
	if got := NewWithCells(16).cells; got != 16 {
		t.Errorf("cells = %d, want 16", got)
	}
}
