package shape

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"

	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

func TestMeasureBox(t *testing.T) {
	m := Measure(BoxParams{Bounds: voxel.Bounds{Min: voxel.C(0, 0, 0), Max: voxel.C(4, 1, 9)}})
	assert.Equal(t, []string{"5", "2", "10"}, m.Labels())
}

func TestMeasureCylinder(t *testing.T) {
	m := Measure(CylinderParams{CenterX: 0.5, CenterZ: 0.5, Radius: 3, MinY: 0, MaxY: 4})
	assert.Equal(t, []string{"h=5", "r=3.0", "d=6.0"}, m.Labels())
}

func TestMeasureEllipsoid(t *testing.T) {
	sphere := Measure(EllipsoidParams{Radii: v3.Vec{X: 5, Y: 2.5, Z: 5}})
	assert.Equal(t, []string{"rx=5.0", "ry=2.5"}, sphere.Labels())

	oblong := Measure(EllipsoidParams{Radii: v3.Vec{X: 5, Y: 2.5, Z: 3}})
	assert.Equal(t, []string{"rx=5.0", "ry=2.5", "rz=3.0"}, oblong.Labels())
}

func TestMeasureTube(t *testing.T) {
	m := Measure(TubeParams{Points: []v3.Vec{{X: 0.5, Y: 0.5, Z: 0.5}, {X: 12.5, Y: 0.5, Z: 0.5}}})
	assert.InDelta(t, 12.0, m.Length, 1e-9)
	assert.Equal(t, []string{"len=12.0"}, m.Labels())
}

func TestSubdivide(t *testing.T) {
	div, size := Subdivide(0, 10, 4)
	assert.Equal(t, 2.5, size)
	assert.Equal(t, []float64{2.5, 5, 7.5}, div)

	div, size = Subdivide(0, 10, 1)
	assert.Nil(t, div)
	assert.Equal(t, 10.0, size)
}
