package count

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mttstwrt/measurementtools/pkg/grid"
	"github.com/mttstwrt/measurementtools/pkg/guard"
	"github.com/mttstwrt/measurementtools/pkg/shape"
	"github.com/mttstwrt/measurementtools/pkg/volume"
	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

func resolve(t *testing.T, opts shape.Options, anchors ...voxel.Coord) shape.Params {
	t.Helper()
	p, ok := shape.Resolve(anchors, opts)
	require.True(t, ok)
	return p
}

func TestCountBox(t *testing.T) {
	g := grid.NewMemory()
	g.Fill(voxel.Bounds{Min: voxel.C(0, 0, 0), Max: voxel.C(2, 0, 2)}, "stone")
	g.Fill(voxel.Bounds{Min: voxel.C(0, 1, 0), Max: voxel.C(2, 1, 2)}, "dirt")
	g.Set(voxel.C(1, 1, 1), "grass")
	g.Set(voxel.C(5, 5, 5), "stone")

	p := resolve(t, shape.Options{Mode: shape.Box}, voxel.C(0, 0, 0), voxel.C(2, 2, 2))
	r := CountFilledVolume(p, g, guard.DefaultLimits())
	assert.False(t, r.Limited)
	assert.Equal(t, 27, r.Volume)
	assert.Equal(t, 18, r.Total)
	assert.Equal(t, map[string]int{"stone": 9, "dirt": 8, "grass": 1}, r.Counts)
	assert.Equal(t, []Row{{"stone", 9}, {"dirt", 8}, {"grass", 1}}, r.Rows())
}

func TestCountMatchesVolume(t *testing.T) {
	p := resolve(t, shape.Options{Mode: shape.Ellipsoid}, voxel.C(0, 0, 0), voxel.C(8, 6, 4))
	g := grid.NewMemory()
	g.Fill(volume.SearchBounds(p), "water")

	r := CountFilledVolume(p, g, guard.DefaultLimits())
	assert.Equal(t, volume.Collect(p, voxel.AllLayers).Len(), r.Total)
	assert.Equal(t, r.Volume, r.Total)
}

func TestRowsTieBreakByName(t *testing.T) {
	r := Result{Counts: map[string]int{"b": 2, "a": 2, "c": 5}}
	assert.Equal(t, []Row{{"c", 5}, {"a", 2}, {"b", 2}}, r.Rows())
}

func TestCountRefusesHugeVolume(t *testing.T) {
	p := resolve(t, shape.Options{Mode: shape.Box}, voxel.C(0, 0, 0), voxel.C(999, 999, 999))
	r := CountFilledVolume(p, grid.NewMemory(), guard.DefaultLimits())
	assert.True(t, r.Limited)
	assert.Equal(t, "too large, estimated 1000000000, max 10000000", r.Reason)
	assert.Zero(t, r.Volume)
}

func TestCountStopsAtBudget(t *testing.T) {
	// 37 voxels per cross-section over 27 columns, against an estimate of
	// about 771.
	p := resolve(t, shape.Options{Mode: shape.Tube, TubeRadius: 3}, voxel.C(0, 0, 0), voxel.C(20, 0, 0))
	require.Equal(t, 999, volume.Collect(p, voxel.AllLayers).Len())

	r := CountFilledVolume(p, grid.NewMemory(), guard.Limits{MaxVolume: 800})
	assert.True(t, r.Limited)
	assert.Equal(t, "volume limit reached, visited 801, max 800", r.Reason)
	assert.Equal(t, 800, r.Volume)
}

func TestCountSkipsAir(t *testing.T) {
	g := grid.NewMemory()
	g.Set(voxel.C(0, 0, 0), grid.Air)
	g.Set(voxel.C(1, 0, 0), "log")
	p := resolve(t, shape.Options{Mode: shape.Box}, voxel.C(0, 0, 0), voxel.C(1, 0, 0))
	r := CountFilledVolume(p, g, guard.DefaultLimits())
	assert.Equal(t, 1, r.Total)
	assert.Equal(t, 2, r.Volume)
}
