package cache

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/mttstwrt/measurementtools/pkg/selection"
	"github.com/mttstwrt/measurementtools/pkg/shape"
	"github.com/mttstwrt/measurementtools/pkg/voxel"
)

// Key identifies one cached extraction.
type Key struct {
	Mode  shape.Mode
	Layer voxel.Layer
	Hash  uint64
}

// KeyOf derives the key of a surface query on snap. The hash covers the
// selection corners, the anchor count, the ellipsoid sub-mode and the tube
// radius. Anchors that move without changing any of these need an explicit
// Invalidate.
func KeyOf(snap selection.Snapshot, layer voxel.Layer) Key {
	b, _ := snap.Bounds()

	var buf [8 * 9]byte
	fields := []int64{
		int64(b.Min.X), int64(b.Min.Y), int64(b.Min.Z),
		int64(b.Max.X), int64(b.Max.Y), int64(b.Max.Z),
		int64(len(snap.Anchors)),
		int64(snap.Ellipsoid),
		int64(snap.TubeRadius),
	}
	for i, f := range fields {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(f))
	}
	return Key{Mode: snap.Mode, Layer: layer, Hash: xxhash.Sum64(buf[:])}
}
