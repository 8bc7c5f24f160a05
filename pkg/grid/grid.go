// Package grid provides voxel content for the counting use case. Shape
// classification never reads it.
package grid

import "github.com/mttstwrt/measurementtools/pkg/voxel"

// Air is the content name of an empty voxel.
const Air = "air"

// Grid looks up the content of one voxel. The boolean is false for voxels
// with no content.
type Grid interface {
	ContentAt(c voxel.Coord) (string, bool)
}

// IsEmpty reports whether content denotes an empty voxel.
func IsEmpty(content string) bool {
	return content == "" || content == Air
}

// Memory is an in-memory grid.
type Memory struct {
	cells map[voxel.Coord]string
}

func NewMemory() *Memory {
	return &Memory{cells: make(map[voxel.Coord]string)}
}

// Set stores content at c. Empty content clears the voxel.
func (m *Memory) Set(c voxel.Coord, content string) {
	if IsEmpty(content) {
		delete(m.cells, c)
		return
	}
	m.cells[c] = content
}

// Fill sets every voxel of b to content.
func (m *Memory) Fill(b voxel.Bounds, content string) {
	for y := b.Min.Y; y <= b.Max.Y; y++ {
		for x := b.Min.X; x <= b.Max.X; x++ {
			for z := b.Min.Z; z <= b.Max.Z; z++ {
				m.Set(voxel.C(x, y, z), content)
			}
		}
	}
}

func (m *Memory) ContentAt(c voxel.Coord) (string, bool) {
	content, ok := m.cells[c]
	return content, ok
}

// Len returns the number of non-empty voxels.
func (m *Memory) Len() int {
	return len(m.cells)
}
