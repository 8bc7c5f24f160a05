package voxel

// Bounds is an inclusive axis-aligned box of voxels.
type Bounds struct {
	Min Coord `json:"min"`
	Max Coord `json:"max"`
}

// BoundsOf returns the componentwise min and max over cs. It reports false
// when cs is empty.
func BoundsOf(cs []Coord) (Bounds, bool) {
	if len(cs) == 0 {
		return Bounds{}, false
	}
	b := Bounds{Min: cs[0], Max: cs[0]}
	for _, c := range cs[1:] {
		b.Min.X = min(b.Min.X, c.X)
		b.Min.Y = min(b.Min.Y, c.Y)
		b.Min.Z = min(b.Min.Z, c.Z)
		b.Max.X = max(b.Max.X, c.X)
		b.Max.Y = max(b.Max.Y, c.Y)
		b.Max.Z = max(b.Max.Z, c.Z)
	}
	return b, true
}

// Contains reports whether c lies inside b, faces included.
func (b Bounds) Contains(c Coord) bool {
	return c.X >= b.Min.X && c.X <= b.Max.X &&
		c.Y >= b.Min.Y && c.Y <= b.Max.Y &&
		c.Z >= b.Min.Z && c.Z <= b.Max.Z
}

// OnFace reports whether c lies on one of the six faces of b.
func (b Bounds) OnFace(c Coord) bool {
	return c.X == b.Min.X || c.X == b.Max.X ||
		c.Y == b.Min.Y || c.Y == b.Max.Y ||
		c.Z == b.Min.Z || c.Z == b.Max.Z
}

// Size returns the inclusive span along each axis.
func (b Bounds) Size() (dx, dy, dz int) {
	return b.Max.X - b.Min.X + 1, b.Max.Y - b.Min.Y + 1, b.Max.Z - b.Min.Z + 1
}

// Volume returns the number of voxels inside b.
func (b Bounds) Volume() int {
	dx, dy, dz := b.Size()
	return dx * dy * dz
}
