package voxel

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Coord identifies one unit cube of the grid.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// C returns the coordinate (x, y, z).
func C(x, y, z int) Coord {
	return Coord{X: x, Y: y, Z: z}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// Center returns the continuous center of the voxel, c + (0.5, 0.5, 0.5).
func (c Coord) Center() v3.Vec {
	return v3.Vec{
		X: float64(c.X) + 0.5,
		Y: float64(c.Y) + 0.5,
		Z: float64(c.Z) + 0.5,
	}
}

// Add returns c offset by (dx, dy, dz).
func (c Coord) Add(dx, dy, dz int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
}

// Containing returns the voxel whose unit cube contains p.
func Containing(p v3.Vec) Coord {
	return Coord{
		X: int(math.Floor(p.X)),
		Y: int(math.Floor(p.Y)),
		Z: int(math.Floor(p.Z)),
	}
}

// Centers converts coordinates to voxel centers, preserving order.
func Centers(cs []Coord) []v3.Vec {
	out := make([]v3.Vec, len(cs))
	for i, c := range cs {
		out[i] = c.Center()
	}
	return out
}
