package voxel

import (
	"cmp"
	"slices"
)

// Set is an unordered collection of unique voxel coordinates.
type Set map[Coord]struct{}

// NewSet returns a set holding cs.
func NewSet(cs ...Coord) Set {
	s := make(Set, len(cs))
	for _, c := range cs {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts c and reports whether it was not already present.
func (s Set) Add(c Coord) bool {
	if _, ok := s[c]; ok {
		return false
	}
	s[c] = struct{}{}
	return true
}

// Has reports whether c is in the set.
func (s Set) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of voxels in the set.
func (s Set) Len() int {
	return len(s)
}

// SubsetOf reports whether every voxel of s is also in o.
func (s Set) SubsetOf(o Set) bool {
	for c := range s {
		if !o.Has(c) {
			return false
		}
	}
	return true
}

// Equal reports whether s and o hold the same voxels.
func (s Set) Equal(o Set) bool {
	return len(s) == len(o) && s.SubsetOf(o)
}

// Filter returns the voxels of s for which keep returns true.
func (s Set) Filter(keep func(Coord) bool) Set {
	out := make(Set)
	for c := range s {
		if keep(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

// Sorted returns the voxels ordered by Y, then X, then Z.
func (s Set) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Coord) int {
		if d := cmp.Compare(a.Y, b.Y); d != 0 {
			return d
		}
		if d := cmp.Compare(a.X, b.X); d != 0 {
			return d
		}
		return cmp.Compare(a.Z, b.Z)
	})
	return out
}
