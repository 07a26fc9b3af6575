package question

import (
	"fmt"
	"sort"
	"strings"
)

// Coord addresses a grid cell. X is the column and Y the row, with the
// origin at the top-left.
type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// CoordSet is an unordered set of cell coordinates.
type CoordSet map[Coord]struct{}

// NewCoordSet builds a set from the given coordinates.
func NewCoordSet(coords ...Coord) CoordSet {
	s := make(CoordSet, len(coords))
	for _, c := range coords {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts a coordinate.
func (s CoordSet) Add(c Coord) {
	s[c] = struct{}{}
}

// Contains reports membership.
func (s CoordSet) Contains(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Equal reports whether both sets contain exactly the same coordinates.
func (s CoordSet) Equal(other CoordSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Union adds every coordinate of other into s.
func (s CoordSet) Union(other CoordSet) {
	for c := range other {
		s[c] = struct{}{}
	}
}

// Clone returns an independent copy.
func (s CoordSet) Clone() CoordSet {
	c := make(CoordSet, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

// Sorted returns the coordinates in row-major order (top-left first), for
// deterministic serialization and logging.
func (s CoordSet) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func (s CoordSet) String() string {
	parts := make([]string, 0, len(s))
	for _, c := range s.Sorted() {
		parts = append(parts, c.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}
