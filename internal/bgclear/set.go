package bgclear

import "image"

// Set is a set of grid coordinates stored as a bitmap over linear indices.
type Set struct {
	width int
	bits  []bool
	n     int
}

// NewSet returns an empty set over a w×h grid.
func NewSet(w, h int) *Set {
	return &Set{width: w, bits: make([]bool, w*h)}
}

// Add inserts index i and reports whether it was newly added.
func (s *Set) Add(i int) bool {
	if s.bits[i] {
		return false
	}
	s.bits[i] = true
	s.n++
	return true
}

// Has reports whether index i is in the set.
func (s *Set) Has(i int) bool { return s.bits[i] }

// Contains reports whether (x, y) is in the set.
func (s *Set) Contains(x, y int) bool { return s.bits[y*s.width+x] }

// Len returns the number of members.
func (s *Set) Len() int { return s.n }

// Points returns the members in row-major order.
func (s *Set) Points() []image.Point {
	pts := make([]image.Point, 0, s.n)
	for i, ok := range s.bits {
		if ok {
			pts = append(pts, image.Pt(i%s.width, i/s.width))
		}
	}
	return pts
}
