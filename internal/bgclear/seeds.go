package bgclear

import (
	"errors"
	"fmt"
	"image"
)

// ErrSeedOutOfBounds is returned by ResolveSeeds for a seed outside the image.
var ErrSeedOutOfBounds = errors.New("bgclear: seed out of bounds")

// Corners returns the four corner coordinates of a w×h grid in the order
// top-left, top-right, bottom-left, bottom-right.
func Corners(w, h int) []image.Point {
	return []image.Point{
		{0, 0},
		{w - 1, 0},
		{0, h - 1},
		{w - 1, h - 1},
	}
}

// ResolveSeeds maps seed specs onto a w×h grid. A negative coordinate
// counts back from the far edge, so -1 is the last column or row.
// An empty spec list resolves to Corners(w, h).
func ResolveSeeds(specs []image.Point, w, h int) ([]image.Point, error) {
	if len(specs) == 0 {
		if w <= 0 || h <= 0 {
			return nil, fmt.Errorf("%w: empty %dx%d image", ErrSeedOutOfBounds, w, h)
		}
		return Corners(w, h), nil
	}

	seeds := make([]image.Point, len(specs))
	for i, p := range specs {
		x, y := p.X, p.Y
		if x < 0 {
			x += w
		}
		if y < 0 {
			y += h
		}
		if x < 0 || x >= w || y < 0 || y >= h {
			return nil, fmt.Errorf("%w: (%d,%d) in %dx%d image", ErrSeedOutOfBounds, p.X, p.Y, w, h)
		}
		seeds[i] = image.Pt(x, y)
	}
	return seeds, nil
}
