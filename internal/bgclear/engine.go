// Package bgclear removes solid background fill from sprite images by
// flood-filling from seed points (the image corners by default) and
// clearing every 4-connected pixel within a color tolerance of the seed.
package bgclear

import (
	"image"

	"sprite-bgclear/internal/raster"
)

// DefaultTolerance is the default maximum RGB distance to a seed color.
const DefaultTolerance = 100

// Options controls one Remove call.
type Options struct {
	Tolerance float64
	// Seeds are resolved with ResolveSeeds; nil means the four corners.
	Seeds []image.Point
}

// DefaultOptions returns corner seeds at DefaultTolerance.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// 4-connected neighbor offsets: left, right, up, down.
var (
	dx = [4]int{-1, 1, 0, 0}
	dy = [4]int{0, 0, -1, 1}
)

// ComputeClearSet returns the coordinates that must become transparent.
// The grid is only read.
//
// Seeds are processed in order and share one visited set: a seed that an
// earlier seed's fill already reached is skipped, and no fill re-enters
// territory claimed by an earlier one. Results therefore depend on seed
// order when seeds sample different colors.
//
// A transparent seed is walked through but never added to the set, so its
// RGB channels are left as they are.
//
// Seeds must lie inside the grid.
func ComputeClearSet(g *raster.Grid, seeds []image.Point, tolerance float64) *Set {
	visited := NewSet(g.Width, g.Height)
	toClear := NewSet(g.Width, g.Height)
	queue := make([]int, 0, 1024)

	for _, s := range seeds {
		queue = fill(g, s, tolerance, visited, toClear, queue[:0])
	}
	return toClear
}

// fill runs one breadth-first traversal from seed. It returns the queue
// buffer for reuse by the next seed.
func fill(g *raster.Grid, seed image.Point, tolerance float64, visited, toClear *Set, queue []int) []int {
	start := g.Index(seed.X, seed.Y)
	if visited.Has(start) {
		return queue
	}

	seedColor := g.At(seed.X, seed.Y)
	visited.Add(start)
	queue = append(queue, start)

	for head := 0; head < len(queue); head++ {
		cx, cy := g.Coord(queue[head])
		for d := 0; d < 4; d++ {
			nx := cx + dx[d]
			ny := cy + dy[d]
			if !g.InBounds(nx, ny) {
				continue
			}
			ni := g.Index(nx, ny)
			if visited.Has(ni) {
				continue
			}

			c := g.At(nx, ny)
			switch {
			case c.Transparent():
				// Walk through, nothing to clear.
			case raster.Distance(c, seedColor) <= tolerance:
				toClear.Add(ni)
			default:
				continue
			}
			visited.Add(ni)
			queue = append(queue, ni)
		}
	}

	// The seed always matches itself; an already transparent seed needs no clearing.
	if !seedColor.Transparent() {
		toClear.Add(start)
	}
	return queue
}

// Apply sets every pixel in toClear to (0,0,0,0). Applying the same set
// twice leaves the grid as applying it once.
func Apply(g *raster.Grid, toClear *Set) {
	for i, ok := range toClear.bits {
		if ok {
			x, y := g.Coord(i)
			g.Set(x, y, raster.Pixel{})
		}
	}
}

// Remove resolves opts.Seeds against the grid, computes the clear set and
// applies it. The grid is left untouched when the seeds do not resolve.
func Remove(g *raster.Grid, opts Options) (*Set, error) {
	seeds, err := ResolveSeeds(opts.Seeds, g.Width, g.Height)
	if err != nil {
		return nil, err
	}
	toClear := ComputeClearSet(g, seeds, opts.Tolerance)
	Apply(g, toClear)
	return toClear, nil
}
