package postprocess

import "sprite-bgclear/internal/raster"

// RemoveSmallClusters clears opaque islands left behind after background
// removal. Islands are 8-connected groups of non-transparent pixels; any
// island smaller than minRatio of all non-transparent pixels is set to
// (0,0,0,0) in place. It returns the number of pixels cleared.
func RemoveSmallClusters(g *raster.Grid, minRatio float64) int {
	w, h := g.Width, g.Height
	n := g.Len()

	totalAlpha := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !g.At(x, y).Transparent() {
				totalAlpha++
			}
		}
	}
	if totalAlpha == 0 || minRatio <= 0 {
		return 0
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	var compSizes []int

	dx := [8]int{-1, 0, 1, -1, 1, -1, 0, 1}
	dy := [8]int{-1, -1, -1, 0, 0, 1, 1, 1}
	queue := make([]int, 0, 1024)

	for i := 0; i < n; i++ {
		x, y := g.Coord(i)
		if labels[i] >= 0 || g.At(x, y).Transparent() {
			continue
		}

		id := len(compSizes)
		queue = append(queue[:0], i)
		labels[i] = id
		for head := 0; head < len(queue); head++ {
			cx, cy := g.Coord(queue[head])
			for d := 0; d < 8; d++ {
				nx, ny := cx+dx[d], cy+dy[d]
				if !g.InBounds(nx, ny) {
					continue
				}
				ni := g.Index(nx, ny)
				if labels[ni] < 0 && !g.At(nx, ny).Transparent() {
					labels[ni] = id
					queue = append(queue, ni)
				}
			}
		}
		compSizes = append(compSizes, len(queue))
	}

	if len(compSizes) <= 1 {
		return 0
	}

	minSize := int(float64(totalAlpha) * minRatio)
	removed := 0
	for i, id := range labels {
		if id >= 0 && compSizes[id] < minSize {
			x, y := g.Coord(i)
			g.Set(x, y, raster.Pixel{})
			removed++
		}
	}
	return removed
}
