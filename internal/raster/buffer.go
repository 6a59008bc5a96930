package raster

import "image"

// Pixel is one straight-alpha RGBA sample.
type Pixel struct {
	R, G, B, A uint8
}

// Transparent reports whether the pixel has zero alpha.
func (p Pixel) Transparent() bool { return p.A == 0 }

// Grid holds a width×height RGBA image as a flat slice for cache locality.
// Pixels are addressed by (x, y) with 0 <= x < Width, 0 <= y < Height.
type Grid struct {
	Width  int
	Height int
	Stride int     // bytes between rows
	Pix    []uint8 // RGBA interleaved
}

// NewGrid allocates a fully transparent grid.
func NewGrid(w, h int) *Grid {
	return &Grid{
		Width:  w,
		Height: h,
		Stride: w * 4,
		Pix:    make([]uint8, w*h*4),
	}
}

// FromNRGBA wraps img without copying. Writes through the grid are
// visible in img.
func FromNRGBA(img *image.NRGBA) *Grid {
	b := img.Bounds()
	return &Grid{
		Width:  b.Dx(),
		Height: b.Dy(),
		Stride: img.Stride,
		Pix:    img.Pix[img.PixOffset(b.Min.X, b.Min.Y):],
	}
}

// NRGBA returns an image sharing the grid's buffer, anchored at (0, 0).
func (g *Grid) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    g.Pix,
		Stride: g.Stride,
		Rect:   image.Rect(0, 0, g.Width, g.Height),
	}
}

// Len returns the number of pixels in the grid.
func (g *Grid) Len() int { return g.Width * g.Height }

// InBounds reports whether (x, y) addresses a pixel of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x, y) to a linear coordinate index in [0, Len()).
func (g *Grid) Index(x, y int) int { return y*g.Width + x }

// Coord is the inverse of Index.
func (g *Grid) Coord(i int) (x, y int) { return i % g.Width, i / g.Width }

func (g *Grid) offset(x, y int) int { return y*g.Stride + x*4 }

// At returns the pixel at (x, y). The result is undefined outside the grid.
func (g *Grid) At(x, y int) Pixel {
	i := g.offset(x, y)
	s := g.Pix[i : i+4 : i+4]
	return Pixel{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// Set writes the pixel at (x, y).
func (g *Grid) Set(x, y int, p Pixel) {
	i := g.offset(x, y)
	s := g.Pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = p.R, p.G, p.B, p.A
}
