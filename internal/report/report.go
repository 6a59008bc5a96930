// Package report computes read-only diagnostics for processed sprites:
// how much of each image is transparent, what sits in its corners and
// which colors remain.
package report

import (
	"fmt"
	"image"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"

	"sprite-bgclear/internal/bgclear"
	"sprite-bgclear/internal/raster"
)

// Stats describes one image.
type Stats struct {
	Path        string
	Width       int
	Height      int
	Transparent int
	// Corners are top-left, top-right, bottom-left, bottom-right.
	Corners [4]raster.Pixel
	Palette []Swatch
}

// Total returns the pixel count.
func (s Stats) Total() int { return s.Width * s.Height }

// Ratio returns the transparent fraction in [0, 1].
func (s Stats) Ratio() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Transparent) / float64(s.Total())
}

// Inspect counts transparent pixels and samples the corners of img.
func Inspect(path string, img *image.NRGBA) Stats {
	g := raster.FromNRGBA(img)
	s := Stats{Path: path, Width: g.Width, Height: g.Height}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y).Transparent() {
				s.Transparent++
			}
		}
	}
	if g.Len() > 0 {
		for i, c := range bgclear.Corners(g.Width, g.Height) {
			s.Corners[i] = g.At(c.X, c.Y)
		}
	}
	return s
}

// String renders the stats in the checkimages output format.
func (s Stats) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "File: %s, Transparency: %.1f%% (%d/%d pixels)\n",
		s.Path, 100*s.Ratio(), s.Transparent, s.Total())

	corners := make([]string, len(s.Corners))
	for i, p := range s.Corners {
		corners[i] = fmt.Sprintf("(%d, %d, %d, %d)", p.R, p.G, p.B, p.A)
	}
	fmt.Fprintf(&sb, "  Corners: [%s]", strings.Join(corners, ", "))

	if len(s.Palette) > 0 {
		sw := make([]string, len(s.Palette))
		for i, p := range s.Palette {
			sw[i] = fmt.Sprintf("%s %.1f%%", p.Hex(), 100*p.Weight)
		}
		fmt.Fprintf(&sb, "\n  Palette: %s", strings.Join(sw, ", "))
	}
	return sb.String()
}

// Summary aggregates transparency ratios over a batch.
type Summary struct {
	Files       int
	MeanRatio   float64
	StdDevRatio float64
}

// Summarize computes the mean and standard deviation of the ratios.
func Summarize(stats []Stats) Summary {
	if len(stats) == 0 {
		return Summary{}
	}
	ratios := make([]float64, len(stats))
	for i, s := range stats {
		ratios[i] = s.Ratio()
	}
	mean, std := stat.MeanStdDev(ratios, nil)
	if len(ratios) < 2 || math.IsNaN(std) {
		std = 0
	}
	return Summary{Files: len(stats), MeanRatio: mean, StdDevRatio: std}
}

func (s Summary) String() string {
	return fmt.Sprintf("Files: %d, mean transparency %.1f%% (std dev %.1f%%)",
		s.Files, 100*s.MeanRatio, 100*s.StdDevRatio)
}
