package report

import (
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// PaletteMethod selects how remaining colors are summarized.
type PaletteMethod int

const (
	PaletteDominant PaletteMethod = iota
	PaletteKMeans
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteKMeans:
		return "kmeans"
	default:
		return "dominant"
	}
}

// ParsePaletteMethod accepts "dominant" or "kmeans".
func ParsePaletteMethod(s string) (PaletteMethod, error) {
	switch s {
	case "dominant", "":
		return PaletteDominant, nil
	case "kmeans":
		return PaletteKMeans, nil
	}
	return 0, fmt.Errorf("report: unknown palette method %q", s)
}

// Swatch is one palette entry. Weight is its share of the sampled pixels.
type Swatch struct {
	Color  colorful.Color
	Weight float64
}

// Hex returns the swatch as #rrggbb.
func (s Swatch) Hex() string { return s.Color.Clamped().Hex() }

// maxSamples bounds the pixels fed to k-means.
const maxSamples = 12000

// Palette returns up to k colors of the non-transparent pixels of img,
// heaviest first. Fully transparent images have no palette.
func Palette(img *image.NRGBA, k int, method PaletteMethod) []Swatch {
	if k <= 0 {
		return nil
	}
	opaque := opaquePixels(img)
	if len(opaque.Pix) == 0 {
		return nil
	}

	switch method {
	case PaletteKMeans:
		return kmeansPalette(opaque, k)
	default:
		return dominantPalette(opaque, k)
	}
}

// opaquePixels packs every non-transparent pixel of img into a single row.
func opaquePixels(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	var pix []uint8
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			if img.Pix[i+3] > 0 {
				pix = append(pix, img.Pix[i], img.Pix[i+1], img.Pix[i+2], 255)
			}
		}
	}
	n := len(pix) / 4
	return &image.NRGBA{Pix: pix, Stride: len(pix), Rect: image.Rect(0, 0, n, 1)}
}

func dominantPalette(img *image.NRGBA, k int) []Swatch {
	found := dominantcolor.FindWeight(img, k)
	swatches := make([]Swatch, 0, len(found))
	for _, c := range found {
		col, _ := colorful.MakeColor(c.RGBA)
		swatches = append(swatches, Swatch{Color: col, Weight: c.Weight})
	}
	sortSwatches(swatches)
	return swatches
}

func kmeansPalette(img *image.NRGBA, k int) []Swatch {
	n := img.Rect.Dx()
	step := 1
	if n > maxSamples {
		step = int(math.Ceil(float64(n) / maxSamples))
	}

	dataset := make(clusters.Observations, 0, min(n, maxSamples))
	for x := 0; x < n; x += step {
		i := x * 4
		dataset = append(dataset, clusters.Coordinates{
			float64(img.Pix[i]) / 255,
			float64(img.Pix[i+1]) / 255,
			float64(img.Pix[i+2]) / 255,
		})
	}

	k = min(k, len(dataset))
	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil {
		return nil
	}

	swatches := make([]Swatch, 0, len(cc))
	for _, c := range cc {
		if len(c.Observations) == 0 {
			continue
		}
		swatches = append(swatches, Swatch{
			Color:  meanColor(c.Observations),
			Weight: float64(len(c.Observations)) / float64(len(dataset)),
		})
	}
	sortSwatches(swatches)
	return swatches
}

// meanColor averages the observations of a cluster. Partition leaves
// Center at its random seed when assignments never change, so the
// centroid is recomputed here.
func meanColor(obs clusters.Observations) colorful.Color {
	var r, g, b float64
	for _, o := range obs {
		c := o.Coordinates()
		r += c[0]
		g += c[1]
		b += c[2]
	}
	n := float64(len(obs))
	return colorful.Color{R: r / n, G: g / n, B: b / n}
}

func sortSwatches(s []Swatch) {
	slices.SortStableFunc(s, func(a, b Swatch) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		}
		return 0
	})
}
