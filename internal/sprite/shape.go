package sprite

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// Shape kinds.
const (
	Ellipse = "ellipse"
	Rect    = "rect"
)

// Shape is one filled primitive. Box holds x0, y0, x1, y1 with both
// corners inclusive.
type Shape struct {
	Kind string `json:"kind"`
	Box  [4]int `json:"box"`
	Fill string `json:"fill"` // #rrggbb, always drawn opaque
}

// Sheet is a canvas size plus the shapes drawn on it, back to front.
type Sheet struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Shapes []Shape `json:"shapes"`
}

// LoadSheet reads a JSON sheet description.
func LoadSheet(path string) (Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("sprite: read %s: %w", path, err)
	}
	var s Sheet
	if err := json.Unmarshal(data, &s); err != nil {
		return Sheet{}, fmt.Errorf("sprite: parse %s: %w", path, err)
	}
	return s, nil
}

// Render draws the sheet onto a transparent canvas.
func Render(s Sheet) (*image.NRGBA, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("sprite: invalid canvas %dx%d", s.Width, s.Height)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, s.Width, s.Height))
	for i, sh := range s.Shapes {
		if err := drawShape(dst, sh); err != nil {
			return nil, fmt.Errorf("sprite: shape %d: %w", i, err)
		}
	}
	return dst, nil
}

func drawShape(dst draw.Image, sh Shape) error {
	fill, err := colorful.Hex(sh.Fill)
	if err != nil {
		return fmt.Errorf("fill %q: %w", sh.Fill, err)
	}
	r, g, b := fill.RGB255()
	src := image.NewUniform(color.NRGBA{R: r, G: g, B: b, A: 255})

	x0, y0, x1, y1 := sh.Box[0], sh.Box[1], sh.Box[2], sh.Box[3]
	if x1 < x0 || y1 < y0 {
		return fmt.Errorf("box %v: corners out of order", sh.Box)
	}
	box := image.Rect(x0, y0, x1+1, y1+1)

	switch sh.Kind {
	case Rect:
		draw.Draw(dst, box, src, image.Point{}, draw.Over)
	case Ellipse:
		draw.DrawMask(dst, box, src, image.Point{}, &ellipseMask{box}, box.Min, draw.Over)
	default:
		return fmt.Errorf("unknown kind %q", sh.Kind)
	}
	return nil
}

// ellipseMask is opaque inside the ellipse inscribed in r.
type ellipseMask struct {
	r image.Rectangle
}

func (m *ellipseMask) ColorModel() color.Model { return color.AlphaModel }
func (m *ellipseMask) Bounds() image.Rectangle { return m.r }
func (m *ellipseMask) At(x, y int) color.Color {
	rx := float64(m.r.Dx()) / 2
	ry := float64(m.r.Dy()) / 2
	dx := (float64(x) + 0.5 - float64(m.r.Min.X) - rx) / rx
	dy := (float64(y) + 0.5 - float64(m.r.Min.Y) - ry) / ry
	if dx*dx+dy*dy <= 1 {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}

// Mothership returns the 64×32 enemy mothership: a red saucer body, a
// light blue dome and four yellow lights.
func Mothership() Sheet {
	return Sheet{
		Width:  64,
		Height: 32,
		Shapes: []Shape{
			{Kind: Ellipse, Box: [4]int{10, 10, 54, 26}, Fill: "#c80000"},
			{Kind: Ellipse, Box: [4]int{24, 6, 40, 18}, Fill: "#64c8ff"},
			{Kind: Rect, Box: [4]int{15, 18, 18, 20}, Fill: "#ffff00"},
			{Kind: Rect, Box: [4]int{25, 18, 28, 20}, Fill: "#ffff00"},
			{Kind: Rect, Box: [4]int{35, 18, 38, 20}, Fill: "#ffff00"},
			{Kind: Rect, Box: [4]int{45, 18, 48, 20}, Fill: "#ffff00"},
		},
	}
}
