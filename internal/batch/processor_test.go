package batch

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"sprite-bgclear/internal/bgclear"
)

var (
	magenta = color.NRGBA{R: 255, B: 255, A: 255}
	ship    = color.NRGBA{R: 20, G: 120, B: 220, A: 255}
)

// writeSprite writes a w×h magenta PNG with a ship-colored block inside
// [2, w-2) × [2, h-2).
func writeSprite(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := magenta
			if x >= 2 && x < w-2 && y >= 2 && y < h-2 {
				c = ship
			}
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func readPNG(t *testing.T, path string) *image.NRGBA {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	// Opaque images come back as RGB.
	b := img.Bounds()
	n := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n.Set(x, y, img.At(x, y))
		}
	}
	return n
}

func TestRunInPlace(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "alien1.png")
	missing := filepath.Join(dir, "alien2.png")
	broken := filepath.Join(dir, "alien3.png")
	last := filepath.Join(dir, "alien4.png")
	writeSprite(t, good, 8, 6)
	writeSprite(t, last, 6, 6)
	if err := os.WriteFile(broken, []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}

	results := Run(Config{Remove: bgclear.DefaultOptions()}, []string{good, missing, broken, last})
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}

	if r := results[0]; !r.Success || r.Cleared != 8*6-4*2 || r.Width != 8 || r.Height != 6 {
		t.Errorf("good file result = %+v", r)
	}
	if r := results[1]; r.Success || !r.Missing {
		t.Errorf("missing file result = %+v", r)
	}
	if r := results[2]; r.Success || r.Missing || r.Error == "" {
		t.Errorf("broken file result = %+v", r)
	}
	if r := results[3]; !r.Success {
		t.Errorf("file after failures not processed: %+v", r)
	}
	if _, err := os.Stat(missing); !os.IsNotExist(err) {
		t.Error("output written for a missing input")
	}

	out := readPNG(t, good)
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{}) {
		t.Errorf("background = %v, want transparent", got)
	}
	if got := out.NRGBAAt(3, 3); got != ship {
		t.Errorf("sprite = %v, want %v", got, ship)
	}

	success, failed := Summary(results)
	if success != 2 || failed != 2 {
		t.Errorf("Summary = %d/%d, want 2/2", success, failed)
	}
}

func TestRunPalettedKeepsSpriteBytes(t *testing.T) {
	pal := color.Palette{
		magenta,
		color.NRGBA{R: 10, G: 200, B: 30, A: 255},
		color.NRGBA{R: 90, G: 90, B: 90, A: 128},
	}
	const w, h = 8, 6
	src := image.NewPaletted(image.Rect(0, 0, w, h), pal)
	for y := 2; y < h-2; y++ {
		for x := 2; x < w-2; x++ {
			src.SetColorIndex(x, y, uint8(1+(x+y)%2))
		}
	}

	path := filepath.Join(t.TempDir(), "alien5.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	results := Run(Config{Remove: bgclear.DefaultOptions()}, []string{path})
	if r := results[0]; !r.Success || r.Cleared != w*h-(w-4)*(h-4) {
		t.Fatalf("result = %+v", r)
	}

	out := readPNG(t, path)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := color.NRGBA{}
			if x >= 2 && x < w-2 && y >= 2 && y < h-2 {
				want = pal[src.ColorIndexAt(x, y)].(color.NRGBA)
			}
			if got := out.NRGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRunOutputDirTrim(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "spaceship.png")
	outDir := filepath.Join(dir, "out")
	writeSprite(t, in, 10, 7)

	results := Run(Config{Remove: bgclear.DefaultOptions(), OutputDir: outDir, Trim: true}, []string{in})
	r := results[0]
	if !r.Success {
		t.Fatalf("result = %+v", r)
	}
	if r.Output != filepath.Join(outDir, "spaceship.png") {
		t.Errorf("Output = %s", r.Output)
	}

	out := readPNG(t, r.Output)
	if out.Bounds() != image.Rect(0, 0, 6, 3) {
		t.Errorf("trimmed bounds = %v, want 6x3", out.Bounds())
	}
	// Input untouched.
	if got := readPNG(t, in).NRGBAAt(0, 0); got != magenta {
		t.Errorf("input modified: %v", got)
	}
}

func TestRunBadSeed(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "tiny.png")
	writeSprite(t, in, 4, 4)

	opts := bgclear.Options{Tolerance: 10, Seeds: []image.Point{{10, 10}}}
	r := Run(Config{Remove: opts}, []string{in})[0]
	if r.Success || r.Error == "" {
		t.Errorf("result = %+v, want seed error", r)
	}
	if got := readPNG(t, in).NRGBAAt(0, 0); got != magenta {
		t.Errorf("input modified after failure: %v", got)
	}
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.json")
	results := []Result{
		{Path: "a.png", Width: 2, Height: 2, Cleared: 4, Success: true},
		{Path: "b.png", Error: "boom"},
	}
	if err := WriteReport(path, results); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got []Result
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Cleared != 4 || got[1].Error != "boom" {
		t.Errorf("report = %+v", got)
	}
}

func TestOutputPath(t *testing.T) {
	if got := OutputPath("", "assets/a.png"); got != "assets/a.png" {
		t.Errorf("in place = %s", got)
	}
	if got := OutputPath("out", "assets/a.png"); got != filepath.Join("out", "a.png") {
		t.Errorf("output dir = %s", got)
	}
}
