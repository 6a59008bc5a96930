package imageio

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// Load reads an image file and returns it as NRGBA together with the
// format picked from its extension. Images without an alpha channel come
// back fully opaque. A missing file yields an error wrapping fs.ErrNotExist.
func Load(path string) (*image.NRGBA, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, 0, err
	}

	img, err := Decode(f, format)
	if err != nil {
		return nil, format, fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	return img, format, nil
}

// Decode reads one image in the given format and converts it to NRGBA.
// The decoder is picked from format, never sniffed: the tga package
// registers an empty magic string that would match every input.
func Decode(r io.Reader, format Format) (*image.NRGBA, error) {
	var (
		img image.Image
		err error
	)
	switch format {
	case PNG:
		img, err = png.Decode(r)
	case JPEG:
		img, err = jpeg.Decode(r)
	case GIF:
		img, err = gif.Decode(r)
	case TIFF:
		img, err = tiff.Decode(r)
	case BMP:
		img, err = bmp.Decode(r)
	case WebP:
		img, err = webp.Decode(r)
	case TGA:
		img, err = tga.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return toNRGBA(img), nil
}

// toNRGBA converts any image to NRGBA anchored at (0, 0).
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(src)
}
