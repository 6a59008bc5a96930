package imageio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrUnsupportedFormat is returned for files whose extension has no codec.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// Format identifies an image file encoding.
type Format int

const (
	PNG Format = iota
	JPEG
	GIF
	TIFF
	BMP
	WebP
	TGA
)

var formatNames = map[Format]string{
	PNG:  "png",
	JPEG: "jpeg",
	GIF:  "gif",
	TIFF: "tiff",
	BMP:  "bmp",
	WebP: "webp",
	TGA:  "tga",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

var extensions = map[string]Format{
	".png":  PNG,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".gif":  GIF,
	".tif":  TIFF,
	".tiff": TIFF,
	".bmp":  BMP,
	".webp": WebP,
	".tga":  TGA,
}

// FormatFromPath picks the format from the file extension, case-insensitively.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// Supported reports whether path has an extension this package can decode.
func Supported(path string) bool {
	_, err := FormatFromPath(path)
	return err == nil
}

// HasAlpha reports whether the format can store an alpha channel.
// JPEG has none; GIF only stores a palette index, which imaging's encoder
// does not reserve for transparency.
func (f Format) HasAlpha() bool {
	return f != JPEG && f != GIF
}

// imagingFormat maps formats handled by imaging.
func (f Format) imagingFormat() (imaging.Format, bool) {
	switch f {
	case PNG:
		return imaging.PNG, true
	case JPEG:
		return imaging.JPEG, true
	case GIF:
		return imaging.GIF, true
	case TIFF:
		return imaging.TIFF, true
	case BMP:
		return imaging.BMP, true
	}
	return 0, false
}
