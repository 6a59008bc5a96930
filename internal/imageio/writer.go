package imageio

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"
	"github.com/ftrvxmtrx/tga"
)

// Encode writes img in the given format. WebP output is lossless.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case WebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("imageio: webp encode: %w", err)
		}
		return nil
	case TGA:
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("imageio: tga encode: %w", err)
		}
		return nil
	}

	imf, ok := format.imagingFormat()
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if err := imaging.Encode(w, img, imf); err != nil {
		return fmt.Errorf("imageio: %v encode: %w", format, err)
	}
	return nil
}

// Save encodes img to path. Formats without alpha are written as PNG data
// so cleared pixels stay transparent. The image is encoded to a temporary
// file in the target directory and renamed into place, so a failed encode
// leaves any existing file untouched.
func Save(path string, img image.Image, format Format) error {
	if !format.HasAlpha() {
		format = PNG
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("imageio: mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("imageio: create temp for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if err := Encode(tmp, img, format); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("imageio: save %s: %w", path, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("imageio: save %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("imageio: save %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("imageio: save %s: %w", path, err)
	}
	return nil
}
