package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// OpaqueBounds returns the bounding box of non-transparent pixels, or an
// empty rectangle when every pixel is transparent.
func OpaqueBounds(img *image.NRGBA) image.Rectangle {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[img.PixOffset(x, y)+3] == 0 {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	if maxX < minX {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// Trim crops img to its non-transparent pixels. A fully transparent image
// is returned unchanged.
func Trim(img *image.NRGBA) *image.NRGBA {
	r := OpaqueBounds(img)
	if r.Empty() || r == img.Bounds() {
		return img
	}
	cropped := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Copy(cropped, image.Point{}, img, r, draw.Src, nil)
	return cropped
}
