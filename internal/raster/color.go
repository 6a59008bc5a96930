package raster

import "math"

// Distance returns the Euclidean distance between the RGB channels of a
// and b. Alpha is ignored. Identical colors are exactly 0 apart.
func Distance(a, b Pixel) float64 {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return math.Sqrt(float64(dr*dr + dg*dg + db*db))
}
