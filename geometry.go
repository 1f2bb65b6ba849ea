package raster2d

// Rect is an axis-aligned rectangle in user space, given as an origin
// and size (rather than two corners) to match how callers most often
// construct one for clipping or hit-testing.
type Rect struct {
	X, Y, W, H float64
}
