// Package font adapts the teacher's glyph-rasterization interface
// (agg_go/internal/font's IntegerPathStorage / SerializedScanlinesAdaptor
// pair, which exposes a glyph as vertex/scanline data for the main
// rasterizer to consume) down to this engine's narrower collaborator:
// a glyph rasterizer need only hand back a ready-made A8 coverage
// mask, since §1 puts glyph outline extraction and hinting out of
// scope for this module.
package font

import raster2d "github.com/lumenvec/raster2d"

// NoOp is a reference raster2d.GlyphRasterizer that always reports an
// empty (fully transparent) mask at the glyph's requested size. It
// stands in for a real font backend in tests, the way the teacher's
// internal/font/freetype/stub.go stands in for FreeType when the
// library isn't linked.
type NoOp struct {
	// Width and Height are the mask dimensions NoOp reports for every
	// glyph, regardless of GlyphID or point size.
	Width, Height int
}

// Rasterize implements raster2d.GlyphRasterizer.
func (n NoOp) Rasterize(glyph raster2d.GlyphID, ptSize float64, xform raster2d.Matrix, subPixel raster2d.Point, hint raster2d.HintMode) (mask []byte, w, h int) {
	return make([]byte, n.Width*n.Height), n.Width, n.Height
}
