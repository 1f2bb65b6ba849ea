package raster2d_test

import (
	"testing"

	raster2d "github.com/lumenvec/raster2d"
	"github.com/lumenvec/raster2d/internal/font"
)

func TestNoOpGlyphRasterizerReturnsRequestedSize(t *testing.T) {
	var r raster2d.GlyphRasterizer = font.NoOp{Width: 8, Height: 10}
	mask, w, h := r.Rasterize(42, 12, raster2d.Identity(), raster2d.Point{}, raster2d.HintNone)
	if w != 8 || h != 10 {
		t.Fatalf("Rasterize size = (%d,%d), want (8,10)", w, h)
	}
	if len(mask) != w*h {
		t.Fatalf("len(mask) = %d, want %d", len(mask), w*h)
	}
	for i, v := range mask {
		if v != 0 {
			t.Fatalf("mask[%d] = %d, want 0 (NoOp reports an empty mask)", i, v)
		}
	}
}

func TestFillGlyphMaskCompositesAtOrigin(t *testing.T) {
	dt := raster2d.NewDrawTarget(4, 4)
	mask := []byte{255, 255, 255, 255}
	dt.FillGlyphMask(mask, 2, 2, raster2d.Point{X: 1, Y: 1}, raster2d.SolidFill(raster2d.RGBA(1, 0, 0, 1)))

	buf := dt.Bytes()
	// Pixel (1,1) is inside the mask's 2x2 footprint and should have
	// received full alpha; pixel (0,0) is outside it and should not.
	insideAlpha := buf[(1*4+1)*4+3]
	outsideAlpha := buf[(0*4+0)*4+3]
	if insideAlpha == 0 {
		t.Error("pixel inside the glyph mask's footprint has zero alpha")
	}
	if outsideAlpha != 0 {
		t.Error("pixel outside the glyph mask's footprint has non-zero alpha")
	}
}

func TestFillGlyphMaskIgnoresZeroSize(t *testing.T) {
	dt := raster2d.NewDrawTarget(2, 2)
	dt.FillGlyphMask(nil, 0, 0, raster2d.Point{}, raster2d.SolidFill(raster2d.RGBA(1, 1, 1, 1)))
	buf := dt.Bytes()
	for i := 3; i < len(buf); i += 4 {
		if buf[i] != 0 {
			t.Fatalf("FillGlyphMask with w=h=0 modified the surface")
		}
	}
}
