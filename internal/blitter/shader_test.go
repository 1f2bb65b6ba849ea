package blitter

import (
	"testing"

	"github.com/lumenvec/raster2d/internal/compositor"
)

type solidShader struct{ c compositor.Color }

func (s solidShader) ShadeSpan(x, y, count int) []compositor.Color {
	out := make([]compositor.Color, count)
	for i := range out {
		out[i] = s.c
	}
	return out
}
func (s solidShader) IsOpaque() bool { return s.c.A() == 255 }

func TestShaderBlitterFullCoverageReplacesPixel(t *testing.T) {
	dst := NewSurface(4, 1)
	sh := solidShader{c: compositor.ARGB(255, 10, 20, 30)}
	b := &ShaderBlitter{Dst: dst, Shader: sh}
	mask := []uint8{255, 255, 255, 255}
	b.BlitMaskRow(0, mask)
	for px, c := range dst.Pix {
		if c != sh.c {
			t.Errorf("pixel %d = %#x, want %#x", px, c, sh.c)
		}
	}
}

func TestShaderBlitterZeroMaskLeavesPixelUnchanged(t *testing.T) {
	dst := NewSurface(2, 1)
	dst.Pix[0] = compositor.ARGB(255, 1, 2, 3)
	sh := solidShader{c: compositor.ARGB(255, 100, 100, 100)}
	b := &ShaderBlitter{Dst: dst, Shader: sh}
	b.BlitMaskRow(0, []uint8{0, 0})
	if dst.Pix[0] != compositor.ARGB(255, 1, 2, 3) {
		t.Errorf("zero-coverage pixel changed to %#x", dst.Pix[0])
	}
}

func TestShaderClipBlitterIntersectsClip(t *testing.T) {
	dst := NewSurface(2, 1)
	sh := solidShader{c: compositor.ARGB(255, 200, 200, 200)}
	b := &ShaderClipBlitter{Dst: dst, Shader: sh, Clip: []uint8{255, 0}}
	b.BlitMaskRow(0, []uint8{255, 255})
	if dst.Pix[0] == 0 {
		t.Error("pixel 0 (clip=255) should have received the shader's color")
	}
	if dst.Pix[1] != 0 {
		t.Errorf("pixel 1 (clip=0) should remain untouched, got %#x", dst.Pix[1])
	}
}

func TestShaderBlendBlitterUsesMode(t *testing.T) {
	dst := NewSurface(1, 1)
	dst.Pix[0] = compositor.ARGB(255, 255, 255, 255)
	sh := solidShader{c: compositor.ARGB(255, 0, 0, 0)}
	b := &ShaderBlendBlitter{Dst: dst, Shader: sh, Mode: compositor.Multiply}
	b.BlitMaskRow(0, []uint8{255})
	if dst.Pix[0].R() != 0 {
		t.Errorf("Multiply(white, black) R = %d, want 0", dst.Pix[0].R())
	}
}

func TestShaderClipBlendBlitterCombinesBoth(t *testing.T) {
	dst := NewSurface(1, 1)
	dst.Pix[0] = compositor.ARGB(255, 255, 255, 255)
	sh := solidShader{c: compositor.ARGB(255, 0, 0, 0)}
	b := &ShaderClipBlendBlitter{Dst: dst, Shader: sh, Mode: compositor.Multiply, Clip: []uint8{0}}
	b.BlitMaskRow(0, []uint8{255})
	if dst.Pix[0] != compositor.ARGB(255, 255, 255, 255) {
		t.Errorf("a fully clipped-out pixel changed to %#x", dst.Pix[0])
	}
}
