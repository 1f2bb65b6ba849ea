package blitter

import "github.com/lumenvec/raster2d/internal/compositor"

// Shader produces a run of premultiplied colors for one pixel row, per
// the engine spec's Shader collaborator (§4.4).
type Shader interface {
	ShadeSpan(x, y, count int) []compositor.Color
	IsOpaque() bool
}

// Surface is the destination pixel buffer a shader blitter writes into.
type Surface struct {
	Width, Height int
	Pix           []compositor.Color
}

// NewSurface allocates a cleared premultiplied ARGB32 buffer.
func NewSurface(width, height int) *Surface {
	return &Surface{Width: width, Height: height, Pix: make([]compositor.Color, width*height)}
}

func (s *Surface) row(y int) []compositor.Color {
	return s.Pix[y*s.Width : (y+1)*s.Width]
}

// ShaderBlitter composites a shader's output into dst using coverage
// from an AA mask (MaskSuperBlitter or MaskBlitter), under SrcOver.
type ShaderBlitter struct {
	Dst    *Surface
	Shader Shader
}

// BlitMaskRow composites one pixel row's worth of coverage.
func (b *ShaderBlitter) BlitMaskRow(y int, mask []uint8) {
	blitRow(b.Dst, b.Shader, compositor.SrcOver, mask, nil, y)
}

// ShaderClipBlitter is ShaderBlitter additionally intersected with a
// clip mask (the top of the active clip stack), per §4.5's clip-stack
// semantics.
type ShaderClipBlitter struct {
	Dst    *Surface
	Shader Shader
	Clip   []uint8 // same dimensions as Dst, one byte per pixel
}

// BlitMaskRow composites one pixel row's worth of coverage, clipped.
func (b *ShaderClipBlitter) BlitMaskRow(y int, mask []uint8) {
	clipRow := b.Clip[y*b.Dst.Width : (y+1)*b.Dst.Width]
	blitRow(b.Dst, b.Shader, compositor.SrcOver, mask, clipRow, y)
}

// ShaderBlendBlitter is ShaderBlitter under an arbitrary blend mode
// (Composite draw calls, §4.5), unclipped.
type ShaderBlendBlitter struct {
	Dst    *Surface
	Shader Shader
	Mode   compositor.Mode
}

// BlitMaskRow composites one pixel row's worth of coverage under Mode.
func (b *ShaderBlendBlitter) BlitMaskRow(y int, mask []uint8) {
	blitRow(b.Dst, b.Shader, b.Mode, mask, nil, y)
}

// ShaderClipBlendBlitter combines a clip mask with an arbitrary blend
// mode — the general case every other blitter variant specializes.
type ShaderClipBlendBlitter struct {
	Dst    *Surface
	Shader Shader
	Mode   compositor.Mode
	Clip   []uint8
}

// BlitMaskRow composites one pixel row's worth of coverage, clipped,
// under Mode.
func (b *ShaderClipBlendBlitter) BlitMaskRow(y int, mask []uint8) {
	clipRow := b.Clip[y*b.Dst.Width : (y+1)*b.Dst.Width]
	blitRow(b.Dst, b.Shader, b.Mode, mask, clipRow, y)
}

func blitRow(dst *Surface, shader Shader, mode compositor.Mode, mask, clip []uint8, y int) {
	row := dst.row(y)
	x := 0
	width := len(row)
	for x < width {
		for x < width && mask[x] == 0 {
			x++
		}
		if x >= width {
			break
		}
		start := x
		for x < width && mask[x] != 0 {
			x++
		}
		colors := shader.ShadeSpan(start, y, x-start)
		for i, c := range colors {
			px := start + i
			cov := mask[px]
			if clip != nil {
				cov = compositor.MulDiv255(cov, clip[px])
			}
			if cov == 0 {
				continue
			}
			if mode == compositor.SrcOver {
				row[px] = compositor.Composite(row[px], compositor.ScaleColor(c, cov), mode)
				continue
			}
			// lerp(dst, blend(src, dst), cov): coverage weights the blended
			// result against the untouched destination.
			blended := compositor.Composite(row[px], c, mode)
			row[px] = compositor.Composite(compositor.ScaleColor(row[px], 255-cov), compositor.ScaleColor(blended, cov), compositor.Plus)
		}
	}
}
