// Package blitter turns the rasterizer's super-scanline spans into
// per-pixel coverage masks (MaskSuperBlitter, MaskBlitter) and then
// consumes those masks to composite a shader's colors into a
// destination buffer (the Shader* blitter family), per the engine
// spec's Blitter collaborator (§4.3).
package blitter

import (
	"github.com/lumenvec/raster2d/internal/raster"
)

// MaskSuperBlitter accumulates the rasterizer's 4 super-scanlines per
// pixel row into an 8-bit coverage mask, using the classic supersampled
// AA weighting: each of the Scale sub-rows contributes up to
// 1<<(8-Shift) of coverage (the last contributes one less, so four
// full sub-rows sum to 255 rather than overflowing to 256).
type MaskSuperBlitter struct {
	Width, Height int
	Mask          []uint8 // row-major, Width*Height
}

// NewMaskSuperBlitter allocates a coverage mask for a width x height
// fill.
func NewMaskSuperBlitter(width, height int) *MaskSuperBlitter {
	return &MaskSuperBlitter{Width: width, Height: height, Mask: make([]uint8, width*height)}
}

func subRowWeight(subRow int) uint8 {
	if subRow == raster.Scale-1 {
		return uint8(1<<(8-raster.Shift)) - 1
	}
	return uint8(1 << (8 - raster.Shift))
}

// coverageToAlpha converts a count of covered quarter-pixel columns
// (0..Scale) in a boundary pixel to a partial-alpha contribution,
// grounded on original_source's coverage_to_alpha
// (_examples/original_source/src/rasterizer.rs): `aa <<= 8-2*SHIFT;
// aa -= aa >> (8-SHIFT-1)`.
func coverageToAlpha(aa int) uint8 {
	aa <<= 8 - 2*raster.Shift
	aa -= aa >> (8 - raster.Shift - 1)
	return uint8(aa)
}

// BlitSpan implements raster.Blit. x1/x2 are integer quarter-pixel-grid
// bounds (see internal/raster.Blit); coverage is accumulated per
// quarter-pixel column rather than by continuous fractional pixel
// coverage, the discrete model original_source's
// MaskSuperBlitter::blit_span (blitter.rs) and engine spec §4.2/§4.3
// both describe.
func (m *MaskSuperBlitter) BlitSpan(superY int, x1, x2 int) {
	row := superY / raster.Scale
	if row < 0 || row >= m.Height || x2 <= x1 {
		return
	}
	weight := subRowWeight(superY % raster.Scale)

	add := func(px int, cov uint8) {
		if px < 0 || px >= m.Width || cov == 0 {
			return
		}
		idx := row*m.Width + px
		m.Mask[idx] = satAddByte(m.Mask[idx], cov)
	}

	fb := x1 & (raster.Scale - 1)
	fe := x2 & (raster.Scale - 1)
	px := x1 >> raster.Shift
	n := (x2 >> raster.Shift) - px - 1

	if n < 0 {
		// x1 and x2 land in the same pixel column: a purely partial hit.
		add(px, coverageToAlpha(fe-fb))
		return
	}

	// The left boundary column. When fb==0 the span's left edge is
	// itself pixel-aligned, so this column is fully covered by this
	// sub-row rather than merely partially so — use the same per-sub-row
	// weight the interior columns below get, since coverage_to_alpha's
	// rounding correction (meant for genuine 1..Scale-1 partial counts)
	// would otherwise undercount a full column by a couple of levels.
	if fb == 0 {
		add(px, weight)
	} else {
		add(px, coverageToAlpha(raster.Scale-fb))
	}
	px++
	for ; n > 0; n-- {
		add(px, weight)
		px++
	}
	add(px, coverageToAlpha(fe))
}

func satAddByte(a, b uint8) uint8 {
	s := int(a) + int(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// MaskBlitter implements the AntialiasMode::None path: it point-samples
// only the first of each pixel row's Scale super-scanlines, at the
// pixel center, producing a hard-edged 0/255 mask with none of
// MaskSuperBlitter's coverage averaging.
type MaskBlitter struct {
	Width, Height int
	Mask          []uint8
}

// NewMaskBlitter allocates a hard-edged mask for a width x height fill.
func NewMaskBlitter(width, height int) *MaskBlitter {
	return &MaskBlitter{Width: width, Height: height, Mask: make([]uint8, width*height)}
}

// BlitSpan implements raster.Blit. A pixel is marked hard-on when the
// span covers its center quarter-pixel column (px*Scale + Scale/2),
// the quarter-pixel-grid analog of original_source's MaskBlitter
// (blitter.rs), which simply shifts x1/x2 down by SHIFT and fills the
// whole resulting pixel range; sampling the center instead gives the
// same "does this span cover this pixel" answer without losing a
// column at non-whole-pixel span edges.
func (m *MaskBlitter) BlitSpan(superY int, x1, x2 int) {
	if superY%raster.Scale != 0 {
		return
	}
	row := superY / raster.Scale
	if row < 0 || row >= m.Height || x2 <= x1 {
		return
	}

	lo := x1/raster.Scale - 1
	hi := x2/raster.Scale + 1
	if lo < 0 {
		lo = 0
	}
	if hi > m.Width {
		hi = m.Width
	}
	for px := lo; px < hi; px++ {
		center := px*raster.Scale + raster.Scale/2
		if center >= x1 && center < x2 {
			m.Mask[row*m.Width+px] = 255
		}
	}
}
