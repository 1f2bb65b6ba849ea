// Package shader implements the span-shading strategies named in the
// engine spec's Shader collaborator (§4.4): a flat color, a
// CTM-transformed image (nearest or bilinear, pad or repeat), and the
// three gradient kinds, each evaluated one pixel row at a time.
package shader

import (
	"github.com/lumenvec/raster2d/internal/basics"
	"github.com/lumenvec/raster2d/internal/compositor"
	"github.com/lumenvec/raster2d/internal/transform"
)

// Solid shades every pixel the same premultiplied color.
type Solid struct {
	Color compositor.Color
}

func (s *Solid) ShadeSpan(x, y, count int) []compositor.Color {
	out := make([]compositor.Color, count)
	for i := range out {
		out[i] = s.Color
	}
	return out
}

func (s *Solid) IsOpaque() bool { return s.Color.A() == 255 }

// Image shades by sampling a transformed bitmap, per the
// fetch_bilinear/fetch_nearest strategies in internal/compositor.
// Inverse is the mapping from device space back into image space.
type Image struct {
	Src     *compositor.Image
	Inverse transform.Matrix
	ExtendX basics.Extend
	ExtendY basics.Extend
	Filter  basics.FilterMode
	Alpha   uint8 // global alpha multiplier, 255 = opaque
}

func (s *Image) ShadeSpan(x, y, count int) []compositor.Color {
	out := make([]compositor.Color, count)
	fy := float64(y) + 0.5
	for i := 0; i < count; i++ {
		fx := float64(x+i) + 0.5
		sx, sy := s.Inverse.MapPoint(fx, fy)
		var c compositor.Color
		if s.Filter == basics.FilterBilinear {
			c = compositor.FetchBilinear(s.Src, sx, sy, s.ExtendX, s.ExtendY)
		} else {
			c = compositor.FetchNearest(s.Src, sx, sy, s.ExtendX, s.ExtendY)
		}
		if s.Alpha != 255 {
			c = compositor.ScaleColor(c, s.Alpha)
		}
		out[i] = c
	}
	return out
}

func (s *Image) IsOpaque() bool {
	return s.Alpha == 255 && s.ExtendX == basics.ExtendRepeat && s.ExtendY == basics.ExtendRepeat && imageIsOpaque(s.Src)
}

func imageIsOpaque(im *compositor.Image) bool {
	for _, c := range im.Pix {
		if c.A() != 255 {
			return false
		}
	}
	return true
}

// PadAlphaImage is the ImagePadAlphaShader fast path: pad-extend image
// sampling skips the extend-mode branch entirely since out-of-bounds
// reads always clamp to the edge texel.
type PadAlphaImage struct {
	Src     *compositor.Image
	Inverse transform.Matrix
	Filter  basics.FilterMode
}

func (s *PadAlphaImage) ShadeSpan(x, y, count int) []compositor.Color {
	out := make([]compositor.Color, count)
	fy := float64(y) + 0.5
	for i := 0; i < count; i++ {
		fx := float64(x+i) + 0.5
		sx, sy := s.Inverse.MapPoint(fx, fy)
		if s.Filter == basics.FilterBilinear {
			out[i] = compositor.FetchBilinear(s.Src, sx, sy, basics.ExtendPad, basics.ExtendPad)
		} else {
			out[i] = compositor.FetchNearest(s.Src, sx, sy, basics.ExtendPad, basics.ExtendPad)
		}
	}
	return out
}

func (s *PadAlphaImage) IsOpaque() bool { return imageIsOpaque(s.Src) }
