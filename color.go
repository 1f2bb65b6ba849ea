package raster2d

import "github.com/lumenvec/raster2d/internal/compositor"

// Color is a straight-alpha color in [0,1] per channel, the
// user-facing representation every Source and DrawTarget.Clear call
// takes. Internally everything is premultiplied (§1); toInternal does
// that conversion once per draw call.
type Color struct {
	R, G, B, A float64
}

// RGBA constructs a Color from [0,1] channels.
func RGBA(r, g, b, a float64) Color { return Color{r, g, b, a} }

// Gray constructs an opaque gray Color.
func Gray(v float64) Color { return Color{v, v, v, 1} }

func clampChan(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func (c Color) toInternal() compositor.Color {
	return compositor.ARGB(clampChan(c.A), clampChan(c.R), clampChan(c.G), clampChan(c.B))
}

func colorFromInternal(c compositor.Color) Color {
	r, g, b, a := c.Unpremultiply()
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}
