package raster2d

import (
	"github.com/lumenvec/raster2d/internal/basics"
	"github.com/lumenvec/raster2d/internal/blitter"
	"github.com/lumenvec/raster2d/internal/compositor"
	"github.com/lumenvec/raster2d/internal/shader"
	"github.com/lumenvec/raster2d/internal/transform"
)

// BlendMode selects how a Fill/Stroke/Composite call combines its
// source with the destination, re-exported from internal/compositor so
// callers never import it directly.
type BlendMode = compositor.Mode

const (
	Clear      = compositor.Clear
	Src        = compositor.Src
	Dst        = compositor.Dst
	SrcOver    = compositor.SrcOver
	DstOver    = compositor.DstOver
	SrcIn      = compositor.SrcIn
	DstIn      = compositor.DstIn
	SrcOut     = compositor.SrcOut
	DstOut     = compositor.DstOut
	SrcAtop    = compositor.SrcAtop
	DstAtop    = compositor.DstAtop
	Xor        = compositor.Xor
	Plus       = compositor.Plus
	Multiply   = compositor.Multiply
	Screen     = compositor.Screen
	Overlay    = compositor.Overlay
	Darken     = compositor.Darken
	Lighten    = compositor.Lighten
	ColorDodge = compositor.ColorDodge
	ColorBurn  = compositor.ColorBurn
	HardLight  = compositor.HardLight
	SoftLight  = compositor.SoftLight
	Difference = compositor.Difference
	Exclusion  = compositor.Exclusion
	Hue        = compositor.Hue
	Saturation = compositor.Saturation
	HueColor   = compositor.HueColor
	Luminosity = compositor.Luminosity
)

// Extend and FilterMode re-export the image sampling enums.
type (
	Extend     = basics.Extend
	FilterMode = basics.FilterMode
	Spread     = basics.Spread
)

const (
	ExtendPad      = basics.ExtendPad
	ExtendRepeat   = basics.ExtendRepeat
	FilterNearest  = basics.FilterNearest
	FilterBilinear = basics.FilterBilinear
	SpreadPad      = basics.SpreadPad
	SpreadRepeat   = basics.SpreadRepeat
	SpreadReflect  = basics.SpreadReflect
)

// Source produces the per-pixel color a Fill/Stroke/Composite draws,
// per the engine spec's Source collaborator (§4.4).
type Source interface {
	toShader(ctm transform.Matrix) blitter.Shader
}

// SolidColor is a flat-color source.
type SolidColor struct {
	Color Color
}

func (s SolidColor) toShader(transform.Matrix) blitter.Shader {
	return &shader.Solid{Color: s.Color.toInternal()}
}

// GradientStop is one color stop of a gradient ramp.
type GradientStop struct {
	Offset float64
	Color  Color
}

func toInternalStops(stops []GradientStop) []compositor.GradientStop {
	out := make([]compositor.GradientStop, len(stops))
	for i, s := range stops {
		out[i] = compositor.GradientStop{Offset: s.Offset, Color: s.Color.toInternal()}
	}
	return out
}

// LinearGradient shades along the axis from P0 to P1, in user space.
type LinearGradient struct {
	P0, P1 Point
	Stops  []GradientStop
	Spread Spread
}

func (g LinearGradient) toShader(ctm transform.Matrix) blitter.Shader {
	inv, _ := ctm.Invert()
	return &shader.Linear{
		P0:      basics.Point[float64]{X: g.P0.X, Y: g.P0.Y},
		P1:      basics.Point[float64]{X: g.P1.X, Y: g.P1.Y},
		Table:   compositor.BuildGradientTable(toInternalStops(g.Stops)),
		Spread:  g.Spread,
		Inverse: inv,
	}
}

// RadialGradient shades outward from Center with radius Radius, in
// user space.
type RadialGradient struct {
	Center Point
	Radius float64
	Stops  []GradientStop
	Spread Spread
}

func (g RadialGradient) toShader(ctm transform.Matrix) blitter.Shader {
	inv, _ := ctm.Invert()
	return &shader.Radial{
		Center:  basics.Point[float64]{X: g.Center.X, Y: g.Center.Y},
		R:       g.Radius,
		Table:   compositor.BuildGradientTable(toInternalStops(g.Stops)),
		Spread:  g.Spread,
		Inverse: inv,
	}
}

// TwoCircleGradient shades between two circles — the general conical
// gradient form (a radial gradient with a focal point offset).
type TwoCircleGradient struct {
	C0, C1 Point
	R0, R1 float64
	Stops  []GradientStop
	Spread Spread
}

func (g TwoCircleGradient) toShader(ctm transform.Matrix) blitter.Shader {
	inv, _ := ctm.Invert()
	return &shader.TwoCircleRadial{
		C0:      basics.Point[float64]{X: g.C0.X, Y: g.C0.Y},
		C1:      basics.Point[float64]{X: g.C1.X, Y: g.C1.Y},
		R0:      g.R0,
		R1:      g.R1,
		Table:   compositor.BuildGradientTable(toInternalStops(g.Stops)),
		Spread:  g.Spread,
		Inverse: inv,
	}
}

// Image is a source backed by a premultiplied pixel buffer, sampled
// through the given extend/filter strategy under a local transform
// that maps user space into the image's own pixel space (identity
// means one image pixel per user-space unit, anchored at the origin).
type Image struct {
	Width, Height int
	Pix           []Color // straight alpha, row-major
	Local         Matrix  // user space -> image pixel space
	ExtendX       Extend
	ExtendY       Extend
	Filter        FilterMode
	Alpha         float64 // global alpha multiplier in [0,1]
}

func (im Image) toShader(ctm transform.Matrix) blitter.Shader {
	internalPix := make([]compositor.Color, len(im.Pix))
	for i, c := range im.Pix {
		internalPix[i] = c.toInternal()
	}
	src := &compositor.Image{Width: im.Width, Height: im.Height, Pix: internalPix}
	full := im.Local.m.Multiply(ctm)
	inv, ok := full.Invert()
	if !ok {
		inv = transform.Identity()
	}
	alpha := clampChan(im.Alpha)
	if im.ExtendX == ExtendPad && im.ExtendY == ExtendPad && alpha == 255 {
		return &shader.PadAlphaImage{Src: src, Inverse: inv, Filter: im.Filter}
	}
	return &shader.Image{
		Src: src, Inverse: inv,
		ExtendX: im.ExtendX, ExtendY: im.ExtendY, Filter: im.Filter, Alpha: alpha,
	}
}

// DrawOptions controls how a Fill/Stroke/Composite draw combines its
// Source with the destination.
type DrawOptions struct {
	Source Source
	Mode   BlendMode
}

// SolidFill is a convenience DrawOptions for an opaque/flat-colored
// SrcOver draw.
func SolidFill(c Color) DrawOptions {
	return DrawOptions{Source: SolidColor{Color: c}, Mode: SrcOver}
}
