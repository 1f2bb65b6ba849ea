// Package demoscenes holds a small fixed set of built-in scenes shared
// by cmd/render and cmd/view, the way the teacher's examples/shared
// package is pulled into more than one demo binary.
package demoscenes

import (
	"math"

	raster2d "github.com/lumenvec/raster2d"
)

// Names lists the scenes in a stable order, for flag usage strings and
// cmd/view's scene-cycling key.
var Names = []string{"solid", "dash", "gradient", "tile"}

// Draw renders the named scene into dt, clearing it first. It reports
// false for an unrecognized name without modifying dt.
func Draw(name string, dt *raster2d.DrawTarget) bool {
	fn, ok := byName[name]
	if !ok {
		return false
	}
	fn(dt)
	return true
}

var byName = map[string]func(*raster2d.DrawTarget){
	"solid":    Solid,
	"dash":     Dash,
	"gradient": Gradient,
	"tile":     Tile,
}

// Solid fills a centered rectangle with an opaque color.
func Solid(dt *raster2d.DrawTarget) {
	dt.Clear(raster2d.RGBA(0, 0, 0, 0))
	w, h := float64(dt.Width()), float64(dt.Height())
	b := raster2d.NewPathBuilder(raster2d.NonZero)
	b.Rect(w*0.2, h*0.2, w*0.6, h*0.6)
	dt.Fill(b.Finish(), raster2d.SolidFill(raster2d.RGBA(0.9, 0.1, 0.1, 1)))
}

// Dash strokes a cubic curve with a round-capped dash pattern.
func Dash(dt *raster2d.DrawTarget) {
	dt.Clear(raster2d.RGBA(1, 1, 1, 1))
	w, h := float64(dt.Width()), float64(dt.Height())
	b := raster2d.NewPathBuilder(raster2d.NonZero)
	b.MoveTo(w*0.1, h*0.5)
	b.CubicTo(w*0.3, h*0.1, w*0.7, h*0.9, w*0.9, h*0.5)
	style := raster2d.DefaultStrokeStyle()
	style.Width = h * 0.04
	style.Cap = raster2d.RoundCap
	style.Dashes = []float64{h * 0.08, h * 0.05}
	dt.Stroke(b.Finish(), style, raster2d.SolidFill(raster2d.RGBA(0, 0.2, 0.8, 1)))
}

// Gradient fills the whole canvas with a corner-to-corner linear ramp.
func Gradient(dt *raster2d.DrawTarget) {
	dt.Clear(raster2d.RGBA(0, 0, 0, 0))
	w, h := float64(dt.Width()), float64(dt.Height())
	b := raster2d.NewPathBuilder(raster2d.NonZero)
	b.Rect(0, 0, w, h)
	grad := raster2d.LinearGradient{
		P0: raster2d.Point{X: 0, Y: 0},
		P1: raster2d.Point{X: w, Y: h},
		Stops: []raster2d.GradientStop{
			{Offset: 0, Color: raster2d.RGBA(1, 0.4, 0, 1)},
			{Offset: 1, Color: raster2d.RGBA(0.1, 0.1, 0.9, 1)},
		},
		Spread: raster2d.SpreadPad,
	}
	dt.Fill(b.Finish(), raster2d.DrawOptions{Source: grad, Mode: raster2d.SrcOver})
}

// Tile fills a circle with a repeating checkerboard image source.
func Tile(dt *raster2d.DrawTarget) {
	dt.Clear(raster2d.RGBA(1, 1, 1, 1))
	w, h := float64(dt.Width()), float64(dt.Height())
	const tile = 16
	pix := make([]raster2d.Color, tile*tile)
	for y := 0; y < tile; y++ {
		for x := 0; x < tile; x++ {
			on := (x/4+y/4)%2 == 0
			c := raster2d.RGBA(0.2, 0.2, 0.2, 1)
			if on {
				c = raster2d.RGBA(0.9, 0.9, 0.2, 1)
			}
			pix[y*tile+x] = c
		}
	}
	img := raster2d.Image{
		Width: tile, Height: tile, Pix: pix,
		Local:   raster2d.Identity(),
		ExtendX: raster2d.ExtendRepeat, ExtendY: raster2d.ExtendRepeat,
		Filter: raster2d.FilterNearest, Alpha: 1,
	}
	b := raster2d.NewPathBuilder(raster2d.NonZero)
	cx, cy := w/2, h/2
	r := math.Min(w, h) * 0.4
	b.Arc(cx, cy, r, 0, 2*math.Pi)
	b.Close()
	dt.Fill(b.Finish(), raster2d.DrawOptions{Source: img, Mode: raster2d.SrcOver})
}
