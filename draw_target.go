package raster2d

import (
	"encoding/binary"
	"math"

	"github.com/lumenvec/raster2d/internal/basics"
	"github.com/lumenvec/raster2d/internal/bezierflatten"
	"github.com/lumenvec/raster2d/internal/blitter"
	"github.com/lumenvec/raster2d/internal/compositor"
	"github.com/lumenvec/raster2d/internal/dash"
	"github.com/lumenvec/raster2d/internal/raster"
	"github.com/lumenvec/raster2d/internal/stroke"
)

// flattenTolerance is the device-space tolerance addFillOps uses to
// reduce cubics to quadratics. Fill paths otherwise feed quadratics
// straight to the rasterizer; Stroke computes its own tolerance from
// the current transform.
const flattenTolerance = 0.25

// DrawTarget is a premultiplied ARGB32 raster surface together with
// the transform, clip stack and layer stack every draw call is
// evaluated against, per the engine spec's DrawTarget collaborator (§4.5).
type DrawTarget struct {
	width, height int
	surface       *blitter.Surface
	ctm           Matrix
	clips         []clipEntry
	layers        []layerEntry
}

type clipEntry struct {
	mask []uint8 // full-size A8 mask, already intersected with the entry below
}

type layerEntry struct {
	saved *blitter.Surface
	alpha float64
}

// NewDrawTarget creates a transparent width x height surface with an
// identity transform and an empty clip/layer stack.
func NewDrawTarget(width, height int) *DrawTarget {
	return &DrawTarget{
		width:   width,
		height:  height,
		surface: blitter.NewSurface(width, height),
		ctm:     Identity(),
	}
}

// Width and Height report the surface's pixel dimensions.
func (dt *DrawTarget) Width() int  { return dt.width }
func (dt *DrawTarget) Height() int { return dt.height }

// Bytes packs the surface's premultiplied pixels into a row-major u8
// buffer, 4 bytes per pixel, BGRA order on little-endian hosts per
// §6's "mutable u8 view" — the form a platform window backend (e.g.
// cmd/view's SDL2 texture upload) blits directly.
func (dt *DrawTarget) Bytes() []byte {
	buf := make([]byte, len(dt.surface.Pix)*4)
	for i, c := range dt.surface.Pix {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(c))
	}
	return buf
}

// SetTransform replaces the current transform.
func (dt *DrawTarget) SetTransform(m Matrix) { dt.ctm = m }

// GetTransform returns the current transform.
func (dt *DrawTarget) GetTransform() Matrix { return dt.ctm }

// Clear fills the entire surface with c under Src, ignoring any clip —
// per §4.5 it is defined to reset the whole buffer, clip stack aside.
func (dt *DrawTarget) Clear(c Color) {
	ic := c.toInternal()
	for i := range dt.surface.Pix {
		dt.surface.Pix[i] = ic
	}
}

// Fill rasterizes path (already in user space) through the current
// transform and composites opts.Source into the covered pixels.
func (dt *DrawTarget) Fill(path Path, opts DrawOptions) {
	dpath := path.Transform(dt.ctm)
	dt.fillDevicePath(dpath, path.Winding(), opts)
}

// Stroke converts path to its stroked outline (dashing it first if
// style specifies a pattern) and fills that outline with NonZero
// winding, per §4.1's stroke-then-fill pipeline.
func (dt *DrawTarget) Stroke(path Path, style StrokeStyle, opts DrawOptions) {
	tol := 0.1
	if det := math.Abs(dt.ctm.m.Determinant()); det > 1e-12 {
		tol = 0.1 / math.Sqrt(det)
	}
	flat := path.Flatten(tol)
	var prepped []stroke.Subpath
	for _, sp := range flat.toPolySubpaths() {
		pts := toStrokePts(sp.pts)
		if len(style.Dashes) > 0 {
			for _, d := range dash.Split(pts, sp.closed, dash.Pattern{Dashes: style.Dashes, Offset: style.DashOffset}) {
				prepped = append(prepped, stroke.Subpath{Pts: d.Pts})
			}
			continue
		}
		prepped = append(prepped, stroke.Subpath{Pts: pts, Closed: sp.closed})
	}
	outline := stroke.Generate(prepped, stroke.Style{
		Width:      style.Width,
		Cap:        style.Cap,
		Join:       style.Join,
		MiterLimit: style.MiterLimit,
	})
	outlinePath := pathFromStrokeSubpaths(outline)
	dpath := outlinePath.Transform(dt.ctm)
	dt.fillDevicePath(dpath, NonZero, opts)
}

func toStrokePts(pts []Point) []basics.Point[float64] {
	out := make([]basics.Point[float64], len(pts))
	for i, p := range pts {
		out[i] = basics.Point[float64]{X: p.X, Y: p.Y}
	}
	return out
}

func pathFromStrokeSubpaths(subs []stroke.Subpath) Path {
	b := NewPathBuilder(NonZero)
	for _, s := range subs {
		if len(s.Pts) == 0 {
			continue
		}
		b.MoveTo(s.Pts[0].X, s.Pts[0].Y)
		for _, p := range s.Pts[1:] {
			b.LineTo(p.X, p.Y)
		}
		b.Close()
	}
	return b.Finish()
}

// fillDevicePath assumes dpath's coordinates are already in device
// space. It feeds line/quad ops directly to the rasterizer (reducing
// cubics to monotonic quadratics first) so Fill keeps the rasterizer's
// full analytic precision instead of pre-flattening to lines.
func (dt *DrawTarget) fillDevicePath(dpath Path, winding WindingRule, opts DrawOptions) {
	ras := raster.New(dt.width, dt.height)
	addFillOps(ras, dpath)

	mb := blitter.NewMaskSuperBlitter(dt.width, dt.height)
	ras.Rasterize(winding, mb.BlitSpan)

	dt.compositeMask(mb.Mask, opts)
}

func addFillOps(ras *raster.Rasterizer, p Path) {
	var cur, start Point
	have := false
	closeSub := func() {
		if have && cur != start {
			ras.AddLine(toBasicsPt(cur), toBasicsPt(start))
		}
	}
	for _, op := range p.ops {
		switch op.kind {
		case opMoveTo:
			closeSub()
			cur = op.p
			start = op.p
			have = true
		case opLineTo:
			ras.AddLine(toBasicsPt(cur), toBasicsPt(op.p))
			cur = op.p
		case opQuadTo:
			seg := bezierflatten.QuadSeg{
				P0:   bezierflatten.Pt{X: cur.X, Y: cur.Y},
				Ctrl: bezierflatten.Pt{X: op.ctrl1.X, Y: op.ctrl1.Y},
				P1:   bezierflatten.Pt{X: op.p.X, Y: op.p.Y},
			}
			for _, piece := range bezierflatten.SplitQuadMonotonic(seg) {
				ras.AddQuad(ptFrom(piece.P0), ptFrom(piece.Ctrl), ptFrom(piece.P1))
			}
			cur = op.p
		case opCubicTo:
			quads := bezierflatten.CubicToQuadratics(nil,
				bezierflatten.Pt{X: cur.X, Y: cur.Y},
				bezierflatten.Pt{X: op.ctrl1.X, Y: op.ctrl1.Y},
				bezierflatten.Pt{X: op.ctrl2.X, Y: op.ctrl2.Y},
				bezierflatten.Pt{X: op.p.X, Y: op.p.Y}, flattenTolerance)
			for _, q := range quads {
				for _, piece := range bezierflatten.SplitQuadMonotonic(q) {
					ras.AddQuad(ptFrom(piece.P0), ptFrom(piece.Ctrl), ptFrom(piece.P1))
				}
			}
			cur = op.p
		case opClose:
			closeSub()
			cur = start
		}
	}
	closeSub()
}

func toBasicsPt(p Point) basics.Point[float64] { return basics.Point[float64]{X: p.X, Y: p.Y} }
func ptFrom(p bezierflatten.Pt) basics.Point[float64] {
	return basics.Point[float64]{X: p.X, Y: p.Y}
}

// compositeMask shades opts.Source across every pixel where mask is
// non-zero and composites the result into the surface, choosing the
// blitter variant per whether a clip is active and whether Mode is the
// SrcOver fast path, per §4.3.
func (dt *DrawTarget) compositeMask(mask []uint8, opts DrawOptions) {
	sh := opts.Source.toShader(dt.ctm.m)
	clip := dt.currentClip()

	for y := 0; y < dt.height; y++ {
		row := mask[y*dt.width : (y+1)*dt.width]
		if rowEmpty(row) {
			continue
		}
		switch {
		case clip == nil && opts.Mode == SrcOver:
			(&blitter.ShaderBlitter{Dst: dt.surface, Shader: sh}).BlitMaskRow(y, row)
		case clip != nil && opts.Mode == SrcOver:
			(&blitter.ShaderClipBlitter{Dst: dt.surface, Shader: sh, Clip: clip}).BlitMaskRow(y, row)
		case clip == nil:
			(&blitter.ShaderBlendBlitter{Dst: dt.surface, Shader: sh, Mode: opts.Mode}).BlitMaskRow(y, row)
		default:
			(&blitter.ShaderClipBlendBlitter{Dst: dt.surface, Shader: sh, Mode: opts.Mode, Clip: clip}).BlitMaskRow(y, row)
		}
	}
}

func rowEmpty(row []uint8) bool {
	for _, v := range row {
		if v != 0 {
			return false
		}
	}
	return true
}

// currentClip returns the effective intersected clip mask, or nil if
// unclipped.
func (dt *DrawTarget) currentClip() []uint8 {
	if len(dt.clips) == 0 {
		return nil
	}
	return dt.clips[len(dt.clips)-1].mask
}

// PushClipRect intersects the clip stack with an axis-aligned
// rectangle in user space.
func (dt *DrawTarget) PushClipRect(r Rect) {
	b := NewPathBuilder(NonZero)
	b.Rect(r.X, r.Y, r.W, r.H)
	dt.PushClip(b.Finish())
}

// PushClip intersects the clip stack with an arbitrary path.
func (dt *DrawTarget) PushClip(path Path) {
	dpath := path.Transform(dt.ctm)
	ras := raster.New(dt.width, dt.height)
	addFillOps(ras, dpath)
	mb := blitter.NewMaskSuperBlitter(dt.width, dt.height)
	ras.Rasterize(path.Winding(), mb.BlitSpan)

	mask := mb.Mask
	if prev := dt.currentClip(); prev != nil {
		for i := range mask {
			mask[i] = compositor.MulDiv255(mask[i], prev[i])
		}
	}
	dt.clips = append(dt.clips, clipEntry{mask: mask})
}

// PopClip removes the most recently pushed clip. Calling it with no
// active clip is a programming error (unguarded pop, per §7 — callers
// are expected to balance Push/Pop themselves).
func (dt *DrawTarget) PopClip() {
	dt.clips = dt.clips[:len(dt.clips)-1]
}

// PushLayer begins a new transparent layer that will be composited
// back with uniform opacity alpha on PopLayer, per §4.5's group-opacity
// semantics.
func (dt *DrawTarget) PushLayer(alpha float64) {
	dt.layers = append(dt.layers, layerEntry{saved: dt.surface, alpha: alpha})
	dt.surface = blitter.NewSurface(dt.width, dt.height)
}

// PopLayer composites the current layer onto the one beneath it,
// scaling every pixel's coverage by the layer's opacity, and restores
// the prior surface as current.
func (dt *DrawTarget) PopLayer() {
	top := dt.layers[len(dt.layers)-1]
	dt.layers = dt.layers[:len(dt.layers)-1]
	layer := dt.surface
	dt.surface = top.saved

	alpha := clampChan(top.alpha)
	for i, c := range layer.Pix {
		if c == 0 {
			continue
		}
		src := compositor.ScaleColor(c, alpha)
		dt.surface.Pix[i] = compositor.Composite(dt.surface.Pix[i], src, compositor.SrcOver)
	}
}

// Composite draws another DrawTarget's surface as an image source at
// its own resolution, under opts — the external-buffer analogue of
// Fill, used to merge off-screen layers produced outside this package.
func (dt *DrawTarget) Composite(src *DrawTarget, opts DrawOptions) {
	b := NewPathBuilder(NonZero)
	b.Rect(0, 0, float64(src.width), float64(src.height))
	path := b.Finish()
	dt.fillDevicePath(path.Transform(dt.ctm), NonZero, DrawOptions{
		Source: imageSourceFromSurface(src.surface),
		Mode:   opts.Mode,
	})
}

func imageSourceFromSurface(s *blitter.Surface) Source {
	pix := make([]Color, len(s.Pix))
	for i, c := range s.Pix {
		pix[i] = colorFromInternal(c)
	}
	return Image{Width: s.Width, Height: s.Height, Pix: pix, Local: Identity(), ExtendX: ExtendPad, ExtendY: ExtendPad, Filter: FilterNearest, Alpha: 1}
}
