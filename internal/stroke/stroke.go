// Package stroke converts a flattened polyline path into the filled
// outline that approximates stroking it — the vertex generator named
// in the engine spec's stroke pipeline (§4.1). Grounded on the
// teacher's vertex generator shape (agg_go/internal/vcgen's stroke
// generator: per-vertex join classification, a miter-limit fallback to
// bevel, and cap handling at open subpath ends) but reshaped from AGG's
// pull-based vertex iterator into a single return-the-polygon call,
// which fits this engine's one-shot Path construction better than a
// stateful generator would.
package stroke

import (
	"math"

	"github.com/lumenvec/raster2d/internal/basics"
)

type Point = basics.Point[float64]

// Style mirrors the engine's public StrokeStyle.
type Style struct {
	Width      float64
	Cap        basics.LineCap
	Join       basics.LineJoin
	MiterLimit float64
}

// Subpath is one polyline of a flattened path: a line-only contour,
// either open or closed.
type Subpath struct {
	Pts    []Point
	Closed bool
}

// Generate converts each input subpath into one or two closed outline
// loops (always wound so a NonZero fill reproduces the stroked area —
// regardless of the original path's own winding rule).
func Generate(subs []Subpath, style Style) []Subpath {
	hw := style.Width / 2
	if hw <= 0 {
		return nil
	}
	var out []Subpath
	for _, s := range subs {
		pts := dedupe(s.Pts)
		if s.Closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}
		if len(pts) < 2 {
			if len(pts) == 1 && style.Cap == basics.RoundCap {
				out = append(out, Subpath{Pts: circle(pts[0], hw), Closed: true})
			}
			continue
		}
		if s.Closed {
			left := offsetLoop(pts, hw, style.Join, style.MiterLimit, true)
			right := offsetLoop(pts, hw, style.Join, style.MiterLimit, false)
			reverse(right)
			out = append(out, Subpath{Pts: left, Closed: true}, Subpath{Pts: right, Closed: true})
			continue
		}
		out = append(out, Subpath{Pts: openOutline(pts, hw, style), Closed: true})
	}
	return out
}

func dedupe(pts []Point) []Point {
	out := pts[:0:0]
	for i, p := range pts {
		if i == 0 || p != pts[i-1] {
			out = append(out, p)
		}
	}
	return out
}

func reverse(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

func normal(a, b Point) (nx, ny float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0, 0
	}
	return -dy / l, dx / l
}

// offsetLoop returns the outer (outward=true) or inner (outward=false)
// offset contour of a closed polygon, with joins at every vertex.
func offsetLoop(pts []Point, hw float64, join basics.LineJoin, miterLimit float64, outward bool) []Point {
	sign := 1.0
	if !outward {
		sign = -1.0
	}
	n := len(pts)
	var out []Point
	for i := 0; i < n; i++ {
		prev := pts[(i-1+n)%n]
		cur := pts[i]
		next := pts[(i+1)%n]
		pnx, pny := normal(prev, cur)
		nnx, nny := normal(cur, next)
		out = appendJoin(out, cur, pnx*sign, pny*sign, nnx*sign, nny*sign, hw, join, miterLimit)
	}
	return out
}

// openOutline builds the single closed ring for an open subpath: the
// left offset forward, an end cap, the right offset backward, and a
// start cap.
func openOutline(pts []Point, hw float64, style Style) []Point {
	n := len(pts)
	var out []Point

	// Left side forward, joins at interior vertices only.
	nx, ny := normal(pts[0], pts[1])
	out = append(out, Point{pts[0].X + nx*hw, pts[0].Y + ny*hw})
	for i := 1; i < n-1; i++ {
		pnx, pny := normal(pts[i-1], pts[i])
		nnx, nny := normal(pts[i], pts[i+1])
		out = appendJoin(out, pts[i], pnx, pny, nnx, nny, hw, style.Join, style.MiterLimit)
	}
	lastNx, lastNy := normal(pts[n-2], pts[n-1])
	leftEnd := Point{pts[n-1].X + lastNx*hw, pts[n-1].Y + lastNy*hw}
	out = append(out, leftEnd)

	// End cap: from leftEnd around to the mirrored right-side point.
	tx, ty := pts[n-1].X-pts[n-2].X, pts[n-1].Y-pts[n-2].Y
	tl := math.Hypot(tx, ty)
	if tl > 0 {
		tx, ty = tx/tl, ty/tl
	}
	rightStart := Point{pts[n-1].X - lastNx*hw, pts[n-1].Y - lastNy*hw}
	out = append(out, capPoints(pts[n-1], leftEnd, rightStart, tx, ty, hw, style.Cap)...)
	out = append(out, rightStart)

	// Right side backward, joins at interior vertices only.
	for i := n - 2; i >= 1; i-- {
		pnx, pny := normal(pts[i+1], pts[i])
		nnx, nny := normal(pts[i], pts[i-1])
		out = appendJoin(out, pts[i], pnx, pny, nnx, nny, hw, style.Join, style.MiterLimit)
	}
	firstNx, firstNy := normal(pts[0], pts[1])
	rightEnd := Point{pts[0].X - firstNx*hw, pts[0].Y - firstNy*hw}
	out = append(out, rightEnd)

	// Start cap: from rightEnd back around to the loop's first point.
	stx, sty := pts[0].X-pts[1].X, pts[0].Y-pts[1].Y
	sl := math.Hypot(stx, sty)
	if sl > 0 {
		stx, sty = stx/sl, sty/sl
	}
	leftStart := out[0]
	out = append(out, capPoints(pts[0], rightEnd, leftStart, stx, sty, hw, style.Cap)...)

	return out
}

// appendJoin appends the offset geometry at a vertex given the two
// adjoining (already sign-adjusted) segment normals.
func appendJoin(out []Point, v Point, pnx, pny, nnx, nny, hw float64, join basics.LineJoin, miterLimit float64) []Point {
	p0 := Point{v.X + pnx*hw, v.Y + pny*hw}
	p1 := Point{v.X + nnx*hw, v.Y + nny*hw}
	if nearlyEqualNormal(pnx, pny, nnx, nny) {
		return append(out, p0)
	}

	cosTheta := pnx*nnx + pny*nny // dot of the two normals == dot of the two tangents
	switch join {
	case basics.RoundJoin:
		return append(out, roundArc(v, p0, p1, hw)...)
	case basics.MiterJoin:
		avgx, avgy := pnx+nnx, pny+nny
		al := math.Hypot(avgx, avgy)
		if al > 1e-9 {
			avgx, avgy = avgx/al, avgy/al
			cosHalf := pnx*avgx + pny*avgy
			if cosHalf > 1e-6 && miterLimit*miterLimit*(1+cosTheta) < 2 {
				// Exceeds the miter limit: fall back to a bevel.
				return append(out, p0, p1)
			}
			if cosHalf > 1e-6 {
				miterLen := hw / cosHalf
				tip := Point{v.X + avgx*miterLen, v.Y + avgy*miterLen}
				return append(out, p0, tip, p1)
			}
		}
		return append(out, p0, p1)
	default: // BevelJoin
		return append(out, p0, p1)
	}
}

func nearlyEqualNormal(ax, ay, bx, by float64) bool {
	const eps = 1e-9
	dx, dy := ax-bx, ay-by
	return dx*dx+dy*dy < eps
}

// roundArc samples the arc from p0 to p1 around center v, assuming
// |v-p0| == |v-p1| == hw.
func roundArc(v, p0, p1 Point, hw float64) []Point {
	a0 := math.Atan2(p0.Y-v.Y, p0.X-v.X)
	a1 := math.Atan2(p1.Y-v.Y, p1.X-v.X)
	da := a1 - a0
	for da > math.Pi {
		da -= 2 * math.Pi
	}
	for da < -math.Pi {
		da += 2 * math.Pi
	}
	const maxStep = math.Pi / 8
	segs := int(math.Abs(da)/maxStep) + 1
	out := make([]Point, 0, segs+1)
	out = append(out, p0)
	for i := 1; i < segs; i++ {
		a := a0 + da*float64(i)/float64(segs)
		out = append(out, Point{v.X + hw*math.Cos(a), v.Y + hw*math.Sin(a)})
	}
	out = append(out, p1)
	return out
}

// capPoints returns the points to insert between p0 and p1 (both at
// distance hw from center, on opposite sides) to cap an open end whose
// outward tangent direction is (tx,ty).
func capPoints(center, p0, p1 Point, tx, ty, hw float64, cap basics.LineCap) []Point {
	switch cap {
	case basics.SquareCap:
		return []Point{
			{p0.X + tx*hw, p0.Y + ty*hw},
			{p1.X + tx*hw, p1.Y + ty*hw},
		}
	case basics.RoundCap:
		a0 := math.Atan2(p0.Y-center.Y, p0.X-center.X)
		a1 := a0 - math.Pi // sweep the far half of the circle
		const maxStep = math.Pi / 8
		segs := int(math.Pi/maxStep) + 1
		out := make([]Point, 0, segs)
		for i := 1; i < segs; i++ {
			a := a0 + (a1-a0)*float64(i)/float64(segs)
			out = append(out, Point{center.X + hw*math.Cos(a), center.Y + hw*math.Sin(a)})
		}
		return out
	default: // ButtCap
		return nil
	}
}

func circle(center Point, r float64) []Point {
	const segs = 16
	out := make([]Point, segs)
	for i := range out {
		a := 2 * math.Pi * float64(i) / segs
		out[i] = Point{center.X + r*math.Cos(a), center.Y + r*math.Sin(a)}
	}
	return out
}
