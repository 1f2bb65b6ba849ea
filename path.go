package raster2d

import (
	"math"

	"github.com/lumenvec/raster2d/internal/basics"
	"github.com/lumenvec/raster2d/internal/bezierflatten"
)

// Point is a single (x,y) coordinate in user or device space depending
// on context.
type Point struct{ X, Y float64 }

// WindingRule is re-exported from internal/basics so callers never need
// to import the internal package directly.
type WindingRule = basics.WindingRule

const (
	NonZero = basics.NonZero
	EvenOdd = basics.EvenOdd
)

// opKind tags a PathOp's variant, mirroring the teacher's PathCommand
// enum (agg_go/internal/basics/path.go) but trimmed to the five
// variants this engine's Path model uses.
type opKind uint8

const (
	opMoveTo opKind = iota
	opLineTo
	opQuadTo
	opCubicTo
	opClose
)

// pathOp is one tagged element of a Path. Only the fields relevant to
// Kind are meaningful: MoveTo/LineTo use P; Close uses none; QuadTo uses Ctrl1,P;
// CubicTo uses Ctrl1,Ctrl2,P.
type pathOp struct {
	kind        opKind
	ctrl1, ctrl2, p Point
}

// Path is an immutable, ordered sequence of path ops, built through a
// PathBuilder and consumed by DrawTarget.Fill/Stroke. Close always
// refers back to the most recent MoveTo's point (§3 invariant); this is
// enforced by the builder, never by Path itself.
type Path struct {
	ops     []pathOp
	winding WindingRule
}

// Winding returns the path's fill winding rule.
func (p Path) Winding() WindingRule { return p.winding }

// IsEmpty reports whether the path has no ops.
func (p Path) IsEmpty() bool { return len(p.ops) == 0 }

// Bounds returns the axis-aligned bounding box of the path's control
// points (not the tighter bound of the flattened curve, which is never
// larger).
func (p Path) Bounds() basics.Rect[float64] {
	if len(p.ops) == 0 {
		return basics.Rect[float64]{}
	}
	first := true
	var r basics.Rect[float64]
	grow := func(pt Point) {
		if first {
			r = basics.Rect[float64]{X1: pt.X, Y1: pt.Y, X2: pt.X, Y2: pt.Y}
			first = false
			return
		}
		if pt.X < r.X1 {
			r.X1 = pt.X
		}
		if pt.Y < r.Y1 {
			r.Y1 = pt.Y
		}
		if pt.X > r.X2 {
			r.X2 = pt.X
		}
		if pt.Y > r.Y2 {
			r.Y2 = pt.Y
		}
	}
	for _, op := range p.ops {
		switch op.kind {
		case opMoveTo, opLineTo:
			grow(op.p)
		case opQuadTo:
			grow(op.ctrl1)
			grow(op.p)
		case opCubicTo:
			grow(op.ctrl1)
			grow(op.ctrl2)
			grow(op.p)
		}
	}
	return r
}

// Transform returns a new Path with every coordinate mapped through m.
func (p Path) Transform(m Matrix) Path {
	out := Path{ops: make([]pathOp, len(p.ops)), winding: p.winding}
	mapPt := func(pt Point) Point {
		x, y := m.MapPoint(pt.X, pt.Y)
		return Point{x, y}
	}
	for i, op := range p.ops {
		n := op
		switch op.kind {
		case opMoveTo, opLineTo:
			n.p = mapPt(op.p)
		case opQuadTo:
			n.ctrl1 = mapPt(op.ctrl1)
			n.p = mapPt(op.p)
		case opCubicTo:
			n.ctrl1 = mapPt(op.ctrl1)
			n.ctrl2 = mapPt(op.ctrl2)
			n.p = mapPt(op.p)
		}
		out.ops[i] = n
	}
	return out
}

// Flatten returns a new Path containing only MoveTo/LineTo/Close,
// subdividing any Quad/Cubic segment to within tol using the bezier
// collaborator (internal/bezierflatten), per §4.1.
func (p Path) Flatten(tol float64) Path {
	out := Path{winding: p.winding}
	var cur Point
	for _, op := range p.ops {
		switch op.kind {
		case opMoveTo:
			cur = op.p
			out.ops = append(out.ops, pathOp{kind: opMoveTo, p: cur})
		case opLineTo:
			cur = op.p
			out.ops = append(out.ops, pathOp{kind: opLineTo, p: cur})
		case opQuadTo:
			pts := bezierflatten.FlattenQuad(nil,
				bezierflatten.Pt{X: cur.X, Y: cur.Y},
				bezierflatten.Pt{X: op.ctrl1.X, Y: op.ctrl1.Y},
				bezierflatten.Pt{X: op.p.X, Y: op.p.Y}, tol)
			for _, pt := range pts {
				out.ops = append(out.ops, pathOp{kind: opLineTo, p: Point{pt.X, pt.Y}})
			}
			cur = op.p
		case opCubicTo:
			pts := bezierflatten.FlattenCubic(nil,
				bezierflatten.Pt{X: cur.X, Y: cur.Y},
				bezierflatten.Pt{X: op.ctrl1.X, Y: op.ctrl1.Y},
				bezierflatten.Pt{X: op.ctrl2.X, Y: op.ctrl2.Y},
				bezierflatten.Pt{X: op.p.X, Y: op.p.Y}, tol)
			for _, pt := range pts {
				out.ops = append(out.ops, pathOp{kind: opLineTo, p: Point{pt.X, pt.Y}})
			}
			cur = op.p
		case opClose:
			out.ops = append(out.ops, pathOp{kind: opClose})
		}
	}
	return out
}

// ContainsPoint reports whether (x,y) is inside the path under its
// winding rule, flattening curves to the given tolerance and casting a
// horizontal ray from (x,y), per §4.1.
func (p Path) ContainsPoint(tol, x, y float64) bool {
	flat := p.Flatten(tol)
	winding := 0
	var start, cur Point
	haveStart := false

	crossing := func(a, b Point) {
		if (a.Y <= y) == (b.Y <= y) {
			return
		}
		xIntersect := a.X + (y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
		if xIntersect <= x {
			return
		}
		if b.Y > a.Y {
			winding++
		} else {
			winding--
		}
	}

	for _, op := range flat.ops {
		switch op.kind {
		case opMoveTo:
			if haveStart && cur != start {
				crossing(cur, start)
			}
			start = op.p
			cur = op.p
			haveStart = true
		case opLineTo:
			crossing(cur, op.p)
			cur = op.p
		case opClose:
			if haveStart {
				crossing(cur, start)
				cur = start
			}
		}
	}
	if haveStart && cur != start {
		crossing(cur, start)
	}

	if p.winding == EvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

// PathBuilder incrementally constructs a Path. The zero value is not
// usable; create one with NewPathBuilder.
type PathBuilder struct {
	ops          []pathOp
	winding      WindingRule
	current      Point
	firstPoint   Point
	hasCurrent   bool
	hasFirst     bool
}

// NewPathBuilder creates a builder for a path with the given winding
// rule.
func NewPathBuilder(winding WindingRule) *PathBuilder {
	return &PathBuilder{winding: winding}
}

// MoveTo starts a new subpath at (x,y).
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.current = Point{x, y}
	b.firstPoint = b.current
	b.hasCurrent = true
	b.hasFirst = true
	b.ops = append(b.ops, pathOp{kind: opMoveTo, p: b.current})
	return b
}

// LineTo appends a line segment to (x,y).
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.ensureStarted()
	b.current = Point{x, y}
	b.ops = append(b.ops, pathOp{kind: opLineTo, p: b.current})
	return b
}

// QuadTo appends a quadratic Bezier segment.
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	b.ensureStarted()
	b.current = Point{x, y}
	b.ops = append(b.ops, pathOp{kind: opQuadTo, ctrl1: Point{cx, cy}, p: b.current})
	return b
}

// CubicTo appends a cubic Bezier segment.
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	b.ensureStarted()
	b.current = Point{x, y}
	b.ops = append(b.ops, pathOp{kind: opCubicTo, ctrl1: Point{c1x, c1y}, ctrl2: Point{c2x, c2y}, p: b.current})
	return b
}

// Close closes the current subpath back to its first MoveTo point.
func (b *PathBuilder) Close() *PathBuilder {
	if !b.hasCurrent {
		return b
	}
	b.ops = append(b.ops, pathOp{kind: opClose})
	b.current = b.firstPoint
	return b
}

// Rect appends a closed rectangle as four lines.
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	b.MoveTo(x, y)
	b.LineTo(x+w, y)
	b.LineTo(x+w, y+h)
	b.LineTo(x, y+h)
	b.Close()
	return b
}

// Arc appends a circular arc centered at (cx,cy) with radius r, from
// angle a0 sweeping by `sweep` radians, as piecewise quadratic Beziers.
// With no current point it first moves to the arc's start point;
// otherwise the first segment starts from the current point, with no
// line drawn to the arc's start.
func (b *PathBuilder) Arc(cx, cy, r, a0, sweep float64) *PathBuilder {
	const maxSegAngle = 1.5707963267948966 / 2 // pi/4: keeps quad error small
	segs := int(absF(sweep)/maxSegAngle) + 1
	da := sweep / float64(segs)
	a := a0
	if !b.hasCurrent {
		x0 := cx + r*math.Cos(a)
		y0 := cy + r*math.Sin(a)
		b.MoveTo(x0, y0)
	}
	for i := 0; i < segs; i++ {
		a1 := a + da
		am := a + da/2
		// Quadratic control point placed so the curve passes near the
		// true arc at the segment midpoint (standard tangent-intersection
		// construction for small angles).
		x1 := cx + r*math.Cos(a1)
		y1 := cy + r*math.Sin(a1)
		k := r / math.Cos(da/2)
		cxm := cx + k*math.Cos(am)
		cym := cy + k*math.Sin(am)
		b.QuadTo(cxm, cym, x1, y1)
		a = a1
	}
	return b
}

func (b *PathBuilder) ensureStarted() {
	if !b.hasCurrent {
		b.MoveTo(0, 0)
	}
}

// Finish returns the built, immutable Path.
func (b *PathBuilder) Finish() Path {
	return Path{ops: b.ops, winding: b.winding}
}

// polySubpath is one Move..Line*..[Close] run of an already-flattened
// Path, in the plain polyline form the stroke and dash collaborators
// consume.
type polySubpath struct {
	pts    []Point
	closed bool
}

func (p Path) toPolySubpaths() []polySubpath {
	var out []polySubpath
	var cur []Point
	closed := false
	flush := func() {
		if len(cur) > 1 {
			out = append(out, polySubpath{pts: cur, closed: closed})
		}
		cur = nil
		closed = false
	}
	for _, op := range p.ops {
		switch op.kind {
		case opMoveTo:
			flush()
			cur = []Point{op.p}
		case opLineTo:
			cur = append(cur, op.p)
		case opClose:
			closed = true
		}
	}
	flush()
	return out
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
