// Package bezierflatten is the curve collaborator named in the engine
// spec §6: cubic→quadratic reduction (so the rasterizer only ever has
// to step monotonic quadratics) and flattening of quadratic/cubic
// segments to polylines at a caller-supplied tolerance. Flattening uses
// the same recursive-subdivision flatness test as the teacher's
// agg_go/internal/curves Curve3Div/Curve4Div, ported from a template
// instantiation to a fixed float64 implementation since the engine has
// exactly one coordinate type; cubic→quadratic reduction instead
// subdivides until a sampled deviation check (cubicIsFlatAsQuad) holds.
package bezierflatten

import "math"

const (
	recursionLimit      = 32
	collinearityEpsilon = 1e-30
)

// Pt is a 2D point in the curve's working space (already CTM-mapped or
// not, the caller decides).
type Pt struct{ X, Y float64 }

// QuadSeg is a quadratic Bezier segment (start, control, end).
type QuadSeg struct {
	P0, Ctrl, P1 Pt
}

func sqDist(x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	return dx*dx + dy*dy
}

// FlattenQuad appends a polyline approximation of the quadratic Bezier
// p0-ctrl-p1 to dst, not including p0 but including p1, accurate to
// within tol (distance tolerance, not squared).
func FlattenQuad(dst []Pt, p0, ctrl, p1 Pt, tol float64) []Pt {
	distTolSq := tol * tol
	dst = recurseQuad(dst, p0.X, p0.Y, ctrl.X, ctrl.Y, p1.X, p1.Y, 0, distTolSq)
	return append(dst, p1)
}

func recurseQuad(dst []Pt, x1, y1, x2, y2, x3, y3 float64, level int, distTolSq float64) []Pt {
	if level > recursionLimit {
		return dst
	}
	x12 := (x1 + x2) / 2
	y12 := (y1 + y2) / 2
	x23 := (x2 + x3) / 2
	y23 := (y2 + y3) / 2
	x123 := (x12 + x23) / 2
	y123 := (y12 + y23) / 2

	dx := x3 - x1
	dy := y3 - y1
	d := math.Abs((x2-x3)*dy - (y2-y3)*dx)

	if d > collinearityEpsilon {
		if d*d <= distTolSq*(dx*dx+dy*dy) {
			dst = append(dst, Pt{x123, y123})
			return dst
		}
	} else {
		da := dx*dx + dy*dy
		if da == 0 {
			d = sqDist(x1, y1, x2, y2)
		} else {
			t := ((x2-x1)*dx + (y2-y1)*dy) / da
			if t > 0 && t < 1 {
				return dst
			}
			switch {
			case t <= 0:
				d = sqDist(x2, y2, x1, y1)
			case t >= 1:
				d = sqDist(x2, y2, x3, y3)
			default:
				d = sqDist(x2, y2, x1+t*dx, y1+t*dy)
			}
		}
		if d < distTolSq {
			dst = append(dst, Pt{x2, y2})
			return dst
		}
	}

	dst = recurseQuad(dst, x1, y1, x12, y12, x123, y123, level+1, distTolSq)
	dst = recurseQuad(dst, x123, y123, x23, y23, x3, y3, level+1, distTolSq)
	return dst
}

// FlattenCubic appends a polyline approximation of the cubic Bezier
// p0-c1-c2-p1 to dst, not including p0 but including p1.
func FlattenCubic(dst []Pt, p0, c1, c2, p1 Pt, tol float64) []Pt {
	distTolSq := tol * tol
	dst = recurseCubic(dst, p0.X, p0.Y, c1.X, c1.Y, c2.X, c2.Y, p1.X, p1.Y, 0, distTolSq)
	return append(dst, p1)
}

func recurseCubic(dst []Pt, x1, y1, x2, y2, x3, y3, x4, y4 float64, level int, distTolSq float64) []Pt {
	if level > recursionLimit {
		return dst
	}
	x12 := (x1 + x2) / 2
	y12 := (y1 + y2) / 2
	x23 := (x2 + x3) / 2
	y23 := (y2 + y3) / 2
	x34 := (x3 + x4) / 2
	y34 := (y3 + y4) / 2
	x123 := (x12 + x23) / 2
	y123 := (y12 + y23) / 2
	x234 := (x23 + x34) / 2
	y234 := (y23 + y34) / 2
	x1234 := (x123 + x234) / 2
	y1234 := (y123 + y234) / 2

	dx := x4 - x1
	dy := y4 - y1

	d2 := math.Abs((x2-x4)*dy - (y2-y4)*dx)
	d3 := math.Abs((x3-x4)*dy - (y3-y4)*dx)

	flat2 := d2 > collinearityEpsilon
	flat3 := d3 > collinearityEpsilon

	if !flat2 && !flat3 {
		k := dx*dx + dy*dy
		if k == 0 {
			d2 = sqDist(x1, y1, x2, y2)
			d3 = sqDist(x4, y4, x3, y3)
		} else {
			k = 1 / k
			t2 := k * ((x2-x1)*dx + (y2-y1)*dy)
			t3 := k * ((x3-x1)*dx + (y3-y1)*dy)
			if t2 > 0 && t2 < 1 && t3 > 0 && t3 < 1 {
				return dst
			}
			switch {
			case t2 <= 0:
				d2 = sqDist(x2, y2, x1, y1)
			case t2 >= 1:
				d2 = sqDist(x2, y2, x4, y4)
			default:
				d2 = sqDist(x2, y2, x1+t2*dx, y1+t2*dy)
			}
			switch {
			case t3 <= 0:
				d3 = sqDist(x3, y3, x1, y1)
			case t3 >= 1:
				d3 = sqDist(x3, y3, x4, y4)
			default:
				d3 = sqDist(x3, y3, x1+t3*dx, y1+t3*dy)
			}
		}
		if d2 > d3 {
			if d2 < distTolSq {
				dst = append(dst, Pt{x2, y2})
				return dst
			}
		} else if d3 < distTolSq {
			dst = append(dst, Pt{x3, y3})
			return dst
		}
	} else if flat2 && !flat3 {
		if d2*d2 <= distTolSq*(dx*dx+dy*dy) {
			dst = append(dst, Pt{x23, y23})
			return dst
		}
	} else if !flat2 && flat3 {
		if d3*d3 <= distTolSq*(dx*dx+dy*dy) {
			dst = append(dst, Pt{x23, y23})
			return dst
		}
	} else {
		if (d2+d3)*(d2+d3) <= distTolSq*(dx*dx+dy*dy) {
			dst = append(dst, Pt{x23, y23})
			return dst
		}
	}

	dst = recurseCubic(dst, x1, y1, x12, y12, x123, y123, x1234, y1234, level+1, distTolSq)
	dst = recurseCubic(dst, x1234, y1234, x234, y234, x34, y34, x4, y4, level+1, distTolSq)
	return dst
}

// SplitQuadMonotonic splits a quadratic Bezier into one or two pieces
// that are each monotonic in Y, as required by the rasterizer's
// forward-difference edge stepper (§4.2).
func SplitQuadMonotonic(seg QuadSeg) []QuadSeg {
	y0, y1, y2 := seg.P0.Y, seg.Ctrl.Y, seg.P1.Y
	denom := y0 - 2*y1 + y2
	if denom == 0 {
		return []QuadSeg{seg}
	}
	t := (y0 - y1) / denom
	if t <= 0 || t >= 1 {
		return []QuadSeg{seg}
	}
	mt := 1 - t
	// de Casteljau split at t
	x01 := mt*seg.P0.X + t*seg.Ctrl.X
	y01 := mt*seg.P0.Y + t*seg.Ctrl.Y
	x12 := mt*seg.Ctrl.X + t*seg.P1.X
	y12 := mt*seg.Ctrl.Y + t*seg.P1.Y
	xm := mt*x01 + t*x12
	ym := mt*y01 + t*y12
	mid := Pt{xm, ym}
	return []QuadSeg{
		{P0: seg.P0, Ctrl: Pt{x01, y01}, P1: mid},
		{P0: mid, Ctrl: Pt{x12, y12}, P1: seg.P1},
	}
}

// CubicToQuadratics reduces a cubic Bezier to a short run of quadratic
// Beziers accurate to tol, by recursively halving the cubic until each
// half is flat enough to be represented by a single quadratic whose
// control point is the standard least-squares approximation
// ctrl = (3*(c1+c2) - p0 - p1) / 4.
func CubicToQuadratics(dst []QuadSeg, p0, c1, c2, p1 Pt, tol float64) []QuadSeg {
	return recurseCubicToQuad(dst, p0, c1, c2, p1, tol, 0)
}

func recurseCubicToQuad(dst []QuadSeg, p0, c1, c2, p1 Pt, tol float64, level int) []QuadSeg {
	ctrl := Pt{
		X: (3*(c1.X+c2.X) - p0.X - p1.X) / 4,
		Y: (3*(c1.Y+c2.Y) - p0.Y - p1.Y) / 4,
	}
	if level >= recursionLimit || cubicIsFlatAsQuad(p0, c1, c2, p1, ctrl, tol) {
		return append(dst, QuadSeg{P0: p0, Ctrl: ctrl, P1: p1})
	}

	// Subdivide the cubic at t=0.5 (de Casteljau) and recurse each half.
	x12 := (p0.X + c1.X) / 2
	y12 := (p0.Y + c1.Y) / 2
	x23 := (c1.X + c2.X) / 2
	y23 := (c1.Y + c2.Y) / 2
	x34 := (c2.X + p1.X) / 2
	y34 := (c2.Y + p1.Y) / 2
	x123 := (x12 + x23) / 2
	y123 := (y12 + y23) / 2
	x234 := (x23 + x34) / 2
	y234 := (y23 + y34) / 2
	x1234 := (x123 + x234) / 2
	y1234 := (y123 + y234) / 2

	mid := Pt{x1234, y1234}
	dst = recurseCubicToQuad(dst, p0, Pt{x12, y12}, Pt{x123, y123}, mid, tol, level+1)
	dst = recurseCubicToQuad(dst, mid, Pt{x234, y234}, Pt{x34, y34}, p1, tol, level+1)
	return dst
}

// cubicIsFlatAsQuad estimates the max deviation between the cubic and
// its candidate quadratic approximation at the curve's quarter/half/
// three-quarter parameter points, a cheap proxy for the Hausdorff
// distance that's accurate enough for rendering tolerances.
func cubicIsFlatAsQuad(p0, c1, c2, p1, qctrl Pt, tol float64) bool {
	for _, t := range [...]float64{0.25, 0.5, 0.75} {
		cx, cy := cubicAt(p0, c1, c2, p1, t)
		qx, qy := quadAt(p0, qctrl, p1, t)
		if sqDist(cx, cy, qx, qy) > tol*tol {
			return false
		}
	}
	return true
}

func cubicAt(p0, c1, c2, p1 Pt, t float64) (float64, float64) {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return a*p0.X + b*c1.X + c*c2.X + d*p1.X, a*p0.Y + b*c1.Y + c*c2.Y + d*p1.Y
}

func quadAt(p0, ctrl, p1 Pt, t float64) (float64, float64) {
	mt := 1 - t
	a := mt * mt
	b := 2 * mt * t
	c := t * t
	return a*p0.X + b*ctrl.X + c*p1.X, a*p0.Y + b*ctrl.Y + c*p1.Y
}
