package shader

import (
	"math"

	"github.com/lumenvec/raster2d/internal/basics"
	"github.com/lumenvec/raster2d/internal/compositor"
	"github.com/lumenvec/raster2d/internal/transform"
)

// Linear shades along the axis from P0 to P1, per the engine's linear
// gradient source.
type Linear struct {
	P0, P1  basics.Point[float64]
	Table   compositor.GradientTable
	Spread  basics.Spread
	Inverse transform.Matrix
}

func (s *Linear) ShadeSpan(x, y, count int) []compositor.Color {
	out := make([]compositor.Color, count)
	dx := s.P1.X - s.P0.X
	dy := s.P1.Y - s.P0.Y
	denom := dx*dx + dy*dy
	fy := float64(y) + 0.5
	for i := 0; i < count; i++ {
		fx := float64(x+i) + 0.5
		px, py := s.Inverse.MapPoint(fx, fy)
		var t float64
		if denom > 0 {
			t = ((px-s.P0.X)*dx + (py-s.P0.Y)*dy) / denom
		}
		out[i] = s.Table.Sample(t, s.Spread)
	}
	return out
}

func (s *Linear) IsOpaque() bool { return tableIsOpaque(&s.Table) }

// Radial shades as a single circle centered at Center with radius R
// (the common case of the spec's radial gradient source).
type Radial struct {
	Center  basics.Point[float64]
	R       float64
	Table   compositor.GradientTable
	Spread  basics.Spread
	Inverse transform.Matrix
}

func (s *Radial) ShadeSpan(x, y, count int) []compositor.Color {
	out := make([]compositor.Color, count)
	fy := float64(y) + 0.5
	for i := 0; i < count; i++ {
		fx := float64(x+i) + 0.5
		px, py := s.Inverse.MapPoint(fx, fy)
		dx := px - s.Center.X
		dy := py - s.Center.Y
		var t float64
		if s.R > 0 {
			t = math.Sqrt(dx*dx+dy*dy) / s.R
		}
		out[i] = s.Table.Sample(t, s.Spread)
	}
	return out
}

func (s *Radial) IsOpaque() bool { return tableIsOpaque(&s.Table) }

// TwoCircleRadial shades between two circles (C0,R0) and (C1,R1), the
// general conic-gradient form most image editors expose as "radial
// gradient with a focal point" — solved as in the original raqote
// two-point conical implementation: find the largest t solving the
// quadratic that places (x,y) on the interpolated circle at parameter t.
type TwoCircleRadial struct {
	C0, C1  basics.Point[float64]
	R0, R1  float64
	Table   compositor.GradientTable
	Spread  basics.Spread
	Inverse transform.Matrix
}

func (s *TwoCircleRadial) ShadeSpan(x, y, count int) []compositor.Color {
	out := make([]compositor.Color, count)
	cdx := s.C1.X - s.C0.X
	cdy := s.C1.Y - s.C0.Y
	dr := s.R1 - s.R0
	a := cdx*cdx + cdy*cdy - dr*dr

	fy := float64(y) + 0.5
	for i := 0; i < count; i++ {
		fx := float64(x+i) + 0.5
		px, py := s.Inverse.MapPoint(fx, fy)
		pdx := px - s.C0.X
		pdy := py - s.C0.Y

		b := 2 * (pdx*cdx + pdy*cdy + s.R0*dr)
		c := pdx*pdx + pdy*pdy - s.R0*s.R0

		t, ok := solveConical(a, b, c, s.R0, dr)
		if !ok {
			out[i] = compositor.Color(0)
			continue
		}
		out[i] = s.Table.Sample(t, s.Spread)
	}
	return out
}

func solveConical(a, b, c, r0, dr float64) (float64, bool) {
	const eps = 1e-12
	if math.Abs(a) < eps {
		if math.Abs(b) < eps {
			return 0, false
		}
		t := c / b
		if r0+t*dr >= 0 {
			return t, true
		}
		return 0, false
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t0 := (b + sq) / (2 * a)
	t1 := (b - sq) / (2 * a)
	if t0 < t1 {
		t0, t1 = t1, t0
	}
	if r0+t0*dr >= 0 {
		return t0, true
	}
	if r0+t1*dr >= 0 {
		return t1, true
	}
	return 0, false
}

func (s *TwoCircleRadial) IsOpaque() bool { return tableIsOpaque(&s.Table) }

func tableIsOpaque(t *compositor.GradientTable) bool {
	for _, c := range t {
		if c.A() != 255 {
			return false
		}
	}
	return true
}
