package shader

import (
	"testing"

	"github.com/lumenvec/raster2d/internal/basics"
	"github.com/lumenvec/raster2d/internal/compositor"
	"github.com/lumenvec/raster2d/internal/transform"
)

func redBlueTable() compositor.GradientTable {
	return compositor.BuildGradientTable([]compositor.GradientStop{
		{Offset: 0, Color: compositor.ARGB(255, 255, 0, 0)},
		{Offset: 1, Color: compositor.ARGB(255, 0, 0, 255)},
	})
}

func TestLinearShadeSpanRampsAlongAxis(t *testing.T) {
	s := &Linear{
		P0: basics.Point[float64]{X: 0, Y: 0}, P1: basics.Point[float64]{X: 10, Y: 0},
		Table: redBlueTable(), Spread: basics.SpreadPad, Inverse: transform.Identity(),
	}
	start := s.ShadeSpan(0, 0, 1)[0]
	end := s.ShadeSpan(9, 0, 1)[0]
	if start.R() < end.R() {
		t.Errorf("red channel should decrease along the gradient: start.R=%d end.R=%d", start.R(), end.R())
	}
	if start.B() > end.B() {
		t.Errorf("blue channel should increase along the gradient: start.B=%d end.B=%d", start.B(), end.B())
	}
}

func TestLinearIsOpaqueMatchesTable(t *testing.T) {
	s := &Linear{Table: redBlueTable()}
	if !s.IsOpaque() {
		t.Error("opaque-stop gradient reported non-opaque")
	}
}

func TestRadialShadeSpanCenterIsFirstStop(t *testing.T) {
	s := &Radial{
		Center: basics.Point[float64]{X: 5, Y: 5}, R: 5,
		Table: redBlueTable(), Spread: basics.SpreadPad, Inverse: transform.Identity(),
	}
	// Pixel (5,5)'s sample point (5.5,5.5) is near the center, t near 0.
	center := s.ShadeSpan(5, 5, 1)[0]
	if center.R() < 200 {
		t.Errorf("radial gradient center sample R=%d, want close to the inner red stop", center.R())
	}
}

func TestTwoCircleRadialDegenerateToSingleCircle(t *testing.T) {
	s := &TwoCircleRadial{
		C0: basics.Point[float64]{X: 5, Y: 5}, R0: 0,
		C1: basics.Point[float64]{X: 5, Y: 5}, R1: 5,
		Table: redBlueTable(), Spread: basics.SpreadPad, Inverse: transform.Identity(),
	}
	out := s.ShadeSpan(5, 5, 1)
	if out[0].A() == 0 {
		t.Error("sampling at the shared center of a degenerate two-circle gradient produced a fully transparent pixel")
	}
}

func TestSolveConicalNoSolutionReturnsFalse(t *testing.T) {
	if _, ok := solveConical(0, 0, 1, 0, 0); ok {
		t.Error("solveConical with a=0,b=0 reported a solution, want none")
	}
}
