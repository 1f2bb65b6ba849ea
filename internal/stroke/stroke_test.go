package stroke

import (
	"math"
	"testing"

	"github.com/lumenvec/raster2d/internal/basics"
)

func bounds(pts []Point) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return
}

func TestGenerateZeroWidthProducesNothing(t *testing.T) {
	subs := []Subpath{{Pts: []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}}
	out := Generate(subs, Style{Width: 0})
	if out != nil {
		t.Fatalf("Generate with zero width = %v, want nil", out)
	}
}

func TestGenerateOpenButtCapMatchesRectangleBounds(t *testing.T) {
	subs := []Subpath{{Pts: []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}}
	out := Generate(subs, Style{Width: 4, Cap: basics.ButtCap, Join: basics.BevelJoin})
	if len(out) != 1 {
		t.Fatalf("Generate produced %d outlines, want 1", len(out))
	}
	minX, minY, maxX, maxY := bounds(out[0].Pts)
	if minX != 0 || maxX != 10 || minY != -2 || maxY != 2 {
		t.Fatalf("butt-capped horizontal stroke bounds = (%v,%v)-(%v,%v), want (0,-2)-(10,2)", minX, minY, maxX, maxY)
	}
}

func TestGenerateOpenSquareCapExtendsBeyondEndpoints(t *testing.T) {
	subs := []Subpath{{Pts: []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}}
	out := Generate(subs, Style{Width: 4, Cap: basics.SquareCap, Join: basics.BevelJoin})
	minX, _, maxX, _ := bounds(out[0].Pts)
	if minX != -2 || maxX != 12 {
		t.Fatalf("square-capped stroke X bounds = (%v,%v), want (-2,12) (extended by half-width)", minX, maxX)
	}
}

func TestGenerateOpenRoundCapStaysWithinRadius(t *testing.T) {
	subs := []Subpath{{Pts: []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}}
	out := Generate(subs, Style{Width: 4, Cap: basics.RoundCap, Join: basics.BevelJoin})
	minX, _, maxX, _ := bounds(out[0].Pts)
	if minX < -2.01 || maxX > 12.01 {
		t.Fatalf("round-capped stroke X bounds = (%v,%v), want within (-2,12)", minX, maxX)
	}
}

func TestGenerateClosedProducesTwoLoops(t *testing.T) {
	subs := []Subpath{{
		Pts:    []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		Closed: true,
	}}
	out := Generate(subs, Style{Width: 2, Join: basics.BevelJoin})
	if len(out) != 2 {
		t.Fatalf("stroking a closed polygon produced %d loops, want 2 (outer+inner)", len(out))
	}
}

func TestGenerateMiterJoinFallsBackToBevelBeyondLimit(t *testing.T) {
	// A very sharp spike: the miter would shoot far past any reasonable
	// limit, so a low MiterLimit must fall back to a bevel (two points,
	// not a far-away tip).
	subs := []Subpath{{Pts: []Point{
		{X: 0, Y: 0}, {X: 10, Y: 0.01}, {X: 0, Y: 0.02},
	}}}
	out := Generate(subs, Style{Width: 1, Join: basics.MiterJoin, MiterLimit: 1.0})
	minX, _, maxX, _ := bounds(out[0].Pts)
	if maxX-minX > 50 {
		t.Fatalf("miter join exceeded its limit without falling back to a bevel: X span = %v", maxX-minX)
	}
}

func TestGenerateSinglePointRoundCapIsCircle(t *testing.T) {
	subs := []Subpath{{Pts: []Point{{X: 5, Y: 5}}}}
	out := Generate(subs, Style{Width: 4, Cap: basics.RoundCap})
	if len(out) != 1 {
		t.Fatalf("a single-point subpath with RoundCap produced %d outlines, want 1", len(out))
	}
	minX, minY, maxX, maxY := bounds(out[0].Pts)
	if minX < 2.9 || maxX > 7.1 || minY < 2.9 || maxY > 7.1 {
		t.Fatalf("dot bounds = (%v,%v)-(%v,%v), want roughly (3,3)-(7,7)", minX, minY, maxX, maxY)
	}
}
