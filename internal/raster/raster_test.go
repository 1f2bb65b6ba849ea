package raster

import (
	"testing"

	"github.com/lumenvec/raster2d/internal/basics"
)

type span struct {
	superY int
	x1, x2 int
}

func collectSpans(r *Rasterizer, rule basics.WindingRule) []span {
	var out []span
	r.Rasterize(rule, func(superY int, x1, x2 int) {
		out = append(out, span{superY, x1, x2})
	})
	return out
}

func pt(x, y float64) basics.Point[float64] { return basics.Point[float64]{X: x, Y: y} }

func TestRasterizeAxisAlignedRectangleFillsFullWidth(t *testing.T) {
	r := New(10, 10)
	// A 4x4 rectangle from (2,2) to (6,6), wound clockwise in device Y.
	r.AddLine(pt(2, 2), pt(6, 2))
	r.AddLine(pt(6, 2), pt(6, 6))
	r.AddLine(pt(6, 6), pt(2, 6))
	r.AddLine(pt(2, 6), pt(2, 2))

	spans := collectSpans(r, basics.NonZero)
	if len(spans) == 0 {
		t.Fatal("rasterizing a filled rectangle produced no spans")
	}
	for _, s := range spans {
		row := s.superY / Scale
		if row < 2 || row >= 6 {
			t.Errorf("span at super-row %d (pixel row %d) falls outside the rectangle's Y range [2,6)", s.superY, row)
		}
		if s.x1 < 2*Scale || s.x2 > 6*Scale {
			t.Errorf("span x-range [%v,%v) exceeds the rectangle's quarter-pixel X range [%v,%v)", s.x1, s.x2, 2*Scale, 6*Scale)
		}
	}
}

func TestRasterizeEmptyProducesNoSpans(t *testing.T) {
	r := New(10, 10)
	spans := collectSpans(r, basics.NonZero)
	if len(spans) != 0 {
		t.Fatalf("an empty rasterizer produced %d spans, want 0", len(spans))
	}
}

func TestRasterizeHorizontalEdgeIsRejected(t *testing.T) {
	r := New(10, 10)
	r.AddLine(pt(0, 5), pt(10, 5))
	spans := collectSpans(r, basics.NonZero)
	if len(spans) != 0 {
		t.Fatalf("a single horizontal edge produced %d spans, want 0 (it should be rejected, not crash)", len(spans))
	}
}

func TestRasterizeEvenOddDoughnutLeavesHoleOpen(t *testing.T) {
	r := New(20, 20)
	// Outer square (0,0)-(10,10) and an inner square (3,3)-(7,7) wound
	// the same direction: under EvenOdd this carves a hole, but under
	// NonZero both loops add up and the hole fills in too.
	addSquare := func(x0, y0, x1, y1 float64) {
		r.AddLine(pt(x0, y0), pt(x1, y0))
		r.AddLine(pt(x1, y0), pt(x1, y1))
		r.AddLine(pt(x1, y1), pt(x0, y1))
		r.AddLine(pt(x0, y1), pt(x0, y0))
	}
	addSquare(0, 0, 10, 10)
	addSquare(3, 3, 7, 7)

	spans := collectSpans(r, basics.EvenOdd)
	midRow := Scale * 5 // pixel row 5, first sub-row
	holeX := 3 * Scale
	for _, s := range spans {
		if s.superY != midRow {
			continue
		}
		if s.x1 < holeX+1 && s.x2 > holeX+1 {
			t.Errorf("EvenOdd span %v-%v at the doughnut's middle row should not cover the hole starting at x=3", s.x1, s.x2)
		}
	}
}

func TestAddQuadMonotonicProducesSpans(t *testing.T) {
	r := New(20, 20)
	r.AddLine(pt(2, 2), pt(2, 10))
	r.AddQuad(pt(2, 10), pt(10, 10), pt(10, 2))
	r.AddLine(pt(10, 2), pt(2, 2))
	spans := collectSpans(r, basics.NonZero)
	if len(spans) == 0 {
		t.Fatal("a path with a quadratic edge produced no spans")
	}
}

func TestRoundQuarterPixelAppliesHalfBias(t *testing.T) {
	// Exactly-aligned quarter-pixel coordinates round back to themselves.
	if got := roundQuarterPixel(basics.FloatToFixed(4)); got != 4 {
		t.Errorf("roundQuarterPixel(4.0) = %d, want 4", got)
	}
	// A half-quarter-pixel nudge rounds up per the 1/2 fixed-point bias.
	if got := roundQuarterPixel(basics.FloatToFixed(4) + (1 << 15)); got != 5 {
		t.Errorf("roundQuarterPixel(4.0 + half ulp) = %d, want 5", got)
	}
}
