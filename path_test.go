package raster2d

import "testing"

func TestPathBuilderRectIsClosedAndBounded(t *testing.T) {
	b := NewPathBuilder(NonZero)
	b.Rect(10, 20, 30, 40)
	p := b.Finish()
	if p.IsEmpty() {
		t.Fatal("Rect produced an empty path")
	}
	bounds := p.Bounds()
	if bounds.X1 != 10 || bounds.Y1 != 20 || bounds.X2 != 40 || bounds.Y2 != 60 {
		t.Fatalf("Bounds() = %+v, want (10,20)-(40,60)", bounds)
	}
}

func TestPathTransformTranslatesPoints(t *testing.T) {
	b := NewPathBuilder(NonZero)
	b.Rect(0, 0, 10, 10)
	p := b.Finish()
	moved := p.Transform(Translation(5, 5))
	bounds := moved.Bounds()
	if bounds.X1 != 5 || bounds.Y1 != 5 || bounds.X2 != 15 || bounds.Y2 != 15 {
		t.Fatalf("translated Bounds() = %+v, want (5,5)-(15,15)", bounds)
	}
}

func TestPathFlattenReplacesCurvesWithLines(t *testing.T) {
	b := NewPathBuilder(NonZero)
	b.MoveTo(0, 0)
	b.CubicTo(0, 50, 100, 50, 100, 0)
	p := b.Finish()
	flat := p.Flatten(0.1)
	for _, op := range flat.ops {
		if op.kind == opCubicTo || op.kind == opQuadTo {
			t.Fatal("Flatten left a curve op in the output path")
		}
	}
	if len(flat.ops) < 3 {
		t.Fatalf("flattening a curved cubic produced only %d ops, want several line segments", len(flat.ops))
	}
}

func TestContainsPointInsideSquare(t *testing.T) {
	b := NewPathBuilder(NonZero)
	b.Rect(0, 0, 10, 10)
	p := b.Finish()
	if !p.ContainsPoint(0.1, 5, 5) {
		t.Error("(5,5) should be inside a (0,0)-(10,10) square")
	}
	if p.ContainsPoint(0.1, 50, 50) {
		t.Error("(50,50) should be outside a (0,0)-(10,10) square")
	}
}

func TestContainsPointEvenOddHole(t *testing.T) {
	b := NewPathBuilder(EvenOdd)
	b.Rect(0, 0, 10, 10)
	b.Rect(3, 3, 4, 4)
	p := b.Finish()
	if p.ContainsPoint(0.1, 5, 5) {
		t.Error("EvenOdd with a same-direction inner square should carve a hole at the center")
	}
	if !p.ContainsPoint(0.1, 1, 1) {
		t.Error("(1,1) should remain inside the outer ring")
	}
}

func TestContainsPointNonZeroFillsOverlap(t *testing.T) {
	b := NewPathBuilder(NonZero)
	b.Rect(0, 0, 10, 10)
	b.Rect(3, 3, 4, 4)
	p := b.Finish()
	if !p.ContainsPoint(0.1, 5, 5) {
		t.Error("NonZero with two same-direction overlapping squares should fill the overlap, not carve a hole")
	}
}

func TestPathBuilderArcProducesClosedCircleWhenClosed(t *testing.T) {
	b := NewPathBuilder(NonZero)
	b.Arc(5, 5, 5, 0, 2*3.14159265358979)
	b.Close()
	p := b.Finish()
	if p.IsEmpty() {
		t.Fatal("Arc produced an empty path")
	}
	if !p.ContainsPoint(0.2, 5, 5) {
		t.Error("the center of a full-circle arc path should be inside it")
	}
}
