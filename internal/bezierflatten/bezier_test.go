package bezierflatten

import (
	"math"
	"testing"
)

func TestFlattenQuadStraightLineYieldsSinglePoint(t *testing.T) {
	pts := FlattenQuad(nil, Pt{0, 0}, Pt{5, 0}, Pt{10, 0}, 0.1)
	if len(pts) != 1 {
		t.Fatalf("flattening a collinear quad gave %d points, want 1 (just the endpoint)", len(pts))
	}
	if pts[0] != (Pt{10, 0}) {
		t.Errorf("endpoint = %v, want (10,0)", pts[0])
	}
}

func TestFlattenQuadCurvedStaysWithinTolerance(t *testing.T) {
	p0, ctrl, p1 := Pt{0, 0}, Pt{50, 100}, Pt{100, 0}
	tol := 0.25
	pts := FlattenQuad(nil, p0, ctrl, p1, tol)
	if len(pts) < 3 {
		t.Fatalf("a sharply curved quad flattened to only %d points", len(pts))
	}
	for _, p := range pts {
		mid := quadAtWrap(p0, ctrl, p1, paramNearest(p0, ctrl, p1, p))
		if sqDist(mid.X, mid.Y, p.X, p.Y) > (tol*4)*(tol*4) {
			t.Errorf("flattened point %v deviates from the curve beyond tolerance", p)
		}
	}
}

func TestFlattenCubicReturnsEndpoint(t *testing.T) {
	pts := FlattenCubic(nil, Pt{0, 0}, Pt{0, 50}, Pt{100, 50}, Pt{100, 0}, 0.1)
	if len(pts) == 0 {
		t.Fatal("FlattenCubic returned no points")
	}
	if pts[len(pts)-1] != (Pt{100, 0}) {
		t.Errorf("last point = %v, want the curve endpoint (100,0)", pts[len(pts)-1])
	}
}

func TestSplitQuadMonotonicAlreadyMonotonicIsUnchanged(t *testing.T) {
	seg := QuadSeg{P0: Pt{0, 0}, Ctrl: Pt{5, 5}, P1: Pt{10, 10}}
	pieces := SplitQuadMonotonic(seg)
	if len(pieces) != 1 {
		t.Fatalf("splitting an already Y-monotonic quad gave %d pieces, want 1", len(pieces))
	}
}

func TestSplitQuadMonotonicSplitsAtExtremum(t *testing.T) {
	// Control point's Y is a local extremum relative to both endpoints:
	// the curve must turn around in Y, so it needs splitting.
	seg := QuadSeg{P0: Pt{0, 0}, Ctrl: Pt{5, 10}, P1: Pt{10, 0}}
	pieces := SplitQuadMonotonic(seg)
	if len(pieces) != 2 {
		t.Fatalf("splitting a non-monotonic quad gave %d pieces, want 2", len(pieces))
	}
	if pieces[0].P1 != pieces[1].P0 {
		t.Errorf("split pieces don't share a joint point: %v vs %v", pieces[0].P1, pieces[1].P0)
	}
	for _, piece := range pieces {
		y0, y1, y2 := piece.P0.Y, piece.Ctrl.Y, piece.P1.Y
		if !(y0 <= y1 && y1 <= y2) && !(y0 >= y1 && y1 >= y2) {
			t.Errorf("piece %v is not Y-monotonic", piece)
		}
	}
}

func TestCubicToQuadraticsApproximatesEndpoints(t *testing.T) {
	p0, c1, c2, p1 := Pt{0, 0}, Pt{0, 100}, Pt{100, 100}, Pt{100, 0}
	quads := CubicToQuadratics(nil, p0, c1, c2, p1, 0.1)
	if len(quads) == 0 {
		t.Fatal("CubicToQuadratics produced no segments")
	}
	if quads[0].P0 != p0 {
		t.Errorf("first segment start = %v, want %v", quads[0].P0, p0)
	}
	if quads[len(quads)-1].P1 != p1 {
		t.Errorf("last segment end = %v, want %v", quads[len(quads)-1].P1, p1)
	}
	for i := 1; i < len(quads); i++ {
		if quads[i-1].P1 != quads[i].P0 {
			t.Errorf("segment %d doesn't connect to segment %d: %v != %v", i-1, i, quads[i-1].P1, quads[i].P0)
		}
	}
}

func TestCubicToQuadraticsStraightLineIsOneSegment(t *testing.T) {
	quads := CubicToQuadratics(nil, Pt{0, 0}, Pt{33, 0}, Pt{66, 0}, Pt{100, 0}, 0.1)
	if len(quads) != 1 {
		t.Fatalf("a collinear cubic reduced to %d quadratics, want 1", len(quads))
	}
}

// paramNearest does a coarse linear search for the curve parameter
// closest to p, just for the deviation check above.
func paramNearest(p0, ctrl, p1 Pt, p Pt) float64 {
	best, bestD := 0.0, math.Inf(1)
	for i := 0; i <= 100; i++ {
		t := float64(i) / 100
		qx, qy := quadAt(p0, ctrl, p1, t)
		d := sqDist(qx, qy, p.X, p.Y)
		if d < bestD {
			bestD, best = d, t
		}
	}
	return best
}

func quadAtWrap(p0, ctrl, p1 Pt, t float64) Pt {
	x, y := quadAt(p0, ctrl, p1, t)
	return Pt{x, y}
}
