package blitter

import (
	"testing"

	"github.com/lumenvec/raster2d/internal/raster"
)

func TestMaskSuperBlitterFullCoverageSumsTo255(t *testing.T) {
	m := NewMaskSuperBlitter(4, 1)
	x1 := 0
	x2 := 4 * raster.Scale
	for sub := 0; sub < raster.Scale; sub++ {
		m.BlitSpan(sub, x1, x2)
	}
	for px, cov := range m.Mask {
		if cov != 255 {
			t.Errorf("pixel %d fully covered by all %d sub-rows = %d, want 255", px, raster.Scale, cov)
		}
	}
}

func TestMaskSuperBlitterPartialHorizontalCoverage(t *testing.T) {
	m := NewMaskSuperBlitter(4, 1)
	// Span covers only the left half of pixel 0 (2 of its 4 quarter columns).
	m.BlitSpan(0, 0, raster.Scale/2)
	if m.Mask[0] == 0 {
		t.Error("a half-covered pixel got zero coverage")
	}
	if m.Mask[0] >= subRowWeight(0) {
		t.Errorf("half-covered pixel got %d, want less than a full sub-row weight %d", m.Mask[0], subRowWeight(0))
	}
}

func TestMaskSuperBlitterExactlyOnePixelColumnIsFullyCovered(t *testing.T) {
	// A span whose bounds land exactly on the pixel-1 boundary on both
	// sides (x1=1*Scale, x2=2*Scale) should accumulate to full coverage
	// across all 4 sub-rows, not the partial-alpha boundary formula's
	// undercounted value.
	m := NewMaskSuperBlitter(4, 1)
	for sub := 0; sub < raster.Scale; sub++ {
		m.BlitSpan(sub, raster.Scale, 2*raster.Scale)
	}
	if m.Mask[1] != 255 {
		t.Errorf("pixel 1 (exactly one aligned quarter-pixel column) = %d, want 255", m.Mask[1])
	}
	if m.Mask[0] != 0 || m.Mask[2] != 0 {
		t.Errorf("neighboring pixels got non-zero coverage: %v", m.Mask)
	}
}

func TestMaskSuperBlitterOutOfRangeRowIsIgnored(t *testing.T) {
	m := NewMaskSuperBlitter(4, 1)
	m.BlitSpan(raster.Scale*5, 0, 4*raster.Scale)
	for px, cov := range m.Mask {
		if cov != 0 {
			t.Errorf("pixel %d got coverage %d from a span outside the mask's height", px, cov)
		}
	}
}

func TestMaskBlitterOnlySamplesFirstSubRow(t *testing.T) {
	m := NewMaskBlitter(4, 1)
	m.BlitSpan(1, 0, 4*raster.Scale) // sub-row 1, not 0
	for px, cov := range m.Mask {
		if cov != 0 {
			t.Errorf("MaskBlitter applied a non-zero sub-row span, pixel %d = %d, want 0", px, cov)
		}
	}
	m.BlitSpan(0, 0, 4*raster.Scale)
	for px, cov := range m.Mask {
		if cov != 255 {
			t.Errorf("MaskBlitter pixel %d = %d, want hard-edged 255", px, cov)
		}
	}
}
