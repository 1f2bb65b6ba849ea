package raster2d

import "testing"

func TestRGBAConstructsColor(t *testing.T) {
	c := RGBA(0.1, 0.2, 0.3, 0.4)
	if c.R != 0.1 || c.G != 0.2 || c.B != 0.3 || c.A != 0.4 {
		t.Fatalf("RGBA() = %+v, want {0.1,0.2,0.3,0.4}", c)
	}
}

func TestGrayIsOpaqueAndUniform(t *testing.T) {
	c := Gray(0.5)
	if c.R != 0.5 || c.G != 0.5 || c.B != 0.5 || c.A != 1 {
		t.Fatalf("Gray(0.5) = %+v, want {0.5,0.5,0.5,1}", c)
	}
}

func TestToInternalRoundTripsThroughUnpremultiply(t *testing.T) {
	c := RGBA(0.2, 0.4, 0.6, 1.0)
	back := colorFromInternal(c.toInternal())
	const eps = 0.01
	if absF(back.R-c.R) > eps || absF(back.G-c.G) > eps || absF(back.B-c.B) > eps || absF(back.A-c.A) > eps {
		t.Fatalf("round trip through toInternal/colorFromInternal: got %+v, want close to %+v", back, c)
	}
}

func TestToInternalClampsOutOfRangeChannels(t *testing.T) {
	c := RGBA(2.0, -1.0, 0.5, 1.0)
	ic := c.toInternal()
	if ic.R() != 255 {
		t.Errorf("R clamped to %d, want 255", ic.R())
	}
	if ic.G() != 0 {
		t.Errorf("G clamped to %d, want 0", ic.G())
	}
}

func TestToInternalFullyTransparentHasZeroPremultipliedChannels(t *testing.T) {
	c := RGBA(1, 1, 1, 0)
	ic := c.toInternal()
	if ic.R() != 0 || ic.G() != 0 || ic.B() != 0 {
		t.Fatalf("fully transparent color premultiplied to %#x, want all-zero RGB", ic)
	}
}
