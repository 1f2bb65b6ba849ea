package compositor

import "github.com/lumenvec/raster2d/internal/basics"

// GradientStop is one color stop in a gradient ramp, offset in [0,1].
type GradientStop struct {
	Offset float64
	Color  Color
}

// GradientTableSize is the resolution of the precomputed lookup table
// gradients sample from, trading a small amount of banding for O(1)
// per-pixel lookups instead of a binary search over stops per sample.
const GradientTableSize = 256

// GradientTable is a precomputed, evenly spaced ramp of premultiplied
// colors built once per gradient and sampled per pixel by index.
type GradientTable [GradientTableSize]Color

// BuildGradientTable resamples stops (sorted by Offset, first at 0,
// last at 1 — callers should clamp/pad their stop list beforehand) into
// a fixed-size table, linearly interpolating between neighboring stops.
func BuildGradientTable(stops []GradientStop) GradientTable {
	var table GradientTable
	if len(stops) == 0 {
		return table
	}
	if len(stops) == 1 {
		for i := range table {
			table[i] = stops[0].Color
		}
		return table
	}
	si := 0
	for i := 0; i < GradientTableSize; i++ {
		t := float64(i) / float64(GradientTableSize-1)
		for si < len(stops)-2 && stops[si+1].Offset < t {
			si++
		}
		a, b := stops[si], stops[si+1]
		span := b.Offset - a.Offset
		var frac float64
		if span > 0 {
			frac = (t - a.Offset) / span
		}
		frac = clamp01(frac)
		table[i] = lerpColor(a.Color, b.Color, uint8(frac*255))
	}
	return table
}

// Sample looks up the table entry for position t under the given
// spread, per the Pad/Repeat/Reflect semantics of the spec.
func (g *GradientTable) Sample(t float64, spread basics.Spread) Color {
	switch spread {
	case basics.SpreadRepeat:
		t -= floor(t)
	case basics.SpreadReflect:
		t = floor(t/2+0.5)*0 + reflectFrac(t)
	default: // SpreadPad
		t = clamp01(t)
	}
	t = clamp01(t)
	idx := int(t*float64(GradientTableSize-1) + 0.5)
	if idx < 0 {
		idx = 0
	}
	if idx >= GradientTableSize {
		idx = GradientTableSize - 1
	}
	return g[idx]
}

func reflectFrac(t float64) float64 {
	t -= 2 * floor(t/2)
	if t > 1 {
		t = 2 - t
	}
	if t < 0 {
		t = -t
	}
	return t
}
