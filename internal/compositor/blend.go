package compositor

// Mode selects how a source span combines with the destination, per
// the engine spec's compositing section: the classic Porter-Duff set
// plus CSS/PDF separable and non-separable blend modes.
type Mode int

const (
	Clear Mode = iota
	Src
	Dst
	SrcOver
	DstOver
	SrcIn
	DstIn
	SrcOut
	DstOut
	SrcAtop
	DstAtop
	Xor
	Plus

	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion

	Hue
	Saturation
	HueColor
	Luminosity
)

// IsPorterDuff reports whether mode is one of the pure alpha-compositing
// operators (no blend function), which Composite evaluates directly in
// premultiplied space without an unpremultiply round trip.
func (m Mode) IsPorterDuff() bool { return m <= Plus }

// Composite blends src over dst under mode, both premultiplied. It is
// the formula every ShaderBlitter variant (internal/blitter) calls once
// per covered pixel.
func Composite(dst, src Color, mode Mode) Color {
	if mode.IsPorterDuff() {
		return compositePorterDuff(dst, src, mode)
	}
	return compositeBlend(dst, src, mode)
}

func compositePorterDuff(dst, src Color, mode Mode) Color {
	as, ab := src.A(), dst.A()
	var fa, fb func() uint8
	one := func() uint8 { return 255 }
	zero := func() uint8 { return 0 }
	invAs := func() uint8 { return 255 - as }
	invAb := func() uint8 { return 255 - ab }
	justAs := func() uint8 { return as }
	justAb := func() uint8 { return ab }

	switch mode {
	case Clear:
		fa, fb = zero, zero
	case Src:
		fa, fb = one, zero
	case Dst:
		fa, fb = zero, one
	case SrcOver:
		fa, fb = one, invAs
	case DstOver:
		fa, fb = invAb, one
	case SrcIn:
		fa, fb = justAb, zero
	case DstIn:
		fa, fb = zero, justAs
	case SrcOut:
		fa, fb = invAb, zero
	case DstOut:
		fa, fb = zero, invAs
	case SrcAtop:
		fa, fb = justAb, invAs
	case DstAtop:
		fa, fb = invAb, justAs
	case Xor:
		fa, fb = invAb, invAs
	case Plus:
		fa, fb = one, one
	default:
		fa, fb = one, invAs
	}

	af, bf := fa(), fb()
	if mode == Plus {
		return Premultiplied(
			satAdd(src.A(), dst.A()),
			satAdd(src.R(), dst.R()),
			satAdd(src.G(), dst.G()),
			satAdd(src.B(), dst.B()),
		)
	}
	return Premultiplied(
		satAdd(muldiv255(src.A(), af), muldiv255(dst.A(), bf)),
		satAdd(muldiv255(src.R(), af), muldiv255(dst.R(), bf)),
		satAdd(muldiv255(src.G(), af), muldiv255(dst.G(), bf)),
		satAdd(muldiv255(src.B(), af), muldiv255(dst.B(), bf)),
	)
}

func satAdd(a, b uint8) uint8 {
	s := int(a) + int(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// compositeBlend implements the W3C "over" compositing formula with a
// non-trivial blend function B(Cb,Cs):
//
//	Cs' = (1-ab)*Cs + ab*B(Cb,Cs)
//	Co  = as*Cs' + (1-as)*ab*Cb   (result is premultiplied by ao)
//	ao  = as + ab - as*ab
func compositeBlend(dst, src Color, mode Mode) Color {
	sr, sg, sb, as := src.Unpremultiply()
	dr, dg, db, ab := dst.Unpremultiply()

	var br, bg, bb uint8
	if mode >= Hue {
		br, bg, bb = blendNonSeparable(mode, dr, dg, db, sr, sg, sb)
	} else {
		br = blendSeparable(mode, dr, sr)
		bg = blendSeparable(mode, dg, sg)
		bb = blendSeparable(mode, db, sb)
	}

	mix := func(cb, cs, b uint8) uint8 {
		csPrime := lerp8(cs, b, ab)
		return satAdd(muldiv255(csPrime, as), muldiv255(muldiv255(cb, ab), 255-as))
	}
	rr := mix(dr, sr, br)
	rg := mix(dg, sg, bg)
	rb := mix(db, sb, bb)
	ao := satAdd(as, muldiv255(ab, 255-as))

	return Premultiplied(ao, rr, rg, rb)
}

func blendSeparable(mode Mode, cb, cs uint8) uint8 {
	b, s := int(cb), int(cs)
	switch mode {
	case Multiply:
		return uint8(b * s / 255)
	case Screen:
		return uint8(b + s - b*s/255)
	case Overlay:
		return blendSeparable(HardLight, cs, cb)
	case Darken:
		if b < s {
			return cb
		}
		return cs
	case Lighten:
		if b > s {
			return cb
		}
		return cs
	case ColorDodge:
		if b == 0 {
			return 0
		}
		if s == 255 {
			return 255
		}
		v := b * 255 / (255 - s)
		if v > 255 {
			v = 255
		}
		return uint8(v)
	case ColorBurn:
		if b == 255 {
			return 255
		}
		if s == 0 {
			return 0
		}
		v := 255 - (255-b)*255/s
		if v < 0 {
			v = 0
		}
		return uint8(v)
	case HardLight:
		if s <= 127 {
			return uint8(b * (2 * s) / 255)
		}
		return uint8(255 - (255-b)*(255-(2*s-255))/255)
	case SoftLight:
		bf, sf := float64(b)/255, float64(s)/255
		var d float64
		if bf <= 0.25 {
			d = ((16*bf-12)*bf + 4) * bf
		} else {
			d = sqrtApprox(bf)
		}
		var r float64
		if sf <= 0.5 {
			r = bf - (1-2*sf)*bf*(1-bf)
		} else {
			r = bf + (2*sf-1)*(d-bf)
		}
		return uint8(clamp01(r) * 255)
	case Difference:
		if b > s {
			return uint8(b - s)
		}
		return uint8(s - b)
	case Exclusion:
		return uint8(b + s - 2*b*s/255)
	default:
		return cs
	}
}

func sqrtApprox(x float64) float64 {
	if x <= 0 {
		return 0
	}
	z := x
	for i := 0; i < 8; i++ {
		z -= (z*z - x) / (2 * z)
	}
	return z
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// blendNonSeparable implements the HSL-composite modes per the CSS
// compositing spec: Hue/Saturation/Color/Luminosity each combine the
// backdrop and source via Lum/Sat extraction and SetLum/SetSat
// re-injection, clipped back into range by ClipColor.
func blendNonSeparable(mode Mode, dr, dg, db, sr, sg, sb uint8) (uint8, uint8, uint8) {
	b := [3]float64{float64(dr) / 255, float64(dg) / 255, float64(db) / 255}
	s := [3]float64{float64(sr) / 255, float64(sg) / 255, float64(sb) / 255}

	var out [3]float64
	switch mode {
	case Hue:
		out = setLum(setSat(s, sat(b)), lum(b))
	case Saturation:
		out = setLum(setSat(b, sat(s)), lum(b))
	case HueColor:
		out = setLum(s, lum(b))
	case Luminosity:
		out = setLum(b, lum(s))
	default:
		out = s
	}
	return uint8(clamp01(out[0]) * 255), uint8(clamp01(out[1]) * 255), uint8(clamp01(out[2]) * 255)
}

func lum(c [3]float64) float64 {
	return 0.3*c[0] + 0.59*c[1] + 0.11*c[2]
}

func sat(c [3]float64) float64 {
	mx := maxOf3(c)
	mn := minOf3(c)
	return mx - mn
}

func setLum(c [3]float64, l float64) [3]float64 {
	d := l - lum(c)
	out := [3]float64{c[0] + d, c[1] + d, c[2] + d}
	return clipColor(out)
}

func clipColor(c [3]float64) [3]float64 {
	l := lum(c)
	n := minOf3(c)
	x := maxOf3(c)
	if n < 0 {
		for i := range c {
			c[i] = l + (c[i]-l)*l/(l-n)
		}
	}
	if x > 1 {
		for i := range c {
			c[i] = l + (c[i]-l)*(1-l)/(x-l)
		}
	}
	return c
}

func setSat(c [3]float64, s float64) [3]float64 {
	maxI, midI, minI := 0, 1, 2
	idx := [3]int{0, 1, 2}
	// sort idx by c value descending
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if c[idx[j]] > c[idx[i]] {
				idx[i], idx[j] = idx[j], idx[i]
			}
		}
	}
	maxI, midI, minI = idx[0], idx[1], idx[2]
	var out [3]float64
	if c[maxI] > c[minI] {
		out[midI] = (c[midI] - c[minI]) * s / (c[maxI] - c[minI])
		out[maxI] = s
	} else {
		out[midI] = 0
		out[maxI] = 0
	}
	out[minI] = 0
	return out
}

func maxOf3(c [3]float64) float64 {
	m := c[0]
	if c[1] > m {
		m = c[1]
	}
	if c[2] > m {
		m = c[2]
	}
	return m
}

func minOf3(c [3]float64) float64 {
	m := c[0]
	if c[1] < m {
		m = c[1]
	}
	if c[2] < m {
		m = c[2]
	}
	return m
}
