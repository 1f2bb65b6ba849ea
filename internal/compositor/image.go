package compositor

import "github.com/lumenvec/raster2d/internal/basics"

// Image is a premultiplied ARGB32 source bitmap sampled by the
// TransformedImageShader (internal/shader). Pixels are stored row-major.
type Image struct {
	Width, Height int
	Pix           []Color
}

func (im *Image) at(x, y int) Color {
	return im.Pix[y*im.Width+x]
}

// wrap applies the extend mode to a single axis coordinate.
func wrap(v, size int, extend basics.Extend) int {
	if size <= 1 {
		return 0
	}
	switch extend {
	case basics.ExtendRepeat:
		v %= size
		if v < 0 {
			v += size
		}
		return v
	default: // ExtendPad
		if v < 0 {
			return 0
		}
		if v >= size {
			return size - 1
		}
		return v
	}
}

// FetchNearest samples the image at continuous (x,y) with point
// sampling, per the engine's fetch_nearest strategy.
func FetchNearest(im *Image, x, y float64, ex, ey basics.Extend) Color {
	ix := wrap(int(floor(x)), im.Width, ex)
	iy := wrap(int(floor(y)), im.Height, ey)
	return im.at(ix, iy)
}

// FetchBilinear samples the image at continuous (x,y) with bilinear
// interpolation between its four nearest texels, per fetch_bilinear.
func FetchBilinear(im *Image, x, y float64, ex, ey basics.Extend) Color {
	x -= 0.5
	y -= 0.5
	x0 := int(floor(x))
	y0 := int(floor(y))
	fx := uint8(clamp01(x-float64(x0)) * 255)
	fy := uint8(clamp01(y-float64(y0)) * 255)

	c00 := im.at(wrap(x0, im.Width, ex), wrap(y0, im.Height, ey))
	c10 := im.at(wrap(x0+1, im.Width, ex), wrap(y0, im.Height, ey))
	c01 := im.at(wrap(x0, im.Width, ex), wrap(y0+1, im.Height, ey))
	c11 := im.at(wrap(x0+1, im.Width, ex), wrap(y0+1, im.Height, ey))

	top := lerpColor(c00, c10, fx)
	bot := lerpColor(c01, c11, fx)
	return lerpColor(top, bot, fy)
}

func lerpColor(a, b Color, t uint8) Color {
	return Premultiplied(
		lerp8(a.A(), b.A(), t),
		lerp8(a.R(), b.R(), t),
		lerp8(a.G(), b.G(), t),
		lerp8(a.B(), b.B(), t),
	)
}

func floor(v float64) float64 {
	i := float64(int64(v))
	if v < 0 && i != v {
		return i - 1
	}
	return i
}
