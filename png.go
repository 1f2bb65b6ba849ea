package raster2d

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// ToImage converts dt's premultiplied surface to a standard library
// image.NRGBA, unpremultiplying every pixel. PNG encoding is explicitly
// an out-of-scope external collaborator (§1): this engine hands off to
// the standard library rather than shipping its own encoder.
func (dt *DrawTarget) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, dt.width, dt.height))
	for y := 0; y < dt.height; y++ {
		for x := 0; x < dt.width; x++ {
			c := dt.surface.Pix[y*dt.width+x]
			r, g, b, a := c.Unpremultiply()
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}
	return img
}

// WritePNG encodes dt's current contents as a PNG to w.
func (dt *DrawTarget) WritePNG(w io.Writer) error {
	return png.Encode(w, dt.ToImage())
}

// SaveToPNG encodes dt's current contents as a PNG file at path.
func SaveToPNG(dt *DrawTarget, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return dt.WritePNG(f)
}
