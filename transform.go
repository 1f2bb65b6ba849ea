package raster2d

import "github.com/lumenvec/raster2d/internal/transform"

// Matrix is a 2D affine transform: scale, shear, rotate and translate,
// the CTM every DrawTarget carries and every Path/Source is mapped
// through before rasterization.
type Matrix struct {
	m transform.Matrix
}

// Identity returns the identity transform.
func Identity() Matrix { return Matrix{transform.Identity()} }

// Translation returns a pure translation.
func Translation(x, y float64) Matrix { return Matrix{transform.NewTranslation(x, y)} }

// ScaleBy returns a pure non-uniform scale.
func ScaleBy(sx, sy float64) Matrix { return Matrix{transform.NewScale(sx, sy)} }

// Rotation returns a pure rotation, in radians.
func Rotation(angle float64) Matrix { return Matrix{transform.NewRotation(angle)} }

// Translate returns m with an additional translation applied after it.
func (m Matrix) Translate(x, y float64) Matrix { return Matrix{m.m.Translate(x, y)} }

// Scale returns m with an additional uniform scale applied after it.
func (m Matrix) Scale(s float64) Matrix { return Matrix{m.m.Scale(s)} }

// ScaleXY returns m with an additional non-uniform scale applied after it.
func (m Matrix) ScaleXY(sx, sy float64) Matrix { return Matrix{m.m.ScaleXY(sx, sy)} }

// Rotate returns m with an additional rotation (radians) applied after it.
func (m Matrix) Rotate(angle float64) Matrix { return Matrix{m.m.Rotate(angle)} }

// Multiply composes m then n.
func (m Matrix) Multiply(n Matrix) Matrix { return Matrix{m.m.Multiply(n.m)} }

// Invert returns the inverse of m and whether m was invertible.
func (m Matrix) Invert() (Matrix, bool) {
	inv, ok := m.m.Invert()
	return Matrix{inv}, ok
}

// MapPoint transforms (x,y) by m.
func (m Matrix) MapPoint(x, y float64) (float64, float64) { return m.m.MapPoint(x, y) }

// IsIdentity reports whether m is the identity transform within eps.
func (m Matrix) IsIdentity(eps float64) bool { return m.m.IsIdentity(eps) }
