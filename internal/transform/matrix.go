// Package transform implements the 3x2 affine matrix collaborator named
// in the engine spec: multiply, invert, translate, scale, rotate and
// point mapping. It is a direct, trimmed port of the teacher's
// trans_affine (agg_go/internal/transform), carrying only the 2D
// operations the engine actually calls.
package transform

import "math"

// Matrix is a row-major 3x2 affine transform:
//
//	sx  shx tx
//	shy sy  ty
//	0   0   1
type Matrix struct {
	SX, SHY, SHX, SY, TX, TY float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{SX: 1, SY: 1}
}

// NewTranslation returns a pure translation matrix.
func NewTranslation(x, y float64) Matrix {
	return Matrix{SX: 1, SY: 1, TX: x, TY: y}
}

// NewScale returns a pure scale matrix.
func NewScale(sx, sy float64) Matrix {
	return Matrix{SX: sx, SY: sy}
}

// NewRotation returns a pure rotation matrix (radians).
func NewRotation(angle float64) Matrix {
	ca, sa := math.Cos(angle), math.Sin(angle)
	return Matrix{SX: ca, SHY: sa, SHX: -sa, SY: ca}
}

// Translate post-applies a translation.
func (m Matrix) Translate(x, y float64) Matrix {
	m.TX += x
	m.TY += y
	return m
}

// Scale post-applies a uniform scale.
func (m Matrix) Scale(s float64) Matrix {
	return m.ScaleXY(s, s)
}

// ScaleXY post-applies a non-uniform scale.
func (m Matrix) ScaleXY(sx, sy float64) Matrix {
	m.SX *= sx
	m.SHX *= sx
	m.TX *= sx
	m.SHY *= sy
	m.SY *= sy
	m.TY *= sy
	return m
}

// Rotate post-applies a rotation (radians).
func (m Matrix) Rotate(angle float64) Matrix {
	ca, sa := math.Cos(angle), math.Sin(angle)
	t0 := m.SX*ca - m.SHY*sa
	t2 := m.SHX*ca - m.SY*sa
	t4 := m.TX*ca - m.TY*sa
	m.SHY = m.SX*sa + m.SHY*ca
	m.SY = m.SHX*sa + m.SY*ca
	m.TY = m.TX*sa + m.TY*ca
	m.SX, m.SHX, m.TX = t0, t2, t4
	return m
}

// Multiply returns m composed with n such that a point is first
// transformed by m, then by n (n·m in matrix-multiplication order).
func (m Matrix) Multiply(n Matrix) Matrix {
	t0 := m.SX*n.SX + m.SHY*n.SHX
	t2 := m.SHX*n.SX + m.SY*n.SHX
	t4 := m.TX*n.SX + m.TY*n.SHX + n.TX
	shy := m.SX*n.SHY + m.SHY*n.SY
	sy := m.SHX*n.SHY + m.SY*n.SY
	ty := m.TX*n.SHY + m.TY*n.SY + n.TY
	return Matrix{SX: t0, SHX: t2, TX: t4, SHY: shy, SY: sy, TY: ty}
}

// Determinant returns the matrix determinant; used by stroke tolerance
// scaling and to detect a non-invertible CTM.
func (m Matrix) Determinant() float64 {
	return m.SX*m.SY - m.SHY*m.SHX
}

// Invert returns the inverse of m and whether m was invertible.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, false
	}
	d := 1.0 / det
	sx := m.SY * d
	sy := m.SX * d
	shy := -m.SHY * d
	shx := -m.SHX * d
	tx := -m.TX*sx - m.TY*shx
	ty := -m.TX*shy - m.TY*sy
	return Matrix{SX: sx, SHY: shy, SHX: shx, SY: sy, TX: tx, TY: ty}, true
}

// MapPoint transforms (x,y) by m.
func (m Matrix) MapPoint(x, y float64) (float64, float64) {
	return x*m.SX + y*m.SHX + m.TX, x*m.SHY + y*m.SY + m.TY
}

// MapVector transforms (x,y) ignoring translation — used for normals and
// tangents during stroking.
func (m Matrix) MapVector(x, y float64) (float64, float64) {
	return x*m.SX + y*m.SHX, x*m.SHY + y*m.SY
}

// IsIdentity reports whether m is the identity transform within eps.
func (m Matrix) IsIdentity(eps float64) bool {
	return nearly(m.SX, 1, eps) && nearly(m.SHY, 0, eps) &&
		nearly(m.SHX, 0, eps) && nearly(m.SY, 1, eps) &&
		nearly(m.TX, 0, eps) && nearly(m.TY, 0, eps)
}

func nearly(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
