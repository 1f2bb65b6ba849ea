package raster2d

import "github.com/lumenvec/raster2d/internal/basics"

// LineCap and LineJoin re-export the stroke style enums.
type (
	LineCap  = basics.LineCap
	LineJoin = basics.LineJoin
)

const (
	ButtCap   = basics.ButtCap
	SquareCap = basics.SquareCap
	RoundCap  = basics.RoundCap

	BevelJoin = basics.BevelJoin
	MiterJoin = basics.MiterJoin
	RoundJoin = basics.RoundJoin
)

// StrokeStyle describes how Stroke converts a path into filled
// outline geometry, per §4.1: width, caps, joins, a miter limit, and an
// optional dash pattern.
type StrokeStyle struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dashes     []float64
	DashOffset float64
}

// DefaultStrokeStyle returns a 1-unit-wide butt-capped miter-joined
// stroke with the conventional miter limit of 4, matching most vector
// graphics toolkits' defaults.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{Width: 1, Cap: ButtCap, Join: MiterJoin, MiterLimit: 4}
}
