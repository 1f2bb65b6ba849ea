package basics

// LineCap enumerates stroke end-cap styles.
type LineCap int

const (
	ButtCap LineCap = iota
	SquareCap
	RoundCap
)

// LineJoin enumerates stroke corner-join styles.
type LineJoin int

const (
	BevelJoin LineJoin = iota
	MiterJoin
	RoundJoin
)

// WindingRule selects the interior test applied by the rasterizer.
type WindingRule int

const (
	NonZero WindingRule = iota
	EvenOdd
)

// Spread enumerates gradient wrap behavior beyond [0,1].
type Spread int

const (
	SpreadPad Spread = iota
	SpreadRepeat
	SpreadReflect
)

// Extend enumerates image source wrap behavior.
type Extend int

const (
	ExtendPad Extend = iota
	ExtendRepeat
)

// FilterMode selects image sampling.
type FilterMode int

const (
	FilterNearest FilterMode = iota
	FilterBilinear
)
