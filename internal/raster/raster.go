// Package raster implements the 4x4 supersampled scanline rasterizer
// described in the engine spec §4.2: edges are inserted into
// per-super-scanline buckets, swept into an active-edge table sorted by
// current X, and "on" spans are reported to a blitter callback.
//
// Per the spec's design notes (§9), the active-edge table is a
// contiguous arena of index-linked records rather than the teacher's
// (agg_go/internal/rasterizer) pointer-based cell arena — same cache
// behavior, no unsafe pointer chasing, a direct rendering of "next =
// Option<u32>" as a plain int with -1 standing in for None.
package raster

import (
	"math"

	"github.com/lumenvec/raster2d/internal/basics"
)

// Shift/Scale: both axes are quantized onto the same 1/4-pixel grid
// (SHIFT=2 bits, per §4.2's "all edge arithmetic is performed in a
// 1/4-pixel grid"). X is carried as 16.16 fixed point whose integer
// part is already a quarter-pixel column, not a device pixel — the
// same SAMPLE_SIZE-scaling the original_source rasterizer applies to
// both start.x and start.y before converting to fixed point
// (_examples/original_source/src/rasterizer.rs, add_edge). scanEdges
// rounds fullX back to the nearest quarter-pixel integer (a 1/2
// fixed-point bias, per §4.2) before handing spans to the blitter,
// which is what lets MaskSuperBlitter.BlitSpan do discrete sub-column
// accumulation instead of continuous fractional coverage.
const (
	Shift = 2
	Scale = 1 << Shift
)

const noNext = -1

type edgeRec struct {
	fullX   int64 // 16.16 fixed X at the current super-scanline
	winding int32
	y2      int // last active super-scanline index, exclusive

	isCurve bool
	slope   int64 // fixed-point dx per super-scanline (lines only)

	// Forward-difference state (curves only). nextY is 16.16 fixed,
	// expressed in super-scanline units so cur_y compares against
	// nextY>>16 directly, per spec.
	nextX, nextY   int64
	dx, ddx        int64
	dy, ddy        int64
	remaining      int
	endX           int64 // exact endpoint, used once remaining hits 0

	next int // arena link; reused for bucket list, then active list
}

// Rasterizer accumulates edges for one fill and sweeps them into
// coverage spans. Its arena is valid only between Reset() calls — no
// edge outlives a single fill, per §5.
type Rasterizer struct {
	width, height int
	buckets       []int // head index per super-scanline, noNext if empty
	arena         []edgeRec
	activeHead    int
}

// New creates a rasterizer for a width x height device buffer.
func New(width, height int) *Rasterizer {
	r := &Rasterizer{width: width, height: height}
	r.Reset()
	return r
}

// Reset clears the bucket table and arena, reclaiming all edges added
// since the last Reset.
func (r *Rasterizer) Reset() {
	n := r.height * Scale
	if cap(r.buckets) < n {
		r.buckets = make([]int, n)
	} else {
		r.buckets = r.buckets[:n]
	}
	for i := range r.buckets {
		r.buckets[i] = noNext
	}
	r.arena = r.arena[:0]
	r.activeHead = noNext
}

func (r *Rasterizer) superRows() int { return r.height * Scale }

// AddLine inserts a directed line edge. Horizontal edges and edges
// entirely above or below the canvas are rejected, per §4.2.
func (r *Rasterizer) AddLine(p0, p1 basics.Point[float64]) {
	winding := int32(1)
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
		winding = -1
	} else if p0.Y == p1.Y {
		return
	}

	y1s := p0.Y * Scale
	y2s := p1.Y * Scale
	top, bot, ok := r.clipSuperRange(y1s, y2s)
	if !ok {
		return
	}

	x1q := p0.X * Scale
	x2q := p1.X * Scale
	slope := basics.FloatToFixed((x2q - x1q) / (y2s - y1s))
	startX := basics.FloatToFixed(x1q) + slope*int64(float64(top)-y1s)

	rec := edgeRec{
		fullX:   startX,
		winding: winding,
		y2:      bot,
		slope:   slope,
		next:    noNext,
	}
	r.insert(top, rec)
}

// AddQuad inserts a directed quadratic Bezier edge. The segment must
// already be monotonic in Y (see internal/bezierflatten.SplitQuadMonotonic);
// AddQuad only handles the top/bottom orientation and winding sign.
func (r *Rasterizer) AddQuad(p0, ctrl, p1 basics.Point[float64]) {
	winding := int32(1)
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
		winding = -1
	} else if p0.Y == p1.Y {
		return
	}

	y1s := p0.Y * Scale
	y2s := p1.Y * Scale
	top, bot, ok := r.clipSuperRange(y1s, y2s)
	if !ok {
		return
	}

	shift := chooseShift(p0, ctrl, p1)
	count := 1 << uint(shift)
	dt := 1.0 / float64(count)

	// X is quantized onto the same 1/4-pixel grid as Y (see the Shift/Scale
	// doc comment above), so every control point's X is pre-scaled by
	// Scale before the forward-difference coefficients are derived.
	x0 := Scale * p0.X
	xc := Scale * ctrl.X
	x1 := Scale * p1.X
	ax := x0 - 2*xc + x1
	bx := 2 * (xc - x0)
	ay := Scale * (p0.Y - 2*ctrl.Y + p1.Y)
	by := Scale * 2 * (ctrl.Y - p0.Y)

	rec := edgeRec{
		winding:   winding,
		y2:        bot,
		isCurve:   true,
		nextX:     basics.FloatToFixed(x0),
		nextY:     basics.FloatToFixed(y1s),
		dx:        basics.FloatToFixed(ax*dt*dt + bx*dt),
		ddx:       basics.FloatToFixed(2 * ax * dt * dt),
		dy:        basics.FloatToFixed(ay*dt*dt + by*dt),
		ddy:       basics.FloatToFixed(2 * ay * dt * dt),
		remaining: count,
		endX:      basics.FloatToFixed(x1),
		next:      noNext,
	}
	// Pre-roll the forward difference from t=0 (y1s) up to the integer
	// super-scanline `top` so fullX is correct at insertion time.
	advanceCurve(&rec, top)
	r.insert(top, rec)
}

func (r *Rasterizer) clipSuperRange(y1s, y2s float64) (top, bot int, ok bool) {
	n := r.superRows()
	top = int(math.Ceil(y1s))
	bot = int(math.Ceil(y2s))
	if bot <= 0 || top >= n {
		return 0, 0, false
	}
	if top < 0 {
		top = 0
	}
	if bot > n {
		bot = n
	}
	if bot <= top {
		return 0, 0, false
	}
	return top, bot, true
}

func (r *Rasterizer) insert(bucket int, rec edgeRec) {
	rec.next = r.buckets[bucket]
	r.arena = append(r.arena, rec)
	r.buckets[bucket] = len(r.arena) - 1
}

// chooseShift picks the forward-difference subdivision depth from the
// control point's deviation off the chord, clamped to [1,6] per §4.2.
func chooseShift(p0, ctrl, p1 basics.Point[float64]) int {
	mx := (p0.X + p1.X) / 2
	my := (p0.Y + p1.Y) / 2
	dev := math.Abs(ctrl.X-mx) + math.Abs(ctrl.Y-my)/2
	shift := 1
	for float64(int(1)<<uint(shift)) < dev && shift < 6 {
		shift++
	}
	return shift
}

// advanceCurve runs the forward-difference stepper until nextY reaches
// the given integer super-scanline boundary (in fixed point), then sets
// fullX to the X of the forward-difference point it stopped at (the
// first one at or past the boundary, or the endpoint). fullX is not
// interpolated to the boundary itself.
func advanceCurve(e *edgeRec, targetSuperY int) {
	target := int64(targetSuperY) << basics.FixShift
	for e.remaining > 0 && e.nextY < target {
		e.nextX += e.dx
		e.nextY += e.dy
		e.dx += e.ddx
		e.dy += e.ddy
		e.remaining--
	}
	if e.remaining == 0 {
		e.nextX = e.endX
	}
	e.fullX = e.nextX
}

// Blit is the span callback the rasterizer reports "on" coverage to:
// superY is the absolute super-scanline index (0..height*Scale), x1/x2
// are integer quarter-pixel-grid X bounds of the span, clamped to
// [0, width*Scale), per §4.2.
type Blit func(superY int, x1, x2 int)

// roundQuarterPixel rounds a 16.16 fixed-point quarter-pixel X
// (fullX's representation, see the Shift/Scale doc comment) to the
// nearest quarter-pixel-grid integer with a 1/2 fixed-point bias, the
// same "(x + (1<<15)) >> 16" rounding original_source's scan_edges
// applies before calling blit_span.
func roundQuarterPixel(fixedX int64) int {
	return int((fixedX + (1 << 15)) >> 16)
}

// Rasterize sweeps every super-scanline, applying the winding rule to
// decide interior spans, and reports them to blit. It consumes (and
// reorders) the arena; the only allocation is the small scratch slice
// insertStartingEdges builds for each row that starts new edges.
func (r *Rasterizer) Rasterize(rule basics.WindingRule, blit Blit) {
	n := r.superRows()
	for y := 0; y < n; y++ {
		r.insertStartingEdges(y)
		r.scanEdges(y, rule, blit)
		r.stepEdges(y)
		r.sortActive()
	}
}

func (r *Rasterizer) insertStartingEdges(y int) {
	head := r.buckets[y]
	if head == noNext {
		return
	}
	// Collect the bucket's edges, insertion-sort by fullX, then merge
	// into the (already sorted) active list.
	var idxs []int
	for i := head; i != noNext; i = r.arena[i].next {
		idxs = append(idxs, i)
	}
	for i := 1; i < len(idxs); i++ {
		j := i
		for j > 0 && r.arena[idxs[j-1]].fullX > r.arena[idxs[j]].fullX {
			idxs[j-1], idxs[j] = idxs[j], idxs[j-1]
			j--
		}
	}
	for _, idx := range idxs {
		r.mergeActive(idx)
	}
}

func (r *Rasterizer) mergeActive(idx int) {
	x := r.arena[idx].fullX
	if r.activeHead == noNext || r.arena[r.activeHead].fullX > x {
		r.arena[idx].next = r.activeHead
		r.activeHead = idx
		return
	}
	cur := r.activeHead
	for r.arena[cur].next != noNext && r.arena[r.arena[cur].next].fullX <= x {
		cur = r.arena[cur].next
	}
	r.arena[idx].next = r.arena[cur].next
	r.arena[cur].next = idx
}

func (r *Rasterizer) scanEdges(y int, rule basics.WindingRule, blit Blit) {
	if blit == nil {
		return
	}
	winding := 0
	inside := false
	var prevX int
	maxX := r.width * Scale
	for i := r.activeHead; i != noNext; i = r.arena[i].next {
		e := &r.arena[i]
		if rule == basics.EvenOdd {
			inside = winding%2 != 0
		} else {
			inside = winding != 0
		}
		xq := roundQuarterPixel(e.fullX)
		if inside {
			x1, x2 := prevX, xq
			if x1 < 0 {
				x1 = 0
			}
			if x2 > maxX {
				x2 = maxX
			}
			if x2 > x1 {
				blit(y, x1, x2)
			}
		}
		winding += int(e.winding)
		prevX = xq
	}
}

func (r *Rasterizer) stepEdges(y int) {
	var newHead = noNext
	var tail int = noNext
	for i := r.activeHead; i != noNext; {
		e := &r.arena[i]
		next := e.next
		if y+1 >= e.y2 {
			i = next
			continue
		}
		if e.isCurve {
			advanceCurve(e, y+1)
		} else {
			e.fullX += e.slope
		}
		e.next = noNext
		if newHead == noNext {
			newHead = i
		} else {
			r.arena[tail].next = i
		}
		tail = i
		i = next
	}
	r.activeHead = newHead
}

// sortActive re-sorts the active list by fullX with a bubble sort,
// chosen (per §4.2) because the list is nearly sorted frame to frame.
func (r *Rasterizer) sortActive() {
	if r.activeHead == noNext {
		return
	}
	swapped := true
	for swapped {
		swapped = false
		prev := noNext
		cur := r.activeHead
		for cur != noNext && r.arena[cur].next != noNext {
			nxt := r.arena[cur].next
			if r.arena[cur].fullX > r.arena[nxt].fullX {
				r.arena[cur].next = r.arena[nxt].next
				r.arena[nxt].next = cur
				if prev == noNext {
					r.activeHead = nxt
				} else {
					r.arena[prev].next = nxt
				}
				prev = nxt
				swapped = true
			} else {
				prev = cur
				cur = nxt
			}
		}
	}
}
