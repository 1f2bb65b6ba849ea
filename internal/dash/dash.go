// Package dash splits a polyline into on/off runs following a dash
// pattern, the vertex generator named in the engine spec's dash
// pipeline (§4.1). Grounded on the teacher's vcgen/dash.go: cycling
// dash-index/remaining-length state, doubling an odd-length pattern so
// on/off always alternates, and reducing the starting offset modulo
// the pattern's total length before walking the path.
package dash

import (
	"math"

	"github.com/lumenvec/raster2d/internal/basics"
)

type Point = basics.Point[float64]

// Subpath is an on-run produced by Split: always open, since breaking
// a closed contour into dashes generally yields open arcs.
type Subpath struct {
	Pts []Point
}

// Pattern is the dash lengths (alternating on/off) and starting offset.
type Pattern struct {
	Dashes []float64
	Offset float64
}

// Split walks pts (closing the loop back to pts[0] first if closed) and
// returns one Subpath per "on" run. For a closed path whose dash state
// is "on" both at the start point and at the end of the walk (which is
// the same point), the leading and trailing runs are really one dash
// that wraps across the seam: they are stitched into a single Subpath
// instead of being emitted as two separate fragments.
func Split(pts []Point, closed bool, pattern Pattern) []Subpath {
	dashes := pattern.Dashes
	if len(dashes)%2 != 0 {
		dashes = append(append([]float64{}, dashes...), dashes...)
	}
	total := 0.0
	for _, d := range dashes {
		total += d
	}
	if total <= 0 || len(dashes) == 0 {
		return []Subpath{{Pts: pts}}
	}

	idx, remaining := startState(dashes, pattern.Offset, total)
	on := idx%2 == 0

	var out []Subpath
	var cur []Point
	// initial holds the leading on-run when the path is closed and
	// starts "on": it is withheld from out until we know whether the
	// walk ends off (initial is a dash on its own) or still on (initial
	// stitches onto the trailing run across the seam).
	var initial []Point
	haveInitial := closed && on && len(pts) > 1
	first := true
	if on {
		cur = append(cur, pts[0])
	}

	walk := pts
	if closed && len(pts) > 1 {
		walk = append(append([]Point{}, pts...), pts[0])
	}

	for i := 0; i < len(walk)-1; i++ {
		a, b := walk[i], walk[i+1]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		for pos < segLen {
			step := remaining
			if pos+step > segLen {
				step = segLen - pos
			}
			pos += step
			remaining -= step
			at := lerp(a, b, pos/segLen)
			if on {
				cur = append(cur, at)
			}
			if remaining <= 1e-9 {
				if on && len(cur) > 1 {
					if first && haveInitial {
						initial = cur
					} else {
						out = append(out, Subpath{Pts: cur})
					}
				}
				first = false
				idx = (idx + 1) % len(dashes)
				remaining = dashes[idx]
				on = !on
				if on {
					cur = []Point{at}
				} else {
					cur = nil
				}
			}
		}
	}

	switch {
	case on && len(cur) > 1 && haveInitial && !first:
		// The trailing run is still open at the seam and the leading
		// run was withheld: they are the same dash, wrapping around
		// pts[0]. cur's last point and initial's first point are both
		// pts[0]; drop the duplicate when joining.
		stitched := append(append([]Point{}, cur...), initial[1:]...)
		out = append(out, Subpath{Pts: stitched})
	case on && len(cur) > 1:
		// Either an ordinary open-ended trailing run, or a single dash
		// that never switched off at all (first is still true, so
		// initial was never split out of cur).
		out = append(out, Subpath{Pts: cur})
	case haveInitial && len(initial) > 1:
		// The leading run ended off before the walk finished and never
		// got a chance to stitch with a trailing run: emit it on its
		// own.
		out = append(out, Subpath{Pts: initial})
	}
	return out
}

func lerp(a, b Point, t float64) Point {
	return Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// startState reduces offset modulo total and advances through the dash
// array to find the (index, remaining-length) pair the walk begins in.
func startState(dashes []float64, offset, total float64) (int, float64) {
	off := math.Mod(offset, total)
	if off < 0 {
		off += total
	}
	idx := 0
	remaining := dashes[0]
	for off > 0 {
		if off < remaining {
			remaining -= off
			off = 0
		} else {
			off -= remaining
			idx = (idx + 1) % len(dashes)
			remaining = dashes[idx]
		}
	}
	return idx, remaining
}
