package placement

import "github.com/grindlemire/go-floating/internal/geom"

// Resolution is the placement chosen by Resolve along with its coordinates and overflow.
type Resolution struct {
	Placement Placement
	Coords    geom.Point
	Overflow  Overflow
	Flipped   bool
}

// Resolve picks between the preferred placement and its opposite.
//
// With flip disabled the preferred placement always wins. Otherwise the
// opposite wins only if its total overflow is strictly less; equal overflow
// keeps the preferred placement so a box squeezed on both sides doesn't
// oscillate between them.
func Resolve(anchor geom.Rect, floating, viewport geom.Size, preferred Placement, offset, padding float64, flip bool) Resolution {
	preferred = preferred.Canonical()
	pos := Coords(anchor, floating, preferred, offset)
	res := Resolution{
		Placement: preferred,
		Coords:    pos,
		Overflow:  DetectOverflow(pos, floating, viewport, padding),
	}
	if !flip {
		return res
	}

	opposite := preferred.Opposite()
	oppPos := Coords(anchor, floating, opposite, offset)
	oppOverflow := DetectOverflow(oppPos, floating, viewport, padding)
	if oppOverflow.Total < res.Overflow.Total {
		return Resolution{
			Placement: opposite,
			Coords:    oppPos,
			Overflow:  oppOverflow,
			Flipped:   true,
		}
	}
	return res
}
