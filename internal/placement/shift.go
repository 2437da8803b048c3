package placement

import "github.com/grindlemire/go-floating/internal/geom"

// Shift pulls a resolved position back inside the padded viewport.
//
// It is a no-op when shift is disabled or nothing overflows. Otherwise each
// axis is handled on its own: a box larger than the padded viewport on that
// axis is pinned to the padding edge, and a box that fits is clamped into
// [padding, viewport-size-padding].
func Shift(pos geom.Point, floating, viewport geom.Size, padding float64, overflow Overflow, shift bool) geom.Point {
	if !shift || overflow.Total == 0 {
		return pos
	}
	return geom.Point{
		X: shiftAxis(pos.X, floating.Width, viewport.Width, padding),
		Y: shiftAxis(pos.Y, floating.Height, viewport.Height, padding),
	}
}

func shiftAxis(coord, size, viewport, padding float64) float64 {
	maxAvailable := viewport - 2*padding
	if size > maxAvailable {
		return padding
	}
	upper := max(padding, viewport-size-padding)
	return min(max(coord, padding), upper)
}
