package placement

import "github.com/grindlemire/go-floating/internal/geom"

// Coords returns the top-left position of a floating box of the given size
// placed against anchor. offset is the main-axis gap between the two boxes.
//
// The main axis is perpendicular to the anchor edge named by the side; the
// cross axis runs along it and is positioned by the alignment.
func Coords(anchor geom.Rect, floating geom.Size, p Placement, offset float64) geom.Point {
	side, align := p.Side(), p.Align()

	var pos geom.Point
	switch side {
	case SideTop:
		pos.Y = anchor.Top - floating.Height - offset
	case SideBottom:
		pos.Y = anchor.Bottom + offset
	case SideLeft:
		pos.X = anchor.Left - floating.Width - offset
	case SideRight:
		pos.X = anchor.Right + offset
	}

	if side.IsVertical() {
		pos.X = crossStart(anchor.Left, anchor.Right, anchor.Width, floating.Width, align)
	} else {
		pos.Y = crossStart(anchor.Top, anchor.Bottom, anchor.Height, floating.Height, align)
	}
	return pos
}

// crossStart positions a span of length size along an anchor span [start, end).
func crossStart(start, end, length, size float64, align Align) float64 {
	switch align {
	case AlignStart:
		return start
	case AlignEnd:
		return end - size
	default:
		return start + (length-size)/2
	}
}
