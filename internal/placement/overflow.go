package placement

import "github.com/grindlemire/go-floating/internal/geom"

// Overflow is how far a floating box would extend past each edge of the padded
// viewport. Every edge is >= 0; Total is their sum and is what the resolver
// compares.
type Overflow struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
	Total  float64
}

// Fits returns true if the box overflows no edge.
func (o Overflow) Fits() bool {
	return o.Total == 0
}

// DetectOverflow scores a candidate position against the viewport shrunk by padding on every side.
func DetectOverflow(pos geom.Point, floating, viewport geom.Size, padding float64) Overflow {
	o := Overflow{
		Left:   max(0, padding-pos.X),
		Right:  max(0, pos.X+floating.Width-(viewport.Width-padding)),
		Top:    max(0, padding-pos.Y),
		Bottom: max(0, pos.Y+floating.Height-(viewport.Height-padding)),
	}
	o.Total = o.Left + o.Right + o.Top + o.Bottom
	return o
}
