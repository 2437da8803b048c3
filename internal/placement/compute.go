package placement

import "github.com/grindlemire/go-floating/internal/geom"

// Input is everything one positioning pass needs.
type Input struct {
	Anchor    geom.Rect
	Floating  geom.Size
	Viewport  geom.Size
	Placement Placement
	Offset    float64
	Padding   float64
	Flip      bool
	Shift     bool
}

// Output is the result of one positioning pass.
type Output struct {
	// Placement is the resolved placement, which differs from the requested
	// one when the resolver flipped.
	Placement Placement
	// Coords is the final top-left position after shifting.
	Coords geom.Point
	// Overflow is the overflow of the resolved placement before shifting.
	Overflow Overflow
	Flipped  bool
	Shifted  bool
}

// Compute runs the calculator, resolver and shift stages for in.
func Compute(in Input) Output {
	padding := max(in.Padding, 0)
	res := Resolve(in.Anchor, in.Floating, in.Viewport, in.Placement, in.Offset, padding, in.Flip)
	coords := Shift(res.Coords, in.Floating, in.Viewport, padding, res.Overflow, in.Shift)
	return Output{
		Placement: res.Placement,
		Coords:    coords,
		Overflow:  res.Overflow,
		Flipped:   res.Flipped,
		Shifted:   coords != res.Coords,
	}
}
