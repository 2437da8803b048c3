// geometry.go re-exports the geometry types from internal/geom and internal/placement.
// Any changes to those types must be mirrored here.
package floating

import (
	"github.com/grindlemire/go-floating/internal/geom"
	"github.com/grindlemire/go-floating/internal/placement"
)

// Rect is an axis-aligned box in viewport coordinates.
type Rect = geom.Rect

// Size represents a width/height pair.
type Size = geom.Size

// Point represents an x/y coordinate.
type Point = geom.Point

// Side is the anchor edge a floating box sits against.
type Side = placement.Side

const (
	SideTop    = placement.SideTop
	SideBottom = placement.SideBottom
	SideLeft   = placement.SideLeft
	SideRight  = placement.SideRight
)

// Align positions a floating box along the anchor edge.
type Align = placement.Align

const (
	AlignStart  = placement.AlignStart
	AlignCenter = placement.AlignCenter
	AlignEnd    = placement.AlignEnd
)

// Placement is a side with an optional alignment.
type Placement = placement.Placement

const (
	Top         = placement.Top
	TopStart    = placement.TopStart
	TopEnd      = placement.TopEnd
	Bottom      = placement.Bottom
	BottomStart = placement.BottomStart
	BottomEnd   = placement.BottomEnd
	Left        = placement.Left
	LeftStart   = placement.LeftStart
	LeftEnd     = placement.LeftEnd
	Right       = placement.Right
	RightStart  = placement.RightStart
	RightEnd    = placement.RightEnd
)

// Overflow is the per-edge overflow of a candidate position.
type Overflow = placement.Overflow

// ErrUnknownPlacement is returned by ParsePlacementStrict.
var ErrUnknownPlacement = placement.ErrUnknownPlacement

// NewRect creates a Rect from its top-left corner and dimensions.
func NewRect(left, top, width, height float64) Rect {
	return geom.NewRect(left, top, width, height)
}

// RectFromEdges creates a Rect from its four edges.
func RectFromEdges(left, top, right, bottom float64) Rect {
	return geom.RectFromEdges(left, top, right, bottom)
}

// PointRect creates a zero-size Rect at (x, y), e.g. a text cursor position.
func PointRect(x, y float64) Rect {
	return geom.PointRect(x, y)
}

// ParsePlacement normalizes a placement label, degrading unknown sides to
// bottom and unknown alignments to center.
func ParsePlacement(s string) Placement {
	return placement.Parse(s)
}

// ParsePlacementStrict is like ParsePlacement but rejects unknown labels.
func ParsePlacementStrict(s string) (Placement, error) {
	return placement.ParseStrict(s)
}
