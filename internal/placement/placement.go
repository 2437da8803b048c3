package placement

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPlacement is returned by ParseStrict for labels that don't name a side.
var ErrUnknownPlacement = errors.New("unknown placement")

// Side is the anchor edge the floating box sits against.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// IsVertical returns true for top and bottom, where the main axis is y.
func (s Side) IsVertical() bool {
	return s == SideTop || s == SideBottom
}

// Opposite returns the side across the anchor.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	}
	return SideTop
}

func (s Side) valid() bool {
	switch s {
	case SideTop, SideBottom, SideLeft, SideRight:
		return true
	}
	return false
}

// Align positions the floating box along the anchor edge.
type Align string

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

func (a Align) valid() bool {
	switch a {
	case AlignStart, AlignCenter, AlignEnd:
		return true
	}
	return false
}

// Placement is a side with an optional alignment, e.g. "bottom" or "top-start".
// A bare side implies center alignment.
type Placement string

const (
	Top         Placement = "top"
	TopStart    Placement = "top-start"
	TopEnd      Placement = "top-end"
	Bottom      Placement = "bottom"
	BottomStart Placement = "bottom-start"
	BottomEnd   Placement = "bottom-end"
	Left        Placement = "left"
	LeftStart   Placement = "left-start"
	LeftEnd     Placement = "left-end"
	Right       Placement = "right"
	RightStart  Placement = "right-start"
	RightEnd    Placement = "right-end"
)

// DefaultPlacement is used when a placement names no known side.
const DefaultPlacement = Bottom

// All lists the twelve canonical placements.
var All = []Placement{
	Top, TopStart, TopEnd,
	Bottom, BottomStart, BottomEnd,
	Left, LeftStart, LeftEnd,
	Right, RightStart, RightEnd,
}

// split decomposes the label without applying defaults.
func (p Placement) split() (Side, Align) {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	side, align, _ := strings.Cut(s, "-")
	return Side(side), Align(align)
}

// Side returns the placement's side, or SideBottom if the label names no known side.
func (p Placement) Side() Side {
	side, _ := p.split()
	if !side.valid() {
		return DefaultPlacement.Side()
	}
	return side
}

// Align returns the placement's alignment, or AlignCenter if absent or unknown.
func (p Placement) Align() Align {
	_, align := p.split()
	if !align.valid() {
		return AlignCenter
	}
	return align
}

// Opposite returns the placement on the other side of the anchor with the same alignment.
func (p Placement) Opposite() Placement {
	return Join(p.Side().Opposite(), p.Align())
}

// Canonical returns the normalized label for p.
func (p Placement) Canonical() Placement {
	return Join(p.Side(), p.Align())
}

func (p Placement) String() string {
	return string(p)
}

// Join builds the canonical placement for a side and alignment.
// Center alignment is written as the bare side.
func Join(side Side, align Align) Placement {
	if !side.valid() {
		side = DefaultPlacement.Side()
	}
	if !align.valid() || align == AlignCenter {
		return Placement(side)
	}
	return Placement(string(side) + "-" + string(align))
}

// Parse normalizes a placement label. It never fails: an unknown side becomes
// bottom and an unknown alignment becomes center.
func Parse(s string) Placement {
	return Placement(s).Canonical()
}

// ParseStrict is like Parse but rejects labels whose side or alignment is unknown.
// "bottom-center" is accepted and normalized to "bottom".
func ParseStrict(s string) (Placement, error) {
	side, align := Placement(s).split()
	if !side.valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlacement, s)
	}
	if align != "" && !align.valid() {
		return "", fmt.Errorf("%w: %q has alignment %q", ErrUnknownPlacement, s, align)
	}
	return Join(side, align), nil
}
