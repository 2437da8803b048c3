package floating

// OverflowMode is how an element treats content larger than its box.
type OverflowMode int

const (
	// OverflowVisible lets content spill out (default).
	OverflowVisible OverflowMode = iota
	// OverflowHidden clips content without scrolling.
	OverflowHidden
	// OverflowAuto scrolls when content exceeds the box.
	OverflowAuto
	// OverflowScroll always scrolls.
	OverflowScroll
	// OverflowOverlay scrolls with scrollbars drawn over the content.
	OverflowOverlay
)

// Scrolls returns true for the modes that make an element a scroll container.
func (m OverflowMode) Scrolls() bool {
	switch m {
	case OverflowAuto, OverflowScroll, OverflowOverlay:
		return true
	}
	return false
}

func (m OverflowMode) String() string {
	switch m {
	case OverflowVisible:
		return "visible"
	case OverflowHidden:
		return "hidden"
	case OverflowAuto:
		return "auto"
	case OverflowScroll:
		return "scroll"
	case OverflowOverlay:
		return "overlay"
	}
	return "unknown"
}

// Element is a node in a host's element tree that the engine can measure.
type Element interface {
	// BoundingRect returns the element's current viewport-relative box.
	// It must reflect layout, not visual transforms.
	BoundingRect() Rect

	// Parent returns the enclosing element, or nil at the root.
	// Implementations must return an untyped nil, not a typed nil pointer.
	Parent() Element

	// Overflow returns the element's overflow mode.
	Overflow() OverflowMode
}

// Observable is implemented by elements that can report their own changes.
// Elements that aren't observable are polled instead.
type Observable interface {
	// OnResize registers fn to run when the element's size changes.
	OnResize(fn func()) (cancel func())

	// OnScroll registers fn to run when the element's content scrolls.
	OnScroll(fn func()) (cancel func())
}

// FindScrollAncestors walks up from el and returns every ancestor whose
// overflow mode scrolls, nearest first. el itself is not included.
func FindScrollAncestors(el Element) []Element {
	if el == nil {
		return nil
	}
	var out []Element
	for p := el.Parent(); p != nil; p = p.Parent() {
		if p.Overflow().Scrolls() {
			out = append(out, p)
		}
	}
	return out
}
