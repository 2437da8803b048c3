package geom

// Rect is an axis-aligned box in viewport coordinates.
//
// The edge fields are redundant with the origin and size so callers can read
// whichever they need without recomputing. Rects built with NewRect or
// RectFromEdges always satisfy Right == Left+Width and Bottom == Top+Height.
// A Rect with zero width and height is a point.
type Rect struct {
	Top    float64
	Left   float64
	Right  float64
	Bottom float64
	Width  float64
	Height float64
}

// NewRect creates a Rect from its top-left corner and dimensions.
// Negative dimensions are clamped to zero.
func NewRect(left, top, width, height float64) Rect {
	width = max(width, 0)
	height = max(height, 0)
	return Rect{
		Top:    top,
		Left:   left,
		Right:  left + width,
		Bottom: top + height,
		Width:  width,
		Height: height,
	}
}

// RectFromEdges creates a Rect from its four edges.
// If right < left (or bottom < top) the rect collapses to zero width (height).
func RectFromEdges(left, top, right, bottom float64) Rect {
	return NewRect(left, top, right-left, bottom-top)
}

// PointRect creates a zero-size Rect at (x, y).
func PointRect(x, y float64) Rect {
	return NewRect(x, y, 0, 0)
}

// Normalize makes the edge and size fields agree on rects assembled field by
// field. A non-zero Width or Height wins; a zero one is taken from the
// Right or Bottom edge when that edge lies past Left or Top.
func (r Rect) Normalize() Rect {
	w, h := r.Width, r.Height
	if w == 0 && r.Right > r.Left {
		w = r.Right - r.Left
	}
	if h == 0 && r.Bottom > r.Top {
		h = r.Bottom - r.Top
	}
	return NewRect(r.Left, r.Top, w, h)
}

// Size returns the rect's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.Left, Y: r.Top}
}

// IsPoint returns true if the rect has zero area.
func (r Rect) IsPoint() bool {
	return r.Width <= 0 && r.Height <= 0
}

// Contains returns true if (x, y) lies inside the rect.
// Points on the left and top edges are inside; the right and bottom edges are outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return NewRect(r.Left+dx, r.Top+dy, r.Width, r.Height)
}

// Intersect returns the overlap of two rects, or the zero Rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := max(r.Left, other.Left)
	top := max(r.Top, other.Top)
	right := min(r.Right, other.Right)
	bottom := min(r.Bottom, other.Bottom)
	if right <= left || bottom <= top {
		return Rect{}
	}
	return RectFromEdges(left, top, right, bottom)
}
