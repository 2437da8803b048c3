package floating

import (
	"fmt"

	"github.com/grindlemire/go-floating/internal/notify"
)

var (
	_ Element    = (*Node)(nil)
	_ Observable = (*Node)(nil)
)

// Node is an in-memory element tree usable as a geometry source.
// Terminal hosts and tests build their anchors, floating panels and scroll
// containers out of Nodes.
//
// A Node's rect is its layout box before scrolling. BoundingRect shifts it by
// the scroll offset of every scrolling ancestor, the way a browser reports a
// scrolled element's client rect.
//
// Nodes are not safe for concurrent mutation; mutate them on the UI thread.
type Node struct {
	name     string
	children []*Node
	parent   *Node

	rect     Rect
	overflow OverflowMode
	scrollX  float64
	scrollY  float64

	resize notify.List[struct{}]
	scroll notify.List[struct{}]

	// Set on the root only; receives every scroll in the tree.
	onScrollCapture func(*Node)
}

// NodeOption configures a Node.
type NodeOption func(*Node)

// WithName labels the node for debugging.
func WithName(name string) NodeOption {
	return func(n *Node) {
		n.name = name
	}
}

// WithOverflow sets the node's overflow mode.
func WithOverflow(mode OverflowMode) NodeOption {
	return func(n *Node) {
		n.overflow = mode
	}
}

// NewNode creates a detached Node with the given layout rect.
func NewNode(rect Rect, opts ...NodeOption) *Node {
	n := &Node{rect: rect.Normalize()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Node) String() string {
	if n.name != "" {
		return n.name
	}
	return fmt.Sprintf("node(%v,%v %vx%v)", n.rect.Left, n.rect.Top, n.rect.Width, n.rect.Height)
}

// Name returns the node's label.
func (n *Node) Name() string {
	return n.name
}

// --- Tree ---

// AddChild appends children to this node.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = n
		n.children = append(n.children, child)
	}
}

// RemoveChild detaches child from this node.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Children returns the child nodes.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent element, or nil if this is the root.
func (n *Node) Parent() Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// ParentNode returns the parent as a *Node.
func (n *Node) ParentNode() *Node {
	return n.parent
}

// Root returns the topmost ancestor.
func (n *Node) Root() *Node {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Walk calls fn for this node and every descendant, depth first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// --- Geometry ---

// Rect returns the layout rect, before ancestor scrolling.
func (n *Node) Rect() Rect {
	return n.rect
}

// SetRect moves and resizes the node. Resize observers run only if the size changed.
func (n *Node) SetRect(r Rect) {
	r = r.Normalize()
	resized := r.Width != n.rect.Width || r.Height != n.rect.Height
	n.rect = r
	if resized {
		n.resize.Emit(struct{}{})
	}
}

// SetSize resizes the node in place.
func (n *Node) SetSize(width, height float64) {
	n.SetRect(NewRect(n.rect.Left, n.rect.Top, width, height))
}

// BoundingRect returns the viewport-relative rect after ancestor scrolling.
func (n *Node) BoundingRect() Rect {
	r := n.rect
	for p := n.parent; p != nil; p = p.parent {
		if p.overflow.Scrolls() {
			r = r.Translate(-p.scrollX, -p.scrollY)
		}
	}
	return r
}

// Overflow returns the node's overflow mode.
func (n *Node) Overflow() OverflowMode {
	return n.overflow
}

// SetOverflow changes the node's overflow mode.
func (n *Node) SetOverflow(mode OverflowMode) {
	n.overflow = mode
}

// --- Scrolling ---

// ScrollOffset returns the current scroll position.
func (n *Node) ScrollOffset() Point {
	return Point{X: n.scrollX, Y: n.scrollY}
}

// ScrollBy scrolls the node's content by (dx, dy). Offsets never go below zero.
// Scrolling a node whose overflow doesn't scroll is a no-op.
func (n *Node) ScrollBy(dx, dy float64) {
	n.ScrollTo(n.scrollX+dx, n.scrollY+dy)
}

// ScrollTo sets the scroll position and notifies scroll observers if it changed.
func (n *Node) ScrollTo(x, y float64) {
	if !n.overflow.Scrolls() {
		return
	}
	x, y = max(x, 0), max(y, 0)
	if x == n.scrollX && y == n.scrollY {
		return
	}
	n.scrollX, n.scrollY = x, y
	n.scroll.Emit(struct{}{})

	if root := n.Root(); root.onScrollCapture != nil {
		root.onScrollCapture(n)
	}
}

// SetOnScrollCapture sets a callback on the root that runs for every scroll in
// the tree. Hosts use it to report nested scrolls as viewport scroll events.
func (n *Node) SetOnScrollCapture(fn func(*Node)) {
	n.onScrollCapture = fn
}

// --- Observation ---

// OnResize registers fn to run when the node's size changes.
func (n *Node) OnResize(fn func()) (cancel func()) {
	return n.resize.Add(notify.Signal(fn))
}

// OnScroll registers fn to run when the node scrolls.
func (n *Node) OnScroll(fn func()) (cancel func()) {
	return n.scroll.Add(notify.Signal(fn))
}

// Observers returns the number of registered resize and scroll observers.
func (n *Node) Observers() int {
	return n.resize.Len() + n.scroll.Len()
}

// --- Hit testing ---

// NodeAt finds the deepest node whose bounding rect contains (x, y).
// Returns nil if no node contains the point.
// Children are checked in reverse order since the last child draws on top.
func (n *Node) NodeAt(x, y float64) *Node {
	if !n.BoundingRect().Contains(x, y) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := n.children[i].NodeAt(x, y); hit != nil {
			return hit
		}
	}
	return n
}

// ScrollContainerAt returns the deepest scrolling node under (x, y), or nil.
func (n *Node) ScrollContainerAt(x, y float64) *Node {
	for hit := n.NodeAt(x, y); hit != nil; hit = hit.parent {
		if hit.overflow.Scrolls() {
			return hit
		}
	}
	return nil
}
