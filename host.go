package floating

// ViewportEventKind distinguishes viewport resizes from scrolls.
type ViewportEventKind int

const (
	// ViewportResize is sent when the window or terminal changes size.
	ViewportResize ViewportEventKind = iota
	// ViewportScroll is sent when the window, or with capture any element inside it, scrolls.
	ViewportScroll
)

func (k ViewportEventKind) String() string {
	switch k {
	case ViewportResize:
		return "resize"
	case ViewportScroll:
		return "scroll"
	}
	return "unknown"
}

// ViewportEvent describes a change to the viewport.
type ViewportEvent struct {
	Kind ViewportEventKind
	// Source is the scrolled element for a captured nested scroll, or nil
	// when the window itself changed.
	Source Element
}

// Host is the UI runtime the engine runs inside.
type Host interface {
	// Viewport returns the current viewport size.
	Viewport() Size

	// OnViewport registers fn for viewport resizes and scrolls.
	// Hosts that can see nested scrolls report them with a non-nil Source.
	OnViewport(fn func(ViewportEvent)) (cancel func())

	// QueueUpdate schedules fn to run on the UI thread.
	// Safe to call from any goroutine.
	QueueUpdate(fn func())
}
