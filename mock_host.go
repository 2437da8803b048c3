package floating

import (
	"sync"
	"time"

	"github.com/grindlemire/go-floating/internal/notify"
)

// MockHost is an in-memory Host for testing.
// Queued updates are held until Drain or WaitDrain runs them, which makes the
// calling goroutine the UI thread.
type MockHost struct {
	mu        sync.RWMutex
	size      Size
	listeners notify.List[ViewportEvent]
	queue     chan func()
}

// Ensure MockHost implements Host.
var _ Host = (*MockHost)(nil)

// NewMockHost creates a mock host with the given viewport size.
func NewMockHost(width, height float64) *MockHost {
	return &MockHost{
		size:  Size{Width: width, Height: height},
		queue: make(chan func(), 1024),
	}
}

// Viewport returns the current viewport size.
func (h *MockHost) Viewport() Size {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.size
}

// OnViewport registers fn for viewport events.
func (h *MockHost) OnViewport(fn func(ViewportEvent)) (cancel func()) {
	return h.listeners.Add(fn)
}

// QueueUpdate holds fn until the next Drain. Updates beyond the queue
// capacity are dropped.
func (h *MockHost) QueueUpdate(fn func()) {
	select {
	case h.queue <- fn:
	default:
	}
}

// Resize changes the viewport size and notifies listeners.
func (h *MockHost) Resize(width, height float64) {
	h.mu.Lock()
	h.size = Size{Width: width, Height: height}
	h.mu.Unlock()
	h.listeners.Emit(ViewportEvent{Kind: ViewportResize})
}

// Scroll reports a scroll. A nil source is a window scroll.
func (h *MockHost) Scroll(source Element) {
	h.listeners.Emit(ViewportEvent{Kind: ViewportScroll, Source: source})
}

// Attach makes every scroll inside root's tree a captured viewport scroll.
func (h *MockHost) Attach(root *Node) {
	root.SetOnScrollCapture(func(n *Node) {
		h.Scroll(n)
	})
}

// Listeners returns the number of registered viewport listeners.
func (h *MockHost) Listeners() int {
	return h.listeners.Len()
}

// Pending returns the number of queued updates.
func (h *MockHost) Pending() int {
	return len(h.queue)
}

// Drain runs every queued update, including ones queued while draining.
// Returns the number of updates run.
func (h *MockHost) Drain() int {
	n := 0
	for {
		select {
		case fn := <-h.queue:
			fn()
			n++
		default:
			return n
		}
	}
}

// WaitDrain runs queued updates until n have run or timeout elapses.
// Returns the number of updates run.
func (h *MockHost) WaitDrain(n int, timeout time.Duration) int {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	ran := 0
	for ran < n {
		select {
		case fn := <-h.queue:
			fn()
			ran++
		case <-deadline.C:
			return ran
		}
	}
	return ran
}
