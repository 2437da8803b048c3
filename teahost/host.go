package teahost

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	floating "github.com/grindlemire/go-floating"
	"github.com/grindlemire/go-floating/internal/debug"
	"github.com/grindlemire/go-floating/internal/notify"
)

// flushMsg wakes the model so queued updates run inside Update.
type flushMsg struct{}

// Host implements floating.Host for a bubbletea program. The program's
// Update goroutine is the UI thread.
type Host struct {
	root *floating.Node

	mu      sync.Mutex
	size    floating.Size
	pending []func()
	send    func(tea.Msg)

	viewport   notify.List[floating.ViewportEvent]
	scrollStep float64
}

// Ensure Host implements floating.Host.
var _ floating.Host = (*Host)(nil)

// NewHost creates a host with an initial viewport size. The size is replaced
// by the first tea.WindowSizeMsg.
func NewHost(width, height int) *Host {
	h := &Host{
		size:       floating.Size{Width: float64(width), Height: float64(height)},
		root:       floating.NewNode(floating.NewRect(0, 0, float64(width), float64(height)), floating.WithName("window")),
		scrollStep: 1,
	}
	h.root.SetOnScrollCapture(func(n *floating.Node) {
		h.viewport.Emit(floating.ViewportEvent{Kind: floating.ViewportScroll, Source: n})
	})
	return h
}

// Attach connects the host to a running program so queued updates wake it.
// Call it before p.Run.
func (h *Host) Attach(p *tea.Program) {
	h.attach(p.Send)
}

func (h *Host) attach(send func(tea.Msg)) {
	h.mu.Lock()
	h.send = send
	wake := len(h.pending) > 0
	h.mu.Unlock()

	if wake {
		go send(flushMsg{})
	}
}

// Root returns the node covering the whole window.
func (h *Host) Root() *floating.Node {
	return h.root
}

// Viewport returns the window size in cells.
func (h *Host) Viewport() floating.Size {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.size
}

// OnViewport registers fn for window resizes and captured scrolls.
func (h *Host) OnViewport(fn func(floating.ViewportEvent)) (cancel func()) {
	return h.viewport.Add(fn)
}

// QueueUpdate schedules fn to run in the model's next Update.
// Safe to call from any goroutine, including Update itself.
func (h *Host) QueueUpdate(fn func()) {
	h.mu.Lock()
	h.pending = append(h.pending, fn)
	wake := len(h.pending) == 1 && h.send != nil
	send := h.send
	h.mu.Unlock()

	// Program.Send blocks until Update reads it, so never call it inline.
	if wake {
		go send(flushMsg{})
	}
}

// Pending returns the number of queued updates.
func (h *Host) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pending)
}

// Update applies msg to the host. Window sizes update the viewport and are
// still returned as unhandled so the model can lay itself out. Wheel events
// scroll the deepest scroll container under the pointer.
// Returns true if the model should not process msg further.
func (h *Host) Update(msg tea.Msg) (handled bool, cmd tea.Cmd) {
	switch msg := msg.(type) {
	case flushMsg:
		h.flush()
		return true, nil

	case tea.WindowSizeMsg:
		h.mu.Lock()
		h.size = floating.Size{Width: float64(msg.Width), Height: float64(msg.Height)}
		h.mu.Unlock()
		h.root.SetRect(floating.NewRect(0, 0, float64(msg.Width), float64(msg.Height)))
		h.viewport.Emit(floating.ViewportEvent{Kind: floating.ViewportResize})
		debug.Log("teahost: resize %dx%d", msg.Width, msg.Height)
		return false, nil

	case tea.MouseMsg:
		return h.scroll(msg), nil
	}
	return false, nil
}

// flush runs every queued update, including ones queued while flushing.
func (h *Host) flush() {
	for {
		h.mu.Lock()
		batch := h.pending
		h.pending = nil
		h.mu.Unlock()

		if len(batch) == 0 {
			return
		}
		for _, fn := range batch {
			fn()
		}
	}
}

func (h *Host) scroll(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	var dx, dy float64
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		dy = -h.scrollStep
	case tea.MouseButtonWheelDown:
		dy = h.scrollStep
	case tea.MouseButtonWheelLeft:
		dx = -h.scrollStep
	case tea.MouseButtonWheelRight:
		dx = h.scrollStep
	default:
		return false
	}

	target := h.root.ScrollContainerAt(float64(msg.X), float64(msg.Y))
	if target == nil {
		return false
	}
	target.ScrollBy(dx, dy)
	return true
}
