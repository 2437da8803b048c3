package teahost

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	floating "github.com/grindlemire/go-floating"
)

func TestHost_WindowSize(t *testing.T) {
	h := NewHost(80, 24)

	var events []floating.ViewportEvent
	cancel := h.OnViewport(func(ev floating.ViewportEvent) { events = append(events, ev) })
	defer cancel()

	handled, cmd := h.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if handled || cmd != nil {
		t.Errorf("Update(WindowSizeMsg) = (%v, %v), want unhandled so the model sees it", handled, cmd)
	}
	if got := h.Viewport(); got != (floating.Size{Width: 120, Height: 40}) {
		t.Errorf("Viewport() = %+v, want 120x40", got)
	}
	if got := h.Root().Rect(); got != floating.NewRect(0, 0, 120, 40) {
		t.Errorf("Root().Rect() = %+v", got)
	}
	if len(events) != 1 || events[0].Kind != floating.ViewportResize {
		t.Errorf("events = %+v, want one resize", events)
	}
}

func TestHost_QueueUpdate(t *testing.T) {
	h := NewHost(80, 24)

	var order []int
	h.QueueUpdate(func() {
		order = append(order, 1)
		h.QueueUpdate(func() { order = append(order, 3) })
	})
	h.QueueUpdate(func() { order = append(order, 2) })
	if h.Pending() != 2 {
		t.Fatalf("Pending() = %d, want 2", h.Pending())
	}

	// attaching with pending work wakes the program once
	wakes := make(chan tea.Msg, 4)
	h.attach(func(msg tea.Msg) { wakes <- msg })

	var msg tea.Msg
	select {
	case msg = <-wakes:
	case <-time.After(time.Second):
		t.Fatal("no wake message after attach")
	}

	handled, _ := h.Update(msg)
	if !handled {
		t.Error("wake message should be handled by the host")
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("order = %v, want [1 2 3]", order)
	}
	if h.Pending() != 0 {
		t.Errorf("Pending() = %d after flush, want 0", h.Pending())
	}

	// the update queued during the flush woke the program too; that wake
	// finds nothing left to run
	select {
	case msg = <-wakes:
		h.Update(msg)
	case <-time.After(time.Second):
		t.Fatal("no wake message for the update queued during flush")
	}

	// a queue that goes from empty to non-empty wakes again
	h.QueueUpdate(func() {})
	h.QueueUpdate(func() {})
	select {
	case <-wakes:
	case <-time.After(time.Second):
		t.Fatal("no wake message for new work")
	}
	select {
	case <-wakes:
		t.Error("second update on a non-empty queue should not wake again")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestHost_WheelScroll(t *testing.T) {
	type tc struct {
		msg      tea.MouseMsg
		want     bool
		wantScrl floating.Point
	}

	tests := map[string]tc{
		"wheel down over list": {
			msg:      tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown},
			want:     true,
			wantScrl: floating.Point{Y: 1},
		},
		"wheel right over list": {
			msg:      tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelRight},
			want:     true,
			wantScrl: floating.Point{X: 1},
		},
		"wheel outside list": {
			msg: tea.MouseMsg{X: 60, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown},
		},
		"left click": {
			msg: tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		},
		"release": {
			msg: tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonWheelDown},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := NewHost(80, 24)
			list := floating.NewNode(floating.NewRect(0, 0, 20, 10), floating.WithOverflow(floating.OverflowScroll))
			h.Root().AddChild(list)

			var captured int
			h.OnViewport(func(ev floating.ViewportEvent) {
				if ev.Kind == floating.ViewportScroll && ev.Source == floating.Element(list) {
					captured++
				}
			})

			handled, _ := h.Update(tt.msg)
			if handled != tt.want {
				t.Errorf("handled = %v, want %v", handled, tt.want)
			}
			if got := list.ScrollOffset(); got != tt.wantScrl {
				t.Errorf("ScrollOffset() = %+v, want %+v", got, tt.wantScrl)
			}
			if tt.want && captured != 1 {
				t.Errorf("captured scrolls = %d, want 1", captured)
			}
		})
	}
}

func TestHost_Position(t *testing.T) {
	h := NewHost(40, 10)
	anchor := floating.NewNode(floating.NewRect(30, 2, 5, 1))
	panel := floating.NewNode(floating.NewRect(0, 0, 12, 3))
	h.Root().AddChild(anchor)

	f := floating.Position(h, floating.RefTo(anchor), floating.RefTo(panel),
		floating.WithPlacement(floating.BottomStart),
		floating.WithOffset(0),
		floating.WithBoundaryPadding(1),
		floating.WithSettle(0, time.Millisecond),
	)
	defer f.Close()

	if x, y := f.Result().Style.Cell(); x != 27 || y != 3 {
		t.Errorf("Cell() = (%d, %d), want (27, 3)", x, y)
	}

	// the settle pass was queued from inside activation without blocking
	if h.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1 settle pass", h.Pending())
	}
	h.Update(flushMsg{})
	if f.State() != floating.StateSteady {
		t.Errorf("State() = %v, want steady", f.State())
	}

	h.Update(tea.WindowSizeMsg{Width: 36, Height: 10})
	if x, _ := f.Result().Style.Cell(); x != 23 {
		t.Errorf("after resize x = %d, want 23", x)
	}
}
