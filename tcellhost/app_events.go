package tcellhost

import (
	"github.com/gdamore/tcell/v2"

	floating "github.com/grindlemire/go-floating"
	"github.com/grindlemire/go-floating/internal/debug"
)

// Dispatch handles one screen event on the UI thread.
// Resizes update the root node and notify viewport listeners. Wheel events
// scroll the deepest scroll container under the pointer. Returns true if the
// event was consumed.
func (a *App) Dispatch(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.setSize(w, h)
		a.viewport.Emit(floating.ViewportEvent{Kind: floating.ViewportResize})
		a.screen.Sync()
		a.MarkDirty()
		debug.Log("tcellhost: resize %dx%d", w, h)
		return true

	case *tcell.EventMouse:
		if a.mouseHandler != nil && a.mouseHandler(ev) {
			a.MarkDirty()
			return true
		}
		return a.scrollAt(ev)

	case *tcell.EventKey:
		if a.keyHandler != nil && a.keyHandler(ev) {
			a.MarkDirty()
			return true
		}
		if ev.Key() == tcell.KeyCtrlC {
			a.Stop()
			return true
		}
	}
	return false
}

// scrollAt applies a wheel event to the scroll container under the pointer.
func (a *App) scrollAt(ev *tcell.EventMouse) bool {
	var dx, dy float64
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		dy = -a.scrollStep
	case buttons&tcell.WheelDown != 0:
		dy = a.scrollStep
	case buttons&tcell.WheelLeft != 0:
		dx = -a.scrollStep
	case buttons&tcell.WheelRight != 0:
		dx = a.scrollStep
	default:
		return false
	}

	x, y := ev.Position()
	target := a.root.ScrollContainerAt(float64(x), float64(y))
	if target == nil {
		return false
	}
	target.ScrollBy(dx, dy)
	return true
}
