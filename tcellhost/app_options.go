package tcellhost

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithFrameRate sets the target frame rate for the render loop.
// Default is 60 fps (16ms frame duration). Valid range is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(a *App) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		a.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithEventQueueSize sets the capacity of the update queue.
// Default is 256. Must be at least 1. Updates queued past capacity are
// delivered late rather than dropped.
func WithEventQueueSize(size int) AppOption {
	return func(a *App) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		a.eventQueueSize = size
		return nil
	}
}

// WithScrollStep sets how many cells one wheel notch scrolls. Default is 1.
func WithScrollStep(cells int) AppOption {
	return func(a *App) error {
		if cells < 1 {
			return fmt.Errorf("scroll step must be at least 1 cell")
		}
		a.scrollStep = float64(cells)
		return nil
	}
}

// WithKeyHandler sets a handler that sees every key event first.
// If it returns true the event is consumed; otherwise Ctrl+C stops the app.
func WithKeyHandler(fn func(*tcell.EventKey) bool) AppOption {
	return func(a *App) error {
		a.keyHandler = fn
		return nil
	}
}

// WithMouseHandler sets a handler that sees every mouse event before wheel
// scrolling. If it returns true the event is consumed.
func WithMouseHandler(fn func(*tcell.EventMouse) bool) AppOption {
	return func(a *App) error {
		a.mouseHandler = fn
		return nil
	}
}

// WithRenderer sets the function that draws a frame. The screen is cleared
// before and shown after each call.
func WithRenderer(fn func(tcell.Screen)) AppOption {
	return func(a *App) error {
		a.renderer = fn
		return nil
	}
}

// WithoutMouse disables mouse event reporting.
// By default, mouse events are enabled.
func WithoutMouse() AppOption {
	return func(a *App) error {
		a.mouseEnabled = false
		return nil
	}
}
