package floating

import (
	"time"

	"github.com/grindlemire/go-floating/internal/debug"
)

// Watcher is a deferred tick source started when a Floating activates.
type Watcher interface {
	// Start begins the watcher goroutine. Each tick is handed to queue, which
	// runs it on the UI thread. Closing stop ends the goroutine.
	Start(queue func(func()), stop <-chan struct{})
}

// settleWatcher fires a fixed number of ticks at a fixed interval, then exits.
// It absorbs size changes that arrive during entrance animations.
type settleWatcher struct {
	clock    Clock
	interval time.Duration
	ticks    int
	onTick   func(last bool)
}

// Start the watcher. The ticker is created before Start returns.
func (w *settleWatcher) Start(queue func(func()), stop <-chan struct{}) {
	if w.ticks <= 0 {
		queue(func() { w.onTick(true) })
		return
	}
	ticker := w.clock.NewTicker(w.interval)
	go func() {
		defer ticker.Stop()
		for i := 1; i <= w.ticks; i++ {
			select {
			case <-stop:
				return
			case <-ticker.C():
				last := i == w.ticks
				queue(func() { w.onTick(last) })
			}
		}
		debug.Log("settleWatcher finished after %d ticks", w.ticks)
	}()
}

// pollWatcher compares an element's bounding rect on every tick and calls
// onChange when it differs. It stands in for resize observation on elements
// that aren't Observable.
type pollWatcher struct {
	clock    Clock
	interval time.Duration
	el       Element
	onChange func()
}

// Start the watcher. The baseline rect is read before Start returns, so it
// must be called on the UI thread.
func (w *pollWatcher) Start(queue func(func()), stop <-chan struct{}) {
	last := w.el.BoundingRect()
	check := func() {
		select {
		case <-stop:
			return
		default:
		}
		if r := w.el.BoundingRect(); r != last {
			last = r
			w.onChange()
		}
	}

	ticker := w.clock.NewTicker(w.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C():
				queue(check)
			}
		}
	}()
}
