package tcellhost

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/go-floating/internal/debug"
)

// Run starts the main event loop. Blocks until Stop is called or ctx is done.
// Rendering occurs at most once per frame and only when the app is dirty.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, a.eventQueueSize)
	go a.pollEvents(events)

	a.render()

	ticker := time.NewTicker(a.frameDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.Stop()
			return nil
		case <-a.stopCh:
			return nil
		case ev := <-events:
			a.Dispatch(ev)
		case fn := <-a.eventQueue:
			fn()
		case <-ticker.C:
			if a.dirty.CompareAndSwap(true, false) {
				a.render()
			}
		}
	}
}

// Stop signals the Run loop to exit. Safe to call from any goroutine and
// idempotent.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		close(a.stopCh)
		// wake the poller so it sees stopCh
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
}

// QueueUpdate enqueues a function to run on the main loop.
// Safe to call from any goroutine. It never blocks: when the queue is full
// the update waits in its own goroutine until the loop has room or the app
// stops, so settle ticks are never lost.
func (a *App) QueueUpdate(fn func()) {
	select {
	case a.eventQueue <- fn:
	case <-a.stopCh:
		// App is stopping, ignore update
	default:
		debug.Log("tcellhost: update queue full, deferring update")
		go func() {
			select {
			case a.eventQueue <- fn:
			case <-a.stopCh:
			}
		}()
	}
}

// pollEvents reads screen events in a goroutine and hands them to the loop.
func (a *App) pollEvents(events chan<- tcell.Event) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-a.stopCh:
			return
		}
	}
}

func (a *App) render() {
	a.screen.Clear()
	if a.renderer != nil {
		a.renderer(a.screen)
	}
	a.screen.Show()
}
