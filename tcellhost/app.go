package tcellhost

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	floating "github.com/grindlemire/go-floating"
	"github.com/grindlemire/go-floating/internal/debug"
	"github.com/grindlemire/go-floating/internal/notify"
)

// App manages a tcell screen, its root node and the event loop the floating
// engine runs on.
type App struct {
	screen tcell.Screen
	root   *floating.Node

	mu   sync.RWMutex
	size floating.Size

	viewport notify.List[floating.ViewportEvent]
	dirty    atomic.Bool

	// Event loop fields
	eventQueue chan func()
	stopCh     chan struct{}
	stopOnce   sync.Once
	closeOnce  sync.Once

	// Configuration (set via options)
	frameDuration  time.Duration
	eventQueueSize int
	mouseEnabled   bool
	scrollStep     float64
	keyHandler     func(*tcell.EventKey) bool
	mouseHandler   func(*tcell.EventMouse) bool
	renderer       func(tcell.Screen)
}

// Ensure App implements floating.Host.
var _ floating.Host = (*App)(nil)

// NewApp creates an App on the real terminal.
func NewApp(opts ...AppOption) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewAppWithScreen(screen, opts...)
}

// NewAppWithScreen creates an App on screen, which must not be initialized
// yet. Tests pass a tcell.NewSimulationScreen.
func NewAppWithScreen(screen tcell.Screen, opts ...AppOption) (*App, error) {
	app := &App{
		screen:         screen,
		stopCh:         make(chan struct{}),
		frameDuration:  16 * time.Millisecond,
		eventQueueSize: 256,
		mouseEnabled:   true,
		scrollStep:     1,
	}
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}
	app.eventQueue = make(chan func(), app.eventQueueSize)
	if app.mouseEnabled {
		screen.EnableMouse()
	}
	screen.HideCursor()

	w, h := screen.Size()
	app.size = floating.Size{Width: float64(w), Height: float64(h)}
	app.root = floating.NewNode(floating.NewRect(0, 0, float64(w), float64(h)), floating.WithName("screen"))
	app.root.SetOnScrollCapture(func(n *floating.Node) {
		app.viewport.Emit(floating.ViewportEvent{Kind: floating.ViewportScroll, Source: n})
		app.MarkDirty()
	})
	app.MarkDirty()

	debug.Log("tcellhost: screen %dx%d, mouse=%v", w, h, app.mouseEnabled)
	return app, nil
}

// Screen returns the underlying tcell screen.
func (a *App) Screen() tcell.Screen {
	return a.screen
}

// Root returns the node covering the whole screen.
func (a *App) Root() *floating.Node {
	return a.root
}

// Viewport returns the screen size in cells.
func (a *App) Viewport() floating.Size {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.size
}

// OnViewport registers fn for screen resizes and captured scrolls.
func (a *App) OnViewport(fn func(floating.ViewportEvent)) (cancel func()) {
	return a.viewport.Add(fn)
}

// MarkDirty schedules a redraw on the next frame.
func (a *App) MarkDirty() {
	a.dirty.Store(true)
}

// Float positions panel against anchor on this app and redraws whenever the
// result changes. The caller owns the returned Floating and must Close it.
func (a *App) Float(anchor, panel *floating.Ref, opts ...floating.Option) *floating.Floating {
	f := floating.Position(a, anchor, panel, opts...)
	f.Subscribe(func(floating.Result) { a.MarkDirty() })
	a.MarkDirty()
	return f
}

// Close stops the loop and restores the terminal. Idempotent.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		a.Stop()
		a.screen.Fini()
	})
}

func (a *App) setSize(w, h int) {
	a.mu.Lock()
	a.size = floating.Size{Width: float64(w), Height: float64(h)}
	a.mu.Unlock()
	a.root.SetRect(floating.NewRect(0, 0, float64(w), float64(h)))
}
