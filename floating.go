package floating

import (
	"math"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/grindlemire/go-floating/internal/debug"
	"github.com/grindlemire/go-floating/internal/notify"
	"github.com/grindlemire/go-floating/internal/placement"
)

// SentinelCoord is the off-screen coordinate reported when no position can be
// computed. Callers should treat it as "do not show yet".
const SentinelCoord = -9999

// Style is the positioning a caller applies to its floating element.
type Style struct {
	Position Strategy
	X, Y     float64
}

// Left returns X as a CSS length, e.g. "105px".
func (s Style) Left() string {
	return formatPx(s.X)
}

// Top returns Y as a CSS length.
func (s Style) Top() string {
	return formatPx(s.Y)
}

// Hidden returns true if the style is the off-screen sentinel.
func (s Style) Hidden() bool {
	return s.X == SentinelCoord && s.Y == SentinelCoord
}

// Cell returns the position rounded to whole terminal cells.
func (s Style) Cell() (x, y int) {
	return int(math.Round(s.X)), int(math.Round(s.Y))
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func sentinelStyle(strategy Strategy) Style {
	return Style{Position: strategy, X: SentinelCoord, Y: SentinelCoord}
}

// Result is the latest output of a Floating.
type Result struct {
	Style Style
	// Placement is the resolved placement. It differs from the requested one
	// after a flip and keeps its last value while hidden.
	Placement Placement
	Strategy  Strategy
	// Flipped reports that the last pass resolved to the opposite side of
	// the requested placement.
	Flipped bool
}

// Hidden returns true if the result carries the off-screen sentinel.
func (r Result) Hidden() bool {
	return r.Style.Hidden()
}

// State is the scheduler state of a Floating.
type State int

const (
	// StateInactive means disabled, closed, or missing an element to measure.
	StateInactive State = iota
	// StateSettling means recently activated and running settle passes.
	StateSettling
	// StateSteady means settle passes are done; updates are event driven.
	StateSteady
)

func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateSettling:
		return "settling"
	case StateSteady:
		return "steady"
	}
	return "unknown"
}

// Floating positions one floating element against an anchor element or a
// virtual reference rect and keeps the position current.
//
// Position, Update, the Set methods and Close must be called on the host's UI
// thread, as must Ref.Set on the refs passed to Position. Result, Placement,
// Strategy and State are safe from any goroutine.
type Floating struct {
	id       string
	host     Host
	anchor   *Ref
	floating *Ref

	mu     sync.RWMutex
	result Result
	state  State

	// UI thread only.
	opts       Options
	resolved   bool
	active     bool
	closed     bool
	gen        uint64
	stop       chan struct{}
	cancels    []func()
	refCancels []func()

	results notify.List[Result]
}

// Position starts positioning the element in floating against anchor.
//
// anchor may be nil when a virtual reference is supplied with
// WithVirtualReference. The returned Floating reports the sentinel until both
// a floating element and a reference are available.
func Position(host Host, anchor, floating *Ref, opts ...Option) *Floating {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o = o.sanitize()

	if floating == nil {
		floating = NewRef()
	}
	f := &Floating{
		id:       uuid.NewString(),
		host:     host,
		anchor:   anchor,
		floating: floating,
		opts:     o,
		result: Result{
			Style:     sentinelStyle(o.Strategy),
			Placement: o.Placement,
			Strategy:  o.Strategy,
		},
	}

	if anchor != nil {
		f.refCancels = append(f.refCancels, anchor.Subscribe(func(Element) { f.reconcile() }))
	}
	f.refCancels = append(f.refCancels, floating.Subscribe(func(Element) { f.reconcile() }))

	debug.With("position", "id", f.id, "placement", o.Placement, "strategy", o.Strategy)
	f.reconcile()
	return f
}

// ID returns the instance's unique identifier.
func (f *Floating) ID() string {
	return f.id
}

// Result returns the latest published result.
func (f *Floating) Result() Result {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.result
}

// Placement returns the resolved placement.
func (f *Floating) Placement() Placement {
	return f.Result().Placement
}

// Strategy returns the positioning strategy.
func (f *Floating) Strategy() Strategy {
	return f.Result().Strategy
}

// State returns the scheduler state.
func (f *Floating) State() State {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

// Options returns a copy of the current options.
func (f *Floating) Options() Options {
	return f.opts
}

// Subscribe registers fn to run whenever the published result changes.
func (f *Floating) Subscribe(fn func(Result)) (cancel func()) {
	return f.results.Add(fn)
}

// Update runs one positioning pass and publishes the result.
// It is idempotent: with no geometry change in between, repeated calls
// produce the same result.
func (f *Floating) Update() {
	f.compute()
}

// compute runs one positioning pass.
func (f *Floating) compute() {
	in, ok := f.measure()
	if !ok {
		f.publishHidden()
		return
	}

	out := placement.Compute(in)
	if out.Flipped {
		debug.With("flip", "id", f.id, "from", in.Placement, "to", out.Placement, "overflow", out.Overflow.Total)
	}
	if out.Shifted {
		debug.With("shift", "id", f.id, "x", out.Coords.X, "y", out.Coords.Y)
	}

	f.resolved = true
	f.publish(Result{
		Style:     Style{Position: f.opts.Strategy, X: out.Coords.X, Y: out.Coords.Y},
		Placement: out.Placement,
		Strategy:  f.opts.Strategy,
		Flipped:   out.Flipped,
	})
}

// measure reads the geometry for one pass. It returns false when there is
// nothing to position against.
func (f *Floating) measure() (placement.Input, bool) {
	if f.closed || !f.opts.Enabled {
		return placement.Input{}, false
	}
	floatingEl := f.floating.El()
	if floatingEl == nil {
		return placement.Input{}, false
	}
	anchor, ok := f.referenceRect()
	if !ok {
		return placement.Input{}, false
	}

	return placement.Input{
		Anchor:    anchor,
		Floating:  floatingEl.BoundingRect().Size(),
		Viewport:  f.host.Viewport(),
		Placement: f.opts.Placement,
		Offset:    f.opts.Offset,
		Padding:   f.opts.BoundaryPadding,
		Flip:      f.opts.Flip,
		Shift:     f.opts.Shift,
	}, true
}

// referenceRect returns the virtual reference if set, else the anchor's rect.
func (f *Floating) referenceRect() (Rect, bool) {
	if f.opts.VirtualReference != nil {
		return *f.opts.VirtualReference, true
	}
	if el := f.anchor.El(); el != nil {
		return el.BoundingRect(), true
	}
	return Rect{}, false
}

func (f *Floating) publishHidden() {
	p := f.Placement()
	if !f.resolved {
		p = f.opts.Placement
	}
	f.publish(Result{
		Style:     sentinelStyle(f.opts.Strategy),
		Placement: p,
		Strategy:  f.opts.Strategy,
	})
}

func (f *Floating) publish(r Result) {
	f.mu.Lock()
	changed := r != f.result
	f.result = r
	f.mu.Unlock()

	if changed {
		f.results.Emit(r)
	}
}

func (f *Floating) setState(s State) {
	f.mu.Lock()
	prev := f.state
	f.state = s
	f.mu.Unlock()

	if prev != s {
		debug.With("state", "id", f.id, "from", prev, "to", s)
	}
}
