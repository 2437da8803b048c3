package floating

import "time"

// Strategy is the CSS-like positioning mode reported in the style.
type Strategy string

const (
	StrategyFixed    Strategy = "fixed"
	StrategyAbsolute Strategy = "absolute"
)

// ParseStrategy returns the strategy for s, defaulting to fixed.
func ParseStrategy(s string) Strategy {
	if Strategy(s) == StrategyAbsolute {
		return StrategyAbsolute
	}
	return StrategyFixed
}

const (
	// DefaultOffset is the default main-axis gap between anchor and floating box.
	DefaultOffset = 8
	// DefaultBoundaryPadding is the default minimum gap from the viewport edge.
	DefaultBoundaryPadding = 8

	// SettleTicks is how many extra passes run after activation.
	SettleTicks = 10
	// SettleInterval is the spacing of the settle passes.
	SettleInterval = 16 * time.Millisecond
	// PollInterval is how often non-observable elements are measured.
	PollInterval = 16 * time.Millisecond
)

// Options configures a Floating. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	Enabled         bool
	Placement       Placement
	Offset          float64
	BoundaryPadding float64
	Flip            bool
	Shift           bool
	AutoUpdate      bool
	Strategy        Strategy

	// ScrollContainers replaces the auto-detected scroll ancestors of the
	// anchor when non-nil.
	ScrollContainers []Element

	// VirtualReference stands in for the anchor element when non-nil.
	VirtualReference *Rect

	// CaptureScroll makes nested scrolls reported by the host trigger a
	// recompute, not just window scrolls.
	CaptureScroll bool

	SettleTicks    int
	SettleInterval time.Duration
	PollInterval   time.Duration
	Clock          Clock
}

// DefaultOptions returns the defaults: enabled, bottom placement, offset and
// padding of 8, flip, shift and auto-update on, fixed strategy.
func DefaultOptions() Options {
	return Options{
		Enabled:         true,
		Placement:       Bottom,
		Offset:          DefaultOffset,
		BoundaryPadding: DefaultBoundaryPadding,
		Flip:            true,
		Shift:           true,
		AutoUpdate:      true,
		Strategy:        StrategyFixed,
		CaptureScroll:   true,
		SettleTicks:     SettleTicks,
		SettleInterval:  SettleInterval,
		PollInterval:    PollInterval,
		Clock:           RealClock{},
	}
}

// sanitize replaces values that can't be used with safe ones.
func (o Options) sanitize() Options {
	o.Placement = o.Placement.Canonical()
	o.BoundaryPadding = max(o.BoundaryPadding, 0)
	o.Strategy = ParseStrategy(string(o.Strategy))
	o.SettleTicks = max(o.SettleTicks, 0)
	if o.SettleInterval <= 0 {
		o.SettleInterval = SettleInterval
	}
	if o.PollInterval <= 0 {
		o.PollInterval = PollInterval
	}
	if o.Clock == nil {
		o.Clock = RealClock{}
	}
	return o
}

// Option is a functional option for configuring a Floating.
type Option func(*Options)

// WithOptions replaces every option with o.
func WithOptions(o Options) Option {
	return func(dst *Options) {
		*dst = o
	}
}

// WithEnabled turns the engine on or off. A disabled engine always reports
// the off-screen sentinel.
func WithEnabled(enabled bool) Option {
	return func(o *Options) {
		o.Enabled = enabled
	}
}

// WithPlacement sets the preferred placement. Default is bottom.
func WithPlacement(p Placement) Option {
	return func(o *Options) {
		o.Placement = p
	}
}

// WithOffset sets the main-axis gap. Default is 8.
func WithOffset(offset float64) Option {
	return func(o *Options) {
		o.Offset = offset
	}
}

// WithBoundaryPadding sets the minimum gap from the viewport edge.
// Default is 8. Negative values are treated as 0.
func WithBoundaryPadding(padding float64) Option {
	return func(o *Options) {
		o.BoundaryPadding = padding
	}
}

// WithFlip enables or disables flipping to the opposite side.
func WithFlip(flip bool) Option {
	return func(o *Options) {
		o.Flip = flip
	}
}

// WithShift enables or disables shifting back into the viewport.
func WithShift(shift bool) Option {
	return func(o *Options) {
		o.Shift = shift
	}
}

// WithAutoUpdate enables or disables observers and the settle burst.
// With auto-update off the position only changes on Update.
func WithAutoUpdate(auto bool) Option {
	return func(o *Options) {
		o.AutoUpdate = auto
	}
}

// WithStrategy sets the reported positioning mode. Default is fixed.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithScrollContainers sets the scroll containers to observe instead of
// walking the anchor's ancestors.
func WithScrollContainers(els ...Element) Option {
	return func(o *Options) {
		o.ScrollContainers = append([]Element{}, els...)
	}
}

// WithVirtualReference positions relative to r instead of an anchor element.
// r may be given by size or by edges; it is normalized with Rect.Normalize.
func WithVirtualReference(r Rect) Option {
	return func(o *Options) {
		r = r.Normalize()
		o.VirtualReference = &r
	}
}

// WithCaptureScroll controls whether nested scrolls reported by the host
// trigger a recompute. Default is true.
func WithCaptureScroll(capture bool) Option {
	return func(o *Options) {
		o.CaptureScroll = capture
	}
}

// WithSettle sets the number and spacing of the passes run after activation.
// Default is SettleTicks passes every SettleInterval.
func WithSettle(ticks int, interval time.Duration) Option {
	return func(o *Options) {
		o.SettleTicks = ticks
		o.SettleInterval = interval
	}
}

// WithPollInterval sets how often elements that aren't Observable are measured.
func WithPollInterval(d time.Duration) Option {
	return func(o *Options) {
		o.PollInterval = d
	}
}

// WithClock sets the clock used for settle and poll tickers.
func WithClock(c Clock) Option {
	return func(o *Options) {
		o.Clock = c
	}
}
