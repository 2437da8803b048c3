package floating

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDefaultOptions(t *testing.T) {
	got := DefaultOptions()
	want := Options{
		Enabled:         true,
		Placement:       Bottom,
		Offset:          8,
		BoundaryPadding: 8,
		Flip:            true,
		Shift:           true,
		AutoUpdate:      true,
		Strategy:        StrategyFixed,
		CaptureScroll:   true,
		SettleTicks:     10,
		SettleInterval:  16 * time.Millisecond,
		PollInterval:    16 * time.Millisecond,
		Clock:           RealClock{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DefaultOptions() mismatch (-want +got):\n%s", diff)
	}
}

func TestOptions_Apply(t *testing.T) {
	type tc struct {
		opts  []Option
		check func(t *testing.T, o Options)
	}

	virtual := NewRect(10, 20, 0, 16)
	clock := NewMockClock(time.Unix(0, 0))

	tests := map[string]tc{
		"placement and offsets": {
			opts: []Option{WithPlacement(LeftStart), WithOffset(2), WithBoundaryPadding(1)},
			check: func(t *testing.T, o Options) {
				if o.Placement != LeftStart || o.Offset != 2 || o.BoundaryPadding != 1 {
					t.Errorf("got %+v", o)
				}
			},
		},
		"unknown placement degrades": {
			opts: []Option{WithPlacement(Placement("diagonal-start"))},
			check: func(t *testing.T, o Options) {
				if o.Placement != BottomStart {
					t.Errorf("Placement = %q, want %q", o.Placement, BottomStart)
				}
			},
		},
		"negative padding clamps": {
			opts: []Option{WithBoundaryPadding(-4)},
			check: func(t *testing.T, o Options) {
				if o.BoundaryPadding != 0 {
					t.Errorf("BoundaryPadding = %v, want 0", o.BoundaryPadding)
				}
			},
		},
		"unknown strategy is fixed": {
			opts: []Option{WithStrategy(Strategy("sticky"))},
			check: func(t *testing.T, o Options) {
				if o.Strategy != StrategyFixed {
					t.Errorf("Strategy = %q, want fixed", o.Strategy)
				}
			},
		},
		"toggles": {
			opts: []Option{WithEnabled(false), WithFlip(false), WithShift(false), WithAutoUpdate(false), WithCaptureScroll(false)},
			check: func(t *testing.T, o Options) {
				if o.Enabled || o.Flip || o.Shift || o.AutoUpdate || o.CaptureScroll {
					t.Errorf("got %+v, want every toggle off", o)
				}
			},
		},
		"virtual reference is normalized": {
			opts: []Option{WithVirtualReference(Rect{Left: 10, Top: 20, Height: 16})},
			check: func(t *testing.T, o Options) {
				if o.VirtualReference == nil || *o.VirtualReference != virtual {
					t.Errorf("VirtualReference = %v, want %+v", o.VirtualReference, virtual)
				}
			},
		},
		"settle and poll": {
			opts: []Option{WithSettle(-3, 0), WithPollInterval(-time.Second), WithClock(clock)},
			check: func(t *testing.T, o Options) {
				if o.SettleTicks != 0 || o.SettleInterval != SettleInterval || o.PollInterval != PollInterval {
					t.Errorf("got ticks=%d settle=%v poll=%v", o.SettleTicks, o.SettleInterval, o.PollInterval)
				}
				if o.Clock != Clock(clock) {
					t.Error("Clock not applied")
				}
			},
		},
		"nil clock falls back": {
			opts: []Option{WithClock(nil)},
			check: func(t *testing.T, o Options) {
				if _, ok := o.Clock.(RealClock); !ok {
					t.Errorf("Clock = %T, want RealClock", o.Clock)
				}
			},
		},
		"scroll containers are copied": {
			opts: []Option{WithScrollContainers(NewNode(NewRect(0, 0, 1, 1)))},
			check: func(t *testing.T, o Options) {
				if len(o.ScrollContainers) != 1 {
					t.Errorf("ScrollContainers = %v, want one", o.ScrollContainers)
				}
			},
		},
		"with options replaces everything": {
			opts: []Option{WithOffset(3), WithOptions(Options{Placement: Top})},
			check: func(t *testing.T, o Options) {
				want := Options{Placement: Top, Strategy: StrategyFixed, SettleInterval: SettleInterval, PollInterval: PollInterval, Clock: RealClock{}}
				if diff := cmp.Diff(want, o, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			o := DefaultOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			tt.check(t, o.sanitize())
		})
	}
}

func TestParseStrategy(t *testing.T) {
	tests := map[string]Strategy{
		"fixed":    StrategyFixed,
		"absolute": StrategyAbsolute,
		"":         StrategyFixed,
		"relative": StrategyFixed,
	}
	for in, want := range tests {
		if got := ParseStrategy(in); got != want {
			t.Errorf("ParseStrategy(%q) = %q, want %q", in, got, want)
		}
	}
}
