package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	floating "github.com/grindlemire/go-floating"
)

func newTestScene(t *testing.T) (*scene, *floating.MockHost) {
	t.Helper()
	host := floating.NewMockHost(80, 24)
	root := floating.NewNode(floating.NewRect(0, 0, 80, 24), floating.WithName("window"))
	host.Attach(root)

	cfg := DefaultConfig()
	cfg.Settle.Ticks = 0
	position := func(anchor, panel *floating.Ref, opts ...floating.Option) *floating.Floating {
		return floating.Position(host, anchor, panel, opts...)
	}
	sc := newScene(root, position, cfg, log.New(io.Discard))
	t.Cleanup(sc.close)
	host.Drain()
	return sc, host
}

func TestScene_TooltipFollowsFocus(t *testing.T) {
	sc, host := newTestScene(t)

	if got := sc.tip.State(); got != floating.StateSteady {
		t.Fatalf("tip state = %s, want steady", got)
	}
	if got := sc.tip.Placement(); got != floating.Bottom {
		t.Errorf("tip placement = %s, want bottom", got)
	}
	if _, y := sc.tip.Result().Style.Cell(); y != 4 {
		t.Errorf("tip y = %d, want 4", y)
	}

	sc.move(1)
	host.Drain()
	if _, y := sc.tip.Result().Style.Cell(); y != 5 {
		t.Errorf("after move tip y = %d, want 5", y)
	}
	if sc.tipLines()[0] != "item 01" {
		t.Errorf("tip label = %q, want item 01", sc.tipLines()[0])
	}
}

func TestScene_MoveScrollsList(t *testing.T) {
	sc, host := newTestScene(t)

	sc.move(20)
	host.Drain()
	if sc.focus != 20 {
		t.Fatalf("focus = %d, want 20", sc.focus)
	}
	if got := sc.list.ScrollOffset().Y; got != 9 {
		t.Errorf("scroll = %v, want 9", got)
	}
	if !sc.visible(20) {
		t.Error("focused item not visible")
	}
	if sc.visible(0) {
		t.Error("first item still visible after scrolling")
	}
	if _, y := sc.tip.Result().Style.Cell(); y != 15 {
		t.Errorf("tip y = %d, want 15", y)
	}

	sc.move(-100)
	host.Drain()
	if sc.focus != 0 {
		t.Errorf("focus = %d, want 0", sc.focus)
	}
	if got := sc.list.ScrollOffset().Y; got != 0 {
		t.Errorf("scroll = %v, want 0", got)
	}

	sc.move(-1)
	if sc.focus != 0 {
		t.Errorf("focus moved past first item: %d", sc.focus)
	}
}

func TestScene_PointerEnablesCursor(t *testing.T) {
	sc, host := newTestScene(t)

	if !sc.cursor.Result().Hidden() {
		t.Fatal("cursor visible before pointer moved")
	}
	if got := sc.cursor.State(); got != floating.StateInactive {
		t.Errorf("cursor state = %s, want inactive", got)
	}

	sc.pointerAt(40, 10)
	host.Drain()
	if x, y := sc.cursor.Result().Style.Cell(); x != 40 || y != 11 {
		t.Errorf("cursor = (%d,%d), want (40,11)", x, y)
	}

	sc.pointerAt(42, 12)
	host.Drain()
	if x, y := sc.cursor.Result().Style.Cell(); x != 42 || y != 13 {
		t.Errorf("cursor = (%d,%d), want (42,13)", x, y)
	}
	if got := sc.cursorLines()[0]; got != " 42,12 " {
		t.Errorf("cursor label = %q", got)
	}
}
