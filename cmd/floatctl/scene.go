package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"

	floating "github.com/grindlemire/go-floating"
)

const (
	demoItems     = 30
	demoListLeft  = 2
	demoListTop   = 1
	demoListWidth = 28
	demoListRows  = 12
)

// positionFunc starts positioning panel against anchor on some host.
type positionFunc func(anchor, panel *floating.Ref, opts ...floating.Option) *floating.Floating

// scene is the demo layout shared by both runtimes: a scrolling list whose
// focused item carries a tooltip, plus a panel that follows the pointer.
type scene struct {
	logger *log.Logger

	list   *floating.Node
	items  []*floating.Node
	focus  int
	anchor *floating.Ref

	tipNode *floating.Node
	tip     *floating.Floating

	cursorNode *floating.Node
	cursor     *floating.Floating
	pointer    floating.Point
	tracking   bool
}

func newScene(root *floating.Node, position positionFunc, cfg Config, logger *log.Logger) *scene {
	sc := &scene{
		logger: logger,
		list: floating.NewNode(
			floating.NewRect(demoListLeft, demoListTop, demoListWidth, demoListRows+2),
			floating.WithName("list"),
			floating.WithOverflow(floating.OverflowAuto),
		),
	}
	for i := 0; i < demoItems; i++ {
		item := floating.NewNode(
			floating.NewRect(demoListLeft+1, demoListTop+1+float64(i), demoListWidth-2, 1),
			floating.WithName(fmt.Sprintf("item-%02d", i)),
		)
		sc.items = append(sc.items, item)
		sc.list.AddChild(item)
	}
	root.AddChild(sc.list)

	sc.anchor = floating.RefTo(sc.items[0])
	sc.tipNode = floating.NewNode(boxFor(sc.tipLines()), floating.WithName("tooltip"))
	sc.tip = position(sc.anchor, floating.RefTo(sc.tipNode), cfg.Options()...)

	sc.cursorNode = floating.NewNode(boxFor(sc.cursorLines()), floating.WithName("cursor"))
	sc.cursor = position(nil, floating.RefTo(sc.cursorNode), append(cfg.Options(),
		floating.WithPlacement(floating.BottomStart),
		floating.WithVirtualReference(floating.PointRect(0, 0)),
		floating.WithEnabled(false),
	)...)
	return sc
}

// boxFor returns the bordered box size needed to show lines.
func boxFor(lines []string) floating.Rect {
	w := 0
	for _, l := range lines {
		w = max(w, runewidth.StringWidth(l))
	}
	return floating.NewRect(0, 0, float64(w+2), float64(len(lines)+2))
}

func (sc *scene) label(i int) string {
	return fmt.Sprintf("item %02d", i)
}

func (sc *scene) tipLines() []string {
	return []string{sc.label(sc.focus), "↑/↓ move  q quit"}
}

func (sc *scene) cursorLines() []string {
	return []string{fmt.Sprintf("%3.0f,%-3.0f", sc.pointer.X, sc.pointer.Y)}
}

// inner is the list's content area on screen.
func (sc *scene) inner() floating.Rect {
	r := sc.list.BoundingRect()
	return floating.NewRect(r.Left+1, r.Top+1, r.Width-2, r.Height-2)
}

// visible reports whether item i is fully inside the list's content area.
func (sc *scene) visible(i int) bool {
	r := sc.items[i].BoundingRect()
	in := sc.inner()
	return r.Top >= in.Top && r.Bottom <= in.Bottom
}

// move shifts focus by delta items, scrolling the list to keep it visible.
func (sc *scene) move(delta int) {
	next := min(max(sc.focus+delta, 0), len(sc.items)-1)
	if next == sc.focus {
		return
	}
	sc.focus = next

	item := sc.items[next]
	in := sc.inner()
	r := item.BoundingRect()
	scroll := sc.list.ScrollOffset()
	switch {
	case r.Top < in.Top:
		sc.list.ScrollTo(scroll.X, scroll.Y-(in.Top-r.Top))
	case r.Bottom > in.Bottom:
		sc.list.ScrollTo(scroll.X, scroll.Y+(r.Bottom-in.Bottom))
	}

	sc.anchor.Set(item)
	sc.logger.Debug("focus", "item", item.Name(), "placement", sc.tip.Placement())
}

// pointerAt moves the cursor panel's virtual reference.
func (sc *scene) pointerAt(x, y int) {
	sc.pointer = floating.Point{X: float64(x), Y: float64(y)}
	r := floating.PointRect(sc.pointer.X, sc.pointer.Y)
	sc.cursor.SetVirtualReference(&r)
	if !sc.tracking {
		sc.tracking = true
		sc.cursor.SetEnabled(true)
	}
}

func (sc *scene) close() {
	sc.tip.Close()
	sc.cursor.Close()
}
