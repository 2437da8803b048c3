package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-floating/tcellhost"
)

var (
	tcellText    = tcell.StyleDefault
	tcellFocused = tcell.StyleDefault.Reverse(true)
	tcellTooltip = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	tcellCursor  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	tcellStatus  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// tcellDemo holds the demo state owned by the app's loop.
type tcellDemo struct {
	sc      *scene
	started time.Time
	elapsed time.Duration
}

func runTcellDemo(ctx context.Context, cfg Config, logger *log.Logger) error {
	d := &tcellDemo{started: time.Now()}

	var app *tcellhost.App
	app, err := tcellhost.NewApp(
		tcellhost.WithRenderer(d.draw),
		tcellhost.WithKeyHandler(func(ev *tcell.EventKey) bool {
			return d.key(app, ev)
		}),
		tcellhost.WithMouseHandler(func(ev *tcell.EventMouse) bool {
			if ev.Buttons() == tcell.ButtonNone {
				x, y := ev.Position()
				d.sc.pointerAt(x, y)
			}
			return false
		}),
	)
	if err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	defer app.Close()

	d.sc = newScene(app.Root(), app.Float, cfg, logger)
	defer d.sc.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return app.Run(ctx)
	})
	g.Go(func() error {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case now := <-ticker.C:
				app.QueueUpdate(func() {
					d.elapsed = now.Sub(d.started).Round(time.Second)
					app.MarkDirty()
				})
			}
		}
	})
	return g.Wait()
}

func (d *tcellDemo) key(app *tcellhost.App, ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		app.Stop()
	case ev.Key() == tcell.KeyUp, ev.Key() == tcell.KeyRune && ev.Rune() == 'k':
		d.sc.move(-1)
	case ev.Key() == tcell.KeyDown, ev.Key() == tcell.KeyRune && ev.Rune() == 'j':
		d.sc.move(1)
	default:
		return false
	}
	return true
}

func (d *tcellDemo) draw(s tcell.Screen) {
	sc := d.sc
	tcellhost.DrawBox(s, sc.list.BoundingRect(), tcellText, " items ")
	in := sc.inner()
	for i, item := range sc.items {
		if !sc.visible(i) {
			continue
		}
		style := tcellText
		if i == sc.focus {
			style = tcellFocused
			tcellhost.Fill(s, item.BoundingRect(), style)
		}
		r := item.BoundingRect()
		tcellhost.DrawText(s, int(r.Left), int(r.Top), int(in.Width), sc.label(i), style)
	}

	tcellhost.DrawFloating(s, sc.tip.Result(), sc.tipNode.Rect().Size(), sc.tipLines(), tcellTooltip)
	tcellhost.DrawFloating(s, sc.cursor.Result(), sc.cursorNode.Rect().Size(), sc.cursorLines(), tcellCursor)

	w, h := s.Size()
	status := fmt.Sprintf("tooltip: %s  cursor: %s  up %s", sc.tip.Placement(), sc.cursor.State(), d.elapsed)
	tcellhost.DrawText(s, 0, h-1, w, status, tcellStatus)
}
