// Package tcellhost runs floating elements inside a tcell terminal screen.
//
// App implements floating.Host. It owns a root floating.Node sized to the
// screen, so anchors and scroll containers are built as child nodes:
//
//	app, err := tcellhost.NewApp(tcellhost.WithRenderer(draw))
//	if err != nil {
//	    return err
//	}
//	defer app.Close()
//
//	list := floating.NewNode(floating.NewRect(2, 2, 30, 10), floating.WithOverflow(floating.OverflowAuto))
//	app.Root().AddChild(list)
//	tip := app.Float(floating.RefTo(item), floating.RefTo(panel), floating.WithOffset(1))
//	defer tip.Close()
//
//	return app.Run(ctx)
//
// Mouse wheel events scroll the deepest scrolling node under the pointer and
// are reported to the engine as captured viewport scrolls.
package tcellhost
