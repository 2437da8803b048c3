// Package floating positions floating elements (tooltips, dropdowns,
// autocomplete panels) against an anchor element or a virtual point, keeping
// them inside the viewport as layout changes.
//
// Users import this single package for the public API: geometry types,
// placements, options, the Host and Element interfaces, and [Position].
//
// A typical use on a terminal host:
//
//	anchor := floating.RefTo(button)
//	panel := floating.RefTo(menu)
//	f := floating.Position(app, anchor, panel,
//	    floating.WithPlacement(floating.BottomStart),
//	    floating.WithOffset(1),
//	    floating.WithBoundaryPadding(1),
//	)
//	defer f.Close()
//
//	r := f.Result()
//	if !r.Hidden() {
//	    x, y := r.Style.Cell()
//	    // draw the menu at (x, y); flip its arrow when r.Placement changes
//	}
//
// Each pass computes coordinates for the preferred placement, flips to the
// opposite side when that overflows strictly less, and shifts the box back
// inside the padded viewport. After activation a short burst of settle passes
// absorbs late size changes; afterwards resizes, viewport changes and scrolls
// of the anchor's scroll containers trigger new passes.
package floating
