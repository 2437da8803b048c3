package tcellhost

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	floating "github.com/grindlemire/go-floating"
)

// cells rounds r to whole cells.
func cells(r floating.Rect) (x, y, w, h int) {
	x = int(math.Round(r.Left))
	y = int(math.Round(r.Top))
	w = int(math.Round(r.Width))
	h = int(math.Round(r.Height))
	return x, y, w, h
}

// Fill paints every cell of r with a blank in style.
func Fill(s tcell.Screen, r floating.Rect, style tcell.Style) {
	x, y, w, h := cells(r)
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetContent(col, row, ' ', nil, style)
		}
	}
}

// DrawText draws text starting at (x, y), clipped to maxWidth cells.
// Returns the number of cells drawn.
func DrawText(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	if maxWidth <= 0 {
		return 0
	}
	text = runewidth.Truncate(text, maxWidth, "…")
	col := 0
	for _, r := range text {
		s.SetContent(x+col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
	return col
}

// DrawBox draws a single-line border around r with an optional title on the
// top edge. Boxes smaller than 2x2 are filled instead.
func DrawBox(s tcell.Screen, r floating.Rect, style tcell.Style, title string) {
	x, y, w, h := cells(r)
	if w < 2 || h < 2 {
		Fill(s, r, style)
		return
	}
	right, bottom := x+w-1, y+h-1

	for col := x + 1; col < right; col++ {
		s.SetContent(col, y, tcell.RuneHLine, nil, style)
		s.SetContent(col, bottom, tcell.RuneHLine, nil, style)
	}
	for row := y + 1; row < bottom; row++ {
		s.SetContent(x, row, tcell.RuneVLine, nil, style)
		s.SetContent(right, row, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x, y, tcell.RuneULCorner, nil, style)
	s.SetContent(right, y, tcell.RuneURCorner, nil, style)
	s.SetContent(x, bottom, tcell.RuneLLCorner, nil, style)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)

	if title != "" {
		DrawText(s, x+1, y, w-2, title, style)
	}
}

// DrawFloating draws a bordered panel of the given size at the result's
// position with lines inside it. Nothing is drawn while the result is the
// off-screen sentinel. Returns true if the panel was drawn.
func DrawFloating(s tcell.Screen, result floating.Result, size floating.Size, lines []string, style tcell.Style) bool {
	if result.Hidden() {
		return false
	}
	x, y := result.Style.Cell()
	box := floating.NewRect(float64(x), float64(y), size.Width, size.Height)

	Fill(s, box, style)
	DrawBox(s, box, style, "")
	_, _, w, h := cells(box)
	for i, line := range lines {
		if i >= h-2 {
			break
		}
		DrawText(s, x+1, y+1+i, w-2, line, style)
	}
	return true
}
