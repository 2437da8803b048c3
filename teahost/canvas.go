package teahost

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	floating "github.com/grindlemire/go-floating"
)

// Canvas is a fixed-size text screen that floating panels are overlaid on.
// Lines may contain ANSI styling.
type Canvas struct {
	width  int
	height int
	lines  []string
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  max(width, 0),
		height: max(height, 0),
	}
	c.lines = make([]string, c.height)
	for i := range c.lines {
		c.lines[i] = strings.Repeat(" ", c.width)
	}
	return c
}

// SetBase replaces the canvas contents with view, clipped and padded to size.
func (c *Canvas) SetBase(view string) {
	rows := strings.Split(view, "\n")
	for i := range c.lines {
		line := ""
		if i < len(rows) {
			line = rows[i]
		}
		c.lines[i] = fit(line, c.width)
	}
}

// Place draws block with its top-left corner at (x, y), clipping whatever
// falls outside the canvas.
func (c *Canvas) Place(x, y int, block string) {
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= c.height {
			continue
		}
		c.lines[row] = overlay(c.lines[row], x, line, c.width)
	}
}

// PlaceResult draws block at a floating result's position. Nothing is drawn
// while the result is the off-screen sentinel. Returns true if drawn.
func (c *Canvas) PlaceResult(r floating.Result, block string) bool {
	if r.Hidden() {
		return false
	}
	x, y := r.Style.Cell()
	c.Place(x, y, block)
	return true
}

// String renders the canvas for a bubbletea View.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// Panel renders lines in style and returns the block with its size in cells,
// ready to size the floating node before placing it.
func Panel(style lipgloss.Style, lines ...string) (string, floating.Size) {
	block := style.Render(strings.Join(lines, "\n"))
	return block, floating.Size{
		Width:  float64(lipgloss.Width(block)),
		Height: float64(lipgloss.Height(block)),
	}
}

// fit clips or pads s to exactly width cells.
func fit(s string, width int) string {
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

// overlay writes s over base starting at cell x.
func overlay(base string, x int, s string, width int) string {
	w := ansi.StringWidth(s)
	if x < 0 {
		s = ansi.TruncateLeft(s, -x, "")
		w += x
		x = 0
	}
	if w <= 0 || x >= width {
		return base
	}
	if x+w > width {
		s = ansi.Truncate(s, width-x, "")
		w = width - x
	}

	base = fit(base, width)
	left := ansi.Truncate(base, x, "")
	right := ansi.TruncateLeft(base, x+w, "")
	return left + s + right
}
