package placement

import (
	"testing"

	"github.com/grindlemire/go-floating/internal/geom"
)

func TestShift(t *testing.T) {
	box := geom.Size{Width: 40, Height: 40}
	viewport := geom.Size{Width: 800, Height: 600}

	type tc struct {
		pos      geom.Point
		floating geom.Size
		viewport geom.Size
		shift    bool
		want     geom.Point
	}

	tests := map[string]tc{
		"no overflow passes through": {
			pos:      geom.Point{X: 100, Y: 100},
			floating: box,
			viewport: viewport,
			shift:    true,
			want:     geom.Point{X: 100, Y: 100},
		},
		"disabled passes through": {
			pos:      geom.Point{X: 770, Y: 100},
			floating: box,
			viewport: viewport,
			shift:    false,
			want:     geom.Point{X: 770, Y: 100},
		},
		"clamps right edge": {
			pos:      geom.Point{X: 770, Y: 100},
			floating: box,
			viewport: viewport,
			shift:    true,
			want:     geom.Point{X: 752, Y: 100},
		},
		"clamps left edge": {
			pos:      geom.Point{X: -20, Y: 100},
			floating: box,
			viewport: viewport,
			shift:    true,
			want:     geom.Point{X: 8, Y: 100},
		},
		"clamps both axes": {
			pos:      geom.Point{X: -20, Y: 590},
			floating: box,
			viewport: viewport,
			shift:    true,
			want:     geom.Point{X: 8, Y: 552},
		},
		"wider than padded viewport pins to padding": {
			pos:      geom.Point{X: 5, Y: 100},
			floating: geom.Size{Width: 790, Height: 40},
			viewport: viewport,
			shift:    true,
			want:     geom.Point{X: 8, Y: 100},
		},
		"taller than padded viewport pins to padding": {
			pos:      geom.Point{X: 100, Y: -300},
			floating: geom.Size{Width: 40, Height: 1000},
			viewport: viewport,
			shift:    true,
			want:     geom.Point{X: 100, Y: 8},
		},
		"small viewport still inside": {
			pos:      geom.Point{X: 25, Y: 25},
			floating: geom.Size{Width: 10, Height: 10},
			viewport: geom.Size{Width: 30, Height: 30},
			shift:    true,
			want:     geom.Point{X: 12, Y: 12},
		},
		"viewport smaller than padding": {
			pos:      geom.Point{X: 3, Y: 3},
			floating: geom.Size{Width: 5, Height: 5},
			viewport: geom.Size{Width: 10, Height: 10},
			shift:    true,
			want:     geom.Point{X: 8, Y: 8},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			overflow := DetectOverflow(tt.pos, tt.floating, tt.viewport, 8)
			got := Shift(tt.pos, tt.floating, tt.viewport, 8, overflow, tt.shift)
			if got != tt.want {
				t.Errorf("Shift() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
