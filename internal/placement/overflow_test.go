package placement

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grindlemire/go-floating/internal/geom"
)

func TestDetectOverflow(t *testing.T) {
	viewport := geom.Size{Width: 800, Height: 600}
	box := geom.Size{Width: 40, Height: 40}

	type tc struct {
		pos      geom.Point
		floating geom.Size
		want     Overflow
	}

	tests := map[string]tc{
		"inside": {
			pos:      geom.Point{X: 100, Y: 100},
			floating: box,
			want:     Overflow{},
		},
		"touching padding edge": {
			pos:      geom.Point{X: 8, Y: 552},
			floating: box,
			want:     Overflow{},
		},
		"left": {
			pos:      geom.Point{X: 2, Y: 100},
			floating: box,
			want:     Overflow{Left: 6, Total: 6},
		},
		"right": {
			pos:      geom.Point{X: 770, Y: 100},
			floating: box,
			want:     Overflow{Right: 18, Total: 18},
		},
		"top": {
			pos:      geom.Point{X: 100, Y: -10},
			floating: box,
			want:     Overflow{Top: 18, Total: 18},
		},
		"bottom": {
			pos:      geom.Point{X: 100, Y: 570},
			floating: box,
			want:     Overflow{Bottom: 18, Total: 18},
		},
		"corner": {
			pos:      geom.Point{X: -2, Y: -2},
			floating: box,
			want:     Overflow{Left: 10, Top: 10, Total: 20},
		},
		"wider than viewport": {
			pos:      geom.Point{X: 0, Y: 100},
			floating: geom.Size{Width: 900, Height: 40},
			want:     Overflow{Left: 8, Right: 108, Total: 116},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := DetectOverflow(tt.pos, tt.floating, viewport, 8)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DetectOverflow() mismatch (-want +got):\n%s", diff)
			}
			if got.Fits() != (tt.want.Total == 0) {
				t.Errorf("Fits() = %v with total %v", got.Fits(), got.Total)
			}
		})
	}
}

func TestDetectOverflow_NeverNegative(t *testing.T) {
	viewport := geom.Size{Width: 100, Height: 100}
	for x := -50.0; x <= 150; x += 25 {
		for y := -50.0; y <= 150; y += 25 {
			o := DetectOverflow(geom.Point{X: x, Y: y}, geom.Size{Width: 20, Height: 20}, viewport, 4)
			if o.Left < 0 || o.Right < 0 || o.Top < 0 || o.Bottom < 0 {
				t.Fatalf("negative edge at (%v, %v): %+v", x, y, o)
			}
			if o.Total != o.Left+o.Right+o.Top+o.Bottom {
				t.Fatalf("total mismatch at (%v, %v): %+v", x, y, o)
			}
		}
	}
}
