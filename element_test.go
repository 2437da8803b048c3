package floating

import "testing"

func TestOverflowMode(t *testing.T) {
	type tc struct {
		mode    OverflowMode
		scrolls bool
		str     string
	}

	tests := map[string]tc{
		"visible": {mode: OverflowVisible, str: "visible"},
		"hidden":  {mode: OverflowHidden, str: "hidden"},
		"auto":    {mode: OverflowAuto, scrolls: true, str: "auto"},
		"scroll":  {mode: OverflowScroll, scrolls: true, str: "scroll"},
		"overlay": {mode: OverflowOverlay, scrolls: true, str: "overlay"},
		"unknown": {mode: OverflowMode(99), str: "unknown"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.mode.Scrolls() != tt.scrolls {
				t.Errorf("Scrolls() = %v, want %v", tt.mode.Scrolls(), tt.scrolls)
			}
			if tt.mode.String() != tt.str {
				t.Errorf("String() = %q, want %q", tt.mode.String(), tt.str)
			}
		})
	}
}

func TestFindScrollAncestors(t *testing.T) {
	type tc struct {
		build func() (Element, []Element)
	}

	tests := map[string]tc{
		"nil element": {
			build: func() (Element, []Element) { return nil, nil },
		},
		"detached element": {
			build: func() (Element, []Element) {
				return NewNode(NewRect(0, 0, 1, 1)), nil
			},
		},
		"element itself is excluded": {
			build: func() (Element, []Element) {
				return NewNode(NewRect(0, 0, 1, 1), WithOverflow(OverflowScroll)), nil
			},
		},
		"only scrolling ancestors nearest first": {
			build: func() (Element, []Element) {
				page := NewNode(NewRect(0, 0, 100, 100), WithOverflow(OverflowAuto))
				card := NewNode(NewRect(0, 0, 50, 50), WithOverflow(OverflowHidden))
				list := NewNode(NewRect(0, 0, 50, 20), WithOverflow(OverflowScroll))
				item := NewNode(NewRect(0, 0, 50, 1))
				page.AddChild(card)
				card.AddChild(list)
				list.AddChild(item)
				return item, []Element{list, page}
			},
		},
		"mixed element types": {
			build: func() (Element, []Element) {
				pane := NewNode(NewRect(0, 0, 10, 10), WithOverflow(OverflowAuto))
				return &staticElement{rect: NewRect(0, 0, 1, 1), parent: pane}, []Element{pane}
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			el, want := tt.build()
			got := FindScrollAncestors(el)
			if len(got) != len(want) {
				t.Fatalf("FindScrollAncestors() returned %d elements, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("ancestor %d = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}
