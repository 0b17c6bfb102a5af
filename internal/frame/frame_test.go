package frame

import (
	"testing"

	"deedles.dev/kumo/decor"
	"deedles.dev/ximage/geom"
)

func TestOuter(t *testing.T) {
	r := Outer(geom.Rt[float64](10, 100, 410, 400))
	if r != geom.Rt[float64](10, 76, 410, 400) {
		t.Fatalf("Outer = %v", r)
	}
}

func TestBorderEdges(t *testing.T) {
	outer := geom.Rt[float64](100, 100, 300, 200)

	tests := []struct {
		name  string
		p     geom.Point[float64]
		edges geom.Edges
	}{
		{"Inside", geom.Pt[float64](150, 150), geom.EdgeNone},
		{"InsideMin", geom.Pt[float64](100, 100), geom.EdgeNone},
		{"Top", geom.Pt[float64](150, 99), geom.EdgeTop},
		{"TopOuterRow", geom.Pt[float64](150, 98), geom.EdgeTop},
		{"AboveBorder", geom.Pt(150, 97.9), geom.EdgeNone},
		{"Bottom", geom.Pt[float64](150, 200), geom.EdgeBottom},
		{"Left", geom.Pt[float64](99, 150), geom.EdgeLeft},
		{"Right", geom.Pt(300.5, 150), geom.EdgeRight},
		{"TopLeft", geom.Pt[float64](98, 98), geom.EdgeTop | geom.EdgeLeft},
		{"BottomRight", geom.Pt[float64](301, 201), geom.EdgeBottom | geom.EdgeRight},
		{"FarAway", geom.Pt[float64](0, 0), geom.EdgeNone},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			edges := BorderEdges(outer, 2, test.p)
			if edges != test.edges {
				t.Fatalf("BorderEdges(%v) = %v, expected %v", test.p, edges, test.edges)
			}
		})
	}
}

func TestResize(t *testing.T) {
	start := geom.Rt[float64](100, 100, 400, 300)
	least := geom.Pt[float64](150, 50)

	tests := []struct {
		name   string
		edges  geom.Edges
		delta  geom.Point[float64]
		result geom.Rect[float64]
	}{
		{"None", geom.EdgeNone, geom.Pt[float64](30, 30), start},
		{"Right", geom.EdgeRight, geom.Pt[float64](50, 20), geom.Rt[float64](100, 100, 450, 300)},
		{"Left", geom.EdgeLeft, geom.Pt[float64](-20, 20), geom.Rt[float64](80, 100, 400, 300)},
		{"Top", geom.EdgeTop, geom.Pt[float64](5, -10), geom.Rt[float64](100, 90, 400, 300)},
		{"Bottom", geom.EdgeBottom, geom.Pt[float64](5, 10), geom.Rt[float64](100, 100, 400, 310)},
		{"Corner", geom.EdgeBottom | geom.EdgeRight, geom.Pt[float64](10, 10), geom.Rt[float64](100, 100, 410, 310)},
		{"RightClamped", geom.EdgeRight, geom.Pt[float64](-500, 0), geom.Rt[float64](100, 100, 250, 300)},
		{"LeftClamped", geom.EdgeLeft, geom.Pt[float64](500, 0), geom.Rt[float64](250, 100, 400, 300)},
		{"TopClamped", geom.EdgeTop, geom.Pt[float64](0, 500), geom.Rt[float64](100, 250, 400, 300)},
		{"BottomClamped", geom.EdgeBottom, geom.Pt[float64](0, -500), geom.Rt[float64](100, 100, 400, 150)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := Resize(start, test.edges, test.delta, least)
			if r != test.result {
				t.Fatalf("Resize = %v, expected %v", r, test.result)
			}
		})
	}
}

func TestMinSize(t *testing.T) {
	if s := MinSize(geom.Pt[float64](0, 0)); s != geom.Pt(decor.MinWidth, 1) {
		t.Errorf("MinSize(0, 0) = %v", s)
	}
	if s := MinSize(geom.Pt[float64](500, 300)); s != geom.Pt[float64](500, 300) {
		t.Errorf("MinSize(500, 300) = %v", s)
	}
}

func TestStateMaximize(t *testing.T) {
	var s State
	current := geom.Rt[float64](10, 34, 210, 134)
	area := geom.Rt[float64](0, 48, 1920, 1080)

	if r := s.Maximize(current, area); r != area {
		t.Fatalf("Maximize = %v", r)
	}
	if !s.Maximized || s.Restore != current {
		t.Fatalf("after Maximize: %+v", s)
	}

	s.Maximize(area, area)
	if s.Restore != current {
		t.Fatalf("second Maximize replaced restore area with %v", s.Restore)
	}

	r, ok := s.Unmaximize()
	if !ok || r != current {
		t.Fatalf("Unmaximize = (%v, %v)", r, ok)
	}
	if s.Maximized {
		t.Fatal("still maximized")
	}
	if _, ok := s.Unmaximize(); ok {
		t.Fatal("Unmaximize succeeded twice")
	}
}

func TestStatePresetWidth(t *testing.T) {
	presets := decor.PresetWidths{0.25, 0.5}

	t.Run("Floating", func(t *testing.T) {
		var s State
		r := s.PresetWidth(geom.Rt[float64](40, 60, 140, 260), presets, 1000)
		if r != geom.Rt[float64](40, 60, 290, 260) {
			t.Fatalf("PresetWidth = %v", r)
		}
	})

	t.Run("Maximized", func(t *testing.T) {
		var s State
		restore := geom.Rt[float64](40, 60, 140, 260)
		area := geom.Rt[float64](0, 48, 1000, 800)
		s.Maximize(restore, area)

		r := s.PresetWidth(area, presets, 1000)
		if r != geom.Rt[float64](40, 60, 290, 260) {
			t.Fatalf("PresetWidth = %v, expected it to start from the restore area", r)
		}
		if s.Maximized {
			t.Fatal("still maximized")
		}

		s.Maximize(r, area)
		if s.Restore != r {
			t.Fatalf("restore area = %v, expected %v", s.Restore, r)
		}
	})
}
