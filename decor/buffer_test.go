package decor

import (
	"image/color"
	"testing"

	"deedles.dev/ximage/geom"
)

func TestSolidColorBufferCommit(t *testing.T) {
	buf := NewSolidColorBuffer(geom.Pt[float64](10, 10), color.NRGBA{0xFF, 0, 0, 0x80})
	if c := buf.Color(); c != (color.RGBA{0x80, 0, 0, 0x80}) {
		t.Fatalf("color = %v", c)
	}

	tests := []struct {
		name   string
		change func()
		commit uint64
	}{
		{"SameSize", func() { buf.Resize(geom.Pt[float64](10, 10)) }, 0},
		{"NewSize", func() { buf.Resize(geom.Pt[float64](20, 10)) }, 1},
		{"SameColor", func() { buf.SetColor(color.RGBA{0x80, 0, 0, 0x80}) }, 1},
		{"NewColor", func() { buf.SetColor(color.RGBA{0, 0, 0xFF, 0xFF}) }, 2},
	}
	for _, test := range tests {
		test.change()
		if c := buf.Commit(); c != test.commit {
			t.Fatalf("%v: commit = %v, expected %v", test.name, c, test.commit)
		}
	}
}

func TestUpdateKeepsCommits(t *testing.T) {
	bar := New(DefaultPalette)
	bar.Update(500)
	before := bar.Button(RoleClose).buf.Commit()

	bar.Update(500)
	if c := bar.Button(RoleClose).buf.Commit(); c != before {
		t.Fatalf("commit = %v, expected %v", c, before)
	}

	bar.Update(600)
	if c := bar.background.Commit(); c == 0 {
		t.Fatal("background was never committed")
	}
}

func TestElementAlpha(t *testing.T) {
	buf := NewSolidColorBuffer(geom.Pt[float64](4, 4), color.RGBA{0x80, 0x40, 0x20, 0xFF})

	tests := []struct {
		alpha float64
		color color.RGBA
	}{
		{1, color.RGBA{0x80, 0x40, 0x20, 0xFF}},
		{2, color.RGBA{0x80, 0x40, 0x20, 0xFF}},
		{0.5, color.RGBA{0x40, 0x20, 0x10, 0x7F}},
		{0, color.RGBA{}},
		{-1, color.RGBA{}},
	}
	for _, test := range tests {
		e := FromBuffer(buf, geom.Pt[float64](1, 2), test.alpha, KindCursor)
		if c := e.Color(); c != test.color {
			t.Errorf("alpha %v: color = %v, expected %v", test.alpha, c, test.color)
		}
		if g := e.Geometry(); g != geom.Rt[float64](1, 2, 5, 6) {
			t.Errorf("alpha %v: geometry = %v", test.alpha, g)
		}
	}
}
