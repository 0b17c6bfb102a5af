// Package frame handles the geometry of a decorated window that
// doesn't depend on the compositor: which border a point is over,
// interactive resizing, and the maximized state.
//
// All rectangles are a window's content area in layout coordinates.
// The top bar sits directly above the content, so the frame that the
// border is drawn around is the content area extended upwards by the
// bar's height.
package frame

import (
	"math"

	"deedles.dev/kumo/decor"
	"deedles.dev/ximage/geom"
)

// Outer returns the area covered by the content area r together with
// its top bar.
func Outer(r geom.Rect[float64]) geom.Rect[float64] {
	r.Min.Y -= decor.BarHeight
	return r
}

// BorderEdges returns the edges of outer whose border of the given
// width p is over. If p is inside of outer or outside of the border
// entirely, it returns geom.EdgeNone.
func BorderEdges(outer geom.Rect[float64], border float64, p geom.Point[float64]) geom.Edges {
	if !p.In(outer.Inset(-border)) || p.In(outer) {
		return geom.EdgeNone
	}

	var edges geom.Edges
	if p.Y < outer.Min.Y {
		edges |= geom.EdgeTop
	}
	if p.Y >= outer.Max.Y {
		edges |= geom.EdgeBottom
	}
	if p.X < outer.Min.X {
		edges |= geom.EdgeLeft
	}
	if p.X >= outer.Max.X {
		edges |= geom.EdgeRight
	}
	return edges
}

// Resize moves the given edges of start by delta. The opposite edges
// stay where they are, and the result is never smaller than least.
func Resize(start geom.Rect[float64], edges geom.Edges, delta, least geom.Point[float64]) geom.Rect[float64] {
	r := start
	if edges&geom.EdgeTop != 0 {
		r.Min.Y = min(start.Min.Y+delta.Y, start.Max.Y-least.Y)
	}
	if edges&geom.EdgeBottom != 0 {
		r.Max.Y = max(start.Max.Y+delta.Y, start.Min.Y+least.Y)
	}
	if edges&geom.EdgeLeft != 0 {
		r.Min.X = min(start.Min.X+delta.X, start.Max.X-least.X)
	}
	if edges&geom.EdgeRight != 0 {
		r.Max.X = max(start.Max.X+delta.X, start.Min.X+least.X)
	}
	return r
}

// MinSize returns the smallest content size that a window may be
// resized to, given the minimum that its client asked for. The width
// is never less than what the top bar needs to fit all of its
// buttons.
func MinSize(client geom.Point[float64]) geom.Point[float64] {
	return geom.Pt(
		max(client.X, decor.MinWidth),
		max(client.Y, 1),
	)
}

// State tracks whether a window is maximized and, if it is, where it
// goes back to when it stops being maximized.
type State struct {
	Maximized bool
	Restore   geom.Rect[float64]
}

// Maximize records current as the area to restore to and returns
// area. If s is already maximized, the recorded area is kept.
func (s *State) Maximize(current, area geom.Rect[float64]) geom.Rect[float64] {
	if !s.Maximized {
		s.Restore = current
		s.Maximized = true
	}
	return area
}

// Unmaximize clears the maximized state and returns the area to
// restore to. It returns false if s wasn't maximized.
func (s *State) Unmaximize() (geom.Rect[float64], bool) {
	if !s.Maximized {
		return geom.Rect[float64]{}, false
	}
	s.Maximized = false
	return s.Restore, true
}

// PresetWidth returns the area that a window currently covering
// current moves to when its preset width button is pressed. A
// maximized window is unmaximized first and resized starting from its
// restore area. Only the width changes.
func (s *State) PresetWidth(current geom.Rect[float64], presets decor.PresetWidths, available float64) geom.Rect[float64] {
	if r, ok := s.Unmaximize(); ok {
		current = r
	}

	w := presets.Next(current.Dx(), available)
	current.Max.X = current.Min.X + math.Round(w)
	return current
}
