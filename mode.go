package main

import (
	"time"

	"deedles.dev/kumo/internal/frame"
	"deedles.dev/wlr"
	"deedles.dev/ximage/geom"
)

type InputMode interface {
	CursorMoved(*Server, time.Time)
	CursorButtonPressed(*Server, wlr.Pointer, wlr.CursorButton, time.Time)
	CursorButtonReleased(*Server, wlr.Pointer, wlr.CursorButton, time.Time)
}

// targetView returns the view that the current input mode is
// operating on, if any.
func (server *Server) targetView() *View {
	switch m := server.inputMode.(type) {
	case *inputModeMove:
		return m.view
	case *inputModeBorderResize:
		return m.view
	default:
		return nil
	}
}

type inputModeNormal struct{}

func (server *Server) startNormal() {
	server.setCursor("left_ptr")
	server.inputMode = &inputModeNormal{}
}

func (m *inputModeNormal) CursorMoved(server *Server, t time.Time) {
	p := server.cursorCoords()
	view, area, surface, sp := server.viewAt(p)
	if area != ViewAreaSurface {
		cursor := "left_ptr"
		if area == ViewAreaBorder {
			cursor = edgeCursor(frame.BorderEdges(view.Frame(), WindowBorder, p))
		}
		server.setCursor(cursor)
		server.seat.PointerNotifyClearFocus()
		return
	}

	focus := server.seat.PointerState().FocusedSurface() != surface
	server.seat.PointerNotifyEnter(surface, sp.X, sp.Y)
	if !focus {
		server.seat.PointerNotifyMotion(t, sp.X, sp.Y)
	}
}

func (m *inputModeNormal) CursorButtonPressed(server *Server, dev wlr.Pointer, b wlr.CursorButton, t time.Time) {
	p := server.cursorCoords()

	view, area, surface, _ := server.viewAt(p)
	switch area {
	case ViewAreaSurface:
		server.focusView(view, surface)
		server.seat.PointerNotifyButton(t, b, wlr.ButtonPressed)

	case ViewAreaBar:
		server.focusView(view, view.Surface())
		if b != wlr.BtnLeft {
			server.startMove(view)
			return
		}

		role, ok := view.BarAt(p)
		if !ok {
			server.startMove(view)
			return
		}
		server.onBarPressed(view, role)

	case ViewAreaBorder:
		server.focusView(view, view.Surface())
		server.startBorderResize(view, frame.BorderEdges(view.Frame(), WindowBorder, p))

	case ViewAreaNone:
		if p.In(server.statusBarBounds()) {
			server.unhideLast()
			return
		}
		if b == wlr.BtnRight {
			server.exec(server.Term)
		}
	}
}

func (m *inputModeNormal) CursorButtonReleased(server *Server, dev wlr.Pointer, b wlr.CursorButton, t time.Time) {
	server.seat.PointerNotifyButton(t, b, wlr.ButtonReleased)
}

func (m *inputModeNormal) RequestCursor(server *Server, s wlr.Surface, x, y int) {
	server.cursor.SetSurface(s, int32(x), int32(y))
}

type inputModeMove struct {
	view *View
	off  geom.Point[float64]
}

func (server *Server) startMove(view *View) {
	if view.state.Maximized {
		return
	}

	server.setCursor("grabbing")
	server.inputMode = &inputModeMove{
		view: view,
		off:  server.cursorCoords().Sub(view.Coords),
	}
}

func (m *inputModeMove) CursorMoved(server *Server, t time.Time) {
	server.moveViewTo(m.view, server.cursorCoords().Sub(m.off))
}

func (m *inputModeMove) CursorButtonPressed(server *Server, dev wlr.Pointer, b wlr.CursorButton, t time.Time) {
}

func (m *inputModeMove) CursorButtonReleased(server *Server, dev wlr.Pointer, b wlr.CursorButton, t time.Time) {
	server.startNormal()
}

// inputModeBorderResize resizes a view by dragging some of its edges.
// The edges follow the cursor, and the top edge is the top of the
// view's bar, so the bar is laid out again as soon as the client
// commits its new width.
type inputModeBorderResize struct {
	view  *View
	edges geom.Edges
	start geom.Rect[float64]
	grab  geom.Point[float64]
}

func (server *Server) startBorderResize(view *View, edges geom.Edges) {
	if view.state.Maximized || (edges == geom.EdgeNone) {
		return
	}

	view.SetResizing(true)
	server.setCursor(edgeCursor(edges))
	server.inputMode = &inputModeBorderResize{
		view:  view,
		edges: edges,
		start: view.Bounds(),
		grab:  server.cursorCoords(),
	}
}

func (m *inputModeBorderResize) CursorMoved(server *Server, t time.Time) {
	delta := server.cursorCoords().Sub(m.grab)
	r := frame.Resize(m.start, m.edges, delta, m.view.MinSize())
	server.resizeViewTo(m.view, r)
}

func (m *inputModeBorderResize) CursorButtonPressed(server *Server, dev wlr.Pointer, b wlr.CursorButton, t time.Time) {
}

func (m *inputModeBorderResize) CursorButtonReleased(server *Server, dev wlr.Pointer, b wlr.CursorButton, t time.Time) {
	m.view.SetResizing(false)
	server.startNormal()
}

// edgeCursor returns the name of the cursor image shown while over or
// dragging the given edges.
func edgeCursor(edges geom.Edges) string {
	switch edges {
	case geom.EdgeTop:
		return "top_side"
	case geom.EdgeBottom:
		return "bottom_side"
	case geom.EdgeLeft:
		return "left_side"
	case geom.EdgeRight:
		return "right_side"
	case geom.EdgeTop | geom.EdgeLeft:
		return "top_left_corner"
	case geom.EdgeTop | geom.EdgeRight:
		return "top_right_corner"
	case geom.EdgeBottom | geom.EdgeLeft:
		return "bottom_left_corner"
	case geom.EdgeBottom | geom.EdgeRight:
		return "bottom_right_corner"
	default:
		return "left_ptr"
	}
}
