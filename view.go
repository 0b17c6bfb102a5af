package main

import (
	"deedles.dev/kumo/decor"
	"deedles.dev/kumo/internal/frame"
	"deedles.dev/kumo/internal/util"
	"deedles.dev/wlr"
	"deedles.dev/ximage/geom"
	"golang.org/x/exp/slices"
)

// ViewArea is the part of a view that a point is over.
type ViewArea int

const (
	ViewAreaNone ViewArea = iota
	ViewAreaSurface
	ViewAreaBar
	ViewAreaBorder
)

// View is a client window along with the decorations that kumo draws
// around it.
type View struct {
	ViewSurface

	// Coords is the top-left corner of the client's content in layout
	// coordinates. The top bar is drawn directly above it.
	Coords geom.Point[float64]

	state frame.State

	bar      *decor.TopBar
	barWidth float64
	barValid bool

	listeners []wlr.Listener
	mapWatch  bool
}

func (server *Server) onNewXDGSurface(surface wlr.XDGSurface) {
	if surface.Role() != wlr.XDGSurfaceRoleToplevel {
		return
	}

	view := View{
		ViewSurface: &viewSurfaceXDG{s: surface},
		bar:         decor.New(server.palette),
	}

	toplevel := surface.Toplevel()
	view.listeners = append(
		view.listeners,
		surface.OnDestroy(func(wlr.XDGSurface) {
			server.onDestroyView(&view)
		}),
		toplevel.OnRequestMove(func(wlr.XDGToplevel, wlr.SeatClient, uint32) {
			server.startMove(&view)
		}),
		toplevel.OnRequestResize(func(t wlr.XDGToplevel, client wlr.SeatClient, serial uint32, edges wlr.Edges) {
			server.startBorderResize(&view, edgesFromWLR(edges))
		}),
		toplevel.OnRequestMinimize(func(wlr.XDGToplevel) {
			server.hideView(&view)
		}),
		toplevel.OnRequestMaximize(func(wlr.XDGToplevel) {
			server.toggleMaximized(&view)
		}),
		toplevel.OnSetTitle(func(t wlr.XDGToplevel, title string) {
			server.onViewTitle(&view)
		}),
	)
	server.watchMap(&view)

	server.views = append(server.views, &view)
}

func (server *Server) onNewXwaylandSurface(surface wlr.XwaylandSurface) {
	view := View{
		ViewSurface: &viewSurfaceXwayland{s: surface},
		bar:         decor.New(server.palette),
	}

	view.listeners = append(
		view.listeners,
		surface.OnDestroy(func(wlr.XwaylandSurface) {
			server.onDestroyView(&view)
		}),
		surface.OnRequestConfigure(func(s wlr.XwaylandSurface, x, y int16, w, h uint16) {
			server.watchMap(&view)
			s.Configure(x, y, w, h)
		}),
		surface.OnRequestMove(func(wlr.XwaylandSurface) {
			server.startMove(&view)
		}),
		surface.OnRequestResize(func(s wlr.XwaylandSurface, edges wlr.Edges) {
			server.startBorderResize(&view, edgesFromWLR(edges))
		}),
		surface.OnRequestMinimize(func(wlr.XwaylandSurface) {
			server.hideView(&view)
		}),
		surface.OnRequestMaximize(func(wlr.XwaylandSurface) {
			server.toggleMaximized(&view)
		}),
		surface.OnSetTitle(func(s wlr.XwaylandSurface, title string) {
			server.watchMap(&view)
			server.onViewTitle(&view)
		}),
	)
	server.watchMap(&view)

	server.views = append(server.views, &view)
}

// watchMap starts listening for the view's surface being mapped and
// unmapped. It does nothing until the view has a surface, and only
// ever attaches the listeners once.
func (server *Server) watchMap(view *View) {
	if view.mapWatch {
		return
	}

	surface := view.Surface()
	if !surface.Valid() {
		return
	}
	view.mapWatch = true

	view.listeners = append(
		view.listeners,
		surface.OnMap(func(wlr.Surface) {
			server.onMapView(view)
		}),
		surface.OnUnmap(func(wlr.Surface) {
			server.onUnmapView(view)
		}),
	)
}

func edgesFromWLR(e wlr.Edges) geom.Edges {
	var edges geom.Edges
	if e&wlr.EdgeTop != 0 {
		edges |= geom.EdgeTop
	}
	if e&wlr.EdgeBottom != 0 {
		edges |= geom.EdgeBottom
	}
	if e&wlr.EdgeLeft != 0 {
		edges |= geom.EdgeLeft
	}
	if e&wlr.EdgeRight != 0 {
		edges |= geom.EdgeRight
	}
	return edges
}

func (server *Server) onDestroyView(view *View) {
	for _, lis := range view.listeners {
		lis.Destroy()
	}
	view.listeners = nil

	if server.targetView() == view {
		server.startNormal()
	}

	server.views = removeView(server.views, view)
	server.hidden = removeView(server.hidden, view)
	if len(server.views) == 0 {
		server.clearFocus()
	}
}

func (server *Server) onViewTitle(view *View) {
	if view.Activated() {
		server.statusBar.SetTitle(server.renderer, view.Title())
	}
}

func (server *Server) onMapView(view *View) {
	out := server.outputAt(server.cursorCoords())
	if out == nil {
		server.focusView(view, view.Surface())
		return
	}

	b := server.outputTilingBounds(out)
	size := geom.PConv[float64](view.Geometry().Size())
	outer := geom.Rt(0, 0, size.X, size.Y+decor.BarHeight).CenterAt(b.Center())
	server.moveViewTo(view, geom.Pt(outer.Min.X, outer.Min.Y+decor.BarHeight))
	server.focusView(view, view.Surface())
}

func (server *Server) onUnmapView(view *View) {
	if server.targetView() == view {
		server.startNormal()
	}
}

func removeView(views []*View, view *View) []*View {
	i := slices.Index(views, view)
	if i < 0 {
		return views
	}
	return slices.Delete(views, i, i+1)
}

// Bounds returns the area covered by the client's content.
func (view *View) Bounds() geom.Rect[float64] {
	size := geom.PConv[float64](view.Geometry().Size())
	return geom.Rect[float64]{Max: size}.Add(view.Coords)
}

// BarOrigin returns the top-left corner of the view's top bar.
func (view *View) BarOrigin() geom.Point[float64] {
	return view.Coords.Sub(geom.Pt(0, decor.BarHeight))
}

// Frame returns the area covered by the client's content and the top
// bar together.
func (view *View) Frame() geom.Rect[float64] {
	return frame.Outer(view.Bounds())
}

// MinSize returns the smallest size that the view's content can be
// resized to.
func (view *View) MinSize() geom.Point[float64] {
	return frame.MinSize(geom.Pt(view.MinWidth(), view.MinHeight()))
}

// layoutBar updates the view's top bar if the width of the view has
// changed since the last time that the bar was laid out.
func (view *View) layoutBar() {
	w := float64(view.Geometry().Dx())
	if view.barValid && (w == view.barWidth) {
		return
	}

	view.bar.Update(w)
	view.barWidth = w
	view.barValid = true
}

// BarAt returns the role of the top bar button under p, which is in
// layout coordinates.
func (view *View) BarAt(p geom.Point[float64]) (decor.Role, bool) {
	view.layoutBar()
	return view.bar.HitTest(p.Sub(view.BarOrigin()))
}

func (server *Server) viewAt(p geom.Point[float64]) (view *View, area ViewArea, surface wlr.Surface, sp geom.Point[float64]) {
	for i := len(server.views) - 1; i >= 0; i-- {
		view := server.views[i]
		if !view.Mapped() {
			continue
		}

		if p.In(view.Frame()) && !p.In(view.Bounds()) {
			return view, ViewAreaBar, wlr.Surface{}, geom.Point[float64]{}
		}

		surface, sp, ok := view.SurfaceAt(p.Sub(view.Coords))
		if ok {
			return view, ViewAreaSurface, surface, sp
		}

		if frame.BorderEdges(view.Frame(), WindowBorder, p) != geom.EdgeNone {
			return view, ViewAreaBorder, wlr.Surface{}, geom.Point[float64]{}
		}
	}

	return nil, ViewAreaNone, wlr.Surface{}, geom.Point[float64]{}
}

func (server *Server) viewForSurface(s wlr.Surface) *View {
	view, _ := util.FindFunc(server.views, func(v *View) bool {
		return v.HasSurface(s)
	})
	return view
}

func (server *Server) focusView(view *View, s wlr.Surface) {
	prevSurface := server.seat.KeyboardState().FocusedSurface()
	if prevSurface == s {
		return
	}
	if prevSurface.Valid() {
		if prev := server.viewForSurface(prevSurface); prev != nil {
			prev.SetActivated(false)
		}
	}

	server.views = append(removeView(server.views, view), view)

	view.SetActivated(true)
	server.statusBar.SetTitle(server.renderer, view.Title())

	if k := server.seat.GetKeyboard(); k != (wlr.Keyboard{}) {
		server.seat.KeyboardNotifyEnter(view.Surface(), k.Keycodes(), k.Modifiers())
	}
}

// clearFocus removes keyboard focus from every client and clears the
// title in the status bar.
func (server *Server) clearFocus() {
	// Entering a nil surface is how wlroots clears keyboard focus.
	server.seat.KeyboardNotifyEnter(wlr.Surface{}, nil, wlr.KeyboardModifiers{})
	server.statusBar.SetTitle(server.renderer, "")
}

func (server *Server) moveViewTo(view *View, p geom.Point[float64]) {
	view.Coords = p

	for _, out := range server.outputs {
		view.Surface().SendEnter(out.Output)
	}
}

func (server *Server) resizeViewTo(view *View, r geom.Rect[float64]) {
	server.moveViewTo(view, r.Min)
	view.Resize(int(r.Dx()), int(r.Dy()))
}

func (server *Server) hideView(view *View) {
	if slices.Contains(server.hidden, view) {
		return
	}

	if server.targetView() == view {
		server.startNormal()
	}

	view.SetActivated(false)
	view.SetMinimized(true)
	server.views = removeView(server.views, view)
	server.hidden = append(server.hidden, view)

	if len(server.views) == 0 {
		server.clearFocus()
		return
	}

	next := server.views[len(server.views)-1]
	server.focusView(next, next.Surface())
}

// unhideLast restores the most recently hidden view.
func (server *Server) unhideLast() {
	if len(server.hidden) == 0 {
		return
	}

	view := server.hidden[len(server.hidden)-1]
	server.hidden = server.hidden[:len(server.hidden)-1]
	view.SetMinimized(false)
	server.views = append(server.views, view)
	server.focusView(view, view.Surface())
}

func (server *Server) toggleMaximized(view *View) {
	if r, ok := view.state.Unmaximize(); ok {
		view.SetMaximized(false)
		server.resizeViewTo(view, r)
		return
	}

	out := server.outputAt(view.Frame().Center())
	if out == nil {
		return
	}

	b := server.outputTilingBounds(out)
	b.Min.Y += decor.BarHeight

	view.SetMaximized(true)
	server.resizeViewTo(view, view.state.Maximize(view.Bounds(), b))
}
