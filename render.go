package main

import (
	"image"
	"image/color"
	"time"

	"deedles.dev/kumo/decor"
	"deedles.dev/wlr"
	"deedles.dev/ximage/geom"
)

// frameRenderer draws decoration elements onto a single output during
// a frame. Elements are given in layout coordinates.
type frameRenderer struct {
	server *Server
	out    *Output
	origin geom.Point[float64]
}

func (fr frameRenderer) RenderElement(e decor.SolidColorElement) {
	r := e.Geometry().Sub(fr.origin)
	fr.server.renderer.RenderRect(r.ImageRect(), e.Color(), fr.out.Output.TransformMatrix())
}

func (server *Server) onFrame(out *Output) {
	_, err := out.Output.AttachRender()
	if err != nil {
		wlr.Log(wlr.Error, "output attach render: %v", err)
		return
	}
	defer out.Output.Commit()

	server.renderer.Begin(out.Output, out.Output.Width(), out.Output.Height())
	defer server.renderer.End()

	server.renderer.Clear(ColorBackground)
	server.renderViews(out)
	if server.statusBar.Output() == out {
		server.renderStatusBar(out)
	}
	server.renderCursor(out)
}

func (server *Server) renderViews(out *Output) {
	fr := frameRenderer{
		server: server,
		out:    out,
		origin: server.outputBounds(out).Min,
	}

	for _, view := range server.views {
		if !view.Mapped() {
			continue
		}

		server.renderView(fr, view)
	}
}

func (server *Server) renderView(fr frameRenderer, view *View) {
	server.renderViewBorder(fr, view)
	server.renderViewBar(fr, view)
	server.renderViewSurfaces(fr, view)
}

func (server *Server) renderViewBorder(fr frameRenderer, view *View) {
	color := ColorInactiveBorder
	if view.Activated() {
		color = ColorActiveBorder
	}

	r := view.Frame().Inset(-WindowBorder).Sub(fr.origin)
	server.renderRectBorder(fr.out, r, color)
}

func (server *Server) renderViewBar(fr frameRenderer, view *View) {
	view.layoutBar()
	for e := range view.bar.Render(fr, view.BarOrigin()) {
		fr.RenderElement(e)
	}
}

func (server *Server) renderViewSurfaces(fr frameRenderer, view *View) {
	p := view.Coords.Sub(fr.origin)
	view.ForEachSurface(func(s wlr.Surface, x, y int) {
		server.renderSurface(fr.out, s, geom.PConv[int](p).Add(geom.Pt(x, y)))
	})
}

func (server *Server) renderRectBorder(out *Output, r geom.Rect[float64], color color.Color) {
	tm := out.Output.TransformMatrix()
	server.renderer.RenderRect(geom.Rt(0, 0, WindowBorder, r.Dy()).Add(r.Min).ImageRect(), color, tm)
	server.renderer.RenderRect(geom.Rt(0, 0, WindowBorder, r.Dy()).Add(geom.Pt(r.Max.X-WindowBorder, r.Min.Y)).ImageRect(), color, tm)
	server.renderer.RenderRect(geom.Rt(0, 0, r.Dx(), WindowBorder).Add(r.Min).ImageRect(), color, tm)
	server.renderer.RenderRect(geom.Rt(0, 0, r.Dx(), WindowBorder).Add(geom.Pt(r.Min.X, r.Max.Y-WindowBorder)).ImageRect(), color, tm)
}

func (server *Server) renderSurface(out *Output, s wlr.Surface, p geom.Point[int]) {
	texture := s.GetTexture()
	if !texture.Valid() {
		return
	}

	current := s.Current()
	r := geom.Rt(0, 0, current.Width(), current.Height()).Add(p)
	tr := current.Transform().Invert()
	m := wlr.ProjectBoxMatrix(r.ImageRect(), tr, 0, out.Output.TransformMatrix())

	server.renderer.RenderTextureWithMatrix(texture, m, 1)
	s.SendFrameDone(time.Now())
}

func (server *Server) statusBarBounds() geom.Rect[float64] {
	out := server.statusBar.Output()
	if out == nil {
		return geom.Rect[float64]{}
	}

	b := server.outputBounds(out)
	b.Max.Y = b.Min.Y + StatusBarHeight
	return b
}

func (server *Server) renderStatusBar(out *Output) {
	tm := out.Output.TransformMatrix()

	b := server.statusBarBounds().Sub(server.outputBounds(out).Min)
	server.renderer.RenderRect(b.ImageRect(), ColorStatusBar, tm)

	title := server.statusBar.Title()
	if !title.Valid() {
		return
	}

	tb := geom.Rt(0, 0, float64(title.Width()), float64(title.Height()))
	tb = tb.CenterAt(b.Center())
	tb = tb.Add(geom.Pt(b.Min.X+WindowBorder-tb.Min.X, 0))
	m := wlr.ProjectBoxMatrix(tb.ImageRect(), wlr.OutputTransformNormal, 0, tm)
	server.renderer.RenderTextureWithMatrix(title, m, 1)
}

func (server *Server) renderCursor(out *Output) {
	out.Output.RenderSoftwareCursors(image.ZR)
}
