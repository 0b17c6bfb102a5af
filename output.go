package main

import (
	"deedles.dev/kumo/internal/config"
	"deedles.dev/wlr"
	"deedles.dev/ximage/geom"
)

type Output struct {
	Output wlr.Output

	onFrameListener wlr.Listener
}

func (server *Server) outputAt(p geom.Point[float64]) *Output {
	wout := server.outputLayout.OutputAt(p.X, p.Y)
	for _, out := range server.outputs {
		if out.Output == wout {
			return out
		}
	}
	return nil
}

// outputBounds returns the area of the layout covered by out.
func (server *Server) outputBounds(out *Output) geom.Rect[float64] {
	lo := server.outputLayout.Get(out.Output)
	w, h := out.Output.EffectiveResolution()
	return geom.Rt(0, 0, float64(w), float64(h)).Add(geom.Pt(float64(lo.X()), float64(lo.Y())))
}

// outputTilingBounds returns the area of out that windows may be
// placed in, which excludes the status bar.
func (server *Server) outputTilingBounds(out *Output) geom.Rect[float64] {
	b := server.outputBounds(out)
	if server.statusBar.Output() == out {
		b.Min.Y += StatusBarHeight
	}
	return b
}

func (server *Server) onNewOutput(wout wlr.Output) {
	wout.InitRender(server.allocator, server.renderer)

	out := Output{
		Output: wout,
	}
	out.onFrameListener = wout.OnFrame(func(wlr.Output) {
		server.onFrame(&out)
	})
	server.addOutput(&out)

	wout.Commit()
	wout.CreateGlobal()
}

func (server *Server) addOutput(out *Output) {
	server.outputs = append(server.outputs, out)
	if server.statusBar.Output() == nil {
		server.statusBar.SetOutput(out)
	}

	oc, ok := server.Config.Output(out.Output.Name())
	if !ok {
		server.outputLayout.AddAuto(out.Output)
		server.setOutputMode(out, nil)
		return
	}

	server.configureOutput(out, &oc)
}

func (server *Server) configureOutput(out *Output, oc *config.Output) {
	if oc.Auto() {
		server.outputLayout.AddAuto(out.Output)
	} else {
		server.outputLayout.Add(out.Output, *oc.X, *oc.Y)
	}

	server.setOutputMode(out, oc)

	if oc.Scale != 0 {
		out.Output.SetScale(oc.Scale)
	}
}

func (server *Server) setOutputMode(out *Output, oc *config.Output) {
	if (oc != nil) && (oc.Width != 0) && (oc.Height != 0) {
		for mode := range out.Output.Modes() {
			if (mode.Width() == int32(oc.Width)) && (mode.Height() == int32(oc.Height)) {
				out.Output.SetMode(mode)
				return
			}
		}
		wlr.Log(wlr.Error, "output %v has no %vx%v mode", out.Output.Name(), oc.Width, oc.Height)
	}

	mode := out.Output.PreferredMode()
	if mode.Valid() {
		out.Output.SetMode(mode)
	}
}
