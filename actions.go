package main

import (
	"fmt"
	"math"

	"deedles.dev/kumo/decor"
	"deedles.dev/wlr"
)

// onBarPressed performs the action for the top bar button with the
// given role.
func (server *Server) onBarPressed(view *View, role decor.Role) {
	wlr.Log(wlr.Debug, "%q: %v pressed", view.Title(), role)

	switch role {
	case decor.RoleScreenshot:
		server.screenshotView(view)
	case decor.RolePresetWidth:
		server.cyclePresetWidth(view)
	case decor.RoleClose:
		err := view.Close()
		if err != nil {
			wlr.Log(wlr.Error, "close %q: %v", view.Title(), err)
		}
	case decor.RoleMinimize:
		server.hideView(view)
	case decor.RoleMaximize:
		server.toggleMaximized(view)
	}
}

// screenshotView runs the screenshot command with the geometry of the
// view and its decorations in the "X,Y WxH" form understood by grim
// and slurp.
func (server *Server) screenshotView(view *View) {
	f := view.Frame()
	g := fmt.Sprintf(
		"%d,%d %dx%d",
		int(math.Round(f.Min.X)),
		int(math.Round(f.Min.Y)),
		int(math.Round(f.Dx())),
		int(math.Round(f.Dy())),
	)
	server.exec(server.Config.Screenshot, g)
}

// cyclePresetWidth resizes the view to the next preset width. A
// maximized view is unmaximized first, and the preset is applied to
// the area that it would have been restored to.
func (server *Server) cyclePresetWidth(view *View) {
	out := server.outputAt(view.Frame().Center())
	if out == nil {
		return
	}

	if view.state.Maximized {
		view.SetMaximized(false)
	}

	avail := server.outputTilingBounds(out).Dx()
	r := view.state.PresetWidth(view.Bounds(), server.Config.Presets(), avail)
	server.resizeViewTo(view, r)
}
