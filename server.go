package main

import (
	"fmt"
	"os"
	"os/exec"

	"deedles.dev/kumo/decor"
	"deedles.dev/kumo/internal/config"
	"deedles.dev/wlr"
)

// Protocol versions advertised for the globals that kumo creates.
const (
	compositorVersion = 5
	xdgShellVersion   = 3
)

type Server struct {
	Term   []string
	Config *config.Config

	display wlr.Display

	allocator    wlr.Allocator
	backend      wlr.Backend
	compositor   wlr.Compositor
	cursor       wlr.Cursor
	cursorMgr    wlr.XCursorManager
	outputLayout wlr.OutputLayout
	renderer     wlr.Renderer
	seat         wlr.Seat
	xdgShell     wlr.XDGShell
	xwayland     wlr.Xwayland

	palette   decor.Palette
	statusBar *StatusBar

	outputs   []*Output
	pointers  []wlr.Pointer
	keyboards []*Keyboard
	views     []*View
	hidden    []*View

	newOutput            wlr.Listener
	newInput             wlr.Listener
	cursorMotion         wlr.Listener
	cursorMotionAbsolute wlr.Listener
	cursorButton         wlr.Listener
	cursorAxis           wlr.Listener
	cursorFrame          wlr.Listener
	requestCursor        wlr.Listener
	newXDGSurface        wlr.Listener
	newXwaylandSurface   wlr.Listener

	inputMode InputMode
}

func (server *Server) init() {
	server.display = wlr.CreateDisplay()

	server.backend = wlr.AutocreateBackend(server.display)
	server.renderer = wlr.AutocreateRenderer(server.backend)
	server.renderer.InitWLDisplay(server.display)
	server.allocator = wlr.AutocreateAllocator(server.backend, server.renderer)

	server.compositor = wlr.CreateCompositor(server.display, compositorVersion, server.renderer)
	wlr.CreateDataDeviceManager(server.display)

	server.outputLayout = wlr.CreateOutputLayout()
	server.newOutput = server.backend.OnNewOutput(server.onNewOutput)

	server.cursor = wlr.CreateCursor()
	server.cursor.AttachOutputLayout(server.outputLayout)
	server.cursorMgr = wlr.CreateXCursorManager("", 24)
	server.cursorMgr.Load(1)
	server.cursorMotion = server.cursor.OnMotion(server.onCursorMotion)
	server.cursorMotionAbsolute = server.cursor.OnMotionAbsolute(server.onCursorMotionAbsolute)
	server.cursorButton = server.cursor.OnButton(server.onCursorButton)
	server.cursorAxis = server.cursor.OnAxis(server.onCursorAxis)
	server.cursorFrame = server.cursor.OnFrame(server.onCursorFrame)

	server.newInput = server.backend.OnNewInput(server.onNewInput)
	server.seat = wlr.CreateSeat(server.display, "seat0")
	server.requestCursor = server.seat.OnRequestSetCursor(server.onRequestCursor)

	server.xdgShell = wlr.CreateXDGShell(server.display, xdgShellVersion)
	server.newXDGSurface = server.xdgShell.OnNewSurface(server.onNewXDGSurface)

	server.xwayland = wlr.CreateXwayland(server.display, server.compositor, true)
	if server.xwayland.Valid() {
		server.newXwaylandSurface = server.xwayland.OnNewSurface(server.onNewXwaylandSurface)
		if xc := server.cursorMgr.GetXCursor("left_ptr", 1); xc != (wlr.XCursor{}) {
			server.xwayland.SetCursor(xc.Image(0))
		}
	} else {
		wlr.Log(wlr.Error, "failed to start Xwayland, X11 clients will not work")
	}

	server.statusBar = NewStatusBar()
	server.startNormal()
}

func (server *Server) run() error {
	defer server.destroy()

	err := server.backend.Start()
	if err != nil {
		return fmt.Errorf("start backend: %w", err)
	}

	socket, err := server.display.AddSocketAuto()
	if err != nil {
		return fmt.Errorf("add socket: %w", err)
	}
	err = os.Setenv("WAYLAND_DISPLAY", socket)
	if err != nil {
		return fmt.Errorf("set WAYLAND_DISPLAY: %w", err)
	}

	if server.xwayland.Valid() {
		display := server.xwayland.Server().DisplayName()
		err = os.Setenv("DISPLAY", display)
		if err != nil {
			return fmt.Errorf("set DISPLAY: %w", err)
		}
		wlr.Log(wlr.Debug, "Xwayland running on DISPLAY=%v", display)
	}

	wlr.Log(wlr.Debug, "running on WAYLAND_DISPLAY=%v", socket)
	server.display.Run()
	return nil
}

func (server *Server) destroy() {
	server.statusBar.Destroy()
	if server.xwayland.Valid() {
		server.newXwaylandSurface.Destroy()
		server.xwayland.Destroy()
	}
	server.display.DestroyClients()
	server.display.Destroy()
	server.cursorMgr.Destroy()
	server.cursor.Destroy()
	server.outputLayout.Destroy()
}

// exec starts args as a child process. If extra is not empty, it is
// appended to the arguments.
func (server *Server) exec(args []string, extra ...string) {
	if len(args) == 0 {
		return
	}

	cmd := exec.Command(args[0], append(args[1:len(args):len(args)], extra...)...)
	err := cmd.Start()
	if err != nil {
		wlr.Log(wlr.Error, "start %q: %v", args[0], err)
		return
	}
	go cmd.Wait()
}
