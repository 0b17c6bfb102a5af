package decor

import (
	"iter"

	"deedles.dev/xiter"
	"deedles.dev/ximage/geom"
)

const (
	// BarHeight is the height of a TopBar in logical pixels.
	BarHeight = 24.0

	// ButtonSize is the width and height of every button.
	ButtonSize = 18.0

	// ButtonSpacing is the gap between neighboring buttons on the
	// right side of the bar.
	ButtonSpacing = 4.0

	// EdgePadding is the distance between the outermost buttons and
	// the edges of the bar.
	EdgePadding = 6.0

	// MinWidth is the narrowest bar that fits every button without any
	// of them overlapping.
	MinWidth = 2*EdgePadding + float64(NumRoles)*ButtonSize + 2*ButtonSpacing
)

// rightCluster lists the buttons that are packed against the right
// edge of the bar, starting with the one closest to the edge.
var rightCluster = [...]Role{RoleMaximize, RoleMinimize, RoleClose}

// Button is a single button in a TopBar.
type Button struct {
	pos geom.Point[float64]
	buf SolidColorBuffer
}

// Position returns the top-left corner of the button relative to the
// bar.
func (b *Button) Position() geom.Point[float64] {
	return b.pos
}

// Bounds returns the area of the bar that the button covers.
func (b *Button) Bounds() geom.Rect[float64] {
	return geom.Rect[float64]{Max: b.buf.Size()}.Add(b.pos)
}

// TopBar is a strip drawn above a window with a row of buttons in it.
// Update must be called with the window's width before the bar is
// rendered or hit tested, and again every time the width changes.
//
// A TopBar is not safe for concurrent use.
type TopBar struct {
	size       geom.Point[float64]
	background SolidColorBuffer
	buttons    [NumRoles]Button
	palette    Palette
}

// New returns a TopBar that uses the colors in p.
func New(p Palette) *TopBar {
	bar := TopBar{palette: p}
	bar.background.SetColor(Premul(p.Background))
	for r := range Roles() {
		bar.buttons[r].buf.SetColor(Premul(p.Button(r)))
	}
	return &bar
}

// Update lays out the bar for a window that is width logical pixels
// wide. Nothing is clamped, so a window too narrow to hold all of the
// buttons will produce overlapping buttons.
func (bar *TopBar) Update(width float64) {
	bar.size = geom.Pt(width, BarHeight)
	bar.background.Resize(bar.size)
	bar.background.SetColor(Premul(bar.palette.Background))

	y := (BarHeight - ButtonSize) / 2
	bar.buttons[RoleScreenshot].pos = geom.Pt(EdgePadding, y)

	x := width - EdgePadding
	for _, r := range rightCluster {
		x -= ButtonSize
		bar.buttons[r].pos = geom.Pt(x, y)
		x -= ButtonSpacing
	}

	cx := bar.buttons[RoleClose].pos.X
	bar.buttons[RolePresetWidth].pos = geom.Pt(cx-ButtonSize, y)

	size := geom.Pt[float64](ButtonSize, ButtonSize)
	for r := range Roles() {
		b := &bar.buttons[r]
		b.buf.Resize(size)
		b.buf.SetColor(Premul(bar.palette.Button(r)))
	}
}

// Size returns the size of the bar as of the last call to Update.
func (bar *TopBar) Size() geom.Point[float64] {
	return bar.size
}

// Bounds returns the bar's area in bar-local coordinates.
func (bar *TopBar) Bounds() geom.Rect[float64] {
	return geom.Rect[float64]{Max: bar.size}
}

// Button returns the button with the given role.
func (bar *TopBar) Button(r Role) *Button {
	return &bar.buttons[r]
}

// ButtonBounds returns the area covered by the button with the given
// role in bar-local coordinates.
func (bar *TopBar) ButtonBounds(r Role) geom.Rect[float64] {
	return bar.buttons[r].Bounds()
}

func (bar *TopBar) Palette() Palette {
	return bar.palette
}

// HitTest returns the role of the button under p, which is in
// bar-local coordinates. Only the vertical extent of the bar is
// checked, so points to the left or right of the bar are still tested
// against the buttons.
func (bar *TopBar) HitTest(p geom.Point[float64]) (Role, bool) {
	if (p.Y < 0) || (p.Y > BarHeight) {
		return 0, false
	}

	for r := range Roles() {
		if p.In(bar.buttons[r].Bounds()) {
			return r, true
		}
	}
	return 0, false
}

// Render returns the elements that draw the bar with its top-left
// corner at origin. The background is always first, followed by the
// buttons in role order. The elements refer to the bar's internal
// state and must not be kept past the current frame.
//
// The renderer is not used directly. It is accepted so that callers
// can pass the same renderer that they will draw the elements with.
func (bar *TopBar) Render(renderer Renderer, origin geom.Point[float64]) iter.Seq[SolidColorElement] {
	background := xiter.Of(FromBuffer(&bar.background, origin, 1, KindUnspecified))
	buttons := xiter.Map(Roles(), func(r Role) SolidColorElement {
		b := &bar.buttons[r]
		return FromBuffer(&b.buf, origin.Add(b.pos), 1, KindUnspecified)
	})
	return xiter.Concat(background, buttons)
}
