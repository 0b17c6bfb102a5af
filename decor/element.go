package decor

import (
	"image/color"

	"deedles.dev/ximage/geom"
)

// Kind is a hint to a Renderer about what an element is being used
// for.
type Kind int

const (
	KindUnspecified Kind = iota
	KindCursor
)

// Renderer is something that can draw the elements produced by a
// TopBar.
type Renderer interface {
	RenderElement(SolidColorElement)
}

// SolidColorElement is a SolidColorBuffer placed at a location on the
// screen. It refers to the buffer that it was created from rather
// than copying it, so it is only valid until that buffer is next
// modified.
type SolidColorElement struct {
	buf   *SolidColorBuffer
	loc   geom.Point[float64]
	alpha float64
	kind  Kind
}

// FromBuffer creates an element that draws buf with its top-left
// corner at loc.
func FromBuffer(buf *SolidColorBuffer, loc geom.Point[float64], alpha float64, kind Kind) SolidColorElement {
	return SolidColorElement{
		buf:   buf,
		loc:   loc,
		alpha: alpha,
		kind:  kind,
	}
}

// Location returns the top-left corner of the element.
func (e SolidColorElement) Location() geom.Point[float64] {
	return e.loc
}

// Geometry returns the area of the screen that the element covers.
func (e SolidColorElement) Geometry() geom.Rect[float64] {
	return geom.Rect[float64]{Max: e.buf.Size()}.Add(e.loc)
}

// Color returns the premultiplied color of the element with its
// alpha applied.
func (e SolidColorElement) Color() color.RGBA {
	c := e.buf.Color()
	if e.alpha >= 1 {
		return c
	}

	a := max(e.alpha, 0)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func (e SolidColorElement) Alpha() float64 {
	return e.alpha
}

func (e SolidColorElement) Kind() Kind {
	return e.kind
}

// Commit returns the commit counter of the underlying buffer.
func (e SolidColorElement) Commit() uint64 {
	return e.buf.Commit()
}
