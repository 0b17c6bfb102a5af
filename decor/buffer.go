package decor

import (
	"image/color"

	"deedles.dev/ximage/geom"
)

// SolidColorBuffer is a rectangle of a single color. It only tracks
// what should be drawn. Actually drawing it is left to a Renderer.
//
// Every change to the buffer's size or color increments its commit
// counter, which renderers can use to skip work for buffers that
// haven't changed since the last frame.
type SolidColorBuffer struct {
	size   geom.Point[float64]
	color  color.RGBA
	commit uint64
}

// NewSolidColorBuffer returns a buffer of the given size filled with
// c, which is converted to premultiplied alpha if it isn't already.
func NewSolidColorBuffer(size geom.Point[float64], c color.Color) *SolidColorBuffer {
	return &SolidColorBuffer{
		size:  size,
		color: Premul(c),
	}
}

// Resize sets the size of the buffer.
func (buf *SolidColorBuffer) Resize(size geom.Point[float64]) {
	if size == buf.size {
		return
	}
	buf.size = size
	buf.commit++
}

// SetColor sets the premultiplied color of the buffer.
func (buf *SolidColorBuffer) SetColor(c color.RGBA) {
	if c == buf.color {
		return
	}
	buf.color = c
	buf.commit++
}

func (buf *SolidColorBuffer) Size() geom.Point[float64] {
	return buf.size
}

func (buf *SolidColorBuffer) Color() color.RGBA {
	return buf.color
}

func (buf *SolidColorBuffer) Commit() uint64 {
	return buf.commit
}
