package decor

import (
	"image"

	"golang.org/x/image/draw"
)

// ImageRenderer is a Renderer that composites elements into an
// in-memory image. Element coordinates are truncated to whole pixels.
type ImageRenderer struct {
	Dst draw.Image
}

func (r ImageRenderer) RenderElement(e SolidColorElement) {
	draw.Draw(
		r.Dst,
		e.Geometry().ImageRect(),
		image.NewUniform(e.Color()),
		image.Point{},
		draw.Over,
	)
}
