package main

import (
	"fmt"
	"image"

	"deedles.dev/wlr"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	fontOptions = opentype.FaceOptions{
		Size: 14,
		DPI:  72,
	}

	titleFace font.Face
)

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Errorf("parse font: %w", err))
	}

	titleFace, err = opentype.NewFace(f, &fontOptions)
	if err != nil {
		panic(fmt.Errorf("create font face: %w", err))
	}
}

// CreateTextTexture renders str into a new texture using src as the
// text color.
func CreateTextTexture(r wlr.Renderer, src image.Image, str string) wlr.Texture {
	fdraw := font.Drawer{
		Src:  src,
		Face: titleFace,
		Dot:  fixed.P(0, int(fontOptions.Size)),
	}

	extents, _ := fdraw.BoundString(str)
	buf := image.NewNRGBA(image.Rect(
		0,
		0,
		(extents.Max.X - extents.Min.X).Ceil(),
		int(fontOptions.Size)+fdraw.Face.Metrics().Descent.Ceil(),
	))
	fdraw.Dst = buf
	fdraw.DrawString(str)

	return wlr.TextureFromImage(r, buf)
}
