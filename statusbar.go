package main

import (
	"image"

	"deedles.dev/wlr"
)

// StatusBar is a strip across the top of one output that shows the
// title of the focused view. Clicking it restores the most recently
// minimized view.
type StatusBar struct {
	out   *Output
	text  string
	title wlr.Texture
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

func (sb *StatusBar) Output() *Output {
	return sb.out
}

func (sb *StatusBar) SetOutput(out *Output) {
	sb.out = out
}

func (sb *StatusBar) Title() wlr.Texture {
	return sb.title
}

func (sb *StatusBar) SetTitle(r wlr.Renderer, text string) {
	if text == sb.text {
		return
	}
	sb.text = text

	if sb.title.Valid() {
		sb.title.Destroy()
	}
	if text == "" {
		sb.title = wlr.Texture{}
		return
	}
	sb.title = CreateTextTexture(r, image.White, text)
}

func (sb *StatusBar) Destroy() {
	if sb.title.Valid() {
		sb.title.Destroy()
	}
}
