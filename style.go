package main

import "image/color"

const (
	WindowBorder    = 2
	StatusBarHeight = 24

	// MinWidth and MinHeight are the smallest content size used for
	// clients that don't report one of their own.
	MinWidth  = 128
	MinHeight = 24
)

var (
	ColorBackground     = color.NRGBA{0x77, 0x77, 0x77, 0xFF}
	ColorActiveBorder   = color.NRGBA{0x50, 0xA1, 0xAD, 0xFF}
	ColorInactiveBorder = color.NRGBA{0x9C, 0xE9, 0xE9, 0xFF}
	ColorStatusBar      = color.NRGBA{0x78, 0xAD, 0x84, 0xFF}
)
