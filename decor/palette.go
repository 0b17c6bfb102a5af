package decor

import "image/color"

// Palette is the set of colors used by a TopBar. Colors are stored
// unpremultiplied and converted when they are written into a buffer.
type Palette struct {
	Background color.NRGBA
	Buttons    [NumRoles]color.NRGBA
}

// DefaultPalette is the palette used by bars that aren't given one.
var DefaultPalette = Palette{
	Background: color.NRGBA{0x33, 0x33, 0x33, 0xE6},
	Buttons: [NumRoles]color.NRGBA{
		RoleScreenshot:  {0x5E, 0x81, 0xAC, 0xFF},
		RolePresetWidth: {0xB4, 0x8E, 0xAD, 0xFF},
		RoleClose:       {0xFF, 0x4D, 0x4D, 0xFF},
		RoleMinimize:    {0xFF, 0xB3, 0x33, 0xFF},
		RoleMaximize:    {0x4D, 0xCC, 0x4D, 0xFF},
	},
}

// Button returns the unpremultiplied color for the button with the
// given role.
func (p Palette) Button(r Role) color.NRGBA {
	return p.Buttons[r]
}

// Premul converts c to its premultiplied form.
func Premul(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
