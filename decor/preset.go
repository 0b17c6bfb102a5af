package decor

// DefaultPresetWidths are the proportions cycled through by the
// preset width button when nothing else is configured.
var DefaultPresetWidths = PresetWidths{1. / 3, 1. / 2, 2. / 3}

// presetTolerance is how much wider than the current width a preset
// has to be to count as larger. It keeps rounding done by clients
// from getting a window stuck on the same preset.
const presetTolerance = 1.0

// PresetWidths is an ordered list of window widths expressed as
// proportions of the available width.
type PresetWidths []float64

// Next returns the width, in the same units as available, that a
// window that is currently current wide should be resized to. That's
// the first preset that is larger than current, or the first preset
// if there are none. If there are no presets at all, current is
// returned unchanged.
func (p PresetWidths) Next(current, available float64) float64 {
	if len(p) == 0 {
		return current
	}

	for _, prop := range p {
		w := prop * available
		if w > current+presetTolerance {
			return w
		}
	}
	return p[0] * available
}
