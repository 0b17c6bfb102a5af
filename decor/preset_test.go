package decor

import "testing"

func TestPresetWidthsNext(t *testing.T) {
	tests := []struct {
		name      string
		presets   PresetWidths
		current   float64
		available float64
		next      float64
	}{
		{"Smaller", DefaultPresetWidths, 100, 1200, 400},
		{"AtFirst", DefaultPresetWidths, 400, 1200, 600},
		{"WithinTolerance", DefaultPresetWidths, 599.5, 1200, 800},
		{"Wrap", DefaultPresetWidths, 800, 1200, 400},
		{"Wider", DefaultPresetWidths, 1200, 1200, 400},
		{"Full", PresetWidths{1}, 300, 900, 900},
		{"None", nil, 321, 1200, 321},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			next := test.presets.Next(test.current, test.available)
			if next != test.next {
				t.Fatalf("Next(%v, %v) = %v, expected %v", test.current, test.available, next, test.next)
			}
		})
	}
}
