package config

import (
	"image/color"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"deedles.dev/kumo/decor"
)

func TestDefaultValidates(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}

	p, err := c.Palette()
	if err != nil {
		t.Fatalf("palette: %v", err)
	}
	if p != decor.DefaultPalette {
		t.Fatalf("palette = %+v", p)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !slices.Equal(c.PresetWidths, []float64(decor.DefaultPresetWidths)) {
		t.Fatalf("preset widths = %v", c.PresetWidths)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := strings.Join([]string{
		"outputs:",
		"  - name: DP-1",
		"    x: 0",
		"    y: 0",
		"    width: 2560",
		"    height: 1440",
		"    scale: 1.5",
		"  - name: HDMI-A-1",
		"preset_widths: [0.25, 0.5, 1]",
		"screenshot: [grim, -t, png, -g]",
		"colors:",
		"  background: \"#102030\"",
		"  close: \"#ff000080\"",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	dp, ok := c.Output("DP-1")
	if !ok || dp.Auto() || *dp.X != 0 || dp.Width != 2560 || dp.Scale != 1.5 {
		t.Fatalf("DP-1 = %+v", dp)
	}
	if hdmi, ok := c.Output("HDMI-A-1"); !ok || !hdmi.Auto() {
		t.Fatalf("HDMI-A-1 = %+v", hdmi)
	}
	if _, ok := c.Output("eDP-1"); ok {
		t.Fatal("found unconfigured output")
	}

	if next := c.Presets().Next(100, 1000); next != 250 {
		t.Fatalf("next preset = %v", next)
	}
	if !slices.Equal(c.Screenshot, []string{"grim", "-t", "png", "-g"}) {
		t.Fatalf("screenshot = %v", c.Screenshot)
	}

	p, err := c.Palette()
	if err != nil {
		t.Fatalf("palette: %v", err)
	}
	if p.Background != (color.NRGBA{0x10, 0x20, 0x30, 0xFF}) {
		t.Errorf("background = %v", p.Background)
	}
	if p.Button(decor.RoleClose) != (color.NRGBA{0xFF, 0, 0, 0x80}) {
		t.Errorf("close = %v", p.Button(decor.RoleClose))
	}
	if p.Button(decor.RoleMaximize) != decor.DefaultPalette.Button(decor.RoleMaximize) {
		t.Errorf("maximize = %v", p.Button(decor.RoleMaximize))
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Syntax", "outputs: [\n"},
		{"PresetZero", "preset_widths: [0]\n"},
		{"PresetTooLarge", "preset_widths: [0.5, 1.5]\n"},
		{"EmptyScreenshot", "screenshot: []\n"},
		{"UnnamedOutput", "outputs:\n  - width: 100\n"},
		{"NegativeScale", "outputs:\n  - name: DP-1\n    scale: -1\n"},
		{"BadColor", "colors:\n  minimize: \"#12345\"\n"},
		{"BadHex", "colors:\n  background: \"#zzzzzz\"\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Parse([]byte(test.data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in  string
		out color.NRGBA
	}{
		{"#000000", color.NRGBA{0, 0, 0, 0xFF}},
		{"ffb333", color.NRGBA{0xFF, 0xB3, 0x33, 0xFF}},
		{"#33333380", color.NRGBA{0x33, 0x33, 0x33, 0x80}},
	}
	for _, test := range tests {
		c, err := ParseColor(test.in)
		if err != nil {
			t.Fatalf("%q: %v", test.in, err)
		}
		if c != test.out {
			t.Errorf("%q = %v, expected %v", test.in, c, test.out)
		}
	}
}
