// Package config loads kumo's configuration file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"deedles.dev/kumo/decor"
	"gopkg.in/yaml.v3"
)

// Output configures a single output by name.
type Output struct {
	Name string `yaml:"name"`

	// X and Y place the output in the layout. If either is unset the
	// output is placed automatically.
	X *int `yaml:"x,omitempty"`
	Y *int `yaml:"y,omitempty"`

	// Width and Height select a mode. If either is zero, the output's
	// preferred mode is used.
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`

	Scale float32 `yaml:"scale,omitempty"`
}

// Auto reports whether the output should be placed automatically.
func (out Output) Auto() bool {
	return (out.X == nil) || (out.Y == nil)
}

// Colors overrides decoration colors. Each is a hex string of the
// form #RRGGBB or #RRGGBBAA. Empty strings keep the default.
type Colors struct {
	Background  string `yaml:"background"`
	Screenshot  string `yaml:"screenshot"`
	PresetWidth string `yaml:"preset_width"`
	Close       string `yaml:"close"`
	Minimize    string `yaml:"minimize"`
	Maximize    string `yaml:"maximize"`
}

func (c Colors) button(r decor.Role) string {
	switch r {
	case decor.RoleScreenshot:
		return c.Screenshot
	case decor.RolePresetWidth:
		return c.PresetWidth
	case decor.RoleClose:
		return c.Close
	case decor.RoleMinimize:
		return c.Minimize
	case decor.RoleMaximize:
		return c.Maximize
	default:
		return ""
	}
}

type Config struct {
	Outputs      []Output  `yaml:"outputs"`
	PresetWidths []float64 `yaml:"preset_widths"`

	// Screenshot is the command run by the screenshot button. The
	// window's geometry, formatted as "X,Y WxH", is appended as the
	// last argument.
	Screenshot []string `yaml:"screenshot"`

	Colors Colors `yaml:"colors"`
}

// Default returns the configuration used when there is no file.
func Default() *Config {
	return &Config{
		PresetWidths: append([]float64(nil), decor.DefaultPresetWidths...),
		Screenshot:   []string{"grim", "-g"},
	}
}

// DefaultPath returns the location of the config file, which is
// kumo/config.yaml inside of the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("find config directory: %w", err)
	}
	return filepath.Join(dir, "kumo", "config.yaml"), nil
}

// Load reads and validates the config file at path. If the file does
// not exist, the default configuration is returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read %q: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a config. Fields missing from data keep
// their default values.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	for i, p := range c.PresetWidths {
		if (p <= 0) || (p > 1) {
			return fmt.Errorf("preset_widths[%d]: %v is not in (0, 1]", i, p)
		}
	}

	if len(c.Screenshot) == 0 {
		return errors.New("screenshot: command is empty")
	}

	for i, out := range c.Outputs {
		if out.Name == "" {
			return fmt.Errorf("outputs[%d]: name is required", i)
		}
		if (out.Width < 0) || (out.Height < 0) || (out.Scale < 0) {
			return fmt.Errorf("outputs[%d]: negative size or scale", i)
		}
	}

	if _, err := c.Palette(); err != nil {
		return err
	}

	return nil
}

// Output returns the configuration for the named output.
func (c *Config) Output(name string) (Output, bool) {
	for _, out := range c.Outputs {
		if out.Name == name {
			return out, true
		}
	}
	return Output{}, false
}

// Presets returns the configured preset widths.
func (c *Config) Presets() decor.PresetWidths {
	return decor.PresetWidths(c.PresetWidths)
}

// Palette builds the decoration palette by applying the configured
// colors on top of decor.DefaultPalette.
func (c *Config) Palette() (decor.Palette, error) {
	p := decor.DefaultPalette

	if s := c.Colors.Background; s != "" {
		bg, err := ParseColor(s)
		if err != nil {
			return p, fmt.Errorf("colors.background: %w", err)
		}
		p.Background = bg
	}

	for r := range decor.Roles() {
		s := c.Colors.button(r)
		if s == "" {
			continue
		}

		bc, err := ParseColor(s)
		if err != nil {
			return p, fmt.Errorf("colors: %v button: %w", r, err)
		}
		p.Buttons[r] = bc
	}

	return p, nil
}

// ParseColor parses an unpremultiplied color written as #RRGGBB or
// #RRGGBBAA. The leading # is optional.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
