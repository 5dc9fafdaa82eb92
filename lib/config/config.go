package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/fosdem/glshapes/lib/utils"
	yaml "github.com/goccy/go-yaml"
)

const (
	DefaultTitle    = "Cuadrado Negro Movido hacia Arriba"
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultCloseKey = "A"
)

type Config struct {
	Window WindowCfg
	// CloseKey names the one key that ends the program, e.g. "A" or "Escape".
	CloseKey string `yaml:"close_key"`
	// ClearColour is a #RRGGBBAA hex colour. Empty means the default grey.
	ClearColour string `yaml:"clear_colour"`
	Api         *ApiCfg
}

type WindowCfg struct {
	Title     string
	Width     int
	Height    int
	Resizable *bool
}

type ApiCfg struct {
	Bind    string
	Metrics bool
}

// Default is what runs when no config file is given.
func Default() *Config {
	return &Config{
		Window: WindowCfg{
			Title:  DefaultTitle,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		CloseKey: DefaultCloseKey,
	}
}

// Parse reads a config file. Anything the file leaves out keeps its
// default value.
func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	m := yaml.NewDecoder(f, yaml.DisallowUnknownField())
	cfg := Default()
	err = m.Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", filename, err)
	}
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.CloseKey == "" {
		return fmt.Errorf("close_key must not be empty")
	}
	if c.ClearColour != "" && !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.ClearColour)
	}
	if c.Api != nil && c.Api.Bind == "" {
		return fmt.Errorf("api.bind must be set when the api section is present")
	}
	return nil
}

// Clear returns the colour the framebuffer is cleared to.
func (c *Config) Clear() utils.Colour {
	if c.ClearColour == "" {
		return utils.Grey
	}
	colour, err := utils.ColourParse(c.ClearColour)
	if err != nil {
		return utils.Grey
	}
	return colour
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Window:\n")
	b.WriteString(fmt.Sprintf("  %q %dx%d\n", c.Window.Title, c.Window.Width, c.Window.Height))
	if c.Window.Resizable != nil {
		b.WriteString(fmt.Sprintf("  resizable: %t\n", *c.Window.Resizable))
	}

	b.WriteString(fmt.Sprintf("\nClose key: %s\n", c.CloseKey))
	b.WriteString(fmt.Sprintf("Clear colour: %s\n", c.Clear()))

	if c.Api != nil {
		b.WriteString(fmt.Sprintf("\nApi: %s (metrics: %t)\n", c.Api.Bind, c.Api.Metrics))
	}

	return b.String()
}
