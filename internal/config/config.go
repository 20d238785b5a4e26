// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MinHeaderWidth fits the longest section title.
const MinHeaderWidth = 30

// Config holds all contactbook configuration.
type Config struct {
	Display Display `yaml:"display"`
}

// Display holds terminal presentation settings.
type Display struct {
	ClearScreen bool   `yaml:"clear_screen"` // Clear the screen before each section
	Color       string `yaml:"color"`        // "auto" | "always" | "never"
	HeaderWidth int    `yaml:"header_width"` // Width of the "=" rules around titles
	Pager       bool   `yaml:"pager"`        // Page long tables on a terminal
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Display: Display{
			ClearScreen: true,
			Color:       "auto",
			HeaderWidth: 50,
			Pager:       true,
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	return LoadLayered(path)
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	switch c.Display.Color {
	case "auto", "always", "never":
		// valid
	default:
		return fmt.Errorf("config: display.color must be \"auto\", \"always\" or \"never\", got %q", c.Display.Color)
	}
	if c.Display.HeaderWidth < MinHeaderWidth {
		return fmt.Errorf("config: display.header_width must be at least %d, got %d", MinHeaderWidth, c.Display.HeaderWidth)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: CONTACTBOOK_COLOR, CONTACTBOOK_PAGER,
// CONTACTBOOK_CLEAR_SCREEN and NO_COLOR. CONTACTBOOK_COLOR wins over NO_COLOR.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("NO_COLOR"); v != "" {
		c.Display.Color = "never"
	}
	if v := os.Getenv("CONTACTBOOK_COLOR"); v != "" {
		c.Display.Color = v
	}
	if err := envBool("CONTACTBOOK_PAGER", &c.Display.Pager); err != nil {
		return err
	}
	if err := envBool("CONTACTBOOK_CLEAR_SCREEN", &c.Display.ClearScreen); err != nil {
		return err
	}
	return nil
}

func envBool(name string, dst *bool) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("config: invalid %s %q: %w", name, v, err)
	}
	*dst = b
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Display *rawDisplay `yaml:"display"`
}

type rawDisplay struct {
	ClearScreen *bool   `yaml:"clear_screen"`
	Color       *string `yaml:"color"`
	HeaderWidth *int    `yaml:"header_width"`
	Pager       *bool   `yaml:"pager"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Display == nil {
		return
	}
	d := layer.Display
	if d.ClearScreen != nil {
		c.Display.ClearScreen = *d.ClearScreen
	}
	if d.Color != nil {
		c.Display.Color = *d.Color
	}
	if d.HeaderWidth != nil {
		c.Display.HeaderWidth = *d.HeaderWidth
	}
	if d.Pager != nil {
		c.Display.Pager = *d.Pager
	}
}
