package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every step input. GitHub Actions exposes each declared input
// as an INPUT_<NAME> environment variable, so the whole struct is populated
// in one pass with the "INPUT" prefix and nothing else reads the environment.
type Config struct {
	GistID   string `envconfig:"GISTID"`
	Auth     string `envconfig:"AUTH"`
	Filename string `envconfig:"FILENAME"`

	Label   string `envconfig:"LABEL"`
	Message string `envconfig:"MESSAGE"`

	Color                string `envconfig:"COLOR"`
	ValColorRange        string `envconfig:"VALCOLORRANGE"`
	MinColorRange        string `envconfig:"MINCOLORRANGE"`
	MaxColorRange        string `envconfig:"MAXCOLORRANGE"`
	InvertColorRange     string `envconfig:"INVERTCOLORRANGE"`
	ColorRangeSaturation string `envconfig:"COLORRANGESATURATION"`
	ColorRangeLightness  string `envconfig:"COLORRANGELIGHTNESS"`

	LabelColor   string `envconfig:"LABELCOLOR"`
	IsError      string `envconfig:"ISERROR"`
	NamedLogo    string `envconfig:"NAMEDLOGO"`
	LogoSVG      string `envconfig:"LOGOSVG"`
	LogoColor    string `envconfig:"LOGOCOLOR"`
	LogoWidth    string `envconfig:"LOGOWIDTH"`
	LogoPosition string `envconfig:"LOGOPOSITION"`
	Style        string `envconfig:"STYLE"`
	CacheSeconds string `envconfig:"CACHESECONDS"`

	ForceUpdate string `envconfig:"FORCEUPDATE"`
}

// Load reads the step inputs from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("input", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read step inputs: %w", err)
	}
	cfg.sanitize()
	return &cfg, nil
}

// sanitize trims fields that identify resources or carry numbers. Label and
// message are left alone: they are literal display text, and an empty string
// is a valid value for both.
func (c *Config) sanitize() {
	c.GistID = strings.TrimSpace(c.GistID)
	c.Auth = strings.TrimSpace(c.Auth)
	c.Filename = strings.TrimSpace(c.Filename)
	c.ValColorRange = strings.TrimSpace(c.ValColorRange)
	c.MinColorRange = strings.TrimSpace(c.MinColorRange)
	c.MaxColorRange = strings.TrimSpace(c.MaxColorRange)
	c.ColorRangeSaturation = strings.TrimSpace(c.ColorRangeSaturation)
	c.ColorRangeLightness = strings.TrimSpace(c.ColorRangeLightness)
	c.LogoWidth = strings.TrimSpace(c.LogoWidth)
	c.CacheSeconds = strings.TrimSpace(c.CacheSeconds)
}

// Validate checks the inputs an update run cannot proceed without.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"gistID", c.GistID},
		{"auth", c.Auth},
		{"filename", c.Filename},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("the %s input is required", r.name)
		}
	}
	return nil
}

// Inverted reports whether the color range direction is flipped. The input is
// a presence flag: any non-empty value inverts.
func (c *Config) Inverted() bool {
	return c.InvertColorRange != ""
}

// Force reports whether the read-compare-skip logic should be bypassed.
func (c *Config) Force() bool {
	return strings.EqualFold(strings.TrimSpace(c.ForceUpdate), "true")
}
