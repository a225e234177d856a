package badge

import (
	"fmt"
	"strconv"

	"github.com/UnitVectorY-Labs/badgegist/internal/config"
)

// SchemaVersion is the shields.io endpoint schema this payload targets.
const SchemaVersion = 1

// Content is the shields.io endpoint payload for a single badge. Every
// optional field carries omitempty so inputs that were never supplied stay
// out of the serialized JSON entirely; renderers treat a missing key
// differently from an empty string.
type Content struct {
	SchemaVersion int    `json:"schemaVersion"`
	Label         string `json:"label"`
	Message       string `json:"message"`
	Color         string `json:"color,omitempty"`
	LabelColor    string `json:"labelColor,omitempty"`
	IsError       string `json:"isError,omitempty"`
	NamedLogo     string `json:"namedLogo,omitempty"`
	LogoSVG       string `json:"logoSvg,omitempty"`
	LogoColor     string `json:"logoColor,omitempty"`
	LogoWidth     *int   `json:"logoWidth,omitempty"`
	LogoPosition  string `json:"logoPosition,omitempty"`
	Style         string `json:"style,omitempty"`
	CacheSeconds  *int   `json:"cacheSeconds,omitempty"`
}

// Build assembles the badge content from the step configuration. It is a pure
// function of the config: no I/O, no environment access.
func Build(cfg *config.Config) (*Content, error) {
	c := &Content{
		SchemaVersion: SchemaVersion,
		Label:         cfg.Label,
		Message:       cfg.Message,
	}

	// A complete color range takes priority over a literal color input. With
	// neither, the color field stays absent and the renderer picks a default.
	rng, err := rangeFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	switch {
	case rng != nil:
		c.Color = rng.HSL()
	case cfg.Color != "":
		c.Color = cfg.Color
	}

	c.LabelColor = cfg.LabelColor
	c.IsError = cfg.IsError
	c.NamedLogo = cfg.NamedLogo
	c.LogoSVG = cfg.LogoSVG
	c.LogoColor = cfg.LogoColor
	c.LogoPosition = cfg.LogoPosition
	c.Style = cfg.Style

	if cfg.LogoWidth != "" {
		w, err := strconv.Atoi(cfg.LogoWidth)
		if err != nil {
			return nil, fmt.Errorf("failed to parse logoWidth %q as an integer: %w", cfg.LogoWidth, err)
		}
		c.LogoWidth = &w
	}
	if cfg.CacheSeconds != "" {
		s, err := strconv.Atoi(cfg.CacheSeconds)
		if err != nil {
			return nil, fmt.Errorf("failed to parse cacheSeconds %q as an integer: %w", cfg.CacheSeconds, err)
		}
		c.CacheSeconds = &s
	}

	return c, nil
}
