package badge

import (
	"fmt"
	"math"
	"strconv"

	"github.com/UnitVectorY-Labs/badgegist/internal/config"
)

const (
	defaultSaturation = 100
	defaultLightness  = 40
)

// ColorRange maps a numeric value inside [Min, Max] onto a red-to-green hue.
// It is built once per run from the configuration and consumed immediately.
type ColorRange struct {
	Min        float64
	Max        float64
	Value      float64
	Inverted   bool
	Saturation float64
	Lightness  float64
}

// HSL returns the CSS hsl() color for the range. The value is clamped into
// [Min, Max] first, so the hue always lands in [0, 120] (0 = red, 120 =
// green). A degenerate range (Max <= Min) maps to hue 0 rather than dividing
// by zero.
func (r ColorRange) HSL() string {
	v := math.Min(math.Max(r.Value, r.Min), r.Max)
	var t float64
	if r.Max > r.Min {
		if r.Inverted {
			t = (r.Max - v) / (r.Max - r.Min)
		} else {
			t = (v - r.Min) / (r.Max - r.Min)
		}
	}
	hue := int(math.Floor(t * 120))
	return fmt.Sprintf("hsl(%d, %g%%, %g%%)", hue, r.Saturation, r.Lightness)
}

// rangeFromConfig parses the color range inputs. It returns nil when the range
// is incomplete: all three of value, min and max must be supplied before the
// range takes effect, otherwise the literal color input wins.
func rangeFromConfig(cfg *config.Config) (*ColorRange, error) {
	if cfg.ValColorRange == "" || cfg.MinColorRange == "" || cfg.MaxColorRange == "" {
		return nil, nil
	}

	value, err := parseRangeNumber("valColorRange", cfg.ValColorRange)
	if err != nil {
		return nil, err
	}
	min, err := parseRangeNumber("minColorRange", cfg.MinColorRange)
	if err != nil {
		return nil, err
	}
	max, err := parseRangeNumber("maxColorRange", cfg.MaxColorRange)
	if err != nil {
		return nil, err
	}

	r := &ColorRange{
		Min:        min,
		Max:        max,
		Value:      value,
		Inverted:   cfg.Inverted(),
		Saturation: defaultSaturation,
		Lightness:  defaultLightness,
	}
	if cfg.ColorRangeSaturation != "" {
		if r.Saturation, err = parseRangeNumber("colorRangeSaturation", cfg.ColorRangeSaturation); err != nil {
			return nil, err
		}
	}
	if cfg.ColorRangeLightness != "" {
		if r.Lightness, err = parseRangeNumber("colorRangeLightness", cfg.ColorRangeLightness); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func parseRangeNumber(name, input string) (float64, error) {
	f, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s %q as a number: %w", name, input, err)
	}
	return f, nil
}
