package render

import (
	"bytes"
	"html/template"
	"strings"
	"unicode/utf8"

	"github.com/UnitVectorY-Labs/badgegist/internal/badge"
)

var svgTemplate = template.Must(template.New("badge").Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="20" role="img" aria-label="{{.Label}}: {{.Message}}">
{{if .Gradient}}<linearGradient id="s" x2="0" y2="100%">
  <stop offset="0" stop-color="#bbb" stop-opacity=".1"/>
  <stop offset="1" stop-opacity=".1"/>
</linearGradient>
{{end}}<clipPath id="r">
  <rect width="{{.Width}}" height="20" rx="{{.Radius}}" fill="#fff"/>
</clipPath>
<g clip-path="url(#r)">
  <rect width="{{.LabelWidth}}" height="20" fill="{{.LabelColor}}"/>
  <rect x="{{.LabelWidth}}" width="{{.MessageWidth}}" height="20" fill="{{.Color}}"/>
{{if .Gradient}}  <rect width="{{.Width}}" height="20" fill="url(#s)"/>
{{end}}</g>
<g fill="#fff" text-anchor="middle" font-family="DejaVu Sans,Verdana,Geneva,sans-serif" font-size="11">
  <text x="{{.LabelAnchor}}" y="15" fill="#010101" fill-opacity=".3">{{.Label}}</text>
  <text x="{{.LabelAnchor}}" y="14">{{.Label}}</text>
  <text x="{{.MessageAnchor}}" y="15" fill="#010101" fill-opacity=".3">{{.Message}}</text>
  <text x="{{.MessageAnchor}}" y="14">{{.Message}}</text>
</g>
</svg>`))

// namedColors maps the shields.io color names to their hex values. Anything
// not in the map (hex values, hsl() strings) passes through verbatim.
var namedColors = map[string]string{
	"brightgreen":   "#4c1",
	"green":         "#97ca00",
	"yellowgreen":   "#a4a61d",
	"yellow":        "#dfb317",
	"orange":        "#fe7d37",
	"red":           "#e05d44",
	"blue":          "#007ec6",
	"lightgrey":     "#9f9f9f",
	"lightgray":     "#9f9f9f",
	"grey":          "#555",
	"gray":          "#555",
	"success":       "#4c1",
	"important":     "#fe7d37",
	"critical":      "#e05d44",
	"informational": "#007ec6",
	"inactive":      "#9f9f9f",
}

const (
	defaultMessageColor = "#9f9f9f"
	defaultLabelColor   = "#555"
)

type svgParams struct {
	Label         string
	Message       string
	Color         string
	LabelColor    string
	Width         int
	LabelWidth    int
	MessageWidth  int
	LabelAnchor   float64
	MessageAnchor float64
	Gradient      bool
	Radius        int
}

// SVG rasterizes the badge in the flat shields style. Only label, message,
// color, labelColor and style participate; the endpoint-only fields (logos,
// cache control) have no meaning for a pre-rendered image and are ignored.
func SVG(c *badge.Content) (string, error) {
	p := svgParams{
		Label:      c.Label,
		Message:    c.Message,
		Color:      cssColor(c.Color, defaultMessageColor),
		LabelColor: cssColor(c.LabelColor, defaultLabelColor),
		Gradient:   true,
		Radius:     3,
	}
	if c.Style == "flat-square" {
		p.Gradient = false
		p.Radius = 0
	}

	// Character width is estimated at 6px, close enough for single-line
	// badge text at font-size 11.
	p.LabelWidth = 10 + 6*utf8.RuneCountInString(c.Label)
	p.MessageWidth = 10 + 6*utf8.RuneCountInString(c.Message)
	p.Width = p.LabelWidth + p.MessageWidth
	p.LabelAnchor = float64(p.LabelWidth) / 2
	p.MessageAnchor = float64(p.LabelWidth) + float64(p.MessageWidth)/2

	var buf bytes.Buffer
	if err := svgTemplate.Execute(&buf, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func cssColor(input, fallback string) string {
	if input == "" {
		return fallback
	}
	if hex, ok := namedColors[strings.ToLower(input)]; ok {
		return hex
	}
	return input
}
