// Package preview renders a local HTML preview of the configured badge so a
// configuration can be checked before it is pointed at a real gist. Preview
// runs perform no network calls.
package preview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"os"

	"github.com/yuin/goldmark"

	"github.com/UnitVectorY-Labs/badgegist/internal/badge"
	"github.com/UnitVectorY-Labs/badgegist/internal/config"
	"github.com/UnitVectorY-Labs/badgegist/internal/render"
)

// PageViewModel feeds the preview template.
type PageViewModel struct {
	Filename string
	Badge    template.HTML
	Payload  string
	Usage    template.HTML
}

// Run writes the preview page for the configured badge to outPath.
func Run(cfg *config.Config, templateFS fs.FS, outPath string) error {
	content, err := badge.Build(cfg)
	if err != nil {
		return err
	}

	// The badge is shown as inline SVG regardless of the target filename; the
	// endpoint payload is shown alongside so both render paths can be
	// inspected at once.
	svg, err := render.SVG(content)
	if err != nil {
		return err
	}
	payload, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize badge content: %w", err)
	}

	usage, err := usageHTML(cfg)
	if err != nil {
		return err
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	vm := PageViewModel{
		Filename: cfg.Filename,
		Badge:    template.HTML(svg),
		Payload:  string(payload),
		Usage:    usage,
	}

	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer file.Close()
	if err := tmpl.ExecuteTemplate(file, "preview.html", vm); err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}

	fmt.Printf("Preview written to %s\n", outPath)
	return nil
}

// usageHTML builds the markdown usage section and converts it to HTML.
func usageHTML(cfg *config.Config) (template.HTML, error) {
	gistID := cfg.GistID
	if gistID == "" {
		gistID = "<gistID>"
	}
	md := fmt.Sprintf("## Usage\n\n"+
		"Once uploaded, reference `%s` from a README.\n\n"+
		"As a shields.io endpoint badge:\n\n"+
		"```\nhttps://img.shields.io/endpoint?url=https://gist.githubusercontent.com/<user>/%s/raw/%s\n```\n\n"+
		"Or embed the raw file directly when it is an SVG:\n\n"+
		"```\nhttps://gist.githubusercontent.com/<user>/%s/raw/%s\n```\n",
		cfg.Filename, gistID, cfg.Filename, gistID, cfg.Filename)

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("failed to render usage markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
