// Package render turns badge content into the bytes stored in the gist file:
// SVG markup when the target filename has an .svg extension, shields.io
// endpoint JSON otherwise.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/UnitVectorY-Labs/badgegist/internal/badge"
)

// ForFilename renders the content for the given target filename.
func ForFilename(c *badge.Content, filename string) (string, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".svg") {
		return SVG(c)
	}
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to serialize badge content: %w", err)
	}
	return string(b), nil
}
