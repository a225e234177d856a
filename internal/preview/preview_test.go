package preview

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnitVectorY-Labs/badgegist/internal/config"
)

const testTemplate = `<html><body>{{.Badge}}<pre>{{.Payload}}</pre>{{.Usage}}</body></html>`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"templates/preview.html": &fstest.MapFile{Data: []byte(testTemplate)},
	}
}

func TestRun(t *testing.T) {
	cfg := &config.Config{
		GistID:   "abc123",
		Filename: "badge.svg",
		Label:    "build",
		Message:  "passing",
		Color:    "green",
	}
	outPath := filepath.Join(t.TempDir(), "preview.html")

	require.NoError(t, Run(cfg, testFS(), outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	page := string(data)

	assert.Contains(t, page, "<svg")
	assert.Contains(t, page, ">passing<")
	assert.Contains(t, page, "schemaVersion")
	assert.Contains(t, page, "gist.githubusercontent.com/&lt;user&gt;/abc123/raw/badge.svg")
}

func TestRunWithoutGistID(t *testing.T) {
	cfg := &config.Config{Filename: "badge.json", Label: "l", Message: "m"}
	outPath := filepath.Join(t.TempDir(), "preview.html")

	require.NoError(t, Run(cfg, testFS(), outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "&lt;gistID&gt;")
}

func TestRunBuildErrorPropagates(t *testing.T) {
	cfg := &config.Config{Filename: "badge.svg", LogoWidth: "wide"}
	err := Run(cfg, testFS(), filepath.Join(t.TempDir(), "preview.html"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logoWidth")
}
