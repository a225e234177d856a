package badge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnitVectorY-Labs/badgegist/internal/config"
)

func jsonKeys(t *testing.T, c *Content) map[string]any {
	t.Helper()
	b, err := json.Marshal(c)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

func TestBuildMinimal(t *testing.T) {
	cfg := &config.Config{Label: "build", Message: "passing"}
	c, err := Build(cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, c.SchemaVersion)
	assert.Equal(t, "build", c.Label)
	assert.Equal(t, "passing", c.Message)

	// Nothing optional was supplied, so nothing optional may serialize.
	m := jsonKeys(t, c)
	assert.Len(t, m, 3)
	assert.Contains(t, m, "schemaVersion")
	assert.Contains(t, m, "label")
	assert.Contains(t, m, "message")
}

func TestBuildEmptyLabelAndMessageAreLiteral(t *testing.T) {
	// Empty display text is a valid value, not an absent field.
	c, err := Build(&config.Config{})
	require.NoError(t, err)
	m := jsonKeys(t, c)
	assert.Contains(t, m, "label")
	assert.Contains(t, m, "message")
}

func TestBuildLiteralColor(t *testing.T) {
	c, err := Build(&config.Config{Label: "build", Message: "passing", Color: "blue"})
	require.NoError(t, err)
	assert.Equal(t, "blue", c.Color)
}

func TestBuildRangeColorBeatsLiteral(t *testing.T) {
	cfg := &config.Config{
		Label: "coverage", Message: "75%",
		Color:         "blue",
		ValColorRange: "75", MinColorRange: "0", MaxColorRange: "100",
	}
	c, err := Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, "hsl(90, 100%, 40%)", c.Color)
}

func TestBuildIncompleteRangeFallsBackToLiteral(t *testing.T) {
	cfg := &config.Config{
		Label: "coverage", Message: "75%",
		Color:         "blue",
		ValColorRange: "75", MinColorRange: "0",
	}
	c, err := Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, "blue", c.Color)
}

func TestBuildNoColorOmitsField(t *testing.T) {
	c, err := Build(&config.Config{Label: "build", Message: "passing"})
	require.NoError(t, err)
	assert.NotContains(t, jsonKeys(t, c), "color")
}

func TestBuildOptionalFields(t *testing.T) {
	cfg := &config.Config{
		Label: "build", Message: "passing",
		LabelColor:   "abcdef",
		IsError:      "true",
		NamedLogo:    "go",
		LogoColor:    "white",
		LogoPosition: "-12",
		Style:        "flat-square",
		LogoWidth:    "60",
		CacheSeconds: "3600",
	}
	c, err := Build(cfg)
	require.NoError(t, err)

	require.NotNil(t, c.LogoWidth)
	assert.Equal(t, 60, *c.LogoWidth)
	require.NotNil(t, c.CacheSeconds)
	assert.Equal(t, 3600, *c.CacheSeconds)

	m := jsonKeys(t, c)
	assert.Equal(t, "abcdef", m["labelColor"])
	assert.Equal(t, "true", m["isError"])
	assert.Equal(t, "go", m["namedLogo"])
	assert.Equal(t, "white", m["logoColor"])
	assert.Equal(t, "-12", m["logoPosition"])
	assert.Equal(t, "flat-square", m["style"])
	assert.Equal(t, float64(60), m["logoWidth"])
	assert.Equal(t, float64(3600), m["cacheSeconds"])
	assert.NotContains(t, m, "logoSvg")
}

func TestBuildMalformedLogoWidth(t *testing.T) {
	_, err := Build(&config.Config{Label: "l", Message: "m", LogoWidth: "wide"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logoWidth")
}

func TestBuildMalformedCacheSeconds(t *testing.T) {
	_, err := Build(&config.Config{Label: "l", Message: "m", CacheSeconds: "soon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cacheSeconds")
}
