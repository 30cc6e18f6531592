package backdrop

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, color.NRGBA{0x0B, 0x0D, 0x10, 0xFF}, theme.Color(ColorBackground))
	assert.Equal(t, color.NRGBA{0x7C, 0x7C, 0xFF, 0xFF}, theme.Color(ColorAccent))
	assert.Equal(t, color.NRGBA{0x5E, 0xEA, 0xD4, 0xFF}, theme.Color(ColorAccentAlt))
	assert.Equal(t, color.NRGBA{0, 0, 0, 0xFF}, theme.Color(ColorShadow))
}

func TestParseThemeKeepsMissingColors(t *testing.T) {
	theme, err := ParseTheme([]byte(`
accent: "rgb(255, 0, 0)"
primary: white
`))
	require.NoError(t, err)

	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, theme[ColorAccent])
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, theme[ColorPrimary])
	assert.Equal(t, DefaultTheme()[ColorSurface], theme[ColorSurface])
}

func TestParseThemeErrors(t *testing.T) {
	_, err := ParseTheme([]byte(`acent: "#fff"`))
	assert.ErrorContains(t, err, `unknown theme color "acent"`)

	_, err = ParseTheme([]byte(`accent: "not a color"`))
	assert.ErrorContains(t, err, `theme color "accent"`)

	_, err = ParseTheme([]byte(`[1, 2`))
	assert.Error(t, err)
}

func TestThemeYamlRoundTrip(t *testing.T) {
	theme := DefaultTheme()
	theme[ColorSurface] = color.NRGBA{1, 2, 3, 128}

	out, err := yaml.Marshal(theme)
	require.NoError(t, err)

	assert.Contains(t, string(out), `surface: "#01020380"`)

	parsed, err := ParseTheme(out)
	require.NoError(t, err)
	assert.Equal(t, theme, parsed)
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`background: "#123456"`), 0644))

	theme, err := LoadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0x12, 0x34, 0x56, 0xFF}, theme[ColorBackground])

	_, err = LoadTheme(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestColorTableIndexString(t *testing.T) {
	assert.Equal(t, "accent-alt", ColorAccentAlt.String())
	assert.Equal(t, "ColorTableIndex(-1)", ColorTableIndex(-1).String())
}
