package backdrop

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorToString(t *testing.T) {
	assert.Equal(t, "#7C7CFF", ColorToString(color.NRGBA{0x7C, 0x7C, 0xFF, 0xFF}))
	assert.Equal(t, "#00000080", ColorToString(color.NRGBA{0, 0, 0, 0x80}))
}

func TestParseColorString(t *testing.T) {
	clr, err := ParseColorString("#5EEAD4")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0x5E, 0xEA, 0xD4, 0xFF}, clr)

	clr, err = ParseColorString("rgba(0, 0, 0, 0.3)")
	require.NoError(t, err)
	assert.Equal(t, uint8(77), clr.A)

	_, err = ParseColorString("#zzz")
	assert.Error(t, err)
}

func TestColorWithAlphaAndFade(t *testing.T) {
	c := color.NRGBA{10, 20, 30, 200}

	assert.Equal(t, color.NRGBA{10, 20, 30, 102}, ColorWithAlpha(c, 0.4))
	assert.Equal(t, color.NRGBA{10, 20, 30, 100}, ColorFade(c, 0.5))
}

func TestBlendHue(t *testing.T) {
	a := color.NRGBA{0x7C, 0x7C, 0xFF, 0xFF}
	b := color.NRGBA{0x5E, 0xEA, 0xD4, 0x80}

	mixed := BlendHue(a, b)
	assert.Equal(t, uint8((0xFF+0x80)/2), mixed.A)

	// same color blends to itself
	same := BlendHue(a, a)
	assert.InDelta(t, a.R, same.R, 1)
	assert.InDelta(t, a.G, same.G, 1)
	assert.InDelta(t, a.B, same.B, 1)

	assert.NotEqual(t, a, mixed)
	assert.NotEqual(t, b, mixed)
}

func TestLerpColorRGBA(t *testing.T) {
	assert.Equal(t, testRed, LerpColorRGBA(testRed, testBlue, 0))
	assert.Equal(t, testBlue, LerpColorRGBA(testRed, testBlue, 1))
}
