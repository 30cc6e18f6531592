package backdrop

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	css "github.com/mazznoer/csscolorparser"
)

func ColorNormalized(clr color.Color, multiplyAlpha bool) [4]float64 {
	c := ColorToNRGBA(clr)
	r, g, b, a := f64(c.R)/255, f64(c.G)/255, f64(c.B)/255, f64(c.A)/255

	if multiplyAlpha {
		r *= a
		g *= a
		b *= a
	}

	return [4]float64{r, g, b, a}
}

func ColorToNRGBA(clr color.Color) color.NRGBA {
	if clr == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}

func LerpColorRGBA(c1, c2 color.Color, t float64) color.NRGBA {
	c1f := ColorNormalized(c1, false)
	c2f := ColorNormalized(c2, false)

	r := Lerp(c1f[0], c2f[0], t)
	g := Lerp(c1f[1], c2f[1], t)
	b := Lerp(c1f[2], c2f[2], t)
	a := Lerp(c1f[3], c2f[3], t)

	return color.NRGBA{to8(r), to8(g), to8(b), to8(a)}
}

// ColorWithAlpha returns c with its alpha replaced by a (0 to 1).
func ColorWithAlpha(c color.Color, a float64) color.NRGBA {
	nc := ColorToNRGBA(c)
	nc.A = to8(a)
	return nc
}

// ColorFade multiplies alpha of c by a.
func ColorFade(c color.Color, a float64) color.NRGBA {
	nc := ColorNormalized(c, false)
	return color.NRGBA{
		to8(nc[0]),
		to8(nc[1]),
		to8(nc[2]),
		to8(nc[3] * a),
	}
}

// BlendHue mixes two colors half way in HCL space.
// Alpha is averaged.
func BlendHue(c1, c2 color.Color) color.NRGBA {
	n1 := ColorToNRGBA(c1)
	n2 := ColorToNRGBA(c2)

	// colorful wants opaque colors
	a := colorful.Color{R: f64(n1.R) / 255, G: f64(n1.G) / 255, B: f64(n1.B) / 255}
	b := colorful.Color{R: f64(n2.R) / 255, G: f64(n2.G) / 255, B: f64(n2.B) / 255}

	r, g, bl := a.BlendHcl(b, 0.5).Clamped().RGB255()

	return color.NRGBA{r, g, bl, uint8((int(n1.A) + int(n2.A)) / 2)}
}

func ColorToString(clr color.Color) string {
	c := ColorToNRGBA(clr)
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func ParseColorString(str string) (color.NRGBA, error) {
	c, err := css.Parse(str)

	if err != nil {
		return color.NRGBA{}, err
	}

	nrgba := color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}

	return nrgba, nil
}

// to8 converts 0 to 1 float to byte with rounding.
func to8(v float64) uint8 {
	return uint8(Clamp(v, 0, 1)*255 + 0.5)
}
