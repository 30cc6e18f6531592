package backdrop

import (
	"image/color"
	"math"
)

const MeshParallax = 0.02

// MeshZone is a soft glowing blob in the back layer.
type MeshZone struct {
	// normalized to viewport size
	Base FPoint

	// fraction of smaller viewport side
	Radius float64

	Color ColorTableIndex
	Alpha float64
}

type AmbientMesh struct {
	Zones [3]MeshZone

	// advances only while motion is allowed
	WobbleTime float64
}

func NewAmbientMesh() *AmbientMesh {
	am := new(AmbientMesh)
	am.Zones = [3]MeshZone{
		{Base: FPt(0.2, 0.3), Radius: 0.4, Color: ColorAccent, Alpha: 0.15},
		{Base: FPt(0.8, 0.7), Radius: 0.5, Color: ColorAccentAlt, Alpha: 0.1},
		{Base: FPt(0.5, 0.5), Radius: 0.3, Color: ColorSurface, Alpha: 0.8},
	}
	return am
}

// Advance moves wobble clock to timeMs.
func (am *AmbientMesh) Advance(timeMs float64) {
	am.WobbleTime = timeMs
}

// ZoneCenter returns normalized center of i th zone.
// Each zone wobbles at its own frequency.
// pointer is normalized pointer position, used for parallax.
func (am *AmbientMesh) ZoneCenter(i int, pointer FPoint) FPoint {
	zone := am.Zones[i]
	freq := 0.0001 * f64(i+1)

	center := zone.Base
	center.X += math.Sin(am.WobbleTime*freq+f64(i)) * 0.05
	center.Y += math.Cos(am.WobbleTime*freq*1.2+f64(i)*2) * 0.05

	center.X += (pointer.X - 0.5) * MeshParallax
	center.Y += (pointer.Y - 0.5) * MeshParallax

	return center
}

func (am *AmbientMesh) Draw(dst Canvas, vp Viewport, theme *Theme, pointer FPoint) {
	w, h := vp.SizeF()
	canvasRect := FRectWH(w, h)

	dst.PushBlend(BlendAdditive)
	defer dst.PopBlend()

	for i, zone := range am.Zones {
		c := am.ZoneCenter(i, pointer)
		center := FPt(c.X*w, c.Y*h)
		radius := zone.Radius * min(w, h)

		clr := theme[zone.Color]

		grad := RadialGradient{
			Center: center,
			Radius: radius,
			Stops: []GradientStop{
				Stop(0, ColorWithAlpha(clr, zone.Alpha)),
				Stop(0.5, ColorWithAlpha(clr, zone.Alpha/3)),
				Stop(1, color.NRGBA{clr.R, clr.G, clr.B, 0}),
			},
		}

		rect := grad.Bounds().Intersect(canvasRect)
		if rect.Empty() {
			continue
		}
		dst.Fill(rect, grad)
	}
}
