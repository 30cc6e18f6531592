package backdrop

import (
	"image/color"
)

// Paint decides color of each point it covers.
type Paint interface {
	ColorAt(p FPoint) color.NRGBA
}

type SolidPaint struct {
	Color color.NRGBA
}

func Solid(clr color.Color) SolidPaint {
	return SolidPaint{Color: ColorToNRGBA(clr)}
}

func (s SolidPaint) ColorAt(p FPoint) color.NRGBA {
	return s.Color
}

type GradientStop struct {
	Offset float64 // 0 to 1
	Color  color.NRGBA
}

func Stop(offset float64, clr color.Color) GradientStop {
	return GradientStop{Offset: offset, Color: ColorToNRGBA(clr)}
}

// Stops are expected to be in increasing Offset order.
// t before first stop gets first color, after last stop gets last color.
func evalStops(stops []GradientStop, t float64) color.NRGBA {
	if len(stops) <= 0 {
		return color.NRGBA{}
	}

	if t <= stops[0].Offset {
		return stops[0].Color
	}

	for i := 0; i+1 < len(stops); i++ {
		s0 := stops[i]
		s1 := stops[i+1]
		if t <= s1.Offset {
			span := s1.Offset - s0.Offset
			if span <= 0 {
				return s1.Color
			}
			return LerpColorRGBA(s0.Color, s1.Color, (t-s0.Offset)/span)
		}
	}

	return stops[len(stops)-1].Color
}

// LinearGradient varies along From -> To.
type LinearGradient struct {
	From, To FPoint
	Stops    []GradientStop
}

func (g LinearGradient) T(p FPoint) float64 {
	axis := g.To.Sub(g.From)
	l2 := axis.LengthSquared()
	if l2 == 0 {
		return 0
	}
	d := p.Sub(g.From)
	return Clamp((d.X*axis.X+d.Y*axis.Y)/l2, 0, 1)
}

func (g LinearGradient) ColorAt(p FPoint) color.NRGBA {
	return evalStops(g.Stops, g.T(p))
}

// RadialGradient varies from Center (offset 0) to Radius (offset 1).
type RadialGradient struct {
	Center FPoint
	Radius float64
	Stops  []GradientStop
}

func (g RadialGradient) T(p FPoint) float64 {
	if g.Radius <= 0 {
		return 1
	}
	return Clamp(FPointDist(p, g.Center)/g.Radius, 0, 1)
}

func (g RadialGradient) ColorAt(p FPoint) color.NRGBA {
	return evalStops(g.Stops, g.T(p))
}

// Bounds of area where gradient isn't its last color.
func (g RadialGradient) Bounds() FRectangle {
	return FRectAround(g.Center, g.Radius)
}

type BlendMode int

const (
	BlendSourceOver BlendMode = iota
	BlendAdditive
)
