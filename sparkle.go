package backdrop

import (
	"math"
	"math/rand/v2"
)

// sparkles dimmer than this aren't drawn
const SparkleVisibleOpacity = 0.01

// Sparkle is a point that doesn't move but pulses.
type Sparkle struct {
	Position   FPoint
	Size       float64
	MaxOpacity float64
	Phase      float64
	Speed      float64
}

// Opacity is always in [0, MaxOpacity].
func (s *Sparkle) Opacity() float64 {
	return (math.Sin(s.Phase)*0.5 + 0.5) * s.MaxOpacity
}

type SparkleField struct {
	Sparkles []Sparkle
}

func NewSparkleField(count int, vp Viewport, rng *rand.Rand) *SparkleField {
	sf := new(SparkleField)
	sf.Sparkles = make([]Sparkle, count)

	w, h := vp.SizeF()

	for i := range count {
		sf.Sparkles[i] = Sparkle{
			Position:   FPt(rng.Float64()*w, rng.Float64()*h),
			Size:       RandRange(rng, 0.5, 2),
			MaxOpacity: RandRange(rng, 0.2, 0.8),
			Phase:      RandRange(rng, 0, math.Pi*2),
			Speed:      RandRange(rng, 0.02, 0.04),
		}
	}

	return sf
}

func (sf *SparkleField) Update() {
	for i := range sf.Sparkles {
		sf.Sparkles[i].Phase += sf.Sparkles[i].Speed
	}
}

// Draw returns how many sparkles were visible.
func (sf *SparkleField) Draw(dst Canvas, theme *Theme) int {
	drawn := 0
	for i := range sf.Sparkles {
		s := &sf.Sparkles[i]
		opacity := s.Opacity()
		if opacity <= SparkleVisibleOpacity {
			continue
		}
		dst.FillCircle(s.Position, s.Size, Solid(ColorWithAlpha(theme[ColorPrimary], opacity)))
		drawn++
	}
	return drawn
}
