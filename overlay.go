package backdrop

import (
	"math"
	"math/rand/v2"
)

const (
	CursorGlowRadius  = 100.0
	CursorGlowOpacity = 0.12

	VignetteOpacity = 0.3

	GrainSpecks  = 50
	GrainOpacity = 0.02
)

func DrawCursorGlow(dst Canvas, at FPoint, theme *Theme) {
	grad := RadialGradient{
		Center: at,
		Radius: CursorGlowRadius,
		Stops: []GradientStop{
			Stop(0, ColorWithAlpha(theme[ColorAccent], CursorGlowOpacity)),
			Stop(1, ColorWithAlpha(theme[ColorAccent], 0)),
		},
	}
	dst.FillCircle(at, CursorGlowRadius, grad)
}

// DrawVignette darkens towards the corners of the canvas.
func DrawVignette(dst Canvas, vp Viewport, theme *Theme) {
	w, h := vp.SizeF()
	center := vp.Center()

	grad := RadialGradient{
		Center: center,
		Radius: math.Hypot(w*0.5, h*0.5),
		Stops: []GradientStop{
			Stop(0, ColorWithAlpha(theme[ColorShadow], 0)),
			Stop(1, ColorWithAlpha(theme[ColorShadow], VignetteOpacity)),
		},
	}
	dst.Fill(FRectWH(w, h), grad)
}

// DrawGrain scatters faint white specks, new ones every frame.
func DrawGrain(dst Canvas, vp Viewport, theme *Theme, rng *rand.Rand) {
	w, h := vp.SizeF()

	for range GrainSpecks {
		x := rng.Float64() * w
		y := rng.Float64() * h
		size := rng.Float64() * 2
		alpha := rng.Float64() * 0.1 * GrainOpacity

		dst.Fill(
			FRect(x, y, x+size, y+size),
			Solid(ColorWithAlpha(theme[ColorPrimary], alpha)),
		)
	}
}
