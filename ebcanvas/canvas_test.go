package ebcanvas

import (
	"image/color"
	"testing"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backdrop"
)

func TestRadialUniformsPadsStops(t *testing.T) {
	g := backdrop.RadialGradient{
		Center: backdrop.FPt(10, 20),
		Radius: 30,
		Stops: []backdrop.GradientStop{
			backdrop.Stop(0, color.NRGBA{255, 0, 0, 255}),
			backdrop.Stop(1, color.NRGBA{0, 0, 255, 0}),
		},
	}

	u := RadialUniforms(g)

	assert.Equal(t, []float32{10, 20}, u["Center"])
	assert.Equal(t, float32(30), u["Radius"])
	assert.Equal(t, []float32{0, 1, 1, 1}, u["Offsets"])

	colors, ok := u["Colors"].([]float32)
	require.True(t, ok)
	require.Len(t, colors, 16)

	assert.Equal(t, []float32{1, 0, 0, 1}, colors[0:4])
	// transparent stop is premultiplied to zero
	assert.Equal(t, []float32{0, 0, 0, 0}, colors[4:8])
	assert.Equal(t, colors[4:8], colors[12:16])
}

func TestToEbBlend(t *testing.T) {
	assert.Equal(t, eb.BlendLighter, ToEbBlend(backdrop.BlendAdditive))
	assert.Equal(t, eb.BlendSourceOver, ToEbBlend(backdrop.BlendSourceOver))
}

func TestCanvasWithoutTargetDoesNothing(t *testing.T) {
	c := New(100, 50)

	w, h := c.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)

	// none of these touch ebiten without a target
	c.Fill(backdrop.FRectWH(10, 10), backdrop.Solid(color.White))
	c.FillCircle(backdrop.FPt(5, 5), 5, backdrop.Solid(color.White))

	var path backdrop.Path
	path.MoveTo(backdrop.FPt(0, 0))
	path.LineTo(backdrop.FPt(10, 10))
	c.StrokePath(&path, 2, backdrop.Solid(color.White))

	assert.Empty(t, c.vertices)

	c.PushBlend(backdrop.BlendAdditive)
	assert.Equal(t, eb.BlendLighter, c.CurrentBlend())
	c.PopBlend()
	c.PopBlend()
	assert.Equal(t, eb.BlendSourceOver, c.CurrentBlend())

	c.Resize(320, 240)
	w, h = c.Size()
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestCanvasMountsEngine(t *testing.T) {
	c := New(1280, 720)
	engine := backdrop.NewEngine(backdrop.Options{Seed: 1})
	require.NoError(t, engine.Mount(c, nil))
	defer engine.Unmount()

	// no target attached, frame still runs
	assert.True(t, engine.Tick(0))
	assert.Len(t, engine.StreamNodes(), 12)
}
