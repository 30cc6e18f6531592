package backdrop

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRasterFillSolid(t *testing.T) {
	rc := NewRasterCanvas(10, 10)
	rc.Fill(FRect(2, 2, 5, 5), Solid(testRed))

	assert.Equal(t, testRed, rc.At(3, 3))
	assert.Equal(t, color.NRGBA{}, rc.At(6, 6))
	assert.Equal(t, color.NRGBA{}, rc.At(1, 3))
}

func TestRasterSourceOverHalfAlpha(t *testing.T) {
	rc := NewRasterCanvas(4, 4)
	rc.Fill(FRectWH(4, 4), Solid(color.NRGBA{0, 0, 0, 255}))
	rc.Fill(FRectWH(4, 4), Solid(color.NRGBA{255, 255, 255, 128}))

	got := rc.At(1, 1)
	assert.Equal(t, uint8(255), got.A)
	assert.InDelta(t, 128, got.R, 1)
}

func TestRasterAdditiveBlend(t *testing.T) {
	rc := NewRasterCanvas(4, 4)
	rc.Fill(FRectWH(4, 4), Solid(color.NRGBA{100, 0, 0, 255}))

	rc.PushBlend(BlendAdditive)
	assert.Equal(t, BlendAdditive, rc.CurrentBlend())
	rc.Fill(FRectWH(4, 4), Solid(color.NRGBA{100, 50, 0, 255}))
	rc.PopBlend()

	assert.Equal(t, BlendSourceOver, rc.CurrentBlend())
	assert.Equal(t, color.NRGBA{200, 50, 0, 255}, rc.At(2, 2))

	// base blend can't be popped
	rc.PopBlend()
	assert.Equal(t, BlendSourceOver, rc.CurrentBlend())
}

func TestRasterFillCircle(t *testing.T) {
	rc := NewRasterCanvas(20, 20)
	rc.FillCircle(FPt(10, 10), 5, Solid(testBlue))

	assert.Equal(t, testBlue, rc.At(10, 10))
	assert.Equal(t, testBlue, rc.At(7, 10))
	assert.Equal(t, color.NRGBA{}, rc.At(1, 1))
	assert.Equal(t, color.NRGBA{}, rc.At(18, 10))
}

func TestRasterStrokePath(t *testing.T) {
	rc := NewRasterCanvas(20, 20)

	var path Path
	path.MoveTo(FPt(2, 10))
	path.LineTo(FPt(18, 10))
	rc.StrokePath(&path, 4, Solid(testRed))

	assert.Equal(t, testRed, rc.At(10, 9))
	assert.Equal(t, testRed, rc.At(10, 10))
	assert.Equal(t, color.NRGBA{}, rc.At(10, 3))
	assert.Equal(t, color.NRGBA{}, rc.At(10, 15))
}

func TestRasterVignetteDarkensCorners(t *testing.T) {
	rc := NewRasterCanvas(64, 48)
	vp := ClassifyViewport(64, 48, false)
	theme := DefaultTheme()

	rc.Fill(FRectWH(64, 48), Solid(color.NRGBA{200, 200, 200, 255}))
	DrawVignette(rc, vp, &theme)

	center := rc.At(32, 24)
	corner := rc.At(0, 0)

	assert.InDelta(t, 200, center.R, 1)
	assert.Less(t, corner.R, center.R)
	// 30% black at most
	assert.InDelta(t, 140, corner.R, 4)
}

func TestRasterResize(t *testing.T) {
	rc := NewRasterCanvas(4, 4)
	rc.Resize(8, 2)

	w, h := rc.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 2, h)

	rc.Resize(-1, 5)
	w, _ = rc.Size()
	assert.Equal(t, 0, w)
}

func TestRasterEngineFrame(t *testing.T) {
	rc := NewRasterCanvas(320, 240)
	engine := NewEngine(Options{Seed: 5})
	events := NewHostEvents()

	assert.NoError(t, engine.Mount(rc, events))
	defer engine.Unmount()

	runFrames(engine, 0, 3)
	assert.Equal(t, uint64(3), engine.Clock().Frames())

	// every pixel is covered by the base fill
	assert.Equal(t, uint8(255), rc.At(0, 0).A)
	assert.Equal(t, uint8(255), rc.At(319, 239).A)
}
