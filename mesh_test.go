package backdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshZoneCenterParallax(t *testing.T) {
	am := NewAmbientMesh()

	still := am.ZoneCenter(0, FPt(0.5, 0.5))
	moved := am.ZoneCenter(0, FPt(1, 0))

	assert.InDelta(t, MeshParallax*0.5, moved.X-still.X, 1e-12)
	assert.InDelta(t, -MeshParallax*0.5, moved.Y-still.Y, 1e-12)
}

func TestMeshWobbleDiffersPerZone(t *testing.T) {
	am := NewAmbientMesh()
	center := FPt(0.5, 0.5)

	var before [3]FPoint
	for i := range am.Zones {
		before[i] = am.ZoneCenter(i, center)
	}

	am.Advance(5000)

	var shift [3]FPoint
	for i := range am.Zones {
		c := am.ZoneCenter(i, center)
		shift[i] = c.Sub(before[i])
		assert.LessOrEqual(t, FPointDist(c, am.Zones[i].Base), 0.05*1.5)
	}

	assert.NotEqual(t, shift[0], shift[1])
	assert.NotEqual(t, shift[1], shift[2])
}

func TestMeshDrawsAdditiveRadialZones(t *testing.T) {
	am := NewAmbientMesh()
	vp := ClassifyViewport(1000, 500, false)
	theme := DefaultTheme()

	rec := newRecordingCanvas(1000, 500)
	am.Draw(rec, vp, &theme, FPt(0.5, 0.5))

	require.Len(t, rec.fills, 3)
	assert.Len(t, rec.blends, 1)

	for i, fill := range rec.fills {
		assert.Equal(t, BlendAdditive, fill.blend)

		grad, ok := fill.paint.(RadialGradient)
		require.True(t, ok)
		assert.InDelta(t, am.Zones[i].Radius*500, grad.Radius, 1e-9)
		require.Len(t, grad.Stops, 3)

		assert.Equal(t, to8(am.Zones[i].Alpha), grad.Stops[0].Color.A)
		assert.Equal(t, to8(am.Zones[i].Alpha/3), grad.Stops[1].Color.A)
		assert.Equal(t, uint8(0), grad.Stops[2].Color.A)
		assert.Equal(t, 0.5, grad.Stops[1].Offset)

		assert.True(t, fill.rect.Min.X >= 0 && fill.rect.Max.X <= 1000)
	}
}
