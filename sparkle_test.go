package backdrop

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparkleOpacityBounded(t *testing.T) {
	vp := ClassifyViewport(1920, 1080, false)
	sf := NewSparkleField(60, vp, testRand())

	for range 1000 {
		sf.Update()
		for _, s := range sf.Sparkles {
			op := s.Opacity()
			assert.GreaterOrEqual(t, op, 0.0)
			assert.LessOrEqual(t, op, s.MaxOpacity)
		}
	}
}

func TestNewSparkleFieldInit(t *testing.T) {
	vp := ClassifyViewport(640, 480, false)
	sf := NewSparkleField(30, vp, testRand())

	assert.Len(t, sf.Sparkles, 30)

	for _, s := range sf.Sparkles {
		assert.True(t, s.Position.In(FRectWH(640, 480)))
		assert.GreaterOrEqual(t, s.Size, 0.5)
		assert.Less(t, s.Size, 2.0)
		assert.GreaterOrEqual(t, s.MaxOpacity, 0.2)
		assert.Less(t, s.MaxOpacity, 0.8)
		assert.GreaterOrEqual(t, s.Phase, 0.0)
		assert.Less(t, s.Phase, math.Pi*2)
		assert.GreaterOrEqual(t, s.Speed, 0.02)
		assert.Less(t, s.Speed, 0.04)
	}
}

func TestSparkleDrawSkipsDim(t *testing.T) {
	sf := &SparkleField{
		Sparkles: []Sparkle{
			{Position: FPt(1, 1), Size: 1, MaxOpacity: 0.5, Phase: math.Pi / 2},
			{Position: FPt(2, 2), Size: 1, MaxOpacity: 0.5, Phase: -math.Pi / 2},
		},
	}
	theme := DefaultTheme()

	rec := newRecordingCanvas(10, 10)
	assert.Equal(t, 1, sf.Draw(rec, &theme))
	assert.Len(t, rec.circles, 1)
}
