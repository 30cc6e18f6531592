package backdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordedFill struct {
	rect  FRectangle
	paint Paint
	blend BlendMode
}

type recordedCircle struct {
	center FPoint
	radius float64
	paint  Paint
}

type recordedStroke struct {
	path  Path
	width float64
	paint Paint
}

// recordingCanvas remembers draw calls instead of drawing.
type recordingCanvas struct {
	width, height int

	blends []BlendMode

	fills   []recordedFill
	circles []recordedCircle
	strokes []recordedStroke

	resizes int
}

func newRecordingCanvas(width, height int) *recordingCanvas {
	return &recordingCanvas{
		width:  width,
		height: height,
		blends: []BlendMode{BlendSourceOver},
	}
}

func (rc *recordingCanvas) Size() (int, int) {
	return rc.width, rc.height
}

func (rc *recordingCanvas) Resize(width, height int) {
	rc.width = width
	rc.height = height
	rc.resizes++
}

func (rc *recordingCanvas) Fill(rect FRectangle, paint Paint) {
	rc.fills = append(rc.fills, recordedFill{rect, paint, rc.blends[len(rc.blends)-1]})
}

func (rc *recordingCanvas) FillCircle(center FPoint, radius float64, paint Paint) {
	rc.circles = append(rc.circles, recordedCircle{center, radius, paint})
}

func (rc *recordingCanvas) StrokePath(path *Path, width float64, paint Paint) {
	cp := Path{Ops: append([]PathOp(nil), path.Ops...)}
	rc.strokes = append(rc.strokes, recordedStroke{cp, width, paint})
}

func (rc *recordingCanvas) PushBlend(mode BlendMode) {
	rc.blends = append(rc.blends, mode)
}

func (rc *recordingCanvas) PopBlend() {
	rc.blends = rc.blends[:len(rc.blends)-1]
}

func (rc *recordingCanvas) reset() {
	rc.fills = rc.fills[:0]
	rc.circles = rc.circles[:0]
	rc.strokes = rc.strokes[:0]
}

func TestCanvasRect(t *testing.T) {
	rc := newRecordingCanvas(320, 200)
	assert.Equal(t, FRectWH(320, 200), CanvasRect(rc))
}

func TestCirclePathIsClosedArc(t *testing.T) {
	var path Path
	CirclePath(&path, FPt(10, 10), 5)

	lines := path.Flatten(0.1)
	assert.Len(t, lines, 1)
	assert.True(t, lines[0].Closed)

	for _, pt := range lines[0].Points {
		assert.InDelta(t, 5, FPointDist(pt, FPt(10, 10)), 1e-9)
	}
}
