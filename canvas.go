package backdrop

import (
	"errors"
	"math"
)

var ErrNoSurface = errors.New("drawing surface is not available")

// Canvas is immediate mode 2d drawing surface sized in device pixels.
//
// Implementations:
//   - RasterCanvas : software rasterizer on image.RGBA
//   - ebcanvas.Canvas : ebiten image
type Canvas interface {
	Size() (width, height int)

	// Resize sets pixel size of the surface.
	// Content after resize is unspecified.
	Resize(width, height int)

	Fill(rect FRectangle, paint Paint)
	FillCircle(center FPoint, radius float64, paint Paint)
	StrokePath(path *Path, width float64, paint Paint)

	PushBlend(mode BlendMode)
	PopBlend()
}

// CanvasRect returns whole area of canvas.
func CanvasRect(c Canvas) FRectangle {
	w, h := c.Size()
	return FRectWH(f64(w), f64(h))
}

func CirclePath(path *Path, center FPoint, radius float64) {
	path.Arc(center, radius, 0, math.Pi*2)
	path.Close()
}
