package backdrop

const (
	CompactWidthBreakpoint = 768

	CompactNodeCount    = 6
	CompactSparkleCount = 30
	FullNodeCount       = 12
	FullSparkleCount    = 60
)

// Viewport is pixel size of the drawing surface and its device class.
type Viewport struct {
	Width  int
	Height int

	// narrow or touch first device, gets fewer entities
	Compact bool
}

func ClassifyViewport(width, height int, coarsePointer bool) Viewport {
	return Viewport{
		Width:   width,
		Height:  height,
		Compact: width < CompactWidthBreakpoint || coarsePointer,
	}
}

// Population returns stream node and sparkle counts for this viewport.
func (v Viewport) Population() (nodes, sparkles int) {
	if v.Compact {
		return CompactNodeCount, CompactSparkleCount
	}
	return FullNodeCount, FullSparkleCount
}

func (v Viewport) SizeF() (float64, float64) {
	return f64(v.Width), f64(v.Height)
}

func (v Viewport) Center() FPoint {
	return FPt(f64(v.Width)*0.5, f64(v.Height)*0.5)
}

func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}
