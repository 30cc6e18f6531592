package backdrop

const PointerSmoothing = 0.03

// PointerTracker follows raw pointer position with exponential smoothing.
type PointerTracker struct {
	Target   FPoint
	Smoothed FPoint

	// when false, raw input is ignored
	Enabled bool
}

// Reset puts both target and smoothed position at p.
func (pt *PointerTracker) Reset(p FPoint) {
	pt.Target = p
	pt.Smoothed = p
}

func (pt *PointerTracker) SetTarget(p FPoint) {
	if !pt.Enabled {
		return
	}
	pt.Target = p
}

// Step moves smoothed position 3% of the way to target.
// It approaches target without ever overshooting it.
func (pt *PointerTracker) Step() {
	pt.Smoothed = pt.Smoothed.Add(pt.Target.Sub(pt.Smoothed).Scale(PointerSmoothing))
}

// Normalized returns smoothed position divided by viewport size.
func (pt *PointerTracker) Normalized(vp Viewport) FPoint {
	if vp.Empty() {
		return FPt(0.5, 0.5)
	}
	w, h := vp.SizeF()
	return FPt(pt.Smoothed.X/w, pt.Smoothed.Y/h)
}
