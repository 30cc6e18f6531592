package backdrop

import (
	"fmt"
	"math/rand/v2"
	"time"

	"backdrop/misc"
)

type Layer int

const (
	LayerBase Layer = iota
	LayerMesh
	LayerGrain
	LayerStreams
	LayerConnections
	LayerSparkles
	LayerCursorGlow
	LayerVignette

	LayerCount
)

var layerNames = [LayerCount]string{
	LayerBase:        "base",
	LayerMesh:        "mesh",
	LayerGrain:       "grain",
	LayerStreams:     "streams",
	LayerConnections: "connections",
	LayerSparkles:    "sparkles",
	LayerCursorGlow:  "cursor-glow",
	LayerVignette:    "vignette",
}

func (l Layer) String() string {
	if l < 0 || l >= LayerCount {
		return fmt.Sprintf("Layer(%d)", int(l))
	}
	return layerNames[l]
}

// FrameInfo describes what the last frame painted.
type FrameInfo struct {
	Time time.Duration

	Layers [LayerCount]bool

	Connections     int
	VisibleSparkles int
}

func (fi FrameInfo) Painted(layer Layer) bool {
	return fi.Layers[layer]
}

// Engine is the animated page background.
//
// Lifecycle :
//
//	engine := NewEngine(opts)
//	engine.Mount(canvas, events) // on page mount
//	engine.Tick(now)             // every display refresh
//	engine.Unmount()             // on navigation away
type Engine struct {
	opts  Options
	theme Theme
	route string

	rng *rand.Rand

	clock *FrameClock

	surface         Canvas
	events          *HostEvents
	removeListeners []func()

	viewport Viewport
	pointer  PointerTracker
	mesh     *AmbientMesh
	streams  *StreamField
	sparkles *SparkleField

	lastFrame FrameInfo
}

func NewEngine(opts Options) *Engine {
	e := new(Engine)

	e.opts = opts
	e.route = opts.route()

	if opts.Theme != nil {
		e.theme = *opts.Theme
	} else {
		e.theme = DefaultTheme()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	e.rng = rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))

	e.mesh = NewAmbientMesh()
	e.clock = NewFrameClock(e.Frame)

	return e
}

// Mount attaches engine to surface and starts listening to host events.
// events can be nil for hosts that never resize.
//
// When surface is nil nothing is initialized and ErrNoSurface is returned.
// Callers are free to ignore it, page just goes without background.
func (e *Engine) Mount(surface Canvas, events *HostEvents) error {
	if surface == nil {
		misc.WarnLogger.Debugf("mount skipped: %v", ErrNoSurface)
		return ErrNoSurface
	}

	if e.surface != nil {
		e.Unmount()
	}

	e.surface = surface
	e.events = events

	if events != nil {
		e.removeListeners = append(e.removeListeners, events.OnResize(e.Resize))
		if !e.opts.ReducedMotion {
			e.removeListeners = append(e.removeListeners, events.OnPointerMove(e.PointerMove))
		}
	}

	w, h := surface.Size()
	e.Resize(w, h)

	e.clock.Start()

	misc.InfoLogger.Debugf(
		"mounted %dx%d compact=%v reducedMotion=%v route=%s",
		w, h, e.viewport.Compact, e.opts.ReducedMotion, e.route,
	)

	return nil
}

// Unmount stops the clock, removes listeners and drops surface and entities.
func (e *Engine) Unmount() {
	e.clock.Stop()

	for _, remove := range e.removeListeners {
		remove()
	}
	e.removeListeners = nil

	e.surface = nil
	e.events = nil

	e.streams = nil
	e.sparkles = nil
	e.lastFrame = FrameInfo{}
}

func (e *Engine) Mounted() bool {
	return e.surface != nil
}

// Resize applies new window size and rebuilds every entity for it.
func (e *Engine) Resize(width, height int) {
	if e.surface == nil {
		return
	}

	e.surface.Resize(width, height)

	e.viewport = ClassifyViewport(width, height, e.opts.CoarsePointer)

	e.pointer.Enabled = !e.opts.ReducedMotion && !e.viewport.Compact
	e.pointer.Reset(e.viewport.Center())

	nodeCount, sparkleCount := e.viewport.Population()

	// old entities are thrown away, not moved
	e.streams = NewStreamField(nodeCount, e.viewport, e.rng)
	e.sparkles = NewSparkleField(sparkleCount, e.viewport, e.rng)
}

func (e *Engine) PointerMove(x, y float64) {
	e.pointer.SetTarget(FPt(x, y))
}

func (e *Engine) SetRoute(route string) {
	if route == "" {
		route = LandingRoute
	}
	e.route = route
}

func (e *Engine) Route() string {
	return e.route
}

func (e *Engine) OnLandingRoute() bool {
	return e.route == LandingRoute
}

func (e *Engine) SetTheme(theme Theme) {
	e.theme = theme
}

func (e *Engine) Theme() Theme {
	return e.theme
}

// Tick is called by host on every display refresh.
// Returns true if a frame was painted.
func (e *Engine) Tick(now time.Duration) bool {
	return e.clock.Tick(now)
}

func (e *Engine) Clock() *FrameClock {
	return e.clock
}

// Frame updates and paints one frame.
// Without surface it does nothing.
func (e *Engine) Frame(now time.Duration) {
	dst := e.surface
	if dst == nil || e.viewport.Empty() || e.streams == nil {
		return
	}

	vp := e.viewport
	theme := &e.theme
	motion := !e.opts.ReducedMotion
	timeMs := f64(now) / f64(time.Millisecond)

	info := FrameInfo{Time: now}

	// ==========================
	// update
	// ==========================
	if e.pointer.Enabled {
		e.pointer.Step()
	}

	if motion {
		e.mesh.Advance(timeMs)

		attract := e.OnLandingRoute() && !vp.Compact
		e.streams.Update(vp, timeMs, attract, e.pointer.Smoothed)
	}

	if e.opts.sparklesMove() {
		e.sparkles.Update()
	}

	// ==========================
	// paint
	// ==========================
	w, h := vp.SizeF()

	dst.Fill(FRectWH(w, h), Solid(theme[ColorBackground]))
	info.Layers[LayerBase] = true

	e.mesh.Draw(dst, vp, theme, e.pointer.Normalized(vp))
	info.Layers[LayerMesh] = true

	if motion {
		DrawGrain(dst, vp, theme, e.rng)
		info.Layers[LayerGrain] = true
	}

	if len(e.streams.Nodes) > 0 {
		e.streams.DrawNodes(dst, theme)
		info.Layers[LayerStreams] = true
	}

	info.Connections = e.streams.DrawConnections(dst, theme)
	info.Layers[LayerConnections] = info.Connections > 0

	info.VisibleSparkles = e.sparkles.Draw(dst, theme)
	info.Layers[LayerSparkles] = info.VisibleSparkles > 0

	if e.OnLandingRoute() && e.pointer.Enabled {
		DrawCursorGlow(dst, e.pointer.Smoothed, theme)
		info.Layers[LayerCursorGlow] = true
	}

	DrawVignette(dst, vp, theme)
	info.Layers[LayerVignette] = true

	e.lastFrame = info
}

func (e *Engine) LastFrame() FrameInfo {
	return e.lastFrame
}

func (e *Engine) Viewport() Viewport {
	return e.viewport
}

func (e *Engine) Pointer() PointerTracker {
	return e.pointer
}

func (e *Engine) StreamNodes() []StreamNode {
	if e.streams == nil {
		return nil
	}
	return e.streams.Nodes
}

func (e *Engine) Sparkles() []Sparkle {
	if e.sparkles == nil {
		return nil
	}
	return e.sparkles.Sparkles
}

func (e *Engine) Mesh() *AmbientMesh {
	return e.mesh
}
