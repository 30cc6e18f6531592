package backdrop

import (
	"image/color"
	"math"
	"math/rand/v2"
)

const (
	StreamOrbitRadiusX = 0.35
	StreamOrbitRadiusY = 0.3

	StreamAttractRadius   = 250.0
	StreamAttractStrength = 0.15
	StreamAttractScale    = 50.0

	ConnectionDistance   = 200.0
	ConnectionMaxOpacity = 0.15

	TrailMinLength = 25
	TrailMaxLength = 40 // exclusive
)

type Hue int

const (
	HueA Hue = iota
	HueB
)

func (h Hue) Color(theme *Theme) color.NRGBA {
	if h == HueB {
		return theme[ColorAccentAlt]
	}
	return theme[ColorAccent]
}

// Trail keeps recent positions of a node, newest first.
// Length never goes over its bound.
type Trail struct {
	queue CircularQueue[FPoint]
}

func NewTrail(bound int) Trail {
	return Trail{queue: NewCircularQueue[FPoint](bound)}
}

// Push adds p as newest point, oldest one is dropped when full.
func (t *Trail) Push(p FPoint) {
	t.queue.Enqueue(p)
}

func (t *Trail) Len() int {
	return t.queue.Length
}

func (t *Trail) Bound() int {
	return t.queue.Cap()
}

// At returns i th point, 0 being the newest.
func (t *Trail) At(i int) FPoint {
	return t.queue.At(t.queue.Length - 1 - i)
}

func (t *Trail) Clear() {
	t.queue.Clear()
}

// StreamNode is one orbiting particle.
type StreamNode struct {
	BaseAngle    float64
	AngularSpeed float64

	WaveOffset    float64
	WaveAmplitude float64

	Hue  Hue
	Size float64

	Position FPoint
	Trail    Trail
}

// StreamField is set of nodes orbiting center of the viewport.
type StreamField struct {
	Nodes []StreamNode

	// reused every frame
	path Path
}

func OrbitPosition(vp Viewport, angle float64) FPoint {
	w, h := vp.SizeF()
	return FPt(
		w*0.5+math.Cos(angle)*w*StreamOrbitRadiusX,
		h*0.5+math.Sin(angle)*h*StreamOrbitRadiusY,
	)
}

func NewStreamField(count int, vp Viewport, rng *rand.Rand) *StreamField {
	sf := new(StreamField)
	sf.Nodes = make([]StreamNode, count)

	for i := range count {
		angle := math.Pi * 2 * f64(i) / f64(count)

		node := StreamNode{
			BaseAngle:     angle,
			AngularSpeed:  RandRange(rng, 0.0003, 0.0005),
			WaveOffset:    RandRange(rng, 0, math.Pi*2),
			WaveAmplitude: RandRange(rng, 30, 70),
			Hue:           Hue(i % 2),
			Size:          RandRange(rng, 2, 4),
			Position:      OrbitPosition(vp, angle),
			Trail:         NewTrail(TrailMinLength + rng.IntN(TrailMaxLength-TrailMinLength)),
		}

		sf.Nodes[i] = node
	}

	return sf
}

// Attraction returns pull from pos towards pointer.
// Zero at StreamAttractRadius or beyond, strongest at distance 0.
func Attraction(pos, pointer FPoint) FPoint {
	delta := pointer.Sub(pos)
	dist := delta.Length()

	if dist >= StreamAttractRadius || dist == 0 {
		return FPoint{}
	}

	force := (StreamAttractRadius - dist) / StreamAttractRadius * StreamAttractStrength
	return delta.Scale(1 / dist).Scale(force * StreamAttractScale)
}

// Update advances every node by one frame.
// timeMs is frame time in milliseconds.
// When attract is true, nodes are pulled towards pointer.
func (sf *StreamField) Update(vp Viewport, timeMs float64, attract bool, pointer FPoint) {
	for i := range sf.Nodes {
		node := &sf.Nodes[i]

		node.BaseAngle += node.AngularSpeed

		pos := OrbitPosition(vp, node.BaseAngle)

		pos.X += math.Sin(timeMs*0.002+node.WaveOffset) * node.WaveAmplitude
		pos.Y += math.Cos(timeMs*0.0015+node.WaveOffset*1.3) * node.WaveAmplitude * 0.7

		if attract {
			pos = pos.Add(Attraction(pos, pointer))
		}

		node.Position = pos
		node.Trail.Push(pos)
	}
}

// ConnectionOpacity fades linearly from ConnectionMaxOpacity at distance 0
// to 0 at ConnectionDistance.
func ConnectionOpacity(dist float64) float64 {
	if dist >= ConnectionDistance || dist < 0 {
		return 0
	}
	return ConnectionMaxOpacity * (1 - dist/ConnectionDistance)
}

func (sf *StreamField) DrawNodes(dst Canvas, theme *Theme) {
	for i := range sf.Nodes {
		node := &sf.Nodes[i]
		hue := node.Hue.Color(theme)

		// =========================
		// trail
		// =========================
		if n := node.Trail.Len(); n >= 2 {
			sf.path.Reset()
			sf.path.MoveTo(node.Trail.At(0))

			// curve through mid points, trail points act as control points
			for j := 1; j+1 < n; j++ {
				p := node.Trail.At(j)
				next := node.Trail.At(j + 1)
				sf.path.QuadTo(p, FPointMid(p, next))
			}
			sf.path.LineTo(node.Trail.At(n - 1))

			dst.StrokePath(&sf.path, node.Size*0.6, LinearGradient{
				From: node.Trail.At(0),
				To:   node.Trail.At(n - 1),
				Stops: []GradientStop{
					Stop(0, ColorWithAlpha(hue, 0.4)),
					Stop(1, ColorWithAlpha(hue, 0)),
				},
			})
		}

		// =========================
		// glow and core
		// =========================
		glowRadius := node.Size * 4
		dst.FillCircle(node.Position, glowRadius, RadialGradient{
			Center: node.Position,
			Radius: glowRadius,
			Stops: []GradientStop{
				Stop(0, ColorWithAlpha(hue, 0.35)),
				Stop(1, ColorWithAlpha(hue, 0)),
			},
		})
		dst.FillCircle(node.Position, node.Size, Solid(ColorWithAlpha(hue, 0.9)))
	}
}

// DrawConnections draws faint line between every pair of near nodes.
// Returns number of lines drawn.
func (sf *StreamField) DrawConnections(dst Canvas, theme *Theme) int {
	drawn := 0

	for i := 0; i < len(sf.Nodes); i++ {
		for j := i + 1; j < len(sf.Nodes); j++ {
			a := &sf.Nodes[i]
			b := &sf.Nodes[j]

			opacity := ConnectionOpacity(FPointDist(a.Position, b.Position))
			if opacity <= 0 {
				continue
			}

			clr := BlendHue(a.Hue.Color(theme), b.Hue.Color(theme))

			sf.path.Reset()
			sf.path.MoveTo(a.Position)
			sf.path.LineTo(b.Position)
			dst.StrokePath(&sf.path, 1, Solid(ColorWithAlpha(clr, opacity)))

			drawn++
		}
	}

	return drawn
}
