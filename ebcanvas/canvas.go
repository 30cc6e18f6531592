// Package ebcanvas draws backdrop frames onto ebiten images.
package ebcanvas

import (
	"image/color"
	"math"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"

	"backdrop"
	"backdrop/misc"
)

const maxShaderStops = 4

// Canvas implements backdrop.Canvas on top of an ebiten image.
//
// Target is only valid during ebiten's Draw, so hosts Attach the screen
// at the start of Draw and Detach it at the end.
// Every drawing call without a target does nothing.
type Canvas struct {
	Target *eb.Image

	BlendStack []eb.Blend
	AntiAlias  bool

	width, height int

	vertices []eb.Vertex
	indices  []uint16
	ebPath   ebv.Path

	shaderFailed bool
}

func New(width, height int) *Canvas {
	c := new(Canvas)
	c.width = width
	c.height = height
	c.BlendStack = append(c.BlendStack, eb.BlendSourceOver)
	c.AntiAlias = true
	return c
}

func (c *Canvas) Attach(target *eb.Image) {
	c.Target = target
}

func (c *Canvas) Detach() {
	c.Target = nil
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *Canvas) Resize(width, height int) {
	c.width = width
	c.height = height
}

func (c *Canvas) Fill(rect backdrop.FRectangle, paint backdrop.Paint) {
	if c.Target == nil || rect.Empty() {
		return
	}

	c.resetBuffers()

	c.vertices = append(
		c.vertices,
		eb.Vertex{DstX: f32(rect.Min.X), DstY: f32(rect.Min.Y)},
		eb.Vertex{DstX: f32(rect.Max.X), DstY: f32(rect.Min.Y)},
		eb.Vertex{DstX: f32(rect.Max.X), DstY: f32(rect.Max.Y)},
		eb.Vertex{DstX: f32(rect.Min.X), DstY: f32(rect.Max.Y)},
	)
	c.indices = append(c.indices, 0, 1, 2, 0, 2, 3)

	c.drawPaint(paint, eb.FillRuleFillAll)
}

func (c *Canvas) FillCircle(center backdrop.FPoint, radius float64, paint backdrop.Paint) {
	if c.Target == nil || radius <= 0 {
		return
	}

	c.resetBuffers()

	c.ebPath.MoveTo(f32(center.X+radius), f32(center.Y))
	c.ebPath.Arc(f32(center.X), f32(center.Y), f32(radius), 0, 2*math.Pi, ebv.Clockwise)
	c.ebPath.Close()

	c.vertices, c.indices = c.ebPath.AppendVerticesAndIndicesForFilling(c.vertices, c.indices)

	c.drawPaint(paint, eb.FillRuleNonZero)
}

func (c *Canvas) StrokePath(path *backdrop.Path, width float64, paint backdrop.Paint) {
	if c.Target == nil || path == nil || path.IsEmpty() || width <= 0 {
		return
	}

	c.resetBuffers()

	for _, op := range path.Ops {
		switch op.Kind {
		case backdrop.PathOpMoveTo:
			c.ebPath.MoveTo(f32(op.P0.X), f32(op.P0.Y))
		case backdrop.PathOpLineTo:
			c.ebPath.LineTo(f32(op.P0.X), f32(op.P0.Y))
		case backdrop.PathOpQuadTo:
			c.ebPath.QuadTo(f32(op.P0.X), f32(op.P0.Y), f32(op.P1.X), f32(op.P1.Y))
		case backdrop.PathOpArc:
			c.ebPath.Arc(
				f32(op.P0.X), f32(op.P0.Y), f32(op.Radius),
				f32(op.StartAngle), f32(op.EndAngle),
				ebv.Clockwise,
			)
		case backdrop.PathOpClose:
			c.ebPath.Close()
		}
	}

	strokeOp := &ebv.StrokeOptions{}
	strokeOp.Width = f32(width)
	strokeOp.LineJoin = ebv.LineJoinRound
	strokeOp.LineCap = ebv.LineCapRound

	c.vertices, c.indices = c.ebPath.AppendVerticesAndIndicesForStroke(c.vertices, c.indices, strokeOp)

	c.drawPaint(paint, eb.FillRuleFillAll)
}

func (c *Canvas) resetBuffers() {
	c.vertices = c.vertices[:0]
	c.indices = c.indices[:0]
	c.ebPath = ebv.Path{}
}

func (c *Canvas) drawPaint(paint backdrop.Paint, fillRule eb.FillRule) {
	if len(c.indices) <= 0 {
		return
	}

	if radial, ok := paint.(backdrop.RadialGradient); ok && !c.shaderFailed {
		shader, err := RadialShader()
		if err == nil {
			c.DrawTrianglesShader(c.vertices, c.indices, shader, &DrawTrianglesShaderOptions{
				Uniforms: RadialUniforms(radial),
				FillRule: fillRule,
			})
			return
		}
		misc.WarnLogger.Warnf("falling back to vertex colors: %v", err)
		c.shaderFailed = true
	}

	for i := range c.vertices {
		v := &c.vertices[i]
		clr := paint.ColorAt(backdrop.FPoint{X: f64(v.DstX), Y: f64(v.DstY)})
		v.SrcX = 1
		v.SrcY = 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = premultiplied(clr)
	}

	c.DrawTriangles(c.vertices, c.indices, WhiteImage, &DrawTrianglesOptions{
		ColorScaleMode: eb.ColorScaleModePremultipliedAlpha,
		FillRule:       fillRule,
	})
}

// RadialUniforms packs gradient into radial shader uniforms.
func RadialUniforms(g backdrop.RadialGradient) map[string]any {
	offsets := make([]float32, maxShaderStops)
	colors := make([]float32, maxShaderStops*4)

	var last backdrop.GradientStop
	for i := range maxShaderStops {
		if i < len(g.Stops) {
			last = g.Stops[i]
		} else if i > 0 {
			last.Offset = 1
		}
		offsets[i] = f32(last.Offset)
		r, gr, b, a := premultiplied(last.Color)
		colors[i*4+0] = r
		colors[i*4+1] = gr
		colors[i*4+2] = b
		colors[i*4+3] = a
	}

	return map[string]any{
		"Center":  []float32{f32(g.Center.X), f32(g.Center.Y)},
		"Radius":  f32(g.Radius),
		"Offsets": offsets,
		"Colors":  colors,
	}
}

func premultiplied(clr color.NRGBA) (r, g, b, a float32) {
	a = float32(clr.A) / 255
	r = float32(clr.R) / 255 * a
	g = float32(clr.G) / 255 * a
	b = float32(clr.B) / 255 * a
	return
}

func f32(v float64) float32 {
	return float32(v)
}

func f64(v float32) float64 {
	return float64(v)
}
